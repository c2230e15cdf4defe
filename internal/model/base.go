package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base — общие поля контентных таблиц: непрозрачный строковый id и
// серверные отметки времени. Встраивается в каждую контентную модель.
type Base struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate назначает id на сервере, если клиент его не прислал.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
