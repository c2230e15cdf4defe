package model

import "time"

// User — учётная запись администратора. Пароль хранится как bcrypt-хеш.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Login    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
