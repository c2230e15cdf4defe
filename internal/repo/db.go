package repo

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"PortfolioDesk/internal/model"
)

// InitDB открывает соединение с Postgres и прогоняет автомиграции
// для всех моделей приложения.
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty database DSN")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// AutoMigrate создаёт/обновляет таблицы всех моделей. Вынесена отдельно,
// чтобы тесты могли мигрировать in-memory SQLite тем же набором моделей.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.BlogPost{},
		&model.Work{},
		&model.Skill{},
		&model.Education{},
		&model.Experience{},
		&model.Statistic{},
		&model.Brand{},
		&model.Testimonial{},
		&model.ContactSubmission{},
	)
}
