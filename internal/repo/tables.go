package repo

import (
	"gorm.io/gorm"

	"PortfolioDesk/internal/model"
)

// Конструкторы репозиториев контентных таблиц. Порядок выборки и
// редактируемые колонки каждой таблицы заданы здесь как данные —
// это единственное, чем таблицы отличаются друг от друга.

func NewBlogPosts(db *gorm.DB) *TableRepository[model.BlogPost] {
	return NewTableRepository[model.BlogPost](db, "created_at DESC", []string{
		"title", "content", "excerpt", "category", "tags",
		"featured_image_url", "reading_time", "published", "published_at",
	})
}

func NewWorks(db *gorm.DB) *TableRepository[model.Work] {
	return NewTableRepository[model.Work](db, "created_at DESC", []string{
		"title", "category", "description", "technologies", "client",
		"project_url", "github_url", "image_url", "images", "featured",
	})
}

func NewSkills(db *gorm.DB) *TableRepository[model.Skill] {
	return NewTableRepository[model.Skill](db, "category ASC", []string{
		"name", "category", "level", "icon",
	})
}

func NewEducation(db *gorm.DB) *TableRepository[model.Education] {
	return NewTableRepository[model.Education](db, "start_date DESC", []string{
		"degree", "institution", "start_date", "end_date", "description",
	})
}

func NewExperience(db *gorm.DB) *TableRepository[model.Experience] {
	return NewTableRepository[model.Experience](db, "start_date DESC", []string{
		"title", "company", "start_date", "end_date", "location", "description",
	})
}

func NewStatistics(db *gorm.DB) *TableRepository[model.Statistic] {
	return NewTableRepository[model.Statistic](db, "key ASC", []string{
		"key", "label", "value", "icon",
	})
}

func NewBrands(db *gorm.DB) *TableRepository[model.Brand] {
	return NewTableRepository[model.Brand](db, "created_at DESC", []string{
		"name", "logo_url", "website_url",
	})
}

func NewTestimonials(db *gorm.DB) *TableRepository[model.Testimonial] {
	return NewTableRepository[model.Testimonial](db, "created_at DESC", []string{
		"client_name", "client_position", "client_company", "content",
		"rating", "avatar_url", "project_id", "featured",
	})
}

func NewContactSubmissions(db *gorm.DB) *TableRepository[model.ContactSubmission] {
	return NewTableRepository[model.ContactSubmission](db, "created_at DESC", []string{
		"name", "email", "subject", "message", "read",
	})
}

func NewProfiles(db *gorm.DB) *TableRepository[model.Profile] {
	return NewTableRepository[model.Profile](db, "created_at ASC", []string{
		"username", "role",
	})
}
