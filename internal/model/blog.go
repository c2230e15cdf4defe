package model

import "time"

// BlogPost — запись блога. Tags хранятся как JSON-массив строк.
type BlogPost struct {
	Base

	Title            string     `gorm:"not null" json:"title"`
	Content          string     `gorm:"not null" json:"content"`
	Excerpt          string     `json:"excerpt"`
	Category         string     `json:"category"`
	Tags             []string   `gorm:"serializer:json" json:"tags"`
	FeaturedImageURL string     `json:"featured_image_url"`
	ReadingTime      int        `json:"reading_time"`
	Published        bool       `json:"published"`
	PublishedAt      *time.Time `json:"published_at"`
}
