package model

// Work — проект портфолио. Images — упорядоченный список URL загруженных
// изображений; первый элемент дублируется в ImageURL как обложка.
type Work struct {
	Base

	Title        string   `gorm:"not null" json:"title"`
	Category     string   `gorm:"not null" json:"category"`
	Description  string   `json:"description"`
	Technologies []string `gorm:"serializer:json" json:"technologies"`
	Client       string   `json:"client"`
	ProjectURL   string   `json:"project_url"`
	GithubURL    string   `json:"github_url"`
	ImageURL     string   `json:"image_url"`
	Images       []string `gorm:"serializer:json" json:"images"`
	Featured     bool     `json:"featured"`
}
