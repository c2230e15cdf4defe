package model

// Statistic — счётчик для блока цифр на главной ("проектов", "лет опыта").
// Key — стабильный машинный ключ, Label — подпись для отображения.
type Statistic struct {
	Base

	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Label string `gorm:"not null" json:"label"`
	Value int    `gorm:"not null" json:"value"`
	Icon  string `json:"icon"`
}

// Brand — логотип клиента/бренда для карусели.
type Brand struct {
	Base

	Name       string `gorm:"not null" json:"name"`
	LogoURL    string `json:"logo_url"`
	WebsiteURL string `json:"website_url"`
}

// Testimonial — отзыв клиента, опционально привязанный к проекту.
type Testimonial struct {
	Base

	ClientName     string `gorm:"not null" json:"client_name"`
	ClientPosition string `json:"client_position"`
	ClientCompany  string `json:"client_company"`
	Content        string `gorm:"not null" json:"content"`
	Rating         int    `gorm:"not null" json:"rating"`
	AvatarURL      string `json:"avatar_url"`
	ProjectID      string `json:"project_id"`
	Featured       bool   `json:"featured"`
}
