package model

// Skill — навык с уровнем владения 0..100, сгруппированный по категории.
type Skill struct {
	Base

	Name     string `gorm:"not null" json:"name"`
	Category string `gorm:"not null" json:"category"`
	Level    int    `gorm:"not null" json:"level"`
	Icon     string `json:"icon"`
}

// Education — запись об образовании. Даты хранятся строками "YYYY-MM".
type Education struct {
	Base

	Degree      string `gorm:"not null" json:"degree"`
	Institution string `gorm:"not null" json:"institution"`
	StartDate   string `gorm:"not null" json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// Experience — запись об опыте работы.
type Experience struct {
	Base

	Title       string `gorm:"not null" json:"title"`
	Company     string `gorm:"not null" json:"company"`
	StartDate   string `gorm:"not null" json:"start_date"`
	EndDate     string `json:"end_date"`
	Location    string `json:"location"`
	Description string `json:"description"`
}
