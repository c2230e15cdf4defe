package model

// ContactSubmission — сообщение с публичной формы контактов.
// Создаётся без авторизации; консоль только читает, помечает
// прочитанным и удаляет.
type ContactSubmission struct {
	Base

	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `gorm:"not null" json:"subject"`
	Message string `gorm:"not null" json:"message"`
	Read    bool   `json:"read"`
}

// Profile — публичный профиль владельца; консоль его не редактирует.
type Profile struct {
	Base

	UserID   int64  `gorm:"index" json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
