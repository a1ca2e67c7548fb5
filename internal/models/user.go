package models

import "github.com/google/uuid"

// User - владелец SOS событий и контактов. Управление пользователями вне этого сервиса.
type User struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
}
