package ensure_user

import (
	"time"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// EnsureUserRequest тело запроса регистрации пользователя
type EnsureUserRequest struct {
	Username *string `json:"username,omitempty"`
	FullName string  `json:"fullName"`
}

// UserResponse пользователь в ответе API
type UserResponse struct {
	ID             int64     `json:"id"`
	TelegramID     int64     `json:"telegramId"`
	Username       *string   `json:"username,omitempty"`
	FullName       string    `json:"fullName"`
	Role           string    `json:"role"`
	TotalLetters   int       `json:"totalLetters"`
	CategoryACount int       `json:"categoryACount"`
	CategoryBCount int       `json:"categoryBCount"`
	CategoryCCount int       `json:"categoryCCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// FromDomainUser конвертирует доменного пользователя в ответ API
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		TelegramID:     u.TelegramID,
		Username:       u.Username,
		FullName:       u.FullName,
		Role:           string(u.Role),
		TotalLetters:   u.TotalLetters,
		CategoryACount: u.CategoryACount,
		CategoryBCount: u.CategoryBCount,
		CategoryCCount: u.CategoryCCount,
		CreatedAt:      u.CreatedAt,
	}
}
