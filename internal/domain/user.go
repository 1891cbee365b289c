package domain

import "time"

// UserRole роль пользователя
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// CardCategory категория открытки (три фиксированные категории)
type CardCategory string

const (
	CategoryA CardCategory = "A"
	CategoryB CardCategory = "B"
	CategoryC CardCategory = "C"
)

// User пользователь сервиса, идентифицируется по Telegram ID.
// Создаётся идемпотентным upsert'ом при первом обращении, не удаляется.
// Счётчики писем увеличиваются при доставке заказа.
type User struct {
	ID         int64
	TelegramID int64
	Username   *string
	FullName   string
	Role       UserRole

	TotalLetters   int
	CategoryACount int
	CategoryBCount int
	CategoryCCount int

	CreatedAt time.Time
}

// IsAdmin возвращает true для администраторов
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
