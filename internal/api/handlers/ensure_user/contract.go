package ensure_user

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// UsersService интерфейс сервиса пользователей
type UsersService interface {
	Ensure(ctx context.Context, telegramID int64, username *string, fullName string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
