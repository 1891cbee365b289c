package place_order

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
}

// WindowAllocator интерфейс аллокатора мест во временных окнах
type WindowAllocator interface {
	Reserve(ctx context.Context, windowID, userID int64) (*domain.Window, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
