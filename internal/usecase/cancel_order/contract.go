package cancel_order

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	GetDetailsByID(ctx context.Context, id int64) (*domain.OrderDetails, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// WindowAllocator интерфейс аллокатора мест во временных окнах
type WindowAllocator interface {
	Release(ctx context.Context, windowID int64) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
}

// NotificationRepository интерфейс журнала уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, userID int64, message string) error
}

// Notifier интерфейс доставки уведомлений пользователю.
// Недоступность канала доставки не должна ломать бизнес-операцию
type Notifier interface {
	NotifyWithGracefulDegradation(ctx context.Context, telegramID int64, message string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
