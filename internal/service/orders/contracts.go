package orders

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	GetDetailsByID(ctx context.Context, id int64) (*domain.OrderDetails, error)
	ListByTelegramID(ctx context.Context, telegramID int64) ([]*domain.OrderDetails, error)
	ListByStatus(ctx context.Context, status *domain.OrderStatus) ([]*domain.OrderDetails, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	IncrementLetterCounters(ctx context.Context, userID int64, category domain.CardCategory, delta int) error
}

// FeedbackRepository интерфейс репозитория обратной связи
type FeedbackRepository interface {
	Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
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
