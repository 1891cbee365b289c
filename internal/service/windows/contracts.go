package windows

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// WindowRepository интерфейс репозитория временных окон
type WindowRepository interface {
	BulkCreate(ctx context.Context, rangeID int64, spans []domain.WindowSpan, capacity int) error
	GetByID(ctx context.Context, id int64) (*domain.Window, error)
	IncrementBookings(ctx context.Context, id int64) error
	DecrementBookings(ctx context.Context, id int64) error
	ListByRange(ctx context.Context, rangeID int64, onlyAvailable bool) ([]*domain.Window, error)
}

// RangeRepository интерфейс репозитория интервалов доступности
type RangeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeRange, error)
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	CountActiveByUser(ctx context.Context, userID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
