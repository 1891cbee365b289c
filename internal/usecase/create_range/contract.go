package create_range

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// RangeRepository интерфейс репозитория интервалов доступности
type RangeRepository interface {
	Create(ctx context.Context, tr *domain.TimeRange) (*domain.TimeRange, error)
}

// WindowRepository интерфейс репозитория временных окон
type WindowRepository interface {
	BulkCreate(ctx context.Context, rangeID int64, spans []domain.WindowSpan, capacity int) error
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
