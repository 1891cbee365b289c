package timeranges

import (
	"context"
	"time"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// RangeRepository интерфейс репозитория интервалов доступности
type RangeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeRange, error)
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.TimeRange, error)
	ListAll(ctx context.Context) ([]*domain.TimeRange, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// WindowRepository интерфейс репозитория временных окон
type WindowRepository interface {
	CountBlockingDeletion(ctx context.Context, rangeID int64) (int, error)
	DeleteByRange(ctx context.Context, rangeID int64) error
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
