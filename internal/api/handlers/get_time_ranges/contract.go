package get_time_ranges

import (
	"context"
	"time"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// TimeRangesService интерфейс сервиса интервалов доступности
type TimeRangesService interface {
	ListAll(ctx context.Context) ([]*domain.TimeRange, error)
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.TimeRange, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
