package toggle_time_range

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// TimeRangesService интерфейс сервиса интервалов доступности
type TimeRangesService interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeRange, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.TimeRange, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
