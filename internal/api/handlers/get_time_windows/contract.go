package get_time_windows

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// WindowsService интерфейс аллокатора временных окон
type WindowsService interface {
	ListByRange(ctx context.Context, rangeID int64, onlyAvailable bool) ([]*domain.Window, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
