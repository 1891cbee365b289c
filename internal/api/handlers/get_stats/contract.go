package get_stats

import (
	"context"

	statsService "github.com/postbureau/PB-MeetingService/internal/service/stats"
)

// StatsService интерфейс сервиса отчётности
type StatsService interface {
	GetDashboard(ctx context.Context) (*statsService.Dashboard, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
