package stats

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// StatsRepository интерфейс репозитория отчётных запросов
type StatsRepository interface {
	GetSummary(ctx context.Context) (*domain.StatsSummary, error)
	GetStatusCounts(ctx context.Context) ([]domain.StatusCount, error)
	GetCategoryCountsByDay(ctx context.Context) ([]domain.CategoryDayCount, error)
	GetLocationPopularity(ctx context.Context) ([]domain.LocationPopularity, error)
	GetFeedbackRatingsByDay(ctx context.Context) ([]domain.DayRating, error)
	GetProcessingTimeByDay(ctx context.Context) ([]domain.DayProcessingTime, error)
	GetOrdersHeatmap(ctx context.Context) ([]domain.HeatmapCell, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
