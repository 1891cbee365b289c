package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("service: internal error")

// Dashboard сводная статистика сервиса для панели администратора
type Dashboard struct {
	Summary            *domain.StatsSummary
	StatusCounts       []domain.StatusCount
	CategoryByDay      []domain.CategoryDayCount
	LocationPopularity []domain.LocationPopularity
	RatingsByDay       []domain.DayRating
	ProcessingByDay    []domain.DayProcessingTime
	Heatmap            []domain.HeatmapCell
}

// Service сервис отчётности. Все запросы только читают данные,
// поэтому собираются в одной read-only транзакции для
// согласованного снимка
type Service struct {
	statsRepo StatsRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса отчётности
func NewService(statsRepo StatsRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		statsRepo: statsRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetDashboard собирает все отчётные срезы
func (s *Service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard

	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error

		if d.Summary, err = s.statsRepo.GetSummary(ctx); err != nil {
			return fmt.Errorf("summary: %v", err)
		}
		if d.StatusCounts, err = s.statsRepo.GetStatusCounts(ctx); err != nil {
			return fmt.Errorf("status counts: %v", err)
		}
		if d.CategoryByDay, err = s.statsRepo.GetCategoryCountsByDay(ctx); err != nil {
			return fmt.Errorf("category counts: %v", err)
		}
		if d.LocationPopularity, err = s.statsRepo.GetLocationPopularity(ctx); err != nil {
			return fmt.Errorf("location popularity: %v", err)
		}
		if d.RatingsByDay, err = s.statsRepo.GetFeedbackRatingsByDay(ctx); err != nil {
			return fmt.Errorf("ratings: %v", err)
		}
		if d.ProcessingByDay, err = s.statsRepo.GetProcessingTimeByDay(ctx); err != nil {
			return fmt.Errorf("processing time: %v", err)
		}
		if d.Heatmap, err = s.statsRepo.GetOrdersHeatmap(ctx); err != nil {
			return fmt.Errorf("heatmap: %v", err)
		}

		return nil
	})
	if err != nil {
		s.logger.Error("GetDashboard: failed to collect stats: %v", err)
		return nil, fmt.Errorf("%w: GetDashboard - %v", ErrInternal, err)
	}

	s.logger.Info("GetDashboard: stats collected")
	return &d, nil
}
