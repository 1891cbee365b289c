package timeranges

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	rangeRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/timerange"
)

// Service сервис управления интервалами доступности после их создания:
// списки, включение/выключение, удаление
type Service struct {
	rangeRepo  RangeRepository
	windowRepo WindowRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса интервалов
func NewService(
	rangeRepo RangeRepository,
	windowRepo WindowRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		rangeRepo:  rangeRepo,
		windowRepo: windowRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetByID получает интервал по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.TimeRange, error) {
	tr, err := s.rangeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rangeRepo.ErrRangeNotFound) {
			s.logger.Warn("GetByID: time range id=%d not found", id)
			return nil, ErrRangeNotFound
		}
		s.logger.Error("GetByID: repository error for range id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return tr, nil
}

// ListAll получает все интервалы (для администратора)
func (s *Service) ListAll(ctx context.Context) ([]*domain.TimeRange, error) {
	list, err := s.rangeRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d time ranges", len(list))
	return list, nil
}

// ListActiveByDate получает активные интервалы на дату (для записи на встречу)
func (s *Service) ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.TimeRange, error) {
	list, err := s.rangeRepo.ListActiveByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListActiveByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListActiveByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListActiveByDate: fetched %d active ranges for date=%s", len(list), date.Format(domain.DateFormat))
	return list, nil
}

// SetActive включает или выключает интервал.
// Выключенный интервал не показывается при записи, существующие заказы
// в его окнах не затрагиваются
func (s *Service) SetActive(ctx context.Context, id int64, active bool) (*domain.TimeRange, error) {
	s.logger.Info("SetActive: time range id=%d -> active=%v", id, active)

	if err := s.rangeRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, rangeRepo.ErrRangeNotFound) {
			s.logger.Warn("SetActive: time range id=%d not found", id)
			return nil, ErrRangeNotFound
		}
		s.logger.Error("SetActive: repository error for range id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Delete удаляет интервал вместе с его окнами.
// Удаление запрещено, пока в окнах интервала есть занятые места
// активными заказами
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting time range id=%d", id)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.rangeRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, rangeRepo.ErrRangeNotFound) {
				return ErrRangeNotFound
			}
			return fmt.Errorf("%w: Delete - get range: %v", ErrInternal, err)
		}

		blocking, err := s.windowRepo.CountBlockingDeletion(ctx, id)
		if err != nil {
			return fmt.Errorf("%w: Delete - count blocking windows: %v", ErrInternal, err)
		}
		if blocking > 0 {
			return fmt.Errorf("%w: %d windows have active orders", ErrRangeInUse, blocking)
		}

		if err := s.windowRepo.DeleteByRange(ctx, id); err != nil {
			return fmt.Errorf("%w: Delete - delete windows: %v", ErrInternal, err)
		}

		if err := s.rangeRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("%w: Delete - delete range: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		s.logger.Warn("Delete: time range id=%d not deleted: %v", id, err)
		return err
	}

	s.logger.Info("Delete: time range id=%d deleted", id)
	return nil
}
