package windows

import (
	"context"
	"errors"
	"fmt"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	windowRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/window"
)

// Service аллокатор мест во временных окнах.
// Все мутации занятости (Reserve/Release) предполагают вызов внутри
// транзакции: чтение окна выполняется с блокировкой строки, а счётчик
// и флаг доступности пересчитываются одним UPDATE.
type Service struct {
	windowRepo WindowRepository
	rangeRepo  RangeRepository
	orderRepo  OrderRepository
	logger     Logger
}

// NewService создает новый экземпляр аллокатора окон
func NewService(
	windowRepo WindowRepository,
	rangeRepo RangeRepository,
	orderRepo OrderRepository,
	logger Logger,
) *Service {
	return &Service{
		windowRepo: windowRepo,
		rangeRepo:  rangeRepo,
		orderRepo:  orderRepo,
		logger:     logger,
	}
}

// Reserve занимает одно место в окне для пользователя.
// Проверяет лимит одновременных заказов пользователя и вместимость окна.
// Вызывается внутри сериализуемой транзакции создания заказа
func (s *Service) Reserve(ctx context.Context, windowID, userID int64) (*domain.Window, error) {
	active, err := s.orderRepo.CountActiveByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Reserve: failed to count active orders for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Reserve - count active orders: %v", ErrInternal, err)
	}
	if active >= domain.MaxActiveOrdersPerUser {
		s.logger.Warn("Reserve: quota exceeded for user=%d (active=%d)", userID, active)
		return nil, ErrQuotaExceeded
	}

	w, err := s.windowRepo.GetByID(ctx, windowID)
	if err != nil {
		if errors.Is(err, windowRepo.ErrWindowNotFound) {
			s.logger.Warn("Reserve: window id=%d not found", windowID)
			return nil, ErrWindowNotFound
		}
		s.logger.Error("Reserve: failed to get window id=%d: %v", windowID, err)
		return nil, fmt.Errorf("%w: Reserve - get window: %v", ErrInternal, err)
	}

	if w.IsFull() {
		s.logger.Warn("Reserve: window id=%d is full (%d/%d)", windowID, w.CurrentBookings, w.Capacity)
		return nil, ErrWindowUnavailable
	}

	if err := s.windowRepo.IncrementBookings(ctx, windowID); err != nil {
		switch {
		case errors.Is(err, windowRepo.ErrWindowFull):
			s.logger.Warn("Reserve: window id=%d filled concurrently", windowID)
			return nil, ErrWindowUnavailable
		case errors.Is(err, windowRepo.ErrWindowNotFound):
			return nil, ErrWindowNotFound
		default:
			s.logger.Error("Reserve: failed to increment bookings for window id=%d: %v", windowID, err)
			return nil, fmt.Errorf("%w: Reserve - increment bookings: %v", ErrInternal, err)
		}
	}

	w.CurrentBookings++
	w.IsAvailable = w.CurrentBookings < w.Capacity

	s.logger.Info("Reserve: window id=%d reserved for user=%d (%d/%d)",
		windowID, userID, w.CurrentBookings, w.Capacity)
	return w, nil
}

// Release освобождает одно место в окне.
// Вызывается при отмене активного заказа, ключом служит окно,
// сохранённое в самом заказе
func (s *Service) Release(ctx context.Context, windowID int64) error {
	if err := s.windowRepo.DecrementBookings(ctx, windowID); err != nil {
		switch {
		case errors.Is(err, windowRepo.ErrWindowNotFound):
			s.logger.Warn("Release: window id=%d not found", windowID)
			return ErrWindowNotFound
		case errors.Is(err, windowRepo.ErrNotOccupied):
			s.logger.Warn("Release: window id=%d has no bookings", windowID)
			return ErrWindowNotOccupied
		default:
			s.logger.Error("Release: failed to decrement bookings for window id=%d: %v", windowID, err)
			return fmt.Errorf("%w: Release - decrement bookings: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Release: window id=%d released", windowID)
	return nil
}

// ListByRange возвращает окна интервала.
// При onlyAvailable=true возвращаются только окна со свободными местами
func (s *Service) ListByRange(ctx context.Context, rangeID int64, onlyAvailable bool) ([]*domain.Window, error) {
	if _, err := s.rangeRepo.GetByID(ctx, rangeID); err != nil {
		s.logger.Warn("ListByRange: time range id=%d not found: %v", rangeID, err)
		return nil, ErrRangeNotFound
	}

	list, err := s.windowRepo.ListByRange(ctx, rangeID, onlyAvailable)
	if err != nil {
		s.logger.Error("ListByRange: repository error for range id=%d: %v", rangeID, err)
		return nil, fmt.Errorf("%w: ListByRange - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByRange: fetched %d windows for range id=%d (onlyAvailable=%v)",
		len(list), rangeID, onlyAvailable)
	return list, nil
}
