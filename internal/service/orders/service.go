package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	feedbackRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/feedback"
	orderRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/order"
)

// Тексты уведомлений о смене статуса заказа
const (
	msgOrderMet       = "Встреча по заказу #%d состоялась, письмо принято в работу"
	msgOrderDelivered = "Письмо по заказу #%d доставлено получателю"
)

// Service сервис для работы с заказами после их создания:
// чтение, смена статуса, обратная связь
type Service struct {
	orderRepo        OrderRepository
	userRepo         UserRepository
	feedbackRepo     FeedbackRepository
	notificationRepo NotificationRepository
	notifier         Notifier
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(
	orderRepo OrderRepository,
	userRepo UserRepository,
	feedbackRepo FeedbackRepository,
	notificationRepo NotificationRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		orderRepo:        orderRepo,
		userRepo:         userRepo,
		feedbackRepo:     feedbackRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetByID получает заказ по ID с данными связанных сущностей.
// Пользователь видит только свой заказ, администратор - любой
func (s *Service) GetByID(ctx context.Context, id, requesterTelegramID int64, isAdmin bool) (*domain.OrderDetails, error) {
	s.logger.Info("GetByID: fetching order id=%d for telegram_id=%d", id, requesterTelegramID)

	details, err := s.orderRepo.GetDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("GetByID: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetByID: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !isAdmin && details.TelegramID != requesterTelegramID {
		s.logger.Warn("GetByID: access denied for telegram_id=%d to order id=%d", requesterTelegramID, id)
		return nil, ErrAccessDenied
	}

	return details, nil
}

// ListByUser получает историю заказов пользователя по Telegram ID
func (s *Service) ListByUser(ctx context.Context, telegramID int64) ([]*domain.OrderDetails, error) {
	list, err := s.orderRepo.ListByTelegramID(ctx, telegramID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for telegram_id=%d: %v", telegramID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: fetched %d orders for telegram_id=%d", len(list), telegramID)
	return list, nil
}

// ListAll получает все заказы, опционально фильтруя по статусу.
// Доступно только администраторам
func (s *Service) ListAll(ctx context.Context, status *string) ([]*domain.OrderDetails, error) {
	var domainStatus *domain.OrderStatus
	if status != nil {
		st := domain.OrderStatus(*status)
		if !st.IsValid() {
			s.logger.Warn("ListAll: invalid status filter %q", *status)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
		}
		domainStatus = &st
	}

	list, err := s.orderRepo.ListByStatus(ctx, domainStatus)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d orders (status=%v)", len(list), status)
	return list, nil
}

// UpdateStatus переводит заказ в статус met или delivered.
// Переход проверяется по таблице допустимых переходов под блокировкой строки.
// При доставке в той же транзакции увеличиваются счётчики писем пользователя
// и создаётся запись в журнале уведомлений. Отмена идёт отдельным сценарием,
// освобождающим место в окне
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, newStatus domain.OrderStatus) (*domain.OrderDetails, error) {
	s.logger.Info("UpdateStatus: order id=%d -> %s", orderID, newStatus)

	if newStatus != domain.StatusMet && newStatus != domain.StatusDelivered {
		s.logger.Warn("UpdateStatus: status %q is not allowed via this operation", newStatus)
		return nil, fmt.Errorf("%w: status must be %q or %q", ErrInvalidInput, domain.StatusMet, domain.StatusDelivered)
	}

	var updated *domain.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := s.orderRepo.GetForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, orderRepo.ErrOrderNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get order: %v", ErrInternal, err)
		}

		if !o.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, newStatus)
		}

		if err := s.orderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
			return fmt.Errorf("%w: UpdateStatus - update: %v", ErrInternal, err)
		}

		if newStatus == domain.StatusDelivered {
			if err := s.bumpLetterCounters(ctx, o); err != nil {
				return err
			}
		}

		message := statusMessage(orderID, newStatus)
		if err := s.notificationRepo.Create(ctx, o.UserID, message); err != nil {
			return fmt.Errorf("%w: UpdateStatus - create notification: %v", ErrInternal, err)
		}

		updated = o
		return nil
	})
	if err != nil {
		s.logger.Warn("UpdateStatus: order id=%d -> %s failed: %v", orderID, newStatus, err)
		return nil, err
	}

	details, err := s.orderRepo.GetDetailsByID(ctx, orderID)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload order id=%d: %v", orderID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - reload order: %v", ErrInternal, err)
	}

	// Доставка уведомления вне транзакции: недоступность шлюза
	// не откатывает смену статуса
	if err := s.notifier.NotifyWithGracefulDegradation(ctx, details.TelegramID, statusMessage(orderID, newStatus)); err != nil {
		s.logger.Warn("UpdateStatus: notification for order id=%d not delivered: %v", orderID, err)
	}

	s.logger.Info("UpdateStatus: order id=%d moved %s -> %s", orderID, updated.Status, newStatus)
	return details, nil
}

// LeaveFeedback сохраняет обратную связь по заказу.
// Разрешена только после состоявшейся встречи (met или delivered),
// не больше одной на заказ
func (s *Service) LeaveFeedback(ctx context.Context, orderID int64, rating int, comment string) (*domain.Feedback, error) {
	s.logger.Info("LeaveFeedback: order id=%d, rating=%d", orderID, rating)

	if rating < domain.MinFeedbackRating || rating > domain.MaxFeedbackRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d",
			ErrInvalidInput, domain.MinFeedbackRating, domain.MaxFeedbackRating)
	}
	if len([]rune(comment)) > domain.MaxFeedbackCommentLength {
		return nil, fmt.Errorf("%w: comment is too long", ErrInvalidInput)
	}

	details, err := s.orderRepo.GetDetailsByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("LeaveFeedback: order id=%d not found", orderID)
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("%w: LeaveFeedback - get order: %v", ErrInternal, err)
	}

	if details.Status != domain.StatusMet && details.Status != domain.StatusDelivered {
		s.logger.Warn("LeaveFeedback: order id=%d in status %s, feedback not allowed", orderID, details.Status)
		return nil, ErrFeedbackNotAllowed
	}

	created, err := s.feedbackRepo.Create(ctx, &domain.Feedback{
		OrderID: orderID,
		Rating:  rating,
		Comment: comment,
	})
	if err != nil {
		if errors.Is(err, feedbackRepo.ErrFeedbackExists) {
			s.logger.Warn("LeaveFeedback: feedback for order id=%d already exists", orderID)
			return nil, ErrFeedbackExists
		}
		s.logger.Error("LeaveFeedback: repository error for order id=%d: %v", orderID, err)
		return nil, fmt.Errorf("%w: LeaveFeedback - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("LeaveFeedback: feedback id=%d saved for order id=%d", created.ID, orderID)
	return created, nil
}

// bumpLetterCounters увеличивает счётчики писем пользователя
// по всем ненулевым категориям заказа
func (s *Service) bumpLetterCounters(ctx context.Context, o *domain.Order) error {
	for category, count := range o.CategoryCounts() {
		if count <= 0 {
			continue
		}
		if err := s.userRepo.IncrementLetterCounters(ctx, o.UserID, category, count); err != nil {
			return fmt.Errorf("%w: UpdateStatus - increment counters (category=%s): %v", ErrInternal, category, err)
		}
	}
	return nil
}

func statusMessage(orderID int64, status domain.OrderStatus) string {
	if status == domain.StatusDelivered {
		return fmt.Sprintf(msgOrderDelivered, orderID)
	}
	return fmt.Sprintf(msgOrderMet, orderID)
}
