package cancel_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	orderRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/order"
)

// Текст уведомления об отмене заказа
const msgOrderCancelled = "Заказ #%d отменён"

// Request модель запроса на отмену заказа
type Request struct {
	OrderID    int64
	TelegramID int64  // кто отменяет
	IsAdmin    bool   // администратор может отменить любой заказ
	Reason     string // причина отмены
}

// UseCase use case отмены заказа.
// Переход в cancelled и освобождение места в окне выполняются в одной
// транзакции под блокировкой строки заказа: повторная отмена видит уже
// терминальный статус, поэтому место освобождается ровно один раз.
// Ключом освобождения служит окно, сохранённое в самом заказе
type UseCase struct {
	orderRepo        OrderRepository
	allocator        WindowAllocator
	userRepo         UserRepository
	notificationRepo NotificationRepository
	notifier         Notifier
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	allocator WindowAllocator,
	userRepo UserRepository,
	notificationRepo NotificationRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:        orderRepo,
		allocator:        allocator,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case отмены заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelOrder: order id=%d, telegram_id=%d, admin=%v", req.OrderID, req.TelegramID, req.IsAdmin)

	if req.OrderID <= 0 {
		return fmt.Errorf("%w: orderID must be positive", ErrInvalidInput)
	}
	if len([]rune(req.Reason)) > domain.MaxCancelReasonLength {
		return fmt.Errorf("%w: reason is too long (max %d)", ErrInvalidInput, domain.MaxCancelReasonLength)
	}

	user, err := uc.userRepo.GetByTelegramID(ctx, req.TelegramID)
	if err != nil {
		uc.logger.Warn("CancelOrder: user telegram_id=%d not found: %v", req.TelegramID, err)
		return ErrUserNotFound
	}

	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := uc.orderRepo.GetForUpdate(ctx, req.OrderID)
		if err != nil {
			if errors.Is(err, orderRepo.ErrOrderNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("%w: get order: %v", ErrInternal, err)
		}

		if !req.IsAdmin && o.UserID != user.ID {
			return ErrAccessDenied
		}

		if !o.CanBeCancelled() {
			return fmt.Errorf("%w: status %s", ErrAlreadyFinished, o.Status)
		}

		// Статус до отмены активный, значит заказ занимает место в окне
		wasActive := o.IsActive()

		if err := uc.orderRepo.Cancel(ctx, req.OrderID, req.Reason); err != nil {
			return fmt.Errorf("%w: cancel order: %v", ErrInternal, err)
		}

		if wasActive {
			if err := uc.allocator.Release(ctx, o.MeetingWindowID); err != nil {
				return fmt.Errorf("%w: release window: %v", ErrInternal, err)
			}
		}

		if err := uc.notificationRepo.Create(ctx, o.UserID, fmt.Sprintf(msgOrderCancelled, o.ID)); err != nil {
			return fmt.Errorf("%w: create notification: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Warn("CancelOrder: order id=%d not cancelled: %v", req.OrderID, err)
		return err
	}

	// Доставка уведомления владельцу вне транзакции: недоступность
	// шлюза не откатывает отмену
	details, err := uc.orderRepo.GetDetailsByID(ctx, req.OrderID)
	if err != nil {
		uc.logger.Error("CancelOrder: failed to reload order id=%d for notification: %v", req.OrderID, err)
	} else if err := uc.notifier.NotifyWithGracefulDegradation(ctx, details.TelegramID, fmt.Sprintf(msgOrderCancelled, req.OrderID)); err != nil {
		uc.logger.Warn("CancelOrder: notification for order id=%d not delivered: %v", req.OrderID, err)
	}

	uc.logger.Info("CancelOrder: order id=%d cancelled", req.OrderID)
	return nil
}
