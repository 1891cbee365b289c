package place_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	windowsService "github.com/postbureau/PB-MeetingService/internal/service/windows"
	"github.com/postbureau/PB-MeetingService/pkg/txmanager"
)

// UseCase use case создания заказа.
// Резервирование места в окне и вставка заказа выполняются в одной
// сериализуемой транзакции: конкурентные заказы на последнее место
// либо натыкаются на заполненное окно, либо откатываются и повторяются
type UseCase struct {
	orderRepo OrderRepository
	allocator WindowAllocator
	userRepo  UserRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	allocator WindowAllocator,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		allocator: allocator,
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case создания заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PlaceOrder: telegram_id=%d, window=%d, cards=%d/%d/%d",
		req.TelegramID, req.MeetingWindowID, req.CardType1Count, req.CardType2Count, req.CardType3Count)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PlaceOrder: validation failed: %v", err)
		return nil, err
	}

	user, err := uc.userRepo.GetByTelegramID(ctx, req.TelegramID)
	if err != nil {
		uc.logger.Warn("PlaceOrder: user telegram_id=%d not found: %v", req.TelegramID, err)
		return nil, ErrUserNotFound
	}

	var (
		created *domain.Order
		window  *domain.Window
	)

	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		w, err := uc.allocator.Reserve(ctx, req.MeetingWindowID, user.ID)
		if err != nil {
			switch {
			case errors.Is(err, windowsService.ErrQuotaExceeded):
				return ErrQuotaExceeded
			case errors.Is(err, windowsService.ErrWindowNotFound):
				return ErrWindowNotFound
			case errors.Is(err, windowsService.ErrWindowUnavailable):
				return ErrWindowUnavailable
			default:
				return fmt.Errorf("%w: reserve window: %v", ErrInternal, err)
			}
		}
		window = w

		o, err := uc.orderRepo.Create(ctx, buildOrder(req, user.ID))
		if err != nil {
			return fmt.Errorf("%w: create order: %v", ErrInternal, err)
		}
		created = o

		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrRetriesExhausted) {
			uc.logger.Warn("PlaceOrder: serialization retries exhausted for window=%d", req.MeetingWindowID)
			return nil, ErrConflict
		}
		uc.logger.Warn("PlaceOrder: failed for telegram_id=%d, window=%d: %v", req.TelegramID, req.MeetingWindowID, err)
		return nil, err
	}

	uc.logger.Info("PlaceOrder: order id=%d created for user=%d in window=%d (%d/%d seats)",
		created.ID, user.ID, window.ID, window.CurrentBookings, window.Capacity)

	return &Response{
		ID:              created.ID,
		UserID:          created.UserID,
		MeetingWindowID: created.MeetingWindowID,
		Status:          string(created.Status),
		WindowStart:     window.StartTime,
		WindowEnd:       window.EndTime,
		CardType1Count:  created.CardType1Count,
		CardType2Count:  created.CardType2Count,
		CardType3Count:  created.CardType3Count,
		CreatedAt:       created.CreatedAt,
	}, nil
}

// buildOrder собирает доменный заказ из запроса
func buildOrder(req *Request, userID int64) *domain.Order {
	return &domain.Order{
		UserID:            userID,
		MeetingWindowID:   req.MeetingWindowID,
		LocationID:        req.LocationID,
		CustomLocation:    req.CustomLocation,
		IsAnonymous:       req.IsAnonymous,
		DeliveryDelayDays: req.DeliveryDelayDays,
		RecipientName:     req.RecipientName,
		DeliveryAddress:   req.DeliveryAddress,
		ClientName:        req.ClientName,
		CardType1Count:    req.CardType1Count,
		CardType2Count:    req.CardType2Count,
		CardType3Count:    req.CardType3Count,
		CardType1Desc:     req.CardType1Desc,
		CardType2Desc:     req.CardType2Desc,
		CardType3Desc:     req.CardType3Desc,
		Status:            domain.StatusPending,
	}
}
