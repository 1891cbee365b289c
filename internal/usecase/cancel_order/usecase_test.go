package cancel_order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	orderRepository "github.com/postbureau/PB-MeetingService/internal/infra/storage/order"
	"github.com/postbureau/PB-MeetingService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubOrderRepo struct {
	order           *domain.Order
	ownerTelegramID int64
	getErr          error
	cancels         int
}

func (s *stubOrderRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	o := *s.order
	return &o, nil
}

func (s *stubOrderRepo) GetDetailsByID(ctx context.Context, id int64) (*domain.OrderDetails, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &domain.OrderDetails{Order: *s.order, TelegramID: s.ownerTelegramID}, nil
}

func (s *stubOrderRepo) Cancel(ctx context.Context, id int64, reason string) error {
	s.cancels++
	s.order.Status = domain.StatusCancelled
	s.order.CancelledReason = ptr.Ptr(reason)
	return nil
}

type stubAllocator struct {
	releases  int
	releasedW []int64
}

func (s *stubAllocator) Release(ctx context.Context, windowID int64) error {
	s.releases++
	s.releasedW = append(s.releasedW, windowID)
	return nil
}

type stubUserRepo struct {
	user *domain.User
	err  error
}

func (s *stubUserRepo) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	return s.user, s.err
}

type stubNotificationRepo struct {
	created int
}

func (s *stubNotificationRepo) Create(ctx context.Context, userID int64, message string) error {
	s.created++
	return nil
}

type stubNotifier struct {
	sentTo   []int64
	messages []string
	err      error
}

func (s *stubNotifier) NotifyWithGracefulDegradation(ctx context.Context, telegramID int64, message string) error {
	s.sentTo = append(s.sentTo, telegramID)
	s.messages = append(s.messages, message)
	return s.err
}

func newTestUseCase(or *stubOrderRepo, al *stubAllocator, ur *stubUserRepo, nr *stubNotificationRepo, nt *stubNotifier) *UseCase {
	return NewUseCase(or, al, ur, nr, nt, passthroughTx{}, noopLogger{})
}

func pendingOrder() *domain.Order {
	return &domain.Order{ID: 10, UserID: 1, MeetingWindowID: 7, Status: domain.StatusPending}
}

func TestCancelActiveOrderReleasesWindow(t *testing.T) {
	or := &stubOrderRepo{order: pendingOrder(), ownerTelegramID: 100}
	al := &stubAllocator{}
	nr := &stubNotificationRepo{}
	nt := &stubNotifier{}
	uc := newTestUseCase(or, al, &stubUserRepo{user: &domain.User{ID: 1, TelegramID: 100}}, nr, nt)

	err := uc.Execute(context.Background(), &Request{OrderID: 10, TelegramID: 100, Reason: "передумал"})
	require.NoError(t, err)
	require.Equal(t, 1, or.cancels)
	require.Equal(t, 1, al.releases)
	require.Equal(t, []int64{7}, al.releasedW)
	require.Equal(t, 1, nr.created)
}

func TestCancelNotifiesOwner(t *testing.T) {
	or := &stubOrderRepo{order: pendingOrder(), ownerTelegramID: 100}
	nt := &stubNotifier{}
	uc := newTestUseCase(or, &stubAllocator{}, &stubUserRepo{user: &domain.User{ID: 1, TelegramID: 100}}, &stubNotificationRepo{}, nt)

	require.NoError(t, uc.Execute(context.Background(), &Request{OrderID: 10, TelegramID: 100}))
	require.Equal(t, []int64{100}, nt.sentTo)
	require.Equal(t, []string{"Заказ #10 отменён"}, nt.messages)
}

func TestCancelNotifierFailureDoesNotFail(t *testing.T) {
	or := &stubOrderRepo{order: pendingOrder(), ownerTelegramID: 100}
	nt := &stubNotifier{err: errors.New("gateway down")}
	uc := newTestUseCase(or, &stubAllocator{}, &stubUserRepo{user: &domain.User{ID: 1, TelegramID: 100}}, &stubNotificationRepo{}, nt)

	err := uc.Execute(context.Background(), &Request{OrderID: 10, TelegramID: 100})
	require.NoError(t, err)
	require.Equal(t, 1, or.cancels)
}

func TestCancelTwiceReleasesOnce(t *testing.T) {
	or := &stubOrderRepo{order: pendingOrder(), ownerTelegramID: 100}
	al := &stubAllocator{}
	nt := &stubNotifier{}
	uc := newTestUseCase(or, al, &stubUserRepo{user: &domain.User{ID: 1, TelegramID: 100}}, &stubNotificationRepo{}, nt)

	req := &Request{OrderID: 10, TelegramID: 100}
	require.NoError(t, uc.Execute(context.Background(), req))

	// Повторная отмена видит терминальный статус
	err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrAlreadyFinished)
	require.Equal(t, 1, al.releases)
	require.Len(t, nt.sentTo, 1)
}

func TestCancelDeliveredOrder(t *testing.T) {
	or := &stubOrderRepo{order: &domain.Order{ID: 10, UserID: 1, MeetingWindowID: 7, Status: domain.StatusDelivered}}
	al := &stubAllocator{}
	nt := &stubNotifier{}
	uc := newTestUseCase(or, al, &stubUserRepo{user: &domain.User{ID: 1, TelegramID: 100}}, &stubNotificationRepo{}, nt)

	err := uc.Execute(context.Background(), &Request{OrderID: 10, TelegramID: 100})
	require.ErrorIs(t, err, ErrAlreadyFinished)
	require.Zero(t, or.cancels)
	require.Zero(t, al.releases)
	require.Empty(t, nt.sentTo)
}

func TestCancelForeignOrder(t *testing.T) {
	or := &stubOrderRepo{order: pendingOrder()}
	al := &stubAllocator{}
	uc := newTestUseCase(or, al, &stubUserRepo{user: &domain.User{ID: 2, TelegramID: 200}}, &stubNotificationRepo{}, &stubNotifier{})

	err := uc.Execute(context.Background(), &Request{OrderID: 10, TelegramID: 200})
	require.ErrorIs(t, err, ErrAccessDenied)
	require.Zero(t, or.cancels)
	require.Zero(t, al.releases)
}

func TestCancelForeignOrderAsAdmin(t *testing.T) {
	or := &stubOrderRepo{order: pendingOrder(), ownerTelegramID: 100}
	al := &stubAllocator{}
	nr := &stubNotificationRepo{}
	nt := &stubNotifier{}
	uc := newTestUseCase(or, al, &stubUserRepo{user: &domain.User{ID: 2, TelegramID: 200}}, nr, nt)

	err := uc.Execute(context.Background(), &Request{OrderID: 10, TelegramID: 200, IsAdmin: true, Reason: "по просьбе клиента"})
	require.NoError(t, err)
	require.Equal(t, 1, al.releases)
	// Уведомление уходит владельцу заказа, а не администратору
	require.Equal(t, 1, nr.created)
	require.Equal(t, []int64{100}, nt.sentTo)
}

func TestCancelOrderNotFound(t *testing.T) {
	or := &stubOrderRepo{getErr: orderRepository.ErrOrderNotFound}
	uc := newTestUseCase(or, &stubAllocator{}, &stubUserRepo{user: &domain.User{ID: 1, TelegramID: 100}}, &stubNotificationRepo{}, &stubNotifier{})

	err := uc.Execute(context.Background(), &Request{OrderID: 99, TelegramID: 100})
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCancelUnknownUser(t *testing.T) {
	uc := newTestUseCase(&stubOrderRepo{order: pendingOrder()}, &stubAllocator{},
		&stubUserRepo{err: errors.New("no rows")}, &stubNotificationRepo{}, &stubNotifier{})

	err := uc.Execute(context.Background(), &Request{OrderID: 10, TelegramID: 100})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestCancelInvalidInput(t *testing.T) {
	uc := newTestUseCase(&stubOrderRepo{order: pendingOrder()}, &stubAllocator{},
		&stubUserRepo{user: &domain.User{ID: 1, TelegramID: 100}}, &stubNotificationRepo{}, &stubNotifier{})

	err := uc.Execute(context.Background(), &Request{OrderID: 0, TelegramID: 100})
	require.ErrorIs(t, err, ErrInvalidInput)

	long := make([]rune, domain.MaxCancelReasonLength+1)
	for i := range long {
		long[i] = 'п'
	}
	err = uc.Execute(context.Background(), &Request{OrderID: 10, TelegramID: 100, Reason: string(long)})
	require.ErrorIs(t, err, ErrInvalidInput)
}
