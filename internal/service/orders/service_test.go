package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	feedbackRepository "github.com/postbureau/PB-MeetingService/internal/infra/storage/feedback"
	orderRepository "github.com/postbureau/PB-MeetingService/internal/infra/storage/order"
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
	order      *domain.Order
	details    *domain.OrderDetails
	getErr     error
	detailsErr error

	updates []domain.OrderStatus
	list    []*domain.OrderDetails
	listErr error
}

func (s *stubOrderRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	o := *s.order
	return &o, nil
}

func (s *stubOrderRepo) GetDetailsByID(ctx context.Context, id int64) (*domain.OrderDetails, error) {
	if s.detailsErr != nil {
		return nil, s.detailsErr
	}
	d := *s.details
	return &d, nil
}

func (s *stubOrderRepo) ListByTelegramID(ctx context.Context, telegramID int64) ([]*domain.OrderDetails, error) {
	return s.list, s.listErr
}

func (s *stubOrderRepo) ListByStatus(ctx context.Context, status *domain.OrderStatus) ([]*domain.OrderDetails, error) {
	return s.list, s.listErr
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	s.updates = append(s.updates, status)
	s.order.Status = status
	s.details.Status = status
	return nil
}

type stubUserRepo struct {
	increments map[domain.CardCategory]int
}

func (s *stubUserRepo) IncrementLetterCounters(ctx context.Context, userID int64, category domain.CardCategory, delta int) error {
	if s.increments == nil {
		s.increments = make(map[domain.CardCategory]int)
	}
	s.increments[category] += delta
	return nil
}

type stubFeedbackRepo struct {
	created *domain.Feedback
	err     error
}

func (s *stubFeedbackRepo) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	if s.err != nil {
		return nil, s.err
	}
	created := *f
	created.ID = 3
	s.created = &created
	return &created, nil
}

type stubNotificationRepo struct {
	messages []string
}

func (s *stubNotificationRepo) Create(ctx context.Context, userID int64, message string) error {
	s.messages = append(s.messages, message)
	return nil
}

type stubNotifier struct {
	sent []string
	err  error
}

func (s *stubNotifier) NotifyWithGracefulDegradation(ctx context.Context, telegramID int64, message string) error {
	s.sent = append(s.sent, message)
	return s.err
}

type testEnv struct {
	orderRepo        *stubOrderRepo
	userRepo         *stubUserRepo
	feedbackRepo     *stubFeedbackRepo
	notificationRepo *stubNotificationRepo
	notifier         *stubNotifier
	svc              *Service
}

func newTestEnv(o *domain.Order) *testEnv {
	env := &testEnv{
		orderRepo: &stubOrderRepo{
			order: o,
			details: &domain.OrderDetails{
				Order:        *o,
				TelegramID:   100,
				UserFullName: "Иван Иванов",
			},
		},
		userRepo:         &stubUserRepo{},
		feedbackRepo:     &stubFeedbackRepo{},
		notificationRepo: &stubNotificationRepo{},
		notifier:         &stubNotifier{},
	}
	env.svc = NewService(
		env.orderRepo, env.userRepo, env.feedbackRepo,
		env.notificationRepo, env.notifier, passthroughTx{}, noopLogger{},
	)
	return env
}

func TestGetByIDOwnerAndAdmin(t *testing.T) {
	env := newTestEnv(&domain.Order{ID: 10, UserID: 1, Status: domain.StatusPending})

	// Владелец видит свой заказ
	details, err := env.svc.GetByID(context.Background(), 10, 100, false)
	require.NoError(t, err)
	require.Equal(t, int64(10), details.ID)

	// Посторонний пользователь не видит чужой заказ
	_, err = env.svc.GetByID(context.Background(), 10, 999, false)
	require.ErrorIs(t, err, ErrAccessDenied)

	// Администратор видит любой заказ
	_, err = env.svc.GetByID(context.Background(), 10, 999, true)
	require.NoError(t, err)
}

func TestGetByIDNotFound(t *testing.T) {
	env := newTestEnv(&domain.Order{ID: 10, UserID: 1})
	env.orderRepo.detailsErr = orderRepository.ErrOrderNotFound

	_, err := env.svc.GetByID(context.Background(), 10, 100, false)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateStatusMet(t *testing.T) {
	env := newTestEnv(&domain.Order{ID: 10, UserID: 1, Status: domain.StatusPending})

	details, err := env.svc.UpdateStatus(context.Background(), 10, domain.StatusMet)
	require.NoError(t, err)
	require.Equal(t, domain.StatusMet, details.Status)
	require.Equal(t, []domain.OrderStatus{domain.StatusMet}, env.orderRepo.updates)

	// Встреча не доставка: счётчики писем не трогаются
	require.Empty(t, env.userRepo.increments)
	require.Len(t, env.notificationRepo.messages, 1)
	require.Len(t, env.notifier.sent, 1)
}

func TestUpdateStatusDeliveredBumpsCounters(t *testing.T) {
	env := newTestEnv(&domain.Order{
		ID: 10, UserID: 1, Status: domain.StatusMet,
		CardType1Count: 2, CardType3Count: 1,
	})

	_, err := env.svc.UpdateStatus(context.Background(), 10, domain.StatusDelivered)
	require.NoError(t, err)

	require.Equal(t, 2, env.userRepo.increments[domain.CategoryA])
	require.Equal(t, 1, env.userRepo.increments[domain.CategoryC])
	// Нулевая категория не инкрементируется
	_, ok := env.userRepo.increments[domain.CategoryB]
	require.False(t, ok)
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	env := newTestEnv(&domain.Order{ID: 10, UserID: 1, Status: domain.StatusCancelled})

	_, err := env.svc.UpdateStatus(context.Background(), 10, domain.StatusMet)
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.Empty(t, env.orderRepo.updates)
}

func TestUpdateStatusRejectsCancelled(t *testing.T) {
	// Отмена идёт отдельным сценарием с освобождением окна
	env := newTestEnv(&domain.Order{ID: 10, UserID: 1, Status: domain.StatusPending})

	_, err := env.svc.UpdateStatus(context.Background(), 10, domain.StatusCancelled)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.svc.UpdateStatus(context.Background(), 10, domain.StatusPending)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatusNotifierFailureDoesNotFail(t *testing.T) {
	env := newTestEnv(&domain.Order{ID: 10, UserID: 1, Status: domain.StatusPending})
	env.notifier.err = ErrInternal

	details, err := env.svc.UpdateStatus(context.Background(), 10, domain.StatusMet)
	require.NoError(t, err)
	require.Equal(t, domain.StatusMet, details.Status)
}

func TestLeaveFeedback(t *testing.T) {
	env := newTestEnv(&domain.Order{ID: 10, UserID: 1, Status: domain.StatusMet})

	f, err := env.svc.LeaveFeedback(context.Background(), 10, 5, "отличная встреча")
	require.NoError(t, err)
	require.Equal(t, int64(3), f.ID)
	require.Equal(t, 5, f.Rating)
}

func TestLeaveFeedbackValidation(t *testing.T) {
	env := newTestEnv(&domain.Order{ID: 10, UserID: 1, Status: domain.StatusMet})

	_, err := env.svc.LeaveFeedback(context.Background(), 10, 0, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.svc.LeaveFeedback(context.Background(), 10, 6, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	long := make([]rune, domain.MaxFeedbackCommentLength+1)
	for i := range long {
		long[i] = 'о'
	}
	_, err = env.svc.LeaveFeedback(context.Background(), 10, 4, string(long))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLeaveFeedbackNotAllowedBeforeMeeting(t *testing.T) {
	env := newTestEnv(&domain.Order{ID: 10, UserID: 1, Status: domain.StatusPending})

	_, err := env.svc.LeaveFeedback(context.Background(), 10, 4, "")
	require.ErrorIs(t, err, ErrFeedbackNotAllowed)
}

func TestLeaveFeedbackDuplicate(t *testing.T) {
	env := newTestEnv(&domain.Order{ID: 10, UserID: 1, Status: domain.StatusDelivered})
	env.feedbackRepo.err = feedbackRepository.ErrFeedbackExists

	_, err := env.svc.LeaveFeedback(context.Background(), 10, 4, "")
	require.ErrorIs(t, err, ErrFeedbackExists)
}

func TestListAllStatusFilter(t *testing.T) {
	env := newTestEnv(&domain.Order{ID: 10, UserID: 1, Status: domain.StatusPending})
	env.orderRepo.list = []*domain.OrderDetails{{}, {}}

	list, err := env.svc.ListAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, list, 2)

	valid := string(domain.StatusMet)
	_, err = env.svc.ListAll(context.Background(), &valid)
	require.NoError(t, err)

	unknown := "shipped"
	_, err = env.svc.ListAll(context.Background(), &unknown)
	require.ErrorIs(t, err, ErrInvalidInput)
}
