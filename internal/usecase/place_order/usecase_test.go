package place_order

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	windowsService "github.com/postbureau/PB-MeetingService/internal/service/windows"
	"github.com/postbureau/PB-MeetingService/pkg/ptr"
	"github.com/postbureau/PB-MeetingService/pkg/txmanager"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// passthroughTx выполняет функцию без реальной транзакции
type passthroughTx struct {
	err error
}

func (tx *passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx.err != nil {
		return tx.err
	}
	return fn(ctx)
}

type stubUserRepo struct {
	user *domain.User
	err  error
}

func (s *stubUserRepo) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	return s.user, s.err
}

type stubOrderRepo struct {
	mu     sync.Mutex
	nextID int64
	err    error
}

func (s *stubOrderRepo) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	created := *o
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	return &created, nil
}

// stubAllocator аллокатор с потокобезопасным счётчиком занятости
type stubAllocator struct {
	mu       sync.Mutex
	capacity int
	bookings int
	err      error
}

func (s *stubAllocator) Reserve(ctx context.Context, windowID, userID int64) (*domain.Window, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bookings >= s.capacity {
		return nil, windowsService.ErrWindowUnavailable
	}
	s.bookings++
	return &domain.Window{
		ID:              windowID,
		StartTime:       "10:00",
		EndTime:         "10:10",
		Capacity:        s.capacity,
		CurrentBookings: s.bookings,
		IsAvailable:     s.bookings < s.capacity,
	}, nil
}

func validRequest() *Request {
	return &Request{
		TelegramID:      100,
		MeetingWindowID: 7,
		CardType1Count:  1,
		CardType2Count:  2,
	}
}

func newTestUseCase(orderRepo *stubOrderRepo, allocator *stubAllocator, userRepo *stubUserRepo, tx *passthroughTx) *UseCase {
	return NewUseCase(orderRepo, allocator, userRepo, tx, noopLogger{})
}

func TestExecuteSuccess(t *testing.T) {
	uc := newTestUseCase(
		&stubOrderRepo{},
		&stubAllocator{capacity: 1},
		&stubUserRepo{user: &domain.User{ID: 1, TelegramID: 100}},
		&passthroughTx{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.ID)
	require.Equal(t, int64(1), resp.UserID)
	require.Equal(t, int64(7), resp.MeetingWindowID)
	require.Equal(t, string(domain.StatusPending), resp.Status)
	require.Equal(t, "10:00", resp.WindowStart.String())
	require.Equal(t, 1, resp.CardType1Count)
	require.Equal(t, 2, resp.CardType2Count)
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "нулевой telegram id", mutate: func(r *Request) { r.TelegramID = 0 }},
		{name: "нулевое окно", mutate: func(r *Request) { r.MeetingWindowID = 0 }},
		{name: "отрицательное количество", mutate: func(r *Request) { r.CardType1Count = -1 }},
		{name: "заказ без открыток", mutate: func(r *Request) {
			r.CardType1Count, r.CardType2Count, r.CardType3Count = 0, 0, 0
		}},
		{name: "слишком длинное описание", mutate: func(r *Request) {
			long := make([]rune, domain.MaxCardDescriptionLength+1)
			for i := range long {
				long[i] = 'ы'
			}
			r.CardType1Desc = string(long)
		}},
		{name: "отрицательная отсрочка", mutate: func(r *Request) { r.DeliveryDelayDays = -1 }},
		{name: "отсрочка больше года", mutate: func(r *Request) { r.DeliveryDelayDays = domain.MaxDeliveryDelayDays + 1 }},
		{name: "некорректный location id", mutate: func(r *Request) {
			r.LocationID = ptr.Ptr(int64(0))
		}},
	}

	uc := newTestUseCase(
		&stubOrderRepo{},
		&stubAllocator{capacity: 10},
		&stubUserRepo{user: &domain.User{ID: 1, TelegramID: 100}},
		&passthroughTx{},
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecuteUserNotFound(t *testing.T) {
	uc := newTestUseCase(
		&stubOrderRepo{},
		&stubAllocator{capacity: 1},
		&stubUserRepo{err: errors.New("no rows")},
		&passthroughTx{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecuteAllocatorErrors(t *testing.T) {
	tests := []struct {
		name         string
		allocatorErr error
		wantErr      error
	}{
		{name: "лимит заказов", allocatorErr: windowsService.ErrQuotaExceeded, wantErr: ErrQuotaExceeded},
		{name: "окно не найдено", allocatorErr: windowsService.ErrWindowNotFound, wantErr: ErrWindowNotFound},
		{name: "окно заполнено", allocatorErr: windowsService.ErrWindowUnavailable, wantErr: ErrWindowUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(
				&stubOrderRepo{},
				&stubAllocator{err: tt.allocatorErr},
				&stubUserRepo{user: &domain.User{ID: 1, TelegramID: 100}},
				&passthroughTx{},
			)

			_, err := uc.Execute(context.Background(), validRequest())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecuteRetriesExhausted(t *testing.T) {
	uc := newTestUseCase(
		&stubOrderRepo{},
		&stubAllocator{capacity: 1},
		&stubUserRepo{user: &domain.User{ID: 1, TelegramID: 100}},
		&passthroughTx{err: txmanager.ErrRetriesExhausted},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrConflict)
}

func TestExecuteConcurrentOverbooking(t *testing.T) {
	// Конкурентные заказы на окно вместимостью capacity: успешных
	// должно быть ровно capacity, остальные получают отказ
	const (
		capacity   = 3
		goroutines = 10
	)

	allocator := &stubAllocator{capacity: capacity}
	uc := newTestUseCase(
		&stubOrderRepo{},
		allocator,
		&stubUserRepo{user: &domain.User{ID: 1, TelegramID: 100}},
		&passthroughTx{},
	)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrWindowUnavailable):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, capacity, succeeded)
	require.Equal(t, goroutines-capacity, rejected)
	require.Equal(t, capacity, allocator.bookings)
}
