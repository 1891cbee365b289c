package windows

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	windowRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/window"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubWindowRepo struct {
	window       *domain.Window
	getErr       error
	incrementErr error
	decrementErr error
	increments   int
	decrements   int
	list         []*domain.Window
	listErr      error
}

func (s *stubWindowRepo) BulkCreate(ctx context.Context, rangeID int64, spans []domain.WindowSpan, capacity int) error {
	return nil
}

func (s *stubWindowRepo) GetByID(ctx context.Context, id int64) (*domain.Window, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	w := *s.window
	return &w, nil
}

func (s *stubWindowRepo) IncrementBookings(ctx context.Context, id int64) error {
	if s.incrementErr != nil {
		return s.incrementErr
	}
	s.increments++
	return nil
}

func (s *stubWindowRepo) DecrementBookings(ctx context.Context, id int64) error {
	if s.decrementErr != nil {
		return s.decrementErr
	}
	s.decrements++
	return nil
}

func (s *stubWindowRepo) ListByRange(ctx context.Context, rangeID int64, onlyAvailable bool) ([]*domain.Window, error) {
	return s.list, s.listErr
}

type stubRangeRepo struct {
	tr  *domain.TimeRange
	err error
}

func (s *stubRangeRepo) GetByID(ctx context.Context, id int64) (*domain.TimeRange, error) {
	return s.tr, s.err
}

type stubOrderRepo struct {
	active int
	err    error
}

func (s *stubOrderRepo) CountActiveByUser(ctx context.Context, userID int64) (int, error) {
	return s.active, s.err
}

func newTestService(wr *stubWindowRepo, rr *stubRangeRepo, or *stubOrderRepo) *Service {
	return NewService(wr, rr, or, noopLogger{})
}

func TestReserveSuccess(t *testing.T) {
	wr := &stubWindowRepo{window: &domain.Window{ID: 7, Capacity: 2, CurrentBookings: 0, IsAvailable: true}}
	svc := newTestService(wr, &stubRangeRepo{}, &stubOrderRepo{active: 0})

	w, err := svc.Reserve(context.Background(), 7, 1)
	require.NoError(t, err)
	require.Equal(t, 1, wr.increments)
	require.Equal(t, 1, w.CurrentBookings)
	require.True(t, w.IsAvailable)
}

func TestReserveLastSeatFlipsAvailability(t *testing.T) {
	wr := &stubWindowRepo{window: &domain.Window{ID: 7, Capacity: 2, CurrentBookings: 1, IsAvailable: true}}
	svc := newTestService(wr, &stubRangeRepo{}, &stubOrderRepo{})

	w, err := svc.Reserve(context.Background(), 7, 1)
	require.NoError(t, err)
	require.Equal(t, 2, w.CurrentBookings)
	require.False(t, w.IsAvailable)
}

func TestReserveQuotaExceeded(t *testing.T) {
	wr := &stubWindowRepo{window: &domain.Window{ID: 7, Capacity: 5}}
	svc := newTestService(wr, &stubRangeRepo{}, &stubOrderRepo{active: domain.MaxActiveOrdersPerUser})

	_, err := svc.Reserve(context.Background(), 7, 1)
	require.ErrorIs(t, err, ErrQuotaExceeded)
	require.Zero(t, wr.increments)
}

func TestReserveWindowNotFound(t *testing.T) {
	wr := &stubWindowRepo{getErr: windowRepo.ErrWindowNotFound}
	svc := newTestService(wr, &stubRangeRepo{}, &stubOrderRepo{})

	_, err := svc.Reserve(context.Background(), 7, 1)
	require.ErrorIs(t, err, ErrWindowNotFound)
}

func TestReserveWindowFull(t *testing.T) {
	wr := &stubWindowRepo{window: &domain.Window{ID: 7, Capacity: 2, CurrentBookings: 2}}
	svc := newTestService(wr, &stubRangeRepo{}, &stubOrderRepo{})

	_, err := svc.Reserve(context.Background(), 7, 1)
	require.ErrorIs(t, err, ErrWindowUnavailable)
	require.Zero(t, wr.increments)
}

func TestReserveConcurrentFill(t *testing.T) {
	// Окно выглядело свободным на чтении, но UPDATE наткнулся
	// на исчерпанную вместимость
	wr := &stubWindowRepo{
		window:       &domain.Window{ID: 7, Capacity: 2, CurrentBookings: 1},
		incrementErr: windowRepo.ErrWindowFull,
	}
	svc := newTestService(wr, &stubRangeRepo{}, &stubOrderRepo{})

	_, err := svc.Reserve(context.Background(), 7, 1)
	require.ErrorIs(t, err, ErrWindowUnavailable)
}

func TestReleaseSuccess(t *testing.T) {
	wr := &stubWindowRepo{}
	svc := newTestService(wr, &stubRangeRepo{}, &stubOrderRepo{})

	require.NoError(t, svc.Release(context.Background(), 7))
	require.Equal(t, 1, wr.decrements)
}

func TestReleaseNotOccupied(t *testing.T) {
	wr := &stubWindowRepo{decrementErr: windowRepo.ErrNotOccupied}
	svc := newTestService(wr, &stubRangeRepo{}, &stubOrderRepo{})

	err := svc.Release(context.Background(), 7)
	require.ErrorIs(t, err, ErrWindowNotOccupied)
}

func TestListByRangeUnknownRange(t *testing.T) {
	svc := newTestService(&stubWindowRepo{}, &stubRangeRepo{err: errors.New("not found")}, &stubOrderRepo{})

	_, err := svc.ListByRange(context.Background(), 99, true)
	require.ErrorIs(t, err, ErrRangeNotFound)
}

func TestListByRangeSuccess(t *testing.T) {
	wr := &stubWindowRepo{list: []*domain.Window{{ID: 1}, {ID: 2}}}
	svc := newTestService(wr, &stubRangeRepo{tr: &domain.TimeRange{ID: 5}}, &stubOrderRepo{})

	list, err := svc.ListByRange(context.Background(), 5, false)
	require.NoError(t, err)
	require.Len(t, list, 2)
}
