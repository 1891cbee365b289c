package create_range

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubRangeRepo struct {
	created *domain.TimeRange
	err     error
}

func (s *stubRangeRepo) Create(ctx context.Context, tr *domain.TimeRange) (*domain.TimeRange, error) {
	if s.err != nil {
		return nil, s.err
	}
	created := *tr
	created.ID = 5
	created.CreatedAt = time.Now()
	s.created = &created
	return &created, nil
}

type stubWindowRepo struct {
	bulkCalls int
	spans     []domain.WindowSpan
	capacity  int
}

func (s *stubWindowRepo) BulkCreate(ctx context.Context, rangeID int64, spans []domain.WindowSpan, capacity int) error {
	s.bulkCalls++
	s.spans = spans
	s.capacity = capacity
	return nil
}

func newTestUseCase(rr *stubRangeRepo, wr *stubWindowRepo) *UseCase {
	return NewUseCase(rr, wr, passthroughTx{}, noopLogger{})
}

func testDate() time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
}

func TestCreateRangeMaterializesWindows(t *testing.T) {
	rr := &stubRangeRepo{}
	wr := &stubWindowRepo{}
	uc := newTestUseCase(rr, wr)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:                 testDate(),
		StartTime:            "10:00",
		EndTime:              "10:30",
		WindowDurationMin:    15,
		MaxMeetingsPerWindow: 2,
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), resp.ID)
	require.True(t, resp.IsActive)
	require.Equal(t, 2, resp.WindowsCreated)

	require.Equal(t, 1, wr.bulkCalls)
	require.Equal(t, 2, wr.capacity)
	require.Equal(t, []domain.WindowSpan{
		{StartTime: "10:00", EndTime: "10:15"},
		{StartTime: "10:15", EndTime: "10:30"},
	}, wr.spans)
}

func TestCreateRangeDefaults(t *testing.T) {
	rr := &stubRangeRepo{}
	wr := &stubWindowRepo{}
	uc := newTestUseCase(rr, wr)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      testDate(),
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.NoError(t, err)
	require.Equal(t, domain.DefaultWindowDurationMin, resp.WindowDurationMin)
	require.Equal(t, domain.DefaultMaxMeetingsPerWindow, resp.MaxMeetingsPerWindow)
	require.Equal(t, 6, resp.WindowsCreated)
	require.Equal(t, domain.DefaultMaxMeetingsPerWindow, wr.capacity)
}

func TestCreateRangeShorterThanWindow(t *testing.T) {
	// Интервал короче одного окна: интервал создаётся без окон
	rr := &stubRangeRepo{}
	wr := &stubWindowRepo{}
	uc := newTestUseCase(rr, wr)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:              testDate(),
		StartTime:         "10:00",
		EndTime:           "10:05",
		WindowDurationMin: 10,
	})
	require.NoError(t, err)
	require.Equal(t, 0, resp.WindowsCreated)
	require.Zero(t, wr.bulkCalls)
	require.NotNil(t, rr.created)
}

func TestCreateRangeValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "без даты", req: &Request{StartTime: "10:00", EndTime: "11:00"}},
		{name: "кривое начало", req: &Request{Date: testDate(), StartTime: "25:00", EndTime: "11:00"}},
		{name: "кривой конец", req: &Request{Date: testDate(), StartTime: "10:00", EndTime: "11:70"}},
		{name: "начало после конца", req: &Request{Date: testDate(), StartTime: "12:00", EndTime: "11:00"}},
		{name: "начало равно концу", req: &Request{Date: testDate(), StartTime: "11:00", EndTime: "11:00"}},
		{name: "длительность больше предела", req: &Request{
			Date: testDate(), StartTime: "10:00", EndTime: "11:00",
			WindowDurationMin: domain.MaxWindowDurationMin + 1,
		}},
		{name: "вместимость больше предела", req: &Request{
			Date: testDate(), StartTime: "10:00", EndTime: "11:00",
			MaxMeetingsPerWindow: domain.MaxMeetingsPerWindow + 1,
		}},
	}

	uc := newTestUseCase(&stubRangeRepo{}, &stubWindowRepo{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
