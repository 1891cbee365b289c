package create_order

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/postbureau/PB-MeetingService/internal/api/middleware"
	placeOrder "github.com/postbureau/PB-MeetingService/internal/usecase/place_order"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *placeOrder.Response
	err  error
	got  *placeOrder.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *placeOrder.Request) (*placeOrder.Response, error) {
	s.got = req
	return s.resp, s.err
}

func doRequest(t *testing.T, uc *stubUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewReader(payload))
	req = req.WithContext(middleware.WithIdentity(req.Context(), middleware.Identity{TelegramID: 100}))
	rec := httptest.NewRecorder()

	NewHandler(uc, noopLogger{}).Handle(rec, req)
	return rec
}

func TestHandleCreated(t *testing.T) {
	uc := &stubUseCase{resp: &placeOrder.Response{
		ID:              1,
		MeetingWindowID: 7,
		Status:          "pending",
		WindowStart:     "10:00",
		WindowEnd:       "10:10",
		CardType1Count:  2,
	}}

	rec := doRequest(t, uc, CreateOrderRequest{MeetingWindowID: 7, CardType1Count: 2})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Telegram ID берётся из identity, а не из тела запроса
	require.Equal(t, int64(100), uc.got.TelegramID)

	var resp CreateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(1), resp.ID)
	require.Equal(t, "pending", resp.Status)
	require.Equal(t, "10:00", resp.WindowStart.String())
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{name: "некорректный ввод", useCaseErr: placeOrder.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "пользователь не найден", useCaseErr: placeOrder.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "окно не найдено", useCaseErr: placeOrder.ErrWindowNotFound, wantStatus: http.StatusNotFound},
		{name: "окно заполнено", useCaseErr: placeOrder.ErrWindowUnavailable, wantStatus: http.StatusConflict},
		{name: "лимит заказов", useCaseErr: placeOrder.ErrQuotaExceeded, wantStatus: http.StatusConflict},
		{name: "конфликт сериализации", useCaseErr: placeOrder.ErrConflict, wantStatus: http.StatusConflict},
		{name: "внутренняя ошибка", useCaseErr: placeOrder.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.useCaseErr}, CreateOrderRequest{MeetingWindowID: 7})
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewReader([]byte(`{bad json`)))
	req = req.WithContext(middleware.WithIdentity(req.Context(), middleware.Identity{TelegramID: 100}))
	rec := httptest.NewRecorder()

	NewHandler(&stubUseCase{}, noopLogger{}).Handle(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUnknownField(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, map[string]interface{}{
		"meetingWindowId": 7,
		"unknownField":    true,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
