package botgateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestNotifySendsPayload(t *testing.T) {
	var got notifyRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/internal/notifications", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, noopLogger{})

	err := client.Notify(context.Background(), 100, "Заказ #1 отменён")
	require.NoError(t, err)
	require.Equal(t, int64(100), got.TelegramID)
	require.Equal(t, "Заказ #1 отменён", got.Message)
}

func TestNotifyStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "ok", status: http.StatusOK, wantErr: nil},
		{name: "accepted", status: http.StatusAccepted, wantErr: nil},
		{name: "получатель не найден", status: http.StatusNotFound, wantErr: ErrRecipientNotFound},
		{name: "ошибка шлюза", status: http.StatusInternalServerError, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second, noopLogger{})

			err := client.Notify(context.Background(), 100, "msg")
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNotifyWithGracefulDegradation(t *testing.T) {
	// Шлюз недоступен: операция деградирует, а не падает с сырой ошибкой
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, noopLogger{})

	err := client.NotifyWithGracefulDegradation(context.Background(), 100, "msg")
	require.ErrorIs(t, err, ErrServiceDegraded)
}

func TestNotifyWithGracefulDegradationRecipientNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, noopLogger{})

	// Отсутствие получателя не считается деградацией канала
	err := client.NotifyWithGracefulDegradation(context.Background(), 100, "msg")
	require.ErrorIs(t, err, ErrRecipientNotFound)
}
