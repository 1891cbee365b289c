package create_feedback

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// OrdersService интерфейс сервиса заказов
type OrdersService interface {
	LeaveFeedback(ctx context.Context, orderID int64, rating int, comment string) (*domain.Feedback, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
