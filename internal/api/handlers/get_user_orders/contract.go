package get_user_orders

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// OrdersService интерфейс сервиса заказов
type OrdersService interface {
	ListByUser(ctx context.Context, telegramID int64) ([]*domain.OrderDetails, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
