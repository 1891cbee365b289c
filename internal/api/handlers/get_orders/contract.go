package get_orders

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// OrdersService интерфейс сервиса заказов
type OrdersService interface {
	ListAll(ctx context.Context, status *string) ([]*domain.OrderDetails, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
