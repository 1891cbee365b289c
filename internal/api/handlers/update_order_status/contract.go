package update_order_status

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	cancelOrder "github.com/postbureau/PB-MeetingService/internal/usecase/cancel_order"
)

// OrdersService интерфейс сервиса заказов
type OrdersService interface {
	UpdateStatus(ctx context.Context, orderID int64, newStatus domain.OrderStatus) (*domain.OrderDetails, error)
}

// CancelOrderUseCase интерфейс use case отмены заказа
type CancelOrderUseCase interface {
	Execute(ctx context.Context, req *cancelOrder.Request) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
