package create_order

import (
	"context"

	placeOrder "github.com/postbureau/PB-MeetingService/internal/usecase/place_order"
)

// PlaceOrderUseCase интерфейс use case создания заказа
type PlaceOrderUseCase interface {
	Execute(ctx context.Context, req *placeOrder.Request) (*placeOrder.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
