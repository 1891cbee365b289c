package get_order

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// OrdersService интерфейс сервиса заказов
type OrdersService interface {
	GetByID(ctx context.Context, id, requesterTelegramID int64, isAdmin bool) (*domain.OrderDetails, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
