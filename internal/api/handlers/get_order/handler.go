package get_order

import (
	"errors"
	"net/http"

	"github.com/postbureau/PB-MeetingService/internal/api/handlers"
	"github.com/postbureau/PB-MeetingService/internal/api/middleware"
	ordersService "github.com/postbureau/PB-MeetingService/internal/service/orders"
)

const (
	msgInvalidOrderID = "некорректный идентификатор заказа"
	msgOrderNotFound  = "заказ не найден"
	msgAccessDenied   = "нет доступа к этому заказу"
)

type Handler struct {
	service OrdersService
	logger  Logger
}

func NewHandler(service OrdersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/orders/{orderId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	orderID, err := handlers.PathInt64(r, "orderId")
	if err != nil {
		h.logger.Warn("GET /orders/{orderId} - Invalid order id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	details, err := h.service.GetByID(r.Context(), orderID, identity.TelegramID, identity.IsAdmin)
	if err != nil {
		switch {
		case errors.Is(err, ordersService.ErrOrderNotFound):
			h.logger.Warn("GET /orders/{orderId} - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, ordersService.ErrAccessDenied):
			h.logger.Warn("GET /orders/{orderId} - Access denied: order_id=%d, telegram_id=%d", orderID, identity.TelegramID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /orders/{orderId} - Failed to get order: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainDetails(details))
}
