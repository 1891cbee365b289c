package get_orders

import (
	"errors"
	"net/http"

	"github.com/postbureau/PB-MeetingService/internal/api/handlers"
	ordersService "github.com/postbureau/PB-MeetingService/internal/service/orders"
)

const msgInvalidStatus = "некорректный статус заказа"

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

// Handle GET /api/v1/orders?status=
// Список всех заказов для панели администратора
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	list, err := h.service.ListAll(r.Context(), status)
	if err != nil {
		if errors.Is(err, ordersService.ErrInvalidInput) {
			h.logger.Warn("GET /orders - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /orders - Failed to list orders: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /orders - Fetched %d orders", len(list))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}
