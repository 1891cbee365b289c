package get_user_orders

import (
	"net/http"

	"github.com/postbureau/PB-MeetingService/internal/api/handlers"
	"github.com/postbureau/PB-MeetingService/internal/api/middleware"
)

const (
	msgInvalidTelegramID = "некорректный Telegram ID"
	msgAccessDenied      = "нет доступа к заказам этого пользователя"
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

// Handle GET /api/v1/users/{telegramId}/orders
// Пользователь видит только свою историю, администратор - любую
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	telegramID, err := handlers.PathInt64(r, "telegramId")
	if err != nil {
		h.logger.Warn("GET /users/{telegramId}/orders - Invalid telegram id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTelegramID)
		return
	}

	if !identity.IsAdmin && identity.TelegramID != telegramID {
		h.logger.Warn("GET /users/{telegramId}/orders - Access denied: requester=%d, target=%d",
			identity.TelegramID, telegramID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	list, err := h.service.ListByUser(r.Context(), telegramID)
	if err != nil {
		h.logger.Error("GET /users/{telegramId}/orders - Failed to list orders: telegram_id=%d, error=%v", telegramID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{telegramId}/orders - Fetched %d orders for telegram_id=%d", len(list), telegramID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}
