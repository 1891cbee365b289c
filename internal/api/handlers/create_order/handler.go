package create_order

import (
	"errors"
	"net/http"

	"github.com/postbureau/PB-MeetingService/internal/api/handlers"
	"github.com/postbureau/PB-MeetingService/internal/api/middleware"
	placeOrder "github.com/postbureau/PB-MeetingService/internal/usecase/place_order"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUserNotFound       = "пользователь не зарегистрирован"
	msgWindowNotFound     = "временное окно не найдено"
	msgWindowUnavailable  = "в выбранном окне нет свободных мест"
	msgQuotaExceeded      = "превышен лимит одновременных заказов"
	msgConflict           = "слишком много одновременных заказов, попробуйте ещё раз"
)

type Handler struct {
	useCase PlaceOrderUseCase
	logger  Logger
}

func NewHandler(useCase PlaceOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(identity.TelegramID))
	if err != nil {
		switch {
		case errors.Is(err, placeOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid input: telegram_id=%d: %v", identity.TelegramID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, placeOrder.ErrUserNotFound):
			h.logger.Warn("POST /orders - User not found: telegram_id=%d", identity.TelegramID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, placeOrder.ErrWindowNotFound):
			h.logger.Warn("POST /orders - Window not found: window=%d", req.MeetingWindowID)
			handlers.RespondNotFound(w, msgWindowNotFound)

		case errors.Is(err, placeOrder.ErrWindowUnavailable):
			h.logger.Warn("POST /orders - Window unavailable: window=%d", req.MeetingWindowID)
			handlers.RespondError(w, http.StatusConflict, msgWindowUnavailable)

		case errors.Is(err, placeOrder.ErrQuotaExceeded):
			h.logger.Warn("POST /orders - Quota exceeded: telegram_id=%d", identity.TelegramID)
			handlers.RespondError(w, http.StatusConflict, msgQuotaExceeded)

		case errors.Is(err, placeOrder.ErrConflict):
			h.logger.Warn("POST /orders - Serialization conflict: window=%d", req.MeetingWindowID)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		default:
			h.logger.Error("POST /orders - Failed to place order: telegram_id=%d, error=%v", identity.TelegramID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - Order created: order_id=%d, telegram_id=%d", result.ID, identity.TelegramID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
