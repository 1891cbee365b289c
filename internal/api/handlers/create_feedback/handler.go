package create_feedback

import (
	"errors"
	"net/http"
	"time"

	"github.com/postbureau/PB-MeetingService/internal/api/handlers"
	ordersService "github.com/postbureau/PB-MeetingService/internal/service/orders"
)

const (
	msgInvalidOrderID     = "некорректный идентификатор заказа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgOrderNotFound      = "заказ не найден"
	msgFeedbackExists     = "обратная связь по заказу уже оставлена"
	msgFeedbackNotAllowed = "обратную связь можно оставить только после встречи"
	msgInvalidRating      = "некорректная оценка или комментарий"
)

// CreateFeedbackRequest тело запроса обратной связи
type CreateFeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// FeedbackResponse сохранённая обратная связь
type FeedbackResponse struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"orderId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

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

// Handle POST /api/v1/orders/{orderId}/feedback
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID, err := handlers.PathInt64(r, "orderId")
	if err != nil {
		h.logger.Warn("POST /orders/{orderId}/feedback - Invalid order id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	var req CreateFeedbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders/{orderId}/feedback - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.LeaveFeedback(r.Context(), orderID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, ordersService.ErrOrderNotFound):
			h.logger.Warn("POST /orders/{orderId}/feedback - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, ordersService.ErrFeedbackExists):
			h.logger.Warn("POST /orders/{orderId}/feedback - Feedback exists: order_id=%d", orderID)
			handlers.RespondError(w, http.StatusConflict, msgFeedbackExists)

		case errors.Is(err, ordersService.ErrFeedbackNotAllowed):
			h.logger.Warn("POST /orders/{orderId}/feedback - Feedback not allowed: order_id=%d", orderID)
			handlers.RespondError(w, http.StatusConflict, msgFeedbackNotAllowed)

		case errors.Is(err, ordersService.ErrInvalidInput):
			h.logger.Warn("POST /orders/{orderId}/feedback - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRating)

		default:
			h.logger.Error("POST /orders/{orderId}/feedback - Failed: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders/{orderId}/feedback - Feedback id=%d saved for order_id=%d", created.ID, orderID)
	handlers.RespondJSON(w, http.StatusCreated, FeedbackResponse{
		ID:        created.ID,
		OrderID:   created.OrderID,
		Rating:    created.Rating,
		Comment:   created.Comment,
		CreatedAt: created.CreatedAt,
	})
}
