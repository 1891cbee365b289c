package update_order_status

import (
	"errors"
	"net/http"

	"github.com/postbureau/PB-MeetingService/internal/api/handlers"
	"github.com/postbureau/PB-MeetingService/internal/api/middleware"
	"github.com/postbureau/PB-MeetingService/internal/domain"
	ordersService "github.com/postbureau/PB-MeetingService/internal/service/orders"
	cancelOrder "github.com/postbureau/PB-MeetingService/internal/usecase/cancel_order"
)

const (
	msgInvalidOrderID     = "некорректный идентификатор заказа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgOrderNotFound      = "заказ не найден"
	msgInvalidTransition  = "недопустимый переход статуса"
	msgAlreadyFinished    = "заказ уже завершён"
	msgAccessDenied       = "нет доступа к этому заказу"
	msgAdminOnly          = "смена статуса доступна только администратору"
	msgInvalidStatus      = "некорректный статус"
)

// UpdateStatusRequest тело запроса на смену статуса заказа
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"` // причина, для отмены
}

// StatusResponse ответ со сменённым статусом
type StatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type Handler struct {
	service  OrdersService
	cancelUC CancelOrderUseCase
	logger   Logger
}

func NewHandler(service OrdersService, cancelUC CancelOrderUseCase, logger Logger) *Handler {
	return &Handler{
		service:  service,
		cancelUC: cancelUC,
		logger:   logger,
	}
}

// Handle PUT /api/v1/orders/{orderId}/status
// Переводы met/delivered выполняет администратор; отмену может запросить
// и владелец заказа - она идёт отдельным сценарием с освобождением окна
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	orderID, err := handlers.PathInt64(r, "orderId")
	if err != nil {
		h.logger.Warn("PUT /orders/{orderId}/status - Invalid order id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /orders/{orderId}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	switch domain.OrderStatus(req.Status) {
	case domain.StatusCancelled:
		h.handleCancel(w, r, orderID, req.Reason, identity)
	case domain.StatusMet, domain.StatusDelivered:
		h.handleTransition(w, r, orderID, domain.OrderStatus(req.Status), identity)
	default:
		h.logger.Warn("PUT /orders/{orderId}/status - Invalid status %q", req.Status)
		handlers.RespondBadRequest(w, msgInvalidStatus)
	}
}

func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request, orderID int64, status domain.OrderStatus, identity middleware.Identity) {
	if !identity.IsAdmin {
		h.logger.Warn("PUT /orders/{orderId}/status - Non-admin transition attempt: telegram_id=%d", identity.TelegramID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	details, err := h.service.UpdateStatus(r.Context(), orderID, status)
	if err != nil {
		switch {
		case errors.Is(err, ordersService.ErrOrderNotFound):
			h.logger.Warn("PUT /orders/{orderId}/status - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, ordersService.ErrInvalidTransition):
			h.logger.Warn("PUT /orders/{orderId}/status - Invalid transition: order_id=%d -> %s", orderID, status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, ordersService.ErrInvalidInput):
			h.logger.Warn("PUT /orders/{orderId}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PUT /orders/{orderId}/status - Failed: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /orders/{orderId}/status - Order id=%d moved to %s", orderID, status)
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{ID: details.ID, Status: string(details.Status)})
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request, orderID int64, reason string, identity middleware.Identity) {
	err := h.cancelUC.Execute(r.Context(), &cancelOrder.Request{
		OrderID:    orderID,
		TelegramID: identity.TelegramID,
		IsAdmin:    identity.IsAdmin,
		Reason:     reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelOrder.ErrOrderNotFound):
			h.logger.Warn("PUT /orders/{orderId}/status - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, cancelOrder.ErrUserNotFound):
			h.logger.Warn("PUT /orders/{orderId}/status - User not found: telegram_id=%d", identity.TelegramID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, cancelOrder.ErrAccessDenied):
			h.logger.Warn("PUT /orders/{orderId}/status - Access denied: order_id=%d, telegram_id=%d", orderID, identity.TelegramID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cancelOrder.ErrAlreadyFinished):
			h.logger.Warn("PUT /orders/{orderId}/status - Already finished: order_id=%d", orderID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyFinished)

		case errors.Is(err, cancelOrder.ErrInvalidInput):
			h.logger.Warn("PUT /orders/{orderId}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /orders/{orderId}/status - Failed to cancel: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /orders/{orderId}/status - Order id=%d cancelled", orderID)
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{ID: orderID, Status: string(domain.StatusCancelled)})
}
