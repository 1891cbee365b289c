package ensure_user

import (
	"errors"
	"net/http"

	"github.com/postbureau/PB-MeetingService/internal/api/handlers"
	"github.com/postbureau/PB-MeetingService/internal/api/middleware"
	usersService "github.com/postbureau/PB-MeetingService/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные пользователя"
)

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/users
// Идемпотентная регистрация: Telegram ID берётся из identity вызывающего
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	var req EnsureUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Ensure(r.Context(), identity.TelegramID, req.Username, req.FullName)
	if err != nil {
		if errors.Is(err, usersService.ErrInvalidInput) {
			h.logger.Warn("POST /users - Invalid input for telegram_id=%d: %v", identity.TelegramID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /users - Failed to ensure user telegram_id=%d: %v", identity.TelegramID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /users - User id=%d (telegram_id=%d) ensured", user.ID, user.TelegramID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainUser(user))
}
