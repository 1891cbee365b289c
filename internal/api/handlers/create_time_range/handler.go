package create_time_range

import (
	"errors"
	"net/http"

	"github.com/postbureau/PB-MeetingService/internal/api/handlers"
	createRange "github.com/postbureau/PB-MeetingService/internal/usecase/create_range"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
)

type Handler struct {
	useCase CreateRangeUseCase
	logger  Logger
}

func NewHandler(useCase CreateRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/time-ranges
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTimeRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time-ranges - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /time-ranges - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, createRange.ErrInvalidInput) {
			h.logger.Warn("POST /time-ranges - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /time-ranges - Failed to create range: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /time-ranges - Range id=%d created with %d windows", result.ID, result.WindowsCreated)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
