package delete_time_range

import (
	"errors"
	"net/http"

	"github.com/postbureau/PB-MeetingService/internal/api/handlers"
	timerangesService "github.com/postbureau/PB-MeetingService/internal/service/timeranges"
)

const (
	msgInvalidRangeID = "некорректный идентификатор интервала"
	msgRangeNotFound  = "интервал не найден"
	msgRangeInUse     = "в окнах интервала есть активные заказы"
)

type Handler struct {
	service TimeRangesService
	logger  Logger
}

func NewHandler(service TimeRangesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/time-ranges/{rangeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rangeID, err := handlers.PathInt64(r, "rangeId")
	if err != nil {
		h.logger.Warn("DELETE /time-ranges/{rangeId} - Invalid range id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRangeID)
		return
	}

	if err := h.service.Delete(r.Context(), rangeID); err != nil {
		switch {
		case errors.Is(err, timerangesService.ErrRangeNotFound):
			h.logger.Warn("DELETE /time-ranges/{rangeId} - Range not found: range_id=%d", rangeID)
			handlers.RespondNotFound(w, msgRangeNotFound)

		case errors.Is(err, timerangesService.ErrRangeInUse):
			h.logger.Warn("DELETE /time-ranges/{rangeId} - Range in use: range_id=%d", rangeID)
			handlers.RespondError(w, http.StatusConflict, msgRangeInUse)

		default:
			h.logger.Error("DELETE /time-ranges/{rangeId} - Failed: range_id=%d, error=%v", rangeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /time-ranges/{rangeId} - Range id=%d deleted", rangeID)
	w.WriteHeader(http.StatusNoContent)
}
