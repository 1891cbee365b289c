package get_time_windows

import (
	"errors"
	"net/http"

	"github.com/postbureau/PB-MeetingService/internal/api/handlers"
	windowsService "github.com/postbureau/PB-MeetingService/internal/service/windows"
)

const (
	msgInvalidRangeID = "некорректный идентификатор интервала"
	msgRangeNotFound  = "интервал не найден"
)

type Handler struct {
	service WindowsService
	logger  Logger
}

func NewHandler(service WindowsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/time-windows/{rangeId}
// По умолчанию возвращаются только окна со свободными местами,
// ?all=true включает заполненные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rangeID, err := handlers.PathInt64(r, "rangeId")
	if err != nil {
		h.logger.Warn("GET /time-windows/{rangeId} - Invalid range id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRangeID)
		return
	}

	onlyAvailable := r.URL.Query().Get("all") != "true"

	list, err := h.service.ListByRange(r.Context(), rangeID, onlyAvailable)
	if err != nil {
		if errors.Is(err, windowsService.ErrRangeNotFound) {
			h.logger.Warn("GET /time-windows/{rangeId} - Range not found: range_id=%d", rangeID)
			handlers.RespondNotFound(w, msgRangeNotFound)
			return
		}
		h.logger.Error("GET /time-windows/{rangeId} - Failed: range_id=%d, error=%v", rangeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /time-windows/{rangeId} - Fetched %d windows for range_id=%d", len(list), rangeID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}
