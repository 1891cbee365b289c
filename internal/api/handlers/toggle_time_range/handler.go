package toggle_time_range

import (
	"errors"
	"net/http"

	"github.com/postbureau/PB-MeetingService/internal/api/handlers"
	"github.com/postbureau/PB-MeetingService/internal/domain"
	timerangesService "github.com/postbureau/PB-MeetingService/internal/service/timeranges"
	"github.com/postbureau/PB-MeetingService/pkg/types"
)

const (
	msgInvalidRangeID = "некорректный идентификатор интервала"
	msgRangeNotFound  = "интервал не найден"
)

// ToggleResponse интервал после переключения
type ToggleResponse struct {
	ID        int64            `json:"id"`
	Date      string           `json:"date"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	IsActive  bool             `json:"isActive"`
}

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

// Handle PUT /api/v1/time-ranges/{rangeId}/toggle
// Переключает активность интервала на противоположную
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rangeID, err := handlers.PathInt64(r, "rangeId")
	if err != nil {
		h.logger.Warn("PUT /time-ranges/{rangeId}/toggle - Invalid range id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRangeID)
		return
	}

	current, err := h.service.GetByID(r.Context(), rangeID)
	if err != nil {
		if errors.Is(err, timerangesService.ErrRangeNotFound) {
			h.logger.Warn("PUT /time-ranges/{rangeId}/toggle - Range not found: range_id=%d", rangeID)
			handlers.RespondNotFound(w, msgRangeNotFound)
			return
		}
		h.logger.Error("PUT /time-ranges/{rangeId}/toggle - Failed to get range: range_id=%d, error=%v", rangeID, err)
		handlers.RespondInternalError(w)
		return
	}

	updated, err := h.service.SetActive(r.Context(), rangeID, !current.IsActive)
	if err != nil {
		if errors.Is(err, timerangesService.ErrRangeNotFound) {
			handlers.RespondNotFound(w, msgRangeNotFound)
			return
		}
		h.logger.Error("PUT /time-ranges/{rangeId}/toggle - Failed to toggle: range_id=%d, error=%v", rangeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /time-ranges/{rangeId}/toggle - Range id=%d is_active=%v", rangeID, updated.IsActive)
	handlers.RespondJSON(w, http.StatusOK, ToggleResponse{
		ID:        updated.ID,
		Date:      updated.Date.Format(domain.DateFormat),
		StartTime: updated.StartTime,
		EndTime:   updated.EndTime,
		IsActive:  updated.IsActive,
	})
}
