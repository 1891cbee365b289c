package get_time_ranges

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/postbureau/PB-MeetingService/internal/api/handlers"
	"github.com/postbureau/PB-MeetingService/internal/domain"
)

const msgInvalidDate = "некорректная дата, ожидается YYYY-MM-DD"

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

// HandleList GET /api/v1/time-ranges
// Все интервалы для панели администратора
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /time-ranges - Failed to list ranges: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /time-ranges - Fetched %d ranges", len(list))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}

// HandleByDate GET /api/v1/time-ranges/{date}
// Активные интервалы на дату для записи на встречу
func (h *Handler) HandleByDate(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("GET /time-ranges/{date} - Invalid date %q: %v", raw, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.ListActiveByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /time-ranges/{date} - Failed to list ranges for date=%s: %v", raw, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /time-ranges/{date} - Fetched %d active ranges for date=%s", len(list), raw)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}
