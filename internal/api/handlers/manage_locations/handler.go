package manage_locations

import (
	"errors"
	"net/http"

	"github.com/postbureau/PB-MeetingService/internal/api/handlers"
	"github.com/postbureau/PB-MeetingService/internal/api/middleware"
	locationsService "github.com/postbureau/PB-MeetingService/internal/service/locations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocationID  = "некорректный идентификатор места встречи"
	msgLocationNotFound   = "место встречи не найдено"
	msgInvalidName        = "название места встречи обязательно"
)

type Handler struct {
	service LocationsService
	logger  Logger
}

func NewHandler(service LocationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/locations
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	var req CreateLocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	loc, err := h.service.Create(r.Context(), req.Name, req.Address, req.IsCustom, identity.IsAdmin)
	if err != nil {
		if errors.Is(err, locationsService.ErrInvalidInput) {
			h.logger.Warn("POST /locations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidName)
			return
		}
		h.logger.Error("POST /locations - Failed to create location: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /locations - Location id=%d created", loc.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainLocation(loc))
}

// HandleList GET /api/v1/locations
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /locations - Failed to list locations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /locations - Fetched %d locations", len(list))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}

// HandleDelete DELETE /api/v1/locations/{locationId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	locationID, err := handlers.PathInt64(r, "locationId")
	if err != nil {
		h.logger.Warn("DELETE /locations/{locationId} - Invalid location id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	if err := h.service.Delete(r.Context(), locationID); err != nil {
		if errors.Is(err, locationsService.ErrLocationNotFound) {
			h.logger.Warn("DELETE /locations/{locationId} - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)
			return
		}
		h.logger.Error("DELETE /locations/{locationId} - Failed: location_id=%d, error=%v", locationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /locations/{locationId} - Location id=%d deleted", locationID)
	w.WriteHeader(http.StatusNoContent)
}
