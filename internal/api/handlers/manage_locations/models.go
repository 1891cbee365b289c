package manage_locations

import (
	"time"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// CreateLocationRequest тело запроса на создание места встречи
type CreateLocationRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	IsCustom bool   `json:"isCustom,omitempty"`
}

// LocationResponse место встречи в ответе API
type LocationResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address,omitempty"`
	IsCustom       bool      `json:"isCustom"`
	CreatedByAdmin bool      `json:"createdByAdmin"`
	CreatedAt      time.Time `json:"createdAt"`
}

// LocationListResponse ответ со списком мест встреч
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// FromDomainLocation конвертирует доменное место в ответ API
func FromDomainLocation(loc *domain.Location) *LocationResponse {
	return &LocationResponse{
		ID:             loc.ID,
		Name:           loc.Name,
		Address:        loc.Address,
		IsCustom:       loc.IsCustom,
		CreatedByAdmin: loc.CreatedByAdmin,
		CreatedAt:      loc.CreatedAt,
	}
}

// FromDomainList конвертирует доменные места в ответ API
func FromDomainList(list []*domain.Location) *LocationListResponse {
	items := make([]LocationResponse, 0, len(list))
	for _, loc := range list {
		items = append(items, *FromDomainLocation(loc))
	}
	return &LocationListResponse{Locations: items}
}
