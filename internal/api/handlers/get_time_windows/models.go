package get_time_windows

import (
	"github.com/postbureau/PB-MeetingService/internal/domain"
	"github.com/postbureau/PB-MeetingService/pkg/types"
)

// WindowItem временное окно в ответе API
type WindowItem struct {
	ID              int64            `json:"id"`
	RangeID         int64            `json:"rangeId"`
	StartTime       types.TimeString `json:"startTime"`
	EndTime         types.TimeString `json:"endTime"`
	Capacity        int              `json:"capacity"`
	CurrentBookings int              `json:"currentBookings"`
	FreeSpots       int              `json:"freeSpots"`
	IsAvailable     bool             `json:"isAvailable"`
}

// WindowListResponse ответ со списком окон
type WindowListResponse struct {
	Windows []WindowItem `json:"windows"`
}

// FromDomainList конвертирует доменные окна в ответ API
func FromDomainList(list []*domain.Window) *WindowListResponse {
	items := make([]WindowItem, 0, len(list))
	for _, w := range list {
		items = append(items, WindowItem{
			ID:              w.ID,
			RangeID:         w.RangeID,
			StartTime:       w.StartTime,
			EndTime:         w.EndTime,
			Capacity:        w.Capacity,
			CurrentBookings: w.CurrentBookings,
			FreeSpots:       w.FreeSpots(),
			IsAvailable:     w.IsAvailable,
		})
	}
	return &WindowListResponse{Windows: items}
}
