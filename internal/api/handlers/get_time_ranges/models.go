package get_time_ranges

import (
	"time"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	"github.com/postbureau/PB-MeetingService/pkg/types"
)

// TimeRangeItem интервал доступности в ответе API
type TimeRangeItem struct {
	ID                   int64            `json:"id"`
	Date                 string           `json:"date"`
	StartTime            types.TimeString `json:"startTime"`
	EndTime              types.TimeString `json:"endTime"`
	WindowDurationMin    int              `json:"windowDurationMin"`
	MaxMeetingsPerWindow int              `json:"maxMeetingsPerWindow"`
	IsActive             bool             `json:"isActive"`
	CreatedAt            time.Time        `json:"createdAt"`
}

// TimeRangeListResponse ответ со списком интервалов
type TimeRangeListResponse struct {
	TimeRanges []TimeRangeItem `json:"timeRanges"`
}

// FromDomainList конвертирует доменные интервалы в ответ API
func FromDomainList(list []*domain.TimeRange) *TimeRangeListResponse {
	items := make([]TimeRangeItem, 0, len(list))
	for _, tr := range list {
		items = append(items, TimeRangeItem{
			ID:                   tr.ID,
			Date:                 tr.Date.Format(domain.DateFormat),
			StartTime:            tr.StartTime,
			EndTime:              tr.EndTime,
			WindowDurationMin:    tr.WindowDurationMin,
			MaxMeetingsPerWindow: tr.MaxMeetingsPerWindow,
			IsActive:             tr.IsActive,
			CreatedAt:            tr.CreatedAt,
		})
	}
	return &TimeRangeListResponse{TimeRanges: items}
}
