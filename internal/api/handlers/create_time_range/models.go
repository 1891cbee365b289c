package create_time_range

import (
	"fmt"
	"time"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	createRange "github.com/postbureau/PB-MeetingService/internal/usecase/create_range"
	"github.com/postbureau/PB-MeetingService/pkg/types"
)

// CreateTimeRangeRequest тело запроса на создание интервала
type CreateTimeRangeRequest struct {
	Date                 string `json:"date"`      // YYYY-MM-DD
	StartTime            string `json:"startTime"` // HH:MM
	EndTime              string `json:"endTime"`   // HH:MM
	WindowDurationMin    int    `json:"windowDurationMin,omitempty"`
	MaxMeetingsPerWindow int    `json:"maxMeetingsPerWindow,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP-запрос в модель use case
func (r *CreateTimeRangeRequest) ToUseCaseRequest() (*createRange.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime: %w", err)
	}

	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid endTime: %w", err)
	}

	return &createRange.Request{
		Date:                 date,
		StartTime:            start,
		EndTime:              end,
		WindowDurationMin:    r.WindowDurationMin,
		MaxMeetingsPerWindow: r.MaxMeetingsPerWindow,
	}, nil
}

// TimeRangeResponse созданный интервал в ответе API
type TimeRangeResponse struct {
	ID                   int64            `json:"id"`
	Date                 string           `json:"date"`
	StartTime            types.TimeString `json:"startTime"`
	EndTime              types.TimeString `json:"endTime"`
	WindowDurationMin    int              `json:"windowDurationMin"`
	MaxMeetingsPerWindow int              `json:"maxMeetingsPerWindow"`
	IsActive             bool             `json:"isActive"`
	WindowsCreated       int              `json:"windowsCreated"`
	CreatedAt            time.Time        `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в ответ API
func FromUseCaseResponse(resp *createRange.Response) *TimeRangeResponse {
	return &TimeRangeResponse{
		ID:                   resp.ID,
		Date:                 resp.Date.Format(domain.DateFormat),
		StartTime:            resp.StartTime,
		EndTime:              resp.EndTime,
		WindowDurationMin:    resp.WindowDurationMin,
		MaxMeetingsPerWindow: resp.MaxMeetingsPerWindow,
		IsActive:             resp.IsActive,
		WindowsCreated:       resp.WindowsCreated,
		CreatedAt:            resp.CreatedAt,
	}
}
