package create_range

import (
	"fmt"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Значения по умолчанию для длительности и вместимости
// уже должны быть подставлены
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if req.WindowDurationMin < domain.MinWindowDurationMin || req.WindowDurationMin > domain.MaxWindowDurationMin {
		return fmt.Errorf("%w: windowDurationMin must be between %d and %d",
			ErrInvalidInput, domain.MinWindowDurationMin, domain.MaxWindowDurationMin)
	}

	if req.MaxMeetingsPerWindow < domain.MinMeetingsPerWindow || req.MaxMeetingsPerWindow > domain.MaxMeetingsPerWindow {
		return fmt.Errorf("%w: maxMeetingsPerWindow must be between %d and %d",
			ErrInvalidInput, domain.MinMeetingsPerWindow, domain.MaxMeetingsPerWindow)
	}

	return nil
}
