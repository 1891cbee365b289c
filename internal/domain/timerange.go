package domain

import (
	"time"

	"github.com/postbureau/PB-MeetingService/pkg/types"
)

// TimeRange интервал доступности, объявленный администратором.
// При создании интервал материализуется в набор дочерних окон
// (см. GenerateWindowSpans); набор окон полностью определяется
// полями StartTime, EndTime и WindowDurationMin.
type TimeRange struct {
	ID                   int64
	Date                 time.Time // дата без времени
	StartTime            types.TimeString
	EndTime              types.TimeString
	WindowDurationMin    int
	MaxMeetingsPerWindow int
	IsActive             bool
	CreatedAt            time.Time
}

// HasValidBounds возвращает true, если начало строго раньше конца
func (r *TimeRange) HasValidBounds() bool {
	return r.StartTime.IsBefore(r.EndTime)
}
