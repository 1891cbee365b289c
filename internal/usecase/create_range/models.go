package create_range

import (
	"time"

	"github.com/postbureau/PB-MeetingService/pkg/types"
)

// Request модель запроса на создание интервала доступности
type Request struct {
	Date                 time.Time        // дата без времени
	StartTime            types.TimeString // начало интервала
	EndTime              types.TimeString // конец интервала
	WindowDurationMin    int              // длительность окна, 0 = значение по умолчанию
	MaxMeetingsPerWindow int              // вместимость окна, 0 = значение по умолчанию
}

// Response модель ответа с созданным интервалом
type Response struct {
	ID                   int64
	Date                 time.Time
	StartTime            types.TimeString
	EndTime              types.TimeString
	WindowDurationMin    int
	MaxMeetingsPerWindow int
	IsActive             bool
	WindowsCreated       int // количество материализованных окон
	CreatedAt            time.Time
}
