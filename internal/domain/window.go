package domain

import (
	"fmt"
	"time"

	"github.com/postbureau/PB-MeetingService/pkg/types"
)

// WindowSpan пара (начало, конец) одного сгенерированного окна
type WindowSpan struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Window дискретное бронируемое окно, дочернее ровно одному TimeRange.
// Инварианты: 0 <= CurrentBookings <= Capacity;
// IsAvailable всегда эквивалентно CurrentBookings < Capacity и
// пересчитывается при каждой мутации занятости, а не задаётся извне.
type Window struct {
	ID              int64
	RangeID         int64
	StartTime       types.TimeString
	EndTime         types.TimeString
	Capacity        int
	CurrentBookings int
	IsAvailable     bool
	CreatedAt       time.Time
}

// IsFull возвращает true, если свободных мест в окне нет
func (w *Window) IsFull() bool {
	return w.CurrentBookings >= w.Capacity
}

// FreeSpots возвращает количество свободных мест
func (w *Window) FreeSpots() int {
	free := w.Capacity - w.CurrentBookings
	if free < 0 {
		return 0
	}
	return free
}

// GenerateWindowSpans разбивает интервал [start, end) на последовательные
// окна длительностью durationMin минут. Чистая функция: результат полностью
// определяется аргументами.
//
// Окна идут подряд без перекрытий: начало i-го окна равно
// start + i*durationMin. Последнее неполное окно отбрасывается - окно,
// чей конец вышел бы за end, в результат не попадает. Если интервал короче
// одной длительности, возвращается пустой список - это корректный исход,
// а не ошибка.
func GenerateWindowSpans(start, end types.TimeString, durationMin int) ([]WindowSpan, error) {
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}
	if err := end.Validate(); err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}
	if durationMin <= 0 {
		return nil, fmt.Errorf("window duration must be positive, got %d", durationMin)
	}

	// Остаток считается арифметически в минутах: сравнение времени суток
	// после AddMinutes ненадёжно у границы полуночи, где часы заворачиваются
	remaining, err := start.MinutesUntil(end)
	if err != nil {
		return nil, err
	}

	spans := make([]WindowSpan, 0, max(remaining/durationMin, 0))
	current := start

	for ; remaining >= durationMin; remaining -= durationMin {
		next, err := current.AddMinutes(durationMin)
		if err != nil {
			return nil, err
		}
		spans = append(spans, WindowSpan{StartTime: current, EndTime: next})
		current = next
	}

	return spans, nil
}
