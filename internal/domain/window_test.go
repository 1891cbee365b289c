package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/postbureau/PB-MeetingService/pkg/types"
)

func TestGenerateWindowSpans(t *testing.T) {
	tests := []struct {
		name     string
		start    types.TimeString
		end      types.TimeString
		duration int
		want     []WindowSpan
	}{
		{
			name:     "интервал делится нацело",
			start:    "10:00",
			end:      "10:30",
			duration: 10,
			want: []WindowSpan{
				{StartTime: "10:00", EndTime: "10:10"},
				{StartTime: "10:10", EndTime: "10:20"},
				{StartTime: "10:20", EndTime: "10:30"},
			},
		},
		{
			name:     "неполное последнее окно отбрасывается",
			start:    "10:00",
			end:      "10:30",
			duration: 15,
			want: []WindowSpan{
				{StartTime: "10:00", EndTime: "10:15"},
				{StartTime: "10:15", EndTime: "10:30"},
			},
		},
		{
			name:     "остаток меньше длительности",
			start:    "10:00",
			end:      "10:25",
			duration: 10,
			want: []WindowSpan{
				{StartTime: "10:00", EndTime: "10:10"},
				{StartTime: "10:10", EndTime: "10:20"},
			},
		},
		{
			name:     "интервал короче одного окна",
			start:    "10:00",
			end:      "10:05",
			duration: 10,
			want:     []WindowSpan{},
		},
		{
			name:     "хвост интервала у полуночи отбрасывается",
			start:    "23:50",
			end:      "23:59",
			duration: 15,
			want:     []WindowSpan{},
		},
		{
			name:     "интервал вплотную к полуночи",
			start:    "23:00",
			end:      "23:59",
			duration: 15,
			want: []WindowSpan{
				{StartTime: "23:00", EndTime: "23:15"},
				{StartTime: "23:15", EndTime: "23:30"},
				{StartTime: "23:30", EndTime: "23:45"},
			},
		},
		{
			name:     "одно окно на весь интервал",
			start:    "09:00",
			end:      "17:00",
			duration: 480,
			want: []WindowSpan{
				{StartTime: "09:00", EndTime: "17:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateWindowSpans(tt.start, tt.end, tt.duration)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateWindowSpansContiguous(t *testing.T) {
	spans, err := GenerateWindowSpans("09:00", "12:37", 10)
	require.NoError(t, err)
	require.NotEmpty(t, spans)

	// Окна идут подряд без дыр и перекрытий
	for i := 1; i < len(spans); i++ {
		require.Equal(t, spans[i-1].EndTime, spans[i].StartTime)
	}
	require.Equal(t, types.TimeString("09:00"), spans[0].StartTime)
	require.False(t, spans[len(spans)-1].EndTime.IsAfter("12:37"))
}

func TestGenerateWindowSpansInvalidInput(t *testing.T) {
	_, err := GenerateWindowSpans("bad", "10:00", 10)
	require.Error(t, err)

	_, err = GenerateWindowSpans("10:00", "bad", 10)
	require.Error(t, err)

	_, err = GenerateWindowSpans("10:00", "11:00", 0)
	require.Error(t, err)

	_, err = GenerateWindowSpans("10:00", "11:00", -5)
	require.Error(t, err)
}

func TestWindowOccupancy(t *testing.T) {
	w := &Window{Capacity: 3, CurrentBookings: 0}
	require.False(t, w.IsFull())
	require.Equal(t, 3, w.FreeSpots())

	w.CurrentBookings = 2
	require.False(t, w.IsFull())
	require.Equal(t, 1, w.FreeSpots())

	w.CurrentBookings = 3
	require.True(t, w.IsFull())
	require.Equal(t, 0, w.FreeSpots())
}
