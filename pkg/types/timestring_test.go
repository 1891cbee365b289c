package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeStringValidate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "обычное время", value: "10:30", valid: true},
		{name: "полночь", value: "00:00", valid: true},
		{name: "конец суток", value: "23:59", valid: true},
		{name: "без ведущего нуля", value: "9:30", valid: true},
		{name: "часы вне диапазона", value: "24:00", valid: false},
		{name: "минуты вне диапазона", value: "10:60", valid: false},
		{name: "пустая строка", value: "", valid: false},
		{name: "мусор", value: "abcd", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TimeString(tt.value).Validate()
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidTimeString)
			}
		})
	}
}

func TestTimeStringComparisons(t *testing.T) {
	require.True(t, TimeString("10:00").IsBefore("10:30"))
	require.False(t, TimeString("10:30").IsBefore("10:00"))
	require.False(t, TimeString("10:00").IsBefore("10:00"))

	require.True(t, TimeString("10:30").IsAfter("10:00"))
	require.False(t, TimeString("10:00").IsAfter("10:00"))

	// Некорректные значения не считаются ни раньше, ни позже
	require.False(t, TimeString("bad").IsBefore("10:00"))
	require.False(t, TimeString("10:00").IsAfter("bad"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(45)
	require.NoError(t, err)
	require.Equal(t, TimeString("10:45"), got)

	// Переход через час
	got, err = TimeString("10:50").AddMinutes(15)
	require.NoError(t, err)
	require.Equal(t, TimeString("11:05"), got)

	_, err = TimeString("bad").AddMinutes(10)
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringMinutesUntil(t *testing.T) {
	m, err := TimeString("10:00").MinutesUntil("11:30")
	require.NoError(t, err)
	require.Equal(t, 90, m)

	m, err = TimeString("11:30").MinutesUntil("10:00")
	require.NoError(t, err)
	require.Equal(t, -90, m)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	// Postgres возвращает TIME с секундами
	require.NoError(t, ts.Scan("10:30:00"))
	require.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15:00")))
	require.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 14, 5, 0, 0, time.UTC)))
	require.Equal(t, TimeString("14:05"), ts)

	require.NoError(t, ts.Scan(nil))
	require.True(t, ts.IsZero())

	require.Error(t, ts.Scan(42))
}

func TestTimeStringJSON(t *testing.T) {
	data, err := TimeString("10:30").MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"10:30"`, string(data))

	var ts TimeString
	require.NoError(t, ts.UnmarshalJSON([]byte(`"11:45"`)))
	require.Equal(t, TimeString("11:45"), ts)

	require.ErrorIs(t, ts.UnmarshalJSON([]byte(`11:45`)), ErrInvalidTimeString)
}
