package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "bare hour", input: "9:00", want: 540},
		{name: "padded hour", input: "09:00", want: 540},
		{name: "with seconds", input: "09:00:00", want: 540},
		{name: "seconds ignored", input: "09:00:59", want: 540},
		{name: "midnight", input: "00:00", want: 0},
		{name: "last minute", input: "23:59", want: 23*60 + 59},
		{name: "leading whitespace", input: " 14:30", want: 14*60 + 30},
		{name: "empty", input: "", wantErr: true},
		{name: "no colon", input: "900", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "negative hour", input: "-1:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "single digit minute", input: "9:5", wantErr: true},
		{name: "not a number", input: "ab:cd", wantErr: true},
		{name: "too many parts", input: "09:00:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:00:00", TimeOfDay(540).String())
	assert.Equal(t, "00:00:00", TimeOfDay(0).String())
	assert.Equal(t, "23:59:00", TimeOfDay(23*60+59).String())
}

func TestFormat12Hour(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "09:00:00", want: "9:00 AM"},
		{input: "12:00:00", want: "12:00 PM"},
		{input: "00:00:00", want: "12:00 AM"},
		{input: "13:30:00", want: "1:30 PM"},
		{input: "23:59:00", want: "11:59 PM"},
		{input: "11:59:00", want: "11:59 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tod, err := ParseTimeOfDay(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tod.Format12Hour())
		})
	}
}

func TestFormatTime12HourFallback(t *testing.T) {
	// Malformed stored values pass through unchanged.
	assert.Equal(t, "garbage", FormatTime12Hour("garbage"))
	assert.Equal(t, "", FormatTime12Hour(""))
	assert.Equal(t, "9:00 AM", FormatTime12Hour("09:00:00"))
}

func TestSlotOverlapsAndSameWindow(t *testing.T) {
	slot := func(start, end string) *AvailabilitySlot {
		return &AvailabilitySlot{StartTime: start, EndTime: end}
	}

	a := slot("09:00:00", "12:00:00")

	assert.True(t, a.Overlaps(slot("11:00:00", "13:00:00")))
	assert.True(t, a.Overlaps(slot("08:00:00", "09:30:00")))
	assert.True(t, a.Overlaps(slot("10:00:00", "11:00:00")))
	assert.True(t, a.Overlaps(slot("09:00:00", "12:00:00")))

	// Back-to-back windows share a boundary but do not overlap.
	assert.False(t, a.Overlaps(slot("12:00:00", "13:00:00")))
	assert.False(t, a.Overlaps(slot("08:00:00", "09:00:00")))
	assert.False(t, a.Overlaps(slot("13:00:00", "14:00:00")))

	assert.True(t, a.SameWindow(slot("09:00:00", "12:00:00")))
	assert.False(t, a.SameWindow(slot("09:00:00", "12:30:00")))
}
