package generate_sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandDates(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		days       []string
		exclude    []string
		want       []time.Time
	}{
		{
			name:  "week with three days",
			start: date(2024, time.June, 3), // понедельник
			end:   date(2024, time.June, 9),
			days:  []string{"monday", "wednesday", "friday"},
			want: []time.Time{
				date(2024, time.June, 3),
				date(2024, time.June, 5),
				date(2024, time.June, 7),
			},
		},
		{
			name:    "exclusion removes one date",
			start:   date(2024, time.June, 3),
			end:     date(2024, time.June, 9),
			days:    []string{"monday", "wednesday", "friday"},
			exclude: []string{"2024-06-05"},
			want: []time.Time{
				date(2024, time.June, 3),
				date(2024, time.June, 7),
			},
		},
		{
			name:    "irrelevant exclusions are no-ops",
			start:   date(2024, time.June, 3),
			end:     date(2024, time.June, 5),
			days:    []string{"tuesday"},
			exclude: []string{"2024-12-25", "not-a-date"},
			want:    []time.Time{date(2024, time.June, 4)},
		},
		{
			name:  "start after end",
			start: date(2024, time.June, 9),
			end:   date(2024, time.June, 3),
			days:  []string{"monday"},
			want:  nil,
		},
		{
			name:  "no selected days",
			start: date(2024, time.June, 3),
			end:   date(2024, time.June, 9),
			days:  nil,
			want:  nil,
		},
		{
			name:  "unknown day names are skipped",
			start: date(2024, time.June, 3),
			end:   date(2024, time.June, 9),
			days:  []string{"funday", "Saturday"},
			want:  []time.Time{date(2024, time.June, 8)},
		},
		{
			name:  "single day range matching",
			start: date(2024, time.June, 3),
			end:   date(2024, time.June, 3),
			days:  []string{"monday"},
			want:  []time.Time{date(2024, time.June, 3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandDates(tt.start, tt.end, tt.days, tt.exclude)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandDates_AscendingOrder(t *testing.T) {
	got := expandDates(date(2024, time.June, 1), date(2024, time.June, 30),
		[]string{"sunday", "saturday"}, nil)

	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i].After(got[i-1]), "dates must be ascending")
	}
}

func TestIsKnownWeekday(t *testing.T) {
	assert.True(t, isKnownWeekday("monday"))
	assert.True(t, isKnownWeekday(" Friday "))
	assert.False(t, isKnownWeekday("funday"))
	assert.False(t, isKnownWeekday(""))
}
