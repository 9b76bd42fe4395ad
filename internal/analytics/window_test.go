package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func TestResolveWindow(t *testing.T) {
	t.Run("both bounds present", func(t *testing.T) {
		w := ResolveWindow(datePtr("2024-01-01"), datePtr("2024-01-31"))
		assert.True(t, w.Bounded())
		assert.Equal(t, 30, w.Days())
	})

	t.Run("missing bound means unbounded", func(t *testing.T) {
		assert.False(t, ResolveWindow(datePtr("2024-01-01"), nil).Bounded())
		assert.False(t, ResolveWindow(nil, datePtr("2024-01-31")).Bounded())
		assert.False(t, ResolveWindow(nil, nil).Bounded())
	})

	t.Run("unbounded window uses default span for durations", func(t *testing.T) {
		assert.Equal(t, DefaultWindowDays, ResolveWindow(nil, nil).Days())
	})
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day clamps to one", "2024-01-01", "2024-01-01", 1},
		{"single day", "2024-01-01", "2024-01-02", 1},
		{"week", "2024-01-01", "2024-01-08", 7},
		{"thirty days", "2024-01-01", "2024-01-31", 30},
		{"negative span clamps to one", "2024-01-10", "2024-01-01", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(date(tt.start), date(tt.end)))
		})
	}

	t.Run("partial day rounds up", func(t *testing.T) {
		start := date("2024-01-01")
		end := start.Add(25 * time.Hour)
		assert.Equal(t, 2, DaysBetween(start, end))
	})
}

func TestPreviousPeriod(t *testing.T) {
	t.Run("symmetry", func(t *testing.T) {
		w := ResolveWindow(datePtr("2024-02-01"), datePtr("2024-02-11"))
		prev := w.Previous()
		require.True(t, prev.Bounded())

		// Equal duration, contiguous, previousEnd == start
		assert.Equal(t, w.End.Sub(*w.Start), prev.End.Sub(*prev.Start))
		assert.Equal(t, *w.Start, *prev.End)
		assert.Equal(t, date("2024-01-22"), *prev.Start)
	})

	t.Run("unbounded window has no previous period", func(t *testing.T) {
		prev := ResolveWindow(nil, datePtr("2024-02-11")).Previous()
		assert.Nil(t, prev.Start)
		assert.Nil(t, prev.End)
	})
}

func TestWindowContains(t *testing.T) {
	w := ResolveWindow(datePtr("2024-01-01"), datePtr("2024-01-31"))

	assert.True(t, w.Contains(date("2024-01-01")), "start is inclusive")
	assert.True(t, w.Contains(date("2024-01-30")))
	assert.False(t, w.Contains(date("2024-01-31")), "end is exclusive")
	assert.False(t, w.Contains(date("2023-12-31")))

	unbounded := Window{}
	assert.True(t, unbounded.Contains(date("1990-06-15")))
}
