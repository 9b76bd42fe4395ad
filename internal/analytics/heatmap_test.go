package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildBookingHeatmapMaxMin(t *testing.T) {
	// Cell volumes 3, 7, 1, 9 spread over distinct day/hour buckets,
	// inserted in that order; max and min must come out of the cells alone.
	volumes := []struct {
		day   string
		hour  int
		count int
	}{
		{"2024-03-04", 9, 3},
		{"2024-03-05", 10, 7},
		{"2024-03-06", 11, 1},
		{"2024-03-07", 12, 9},
	}

	var records []AppointmentRecord
	for _, v := range volumes {
		for i := 0; i < v.count; i++ {
			start := date(v.day).Add(time.Duration(v.hour) * time.Hour)
			records = append(records, AppointmentRecord{StartTime: &start})
		}
	}

	data := BuildBookingHeatmap(records)

	assert.Len(t, data.Cells, 4)
	assert.InDelta(t, 9.0, data.Max, 1e-6)
	assert.InDelta(t, 1.0, data.Min, 1e-6)

	var total float64
	for _, c := range data.Cells {
		total += c.Value
	}
	assert.InDelta(t, 20.0, total, 1e-6)
}

func TestBuildBookingHeatmapExcludesUntimed(t *testing.T) {
	start := date("2024-03-04").Add(9 * time.Hour)
	records := []AppointmentRecord{
		{StartTime: &start},
		{StartTime: nil},
	}

	data := BuildBookingHeatmap(records)
	assert.Len(t, data.Cells, 1)
	assert.InDelta(t, 1.0, data.Max, 1e-6)
}

func TestBuildBookingHeatmapEmpty(t *testing.T) {
	data := BuildBookingHeatmap(nil)
	assert.Empty(t, data.Cells)
	assert.Zero(t, data.Max)
	assert.Zero(t, data.Min)
}
