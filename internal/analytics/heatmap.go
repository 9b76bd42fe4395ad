package analytics

// HeatmapCell is one day-of-week x hour-of-day bucket of booking volume.
type HeatmapCell struct {
	Day   int     `json:"day"`
	Hour  int     `json:"hour"`
	Value float64 `json:"value"`
}

// HeatmapData is the booking heatmap: occupied cells plus the global
// max/min across them. Max and Min are recomputed from the cells on every
// build, never carried over.
type HeatmapData struct {
	Cells []HeatmapCell `json:"cells"`
	Max   float64       `json:"max"`
	Min   float64       `json:"min"`
}

// BuildBookingHeatmap buckets appointments by local weekday and hour.
// Records without a start time are excluded. Only non-empty cells are
// emitted; an empty input yields no cells and zero max/min.
func BuildBookingHeatmap(appointments []AppointmentRecord) HeatmapData {
	var counts [7][24]int
	for _, r := range appointments {
		if r.StartTime == nil {
			continue
		}
		counts[int(r.StartTime.Weekday())][r.StartTime.Hour()]++
	}

	data := HeatmapData{Cells: make([]HeatmapCell, 0)}
	first := true
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			n := counts[day][hour]
			if n == 0 {
				continue
			}
			v := float64(n)
			data.Cells = append(data.Cells, HeatmapCell{Day: day, Hour: hour, Value: v})
			if first || v > data.Max {
				data.Max = v
			}
			if first || v < data.Min {
				data.Min = v
			}
			first = false
		}
	}
	return data
}
