package analytics

import (
	"time"

	"github.com/google/uuid"
)

// ChartKind selects which daily series a chart carries.
type ChartKind string

const (
	ChartKindRevenue      ChartKind = "revenue"
	ChartKindAppointments ChartKind = "appointments"
	ChartKindCustomers    ChartKind = "customers"
)

// IsValid reports whether the kind is in the closed set.
func (k ChartKind) IsValid() bool {
	switch k {
	case ChartKindRevenue, ChartKindAppointments, ChartKindCustomers:
		return true
	}
	return false
}

// ChartPoint is one dated value of a chart series.
type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ChartData is a daily time series over the window, oldest day first.
type ChartData struct {
	Kind   ChartKind    `json:"kind"`
	Points []ChartPoint `json:"points"`
}

// BuildChartData assembles a daily series for the window. The customers kind
// counts distinct customers seen per day. Unbounded windows chart the default
// span ending at now.
func BuildChartData(kind ChartKind, appointments []AppointmentRecord, w Window, now time.Time) ChartData {
	start, days := seriesStart(w, now)

	var series []float64
	switch kind {
	case ChartKindAppointments:
		series = DailyCountSeries(appointments, w, now)
	case ChartKindCustomers:
		series = dailyCustomerSeries(appointments, start, days)
	default:
		series = DailyRevenueSeries(appointments, w, now)
	}

	points := make([]ChartPoint, days)
	for i := 0; i < days; i++ {
		points[i] = ChartPoint{
			Date:  start.AddDate(0, 0, i).Format("2006-01-02"),
			Value: series[i],
		}
	}
	return ChartData{Kind: kind, Points: points}
}

func dailyCustomerSeries(appointments []AppointmentRecord, start time.Time, days int) []float64 {
	seen := make([]map[uuid.UUID]struct{}, days)
	for _, r := range appointments {
		i, ok := seriesIndex(r, start, days)
		if !ok || r.CustomerID == uuid.Nil {
			continue
		}
		if seen[i] == nil {
			seen[i] = make(map[uuid.UUID]struct{})
		}
		seen[i][r.CustomerID] = struct{}{}
	}
	series := make([]float64, days)
	for i, m := range seen {
		series[i] = float64(len(m))
	}
	return series
}
