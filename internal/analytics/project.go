package analytics

// RevenueProjections extrapolates a period's revenue to standard horizons.
type RevenueProjections struct {
	Daily     float64 `json:"daily"`
	Weekly    float64 `json:"weekly"`
	Monthly   float64 `json:"monthly"`
	Quarterly float64 `json:"quarterly"`
}

// ProjectRevenue linearly extrapolates periodRevenue over periodDays into
// daily/weekly/monthly/quarterly figures. The extrapolation is deliberately
// linear with no seasonality adjustment; callers must not expect smoothing.
func ProjectRevenue(periodRevenue float64, periodDays int) RevenueProjections {
	if periodDays < 1 {
		periodDays = 1
	}
	daily := periodRevenue / float64(periodDays)
	return RevenueProjections{
		Daily:     daily,
		Weekly:    daily * 7,
		Monthly:   daily * 30,
		Quarterly: daily * 90,
	}
}
