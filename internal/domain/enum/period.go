package enum

// Period is a named reporting window used when explicit dates are absent
type Period string

const (
	PeriodDay     Period = "day"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// IsValid reports whether the period is in the closed set
func (p Period) IsValid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

// Days returns the span of the period in days
func (p Period) Days() int {
	switch p {
	case PeriodDay:
		return 1
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	case PeriodQuarter:
		return 90
	case PeriodYear:
		return 365
	}
	return 30
}

func (p Period) String() string {
	return string(p)
}
