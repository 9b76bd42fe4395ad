package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectRevenueLinearity(t *testing.T) {
	p := ProjectRevenue(700, 7)
	assert.InDelta(t, 100.0, p.Daily, 1e-6)
	assert.InDelta(t, 700.0, p.Weekly, 1e-6)
	assert.InDelta(t, 3000.0, p.Monthly, 1e-6)
	assert.InDelta(t, 9000.0, p.Quarterly, 1e-6)
}

func TestProjectRevenueDayFloor(t *testing.T) {
	p := ProjectRevenue(100, 0)
	assert.InDelta(t, 100.0, p.Daily, 1e-6, "period days clamp to 1")
}

func TestProjectRevenueZero(t *testing.T) {
	p := ProjectRevenue(0, 30)
	assert.Zero(t, p.Daily)
	assert.Zero(t, p.Quarterly)
}
