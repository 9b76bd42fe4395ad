package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
)

func TestClassifyAppointmentsStatusPartition(t *testing.T) {
	records := []AppointmentRecord{
		{Status: enum.AppointmentStatusCompleted},
		{Status: enum.AppointmentStatusCompleted},
		{Status: enum.AppointmentStatusCancelled},
		{Status: enum.AppointmentStatusNoShow},
		{Status: "mystery"},
		{Status: ""},
	}

	c := ClassifyAppointments(records, nil)

	assert.Equal(t, 2, c.ByStatus[enum.AppointmentStatusCompleted])
	assert.Equal(t, 1, c.ByStatus[enum.AppointmentStatusCancelled])
	assert.Equal(t, 1, c.ByStatus[enum.AppointmentStatusNoShow])
	assert.Equal(t, 2, c.ByStatus[enum.AppointmentStatusUnknown], "unknown statuses are counted, never dropped")

	// Status partition must cover every record
	assert.Equal(t, len(records), c.Total())
}

func TestClassifyAppointmentsNewVersusReturning(t *testing.T) {
	windowStart := date("2024-03-01")
	alice, bob := uuid.New(), uuid.New()

	before := date("2024-02-10")
	inside := date("2024-03-05")

	records := []AppointmentRecord{
		// Alice's earliest record predates the window: returning
		{CustomerID: alice, CreatedAt: before},
		{CustomerID: alice, CreatedAt: inside},
		// Bob first appears inside the window: new
		{CustomerID: bob, CreatedAt: inside},
	}

	c := ClassifyAppointments(records, &windowStart)
	assert.Equal(t, 1, c.NewCustomers)
	assert.Equal(t, 1, c.ReturningCustomers)
	assert.Equal(t, 2, c.TotalCustomers)
	assert.False(t, c.IsNewCustomer[alice])
	assert.True(t, c.IsNewCustomer[bob])
}

func TestClassifyAppointmentsWindowRelative(t *testing.T) {
	// The same customer flips between new and returning depending on the
	// window supplied.
	carol := uuid.New()
	records := []AppointmentRecord{{CustomerID: carol, CreatedAt: date("2024-03-05")}}

	early := date("2024-03-01")
	late := date("2024-04-01")

	assert.Equal(t, 1, ClassifyAppointments(records, &early).NewCustomers)
	assert.Equal(t, 1, ClassifyAppointments(records, &late).ReturningCustomers)
}

func TestClassifyAppointmentsEarliestConsidersStartTime(t *testing.T) {
	windowStart := date("2024-03-01")
	dave := uuid.New()
	earlyStart := date("2024-02-15")

	// Created inside the window but started before it: the earlier of the
	// two timestamps decides, so Dave is returning.
	records := []AppointmentRecord{
		{CustomerID: dave, CreatedAt: date("2024-03-02"), StartTime: &earlyStart},
	}

	c := ClassifyAppointments(records, &windowStart)
	assert.Equal(t, 1, c.ReturningCustomers)
}

func TestClassifyAppointmentsTimeBuckets(t *testing.T) {
	// 2024-03-04 is a Monday
	monday9 := date("2024-03-04").Add(9 * time.Hour)
	monday14 := date("2024-03-04").Add(14 * time.Hour)

	records := []AppointmentRecord{
		{Status: enum.AppointmentStatusCompleted, StartTime: &monday9},
		{Status: enum.AppointmentStatusCompleted, StartTime: &monday14},
		// No start time: excluded from time buckets, still in byStatus
		{Status: enum.AppointmentStatusCompleted},
	}

	c := ClassifyAppointments(records, nil)
	assert.Equal(t, 2, c.ByDayOfWeek[int(time.Monday)])
	assert.Equal(t, 1, c.ByHour[9])
	assert.Equal(t, 1, c.ByHour[14])
	assert.Equal(t, 3, c.ByStatus[enum.AppointmentStatusCompleted])
}

func TestClassifyAppointmentsEmptyInput(t *testing.T) {
	c := ClassifyAppointments(nil, nil)
	assert.Zero(t, c.Total())
	assert.Zero(t, c.TotalCustomers)
	assert.Zero(t, c.NewCustomers)
	assert.Zero(t, c.ReturningCustomers)
}
