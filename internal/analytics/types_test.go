package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestScopeAppointmentsNoEntityFilters(t *testing.T) {
	records := []AppointmentRecord{
		{ID: uuid.New(), StaffID: uuid.New()},
		{ID: uuid.New(), StaffID: uuid.New()},
	}

	scoped := ScopeAppointments(records, Filters{})
	assert.Len(t, scoped, 2)
}

func TestScopeAppointmentsByStaff(t *testing.T) {
	staffID := uuid.New()
	records := []AppointmentRecord{
		{ID: uuid.New(), StaffID: staffID},
		{ID: uuid.New(), StaffID: uuid.New()},
		{ID: uuid.New(), StaffID: staffID},
	}

	scoped := ScopeAppointments(records, Filters{StaffID: &staffID})
	assert.Len(t, scoped, 2)
	for _, r := range scoped {
		assert.Equal(t, staffID, r.StaffID)
	}
}

func TestScopeAppointmentsCombinesFilters(t *testing.T) {
	staffID := uuid.New()
	serviceID := uuid.New()
	records := []AppointmentRecord{
		{ID: uuid.New(), StaffID: staffID, ServiceID: serviceID},
		{ID: uuid.New(), StaffID: staffID, ServiceID: uuid.New()},
		{ID: uuid.New(), StaffID: uuid.New(), ServiceID: serviceID},
	}

	scoped := ScopeAppointments(records, Filters{StaffID: &staffID, ServiceID: &serviceID})
	assert.Len(t, scoped, 1)
}

func TestFiltersMatchesByCustomer(t *testing.T) {
	customerID := uuid.New()
	r := AppointmentRecord{ID: uuid.New(), CustomerID: customerID}

	assert.True(t, Filters{CustomerID: &customerID}.Matches(r))

	otherID := uuid.New()
	assert.False(t, Filters{CustomerID: &otherID}.Matches(r))
}
