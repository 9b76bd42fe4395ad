package enum

import "database/sql/driver"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"

	// AppointmentStatusUnknown is the bucket for records whose status is
	// empty or outside the closed set. They are counted, never dropped.
	AppointmentStatusUnknown AppointmentStatus = "unknown"
)

// AllAppointmentStatuses returns the closed set of valid statuses
func AllAppointmentStatuses() []AppointmentStatus {
	return []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	}
}

// IsValid reports whether the status is in the closed set
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// CountsAsBooked reports whether the appointment occupies salon capacity
func (s AppointmentStatus) CountsAsBooked() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCompleted:
		return true
	}
	return false
}

func (s AppointmentStatus) String() string {
	return string(s)
}

func (s AppointmentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *AppointmentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = AppointmentStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = AppointmentStatus(v)
	case []byte:
		*s = AppointmentStatus(v)
	}
	return nil
}
