package enum

import "database/sql/driver"

// ReviewStatus represents the moderation state of a review
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
	ReviewStatusFlagged  ReviewStatus = "flagged"
)

// IsValid reports whether the status is in the closed set
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected, ReviewStatusFlagged:
		return true
	}
	return false
}

func (s ReviewStatus) String() string {
	return string(s)
}

func (s ReviewStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ReviewStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ReviewStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ReviewStatus(v)
	case []byte:
		*s = ReviewStatus(v)
	}
	return nil
}
