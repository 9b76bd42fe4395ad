package repository

import (
	"errors"

	"gorm.io/gorm"
)

// firstOrNil runs the prepared query and translates gorm's not-found error
// into a nil record, the convention every lookup in this package follows.
func firstOrNil[T any](q *gorm.DB) (*T, error) {
	var out T
	err := q.First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
