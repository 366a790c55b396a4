// Package store holds the persistence layer: explicitly constructed store
// objects wrapping an injected *gorm.DB, passed into handlers rather than
// imported as ambient state. Failures come back as apperr values.
package store

import (
	"strings"

	"gorm.io/gorm"
)

// isUniqueViolation detects a unique-index conflict from the sqlite driver.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}
