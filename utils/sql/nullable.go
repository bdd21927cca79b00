// Package sql provides utilities for working with SQL types and database operations.
package sql

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// NullString converts sql.NullString to a plain string, empty when NULL.
func NullString(value sql.NullString) string {
	if value.Valid {
		return value.String
	}
	return ""
}

// NullStringPtr converts sql.NullString to *string.
// Returns nil if the value is not valid.
func NullStringPtr(value sql.NullString) *string {
	if value.Valid {
		result := value.String
		return &result
	}
	return nil
}

// NullTimePtr converts sql.NullTime to *time.Time.
// Returns nil if the value is not valid.
func NullTimePtr(value sql.NullTime) *time.Time {
	if value.Valid {
		t := value.Time
		return &t
	}
	return nil
}

// NullUUIDPtr converts uuid.NullUUID to *uuid.UUID.
// Returns nil if the value is not valid.
func NullUUIDPtr(value uuid.NullUUID) *uuid.UUID {
	if value.Valid {
		id := value.UUID
		return &id
	}
	return nil
}
