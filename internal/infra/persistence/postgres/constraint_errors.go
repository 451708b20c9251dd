package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// isUndefinedTable recognizes the Postgres undefined_table signal (42P01).
// The notifications feature relies on this: an unprovisioned table must
// degrade to a no-op, not surface as a generic database error.
func isUndefinedTable(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "42p01") ||
		(strings.Contains(errMsg, "relation") && strings.Contains(errMsg, "does not exist"))
}
