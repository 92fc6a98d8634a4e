package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err is a primary key or
// unique index violation. Relies on gorm's TranslateError mapping of
// PostgreSQL error code 23505.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
