// Package dberr translates storage driver failures into the error kinds of
// internal/pkg/errs.
package dberr

import (
	"fooddelivery/internal/pkg/errs"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes that mean "another transaction got there first".
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeUniqueViolation      = "23505"
)

// IsConflict reports whether err is a write conflict with a concurrent
// transaction: a serialization failure, a deadlock or a unique violation.
func IsConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	if pgErr, ok := errors.Into[*pgconn.PgError](err); ok {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeUniqueViolation:
			return true
		}
	}

	return false
}

// Wrap annotates a failed storage operation. Conflicts are reported as
// errs.ErrConcurrentUpdate so callers can retry the unit of work; anything
// else keeps its cause behind the operation name.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	if IsConflict(err) {
		return errors.Wrap(errors.Join(errs.ErrConcurrentUpdate, err), op)
	}
	return errors.Wrap(err, op)
}
