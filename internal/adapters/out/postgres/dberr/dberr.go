// Package dberr translates driver errors from the authoritative store into
// the engine's error kinds.
package dberr

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation recognizes duplicate keys from postgres directly and
// from any dialect gorm translates with TranslateError.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsNotFound reports gorm's record-not-found.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Wrap turns a driver error into a StorageFailure. Unique violations become
// a Conflict carrying reason, and errors that already carry an engine kind
// pass through unchanged.
func Wrap(operation string, err error, reason string) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) && reason != "" {
		return errs.NewConflictErrorWithCause(reason, err)
	}
	if errs.Kind(err) != errs.KindUnknown {
		return err
	}
	return errs.NewStorageFailureError(operation, err)
}

// Lookup maps a not-found from a single-row read to ObjectNotFound and any
// other failure to StorageFailure.
func Lookup(param string, id any, err error) error {
	if err == nil {
		return nil
	}
	if IsNotFound(err) {
		return errs.NewObjectNotFoundError(param, id)
	}
	return errs.NewStorageFailureError(fmt.Sprintf("get %s %v", param, id), err)
}
