package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ReferentialIntegrityError reports a delete that was blocked because
// dependent rows still reference the table.
type ReferentialIntegrityError struct {
	Table string
	Err   error
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("delete from %s blocked by dependent rows: %v", e.Table, e.Err)
}

func (e *ReferentialIntegrityError) Unwrap() error { return e.Err }

// ConstraintViolationError reports a create rejected by a uniqueness,
// not-null or foreign-key constraint.
type ConstraintViolationError struct {
	Table string
	Err   error
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("create in %s violated a constraint: %v", e.Table, e.Err)
}

func (e *ConstraintViolationError) Unwrap() error { return e.Err }

// StoreError reports any other store failure (connectivity, transport,
// unexpected driver errors).
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Postgres error classes for integrity violations.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// IsConstraint reports whether err is an integrity-constraint rejection as
// opposed to a transport or driver failure. It understands gorm's translated
// sentinels, raw pgconn errors, and falls back to the driver message for
// stores without error translation.
func IsConstraint(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNotNullViolation, pgForeignKeyViolation, pgUniqueViolation:
			return true
		}
	}
	return strings.Contains(err.Error(), "constraint")
}

// DeleteError classifies a failed delete on table.
func DeleteError(table string, err error) error {
	if IsConstraint(err) {
		return &ReferentialIntegrityError{Table: table, Err: err}
	}
	return &StoreError{Op: "delete " + table, Err: err}
}

// CreateError classifies a failed create in table.
func CreateError(table string, err error) error {
	if IsConstraint(err) {
		return &ConstraintViolationError{Table: table, Err: err}
	}
	return &StoreError{Op: "create " + table, Err: err}
}

// QueryError wraps a failed read as a StoreError.
func QueryError(table string, err error) error {
	return &StoreError{Op: "query " + table, Err: err}
}
