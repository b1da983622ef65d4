package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Storage-level error kinds. Services wrap these in domain errors.
var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicate   = errors.New("duplicate value for unique field")
	ErrUnavailable = errors.New("storage unavailable")
)

const pgUniqueViolation = "23505"

// classify maps driver errors onto the storage error kinds, keeping the
// original error in the chain for logging.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &DuplicateError{Constraint: pgErr.ConstraintName, err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return &unavailableError{err: err}
	}
	return err
}

// DuplicateError reports which unique constraint rejected a write.
type DuplicateError struct {
	Constraint string
	err        error
}

func (e *DuplicateError) Error() string {
	return "duplicate value violates " + e.Constraint + ": " + e.err.Error()
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

func (e *DuplicateError) Unwrap() error { return e.err }

type unavailableError struct {
	err error
}

func (e *unavailableError) Error() string { return "storage unavailable: " + e.err.Error() }

func (e *unavailableError) Is(target error) bool { return target == ErrUnavailable }

func (e *unavailableError) Unwrap() error { return e.err }
