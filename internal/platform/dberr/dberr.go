// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/marquee/internal/platform/apperr"
)

var (
	// ErrNotFound is returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrTxConflict marks a transaction that lost a race with a concurrent writer.
	// Callers may retry the whole unit of work.
	ErrTxConflict = errors.New("dberr: transaction conflict")
)

// Wrap inspects a database error and classifies it.
//
//   - pgx.ErrNoRows becomes [ErrNotFound].
//   - serialization failures, deadlocks and unique violations become [ErrTxConflict].
//   - anything else becomes an [apperr.Internal] tagged with action.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	if IsConflict(err) {
		return fmt.Errorf("%s: %w: %w", action, ErrTxConflict, err)
	}

	// Already classified further down the stack.
	if apperr.As(err) != nil {
		return err
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsConflict reports whether err is a retryable write conflict.
func IsConflict(err error) bool {
	if errors.Is(err, ErrTxConflict) {
		return true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.UniqueViolation:
		return true
	default:
		return false
	}
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
