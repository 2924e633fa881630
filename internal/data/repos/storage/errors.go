package storage

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Store faults. Repos return these joined with the driver error so services can
// branch with errors.Is while the original cause stays reachable for logs.
var (
	ErrUnavailable         = errors.New("store unavailable")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrForeignKeyViolated  = errors.New("foreign key violated")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	ErrUpdateFailed        = errors.New("update failed")
)

// Op distinguishes reads from writes; only writes surface ErrUpdateFailed.
type Op int

const (
	OpRead Op = iota
	OpWrite
)

// Classify tags err with the matching store fault. Read errors that match no fault
// are returned unchanged.
func Classify(op Op, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case IsUnavailable(err):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", ErrForeignKeyViolated, err)
	case op == OpWrite:
		return fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	default:
		return err
	}
}

// IsUnavailable reports connectivity-class failures: the store could not be reached
// or refused to serve the request at all.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnavailable) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08 connection exception, 53 insufficient resources, 57 operator intervention, 58 system error
		if len(pgErr.Code) < 2 {
			return false
		}
		switch pgErr.Code[:2] {
		case "08", "53", "57", "58":
			return true
		}
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "sql: database is closed") ||
		strings.Contains(msg, "unable to open database file")
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "sqlstate 23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "sqlstate 23503") ||
		strings.Contains(msg, "foreign key constraint")
}
