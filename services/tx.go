package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"atithi-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate adds a row lock to the query. The sqlite dialect used in tests
// has no FOR UPDATE syntax; its single-writer model serializes writes on
// its own, so the clause is skipped there.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") ||
		strings.Contains(lc, "constraint")
}

func isLockErr(err error) bool {
	if err == nil {
		return false
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "lock wait timeout") || strings.Contains(lc, "deadlock") ||
		strings.Contains(lc, "database is locked")
}

// wrapPersistence classifies a transaction failure. Domain errors pass
// through untouched; lock timeouts and aborted commits become
// ErrPersistence so callers know a single retry is safe.
func wrapPersistence(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		models.ErrValidation, models.ErrConflict, models.ErrInvalidTransition,
		models.ErrNotFound, models.ErrPermission,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	if isLockErr(err) {
		return fmt.Errorf("%w: lock timeout: %v", models.ErrPersistence, err)
	}
	return fmt.Errorf("%w: %v", models.ErrPersistence, err)
}

// dateOnly truncates to UTC midnight; booking dates carry no time of day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
