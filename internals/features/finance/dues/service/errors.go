// file: internals/features/finance/dues/service/errors.go
package service

import (
	"errors"
	"strings"
)

// Sentinel error layer service — controller yang memetakan ke HTTP status.
var (
	ErrNotFound         = errors.New("due not found")
	ErrPermissionDenied = errors.New("actor role is not allowed to perform this transition")
	ErrConflict         = errors.New("due was modified concurrently, transition lost the race")
	ErrDuplicateInvoice = errors.New("invoice number already exists")
	ErrEmptySelection   = errors.New("member selection is empty")
	ErrInvalidStatus    = errors.New("invalid due status")
	ErrInvalidAmount    = errors.New("due amount must be > 0")
)

// isUniqueViolation: sniff pesan unique constraint (postgres & sqlite di test)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
