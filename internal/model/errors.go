package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Table errors
	ErrDuplicateEnrollment = errors.New("player is already in this table")
	ErrTableNotFound       = errors.New("table not found")
	ErrTableNotRunning     = errors.New("table is not running")
	ErrWinnerNotInTable    = errors.New("winner not found in this table")

	// Promoter errors
	ErrPromoterNotFound = errors.New("promoter not found")
)
