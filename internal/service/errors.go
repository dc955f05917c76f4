package service

import "errors"

// Domain errors surfaced to the presentation layer, matched with
// errors.Is. Storage failures stay wrapped underneath them.
var (
	// ErrAlertNotOpen indicates a lifecycle transition on an alert
	// that already reached a terminal status.
	ErrAlertNotOpen = errors.New("alert is not open")

	// ErrNoRowsAffected indicates the transition UPDATE ran but hit no
	// row: a stale id or a concurrent transition won the race.
	ErrNoRowsAffected = errors.New("alert transition affected no rows")

	// ErrValidation indicates rejected input.
	ErrValidation = errors.New("validation failed")
)
