package model

import "errors"

// Sentinel errors shared by stores. Callers match them with errors.Is.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	// ErrUnitLimitReached rejects a unit registration that would take a
	// batch past MaxUnitsPerBatch.
	ErrUnitLimitReached = errors.New("unit limit reached")
)
