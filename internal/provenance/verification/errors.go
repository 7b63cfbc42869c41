package verification

import "errors"

var (
	ErrInvalidScan          = errors.New("invalid scan request")
	ErrBatchNotFound        = errors.New("batch not found")
	ErrLedgerUnavailable    = errors.New("ledger unavailable")
	ErrScanGuardUnavailable = errors.New("scan guard unavailable")
	// ErrAutoFlagFailed accompanies a NOT_SAFE verdict whose flag could not be
	// fully recorded. The verdict itself is still valid.
	ErrAutoFlagFailed = errors.New("auto-flag failed")
)
