package reconcile

import "time"

const (
	defaultPageSize    = 200
	defaultWorkerCount = 8

	defaultInterval   = 5 * time.Minute
	errorBackoffStart = 5 * time.Second
	errorBackoffMax   = 5 * time.Minute

	// reconcilerOrganization signs repair flags on batches that carry no
	// organization of their own.
	reconcilerOrganization = "MEDICHECK_RECONCILER"

	repairFlagReason = "Reconciled: derived status FLAGGED without ledger record"
)
