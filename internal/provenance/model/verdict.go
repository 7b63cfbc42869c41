package model

import "time"

// VerdictStatus is the outcome of a verification.
type VerdictStatus string

const (
	VerdictAuthentic VerdictStatus = "AUTHENTIC"
	VerdictNotSafe   VerdictStatus = "NOT_SAFE"
)

// CheckName identifies one verification check.
type CheckName string

const (
	CheckFlagged        CheckName = "flagged"
	CheckProvenance     CheckName = "provenance"
	CheckCustody        CheckName = "custody"
	CheckExpiry         CheckName = "expiry"
	CheckOwnership      CheckName = "ownership"
	CheckDuplicateScan  CheckName = "duplicate_scan"
	CheckUnitRegistered CheckName = "unit_registered"
)

// CheckResult is the outcome of a single check.
type CheckResult struct {
	Name   CheckName `json:"name"`
	Passed bool      `json:"passed"`
	Reason string    `json:"reason"`
}

// AutoFlagOutcome describes the flag raised while producing a verdict.
type AutoFlagOutcome struct {
	Recorded       bool   `json:"recorded"`
	SequenceNumber uint64 `json:"sequenceNumber,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Verdict is the structured result of verifying a batch or a unit scan.
type Verdict struct {
	Status            VerdictStatus    `json:"status"`
	Reasons           []string         `json:"reasons"`
	RecommendedAction string           `json:"recommendedAction"`
	Checks            []CheckResult    `json:"checks"`
	BatchID           string           `json:"batchId,omitempty"`
	UnitID            string           `json:"unitId,omitempty"`
	TopicID           string           `json:"topicId,omitempty"`
	EventCount        int              `json:"eventCount"`
	AutoFlag          *AutoFlagOutcome `json:"autoFlag,omitempty"`
	EvaluatedAt       time.Time        `json:"evaluatedAt"`
}

// FailedChecks returns the names of the checks that did not pass.
func (v Verdict) FailedChecks() []CheckName {
	var failed []CheckName
	for _, c := range v.Checks {
		if !c.Passed {
			failed = append(failed, c.Name)
		}
	}
	return failed
}

// VerdictRecord is the audit row written for every verdict.
type VerdictRecord struct {
	EvaluatedAt    time.Time
	BatchID        string
	UnitID         string
	OrganizationID string
	TopicID        string
	Status         VerdictStatus
	Reasons        []string
	FailedChecks   []string
	EventCount     uint32
	Latitude       float64
	Longitude      float64
}

// VerdictSummary aggregates audit rows for one batch.
type VerdictSummary struct {
	BatchID       string    `json:"batchId"`
	Authentic     uint64    `json:"authentic"`
	NotSafe       uint64    `json:"notSafe"`
	LastEvaluated time.Time `json:"lastEvaluated"`
}
