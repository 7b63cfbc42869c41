package model

import "time"

// EventType is the eventType field of an EVENT_LOG envelope.
type EventType string

const (
	EventBatchCreated         EventType = "BATCH_CREATED"
	EventBatchOwnership       EventType = "BATCH_OWNERSHIP"
	EventBatchFlag            EventType = "BATCH_FLAG"
	EventBatchUnitsRegistered EventType = "BATCH_UNITS_REGISTERED"
	EventUnit                 EventType = "UNIT"
)

// Valid reports whether t can be written through LogBatchEvent.
// UNIT entries have their own writer and are not accepted here.
func (t EventType) Valid() bool {
	switch t {
	case EventBatchCreated, EventBatchOwnership, EventBatchFlag, EventBatchUnitsRegistered:
		return true
	default:
		return false
	}
}

// EntryKind is the top-level "type" field of every ledger message.
type EntryKind string

const (
	EntryEventLog          EntryKind = "EVENT_LOG"
	EntryUnit              EntryKind = "UNIT"
	EntryBatchRegistryMeta EntryKind = "BATCH_REGISTRY_META"
	EntryOrgRegistryMeta   EntryKind = "ORG_REGISTRY_META"
	EntryBatchIndex        EntryKind = "BATCH_INDEX"
)

// EventPayload holds the caller-supplied fields of a batch event.
// Which fields are meaningful depends on the event type.
type EventPayload struct {
	BatchID           string `json:"batchId"`
	OrganizationID    string `json:"organizationId"`
	DrugName          string `json:"drugName,omitempty"`
	BatchSize         int64  `json:"batchSize,omitempty"`
	ManufacturingDate string `json:"manufacturingDate,omitempty"`
	ExpiryDate        string `json:"expiryDate,omitempty"`
	TransferFrom      string `json:"transferFrom,omitempty"`
	TransferTo        string `json:"transferTo,omitempty"`
	FlagReason        string `json:"flagReason,omitempty"`
	UnitCount         int    `json:"unitCount,omitempty"`
}

// Unit scopes one packaging unit serial number to a batch.
type Unit struct {
	SerialNumber string `json:"serialNumber"`
	DrugName     string `json:"drugName"`
	BatchID      string `json:"batchId"`
}

// Event is a decoded ledger entry in topic order.
type Event struct {
	EventPayload
	SequenceNumber     uint64    `json:"sequenceNumber"`
	ConsensusTimestamp time.Time `json:"consensusTimestamp"`
	Kind               EntryKind `json:"type"`
	EventType          EventType `json:"eventType,omitempty"`
	Timestamp          string    `json:"timestamp,omitempty"`
	SerialNumber       string    `json:"serialNumber,omitempty"`
	// Malformed is set when the raw message could not be parsed at all.
	Malformed bool `json:"malformed,omitempty"`
}

// Is reports whether e is a batch event of type t.
func (e Event) Is(t EventType) bool {
	return !e.Malformed && e.EventType == t
}
