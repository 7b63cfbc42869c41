package model

import "time"

// MaxUnitsPerBatch bounds the UNIT entries a batch topic may carry over its
// whole life.
const MaxUnitsPerBatch = 10000

// BatchStatus is the derived lifecycle state of a batch.
type BatchStatus string

const (
	BatchCreated   BatchStatus = "CREATED"
	BatchInTransit BatchStatus = "IN_TRANSIT"
	BatchDelivered BatchStatus = "DELIVERED"
	BatchFlagged   BatchStatus = "FLAGGED"
	BatchExpired   BatchStatus = "EXPIRED"
	BatchRecalled  BatchStatus = "RECALLED"
)

// Valid reports whether s is a known status.
func (s BatchStatus) Valid() bool {
	switch s {
	case BatchCreated, BatchInTransit, BatchDelivered, BatchFlagged, BatchExpired, BatchRecalled:
		return true
	default:
		return false
	}
}

// Batch is the relational projection of a batch topic. It is never
// authoritative for authenticity.
type Batch struct {
	BatchID         string      `json:"batchId"`
	OrganizationID  string      `json:"organizationId"`
	DrugName        string      `json:"drugName"`
	TopicID         string      `json:"topicId"`
	Status          BatchStatus `json:"status"`
	CurrentLocation string      `json:"currentLocation"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// ScanRecord is one observed scan of a unit.
type ScanRecord struct {
	ID        int64     `json:"id"`
	UnitID    string    `json:"unitId"`
	BatchID   string    `json:"batchId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	ScannedAt time.Time `json:"scannedAt"`
}
