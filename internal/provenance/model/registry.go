package model

import "time"

// RegistryKind scopes a ledger topic to a batch or an organization.
type RegistryKind string

const (
	RegistryBatch RegistryKind = "BATCH"
	RegistryOrg   RegistryKind = "ORG"
)

// Valid reports whether the kind is one the ledger backends know how to create.
func (k RegistryKind) Valid() bool {
	return k == RegistryBatch || k == RegistryOrg
}

// Registry is an append-only ledger topic. It is created once and never mutated.
type Registry struct {
	TopicID   string        `json:"topicId"`
	Kind      RegistryKind  `json:"kind"`
	TTL       time.Duration `json:"ttl"`
	AdminKey  bool          `json:"adminKey"`
	CreatedAt time.Time     `json:"createdAt"`
}

// LedgerEntry is a raw entry read back from a topic.
type LedgerEntry struct {
	TopicID            string
	SequenceNumber     uint64
	ConsensusTimestamp time.Time
	TargetTopicID      string
	Message            []byte
}
