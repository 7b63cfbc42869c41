package ledger

import (
	"fmt"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
)

// DefaultPageSize is the number of entries returned when ReadOptions.Limit is unset.
const DefaultPageSize = 100

// Order is the direction entries are returned in.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// CreateTopicRequest describes a new registry topic.
type CreateTopicRequest struct {
	Kind     model.RegistryKind
	TTL      time.Duration
	AdminKey bool
}

// Validate checks the request before it reaches a backend.
func (r CreateTopicRequest) Validate() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: unknown registry kind %q", ErrInvalidRequest, r.Kind)
	}
	if r.TTL <= 0 {
		return fmt.Errorf("%w: ttl must be positive", ErrInvalidRequest)
	}
	return nil
}

// CreateTopicResult is returned by a successful CreateTopic.
type CreateTopicResult struct {
	TopicID   string
	CreatedAt time.Time
}

// Entry is a message appended to a topic. TargetTopicID optionally links the
// entry to another topic.
type Entry struct {
	TargetTopicID string
	Metadata      string
}

// ReadOptions selects a page of entries.
type ReadOptions struct {
	Limit int
	Order Order
	// AfterSequence returns only entries with a greater sequence number.
	// Pagination is always ascending.
	AfterSequence uint64
}

// Normalize fills defaults.
func (o ReadOptions) Normalize() ReadOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultPageSize
	}
	if o.Order != OrderDesc || o.AfterSequence > 0 {
		o.Order = OrderAsc
	}
	return o
}

// Credentials authenticate the process against a remote ledger. They are
// resolved once at startup and passed to the backend that needs them.
type Credentials struct {
	Username string
	Password string
}

// Empty reports whether no credentials were configured.
func (c Credentials) Empty() bool {
	return c.Username == "" && c.Password == ""
}
