package eventlog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/tidwall/gjson"
)

// TimestampLayout is the ISO-8601 form stamped on every envelope.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type envelope struct {
	Type      model.EntryKind `json:"type"`
	EventType model.EventType `json:"eventType"`
	Timestamp string          `json:"timestamp"`
	model.EventPayload
}

type unitEnvelope struct {
	Type model.EntryKind `json:"type"`
	model.Unit
}

// EncodeEvent wraps payload in an EVENT_LOG envelope stamped with now.
func EncodeEvent(eventType model.EventType, payload model.EventPayload, now time.Time) ([]byte, error) {
	b, err := json.Marshal(envelope{
		Type:         model.EntryEventLog,
		EventType:    eventType,
		Timestamp:    now.UTC().Format(TimestampLayout),
		EventPayload: payload,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal %s envelope: %w", eventType, err)
	}
	return b, nil
}

// EncodeUnit renders a UNIT entry. Units carry no eventType or timestamp.
func EncodeUnit(unit model.Unit) ([]byte, error) {
	b, err := json.Marshal(unitEnvelope{Type: model.EntryUnit, Unit: unit})
	if err != nil {
		return nil, fmt.Errorf("marshal unit envelope: %w", err)
	}
	return b, nil
}

// Decode turns a raw ledger entry into an Event. It never fails: entries that
// are not JSON objects come back with Malformed set so that checks can fail
// closed on them. Missing fields decode as zero values.
func Decode(entry model.LedgerEntry) model.Event {
	ev := model.Event{
		SequenceNumber:     entry.SequenceNumber,
		ConsensusTimestamp: entry.ConsensusTimestamp,
	}
	if !gjson.ValidBytes(entry.Message) {
		ev.Malformed = true
		return ev
	}
	r := gjson.ParseBytes(entry.Message)
	if !r.IsObject() {
		ev.Malformed = true
		return ev
	}

	str := func(path string) string {
		return strings.TrimSpace(r.Get(path).String())
	}

	ev.Kind = model.EntryKind(str("type"))
	ev.EventType = model.EventType(str("eventType"))
	if ev.Kind == model.EntryUnit && ev.EventType == "" {
		ev.EventType = model.EventUnit
	}
	ev.Timestamp = str("timestamp")
	ev.SerialNumber = str("serialNumber")
	ev.EventPayload = model.EventPayload{
		BatchID:           str("batchId"),
		OrganizationID:    str("organizationId"),
		DrugName:          str("drugName"),
		BatchSize:         r.Get("batchSize").Int(),
		ManufacturingDate: str("manufacturingDate"),
		ExpiryDate:        str("expiryDate"),
		TransferFrom:      str("transferFrom"),
		TransferTo:        str("transferTo"),
		FlagReason:        str("flagReason"),
		UnitCount:         int(r.Get("unitCount").Int()),
	}
	return ev
}

// DecodeAll decodes entries preserving their order.
func DecodeAll(entries []model.LedgerEntry) []model.Event {
	events := make([]model.Event, 0, len(entries))
	for _, e := range entries {
		events = append(events, Decode(e))
	}
	return events
}

// ValidatePayload rejects events that would be malformed on the ledger.
func ValidatePayload(eventType model.EventType, p model.EventPayload) error {
	if !eventType.Valid() {
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidEvent, eventType)
	}
	if strings.TrimSpace(p.BatchID) == "" {
		return fmt.Errorf("%w: batchId is required", ErrInvalidEvent)
	}
	if strings.TrimSpace(p.OrganizationID) == "" {
		return fmt.Errorf("%w: organizationId is required", ErrInvalidEvent)
	}

	switch eventType {
	case model.EventBatchOwnership:
		if strings.TrimSpace(p.TransferFrom) == "" || strings.TrimSpace(p.TransferTo) == "" {
			return fmt.Errorf("%w: ownership transfer needs transferFrom and transferTo", ErrInvalidEvent)
		}
	case model.EventBatchFlag:
		if strings.TrimSpace(p.FlagReason) == "" {
			return fmt.Errorf("%w: flagReason is required", ErrInvalidEvent)
		}
	case model.EventBatchCreated:
		if p.BatchSize < 0 {
			return fmt.Errorf("%w: batchSize must not be negative", ErrInvalidEvent)
		}
	}
	return nil
}
