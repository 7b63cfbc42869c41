// Package kafka maps ledger topics onto single-partition Kafka topics.
// The partition offset plus one is the entry's sequence number, so the
// broker's per-partition ordering is the ledger's total order.
//
// Topics never expire on the broker. The registry TTL is carried in the
// topic name as a unix expiry and only gates appends.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/Derojuu/MediCheck-sub000/pkg/safe"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	partition         = 0
	targetTopicHeader = "medicheck-target-topic"
	fetchMaxBytes     = 10 << 20
	fetchMaxWait      = 250 * time.Millisecond
)

// Config configures the Kafka ledger backend.
type Config struct {
	Brokers           []string
	TopicPrefix       string
	ReplicationFactor int
	Timeout           time.Duration
	Credentials       ledger.Credentials
}

// Ledger talks to the brokers through the low-level kafka-go client because
// it needs the offsets assigned on produce.
type Ledger struct {
	client            *kafka.Client
	prefix            string
	replicationFactor int
	now               func() time.Time
	newID             func() string
}

// New builds a Ledger. It does not dial the brokers.
func New(cfg Config) (*Ledger, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	prefix := cfg.TopicPrefix
	if prefix == "" {
		prefix = "medicheck"
	}
	rf := cfg.ReplicationFactor
	if rf <= 0 {
		rf = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	transport := &kafka.Transport{}
	if !cfg.Credentials.Empty() {
		transport.SASL = plain.Mechanism{
			Username: cfg.Credentials.Username,
			Password: cfg.Credentials.Password,
		}
	}

	return &Ledger{
		client: &kafka.Client{
			Addr:      kafka.TCP(cfg.Brokers...),
			Timeout:   timeout,
			Transport: transport,
		},
		prefix:            prefix,
		replicationFactor: rf,
		now:               func() time.Time { return time.Now().UTC() },
		newID:             uuid.NewString,
	}, nil
}

// CreateTopic creates a topic with unlimited retention, named
// <prefix>.<kind>.<expiry unix seconds>.<id>. Kafka has no per-topic admin
// key; write access is governed by broker ACLs.
func (l *Ledger) CreateTopic(ctx context.Context, req ledger.CreateTopicRequest) (ledger.CreateTopicResult, error) {
	if err := req.Validate(); err != nil {
		return ledger.CreateTopicResult{}, err
	}

	now := l.now()
	name := fmt.Sprintf("%s.%s.%d.%s", l.prefix, strings.ToLower(string(req.Kind)), now.Add(req.TTL).Unix(), l.newID())
	resp, err := l.client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{
			Topic:             name,
			NumPartitions:     1,
			ReplicationFactor: l.replicationFactor,
			ConfigEntries: []kafka.ConfigEntry{
				{ConfigName: "retention.ms", ConfigValue: "-1"},
				{ConfigName: "retention.bytes", ConfigValue: "-1"},
				{ConfigName: "cleanup.policy", ConfigValue: "delete"},
			},
		}},
	})
	if err != nil {
		return ledger.CreateTopicResult{}, fmt.Errorf("%w: create topic: %v", ledger.ErrUnavailable, err)
	}
	if topicErr := resp.Errors[name]; topicErr != nil {
		return ledger.CreateTopicResult{}, fmt.Errorf("%w: create topic %s: %v", ledger.ErrAppendRejected, name, topicErr)
	}

	return ledger.CreateTopicResult{TopicID: name, CreatedAt: now}, nil
}

// RegisterEntry appends to a topic whose TTL has not passed. Topics whose
// name carries no expiry accept appends indefinitely.
func (l *Ledger) RegisterEntry(ctx context.Context, topicID string, entry ledger.Entry) (uint64, error) {
	if entry.Metadata == "" {
		return 0, fmt.Errorf("%w: empty metadata", ledger.ErrInvalidRequest)
	}
	if expiresAt, ok := topicExpiry(topicID); ok && !l.now().Before(expiresAt) {
		return 0, fmt.Errorf("%w: %s", ledger.ErrTopicExpired, topicID)
	}

	var headers []kafka.Header
	if entry.TargetTopicID != "" {
		headers = append(headers, kafka.Header{Key: targetTopicHeader, Value: []byte(entry.TargetTopicID)})
	}

	resp, err := l.client.Produce(ctx, &kafka.ProduceRequest{
		Topic:        topicID,
		Partition:    partition,
		RequiredAcks: kafka.RequireAll,
		Records: kafka.NewRecordReader(kafka.Record{
			Time:    l.now(),
			Value:   kafka.NewBytes([]byte(entry.Metadata)),
			Headers: headers,
		}),
	})
	if err != nil {
		return 0, classify(topicID, err, ledger.ErrUnavailable)
	}
	if resp.Error != nil {
		return 0, classify(topicID, resp.Error, ledger.ErrAppendRejected)
	}
	for _, recordErr := range resp.RecordErrors {
		if recordErr != nil {
			return 0, fmt.Errorf("%w: %v", ledger.ErrAppendRejected, recordErr)
		}
	}

	return safe.Uint64(resp.BaseOffset + 1)
}

func (l *Ledger) GetRegistry(ctx context.Context, topicID string, opts ledger.ReadOptions) ([]model.LedgerEntry, error) {
	opts = opts.Normalize()

	offset, err := safe.Int64(opts.AfterSequence)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrInvalidRequest, err)
	}
	if opts.Order == ledger.OrderDesc {
		last, err := l.lastOffset(ctx, topicID)
		if err != nil {
			return nil, err
		}
		offset = max(0, last-int64(opts.Limit))
	}

	entries := make([]model.LedgerEntry, 0, opts.Limit)
	for len(entries) < opts.Limit {
		resp, err := l.client.Fetch(ctx, &kafka.FetchRequest{
			Topic:     topicID,
			Partition: partition,
			Offset:    offset,
			MinBytes:  1,
			MaxBytes:  fetchMaxBytes,
			MaxWait:   fetchMaxWait,
		})
		if err != nil {
			return nil, classify(topicID, err, ledger.ErrUnavailable)
		}
		if resp.Error != nil {
			if errors.Is(resp.Error, kafka.OffsetOutOfRange) {
				break
			}
			return nil, classify(topicID, resp.Error, ledger.ErrUnavailable)
		}

		read, next, err := readRecords(topicID, resp.Records, offset, opts.Limit-len(entries))
		if err != nil {
			return nil, err
		}
		entries = append(entries, read...)
		if len(read) == 0 || next >= resp.HighWatermark {
			break
		}
		offset = next
	}

	if opts.Order == ledger.OrderDesc {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
	return entries, nil
}

// readRecords decodes up to limit records at or after offset. Brokers may
// return the whole batch containing offset, so earlier records are skipped.
func readRecords(topicID string, records kafka.RecordReader, offset int64, limit int) ([]model.LedgerEntry, int64, error) {
	if records == nil {
		return nil, offset, nil
	}

	var entries []model.LedgerEntry
	next := offset
	for len(entries) < limit {
		rec, err := records.ReadRecord()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, offset, fmt.Errorf("%w: read record: %v", ledger.ErrUnavailable, err)
		}
		if rec.Offset < offset {
			continue
		}

		entry, err := toEntry(topicID, rec)
		if err != nil {
			return nil, offset, err
		}
		entries = append(entries, entry)
		next = rec.Offset + 1
	}
	return entries, next, nil
}

func toEntry(topicID string, rec *kafka.Record) (model.LedgerEntry, error) {
	seq, err := safe.Uint64(rec.Offset + 1)
	if err != nil {
		return model.LedgerEntry{}, err
	}

	entry := model.LedgerEntry{
		TopicID:            topicID,
		SequenceNumber:     seq,
		ConsensusTimestamp: rec.Time.UTC(),
	}
	if rec.Value != nil {
		value, err := io.ReadAll(rec.Value)
		_ = rec.Value.Close()
		if err != nil {
			return model.LedgerEntry{}, fmt.Errorf("%w: read record value: %v", ledger.ErrUnavailable, err)
		}
		entry.Message = value
	}
	for _, h := range rec.Headers {
		if h.Key == targetTopicHeader {
			entry.TargetTopicID = string(h.Value)
		}
	}
	return entry, nil
}

func (l *Ledger) lastOffset(ctx context.Context, topicID string) (int64, error) {
	resp, err := l.client.ListOffsets(ctx, &kafka.ListOffsetsRequest{
		Topics: map[string][]kafka.OffsetRequest{
			topicID: {kafka.LastOffsetOf(partition)},
		},
	})
	if err != nil {
		return 0, classify(topicID, err, ledger.ErrUnavailable)
	}
	for _, p := range resp.Topics[topicID] {
		if p.Partition != partition {
			continue
		}
		if p.Error != nil {
			return 0, classify(topicID, p.Error, ledger.ErrUnavailable)
		}
		return p.LastOffset, nil
	}
	return 0, fmt.Errorf("%w: %s", ledger.ErrTopicNotFound, topicID)
}

// topicExpiry reads the expiry segment that CreateTopic puts before the id.
func topicExpiry(topicID string) (time.Time, bool) {
	parts := strings.Split(topicID, ".")
	if len(parts) < 4 {
		return time.Time{}, false
	}
	unix, err := strconv.ParseInt(parts[len(parts)-2], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(unix, 0).UTC(), true
}

func classify(topicID string, err, fallback error) error {
	if errors.Is(err, kafka.UnknownTopicOrPartition) {
		return fmt.Errorf("%w: %s", ledger.ErrTopicNotFound, topicID)
	}
	return fmt.Errorf("%w: %s: %v", fallback, topicID, err)
}
