package ledger

import "errors"

var (
	ErrTopicNotFound  = errors.New("ledger topic not found")
	ErrTopicExpired   = errors.New("ledger topic expired")
	ErrAppendRejected = errors.New("ledger rejected entry")
	ErrUnavailable    = errors.New("ledger unavailable")
	ErrInvalidRequest = errors.New("invalid ledger request")
)
