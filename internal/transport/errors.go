package transport

import (
	"errors"
	"net/http"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/custody"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/eventlog"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/registry"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/verification"
)

const (
	codeInvalidArgument         = "INVALID_ARGUMENT"
	codeNotFound                = "NOT_FOUND"
	codeConflict                = "CONFLICT"
	codeVerificationUnavailable = "VERIFICATION_UNAVAILABLE"
	codeHistoryTruncated        = "HISTORY_TRUNCATED"
	codeUnavailable             = "UNAVAILABLE"
	codeInternal                = "INTERNAL"
)

var (
	errBadRequest         = errors.New("malformed request")
	errSummaryUnavailable = errors.New("verdict audit log is not configured")
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

type errorMapping struct {
	targets []error
	status  int
	code    string
}

// Matched in order; the first mapping with a matching target wins.
var errorMappings = []errorMapping{
	{
		targets: []error{eventlog.ErrHistoryTruncated},
		status:  http.StatusServiceUnavailable,
		code:    codeHistoryTruncated,
	},
	{
		targets: []error{verification.ErrLedgerUnavailable, verification.ErrScanGuardUnavailable, ledger.ErrUnavailable},
		status:  http.StatusServiceUnavailable,
		code:    codeVerificationUnavailable,
	},
	{
		targets: []error{errSummaryUnavailable},
		status:  http.StatusServiceUnavailable,
		code:    codeUnavailable,
	},
	{
		targets: []error{
			errBadRequest,
			verification.ErrInvalidScan,
			custody.ErrInvalidRequest,
			eventlog.ErrInvalidEvent,
			registry.ErrInvalidRequest,
			ledger.ErrInvalidRequest,
		},
		status: http.StatusBadRequest,
		code:   codeInvalidArgument,
	},
	{
		targets: []error{verification.ErrBatchNotFound, model.ErrNotFound, custody.ErrNotProvisioned, ledger.ErrTopicNotFound},
		status:  http.StatusNotFound,
		code:    codeNotFound,
	},
	{
		targets: []error{model.ErrConflict, model.ErrUnitLimitReached, custody.ErrBatchBlocked},
		status:  http.StatusConflict,
		code:    codeConflict,
	},
}

func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		for _, target := range m.targets {
			if errors.Is(err, target) {
				return m.status, m.code
			}
		}
	}
	return http.StatusInternalServerError, codeInternal
}
