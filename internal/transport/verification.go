package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/verification"
)

const maxEventsLimit = 1000

// verdictResponse adds flagRecorded when verification raised a flag.
type verdictResponse struct {
	model.Verdict
	FlagRecorded *bool `json:"flagRecorded,omitempty"`
}

type eventsResponse struct {
	BatchID string        `json:"batchId"`
	TopicID string        `json:"topicId"`
	Events  []model.Event `json:"events"`
}

func (h *Handler) handleVerifyScan(w http.ResponseWriter, r *http.Request) {
	var req verification.ScanRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	v, err := h.verifier.VerifyScan(r.Context(), req)
	h.writeVerdict(w, r, v, err)
}

func (h *Handler) handleVerifyBatch(w http.ResponseWriter, r *http.Request) {
	v, err := h.verifier.VerifyBatch(r.Context(), chi.URLParam(r, "batchID"))
	h.writeVerdict(w, r, v, err)
}

// writeVerdict returns a verdict with 200 even when its auto-flag failed;
// the failure is reported through flagRecorded.
func (h *Handler) writeVerdict(w http.ResponseWriter, r *http.Request, v model.Verdict, err error) {
	if err != nil && !(errors.Is(err, verification.ErrAutoFlagFailed) && v.Status != "") {
		h.writeError(w, r, err)
		return
	}
	if err != nil {
		h.logger.Warn("verdict returned without a recorded flag",
			zap.String("batch_id", v.BatchID), zap.String("unit_id", v.UnitID), zap.Error(err))
	}

	resp := verdictResponse{Verdict: v}
	if v.AutoFlag != nil {
		recorded := v.AutoFlag.Recorded
		resp.FlagRecorded = &recorded
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleBatchEvents(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	topicID, err := h.topics.TopicForBatch(r.Context(), batchID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if topicID == "" {
		h.writeError(w, r, fmt.Errorf("%w: %s", verification.ErrBatchNotFound, batchID))
		return
	}

	events, err := h.events.GetBatchEventLogs(r.Context(), topicID, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, eventsResponse{BatchID: batchID, TopicID: topicID, Events: events})
}

func (h *Handler) handleVerdictSummary(w http.ResponseWriter, r *http.Request) {
	if h.summaries == nil {
		h.writeError(w, r, errSummaryUnavailable)
		return
	}

	summary, err := h.summaries.VerdictSummary(r.Context(), chi.URLParam(r, "batchID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return ledger.DefaultPageSize, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > maxEventsLimit {
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", errBadRequest, maxEventsLimit)
	}
	return limit, nil
}
