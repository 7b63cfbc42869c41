package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/custody"
)

type orgRegistryRequest struct {
	OrganizationName string `json:"organizationName"`
}

type orgRegistryResponse struct {
	OrganizationID string `json:"organizationId"`
	TopicID        string `json:"topicId"`
}

type sequenceResponse struct {
	BatchID        string `json:"batchId"`
	SequenceNumber uint64 `json:"sequenceNumber"`
}

type transferBody struct {
	OrganizationID string `json:"organizationId"`
	TransferFrom   string `json:"transferFrom"`
	TransferTo     string `json:"transferTo"`
	Location       string `json:"location"`
}

type deliveryBody struct {
	Location string `json:"location"`
}

type unitsBody struct {
	OrganizationID string   `json:"organizationId"`
	SerialNumbers  []string `json:"serialNumbers"`
}

type reasonBody struct {
	OrganizationID string `json:"organizationId"`
	Reason         string `json:"reason"`
}

func (h *Handler) handleCreateOrgRegistry(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	var body orgRegistryRequest
	if err := decode(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}

	topicID, err := h.custody.CreateOrganizationRegistry(r.Context(), orgID, body.OrganizationName)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, orgRegistryResponse{OrganizationID: orgID, TopicID: topicID})
}

func (h *Handler) handleProvisionBatch(w http.ResponseWriter, r *http.Request) {
	var req custody.ProvisionRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.custody.ProvisionBatch(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) handleTransferBatch(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")
	var body transferBody
	if err := decode(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}

	seq, err := h.custody.TransferBatch(r.Context(), custody.TransferRequest{
		BatchID:        batchID,
		OrganizationID: body.OrganizationID,
		TransferFrom:   body.TransferFrom,
		TransferTo:     body.TransferTo,
		Location:       body.Location,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sequenceResponse{BatchID: batchID, SequenceNumber: seq})
}

func (h *Handler) handleConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")
	var body deliveryBody
	if err := decode(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.custody.ConfirmDelivery(r.Context(), batchID, body.Location); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRegisterUnits(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")
	var body unitsBody
	if err := decode(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.custody.RegisterUnits(r.Context(), batchID, body.OrganizationID, body.SerialNumbers)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) handleReportFlag(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")
	var body reasonBody
	if err := decode(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}

	seq, err := h.custody.ReportFlag(r.Context(), custody.ReportRequest{
		BatchID:        batchID,
		OrganizationID: body.OrganizationID,
		Reason:         body.Reason,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sequenceResponse{BatchID: batchID, SequenceNumber: seq})
}

func (h *Handler) handleRecallBatch(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")
	var body reasonBody
	if err := decode(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}

	seq, err := h.custody.RecallBatch(r.Context(), batchID, body.OrganizationID, body.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sequenceResponse{BatchID: batchID, SequenceNumber: seq})
}
