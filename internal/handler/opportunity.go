package handler

import (
	"net/http"

	"github.com/dangerclosesec/goodworks/internal/service"
)

type OpportunityHandler struct {
	opps *service.OpportunityService
}

func NewOpportunityHandler(opps *service.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{opps: opps}
}

func (h *OpportunityHandler) List(w http.ResponseWriter, r *http.Request) {
	opps, err := h.opps.List(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, opps)
}

// Create handles POST /ngos/{id}/opportunities.
func (h *OpportunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var input service.CreateOpportunityInput
	if !decodeJSON(w, r, &input) {
		return
	}

	opp, err := h.opps.Create(r.Context(), ngoID, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusCreated, opp)
}

func (h *OpportunityHandler) ByNGO(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	opps, err := h.opps.ByNGO(r.Context(), ngoID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, opps)
}
