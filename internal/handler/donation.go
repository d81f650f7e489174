package handler

import (
	"net/http"

	"github.com/dangerclosesec/goodworks/internal/service"
)

type DonationHandler struct {
	donations *service.DonationService
}

func NewDonationHandler(donations *service.DonationService) *DonationHandler {
	return &DonationHandler{donations: donations}
}

// Create records a donation. Signed-out callers may donate.
func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateDonationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	donation, err := h.donations.Create(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusCreated, donation)
}

func (h *DonationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donations.Mine(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, donations)
}

func (h *DonationHandler) ByNGO(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	donations, err := h.donations.ByNGO(r.Context(), ngoID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, donations)
}
