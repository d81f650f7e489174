package handler

import (
	"net/http"

	"github.com/dangerclosesec/goodworks/internal/service"
)

type NGOHandler struct {
	ngos *service.NGOService
}

func NewNGOHandler(ngos *service.NGOService) *NGOHandler {
	return &NGOHandler{ngos: ngos}
}

// Create registers an NGO for the caller. Any status in the body is ignored.
func (h *NGOHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateNGOInput
	if !decodeJSON(w, r, &input) {
		return
	}

	ngo, err := h.ngos.Create(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusCreated, ngo)
}

func (h *NGOHandler) Mine(w http.ResponseWriter, r *http.Request) {
	ngo, err := h.ngos.MyNGO(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, ngo)
}

func (h *NGOHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	ngos, err := h.ngos.ListApproved(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, ngos)
}

// Transition handles PUT /admin/ngos/{id}/status.
func (h *NGOHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var input service.TransitionNGOInput
	if !decodeJSON(w, r, &input) {
		return
	}

	ngo, err := h.ngos.Transition(r.Context(), id, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, ngo)
}
