package handler

import (
	"net/http"

	"github.com/dangerclosesec/goodworks/internal/service"
)

type CauseHandler struct {
	causes *service.CauseService
}

func NewCauseHandler(causes *service.CauseService) *CauseHandler {
	return &CauseHandler{causes: causes}
}

func (h *CauseHandler) List(w http.ResponseWriter, r *http.Request) {
	causes, err := h.causes.List(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, causes)
}

func (h *CauseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	cause, err := h.causes.Get(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, cause)
}

// Create handles POST /ngos/{id}/causes.
func (h *CauseHandler) Create(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var input service.CreateCauseInput
	if !decodeJSON(w, r, &input) {
		return
	}

	cause, err := h.causes.Create(r.Context(), ngoID, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusCreated, cause)
}

func (h *CauseHandler) ByNGO(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	causes, err := h.causes.ByNGO(r.Context(), ngoID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, causes)
}
