package handler

import (
	"net/http"

	"github.com/dangerclosesec/goodworks/internal/service"
)

type ApplicationHandler struct {
	apps *service.ApplicationService
}

func NewApplicationHandler(apps *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// Apply handles POST /opportunities/{id}/applications.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	oppID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var input service.ApplyInput
	if !decodeJSON(w, r, &input) {
		return
	}

	app, err := h.apps.Apply(r.Context(), oppID, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusCreated, app)
}

// Transition handles PUT /applications/{id}/status.
func (h *ApplicationHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var input service.TransitionApplicationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	app, err := h.apps.Transition(r.Context(), id, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, app)
}

func (h *ApplicationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	apps, err := h.apps.Mine(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) ByNGO(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	apps, err := h.apps.ByNGO(r.Context(), ngoID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, apps)
}
