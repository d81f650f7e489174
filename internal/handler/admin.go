package handler

import (
	"net/http"

	"github.com/dangerclosesec/goodworks/internal/service"
)

type AdminHandler struct {
	admin *service.AdminService
}

func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Stats(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, stats)
}

func (h *AdminHandler) NGOs(w http.ResponseWriter, r *http.Request) {
	ngos, err := h.admin.NGOs(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, ngos)
}

func (h *AdminHandler) Profiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.admin.Profiles(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, profiles)
}
