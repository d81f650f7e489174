package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/dangerclosesec/goodworks/internal/auth"
	"github.com/dangerclosesec/goodworks/internal/middleware"
	"github.com/dangerclosesec/goodworks/internal/service"
)

// NewAPIRouter wires the facade into the /api routes. Every route accepts
// an optional bearer token; the facade decides what anonymous callers may do.
func NewAPIRouter(f *service.Facade, tokenManager *auth.TokenManager) chi.Router {
	ngos := NewNGOHandler(f.NGOs)
	causes := NewCauseHandler(f.Causes)
	opps := NewOpportunityHandler(f.Opportunities)
	donations := NewDonationHandler(f.Donations)
	apps := NewApplicationHandler(f.Applications)
	profiles := NewProfileHandler(f.Profiles)
	roles := NewRoleHandler(f.Roles)
	admin := NewAdminHandler(f.Admin)
	auditLogs := NewAuthzAuditLogHandler(f.Admin)

	r := chi.NewRouter()
	r.Use(middleware.AuthzAuditMiddleware)
	r.Use(middleware.AuthMiddleware(tokenManager))

	jsonBody := chmw.AllowContentType("application/json")

	// Public
	r.Get("/causes", causes.List)
	r.Get("/causes/{id}", causes.Get)
	r.Get("/opportunities", opps.List)
	r.Get("/ngos", ngos.ListApproved)
	r.With(jsonBody).Post("/donations", donations.Create)

	r.With(jsonBody).Post("/ngos", ngos.Create)
	r.With(jsonBody).Post("/opportunities/{id}/applications", apps.Apply)
	r.With(jsonBody).Put("/applications/{id}/status", apps.Transition)
	r.With(jsonBody).Put("/profiles/{id}", profiles.Update)

	// NGO dashboard
	r.Route("/ngos/{id}", func(r chi.Router) {
		r.Get("/causes", causes.ByNGO)
		r.With(jsonBody).Post("/causes", causes.Create)
		r.Get("/opportunities", opps.ByNGO)
		r.With(jsonBody).Post("/opportunities", opps.Create)
		r.Get("/donations", donations.ByNGO)
		r.Get("/applications", apps.ByNGO)
	})

	r.Route("/me", func(r chi.Router) {
		r.Get("/ngo", ngos.Mine)
		r.Get("/donations", donations.Mine)
		r.Get("/applications", apps.Mine)
		r.Get("/profile", profiles.Get)
		r.With(jsonBody).Put("/profile", profiles.UpdateMine)
		r.Get("/roles", roles.Mine)
		r.With(jsonBody).Post("/roles", roles.Join)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/ngos", admin.NGOs)
		r.With(jsonBody).Put("/ngos/{id}/status", ngos.Transition)
		r.Get("/profiles", admin.Profiles)
		r.Get("/stats", admin.Stats)
		r.With(jsonBody).Post("/roles", roles.Grant)
		r.Get("/audit-logs", auditLogs.GetAuditLogs)
		r.Get("/audit-logs/{id}", auditLogs.GetAuditLogByID)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "Not found")
	})

	return r
}
