package service

import (
	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/authz"
	"github.com/dangerclosesec/goodworks/internal/cache"
)

// Cached views. A view name alone covers every key built from it.
const (
	ViewCauses           = "causes"
	ViewCause            = "cause"
	ViewOpportunities    = "opportunities"
	ViewNGOs             = "ngos"
	ViewApprovedNGOs     = "approved_ngos"
	ViewMyNGO            = "my_ngo"
	ViewDonations        = "donations"
	ViewApplications     = "volunteer_applications"
	ViewProfile          = "profile"
	ViewNGOCauses        = "ngo_causes"
	ViewNGOOpportunities = "ngo_opportunities"
	ViewNGODonations     = "ngo_donations"
	ViewNGOApplications  = "ngo_applications"
	ViewAdminProfiles    = "admin_profiles"
	ViewAdminStats       = "admin_stats"
)

func keyFor(view string, id uuid.UUID) string {
	return cache.Key(view, id.String())
}

func rolesKey(userID uuid.UUID) string {
	return authz.RolesKey(userID)
}
