package model

// PlatformStats is the aggregate shown on the admin dashboard. Amounts are
// minor units of Currency.
type PlatformStats struct {
	TotalNGOs         int64  `json:"total_ngos"`
	PendingNGOs       int64  `json:"pending_ngos"`
	TotalCauses       int64  `json:"total_causes"`
	DonationCount     int64  `json:"donation_count"`
	TotalDonations    int64  `json:"total_donations"`
	TotalApplications int64  `json:"total_applications"`
	Currency          string `json:"currency"`
}
