// internal/model/volunteer_application.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

type VolunteerApplication struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OpportunityID uuid.UUID         `gorm:"column:opportunity_id;type:uuid;not null;uniqueIndex:idx_application_pair" json:"opportunity_id"`
	VolunteerID   uuid.UUID         `gorm:"column:volunteer_id;type:uuid;not null;uniqueIndex:idx_application_pair;index" json:"volunteer_id"`
	CoverLetter   string            `gorm:"column:cover_letter;type:text" json:"cover_letter,omitempty"`
	Status        ApplicationStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	NGONotes      string            `gorm:"column:ngo_notes;type:text" json:"ngo_notes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	Opportunity *Opportunity `gorm:"foreignKey:OpportunityID" json:"opportunity,omitempty"`
}

func (VolunteerApplication) TableName() string {
	return "volunteer_applications"
}
