// internal/model/ngo.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type NGOStatus string

const (
	NGOStatusPending  NGOStatus = "pending"
	NGOStatusApproved NGOStatus = "approved"
	NGOStatusRejected NGOStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s NGOStatus) Valid() bool {
	switch s {
	case NGOStatusPending, NGOStatusApproved, NGOStatusRejected:
		return true
	}
	return false
}

type NGO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name               string    `gorm:"type:text;not null" json:"name"`
	Description        string    `gorm:"type:text" json:"description,omitempty"`
	Mission            string    `gorm:"type:text" json:"mission,omitempty"`
	Website            string    `gorm:"type:text" json:"website,omitempty"`
	Email              string    `gorm:"type:text" json:"email,omitempty"`
	Phone              string    `gorm:"type:text" json:"phone,omitempty"`
	Address            string    `gorm:"type:text" json:"address,omitempty"`
	RegistrationNumber string    `gorm:"column:registration_number;type:text" json:"registration_number,omitempty"`
	LogoURL            string    `gorm:"column:logo_url;type:text" json:"logo_url,omitempty"`
	CreatedBy          uuid.UUID `gorm:"column:created_by;type:uuid;not null;index" json:"created_by"`
	Status             NGOStatus `gorm:"type:text;not null;default:'pending';index" json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (NGO) TableName() string {
	return "ngos"
}

// Approved reports whether the NGO may publish causes and opportunities.
func (n *NGO) Approved() bool {
	return n != nil && n.Status == NGOStatusApproved
}
