// internal/model/donation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Donation is immutable once stored.
type Donation struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	NGOID       uuid.UUID  `gorm:"column:ngo_id;type:uuid;not null;index" json:"ngo_id"`
	CauseID     *uuid.UUID `gorm:"column:cause_id;type:uuid;index" json:"cause_id,omitempty"`
	Amount      int64      `gorm:"not null;check:amount > 0" json:"amount"`
	DonorID     *uuid.UUID `gorm:"column:donor_id;type:uuid;index" json:"donor_id"`
	DonorName   string     `gorm:"column:donor_name;type:text" json:"donor_name,omitempty" szlr:"scope:owner,self,admin"`
	DonorEmail  string     `gorm:"column:donor_email;type:text" json:"donor_email,omitempty" szlr:"scope:owner,self,admin"`
	Message     string     `gorm:"type:text" json:"message,omitempty"`
	IsAnonymous bool       `gorm:"column:is_anonymous;not null;default:false" json:"is_anonymous"`
	CreatedAt   time.Time  `json:"created_at"`

	NGO   *NGO   `gorm:"foreignKey:NGOID" json:"ngo,omitempty"`
	Cause *Cause `gorm:"foreignKey:CauseID" json:"cause,omitempty"`
}

func (Donation) TableName() string {
	return "donations"
}
