// internal/model/cause.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Currency is the single currency every amount is denominated in. Amounts are
// stored as integer minor units (paise).
const Currency = "INR"

type Cause struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	NGOID        uuid.UUID  `gorm:"column:ngo_id;type:uuid;not null;index" json:"ngo_id"`
	Title        string     `gorm:"type:text;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	ImageURL     string     `gorm:"column:image_url;type:text" json:"image_url,omitempty"`
	TargetAmount int64      `gorm:"column:target_amount;not null;default:0" json:"target_amount"`
	RaisedAmount int64      `gorm:"column:raised_amount;not null;default:0" json:"raised_amount"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	StartDate    *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate      *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	NGO *NGO `gorm:"foreignKey:NGOID" json:"ngo,omitempty"`
}

func (Cause) TableName() string {
	return "causes"
}
