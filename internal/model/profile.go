// internal/model/profile.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile shares its ID with the identity it describes.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName  string    `gorm:"column:full_name;type:text" json:"full_name"`
	Email     string    `gorm:"type:text" json:"email,omitempty"`
	Phone     string    `gorm:"type:text" json:"phone,omitempty"`
	Bio       string    `gorm:"type:text" json:"bio,omitempty"`
	AvatarURL string    `gorm:"column:avatar_url;type:text" json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
