// internal/model/user_role.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleDonor         Role = "donor"
	RoleVolunteer     Role = "volunteer"
	RoleNGOAdmin      Role = "ngo_admin"
	RolePlatformAdmin Role = "platform_admin"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleVolunteer, RoleNGOAdmin, RolePlatformAdmin:
		return true
	}
	return false
}

type UserRole struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_user_roles_pair" json:"user_id"`
	Role      Role      `gorm:"type:text;not null;uniqueIndex:idx_user_roles_pair" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
