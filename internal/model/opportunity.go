// internal/model/opportunity.go
package model

import (
	"database/sql/driver"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Opportunity struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	NGOID          uuid.UUID  `gorm:"column:ngo_id;type:uuid;not null;index" json:"ngo_id"`
	Title          string     `gorm:"type:text;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description,omitempty"`
	Location       string     `gorm:"type:text" json:"location,omitempty"`
	SkillsRequired Skills     `gorm:"column:skills_required;type:text[];not null;default:'{}'" json:"skills_required"`
	SlotsAvailable int        `gorm:"column:slots_available;not null;default:10;check:slots_available >= 0" json:"slots_available"`
	StartDatetime  *time.Time `gorm:"column:start_datetime" json:"start_datetime,omitempty"`
	EndDatetime    *time.Time `gorm:"column:end_datetime" json:"end_datetime,omitempty"`
	IsActive       bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	NGO *NGO `gorm:"foreignKey:NGOID" json:"ngo,omitempty"`
}

func (Opportunity) TableName() string {
	return "opportunities"
}

// Skills is a set of skill names stored as a postgres text[].
type Skills []string

// NewSkills trims, drops empties and de-duplicates the given names.
func NewSkills(names ...string) Skills {
	seen := make(map[string]struct{}, len(names))
	out := make(Skills, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Scan implements the sql.Scanner interface
func (s *Skills) Scan(value interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(value); err != nil {
		return fmt.Errorf("scan skills: %w", err)
	}
	if arr == nil {
		arr = pq.StringArray{}
	}
	*s = Skills(arr)
	return nil
}

// Value implements the driver.Valuer interface
func (s Skills) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "{}", nil
	}
	return pq.StringArray(s).Value()
}
