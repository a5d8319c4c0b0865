package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Settings is the per-company configuration: display currency plus
// the ordered platform allow-list. CustomPlatforms are appended to
// EnabledPlatforms when building the entry-form choices. Exactly one
// row per company, created lazily on first admin access.
type Settings struct {
	ID               uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyID        uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	Currency         string                      `gorm:"size:3;not null;default:'USD'" json:"currency"`
	EnabledPlatforms datatypes.JSONSlice[string] `gorm:"not null" json:"enabled_platforms"`
	CustomPlatforms  datatypes.JSONSlice[string] `gorm:"not null" json:"custom_platforms"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}

// AllPlatforms is the entry-time allow-list: enabled platforms
// followed by the company's custom ones.
func (s *Settings) AllPlatforms() []string {
	out := make([]string, 0, len(s.EnabledPlatforms)+len(s.CustomPlatforms))
	out = append(out, s.EnabledPlatforms...)
	out = append(out, s.CustomPlatforms...)
	return out
}
