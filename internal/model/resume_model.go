package model

import (
	"time"

	"github.com/google/uuid"
)

// Resume is migrated but has no routes yet; the upload feature that would
// populate it never shipped.
type Resume struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	ResumeText string    `gorm:"type:text;not null" json:"resumeText"`
	Skills     string    `gorm:"type:jsonb" json:"skills"`     // JSON array of strings
	Experience string    `gorm:"type:jsonb" json:"experience"` // JSON array of strings
	Education  string    `gorm:"type:text" json:"education"`
	CreatedAt  time.Time `json:"createdAt"`
}
