package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusSaved     = "saved"
	StatusApplied   = "applied"
	StatusInterview = "interview"
	StatusRejected  = "rejected"
)

// ApplicationStatuses lists every pipeline stage a record can sit in.
// Transitions are unrestricted: any stage is reachable from any other.
var ApplicationStatuses = []string{StatusSaved, StatusApplied, StatusInterview, StatusRejected}

type Application struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	JobTitle        string    `gorm:"type:varchar(200);not null" json:"jobTitle"`
	Company         string    `gorm:"type:varchar(200)" json:"company,omitempty"`
	JobDescription  string    `gorm:"type:text;not null" json:"jobDescription"`
	OriginalResume  string    `gorm:"type:text" json:"originalResume,omitempty"`
	OptimizedResume string    `gorm:"type:text" json:"optimizedResume,omitempty"`
	CoverLetter     string    `gorm:"type:text" json:"coverLetter,omitempty"`
	MatchScore      float64   `gorm:"type:float" json:"matchScore"`
	Status          string    `gorm:"type:varchar(20);default:'saved'" json:"status"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (a *Application) TableName() string {
	return "applications"
}
