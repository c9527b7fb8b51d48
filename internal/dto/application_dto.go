package dto

type CreateApplicationRequest struct {
	JobTitle        string  `json:"jobTitle" validate:"required,min=2,max=200"`
	Company         string  `json:"company" validate:"omitempty,max=200"`
	JobDescription  string  `json:"jobDescription" validate:"required,min=50,max=10000"`
	OriginalResume  string  `json:"originalResume" validate:"omitempty,max=10000"`
	OptimizedResume string  `json:"optimizedResume" validate:"omitempty,max=10000"`
	CoverLetter     string  `json:"coverLetter" validate:"omitempty,max=10000"`
	MatchScore      float64 `json:"matchScore" validate:"omitempty,gte=0,lte=100"`
}

// UpdateApplicationRequest uses pointers so handlers can tell "field absent"
// apart from "field set to zero value"; only present fields are written.
type UpdateApplicationRequest struct {
	JobTitle       *string `json:"jobTitle" validate:"omitempty,min=2,max=200"`
	Company        *string `json:"company" validate:"omitempty,max=200"`
	JobDescription *string `json:"jobDescription" validate:"omitempty,min=50,max=10000"`
	Status         *string `json:"status" validate:"omitempty,oneof=saved applied interview rejected"`
	Notes          *string `json:"notes" validate:"omitempty,max=1000"`
}
