package dto

type OptimizeResumeRequest struct {
	ResumeText     string `json:"resumeText" validate:"required,min=100,max=10000"`
	JobDescription string `json:"jobDescription" validate:"required,min=50,max=10000"`
}

type OptimizeResumeDTO struct {
	OptimizedResume string   `json:"optimizedResume"`
	MatchScore      float64  `json:"matchScore"`
	MatchAnalysis   string   `json:"matchAnalysis"`
	RequiredSkills  []string `json:"requiredSkills"`
	MissingSkills   []string `json:"missingSkills"`
}

type GenerateCoverLetterRequest struct {
	ResumeText     string `json:"resumeText" validate:"required,min=100,max=10000"`
	JobDescription string `json:"jobDescription" validate:"required,min=50,max=10000"`
	Tone           string `json:"tone" validate:"omitempty,oneof=professional enthusiastic formal"`
}

type CoverLetterDTO struct {
	CoverLetter string `json:"coverLetter"`
}
