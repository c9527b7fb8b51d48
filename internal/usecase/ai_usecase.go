package usecase

import (
	"context"
	"log"

	"github.com/rafidhms/jobtrail/internal/dto"
	"github.com/rafidhms/jobtrail/internal/service"
)

// fallbackCoverLetter is the fixed text returned when generation fails.
const fallbackCoverLetter = "Error generating cover letter. Please try again."

type AIUsecase struct {
	ai service.AIService
}

func NewAIUsecase(ai service.AIService) *AIUsecase {
	return &AIUsecase{ai: ai}
}

// OptimizeResume never fails: any provider error degrades to the submitted
// resume with a zero match score. Callers must read matchScore 0 as
// "optimization unavailable", not as a genuine low match.
func (uc *AIUsecase) OptimizeResume(ctx context.Context, req dto.OptimizeResumeRequest) dto.OptimizeResumeDTO {
	result, err := uc.ai.OptimizeResume(ctx, req.ResumeText, req.JobDescription)
	if err != nil {
		log.Printf("resume optimization failed, returning fallback: %v", err)
		return dto.OptimizeResumeDTO{
			OptimizedResume: req.ResumeText,
			MatchScore:      0,
			MatchAnalysis:   "",
			RequiredSkills:  []string{},
			MissingSkills:   []string{},
		}
	}

	return dto.OptimizeResumeDTO{
		OptimizedResume: result.OptimizedResume,
		MatchScore:      result.MatchScore,
		MatchAnalysis:   result.MatchAnalysis,
		RequiredSkills:  result.RequiredSkills,
		MissingSkills:   result.MissingSkills,
	}
}

func (uc *AIUsecase) GenerateCoverLetter(ctx context.Context, req dto.GenerateCoverLetterRequest) dto.CoverLetterDTO {
	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}

	text, err := uc.ai.GenerateCoverLetter(ctx, req.ResumeText, req.JobDescription, tone)
	if err != nil {
		log.Printf("cover letter generation failed, returning fallback: %v", err)
		return dto.CoverLetterDTO{CoverLetter: fallbackCoverLetter}
	}
	return dto.CoverLetterDTO{CoverLetter: text}
}
