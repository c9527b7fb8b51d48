package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// AIService is the contract both model providers implement. Callers must
// treat any returned error as "optimization unavailable" and fall back;
// providers never retry or cache.
type AIService interface {
	OptimizeResume(ctx context.Context, resumeText, jobDescription string) (*OptimizeResult, error)
	GenerateCoverLetter(ctx context.Context, resumeText, jobDescription, tone string) (string, error)
}

type OptimizeResult struct {
	OptimizedResume string
	MatchScore      float64
	MatchAnalysis   string
	RequiredSkills  []string
	MissingSkills   []string
}

const optimizePromptTemplate = `You are a senior recruiter with 10+ years of experience. Analyze this job description and resume.

JOB DESCRIPTION:
%s

RESUME:
%s

TASKS:
1. Extract 5-8 key skills/requirements from the job description
2. Rewrite the resume bullet points to match the job requirements (ATS-friendly, quantified achievements)
3. Calculate a match score (0-100) based on skill alignment
4. Write a short rationale for the score
5. List the required skills the resume is still missing

Return ONLY valid JSON in this exact format, no markdown:
{
  "optimizedResume": "Optimized resume text here...",
  "matchScore": 87,
  "matchAnalysis": "Short rationale here...",
  "requiredSkills": ["React", "TypeScript", "Leadership", "AWS"],
  "missingSkills": ["Kubernetes"]
}`

const coverLetterPromptTemplate = `Write a %s cover letter for this job using the candidate's resume.

JOB DESCRIPTION:
%s

RESUME:
%s

Requirements:
- 3-4 paragraphs max
- Tailor to the job requirements
- Show enthusiasm for the company and role
- Quantify achievements from the resume
- Professional closing

Return ONLY the cover letter text.`

func buildOptimizePrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(optimizePromptTemplate, jobDescription, resumeText)
}

func buildCoverLetterPrompt(resumeText, jobDescription, tone string) string {
	return fmt.Sprintf(coverLetterPromptTemplate, toneStyle(tone), jobDescription, resumeText)
}

func toneStyle(tone string) string {
	switch tone {
	case "enthusiastic":
		return "enthusiastic and energetic"
	case "formal":
		return "formal and reserved"
	default:
		return "professional"
	}
}

// parseOptimization turns the model's JSON text into an OptimizeResult.
// Models sometimes wrap output in markdown fences despite instructions,
// so fences are stripped before parsing.
func parseOptimization(raw string) (*OptimizeResult, error) {
	text := stripJSONFence(raw)
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("model returned malformed JSON")
	}

	optimized := gjson.Get(text, "optimizedResume").String()
	if strings.TrimSpace(optimized) == "" {
		return nil, fmt.Errorf("model returned no optimized resume")
	}

	score := gjson.Get(text, "matchScore").Float()
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &OptimizeResult{
		OptimizedResume: optimized,
		MatchScore:      score,
		MatchAnalysis:   gjson.Get(text, "matchAnalysis").String(),
		RequiredSkills:  stringSlice(gjson.Get(text, "requiredSkills")),
		MissingSkills:   stringSlice(gjson.Get(text, "missingSkills")),
	}, nil
}

func stringSlice(res gjson.Result) []string {
	out := []string{}
	for _, item := range res.Array() {
		if s := item.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func stripJSONFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
