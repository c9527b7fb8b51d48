package client

import (
	"context"
	"fmt"
	"strings"
)

// Step is the position in the new-application flow. The flow is linear:
// Details -> Resume -> Processing -> Review, with Processing dropping back
// to Resume on any failure.
type Step int

const (
	StepDetails Step = iota + 1
	StepResume
	StepProcessing
	StepReview
)

// SubmitOutcome distinguishes the three ways the optimize-then-create
// sequence can end. Partial success (optimized but not persisted) is
// reported, not reconciled; the caller has to retry from scratch.
type SubmitOutcome int

const (
	OutcomeNotOptimized SubmitOutcome = iota
	OutcomeOptimizedNotPersisted
	OutcomeOptimizedPersisted
)

type SubmitResult struct {
	Outcome      SubmitOutcome
	Optimization *Optimization
	Application  *Application
	Err          error
}

type NewApplicationFlow struct {
	api  *Client
	step Step

	jobTitle       string
	company        string
	jobDescription string
	resumeText     string
}

func NewApplicationModal(api *Client) *NewApplicationFlow {
	return &NewApplicationFlow{api: api, step: StepDetails}
}

func (f *NewApplicationFlow) Step() Step {
	return f.step
}

func (f *NewApplicationFlow) EnterDetails(jobTitle, company, jobDescription string) error {
	if f.step != StepDetails {
		return fmt.Errorf("details can only be entered at step 1")
	}
	jobTitle = strings.TrimSpace(jobTitle)
	if len(jobTitle) < 2 {
		return fmt.Errorf("job title is required")
	}
	if len(jobDescription) < 50 {
		return fmt.Errorf("job description must be at least 50 characters")
	}

	f.jobTitle = jobTitle
	f.company = strings.TrimSpace(company)
	f.jobDescription = jobDescription
	f.step = StepResume
	return nil
}

func (f *NewApplicationFlow) EnterResume(resumeText string) error {
	if f.step != StepResume {
		return fmt.Errorf("resume can only be entered at step 2")
	}
	if len(resumeText) < 100 {
		return fmt.Errorf("resume text must be at least 100 characters")
	}
	f.resumeText = resumeText
	return nil
}

// Submit runs the optimize call and the create call sequentially. The flow
// blocks in StepProcessing while both run; any failure sends it back to
// StepResume so the user can correct and retry.
func (f *NewApplicationFlow) Submit(ctx context.Context) *SubmitResult {
	if f.step != StepResume || f.resumeText == "" {
		return &SubmitResult{
			Outcome: OutcomeNotOptimized,
			Err:     fmt.Errorf("flow is not ready to submit"),
		}
	}

	f.step = StepProcessing

	optimization, err := f.api.OptimizeResume(ctx, f.resumeText, f.jobDescription)
	if err != nil {
		f.step = StepResume
		return &SubmitResult{Outcome: OutcomeNotOptimized, Err: err}
	}

	app, err := f.api.CreateApplication(ctx, CreateApplicationInput{
		JobTitle:        f.jobTitle,
		Company:         f.company,
		JobDescription:  f.jobDescription,
		OriginalResume:  f.resumeText,
		OptimizedResume: optimization.OptimizedResume,
		MatchScore:      optimization.MatchScore,
	})
	if err != nil {
		f.step = StepResume
		return &SubmitResult{
			Outcome:      OutcomeOptimizedNotPersisted,
			Optimization: optimization,
			Err:          err,
		}
	}

	f.step = StepReview
	return &SubmitResult{
		Outcome:      OutcomeOptimizedPersisted,
		Optimization: optimization,
		Application:  app,
	}
}
