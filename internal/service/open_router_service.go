package service

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rafidhms/jobtrail/internal/config"
	"github.com/tidwall/gjson"
)

const openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterService is the alternative provider, selected with
// AI_PROVIDER=openrouter. Same contract as GeminiService.
type OpenRouterService struct {
	apiKey string
	model  string
	http   *resty.Client
}

func NewOpenRouterService() *OpenRouterService {
	openRouterConfig := config.LoadOpenRouterConfig()
	return &OpenRouterService{
		apiKey: openRouterConfig.APIKey,
		model:  openRouterConfig.Model,
		http:   resty.New(),
	}
}

func (s *OpenRouterService) OptimizeResume(ctx context.Context, resumeText, jobDescription string) (*OptimizeResult, error) {
	content, err := s.complete(ctx,
		"You are an AI assistant optimizing resumes for job applications. Answer with JSON only.",
		buildOptimizePrompt(resumeText, jobDescription))
	if err != nil {
		return nil, err
	}
	return parseOptimization(content)
}

func (s *OpenRouterService) GenerateCoverLetter(ctx context.Context, resumeText, jobDescription, tone string) (string, error) {
	return s.complete(ctx,
		"You are an AI assistant writing cover letters for job applications.",
		buildCoverLetterPrompt(resumeText, jobDescription, tone))
}

func (s *OpenRouterService) complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "system", "content": system},
				{"role": "user", "content": prompt},
			},
		}).
		Post(openRouterURL)
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter returned %s", resp.Status())
	}

	content := gjson.Get(resp.String(), "choices.0.message.content").String()
	if content == "" {
		return "", fmt.Errorf("no content in openrouter response")
	}
	return content, nil
}
