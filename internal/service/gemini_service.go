package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rafidhms/jobtrail/internal/config"
	"google.golang.org/genai"
)

type GeminiService struct {
	client *genai.Client
	model  string
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiService{
		client: client,
		model:  geminiConfig.Model,
	}, nil
}

func (s *GeminiService) OptimizeResume(ctx context.Context, resumeText, jobDescription string) (*OptimizeResult, error) {
	prompt := buildOptimizePrompt(resumeText, jobDescription)

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.1)),
		ResponseMIMEType: "application/json",
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), genConfig)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	text, err := responseText(result)
	if err != nil {
		return nil, err
	}
	return parseOptimization(text)
}

func (s *GeminiService) GenerateCoverLetter(ctx context.Context, resumeText, jobDescription, tone string) (string, error) {
	prompt := buildCoverLetterPrompt(resumeText, jobDescription, tone)

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	return responseText(result)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no parts in candidate content")
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty text in response")
	}
	return text, nil
}
