// Package client is a typed Go client for the jobtrail API. It also carries
// the application-side state the web UI is built around: the kanban Board
// and the multi-step NewApplicationFlow.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(baseURL),
	}
}

// SetToken sets the bearer token used on authenticated calls. Login and
// Register call it automatically.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type Application struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	JobTitle        string    `json:"jobTitle"`
	Company         string    `json:"company,omitempty"`
	JobDescription  string    `json:"jobDescription"`
	OriginalResume  string    `json:"originalResume,omitempty"`
	OptimizedResume string    `json:"optimizedResume,omitempty"`
	CoverLetter     string    `json:"coverLetter,omitempty"`
	MatchScore      float64   `json:"matchScore"`
	Status          Status    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CreateApplicationInput struct {
	JobTitle        string  `json:"jobTitle"`
	Company         string  `json:"company,omitempty"`
	JobDescription  string  `json:"jobDescription"`
	OriginalResume  string  `json:"originalResume,omitempty"`
	OptimizedResume string  `json:"optimizedResume,omitempty"`
	CoverLetter     string  `json:"coverLetter,omitempty"`
	MatchScore      float64 `json:"matchScore,omitempty"`
}

type UpdateApplicationInput struct {
	JobTitle       *string `json:"jobTitle,omitempty"`
	Company        *string `json:"company,omitempty"`
	JobDescription *string `json:"jobDescription,omitempty"`
	Status         *Status `json:"status,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

type Optimization struct {
	OptimizedResume string   `json:"optimizedResume"`
	MatchScore      float64  `json:"matchScore"`
	MatchAnalysis   string   `json:"matchAnalysis"`
	RequiredSkills  []string `json:"requiredSkills"`
	MissingSkills   []string `json:"missingSkills"`
}

// APIError is returned when the server answered with the error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*Session, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &session)
	if err != nil {
		return nil, err
	}
	c.SetToken(session.Token)
	return &session, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &session)
	if err != nil {
		return nil, err
	}
	c.SetToken(session.Token)
	return &session, nil
}

func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) ListApplications(ctx context.Context) ([]Application, error) {
	var apps []Application
	if err := c.do(ctx, http.MethodGet, "/api/applications", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) CreateApplication(ctx context.Context, input CreateApplicationInput) (*Application, error) {
	var app Application
	if err := c.do(ctx, http.MethodPost, "/api/applications", input, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *Client) UpdateApplication(ctx context.Context, id string, input UpdateApplicationInput) (*Application, error) {
	var app Application
	if err := c.do(ctx, http.MethodPut, "/api/applications/"+id, input, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status Status) (*Application, error) {
	return c.UpdateApplication(ctx, id, UpdateApplicationInput{Status: &status})
}

func (c *Client) DeleteApplication(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/applications/"+id, nil, nil)
}

func (c *Client) OptimizeResume(ctx context.Context, resumeText, jobDescription string) (*Optimization, error) {
	var out Optimization
	err := c.do(ctx, http.MethodPost, "/api/ai/optimize", map[string]string{
		"resumeText":     resumeText,
		"jobDescription": jobDescription,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateCoverLetter(ctx context.Context, resumeText, jobDescription, tone string) (string, error) {
	var out struct {
		CoverLetter string `json:"coverLetter"`
	}
	body := map[string]string{
		"resumeText":     resumeText,
		"jobDescription": jobDescription,
	}
	if tone != "" {
		body["tone"] = tone
	}
	if err := c.do(ctx, http.MethodPost, "/api/ai/cover-letter", body, &out); err != nil {
		return "", err
	}
	return out.CoverLetter, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	if resp.IsError() || !env.Success {
		message := env.Message
		if message == "" {
			message = resp.Status()
		}
		return &APIError{Status: resp.StatusCode(), Message: message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data from %s: %w", path, err)
		}
	}
	return nil
}
