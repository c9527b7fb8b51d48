package util

import (
	"testing"

	"github.com/rafidhms/jobtrail/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		errs := ValidateStruct(dto.RegisterRequest{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Password: "secret123",
		})
		assert.Nil(t, errs)
	})

	t.Run("missing everything", func(t *testing.T) {
		errs := ValidateStruct(dto.RegisterRequest{})
		assert.Contains(t, errs, "name")
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "password")
	})

	t.Run("field names follow json tags", func(t *testing.T) {
		errs := ValidateStruct(dto.RegisterRequest{Name: "J", Email: "not-an-email", Password: "short"})
		assert.Equal(t, "name must be at least 2 characters", errs["name"])
		assert.Equal(t, "Invalid email format", errs["email"])
		assert.Equal(t, "password must be at least 6 characters", errs["password"])
	})
}

func TestValidateUpdateApplicationRequest(t *testing.T) {
	status := "interview"
	bogus := "archived"
	longDesc := make([]byte, 49)
	for i := range longDesc {
		longDesc[i] = 'x'
	}
	tooShort := string(longDesc)

	t.Run("empty update is valid", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(dto.UpdateApplicationRequest{}))
	})

	t.Run("valid status", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(dto.UpdateApplicationRequest{Status: &status}))
	})

	t.Run("status outside enum rejected", func(t *testing.T) {
		errs := ValidateStruct(dto.UpdateApplicationRequest{Status: &bogus})
		assert.Contains(t, errs, "status")
		assert.Equal(t, "status must be one of: saved, applied, interview, rejected", errs["status"])
	})

	t.Run("short job description rejected", func(t *testing.T) {
		errs := ValidateStruct(dto.UpdateApplicationRequest{JobDescription: &tooShort})
		assert.Contains(t, errs, "jobDescription")
	})
}

func TestValidateOptimizeResumeRequest(t *testing.T) {
	resume := stringOfLen(100)
	desc := stringOfLen(50)

	assert.Nil(t, ValidateStruct(dto.OptimizeResumeRequest{ResumeText: resume, JobDescription: desc}))

	errs := ValidateStruct(dto.OptimizeResumeRequest{ResumeText: stringOfLen(99), JobDescription: desc})
	assert.Contains(t, errs, "resumeText")

	errs = ValidateStruct(dto.OptimizeResumeRequest{ResumeText: resume, JobDescription: stringOfLen(49)})
	assert.Contains(t, errs, "jobDescription")
}

func TestValidateCoverLetterTone(t *testing.T) {
	resume := stringOfLen(100)
	desc := stringOfLen(50)

	for _, tone := range []string{"", "professional", "enthusiastic", "formal"} {
		assert.Nil(t, ValidateStruct(dto.GenerateCoverLetterRequest{
			ResumeText:     resume,
			JobDescription: desc,
			Tone:           tone,
		}), "tone %q should be accepted", tone)
	}

	errs := ValidateStruct(dto.GenerateCoverLetterRequest{
		ResumeText:     resume,
		JobDescription: desc,
		Tone:           "sarcastic",
	})
	assert.Contains(t, errs, "tone")
}

func stringOfLen(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}
