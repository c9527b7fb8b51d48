package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptimization(t *testing.T) {
	t.Run("valid response", func(t *testing.T) {
		raw := `{
			"optimizedResume": "Improved resume",
			"matchScore": 87,
			"matchAnalysis": "Strong overlap on backend skills",
			"requiredSkills": ["Go", "PostgreSQL", "Docker"],
			"missingSkills": ["Kubernetes"]
		}`

		result, err := parseOptimization(raw)
		require.NoError(t, err)
		assert.Equal(t, "Improved resume", result.OptimizedResume)
		assert.Equal(t, 87.0, result.MatchScore)
		assert.Equal(t, "Strong overlap on backend skills", result.MatchAnalysis)
		assert.Equal(t, []string{"Go", "PostgreSQL", "Docker"}, result.RequiredSkills)
		assert.Equal(t, []string{"Kubernetes"}, result.MissingSkills)
	})

	t.Run("markdown fenced response", func(t *testing.T) {
		raw := "```json\n{\"optimizedResume\": \"Fenced resume\", \"matchScore\": 50}\n```"

		result, err := parseOptimization(raw)
		require.NoError(t, err)
		assert.Equal(t, "Fenced resume", result.OptimizedResume)
		assert.Equal(t, 50.0, result.MatchScore)
		assert.Empty(t, result.RequiredSkills)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := parseOptimization("I could not produce JSON, sorry")
		assert.Error(t, err)
	})

	t.Run("missing optimized resume", func(t *testing.T) {
		_, err := parseOptimization(`{"matchScore": 90}`)
		assert.Error(t, err)
	})

	t.Run("score clamped to 0-100", func(t *testing.T) {
		result, err := parseOptimization(`{"optimizedResume": "x", "matchScore": 250}`)
		require.NoError(t, err)
		assert.Equal(t, 100.0, result.MatchScore)

		result, err = parseOptimization(`{"optimizedResume": "x", "matchScore": -3}`)
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.MatchScore)
	})
}

func TestToneStyle(t *testing.T) {
	tests := []struct {
		tone     string
		expected string
	}{
		{"professional", "professional"},
		{"enthusiastic", "enthusiastic and energetic"},
		{"formal", "formal and reserved"},
		{"", "professional"},
		{"unknown", "professional"},
	}
	for _, tt := range tests {
		t.Run(tt.tone, func(t *testing.T) {
			assert.Equal(t, tt.expected, toneStyle(tt.tone))
		})
	}
}

func TestBuildOptimizePromptIsDeterministic(t *testing.T) {
	a := buildOptimizePrompt("resume", "job description")
	b := buildOptimizePrompt("resume", "job description")
	assert.Equal(t, a, b)
	assert.Contains(t, a, "job description")
	assert.Contains(t, a, "resume")
}
