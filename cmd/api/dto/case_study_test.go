package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"case-studio/prompt"
)

func TestCaseStudyToPromptPrefersCanonicalFields(t *testing.T) {
	d := CaseStudyRequestDTO{
		NumberOfNumericals:  4,
		Difficulty:          "hard",
		NumericalCount:      9,
		NumericalDifficulty: "easy",
		IncludeNumericals:   true,
	}

	got := d.ToPrompt()
	assert.Equal(t, 4, got.NumberOfNumericals)
	assert.Equal(t, prompt.DifficultyHard, got.Difficulty)
	assert.True(t, got.IncludeNumericals)
}

func TestCaseStudyToPromptFallsBackToClientAliases(t *testing.T) {
	d := CaseStudyRequestDTO{
		CompanyName:         "Acme",
		Scenario:            "Others",
		CustomScenario:      "Port congestion delays",
		NumericalCount:      3,
		NumericalDifficulty: "medium",
		IncludeNumericals:   true,
		NumericalOnly:       true,
	}

	got := d.ToPrompt()
	assert.Equal(t, 3, got.NumberOfNumericals)
	assert.Equal(t, prompt.DifficultyMedium, got.Difficulty)
	assert.False(t, got.IncludeNumericals)
	assert.Equal(t, "Port congestion delays", got.EffectiveScenario())
	assert.Equal(t, "Acme", got.CompanyName)
}

func TestNumericalsToPrompt(t *testing.T) {
	got := NumericalsRequestDTO{NumberOfNumericals: 5, Difficulty: "hard"}.ToPrompt()

	assert.Equal(t, 5, got.NumberOfNumericals)
	assert.Equal(t, prompt.DifficultyHard, got.Difficulty)
	assert.Equal(t, prompt.DefaultTopic, got.EffectiveTopic())
}
