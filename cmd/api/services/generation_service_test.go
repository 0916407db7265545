package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"case-studio/cmd/api/dto"
	"case-studio/generator"
	"case-studio/prompt"
)

func failingGenerator(err error) generator.Generator {
	return generator.Func(func(ctx context.Context, prompt string) (string, error) {
		return "", err
	})
}

func TestCaseStudyShape(t *testing.T) {
	assert.Equal(t, dto.ShapeCaseStudyWithNumericals, CaseStudyShape(prompt.CaseStudyRequest{IncludeNumericals: true}))
	assert.Equal(t, dto.ShapeNumericalsOnly, CaseStudyShape(prompt.CaseStudyRequest{IncludeNumericals: false}))
}

func TestChatErrorKeepsProviderMessage(t *testing.T) {
	svc := NewGenerationService(failingGenerator(errors.New("API key not valid")))

	_, chatErr := svc.Chat(context.Background(), "hi")
	require.NotNil(t, chatErr)
	assert.Equal(t, "API key not valid", chatErr.Message)
	assert.Equal(t, http.StatusBadGateway, chatErr.StatusCode)
	assert.Equal(t, generator.KindProvider, chatErr.Kind)
	assert.EqualError(t, errors.Unwrap(chatErr), "API key not valid")
}

func TestGenerationFailuresUseGenericMessages(t *testing.T) {
	svc := NewGenerationService(failingGenerator(generator.ErrTimeout))

	_, csErr := svc.GenerateCaseStudy(context.Background(), dto.CaseStudyRequestDTO{})
	require.NotNil(t, csErr)
	assert.Equal(t, ErrMsgCaseStudyFailed, csErr.Message)
	assert.Equal(t, http.StatusGatewayTimeout, csErr.StatusCode)
	assert.ErrorIs(t, csErr, generator.ErrTimeout)

	svc = NewGenerationService(failingGenerator(errors.New("boom")))
	_, numErr := svc.GenerateNumericals(context.Background(), dto.NumericalsRequestDTO{})
	require.NotNil(t, numErr)
	assert.Equal(t, ErrMsgNumericalsFailed, numErr.Message)
	assert.Equal(t, http.StatusInternalServerError, numErr.StatusCode)
}

func TestGenerateCaseStudyPassesOutputThrough(t *testing.T) {
	var gotPrompt string
	svc := NewGenerationService(generator.Func(func(ctx context.Context, p string) (string, error) {
		gotPrompt = p
		return "  raw *markdown*  ", nil
	}))

	req := dto.CaseStudyRequestDTO{Scenario: "Retail distribution", IncludeNumericals: true}
	res, err := svc.GenerateCaseStudy(context.Background(), req)
	require.Nil(t, err)
	assert.Equal(t, "  raw *markdown*  ", res.Output)
	assert.Equal(t, prompt.BuildCaseStudyPrompt(req.ToPrompt()), gotPrompt)
}
