package generator

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/genai"
)

// Kind classifies why a generation failed.
type Kind string

const (
	KindTimeout       Kind = "timeout"
	KindProvider      Kind = "provider"
	KindNetwork       Kind = "network"
	KindEmptyResponse Kind = "empty_response"
	KindInvalidPrompt Kind = "invalid_prompt"
	KindCanceled      Kind = "canceled"
)

// Sentinels for errors.Is against a *GenerationError of the same kind.
var (
	ErrTimeout       = &GenerationError{Kind: KindTimeout, Message: "generation timed out"}
	ErrEmptyResponse = &GenerationError{Kind: KindEmptyResponse, Message: "provider returned no text"}
	ErrInvalidPrompt = &GenerationError{Kind: KindInvalidPrompt, Message: "prompt is empty"}
)

// GenerationError is the single error type returned by generators.
// Message is safe to show to the end user.
type GenerationError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e == nil {
		return "generation failed"
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// Is matches another *GenerationError by Kind.
func (e *GenerationError) Is(target error) bool {
	t, ok := target.(*GenerationError)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the Kind of err, or "" when err is not a *GenerationError.
func KindOf(err error) Kind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return ""
}

// Classify wraps an arbitrary provider/transport error into a *GenerationError.
// An error that already is a *GenerationError is returned unchanged.
func Classify(err error) *GenerationError {
	if err == nil {
		return nil
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &GenerationError{Kind: KindTimeout, Message: ErrTimeout.Message, Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &GenerationError{Kind: KindCanceled, Message: "generation canceled", Cause: err}
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error()
		}
		return &GenerationError{Kind: KindProvider, Message: msg, Cause: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return &GenerationError{Kind: KindTimeout, Message: ErrTimeout.Message, Cause: err}
		}
		return &GenerationError{Kind: KindNetwork, Message: fmt.Sprintf("provider unreachable: %v", err), Cause: err}
	}

	return &GenerationError{Kind: KindProvider, Message: err.Error(), Cause: err}
}
