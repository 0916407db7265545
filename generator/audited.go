package generator

import (
	"context"
	"time"

	"case-studio/internal/logger"
	"case-studio/models"
)

// LogRecorder persists generation logs.
type LogRecorder interface {
	Insert(ctx context.Context, log models.GenerationLog) error
}

const auditWriteTimeout = 3 * time.Second

// Audited writes a models.GenerationLog for every call to the wrapped
// Generator. Recorder failures are logged and never reach the caller.
type Audited struct {
	next      Generator
	recorder  LogRecorder
	model     string
	requestID func(context.Context) string
}

// NewAudited wraps next. requestID may be nil.
func NewAudited(next Generator, recorder LogRecorder, model string, requestID func(context.Context) string) *Audited {
	return &Audited{next: next, recorder: recorder, model: model, requestID: requestID}
}

func (g *Audited) Generate(ctx context.Context, prompt string) (string, error) {
	requestedAt := time.Now()
	out, err := g.next.Generate(ctx, prompt)
	completedAt := time.Now()

	entry := models.GenerationLog{
		Route:       RouteFrom(ctx),
		ModelName:   g.model,
		PromptChars: len([]rune(prompt)),
		OutputChars: len([]rune(out)),
		DurationMs:  completedAt.Sub(requestedAt).Milliseconds(),
		Success:     err == nil,
		RequestedAt: requestedAt,
		CompletedAt: completedAt,
	}
	if g.requestID != nil {
		entry.RequestID = g.requestID(ctx)
	}
	if err != nil {
		genErr := Classify(err)
		entry.ErrorKind = string(genErr.Kind)
		msg := genErr.Message
		entry.ErrorMessage = &msg
	}

	// the inbound request may already be done; the write gets its own deadline
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancel()
	if recErr := g.recorder.Insert(writeCtx, entry); recErr != nil {
		logger.ErrorWithFields("generation log insert failed", logger.GenerationFields(entry.Route, entry.RequestID, logger.Fields{
			"error": recErr.Error(),
		}))
	}

	return out, err
}
