package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenerationLog stores one provider call for monitoring.
// Generated text is deliberately not kept; only its size.
// Collection: generation_logs
type GenerationLog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID    string             `bson:"request_id" json:"request_id"`
	Route        string             `bson:"route" json:"route"`
	ModelName    string             `bson:"model_name" json:"model_name"`
	PromptChars  int                `bson:"prompt_chars" json:"prompt_chars"`
	OutputChars  int                `bson:"output_chars" json:"output_chars"`
	DurationMs   int64              `bson:"duration_ms" json:"duration_ms"`
	Success      bool               `bson:"success" json:"success"`
	ErrorKind    string             `bson:"error_kind,omitempty" json:"error_kind,omitempty"`
	ErrorMessage *string            `bson:"error_message,omitempty" json:"error_message,omitempty"`
	RequestedAt  time.Time          `bson:"requested_at" json:"requested_at"`
	CompletedAt  time.Time          `bson:"completed_at" json:"completed_at"`
}
