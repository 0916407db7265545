package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"case-studio/models"
)

const GenerationLogsCollection = "generation_logs"

type GenerationLogRepository struct {
	col *mongo.Collection
}

func NewGenerationLogRepository(db *mongo.Database) *GenerationLogRepository {
	return &GenerationLogRepository{col: db.Collection(GenerationLogsCollection)}
}

// Insert stores a generation log; RequestedAt defaults to now.
func (r *GenerationLogRepository) Insert(ctx context.Context, log models.GenerationLog) error {
	if log.RequestedAt.IsZero() {
		log.RequestedAt = time.Now()
	}
	if log.CompletedAt.IsZero() {
		log.CompletedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, log)
	return err
}
