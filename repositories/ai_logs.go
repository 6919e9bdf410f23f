package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"hn-radar/models"
)

type AILogRepository struct {
	col *mongo.Collection
}

func NewAILogRepository(db *mongo.Database) *AILogRepository {
	return &AILogRepository{col: db.Collection("ai_logs")}
}

func (r *AILogRepository) Insert(ctx context.Context, l models.AILog) (*mongo.InsertOneResult, error) {
	return r.col.InsertOne(ctx, l)
}
