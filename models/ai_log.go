package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AILog records one summarization call for auditing.
// Collection: ai_logs
type AILog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoryID         primitive.ObjectID `bson:"story_id" json:"story_id"`
	Model           string             `bson:"model" json:"model"`
	DurationMs      int64              `bson:"duration_ms" json:"duration_ms"`
	Success         bool               `bson:"success" json:"success"`
	ResponseExcerpt string             `bson:"response_excerpt" json:"response_excerpt"`
	RequestedAt     time.Time          `bson:"requested_at" json:"requested_at"`
	CompletedAt     time.Time          `bson:"completed_at" json:"completed_at"`
}
