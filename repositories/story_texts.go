package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hn-radar/models"
)

type StoryTextRepository struct {
	col *mongo.Collection
}

func NewStoryTextRepository(db *mongo.Database) *StoryTextRepository {
	return &StoryTextRepository{col: db.Collection("story_texts")}
}

// UpsertByStory upserts the extracted text keyed by story_id.
func (r *StoryTextRepository) UpsertByStory(ctx context.Context, t *models.StoryText) (*mongo.UpdateResult, error) {
	filter := bson.M{"story_id": t.StoryID}
	update := bson.M{
		"$set": bson.M{
			"story_id":   t.StoryID,
			"plain_text": t.PlainText,
			"word_count": t.WordCount,
			"parsed_at":  t.ParsedAt,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}

// FindByStoryID returns the extracted text of a story.
func (r *StoryTextRepository) FindByStoryID(ctx context.Context, storyID interface{}) (*models.StoryText, error) {
	var t models.StoryText
	if err := r.col.FindOne(ctx, bson.M{"story_id": storyID}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}
