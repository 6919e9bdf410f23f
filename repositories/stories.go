package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hn-radar/models"
)

type StoryRepository struct {
	col *mongo.Collection
}

func NewStoryRepository(db *mongo.Database) *StoryRepository {
	return &StoryRepository{col: db.Collection("stories")}
}

// UpsertByHNID upserts a story keyed by its Hacker News ID. Status flags
// and the AI summary are only written on insert so reprocessing state
// survives recurring collector cycles.
func (r *StoryRepository) UpsertByHNID(ctx context.Context, s *models.Story) (*mongo.UpdateResult, error) {
	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	filter := bson.M{"hn_id": s.HNID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": s.CreatedAt,
			"status":     s.Status,
			"ai_summary": s.AISummary,
		},
		"$set": bson.M{
			"updated_at":    s.UpdatedAt,
			"hn_id":         s.HNID,
			"title":         s.Title,
			"url":           s.URL,
			"by":            s.By,
			"score":         s.Score,
			"comment_count": s.CommentCount,
			"submitted_at":  s.SubmittedAt,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}

// FindByHNID returns a story by its Hacker News ID.
func (r *StoryRepository) FindByHNID(ctx context.Context, hnID int64) (*models.Story, error) {
	var s models.Story
	if err := r.col.FindOne(ctx, bson.M{"hn_id": hnID}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListStoriesOptions controls pagination of the archive listing.
type ListStoriesOptions struct {
	Page     int
	PageSize int
}

// List returns archived stories ordered by descending score, paginated.
func (r *StoryRepository) List(ctx context.Context, in ListStoriesOptions) ([]models.Story, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "score", Value: -1}, {Key: "hn_id", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var stories []models.Story
	if err := cur.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

// UpdateStatusFlags sets status flags and updated_at.
func (r *StoryRepository) UpdateStatusFlags(ctx context.Context, storyID interface{}, flags models.StatusFlags) error {
	_, err := r.col.UpdateByID(ctx, storyID, bson.M{
		"$set": bson.M{"status": flags, "updated_at": time.Now()},
	})
	return err
}

// UpdateAISummary stores the summarization snapshot.
func (r *StoryRepository) UpdateAISummary(ctx context.Context, storyID interface{}, summary models.AISummary) error {
	_, err := r.col.UpdateByID(ctx, storyID, bson.M{
		"$set": bson.M{"ai_summary": summary, "updated_at": time.Now()},
	})
	return err
}

// UpdateThumbnailURL sets the thumbnail_url field.
func (r *StoryRepository) UpdateThumbnailURL(ctx context.Context, storyID interface{}, url string) error {
	_, err := r.col.UpdateByID(ctx, storyID, bson.M{
		"$set": bson.M{"thumbnail_url": url, "updated_at": time.Now()},
	})
	return err
}
