package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusFlags represents processing progress of an archived story.
type StatusFlags struct {
	TextParsed   bool `bson:"text_parsed" json:"text_parsed"`
	AISummarized bool `bson:"ai_summarized" json:"ai_summarized"`
}

// Story is one archived Hacker News story.
// Collection: stories
type Story struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
	Status       StatusFlags        `bson:"status" json:"status"`
	HNID         int64              `bson:"hn_id" json:"hn_id"`
	Title        string             `bson:"title" json:"title"`
	URL          string             `bson:"url" json:"url"`
	By           string             `bson:"by" json:"by"`
	Score        int                `bson:"score" json:"score"`
	CommentCount int                `bson:"comment_count" json:"comment_count"`
	SubmittedAt  time.Time          `bson:"submitted_at" json:"submitted_at"`
	ThumbnailURL string             `bson:"thumbnail_url" json:"thumbnail_url"`
	AISummary    AISummary          `bson:"ai_summary" json:"ai_summary"`
}

// AISummary is the denormalized summarization snapshot stored on the story.
type AISummary struct {
	Tags         []string  `bson:"tags" json:"tags"`
	SummaryShort string    `bson:"summary_short" json:"summary_short"`
	SummaryLong  string    `bson:"summary_long" json:"summary_long"`
	ModelName    string    `bson:"model_name" json:"model_name"`
	GeneratedAt  time.Time `bson:"generated_at" json:"generated_at"`
}

// StoryText holds the extracted plain text of the linked article.
// Collection: story_texts
type StoryText struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoryID   primitive.ObjectID `bson:"story_id" json:"story_id"`
	PlainText string             `bson:"plain_text" json:"plain_text"`
	WordCount int                `bson:"word_count" json:"word_count"`
	ParsedAt  time.Time          `bson:"parsed_at" json:"parsed_at"`
}
