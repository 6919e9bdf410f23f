package events

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType enumerates the story pipeline events.
type EventType string

const (
	StoryDiscovered EventType = "story.discovered"
	StoryTextParsed EventType = "story.text_parsed"
	StorySummarized EventType = "story.summarized"
)

// BaseEvent is the common envelope of every event.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"` // "collector", "processor", "api"
	Version   string    `json:"version"`
}

// GetType returns the event type.
func (e BaseEvent) GetType() EventType {
	return e.Type
}

// StoryDiscoveredEvent is published when the collector archives a story it
// has not seen before.
type StoryDiscoveredEvent struct {
	BaseEvent
	StoryID primitive.ObjectID `json:"story_id"`
	HNID    int64              `json:"hn_id"`
	Title   string             `json:"title"`
	URL     string             `json:"url,omitempty"`
}

// StoryTextParsedEvent is published after article text extraction.
type StoryTextParsedEvent struct {
	BaseEvent
	StoryID      primitive.ObjectID `json:"story_id"`
	HNID         int64              `json:"hn_id"`
	WordCount    int                `json:"word_count"`
	ThumbnailURL string             `json:"thumbnail_url,omitempty"`
}

// StorySummarizedEvent is published after the AI summary is stored.
type StorySummarizedEvent struct {
	BaseEvent
	StoryID      primitive.ObjectID `json:"story_id"`
	HNID         int64              `json:"hn_id"`
	Tags         []string           `json:"tags"`
	SummaryShort string             `json:"summary_short"`
	ModelName    string             `json:"model_name"`
}
