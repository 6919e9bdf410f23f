package dispatcher

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hn-radar/eventbus"
	"hn-radar/events"
	"hn-radar/models"
)

// EventDispatcher publishes processor-side story events.
type EventDispatcher struct {
	bus eventbus.EventBus
}

func NewEventDispatcher(bus eventbus.EventBus) *EventDispatcher {
	return &EventDispatcher{bus: bus}
}

// PublishStoryTextParsed announces that article text extraction finished
// for a story.
func (d *EventDispatcher) PublishStoryTextParsed(ctx context.Context, story *models.Story, wordCount int, thumbnailURL string) error {
	e := events.StoryTextParsedEvent{
		BaseEvent:    newBaseEvent(events.StoryTextParsed),
		StoryID:      story.ID,
		HNID:         story.HNID,
		WordCount:    wordCount,
		ThumbnailURL: thumbnailURL,
	}
	return d.publish(ctx, e)
}

// PublishStorySummarized announces that the AI summary of a story was
// stored.
func (d *EventDispatcher) PublishStorySummarized(ctx context.Context, story *models.Story, summary models.AISummary) error {
	e := events.StorySummarizedEvent{
		BaseEvent:    newBaseEvent(events.StorySummarized),
		StoryID:      story.ID,
		HNID:         story.HNID,
		Tags:         summary.Tags,
		SummaryShort: summary.SummaryShort,
		ModelName:    summary.ModelName,
	}
	return d.publish(ctx, e)
}

func newBaseEvent(t events.EventType) events.BaseEvent {
	return events.BaseEvent{
		ID:        uuid.New().String(),
		Type:      t,
		Timestamp: time.Now(),
		Source:    "processor",
		Version:   "1.0",
	}
}

func (d *EventDispatcher) publish(ctx context.Context, payload any) error {
	evt, err := eventbus.NewJSONEvent("", payload, 0)
	if err != nil {
		return fmt.Errorf("failed to build event: %w", err)
	}
	return d.bus.Publish(ctx, eventbus.TopicStoryEvents.Base(), evt)
}
