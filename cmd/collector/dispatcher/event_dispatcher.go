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

// EventDispatcher publishes collector-side story events.
type EventDispatcher struct {
	bus eventbus.EventBus
}

func NewEventDispatcher(bus eventbus.EventBus) *EventDispatcher {
	return &EventDispatcher{bus: bus}
}

// PublishStoryDiscovered announces a story that entered the archive for the
// first time. The processor picks it up to extract and summarize the
// linked article.
func (d *EventDispatcher) PublishStoryDiscovered(ctx context.Context, story *models.Story) error {
	e := events.StoryDiscoveredEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.New().String(),
			Type:      events.StoryDiscovered,
			Timestamp: time.Now(),
			Source:    "collector",
			Version:   "1.0",
		},
		StoryID: story.ID,
		HNID:    story.HNID,
		Title:   story.Title,
		URL:     story.URL,
	}

	evt, err := eventbus.NewJSONEvent("", e, 0)
	if err != nil {
		return fmt.Errorf("failed to build event: %w", err)
	}
	return d.bus.Publish(ctx, eventbus.TopicStoryEvents.Base(), evt)
}
