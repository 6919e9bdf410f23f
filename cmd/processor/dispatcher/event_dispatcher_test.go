package dispatcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hn-radar/eventbus"
	"hn-radar/events"
	"hn-radar/models"
)

type fakeBus struct {
	topics  []string
	payload []eventbus.Event
}

func (f *fakeBus) Publish(ctx context.Context, topic string, event eventbus.Event) error {
	f.topics = append(f.topics, topic)
	f.payload = append(f.payload, event)
	return nil
}

func (f *fakeBus) Subscribe(ctx context.Context, groupID string, topic eventbus.Topic, handler eventbus.EventHandler) error {
	return nil
}

func (f *fakeBus) StartRetryReinjector(ctx context.Context, groupID string, topic eventbus.Topic) error {
	return nil
}

func (f *fakeBus) Close() {}

func TestPublishStoryTextParsed(t *testing.T) {
	bus := &fakeBus{}
	d := NewEventDispatcher(bus)

	story := &models.Story{ID: primitive.NewObjectID(), HNID: 8863}
	err := d.PublishStoryTextParsed(context.Background(), story, 1200, "https://img.example/cover.png")
	assert.NoError(t, err)
	assert.Equal(t, []string{eventbus.TopicStoryEvents.Base()}, bus.topics)

	got, err := eventbus.DecodeJSON[events.StoryTextParsedEvent](bus.payload[0])
	assert.NoError(t, err)
	assert.Equal(t, events.StoryTextParsed, got.Type)
	assert.Equal(t, "processor", got.Source)
	assert.Equal(t, int64(8863), got.HNID)
	assert.Equal(t, story.ID, got.StoryID)
	assert.Equal(t, 1200, got.WordCount)
	assert.Equal(t, "https://img.example/cover.png", got.ThumbnailURL)
	assert.NotEmpty(t, got.ID)
}

func TestPublishStorySummarized(t *testing.T) {
	bus := &fakeBus{}
	d := NewEventDispatcher(bus)

	story := &models.Story{ID: primitive.NewObjectID(), HNID: 8863}
	summary := models.AISummary{
		Tags:         []string{"storage", "startups"},
		SummaryShort: "Dropbox pitch",
		ModelName:    "gemini-2.0-flash",
	}
	err := d.PublishStorySummarized(context.Background(), story, summary)
	assert.NoError(t, err)

	got, err := eventbus.DecodeJSON[events.StorySummarizedEvent](bus.payload[0])
	assert.NoError(t, err)
	assert.Equal(t, events.StorySummarized, got.Type)
	assert.Equal(t, "processor", got.Source)
	assert.Equal(t, []string{"storage", "startups"}, got.Tags)
	assert.Equal(t, "Dropbox pitch", got.SummaryShort)
	assert.Equal(t, "gemini-2.0-flash", got.ModelName)
}
