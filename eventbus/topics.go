package eventbus

// Topic declarations live in one place so they can later move to config.

var (
	TopicStoryEvents = NewTopic("hn-radar.story.events")
)

var AllTopics = []Topic{
	TopicStoryEvents,
}
