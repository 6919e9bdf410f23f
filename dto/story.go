package dto

import (
	"time"

	"hn-radar/hackernews"
	"hn-radar/models"
)

// StorySummary is the list-view shape of a live story. Only ID and Title
// are guaranteed upstream; the rest is omitted when absent.
type StorySummary struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	URL          string     `json:"url,omitempty"`
	Score        int        `json:"score,omitempty"`
	By           string     `json:"by,omitempty"`
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
	CommentCount int        `json:"comment_count,omitempty"`
}

// StoryDetail extends StorySummary with the free-text body of text posts.
type StoryDetail struct {
	StorySummary
	Text string `json:"text,omitempty"`
}

// NewStorySummary flattens a Hacker News item for list display.
func NewStorySummary(item hackernews.Item) StorySummary {
	s := StorySummary{
		ID:           item.ID,
		Title:        item.Title,
		URL:          item.URL,
		Score:        item.Score,
		By:           item.By,
		CommentCount: item.Descendants,
	}
	if t := item.SubmittedAt(); !t.IsZero() {
		s.SubmittedAt = &t
	}
	return s
}

// NewStoryDetail flattens a Hacker News item including its body text.
func NewStoryDetail(item hackernews.Item) StoryDetail {
	return StoryDetail{
		StorySummary: NewStorySummary(item),
		Text:         item.Text,
	}
}

// NewStorySummaries maps a batch, preserving order.
func NewStorySummaries(items []hackernews.Item) []StorySummary {
	out := make([]StorySummary, 0, len(items))
	for _, item := range items {
		out = append(out, NewStorySummary(item))
	}
	return out
}

// ArchivedStory is the API shape of an archived story document.
// IDs are hex strings to keep transport simple; processing flags stay
// internal.
type ArchivedStory struct {
	ID           string    `json:"id"`
	HNID         int64     `json:"hn_id"`
	Title        string    `json:"title"`
	URL          string    `json:"url,omitempty"`
	By           string    `json:"by,omitempty"`
	Score        int       `json:"score"`
	CommentCount int       `json:"comment_count"`
	SubmittedAt  time.Time `json:"submitted_at"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	SummaryShort string    `json:"summary_short,omitempty"`
	SummaryLong  string    `json:"summary_long,omitempty"`
	PlainText    string    `json:"plain_text,omitempty"`
}

// NewArchivedStory constructs ArchivedStory from models.Story.
func NewArchivedStory(s models.Story) ArchivedStory {
	return ArchivedStory{
		ID:           s.ID.Hex(),
		HNID:         s.HNID,
		Title:        s.Title,
		URL:          s.URL,
		By:           s.By,
		Score:        s.Score,
		CommentCount: s.CommentCount,
		SubmittedAt:  s.SubmittedAt,
		ThumbnailURL: s.ThumbnailURL,
		Tags:         s.AISummary.Tags,
		SummaryShort: s.AISummary.SummaryShort,
		SummaryLong:  s.AISummary.SummaryLong,
	}
}
