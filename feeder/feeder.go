package feeder

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mmcdole/gofeed"
)

// FrontPageItem is one entry of the hnrss.org front-page feed.
type FrontPageItem struct {
	StoryID     int64
	Title       string
	Link        string
	CommentsURL string
	Author      string
	PublishedAt time.Time
}

const FEEDER_TIMEOUT = 30 * time.Second

// FetchFrontPage reads the hnrss front-page feed and returns up to limit
// items. The story ID is recovered from the comments link (the guid points
// at news.ycombinator.com/item?id=N).
func FetchFrontPage(feedURL string, limit int) ([]FrontPageItem, error) {
	httpClient := &http.Client{Timeout: FEEDER_TIMEOUT}

	fp := gofeed.NewParser()
	fp.Client = httpClient

	feed, err := fp.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse front page feed: %w", err)
	}

	var items []FrontPageItem
	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		commentsURL := item.GUID
		if commentsURL == "" {
			commentsURL = item.Link
		}

		fp := FrontPageItem{
			StoryID:     storyIDFromURL(commentsURL),
			Title:       item.Title,
			Link:        item.Link,
			CommentsURL: commentsURL,
			PublishedAt: published,
		}
		if item.Author != nil {
			fp.Author = item.Author.Name
		}

		items = append(items, fp)
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

// storyIDFromURL extracts N from news.ycombinator.com/item?id=N, 0 when the
// URL carries no usable id.
func storyIDFromURL(raw string) int64 {
	u, err := url.Parse(raw)
	if err != nil {
		return 0
	}
	idStr := u.Query().Get("id")
	if idStr == "" {
		return 0
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
