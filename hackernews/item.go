package hackernews

import "time"

// Item is one Hacker News item as returned by /v0/item/{id}.json.
// Everything except ID and Title may be absent upstream; absent numeric
// fields decode to their zero value.
type Item struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	By          string `json:"by"`
	Time        int64  `json:"time"`
	Text        string `json:"text"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Kids        []int64 `json:"kids"`
	Parent      int64  `json:"parent"`
	Dead        bool   `json:"dead"`
	Deleted     bool   `json:"deleted"`
}

// SubmittedAt converts the Unix submission time, zero when absent.
func (i Item) SubmittedAt() time.Time {
	if i.Time == 0 {
		return time.Time{}
	}
	return time.Unix(i.Time, 0).UTC()
}
