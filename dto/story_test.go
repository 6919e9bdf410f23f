package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"hn-radar/dto"
	"hn-radar/hackernews"
)

func TestNewStorySummary(t *testing.T) {
	item := hackernews.Item{
		ID:          8863,
		Title:       "My YC app: Dropbox",
		URL:         "http://www.getdropbox.com/u/2/screencast.html",
		Score:       111,
		By:          "dhouston",
		Time:        1175714200,
		Descendants: 71,
	}

	s := dto.NewStorySummary(item)
	assert.Equal(t, int64(8863), s.ID)
	assert.Equal(t, "My YC app: Dropbox", s.Title)
	assert.Equal(t, 111, s.Score)
	assert.Equal(t, "dhouston", s.By)
	assert.Equal(t, 71, s.CommentCount)
	assert.NotNil(t, s.SubmittedAt)
}

func TestStorySummary_OptionalFieldsOmitted(t *testing.T) {
	s := dto.NewStorySummary(hackernews.Item{ID: 1, Title: "bare"})

	data, err := json.Marshal(s)
	assert.NoError(t, err)

	var m map[string]any
	assert.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, "id")
	assert.Contains(t, m, "title")
	assert.NotContains(t, m, "url")
	assert.NotContains(t, m, "score")
	assert.NotContains(t, m, "by")
	assert.NotContains(t, m, "submitted_at")
	assert.NotContains(t, m, "comment_count")
}

func TestNewStoryDetail_CarriesText(t *testing.T) {
	d := dto.NewStoryDetail(hackernews.Item{ID: 121003, Title: "Ask HN: The Arc Effect", Text: "<p>How will the Arc community effect HN?</p>"})
	assert.Equal(t, "<p>How will the Arc community effect HN?</p>", d.Text)
	assert.Equal(t, int64(121003), d.ID)
}

func TestNewStorySummaries_PreservesOrder(t *testing.T) {
	items := []hackernews.Item{{ID: 3}, {ID: 1}, {ID: 2}}
	out := dto.NewStorySummaries(items)
	assert.Equal(t, 3, len(out))
	assert.Equal(t, int64(3), out[0].ID)
	assert.Equal(t, int64(1), out[1].ID)
	assert.Equal(t, int64(2), out[2].ID)
}
