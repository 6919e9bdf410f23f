package feeder_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"hn-radar/feeder"
)

const frontPageRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel>
    <title>Hacker News: Front Page</title>
    <link>https://news.ycombinator.com/</link>
    <item>
      <title>My YC app: Dropbox - Throw away your USB drive</title>
      <link>http://www.getdropbox.com/u/2/screencast.html</link>
      <guid isPermaLink="false">https://news.ycombinator.com/item?id=8863</guid>
      <pubDate>Thu, 05 Apr 2007 16:16:40 +0000</pubDate>
      <dc:creator>dhouston</dc:creator>
    </item>
    <item>
      <title>Ask HN: The Arc Effect</title>
      <link>https://news.ycombinator.com/item?id=121003</link>
      <guid isPermaLink="false">https://news.ycombinator.com/item?id=121003</guid>
      <pubDate>Tue, 26 Feb 2008 01:33:40 +0000</pubDate>
    </item>
    <item>
      <title>broken guid</title>
      <link>https://example.com/article</link>
      <guid isPermaLink="false">https://example.com/article</guid>
    </item>
  </channel>
</rss>`

func TestFetchFrontPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, frontPageRSS)
	}))
	defer srv.Close()

	items, err := feeder.FetchFrontPage(srv.URL, 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(items))

	assert.Equal(t, int64(8863), items[0].StoryID)
	assert.Equal(t, "My YC app: Dropbox - Throw away your USB drive", items[0].Title)
	assert.Equal(t, "http://www.getdropbox.com/u/2/screencast.html", items[0].Link)
	assert.Equal(t, "dhouston", items[0].Author)
	assert.Equal(t, 2007, items[0].PublishedAt.Year())

	assert.Equal(t, int64(121003), items[1].StoryID)

	// entry without an item?id= guid yields StoryID 0
	assert.Equal(t, int64(0), items[2].StoryID)
}

func TestFetchFrontPage_Limit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, frontPageRSS)
	}))
	defer srv.Close()

	items, err := feeder.FetchFrontPage(srv.URL, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(items))
}

func TestFetchFrontPage_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := feeder.FetchFrontPage(srv.URL, 10)
	assert.Error(t, err)
}
