package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hn-radar/parser"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Why Dropbox Won</title>
  <meta property="og:image" content="https://example.com/cover.png"/>
</head>
<body>
  <article>
    <h1>Why Dropbox Won</h1>
    <p>Dropbox shipped a screencast before it shipped a product. The demo made
    file sync legible to people who had never heard of rsync, and the waiting
    list grew from five thousand to seventy-five thousand people overnight.</p>
    <p>The lesson for infrastructure startups is old but durable: distribution
    beats features, and a believable story beats both. Most of the companies
    that competed on feature checklists are gone; the one that compressed its
    pitch into a three minute video is not.</p>
    <p>None of this is a guarantee, of course. Plenty of well-told products
    die anyway. But a product nobody can explain has chosen its failure mode
    in advance, which is the one strategic decision founders control fully.</p>
  </article>
</body>
</html>`

func TestParseArticleOfHTML(t *testing.T) {
	article, err := parser.ParseArticleOfHTML(articleHTML)
	assert.NoError(t, err)
	assert.NotNil(t, article)
	assert.NotEmpty(t, article.PlainTextContent)
	assert.True(t, strings.Contains(article.PlainTextContent, "screencast"))
}

func TestParseArticleOfHTML_EmptyInput(t *testing.T) {
	_, err := parser.ParseArticleOfHTML("")
	assert.Error(t, err)
}

func TestParseTopImageFromHTML_MetaFallback(t *testing.T) {
	page := `<html><head><meta property="og:image" content="/img/cover.png"/></head><body><p>x</p></body></html>`

	img, err := parser.ParseTopImageFromHTML(page, "https://example.com/posts/1")
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/img/cover.png", img)
}

func TestParseTopImageFromHTML_TwitterCard(t *testing.T) {
	page := `<html><head><meta name="twitter:image" content="https://cdn.example.com/t.jpg"/></head><body></body></html>`

	img, err := parser.ParseTopImageFromHTML(page, "")
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/t.jpg", img)
}

func TestParseTopImageFromHTML_NoImage(t *testing.T) {
	img, err := parser.ParseTopImageFromHTML("<html><body><p>plain</p></body></html>", "")
	assert.NoError(t, err)
	assert.Equal(t, "", img)
}
