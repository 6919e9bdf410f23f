package parser

import (
	"fmt"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// ParsedArticle is the extraction result of one linked article page.
type ParsedArticle struct {
	PlainTextContent string
	TopImage         string
}

// ParseArticleOfHTML extracts readable text from raw article HTML.
// Readability runs first; trafilatura and goose are fallbacks for pages
// readability cannot handle.
func ParseArticleOfHTML(htmlStr string) (*ParsedArticle, error) {
	if article, err := ParseHtmlWithReadability(htmlStr); err == nil && article.PlainTextContent != "" {
		return article, nil
	}
	if article, err := ParseHtmlWithTrafilatura(htmlStr); err == nil && article.PlainTextContent != "" {
		return article, nil
	}
	if article, err := ParseHtmlWithGoose(htmlStr); err == nil && article.PlainTextContent != "" {
		return article, nil
	}
	return nil, fmt.Errorf("no parser could extract article text")
}

func ParseHtmlWithReadability(htmlStr string) (*ParsedArticle, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		PlainTextContent: article.TextContent,
		TopImage:         article.Image,
	}, nil
}

func ParseHtmlWithTrafilatura(htmlStr string) (*ParsedArticle, error) {
	opts := trafilatura.Options{
		IncludeImages: true,
	}

	article, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return nil, err
	}

	return &ParsedArticle{
		PlainTextContent: article.ContentText,
		TopImage:         article.Metadata.Image,
	}, nil
}

func ParseHtmlWithGoose(htmlStr string) (*ParsedArticle, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		PlainTextContent: article.CleanedText,
		TopImage:         article.TopImage,
	}, nil
}
