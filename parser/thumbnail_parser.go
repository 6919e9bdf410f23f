package parser

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// ParseTopImageFromHTML resolves a representative image for an article
// page. Priority: readability's pick, then Open Graph / Twitter card meta.
func ParseTopImageFromHTML(htmlStr string, pageURL string) (string, error) {
	var baseURL *url.URL
	if pageURL != "" {
		if u, err := url.Parse(pageURL); err == nil {
			baseURL = u
		}
	}

	if article, err := ParseHtmlWithReadability(htmlStr); err == nil && article.TopImage != "" {
		return resolveImageURL(article.TopImage, baseURL), nil
	}

	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}

	if imgURL := findTopImageFromMeta(doc); imgURL != "" {
		return resolveImageURL(imgURL, baseURL), nil
	}

	return "", nil
}

func findTopImageFromMeta(doc *html.Node) string {
	// og image first, twitter card second
	if url := findMetaContent(doc, "property", []string{
		"og:image",
		"og:image:url",
		"og:image:secure_url",
	}); url != "" {
		return url
	}
	return findMetaContent(doc, "name", []string{
		"twitter:image",
		"twitter:image:src",
	})
}

func findMetaContent(doc *html.Node, attrKey string, attrValues []string) string {
	wanted := map[string]bool{}
	for _, v := range attrValues {
		wanted[v] = true
	}

	var found string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "meta" {
			var key, content string
			for _, attr := range n.Attr {
				switch attr.Key {
				case attrKey:
					key = attr.Val
				case "content":
					content = attr.Val
				}
			}
			if wanted[key] && content != "" {
				found = content
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

func resolveImageURL(imgURL string, baseURL *url.URL) string {
	if baseURL == nil {
		return imgURL
	}
	u, err := url.Parse(imgURL)
	if err != nil {
		return imgURL
	}
	return baseURL.ResolveReference(u).String()
}
