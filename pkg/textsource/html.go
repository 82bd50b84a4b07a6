package textsource

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// extractHTML reduces an HTML page to plain text. go-readability finds the
// main article content; when it cannot, a goquery tag strip of the whole
// document is used instead. Extraction never fails: worst case the raw
// markup is returned and the tokenizer discards the angle brackets anyway.
func extractHTML(rawURL, html string) string {
	parsedURL, err := url.Parse(rawURL)
	if err == nil {
		parser := readability.NewParser()
		article, rErr := parser.Parse(strings.NewReader(html), parsedURL)
		if rErr == nil && strings.TrimSpace(article.TextContent) != "" {
			return article.TextContent
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	doc.Find("script,style,noscript").Remove()
	return doc.Text()
}
