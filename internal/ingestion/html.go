package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const blockElements = "p, div, section, article, header, footer, main, aside, table, tr, ul, ol, " +
	"h1, h2, h3, h4, h5, h6, dt, dd, blockquote, pre"

// noiseSelectors are never part of the document text.
const noiseSelectors = "script, style, noscript, nav, template, .cookie-banner, .popup"

// HTMLToText returns the visible text of an HTML document, one block element per line.
// List items become "• " bullets; CleanText later rewrites them to "* ", which the bullet
// metrics still recognise.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	return selectionText(doc.Selection), nil
}

// selectionText extracts line-structured text from a parsed document.
func selectionText(doc *goquery.Selection) string {
	doc.Find(noiseSelectors).Remove()

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("\n• ")
		s.AppendHtml("\n")
	})
	doc.Find(blockElements).Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("\n")
		s.AppendHtml("\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc
	}
	return cleanWhitespace(body.Text())
}

// cleanWhitespace trims every line, drops blank ones and collapses runs of spaces.
func cleanWhitespace(text string) string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
