// Package preview turns the backend's HTML resume preview into forms a
// terminal client can use: extracted text for the preview pane, and an
// optional headless-browser render for a pixel-accurate image.
package preview

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text parses the preview HTML and returns its readable text with
// noise elements removed and whitespace normalized.
func Text(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse preview HTML: %w", err)
	}

	doc.Find("script, style, noscript, head").Remove()

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		// Fragments without a body wrapper parse into an empty body on
		// some inputs; fall back to the whole document text.
		text = doc.Text()
	}
	return cleanWhitespace(text), nil
}

// cleanWhitespace trims each line and drops blank ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
