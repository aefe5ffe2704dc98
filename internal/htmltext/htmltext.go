// Package htmltext turns provider HTML snippets into plain text.
package htmltext

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ToText parses content as an HTML fragment and returns its text with runs
// of whitespace collapsed to single spaces. Entities are decoded by the
// parser, so "&lt;b&gt;" in the input comes back as a literal "<b>".
func ToText(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}
