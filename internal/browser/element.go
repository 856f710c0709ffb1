package browser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/discodex/bandcamp-discover/internal/locator"
)

// snapshot is the state of one item element as captured by a single
// in-browser evaluation.
type snapshot struct {
	HTML    string `json:"html"`
	Visible bool   `json:"visible"`
}

// element resolves sub-element lookups against the item's captured HTML, so
// a missing field surfaces as an ordinary error instead of a browser wait.
type element struct {
	snapshot snapshot
}

func (e *element) Visible() bool {
	return e.snapshot.Visible
}

func (e *element) Text(role locator.Role) (string, error) {
	loc := locator.Lookup(role)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(e.snapshot.HTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse item markup: %w", err)
	}

	selection := doc.Find(loc.Query)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no element matches %q", loc.Query)
	}

	return strings.TrimSpace(selection.First().Text()), nil
}
