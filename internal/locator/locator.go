// Package locator maps the semantic roles of discover-page elements to the
// queries that resolve them in the browser.
package locator

// Role identifies a semantic element of the discover section.
type Role string

const (
	CarouselPage Role = "carousel-page"
	ResultsBlock Role = "results-block"
	Item         Role = "item"
	ItemTitle    Role = "item-title"
	ItemArtist   Role = "item-artist"
	ItemGenre    Role = "item-genre"
	NextButton   Role = "next-button"
)

// Strategy selects how a locator's query is resolved.
type Strategy int

const (
	ByCSS Strategy = iota
	ByXPath
)

// Locator pairs a query string with its resolution strategy.
type Locator struct {
	Query    string
	Strategy Strategy
}

var registry = map[Role]Locator{
	CarouselPage: {Query: ".item-page"},
	ResultsBlock: {Query: ".discover-results"},
	Item:         {Query: ".discover-item"},
	ItemTitle:    {Query: ".item-title"},
	ItemArtist:   {Query: ".item-artist"},
	ItemGenre:    {Query: ".item-genre"},
	NextButton:   {Query: `//a[contains(@class, 'item-page') and text()='next']`, Strategy: ByXPath},
}

// Lookup returns the locator registered for role. An unregistered role yields
// the zero Locator, which surfaces as a lookup failure in the browser.
func Lookup(role Role) Locator {
	return registry[role]
}
