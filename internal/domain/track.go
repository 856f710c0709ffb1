package domain

import "strconv"

// Track represents an individual entry scraped from the discover carousel.
type Track struct {
	SequenceID int
	PageNumber int
	Title      string
	Artist     string
	Genre      string
}

// FieldNames is the canonical column order of the track store.
var FieldNames = []string{"sequence_id", "page_number", "title", "artist", "genre"}

// Record returns the track's fields in canonical column order.
func (t Track) Record() []string {
	return []string{
		strconv.Itoa(t.SequenceID),
		strconv.Itoa(t.PageNumber),
		t.Title,
		t.Artist,
		t.Genre,
	}
}
