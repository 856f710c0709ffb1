package gatherer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discodex/bandcamp-discover/internal/locator"
)

type fakeItem struct {
	visible bool
	fields  map[locator.Role]string
}

func (f *fakeItem) Visible() bool {
	return f.visible
}

func (f *fakeItem) Text(role locator.Role) (string, error) {
	value, ok := f.fields[role]
	if !ok {
		return "", errors.New("no such element")
	}
	return value, nil
}

func wellFormedItem(title, artist, genre string) *fakeItem {
	return &fakeItem{
		visible: true,
		fields: map[locator.Role]string{
			locator.ItemTitle:  title,
			locator.ItemArtist: artist,
			locator.ItemGenre:  genre,
		},
	}
}

func TestCollectTracks(t *testing.T) {
	items := []Item{
		wellFormedItem("Glow", "Aurora Drift", "ambient"),
		wellFormedItem("Undertow", "Kelp Choir", "folk"),
	}

	cursor := NewCursor()
	tracks := collectTracks(items, 3, cursor)

	require.Len(t, tracks, 2)
	assert.Equal(t, 1, tracks[0].SequenceID)
	assert.Equal(t, "Glow", tracks[0].Title)
	assert.Equal(t, "Aurora Drift", tracks[0].Artist)
	assert.Equal(t, "ambient", tracks[0].Genre)
	assert.Equal(t, 3, tracks[0].PageNumber)
	assert.Equal(t, 2, tracks[1].SequenceID)
	assert.Equal(t, "Undertow", tracks[1].Title)
}

func TestCollectTracksSkipsUnreadableItem(t *testing.T) {
	broken := &fakeItem{
		visible: true,
		fields: map[locator.Role]string{
			locator.ItemTitle: "Orphan",
			// artist and genre sub-elements are missing
		},
	}
	items := []Item{
		wellFormedItem("Glow", "Aurora Drift", "ambient"),
		broken,
		wellFormedItem("Undertow", "Kelp Choir", "folk"),
	}

	cursor := NewCursor()
	tracks := collectTracks(items, 1, cursor)

	// The broken item is skipped without consuming a sequence id; siblings
	// are still processed in order.
	require.Len(t, tracks, 2)
	assert.Equal(t, 1, tracks[0].SequenceID)
	assert.Equal(t, "Glow", tracks[0].Title)
	assert.Equal(t, 2, tracks[1].SequenceID)
	assert.Equal(t, "Undertow", tracks[1].Title)
}

func TestCollectTracksEmptyInput(t *testing.T) {
	cursor := NewCursor()
	tracks := collectTracks(nil, 1, cursor)

	assert.Empty(t, tracks)
	assert.Equal(t, 1, cursor.Next())
}

func TestCursorSequence(t *testing.T) {
	cursor := NewCursor()
	for want := 1; want <= 5; want++ {
		assert.Equal(t, want, cursor.Next())
	}
}
