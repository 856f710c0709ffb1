package gatherer

import (
	"log/slog"

	"github.com/discodex/bandcamp-discover/internal/domain"
	"github.com/discodex/bandcamp-discover/internal/locator"
)

// collectTracks extracts one track per readable item, preserving input order.
// An item with a missing or unreadable sub-element is skipped entirely and
// does not consume a sequence id; its siblings are still processed.
func collectTracks(items []Item, pageNumber int, cursor *Cursor) []domain.Track {
	tracks := make([]domain.Track, 0, len(items))

	for _, item := range items {
		title, err := item.Text(locator.ItemTitle)
		if err != nil {
			slog.Error("Failed to process track", "page", pageNumber, "error", err)
			continue
		}

		artist, err := item.Text(locator.ItemArtist)
		if err != nil {
			slog.Error("Failed to process track", "page", pageNumber, "error", err)
			continue
		}

		genre, err := item.Text(locator.ItemGenre)
		if err != nil {
			slog.Error("Failed to process track", "page", pageNumber, "error", err)
			continue
		}

		tracks = append(tracks, domain.Track{
			SequenceID: cursor.Next(),
			PageNumber: pageNumber,
			Title:      title,
			Artist:     artist,
			Genre:      genre,
		})
		slog.Info("Track collected", "title", title, "page", pageNumber)
	}

	return tracks
}
