package gatherer

import (
	"context"

	"github.com/discodex/bandcamp-discover/internal/domain"
	"github.com/discodex/bandcamp-discover/internal/locator"
)

// Driver is the browser capability the gatherer runs against.
type Driver interface {
	// Navigate loads the given URL in the browser.
	Navigate(ctx context.Context, url string) error

	// WaitVisible blocks until an element for role becomes visible, bounded
	// by the session's wait timeout.
	WaitVisible(ctx context.Context, role locator.Role) error

	// Texts returns the trimmed text of every element matching role, in
	// document order.
	Texts(ctx context.Context, role locator.Role) ([]string, error)

	// Items returns a handle for every element matching role, in document
	// order, with visibility captured at snapshot time.
	Items(ctx context.Context, role locator.Role) ([]Item, error)

	// Click locates the element for role and clicks it.
	Click(ctx context.Context, role locator.Role) error

	// Close terminates the browser session.
	Close() error
}

// Item is a snapshot of one carousel entry.
type Item interface {
	// Visible reports whether the element was displayed when the snapshot
	// was taken.
	Visible() bool

	// Text resolves the sub-element for role within the item and returns
	// its trimmed text.
	Text(role locator.Role) (string, error)
}

// Store persists batches of extracted tracks.
type Store interface {
	Append(tracks []domain.Track) error
}
