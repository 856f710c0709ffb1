// Package browser implements the gatherer's driver interface on top of a
// Chrome session controlled through chromedp.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/discodex/bandcamp-discover/internal/gatherer"
	"github.com/discodex/bandcamp-discover/internal/locator"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Element texts are trimmed browser-side; sub-element lookups run in Go
// against the outerHTML snapshot instead (see element.go).
const textsScript = `Array.from(document.querySelectorAll(%q)).map((el) => el.innerText.trim())`

// Visibility mirrors the jQuery :visible check.
const itemsScript = `Array.from(document.querySelectorAll(%q)).map((el) => ({
	html: el.outerHTML,
	visible: !!(el.offsetWidth || el.offsetHeight || el.getClientRects().length),
}))`

// Session owns one browser for the lifetime of a run.
type Session struct {
	ctx         context.Context
	cancel      context.CancelFunc
	waitTimeout time.Duration
}

// New launches a browser and establishes the bounded wait policy for element
// visibility.
func New(headless bool, waitTimeout time.Duration) (*Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent(userAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	return &Session{
		ctx: browserCtx,
		cancel: func() {
			cancelBrowser()
			cancelAlloc()
		},
		waitTimeout: waitTimeout,
	}, nil
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	return s.run(ctx, 0, chromedp.Navigate(url))
}

func (s *Session) WaitVisible(ctx context.Context, role locator.Role) error {
	loc := locator.Lookup(role)
	return s.run(ctx, s.waitTimeout, chromedp.WaitVisible(loc.Query, queryOption(loc)))
}

func (s *Session) Texts(ctx context.Context, role locator.Role) ([]string, error) {
	loc := locator.Lookup(role)
	var texts []string
	err := s.run(ctx, s.waitTimeout, chromedp.Evaluate(fmt.Sprintf(textsScript, loc.Query), &texts))
	if err != nil {
		return nil, err
	}
	return texts, nil
}

func (s *Session) Items(ctx context.Context, role locator.Role) ([]gatherer.Item, error) {
	loc := locator.Lookup(role)
	var snapshots []snapshot
	err := s.run(ctx, s.waitTimeout, chromedp.Evaluate(fmt.Sprintf(itemsScript, loc.Query), &snapshots))
	if err != nil {
		return nil, err
	}

	items := make([]gatherer.Item, 0, len(snapshots))
	for _, snap := range snapshots {
		items = append(items, &element{snapshot: snap})
	}
	return items, nil
}

func (s *Session) Click(ctx context.Context, role locator.Role) error {
	loc := locator.Lookup(role)
	return s.run(ctx, s.waitTimeout, chromedp.Click(loc.Query, queryOption(loc)))
}

// Close terminates the browser.
func (s *Session) Close() error {
	s.cancel()
	return nil
}

// run executes actions on the session's browser context. A non-zero timeout
// bounds the whole action chain.
func (s *Session) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	runCtx := s.ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(s.ctx, timeout)
		defer cancel()
	}
	return chromedp.Run(runCtx, actions...)
}

func queryOption(loc locator.Locator) chromedp.QueryOption {
	if loc.Strategy == locator.ByXPath {
		return chromedp.BySearch
	}
	return chromedp.ByQuery
}
