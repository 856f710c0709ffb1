// Package gatherer orchestrates a single linear pass over the discover
// carousel: discover the page count, then for each page wait for the results
// block, extract the visible tracks and append them to the store before
// advancing to the next page.
package gatherer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	ansi "github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"github.com/discodex/bandcamp-discover/internal/locator"
)

const defaultTracksPerPage = 8

type Gatherer struct {
	driver        Driver
	store         Store
	siteURL       string
	tracksPerPage int
}

func New(driver Driver, store Store, siteURL string, tracksPerPage int) *Gatherer {
	if tracksPerPage <= 0 {
		tracksPerPage = defaultTracksPerPage
	}
	return &Gatherer{
		driver:        driver,
		store:         store,
		siteURL:       siteURL,
		tracksPerPage: tracksPerPage,
	}
}

// Run performs one full pass over the carousel. Item- and page-level problems
// are logged and skipped; navigation failures abort the run. The store
// retains whatever pages were appended before a failure.
func (g *Gatherer) Run(ctx context.Context) error {
	slog.Info("Starting discover session", "url", g.siteURL)

	if err := g.driver.Navigate(ctx, g.siteURL); err != nil {
		return fmt.Errorf("failed to load %s: %w", g.siteURL, err)
	}

	totalPages := g.totalPages(ctx)
	if totalPages == 0 {
		return nil
	}

	bar := progressbar.NewOptions(
		totalPages,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionFullWidth(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Gathering tracks...[reset]"),
	)

	cursor := NewCursor()
	for p := 0; p < totalPages; p++ {
		if err := g.processPage(ctx, p+1, cursor); err != nil {
			return err
		}
		_ = bar.Add(1)
	}

	return nil
}

// totalPages reads the second-to-last pagination indicator as the page count.
// Any failure is absorbed and reported as zero pages, which skips the run.
func (g *Gatherer) totalPages(ctx context.Context) int {
	texts, err := g.driver.Texts(ctx, locator.CarouselPage)
	if err != nil {
		slog.Error("Failed to retrieve total pages", "error", err)
		return 0
	}
	if len(texts) < 2 {
		slog.Error("Failed to retrieve total pages", "indicators", len(texts))
		return 0
	}

	total, err := strconv.Atoi(texts[len(texts)-2])
	if err != nil {
		slog.Error("Failed to retrieve total pages", "text", texts[len(texts)-2], "error", err)
		return 0
	}
	return total
}

func (g *Gatherer) processPage(ctx context.Context, pageNumber int, cursor *Cursor) error {
	if err := g.driver.WaitVisible(ctx, locator.ResultsBlock); err != nil {
		return fmt.Errorf("discover results not visible on page %d: %w", pageNumber, err)
	}

	items, err := g.driver.Items(ctx, locator.Item)
	if err != nil {
		return fmt.Errorf("failed to enumerate items on page %d: %w", pageNumber, err)
	}

	// The carousel keeps off-screen items from adjacent pages in the DOM;
	// visibility is the authoritative filter.
	visible := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Visible() {
			visible = append(visible, item)
		}
	}

	if len(visible) != g.tracksPerPage {
		slog.Warn("Unexpected track count, skipping page",
			"page", pageNumber,
			"expected", g.tracksPerPage,
			"found", len(visible))
	} else {
		tracks := collectTracks(visible, pageNumber, cursor)
		if err := g.store.Append(tracks); err != nil {
			return fmt.Errorf("failed to append tracks for page %d: %w", pageNumber, err)
		}
	}

	if err := g.driver.Click(ctx, locator.NextButton); err != nil {
		return fmt.Errorf("failed to advance past page %d: %w", pageNumber, err)
	}
	return nil
}

// Close releases the browser session.
func (g *Gatherer) Close() {
	if err := g.driver.Close(); err != nil {
		slog.Error("Failed to close browser", "error", err)
		return
	}
	slog.Info("Browser closed")
}
