// Package store persists extracted tracks to a CSV file, appending batches
// incrementally so a partial run still leaves its pages on disk.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/discodex/bandcamp-discover/internal/domain"
)

// CSV appends track batches to a single file. The header row is written only
// if the file did not exist when the store was opened.
type CSV struct {
	path        string
	needsHeader bool
}

func NewCSV(path string) (*CSV, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return &CSV{path: path}, nil
	case errors.Is(err, os.ErrNotExist):
		return &CSV{path: path, needsHeader: true}, nil
	default:
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
}

// Append writes the batch to the end of the file, in order. Each call is an
// independent append; an empty batch is a no-op beyond the potential header
// write.
func (s *CSV) Append(tracks []domain.Track) error {
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if s.needsHeader {
		if err := writer.Write(domain.FieldNames); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
		s.needsHeader = false
	}

	for _, track := range tracks {
		if err := writer.Write(track.Record()); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}
