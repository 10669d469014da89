package slog

import (
	"context"
	"log/slog"
	"time"

	docset "github.com/cypheon/ocaml-docset"
)

// Ensure LoggingEntryService implements docset.EntryService.
var _ docset.EntryService = (*LoggingEntryService)(nil)

// LoggingEntryService wraps an EntryService with debug logging.
type LoggingEntryService struct {
	next   docset.EntryService
	logger *slog.Logger
}

// NewLoggingEntryService creates a new LoggingEntryService.
func NewLoggingEntryService(next docset.EntryService, logger *slog.Logger) *LoggingEntryService {
	return &LoggingEntryService{next: next, logger: logger}
}

// InsertEntry delegates to the wrapped service. Only failures are logged;
// a build inserts too many entries to log each one.
func (s *LoggingEntryService) InsertEntry(ctx context.Context, entry *docset.Entry) error {
	err := s.next.InsertEntry(ctx, entry)
	if err != nil {
		s.logger.Error("insert entry",
			"name", entry.Name,
			"kind", entry.Kind,
			"path", entry.Path,
			"err", err,
		)
	}
	return err
}

// FindEntries delegates to the wrapped service and logs the query.
func (s *LoggingEntryService) FindEntries(ctx context.Context, filter docset.EntryFilter) (entries []*docset.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find entries",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntries(ctx, filter)
}

// Checksum delegates to the wrapped service and logs the digest.
func (s *LoggingEntryService) Checksum(ctx context.Context) (sum string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("index checksum",
			"checksum", sum,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Checksum(ctx)
}
