package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	docset "github.com/cypheon/ocaml-docset"
)

// Ensure LoggingPageIndexer implements docset.PageIndexer.
var _ docset.PageIndexer = (*LoggingPageIndexer)(nil)

// LoggingPageIndexer wraps a PageIndexer with per-page logging.
type LoggingPageIndexer struct {
	next   docset.PageIndexer
	logger *slog.Logger
}

// NewLoggingPageIndexer creates a new LoggingPageIndexer.
func NewLoggingPageIndexer(next docset.PageIndexer, logger *slog.Logger) *LoggingPageIndexer {
	return &LoggingPageIndexer{next: next, logger: logger}
}

// IndexPage delegates to the wrapped indexer and logs the outcome.
// Structural warnings are logged at warn level.
func (p *LoggingPageIndexer) IndexPage(ctx context.Context, path string, r io.Reader) (result *docset.PageResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			p.logger.Error("index page",
				"path", path,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		if result.Warning != "" {
			p.logger.Warn("page skipped",
				"path", path,
				"reason", result.Warning,
			)
			return
		}
		p.logger.Debug("index page",
			"path", path,
			"kind", result.Classification.Kind,
			"subject", result.Classification.Subject,
			"entries", len(result.Entries),
			"mutated", result.Mutated,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.IndexPage(ctx, path, r)
}
