// Package slog provides logging decorators for wordinfo services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordinfo"
)

// Ensure LoggingFetcher implements wordinfo.Fetcher.
var _ wordinfo.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs every page fetch. Failures are
// logged at Warn with their error code, so an unreachable site
// (unavailable) reads differently from a missing page (not_found).
type LoggingFetcher struct {
	next   wordinfo.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next wordinfo.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the page URL, body size and outcome of the wrapped fetch.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", wordinfo.ErrorCode(err), "err", err)
			f.logger.WarnContext(ctx, "fetch", attrs...)
			return
		}
		f.logger.InfoContext(ctx, "fetch", append(attrs, "bytes", len(html))...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
