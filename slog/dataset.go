package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordinfo"
)

// Ensure LoggingDataset implements wordinfo.Dataset.
var _ wordinfo.Dataset = (*LoggingDataset)(nil)

// LoggingDataset wraps a Dataset with debug logging.
type LoggingDataset struct {
	next   wordinfo.Dataset
	logger *slog.Logger
}

// NewLoggingDataset creates a new LoggingDataset.
func NewLoggingDataset(next wordinfo.Dataset, logger *slog.Logger) *LoggingDataset {
	return &LoggingDataset{next: next, logger: logger}
}

// FindEntry logs the lookup and the number of senses found.
func (d *LoggingDataset) FindEntry(ctx context.Context, word string) (entry *wordinfo.Entry, err error) {
	defer func(begin time.Time) {
		senses := 0
		if entry != nil {
			senses = len(entry.Senses)
		}
		d.logger.InfoContext(ctx, "find entry",
			"word", word,
			"senses", senses,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.FindEntry(ctx, word)
}
