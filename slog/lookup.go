package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordinfo"
)

// Ensure LoggingLookupService implements wordinfo.LookupService.
var _ wordinfo.LookupService = (*LoggingLookupService)(nil)

// LoggingLookupService wraps a LookupService and logs every call with its
// error code, so callers can tell a missing word from an unreachable source.
type LoggingLookupService struct {
	next   wordinfo.LookupService
	logger *slog.Logger
}

// NewLoggingLookupService creates a new LoggingLookupService.
func NewLoggingLookupService(next wordinfo.LookupService, logger *slog.Logger) *LoggingLookupService {
	return &LoggingLookupService{next: next, logger: logger}
}

// Meanings logs the number of parts of speech found and delegates to the wrapped service.
func (s *LoggingLookupService) Meanings(ctx context.Context, word string) (m wordinfo.Meanings, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "meanings", word, m.Len(), begin, err)
	}(time.Now())
	return s.next.Meanings(ctx, word)
}

// Synonyms logs the number of synonyms found and delegates to the wrapped service.
func (s *LoggingLookupService) Synonyms(ctx context.Context, word string) (words []string, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "synonyms", word, len(words), begin, err)
	}(time.Now())
	return s.next.Synonyms(ctx, word)
}

// Antonyms logs the number of antonyms found and delegates to the wrapped service.
func (s *LoggingLookupService) Antonyms(ctx context.Context, word string) (words []string, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "antonyms", word, len(words), begin, err)
	}(time.Now())
	return s.next.Antonyms(ctx, word)
}

// PartOfSpeech logs the number of labels found and delegates to the wrapped service.
func (s *LoggingLookupService) PartOfSpeech(ctx context.Context, word string) (pos wordinfo.PartOfSpeech, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "part of speech", word, len(pos.Labels()), begin, err)
	}(time.Now())
	return s.next.PartOfSpeech(ctx, word)
}

func (s *LoggingLookupService) log(ctx context.Context, op, word string, results int, begin time.Time, err error) {
	attrs := []any{
		"op", op,
		"word", word,
		"results", results,
		"duration", time.Since(begin),
	}
	if err != nil {
		attrs = append(attrs, "code", wordinfo.ErrorCode(err), "err", err)
		s.logger.WarnContext(ctx, "lookup", attrs...)
		return
	}
	s.logger.InfoContext(ctx, "lookup", attrs...)
}
