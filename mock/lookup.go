package mock

import (
	"context"

	"github.com/fwojciec/wordinfo"
)

var _ wordinfo.LookupService = (*LookupService)(nil)

// LookupService is a mock implementation of wordinfo.LookupService.
type LookupService struct {
	MeaningsFn     func(ctx context.Context, word string) (wordinfo.Meanings, error)
	SynonymsFn     func(ctx context.Context, word string) ([]string, error)
	AntonymsFn     func(ctx context.Context, word string) ([]string, error)
	PartOfSpeechFn func(ctx context.Context, word string) (wordinfo.PartOfSpeech, error)
}

func (s *LookupService) Meanings(ctx context.Context, word string) (wordinfo.Meanings, error) {
	return s.MeaningsFn(ctx, word)
}

func (s *LookupService) Synonyms(ctx context.Context, word string) ([]string, error) {
	return s.SynonymsFn(ctx, word)
}

func (s *LookupService) Antonyms(ctx context.Context, word string) ([]string, error) {
	return s.AntonymsFn(ctx, word)
}

func (s *LookupService) PartOfSpeech(ctx context.Context, word string) (wordinfo.PartOfSpeech, error) {
	return s.PartOfSpeechFn(ctx, word)
}
