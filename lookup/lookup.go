// Package lookup resolves word lookups against live dictionary and
// thesaurus pages, falling back to an offline dataset when the live source
// cannot be reached.
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"slices"

	"github.com/fwojciec/wordinfo"
)

// Default page URL templates. The word replaces the single %s.
const (
	DefaultDictionaryURL = "https://www.dictionary.com/browse/%s"
	DefaultThesaurusURL  = "https://www.thesaurus.com/browse/%s"
)

// Ensure Service implements wordinfo.LookupService at compile time.
var _ wordinfo.LookupService = (*Service)(nil)

// Service implements wordinfo.LookupService.
//
// Only a live source that cannot be reached (EUNAVAILABLE) sends meaning and
// part-of-speech lookups to the Dataset. Synonym lookups also fall back when
// the thesaurus has no synonyms for the word. Antonym lookups never fall
// back: the dataset carries no antonyms.
type Service struct {
	Fetcher   wordinfo.Fetcher
	Extractor wordinfo.Extractor

	// Dataset serves offline fallbacks. A nil Dataset disables them.
	Dataset wordinfo.Dataset

	// DictionaryURL and ThesaurusURL override the page URL templates.
	DictionaryURL string
	ThesaurusURL  string

	// Logger receives fallback events. Nil discards them.
	Logger *slog.Logger
}

// Meanings returns the word's meanings grouped by part of speech.
func (s *Service) Meanings(ctx context.Context, word string) (wordinfo.Meanings, error) {
	if err := wordinfo.ValidateWord(word); err != nil {
		return wordinfo.Meanings{}, err
	}

	defs, err := s.definitions(ctx, word)
	if err == nil {
		return defs.Meanings(), nil
	}
	if !s.canFallback(err, wordinfo.EUNAVAILABLE) {
		return wordinfo.Meanings{}, err
	}

	entry, err := s.offline(ctx, "meanings", word, err)
	if err != nil {
		return wordinfo.Meanings{}, err
	}
	return entry.Meanings(), nil
}

// Synonyms returns the word's synonyms in source order.
func (s *Service) Synonyms(ctx context.Context, word string) ([]string, error) {
	if err := wordinfo.ValidateWord(word); err != nil {
		return nil, err
	}

	html, err := s.fetch(ctx, s.thesaurusURL(word))
	if err == nil {
		var synonyms []string
		if synonyms, err = s.Extractor.ExtractSynonyms(html); err == nil {
			return synonyms, nil
		}
	}

	// A thesaurus with no synonyms for the word is treated like an
	// unreachable one.
	if !s.canFallback(err, wordinfo.EUNAVAILABLE, wordinfo.ENOTFOUND) {
		return nil, err
	}

	entry, err := s.offline(ctx, "synonyms", word, err)
	if err != nil {
		return nil, err
	}
	return entry.Synonyms(), nil
}

// Antonyms returns the word's antonyms in source order.
func (s *Service) Antonyms(ctx context.Context, word string) ([]string, error) {
	if err := wordinfo.ValidateWord(word); err != nil {
		return nil, err
	}

	html, err := s.fetch(ctx, s.thesaurusURL(word))
	if err != nil {
		return nil, err
	}
	return s.Extractor.ExtractAntonyms(html)
}

// PartOfSpeech returns the word's part-of-speech label or labels.
func (s *Service) PartOfSpeech(ctx context.Context, word string) (wordinfo.PartOfSpeech, error) {
	if err := wordinfo.ValidateWord(word); err != nil {
		return wordinfo.PartOfSpeech{}, err
	}

	defs, err := s.definitions(ctx, word)
	if err == nil {
		return defs.PartOfSpeech(), nil
	}
	if !s.canFallback(err, wordinfo.EUNAVAILABLE) {
		return wordinfo.PartOfSpeech{}, err
	}

	entry, err := s.offline(ctx, "part of speech", word, err)
	if err != nil {
		return wordinfo.PartOfSpeech{}, err
	}
	return entry.PartOfSpeech(), nil
}

func (s *Service) definitions(ctx context.Context, word string) (*wordinfo.Definitions, error) {
	html, err := s.fetch(ctx, s.dictionaryURL(word))
	if err != nil {
		return nil, err
	}
	return s.Extractor.ExtractDefinitions(html)
}

func (s *Service) fetch(ctx context.Context, pageURL string) (string, error) {
	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	return html, nil
}

// canFallback reports whether an offline dataset is configured and err
// carries one of the given codes.
func (s *Service) canFallback(err error, codes ...string) bool {
	if s.Dataset == nil {
		return false
	}
	return slices.Contains(codes, wordinfo.ErrorCode(err))
}

func (s *Service) offline(ctx context.Context, op, word string, cause error) (*wordinfo.Entry, error) {
	s.logger().InfoContext(ctx, "offline fallback",
		"op", op,
		"word", word,
		"reason", wordinfo.ErrorMessage(cause),
	)
	return s.Dataset.FindEntry(ctx, word)
}

func (s *Service) dictionaryURL(word string) string {
	return pageURL(s.DictionaryURL, DefaultDictionaryURL, word)
}

func (s *Service) thesaurusURL(word string) string {
	return pageURL(s.ThesaurusURL, DefaultThesaurusURL, word)
}

func pageURL(template, fallback, word string) string {
	if template == "" {
		template = fallback
	}
	return fmt.Sprintf(template, url.PathEscape(word))
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
