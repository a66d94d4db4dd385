package wordinfo

import "context"

// LookupService answers lexical questions about a single word.
// Every operation validates the word before doing any I/O.
type LookupService interface {
	// Meanings returns the word's meanings grouped by part of speech.
	Meanings(ctx context.Context, word string) (Meanings, error)

	// Synonyms returns the word's synonyms in source order.
	Synonyms(ctx context.Context, word string) ([]string, error)

	// Antonyms returns the word's antonyms in source order.
	// Returns ENOTFOUND if the source lists none.
	Antonyms(ctx context.Context, word string) ([]string, error)

	// PartOfSpeech returns the word's part-of-speech label or labels.
	PartOfSpeech(ctx context.Context, word string) (PartOfSpeech, error)
}
