package wordinfo

import (
	"context"
	"strings"
)

// Entry is an offline dataset record for one word.
type Entry struct {
	Word      string  `json:"word"`
	WordsetID string  `json:"wordset_id,omitempty"`
	Senses    []Sense `json:"meanings"`
}

// Sense is one dataset sense of a word.
type Sense struct {
	ID           string   `json:"id,omitempty"`
	PartOfSpeech string   `json:"speech_part"`
	Definition   string   `json:"def"`
	Example      string   `json:"example,omitempty"`
	Synonyms     []string `json:"synonyms,omitempty"`
}

// Meanings groups the entry's senses by uppercased part of speech, keeping
// sense order within each group. Dataset examples are never surfaced: every
// meaning has a nil example.
func (e *Entry) Meanings() Meanings {
	var m Meanings
	for _, s := range e.Senses {
		m.add(strings.ToUpper(s.PartOfSpeech), Meaning{Text: s.Definition})
	}
	return m
}

// Synonyms returns the synonyms of every sense concatenated in sense order.
// The result is empty, not nil, when no sense lists synonyms.
func (e *Entry) Synonyms() []string {
	synonyms := []string{}
	for _, s := range e.Senses {
		synonyms = append(synonyms, s.Synonyms...)
	}
	return synonyms
}

// PartOfSpeech returns the distinct uppercased parts of speech of the
// entry's senses in first-seen order.
func (e *Entry) PartOfSpeech() PartOfSpeech {
	seen := make(map[string]bool)
	var labels []string
	for _, s := range e.Senses {
		label := strings.ToUpper(s.PartOfSpeech)
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return MultiplePartsOfSpeech(labels)
}

// Dataset is a read-only store of offline entries keyed by word.
type Dataset interface {
	// FindEntry returns the entry for word.
	// Returns ENOTFOUND if the word's partition or the word itself is absent.
	FindEntry(ctx context.Context, word string) (*Entry, error)
}

// PartitionKey returns the partition letter for word: its lowercased first
// rune. The second return value is false when that rune is not a-z.
func PartitionKey(word string) (string, bool) {
	for _, r := range strings.ToLower(word) {
		if r < 'a' || r > 'z' {
			return "", false
		}
		return string(r), true
	}
	return "", false
}

// PartitionSource exposes the raw per-letter partitions of a dataset.
type PartitionSource interface {
	// Partitions returns the letters of the partitions present, sorted.
	Partitions() ([]string, error)

	// ReadPartition returns the raw JSON of the partition for letter.
	// Returns ENOTFOUND if the partition does not exist.
	ReadPartition(letter string) ([]byte, error)
}
