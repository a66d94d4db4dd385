package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fwojciec/wordinfo"
)

// Compile-time interface verification.
var _ wordinfo.Dataset = (*Dataset)(nil)

// Dataset implements wordinfo.Dataset over entries imported into SQLite.
type Dataset struct {
	db *DB
}

// NewDataset creates a new Dataset.
func NewDataset(db *DB) *Dataset {
	return &Dataset{db: db}
}

// FindEntry retrieves the entry stored under the exact word in the word's
// first-letter partition.
func (d *Dataset) FindEntry(ctx context.Context, word string) (*wordinfo.Entry, error) {
	letter, ok := wordinfo.PartitionKey(word)
	if !ok {
		return nil, wordinfo.Errorf(wordinfo.ENOTFOUND, "no dataset partition for %q", word)
	}

	var body string
	err := d.db.QueryRowContext(ctx, `
		SELECT body
		FROM entries
		WHERE word = ? AND letter = ?
	`, word, letter).Scan(&body)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, wordinfo.Errorf(wordinfo.ENOTFOUND, "word %q not in dataset", word)
	}
	if err != nil {
		return nil, err
	}

	var entry wordinfo.Entry
	if err := json.Unmarshal([]byte(body), &entry); err != nil {
		return nil, fmt.Errorf("failed to decode entry %q: %w", word, err)
	}
	if entry.Word == "" {
		entry.Word = word
	}
	return &entry, nil
}
