// Package fs provides file-based implementations of the offline dataset,
// including the dataset bundled with the module.
package fs

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"sort"
	"strings"

	"github.com/fwojciec/wordinfo"
)

//go:embed data/*.json
var bundled embed.FS

// Compile-time interface verification.
var (
	_ wordinfo.Dataset         = (*Dataset)(nil)
	_ wordinfo.PartitionSource = (*Dataset)(nil)
)

// Dataset implements wordinfo.Dataset over a file system holding one JSON
// file per first letter ("a.json", "b.json", ...). Each file maps exact
// words to their entries. Partitions are read on every lookup.
type Dataset struct {
	fsys iofs.FS
}

// NewDataset creates a Dataset reading partitions from fsys.
func NewDataset(fsys iofs.FS) *Dataset {
	return &Dataset{fsys: fsys}
}

// NewDirDataset creates a Dataset reading partitions from a directory.
func NewDirDataset(dir string) *Dataset {
	return NewDataset(os.DirFS(dir))
}

// Bundled returns the dataset embedded in the module.
func Bundled() *Dataset {
	sub, err := iofs.Sub(bundled, "data")
	if err != nil {
		panic(fmt.Sprintf("bundled dataset: %v", err))
	}
	return NewDataset(sub)
}

// FindEntry returns the entry for word from its first-letter partition.
func (d *Dataset) FindEntry(ctx context.Context, word string) (*wordinfo.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	letter, ok := wordinfo.PartitionKey(word)
	if !ok {
		return nil, wordinfo.Errorf(wordinfo.ENOTFOUND, "no dataset partition for %q", word)
	}

	data, err := d.ReadPartition(letter)
	if err != nil {
		return nil, err
	}

	var records map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode partition %q: %w", letter, err)
	}

	raw, ok := records[word]
	if !ok {
		return nil, wordinfo.Errorf(wordinfo.ENOTFOUND, "word %q not in dataset", word)
	}

	var entry wordinfo.Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode entry %q: %w", word, err)
	}
	if entry.Word == "" {
		entry.Word = word
	}
	return &entry, nil
}

// Partitions returns the letters of the partition files present, sorted.
// Files not named after a single letter a-z are ignored.
func (d *Dataset) Partitions() ([]string, error) {
	matches, err := iofs.Glob(d.fsys, "*.json")
	if err != nil {
		return nil, err
	}

	var letters []string
	for _, name := range matches {
		letter := strings.TrimSuffix(name, ".json")
		if key, ok := wordinfo.PartitionKey(letter); !ok || key != letter {
			continue
		}
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	return letters, nil
}

// ReadPartition returns the raw JSON of the partition for letter.
func (d *Dataset) ReadPartition(letter string) ([]byte, error) {
	data, err := iofs.ReadFile(d.fsys, letter+".json")
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, wordinfo.Errorf(wordinfo.ENOTFOUND, "dataset partition %q not found", letter)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
