package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wordinfo"
	"golang.org/x/sync/errgroup"
)

// DefaultImportConcurrency is the number of partitions decoded in parallel.
const DefaultImportConcurrency = 4

// ImportResult summarizes an import run.
type ImportResult struct {
	Imported []string `json:"imported"` // partitions written
	Skipped  []string `json:"skipped"`  // partitions unchanged since the last import
	Removed  []string `json:"removed"`  // partitions no longer in the source
	Entries  int      `json:"entries"`  // entries written
}

// Importer loads dataset partitions into the database. Partitions whose
// content hash matches the previous import are skipped.
type Importer struct {
	db          *DB
	concurrency int
	now         func() time.Time
}

// ImporterOption configures an Importer.
type ImporterOption func(*Importer)

// WithImportConcurrency sets how many partitions are decoded in parallel.
func WithImportConcurrency(n int) ImporterOption {
	return func(im *Importer) {
		im.concurrency = n
	}
}

// NewImporter creates a new Importer.
func NewImporter(db *DB, opts ...ImporterOption) *Importer {
	im := &Importer{
		db:          db,
		concurrency: DefaultImportConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(im)
	}
	if im.concurrency <= 0 {
		im.concurrency = 1
	}
	return im
}

type partition struct {
	letter  string
	hash    string
	records map[string]json.RawMessage
}

// Import reads every partition of src and writes the changed ones.
// Partitions are decoded in parallel and written one transaction each.
func (im *Importer) Import(ctx context.Context, src wordinfo.PartitionSource) (*ImportResult, error) {
	letters, err := src.Partitions()
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions: %w", err)
	}

	parts := make([]*partition, len(letters))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.concurrency)
	for i, letter := range letters {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := readPartition(src, letter)
			if err != nil {
				return err
			}
			parts[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for _, p := range parts {
		current, err := im.partitionHash(ctx, p.letter)
		if err != nil {
			return nil, err
		}
		if current == p.hash {
			result.Skipped = append(result.Skipped, p.letter)
			continue
		}
		if err := im.writePartition(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to write partition %q: %w", p.letter, err)
		}
		result.Imported = append(result.Imported, p.letter)
		result.Entries += len(p.records)
	}

	removed, err := im.removeStale(ctx, letters)
	if err != nil {
		return nil, fmt.Errorf("failed to remove stale partitions: %w", err)
	}
	result.Removed = removed
	return result, nil
}

// removeStale deletes the partitions stored by an earlier import that are
// not among letters. Their entries go with them through the cascade.
func (im *Importer) removeStale(ctx context.Context, letters []string) ([]string, error) {
	rows, err := im.db.QueryContext(ctx, `SELECT letter FROM partitions ORDER BY letter`)
	if err != nil {
		return nil, err
	}
	var stale []string
	for rows.Next() {
		var letter string
		if err := rows.Scan(&letter); err != nil {
			rows.Close()
			return nil, err
		}
		if !slices.Contains(letters, letter) {
			stale = append(stale, letter)
		}
	}
	// The single connection must be released before the delete transaction.
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if len(stale) == 0 {
		return nil, nil
	}

	tx, err := im.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, letter := range stale {
		if _, err := tx.ExecContext(ctx, `DELETE FROM partitions WHERE letter = ?`, letter); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return stale, nil
}

func readPartition(src wordinfo.PartitionSource, letter string) (*partition, error) {
	data, err := src.ReadPartition(letter)
	if err != nil {
		return nil, err
	}
	var records map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode partition %q: %w", letter, err)
	}
	return &partition{
		letter:  letter,
		hash:    hashContent(data),
		records: records,
	}, nil
}

// hashContent returns the xxhash of a partition file as a hex string.
func hashContent(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

func (im *Importer) partitionHash(ctx context.Context, letter string) (string, error) {
	var hash string
	err := im.db.QueryRowContext(ctx, `
		SELECT content_hash
		FROM partitions
		WHERE letter = ?
	`, letter).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return hash, err
}

func (im *Importer) writePartition(ctx context.Context, p *partition) error {
	tx, err := im.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Deleting the partition row cascades to its entries.
	if _, err := tx.ExecContext(ctx, `DELETE FROM partitions WHERE letter = ?`, p.letter); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO partitions (letter, content_hash, imported_at)
		VALUES (?, ?, ?)
	`, p.letter, p.hash, im.now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	words := make([]string, 0, len(p.records))
	for word := range p.records {
		words = append(words, word)
	}
	sort.Strings(words)

	for _, word := range words {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO entries (word, letter, body)
			VALUES (?, ?, ?)
		`, word, p.letter, string(p.records[word])); err != nil {
			return err
		}
	}

	return tx.Commit()
}
