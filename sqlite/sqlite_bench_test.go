package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/wordinfo/fs"
	"github.com/fwojciec/wordinfo/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkImport measures a full import of the bundled dataset into a fresh
// database file.
func BenchmarkImport(b *testing.B) {
	ctx := context.Background()
	src := fs.Bundled()

	for b.Loop() {
		b.StopTimer()
		db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
		require.NoError(b, db.Open())
		importer := sqlite.NewImporter(db)
		b.StartTimer()

		_, err := importer.Import(ctx, src)
		require.NoError(b, err)

		b.StopTimer()
		require.NoError(b, db.Close())
		b.StartTimer()
	}
}

// BenchmarkFindEntry compares offline lookups served from SQLite and from
// the per-letter JSON files.
func BenchmarkFindEntry(b *testing.B) {
	ctx := context.Background()

	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()
	_, err := sqlite.NewImporter(db).Import(ctx, fs.Bundled())
	require.NoError(b, err)

	b.Run("sqlite", func(b *testing.B) {
		dataset := sqlite.NewDataset(db)
		for b.Loop() {
			_, err := dataset.FindEntry(ctx, "grand")
			require.NoError(b, err)
		}
	})

	b.Run("json", func(b *testing.B) {
		dataset := fs.Bundled()
		for b.Loop() {
			_, err := dataset.FindEntry(ctx, "grand")
			require.NoError(b, err)
		}
	})
}
