package mock

import (
	"context"

	"github.com/fwojciec/wordinfo"
)

var (
	_ wordinfo.Dataset         = (*Dataset)(nil)
	_ wordinfo.PartitionSource = (*PartitionSource)(nil)
)

// Dataset is a mock implementation of wordinfo.Dataset.
type Dataset struct {
	FindEntryFn func(ctx context.Context, word string) (*wordinfo.Entry, error)
}

func (d *Dataset) FindEntry(ctx context.Context, word string) (*wordinfo.Entry, error) {
	return d.FindEntryFn(ctx, word)
}

// PartitionSource is a mock implementation of wordinfo.PartitionSource.
type PartitionSource struct {
	PartitionsFn    func() ([]string, error)
	ReadPartitionFn func(letter string) ([]byte, error)
}

func (s *PartitionSource) Partitions() ([]string, error) {
	return s.PartitionsFn()
}

func (s *PartitionSource) ReadPartition(letter string) ([]byte, error) {
	return s.ReadPartitionFn(letter)
}
