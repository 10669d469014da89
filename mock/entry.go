package mock

import (
	"context"

	docset "github.com/cypheon/ocaml-docset"
)

var _ docset.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of docset.EntryService.
type EntryService struct {
	InsertEntryFn func(ctx context.Context, entry *docset.Entry) error
	FindEntriesFn func(ctx context.Context, filter docset.EntryFilter) ([]*docset.Entry, error)
	ChecksumFn    func(ctx context.Context) (string, error)
}

func (s *EntryService) InsertEntry(ctx context.Context, entry *docset.Entry) error {
	return s.InsertEntryFn(ctx, entry)
}

func (s *EntryService) FindEntries(ctx context.Context, filter docset.EntryFilter) ([]*docset.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryService) Checksum(ctx context.Context) (string, error) {
	return s.ChecksumFn(ctx)
}
