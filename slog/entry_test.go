package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	docset "github.com/cypheon/ocaml-docset"
	"github.com/cypheon/ocaml-docset/mock"
	dsslog "github.com/cypheon/ocaml-docset/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingEntryService_InsertEntry(t *testing.T) {
	t.Parallel()

	t.Run("successful inserts are silent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.EntryService{
			InsertEntryFn: func(_ context.Context, _ *docset.Entry) error { return nil },
		}

		svc := dsslog.NewLoggingEntryService(inner, debugLogger(&buf))
		err := svc.InsertEntry(context.Background(), &docset.Entry{Name: "List.map", Kind: docset.KindFunction, Path: "List.html#VALmap"})

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("logs failed inserts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.EntryService{
			InsertEntryFn: func(_ context.Context, _ *docset.Entry) error { return errors.New("disk I/O error") },
		}

		svc := dsslog.NewLoggingEntryService(inner, debugLogger(&buf))
		err := svc.InsertEntry(context.Background(), &docset.Entry{Name: "List.map", Kind: docset.KindFunction, Path: "List.html#VALmap"})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "name=List.map")
		assert.Contains(t, output, "kind=Function")
		assert.Contains(t, output, `err="disk I/O error"`)
	})
}

func TestLoggingEntryService_FindEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.EntryService{
		FindEntriesFn: func(_ context.Context, _ docset.EntryFilter) ([]*docset.Entry, error) {
			return []*docset.Entry{{Name: "Unix", Kind: docset.KindLibrary, Path: "unix.html"}}, nil
		},
	}

	svc := dsslog.NewLoggingEntryService(inner, debugLogger(&buf))
	entries, err := svc.FindEntries(context.Background(), docset.EntryFilter{})

	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Contains(t, buf.String(), "count=1")
}

func TestLoggingEntryService_Checksum(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.EntryService{
		ChecksumFn: func(_ context.Context) (string, error) { return "00ff00ff00ff00ff", nil },
	}

	svc := dsslog.NewLoggingEntryService(inner, debugLogger(&buf))
	sum, err := svc.Checksum(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "00ff00ff00ff00ff", sum)
	assert.Contains(t, buf.String(), "checksum=00ff00ff00ff00ff")
}
