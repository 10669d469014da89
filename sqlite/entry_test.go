package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	docset "github.com/cypheon/ocaml-docset"
	"github.com/cypheon/ocaml-docset/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, db *sqlite.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM searchIndex").Scan(&n))
	return n
}

func TestEntryService_InsertEntry(t *testing.T) {
	t.Parallel()

	t.Run("inserting the same triple twice yields one row", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()
		e := &docset.Entry{Name: "List.map", Kind: docset.KindFunction, Path: "list.html#VALmap"}

		require.NoError(t, svc.InsertEntry(ctx, e))
		require.NoError(t, svc.InsertEntry(ctx, e))

		assert.Equal(t, 1, countRows(t, db))
	})

	t.Run("same name and path with different kind are distinct", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		require.NoError(t, svc.InsertEntry(ctx, &docset.Entry{Name: "X", Kind: docset.KindType, Path: "a.html"}))
		require.NoError(t, svc.InsertEntry(ctx, &docset.Entry{Name: "X", Kind: docset.KindException, Path: "a.html"}))

		assert.Equal(t, 2, countRows(t, db))
	})

	t.Run("same name and kind at different paths are distinct", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		require.NoError(t, svc.InsertEntry(ctx, &docset.Entry{Name: "t", Kind: docset.KindType, Path: "a.html#autoid_0000"}))
		require.NoError(t, svc.InsertEntry(ctx, &docset.Entry{Name: "t", Kind: docset.KindType, Path: "b.html#autoid_0000"}))

		assert.Equal(t, 2, countRows(t, db))
	})

	t.Run("rejects invalid entry", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)

		err := svc.InsertEntry(context.Background(), &docset.Entry{Name: "x", Kind: "Bogus", Path: "a.html"})

		require.Error(t, err)
		assert.Equal(t, docset.EINVALID, docset.ErrorCode(err))
		assert.Zero(t, countRows(t, db))
	})

	t.Run("entries survive without explicit commit", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "docSet.dsidx")
		ctx := context.Background()

		writer := sqlite.NewDB(path)
		require.NoError(t, writer.Open())
		defer writer.Close()
		require.NoError(t, sqlite.NewEntryService(writer).InsertEntry(ctx,
			&docset.Entry{Name: "Unix", Kind: docset.KindLibrary, Path: "unix.html#s:unix"}))

		// A second connection sees the row while the writer is still open.
		reader := sqlite.NewDB(path, sqlite.WithReadOnly())
		require.NoError(t, reader.Open())
		defer reader.Close()

		entries, err := sqlite.NewEntryService(reader).FindEntries(ctx, docset.EntryFilter{})
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestEntryService_FindEntries(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.EntryService {
		t.Helper()
		svc := sqlite.NewEntryService(setupTestDB(t))
		ctx := context.Background()
		for _, e := range []*docset.Entry{
			{Name: "List", Kind: docset.KindModule, Path: "List.html"},
			{Name: "List.map", Kind: docset.KindFunction, Path: "List.html#VALmap"},
			{Name: "List.t", Kind: docset.KindType, Path: "List.html#TYPEt"},
			{Name: "List.iter", Kind: docset.KindFunction, Path: "List.html#VALiter"},
		} {
			require.NoError(t, svc.InsertEntry(ctx, e))
		}
		return svc
	}

	t.Run("returns rows in insertion order", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		entries, err := svc.FindEntries(context.Background(), docset.EntryFilter{})
		require.NoError(t, err)

		require.Len(t, entries, 4)
		assert.Equal(t, "List", entries[0].Name)
		assert.Equal(t, docset.KindModule, entries[0].Kind)
		assert.Equal(t, "List.iter", entries[3].Name)
	})

	t.Run("filters by kind", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		kind := docset.KindFunction

		entries, err := svc.FindEntries(context.Background(), docset.EntryFilter{Kind: &kind})
		require.NoError(t, err)

		require.Len(t, entries, 2)
		assert.Equal(t, "List.map", entries[0].Name)
		assert.Equal(t, "List.iter", entries[1].Name)
	})

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		name := "List.t"

		entries, err := svc.FindEntries(context.Background(), docset.EntryFilter{Name: &name})
		require.NoError(t, err)

		require.Len(t, entries, 1)
		assert.Equal(t, "List.html#TYPEt", entries[0].Path)
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		entries, err := svc.FindEntries(context.Background(), docset.EntryFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "List.map", entries[0].Name)

		entries, err = svc.FindEntries(context.Background(), docset.EntryFilter{Offset: 3})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "List.iter", entries[0].Name)
	})
}

func TestEntryService_Checksum(t *testing.T) {
	t.Parallel()

	entries := []*docset.Entry{
		{Name: "A", Kind: docset.KindModule, Path: "A.html"},
		{Name: "A.f", Kind: docset.KindFunction, Path: "A.html#VALf"},
		{Name: "B", Kind: docset.KindModule, Path: "B.html"},
	}

	checksum := func(t *testing.T, order []int) string {
		t.Helper()
		svc := sqlite.NewEntryService(setupTestDB(t))
		ctx := context.Background()
		for _, i := range order {
			require.NoError(t, svc.InsertEntry(ctx, entries[i]))
		}
		sum, err := svc.Checksum(ctx)
		require.NoError(t, err)
		return sum
	}

	t.Run("is independent of insertion order", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, checksum(t, []int{0, 1, 2}), checksum(t, []int{2, 0, 1}))
	})

	t.Run("changes when an entry is missing", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, checksum(t, []int{0, 1, 2}), checksum(t, []int{0, 1}))
	})

	t.Run("is sixteen hex digits", func(t *testing.T) {
		t.Parallel()

		assert.Regexp(t, `^[0-9a-f]{16}$`, checksum(t, nil))
	})
}

func BenchmarkEntryService_InsertEntry(b *testing.B) {
	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.dsidx"))
	require.NoError(b, db.Open())
	defer db.Close()

	svc := sqlite.NewEntryService(db)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := &docset.Entry{
			Name: fmt.Sprintf("Bench.v%d", i),
			Kind: docset.KindValue,
			Path: fmt.Sprintf("Bench.html#VALv%d", i),
		}
		if err := svc.InsertEntry(ctx, e); err != nil {
			b.Fatal(err)
		}
	}
}
