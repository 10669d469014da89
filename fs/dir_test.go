package fs_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	docset "github.com/cypheon/ocaml-docset"
	"github.com/cypheon/ocaml-docset/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func TestDir_Files(t *testing.T) {
	t.Parallel()

	t.Run("lists files recursively in lexical order", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "List.html", "")
		writeFile(t, root, "libref/Unix.html", "")
		writeFile(t, root, "Array.html", "")
		writeFile(t, root, "style.css", "")

		files, err := fs.NewDir(root).Files(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"Array.html", "List.html", "libref/Unix.html", "style.css"}, files)
	})

	t.Run("skips hidden entries", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, ".git/config", "")
		writeFile(t, root, ".DS_Store", "")
		writeFile(t, root, "index.html", "")

		files, err := fs.NewDir(root).Files(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"index.html"}, files)
	})

	t.Run("fails for missing root", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewDir(filepath.Join(t.TempDir(), "nope")).Files(context.Background())

		require.Error(t, err)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "a.html", "")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewDir(root).Files(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDir_Open(t *testing.T) {
	t.Parallel()

	t.Run("opens a file by relative path", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "libref/List.html", "<h1>Module List</h1>")

		rc, err := fs.NewDir(root).Open("libref/List.html")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "<h1>Module List</h1>", string(data))
	})

	t.Run("refuses paths leaving the root", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewDir(t.TempDir()).Open("../etc/passwd")

		require.Error(t, err)
		assert.Equal(t, docset.EINVALID, docset.ErrorCode(err))
	})
}
