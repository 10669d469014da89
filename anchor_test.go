package docset_test

import (
	"testing"

	docset "github.com/cypheon/ocaml-docset"
	"github.com/stretchr/testify/assert"
)

func TestAnchorRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind docset.Kind
		sym  string
		want string
	}{
		{"plain identifier", docset.KindFunction, "map", "//apple_ref/cpp/Function/map"},
		{"keeps unreserved", docset.KindType, "file_descr.t-1~", "//apple_ref/cpp/Type/file_descr.t-1~"},
		{"escapes slash", docset.KindValue, "a/b", "//apple_ref/cpp/Value/a%2Fb"},
		{"escapes operators", docset.KindFunction, "( +! )", "//apple_ref/cpp/Function/%28%20%2B%21%20%29"},
		{"escapes quote and ampersand", docset.KindValue, "x'&y", "//apple_ref/cpp/Value/x%27%26y"},
		{"escapes utf-8 bytes", docset.KindValue, "é", "//apple_ref/cpp/Value/%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docset.AnchorRef(tt.kind, tt.sym))
		})
	}
}

func TestIDAllocator_Next(t *testing.T) {
	t.Parallel()

	t.Run("starts at zero and counts up", func(t *testing.T) {
		t.Parallel()

		var a docset.IDAllocator

		assert.Equal(t, "autoid_0000", a.Next())
		assert.Equal(t, "autoid_0001", a.Next())
		assert.Equal(t, "autoid_0002", a.Next())
	})

	t.Run("uses hexadecimal digits", func(t *testing.T) {
		t.Parallel()

		var a docset.IDAllocator
		var got []string
		for range 17 {
			got = append(got, a.Next())
		}

		assert.Equal(t, "autoid_0009", got[9])
		assert.Equal(t, "autoid_000a", got[10])
		assert.Equal(t, "autoid_0010", got[16])
	})

	t.Run("separate allocators are independent", func(t *testing.T) {
		t.Parallel()

		var a, b docset.IDAllocator
		a.Next()
		a.Next()

		assert.Equal(t, "autoid_0000", b.Next())
	})
}
