package docpull_test

import (
	"testing"

	"github.com/fwojciec/docpull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifest_ResolveURL(t *testing.T) {
	t.Parallel()

	m := &docpull.Manifest{BaseURL: "https://docs.example.com"}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "absolute https", raw: "https://other.example.com/a", want: "https://other.example.com/a"},
		{name: "absolute http", raw: "http://other.example.com/a", want: "http://other.example.com/a"},
		{name: "root relative", raw: "/guide/intro", want: "https://docs.example.com/guide/intro"},
		// Only the "http" prefix marks a URL as absolute.
		{name: "protocol relative is concatenated", raw: "//cdn.example.com/x", want: "https://docs.example.com//cdn.example.com/x"},
		{name: "path relative is concatenated", raw: "guide", want: "https://docs.example.comguide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, m.ResolveURL(tt.raw))
		})
	}
}

func TestManifest_PageCount(t *testing.T) {
	t.Parallel()

	m := &docpull.Manifest{
		Areas: []docpull.Area{
			{Name: "a", Pages: []docpull.PageEntry{{}, {}}},
			{Name: "b", Pages: []docpull.PageEntry{{}}},
			{Name: "c"},
		},
	}

	assert.Equal(t, 3, m.PageCount())
}

func TestManifest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid manifest", func(t *testing.T) {
		t.Parallel()

		m := &docpull.Manifest{
			BaseURL: "https://docs.example.com",
			Areas: []docpull.Area{{
				Name:      "guide",
				OutputDir: "content/guide",
				Pages:     []docpull.PageEntry{{URL: "/intro", OutputFile: "intro.md"}},
			}},
		}

		require.NoError(t, m.Validate())
	})

	t.Run("accepts duplicate output files", func(t *testing.T) {
		t.Parallel()

		m := &docpull.Manifest{
			BaseURL: "https://docs.example.com",
			Areas: []docpull.Area{{
				Name:      "guide",
				OutputDir: "content/guide",
				Pages: []docpull.PageEntry{
					{URL: "/a", OutputFile: "same.md"},
					{URL: "/b", OutputFile: "same.md"},
				},
			}},
		}

		require.NoError(t, m.Validate())
	})

	t.Run("rejects missing output dir", func(t *testing.T) {
		t.Parallel()

		m := &docpull.Manifest{Areas: []docpull.Area{{Name: "guide"}}}

		err := m.Validate()
		require.Error(t, err)
		assert.Equal(t, docpull.EINVALID, docpull.ErrorCode(err))
	})

	t.Run("rejects page without output file", func(t *testing.T) {
		t.Parallel()

		m := &docpull.Manifest{
			BaseURL: "https://docs.example.com",
			Areas: []docpull.Area{{
				Name:      "guide",
				OutputDir: "content/guide",
				Pages:     []docpull.PageEntry{{URL: "/intro"}},
			}},
		}

		err := m.Validate()
		require.Error(t, err)
		assert.Equal(t, docpull.EINVALID, docpull.ErrorCode(err))
	})

	t.Run("rejects relative url without base url", func(t *testing.T) {
		t.Parallel()

		m := &docpull.Manifest{
			Areas: []docpull.Area{{
				Name:      "guide",
				OutputDir: "content/guide",
				Pages:     []docpull.PageEntry{{URL: "/intro", OutputFile: "intro.md"}},
			}},
		}

		err := m.Validate()
		require.Error(t, err)
		assert.Contains(t, docpull.ErrorMessage(err), "base url")
	})
}
