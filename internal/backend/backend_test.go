// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package backend

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pagedump/internal/pdftest"
	"github.com/pdiddy/pagedump/pkg/types"
)

var allBackends = []types.Backend{
	types.BackendLedongthuc,
	types.BackendRSC,
	types.BackendPdfcpu,
}

func TestOpen_PageText(t *testing.T) {
	for _, name := range allBackends {
		t.Run(string(name), func(t *testing.T) {
			path := pdftest.Write(t, t.TempDir(), "three.pdf",
				"First page", "", "Third page\nsecond line")

			doc, err := Open(name, path)
			require.NoError(t, err)
			defer doc.Close()

			require.Equal(t, 3, doc.NumPage())

			first, err := doc.PageText(1)
			require.NoError(t, err)
			assert.Contains(t, first, "First page")

			second, err := doc.PageText(2)
			require.NoError(t, err)
			assert.Empty(t, second)

			third, err := doc.PageText(3)
			require.NoError(t, err)
			assert.Contains(t, third, "Third page")
			assert.Contains(t, third, "second line")
		})
	}
}

func TestPageText_WordSpacing(t *testing.T) {
	for _, name := range allBackends {
		t.Run(string(name), func(t *testing.T) {
			path := pdftest.Write(t, t.TempDir(), "words.pdf", "Hello world", "one two  three\nfour five")

			doc, err := Open(name, path)
			require.NoError(t, err)
			defer doc.Close()

			first, err := doc.PageText(1)
			require.NoError(t, err)
			assert.Equal(t, "Hello world", strings.TrimSpace(first))

			second, err := doc.PageText(2)
			require.NoError(t, err)
			assert.Contains(t, second, "one two")
			assert.Contains(t, second, "three")
			assert.Contains(t, second, "four five")
			assert.NotContains(t, second, "onetwo")
			assert.NotContains(t, second, "fourfive")
		})
	}
}

func TestOpen_ZeroPages(t *testing.T) {
	for _, name := range allBackends {
		t.Run(string(name), func(t *testing.T) {
			path := pdftest.Write(t, t.TempDir(), "empty.pdf")

			doc, err := Open(name, path)
			require.NoError(t, err)
			defer doc.Close()

			assert.Equal(t, 0, doc.NumPage())
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.pdf")
	require.NoError(t, os.WriteFile(garbage, []byte("this is not a pdf"), 0o644))
	missing := filepath.Join(dir, "missing.pdf")

	for _, name := range allBackends {
		t.Run(string(name)+"/missing file", func(t *testing.T) {
			doc, err := Open(name, missing)
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.Contains(t, err.Error(), missing)
		})
		t.Run(string(name)+"/not a pdf", func(t *testing.T) {
			doc, err := Open(name, garbage)
			require.Error(t, err)
			assert.Nil(t, doc)
		})
	}
}

func TestOpen_FailureReleasesFile(t *testing.T) {
	const fdDir = "/proc/self/fd"
	if _, err := os.ReadDir(fdDir); err != nil {
		t.Skip("open file descriptors are not listable here")
	}
	countFDs := func() int {
		entries, err := os.ReadDir(fdDir)
		require.NoError(t, err)
		return len(entries)
	}

	garbage := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(garbage, []byte("%PDF-1.4\nno xref here\n"), 0o644))

	for _, name := range allBackends {
		t.Run(string(name), func(t *testing.T) {
			// First call warms up runtime descriptors such as the poller.
			_, err := Open(name, garbage)
			require.Error(t, err)

			before := countFDs()
			for i := 0; i < 5; i++ {
				_, err := Open(name, garbage)
				require.Error(t, err)
			}
			assert.Equal(t, before, countFDs())
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("poppler", "whatever.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown backend "poppler"`)
	assert.Contains(t, err.Error(), "ledongthuc, pdfcpu, rsc")
}

func TestPageText_OutOfRange(t *testing.T) {
	path := pdftest.Write(t, t.TempDir(), "one.pdf", "only")

	doc, err := Open(types.BackendLedongthuc, path)
	require.NoError(t, err)
	defer doc.Close()

	for _, n := range []int{0, 2, -1} {
		_, err := doc.PageText(n)
		assert.Error(t, err, "page %d", n)
	}
}

func TestRecoverPage(t *testing.T) {
	extract := func() (text string, err error) {
		defer recoverPage(7, &err)
		panic("malformed stream")
	}

	text, err := extract()
	assert.Empty(t, text)
	require.Error(t, err)
	assert.Equal(t, "extracting page 7: malformed stream", err.Error())
}
