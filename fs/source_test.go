package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stefw/cardex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDirSource_List(t *testing.T) {
	t.Parallel()

	t.Run("lists matching files in sorted order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "page2.html", "<html></html>")
		writeFile(t, dir, "page1.html", "<html></html>")
		writeFile(t, dir, "notes.txt", "not a page")

		source := fs.NewDirSource(dir)
		names, err := source.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"page1.html", "page2.html"}, names)
	})

	t.Run("empty directory lists nothing", func(t *testing.T) {
		t.Parallel()

		source := fs.NewDirSource(t.TempDir())
		names, err := source.List(context.Background())

		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("limit caps the listing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a.html", "")
		writeFile(t, dir, "b.html", "")
		writeFile(t, dir, "c.html", "")

		source := fs.NewDirSource(dir, fs.WithLimit(2))
		names, err := source.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"a.html", "b.html"}, names)
	})

	t.Run("custom glob", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "listing_1.htm", "")
		writeFile(t, dir, "listing_2.html", "")

		source := fs.NewDirSource(dir, fs.WithGlob("*.htm"))
		names, err := source.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"listing_1.htm"}, names)
	})
}

func TestDirSource_Read(t *testing.T) {
	t.Parallel()

	t.Run("returns page content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "page1.html", "<html><body>cards</body></html>")

		source := fs.NewDirSource(dir)
		page, err := source.Read(context.Background(), "page1.html")

		require.NoError(t, err)
		assert.Equal(t, "page1.html", page.Name)
		assert.Equal(t, "<html><body>cards</body></html>", page.HTML)
	})

	t.Run("missing file returns an error", func(t *testing.T) {
		t.Parallel()

		source := fs.NewDirSource(t.TempDir())
		_, err := source.Read(context.Background(), "gone.html")

		require.Error(t, err)
	})
}
