package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/ogimage"
	"github.com/fwojciec/ogimage/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Reading Saved Pages
// The reader loads a whole file as text or explains why it cannot.

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestDocumentReader_ReadsWholeFile(t *testing.T) {
	t.Parallel()

	// Given a saved page
	content := `<html><head><meta property="og:image" content="https://example.com/a.png"></head></html>`
	path := writeFile(t, "page.html", []byte(content))

	// When I read it
	doc, err := fs.NewDocumentReader().ReadDocument(context.Background(), path)

	// Then the full content is returned
	require.NoError(t, err)
	assert.Equal(t, content, doc)
}

func TestDocumentReader_ReadsMultibyteText(t *testing.T) {
	t.Parallel()

	// Given a page with non-ASCII text
	content := "<title>チャンネル</title><meta property=\"og:image\" content=\"https://example.com/画像.png\">"
	path := writeFile(t, "page.html", []byte(content))

	// When I read it
	doc, err := fs.NewDocumentReader().ReadDocument(context.Background(), path)

	// Then the text is unchanged
	require.NoError(t, err)
	assert.Equal(t, content, doc)
}

func TestDocumentReader_ReadsEmptyFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "empty.html", nil)

	doc, err := fs.NewDocumentReader().ReadDocument(context.Background(), path)

	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestDocumentReader_MissingFileIsNotFound(t *testing.T) {
	t.Parallel()

	// Given a path with no file
	path := filepath.Join(t.TempDir(), "missing.html")

	// When I read it
	_, err := fs.NewDocumentReader().ReadDocument(context.Background(), path)

	// Then a not found error is returned
	require.Error(t, err)
	assert.Equal(t, ogimage.ENOTFOUND, ogimage.ErrorCode(err))
	assert.Contains(t, ogimage.ErrorMessage(err), "missing.html")
}

func TestDocumentReader_InvalidUTF8IsInvalid(t *testing.T) {
	t.Parallel()

	// Given a Latin-1 encoded page
	path := writeFile(t, "latin1.html", []byte("<title>caf\xe9</title>"))

	// When I read it
	_, err := fs.NewDocumentReader().ReadDocument(context.Background(), path)

	// Then an invalid error is returned
	require.Error(t, err)
	assert.Equal(t, ogimage.EINVALID, ogimage.ErrorCode(err))
}

func TestDocumentReader_TruncatedRuneIsInvalid(t *testing.T) {
	t.Parallel()

	// Given a page ending in the middle of a multibyte rune
	path := writeFile(t, "truncated.html", []byte("<p>\xe3\x81"))

	_, err := fs.NewDocumentReader().ReadDocument(context.Background(), path)

	require.Error(t, err)
	assert.Equal(t, ogimage.EINVALID, ogimage.ErrorCode(err))
}

func TestDocumentReader_DirectoryIsInternalError(t *testing.T) {
	t.Parallel()

	_, err := fs.NewDocumentReader().ReadDocument(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.Equal(t, ogimage.EINTERNAL, ogimage.ErrorCode(err))
}

func TestDocumentReader_CancelledContext(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "page.html", []byte("<html></html>"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.NewDocumentReader().ReadDocument(ctx, path)

	assert.ErrorIs(t, err, context.Canceled)
}
