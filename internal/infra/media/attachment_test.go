package media

import (
	"bytes"
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	domainerrors "adminpanel/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 32)...)

func requireImagesFailure(t *testing.T, err error) string {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr), "got %v", err)
	require.Contains(t, validationErr.Fields, ImagesField)

	return validationErr.Fields[ImagesField]
}

func TestNewAttachment(t *testing.T) {
	t.Run("png accepted", func(t *testing.T) {
		att, err := NewAttachment("photo.png", pngBytes, 5<<20)
		require.NoError(t, err)
		assert.Equal(t, "image/png", att.ContentType)
		assert.Equal(t, "photo.png", att.Name)
	})

	t.Run("extension added from content", func(t *testing.T) {
		att, err := NewAttachment("upload", pngBytes, 5<<20)
		require.NoError(t, err)
		assert.Equal(t, "upload.png", att.Name)
	})

	t.Run("path components stripped", func(t *testing.T) {
		att, err := NewAttachment("../../etc/photo.png", pngBytes, 5<<20)
		require.NoError(t, err)
		assert.Equal(t, "photo.png", att.Name)
	})

	t.Run("text rejected despite image name", func(t *testing.T) {
		_, err := NewAttachment("photo.jpg", []byte("just some text"), 5<<20)
		assert.Contains(t, requireImagesFailure(t, err), "is not an image")
	})

	t.Run("too large", func(t *testing.T) {
		_, err := NewAttachment("big.png", pngBytes, 16)
		assert.Equal(t, "big.png is larger than 16 B", requireImagesFailure(t, err))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewAttachment("empty.png", nil, 5<<20)
		assert.Contains(t, requireImagesFailure(t, err), "is empty")
	})
}

func TestBlobSource_Load(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "robe.png"), pngBytes, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not an image"), 0o600))

	source := NewBlobSource(5 << 20)

	t.Run("local path", func(t *testing.T) {
		att, err := source.Load(ctx, filepath.Join(dir, "robe.png"))
		require.NoError(t, err)
		assert.Equal(t, "robe.png", att.Name)
		assert.Equal(t, "image/png", att.ContentType)
		assert.Equal(t, pngBytes, att.Data)
	})

	t.Run("file url", func(t *testing.T) {
		ref := (&url.URL{Scheme: "file", Path: filepath.ToSlash(filepath.Join(dir, "robe.png"))}).String()
		att, err := source.Load(ctx, ref)
		require.NoError(t, err)
		assert.Equal(t, "robe.png", att.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := source.Load(ctx, filepath.Join(dir, "absent.png"))
		assert.Contains(t, requireImagesFailure(t, err), "not found")
	})

	t.Run("not an image", func(t *testing.T) {
		_, err := source.Load(ctx, filepath.Join(dir, "notes.txt"))
		assert.Contains(t, requireImagesFailure(t, err), "is not an image")
	})

	t.Run("size checked before reading", func(t *testing.T) {
		_, err := NewBlobSource(8).Load(ctx, filepath.Join(dir, "robe.png"))
		assert.Contains(t, requireImagesFailure(t, err), "is larger than 8 B")
	})
}
