package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lulu77Donc/reggie-take-out/storage"
)

func TestFileUploadDownload(t *testing.T) {
	svc := NewFileService(storage.NewLocal(filepath.Join(t.TempDir(), "img")))
	ctx := context.Background()

	name, err := svc.Upload(ctx, "photo.PNG", strings.NewReader("png-bytes"), 9)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.Len(t, name, 36+4)

	other, err := svc.Upload(ctx, "photo.PNG", strings.NewReader("x"), 1)
	require.NoError(t, err)
	assert.NotEqual(t, name, other)

	rc, ct, err := svc.Download(ctx, name)
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(b))
	assert.Equal(t, "image/png", ct)

	_, _, err = svc.Download(ctx, "missing.jpg")
	assert.ErrorIs(t, err, ErrNotFound)
	_, _, err = svc.Download(ctx, "../etc/passwd")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileUpload_StoreFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	// a regular file where the upload directory should be makes MkdirAll fail
	require.NoError(t, storage.NewLocal(dir).Put(context.Background(), "file", strings.NewReader("x"), 1, ""))

	svc := NewFileService(storage.NewLocal(blocker))
	_, err := svc.Upload(context.Background(), "a.jpg", strings.NewReader("x"), 1)
	require.Error(t, err)
	assert.False(t, IsBusiness(err))
}
