package services

import (
	"context"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Lulu77Donc/reggie-take-out/storage"
)

// FileService stores dish and setmeal images.
type FileService struct {
	Store storage.Store
}

func NewFileService(store storage.Store) *FileService {
	return &FileService{Store: store}
}

// Upload saves r under a random name that keeps the original extension.
func (s *FileService) Upload(ctx context.Context, original string, r io.Reader, size int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	name := uuid.NewString() + ext
	if err := s.Store.Put(ctx, name, r, size, contentType(name)); err != nil {
		return "", errors.Wrap(err, "upload")
	}
	return name, nil
}

// Download opens a stored file and reports its content type.
func (s *FileService) Download(ctx context.Context, name string) (io.ReadCloser, string, error) {
	rc, err := s.Store.Get(ctx, name)
	if errors.Is(err, storage.ErrInvalidName) || errors.Is(err, storage.ErrNotFound) {
		return nil, "", business(ErrNotFound)
	}
	if err != nil {
		return nil, "", errors.Wrap(err, "download")
	}
	return rc, contentType(name), nil
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); strings.HasPrefix(ct, "image/") {
		return ct
	}
	return "image/jpeg"
}
