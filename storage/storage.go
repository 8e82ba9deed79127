package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/Lulu77Donc/reggie-take-out/configs"
)

var (
	// ErrInvalidName rejects names that would escape the base directory.
	ErrInvalidName = errors.New("invalid object name")
	ErrNotFound    = errors.New("object not found")
)

// Store persists uploaded files by object name.
type Store interface {
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
}

// New picks the driver named by STORAGE_DRIVER.
func New(cfg *configs.Config) (Store, error) {
	switch cfg.StorageDriver {
	case "", "local":
		return NewLocal(cfg.UploadDir), nil
	case "minio":
		return NewMinio(MinioOptions{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseTLS:    cfg.MinioUseTLS,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
