package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseTLS    bool
}

// Minio stores files as objects in one bucket.
type Minio struct {
	Client *minio.Client
	bucket string
}

func NewMinio(o MinioOptions) (*Minio, error) {
	client, err := minio.New(o.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(o.AccessKey, o.SecretKey, ""),
		Secure: o.UseTLS,
	})
	if err != nil {
		return nil, errors.Wrap(err, "minio client")
	}
	return &Minio{Client: client, bucket: o.Bucket}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (m *Minio) EnsureBucket(ctx context.Context) error {
	ok, err := m.Client.BucketExists(ctx, m.bucket)
	if err != nil {
		return errors.Wrap(err, "check bucket")
	}
	if ok {
		return nil
	}
	return errors.Wrap(m.Client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}), "make bucket")
}

func (m *Minio) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	_, err := m.Client.PutObject(ctx, m.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return errors.Wrapf(err, "put object %s", name)
}

func (m *Minio) Get(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := m.Client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "get object %s", name)
	}
	// GetObject is lazy; Stat surfaces a missing key before the caller streams.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "stat object %s", name)
	}
	return obj, nil
}

func (m *Minio) Delete(ctx context.Context, name string) error {
	return errors.Wrapf(m.Client.RemoveObject(ctx, m.bucket, name, minio.RemoveObjectOptions{}), "remove object %s", name)
}
