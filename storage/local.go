package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Local stores files in a directory, creating it on first write.
type Local struct {
	Dir string
}

func NewLocal(dir string) *Local { return &Local{Dir: dir} }

func (l *Local) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", ErrInvalidName
	}
	return filepath.Join(l.Dir, name), nil
}

func (l *Local) Put(_ context.Context, name string, r io.Reader, _ int64, _ string) error {
	p, err := l.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return errors.Wrap(err, "create upload dir")
	}
	f, err := os.Create(p)
	if err != nil {
		return errors.Wrap(err, "create file")
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(p)
		return errors.Wrap(err, "write file")
	}
	return errors.Wrap(f.Close(), "close file")
}

func (l *Local) Get(_ context.Context, name string) (io.ReadCloser, error) {
	p, err := l.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", name)
	}
	return f, nil
}

func (l *Local) Delete(_ context.Context, name string) error {
	p, err := l.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove %s", name)
	}
	return nil
}
