package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FSStore serves file:// URIs from the local filesystem. Used for local batch
// runs and tests where no object store is available.
type FSStore struct{}

func NewFSStore() *FSStore {
	return &FSStore{}
}

func (s *FSStore) Get(_ context.Context, uri string) (io.ReadCloser, error) {
	path, err := fsPath(uri)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", uri, err)
	}
	return f, nil
}

func (s *FSStore) Put(_ context.Context, uri string, r io.Reader, _ int64, _ string) error {
	path, err := fsPath(uri)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", uri, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", uri, err)
	}
	defer func() {
		_ = f.Close()
	}()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("write %s: %w", uri, err)
	}
	return nil
}

func fsPath(uri string) (string, error) {
	scheme, host, key, err := SplitURI(uri)
	if err != nil {
		return "", err
	}
	if scheme != "file" {
		return "", fmt.Errorf("fs store cannot serve scheme %q", scheme)
	}
	if host != "" {
		key = filepath.Join(host, key)
	}
	return filepath.FromSlash(key), nil
}
