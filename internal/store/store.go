package store

import (
	"context"
	"fmt"
	"io"
	"net/url"
)

// BlobStore is URI-addressed object storage for fetched documents and OCR
// text. Keys are full URIs (s3://bucket/key or file:///path) so rows in the
// database stay meaningful regardless of which backend wrote them.
type BlobStore interface {
	Get(ctx context.Context, uri string) (io.ReadCloser, error)
	Put(ctx context.Context, uri string, r io.Reader, size int64, contentType string) error
}

// SplitURI breaks a storage URI into scheme, authority (bucket or empty) and
// key.
func SplitURI(uri string) (scheme, bucket, key string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", "", fmt.Errorf("parse storage uri %q: %w", uri, err)
	}
	if u.Scheme == "" {
		return "", "", "", fmt.Errorf("storage uri %q has no scheme", uri)
	}
	key = u.Path
	if len(key) > 0 && key[0] == '/' && u.Host != "" {
		key = key[1:]
	}
	return u.Scheme, u.Host, key, nil
}

// ReadAll fetches a blob fully into memory.
func ReadAll(ctx context.Context, s BlobStore, uri string) ([]byte, error) {
	rc, err := s.Get(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rc.Close()
	}()
	return io.ReadAll(rc)
}
