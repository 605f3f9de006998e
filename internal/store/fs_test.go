package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitURI(t *testing.T) {
	tests := []struct {
		uri                 string
		scheme, bucket, key string
		wantErr             bool
	}{
		{uri: "s3://ptr-tracker/congress/house/2025/20032062.pdf", scheme: "s3", bucket: "ptr-tracker", key: "congress/house/2025/20032062.pdf"},
		{uri: "file:///var/data/doc.pdf", scheme: "file", bucket: "", key: "/var/data/doc.pdf"},
		{uri: "no-scheme-here", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			scheme, bucket, key, err := SplitURI(tt.uri)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.scheme, scheme)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestFSStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	uri := "file://" + dir + "/congress/house/2025/20032062.txt"
	s := NewFSStore()
	ctx := context.Background()

	body := "extracted text"
	require.NoError(t, s.Put(ctx, uri, strings.NewReader(body), int64(len(body)), "text/plain"))

	data, err := ReadAll(ctx, s, uri)
	require.NoError(t, err)
	assert.Equal(t, body, string(data))
}

func TestFSStore_MissingObject(t *testing.T) {
	s := NewFSStore()
	_, err := s.Get(context.Background(), "file://"+t.TempDir()+"/nope.pdf")
	require.Error(t, err)
}

func TestFSStore_RejectsForeignScheme(t *testing.T) {
	s := NewFSStore()
	err := s.Put(context.Background(), "s3://bucket/key", strings.NewReader("x"), 1, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `cannot serve scheme "s3"`)
}
