package house

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholloway/ptr-tracker/internal/common"
)

type memBlobs struct {
	objects map[string][]byte
}

func newMemBlobs() *memBlobs {
	return &memBlobs{objects: make(map[string][]byte)}
}

func (m *memBlobs) Get(ctx context.Context, uri string) (io.ReadCloser, error) {
	data, ok := m.objects[uri]
	if !ok {
		return nil, common.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memBlobs) Put(ctx context.Context, uri string, r io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[uri] = data
	return nil
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *memBlobs) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	blobs := newMemBlobs()
	client := NewClient(Config{
		BaseURL:       srv.URL,
		UserAgent:     "ptr-tracker-test/1.0",
		StoragePrefix: "file:///blobs",
	}, blobs, nil)
	return client, blobs
}

func TestProbePtrETag(t *testing.T) {
	var gotMethod, gotPath, gotAgent string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("ETag", `"abc123"`)
	}))

	etag, err := client.ProbePtrETag(context.Background(), "20032062", 2025)
	require.NoError(t, err)
	assert.Equal(t, `"abc123"`, etag)
	assert.Equal(t, http.MethodHead, gotMethod)
	assert.Equal(t, "/ptr-pdfs/2025/20032062.pdf", gotPath)
	assert.Equal(t, "ptr-tracker-test/1.0", gotAgent)
}

func TestProbeFilingListETag(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("ETag", `"list-v1"`)
	}))

	etag, err := client.ProbeFilingListETag(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, `"list-v1"`, etag)
	assert.Equal(t, "/financial-pdfs/2025FD.zip", gotPath)
}

func TestProbe_NoETagHeader(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	etag, err := client.ProbePtrETag(context.Background(), "20032062", 2025)
	require.NoError(t, err)
	assert.Empty(t, etag)
}

func TestProbe_Non200IsError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.ProbePtrETag(context.Background(), "20032062", 2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestFetchPtr(t *testing.T) {
	pdfBytes := []byte("%PDF-1.7 fake document body")
	client, blobs := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/ptr-pdfs/2025/20032062.pdf", r.URL.Path)
		w.Header().Set("ETag", `"abc123"`)
		_, _ = w.Write(pdfBytes)
	}))

	stored, err := client.FetchPtr(context.Background(), "20032062", 2025)
	require.NoError(t, err)
	assert.Equal(t, `"abc123"`, stored.ETag)
	assert.Equal(t, "file:///blobs/congress/house/2025/20032062.pdf", stored.URI)
	assert.Equal(t, pdfBytes, blobs.objects[stored.URI])
}

func TestFetchFilingList(t *testing.T) {
	zipBytes := []byte("PK fake archive")
	client, blobs := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/financial-pdfs/2025FD.zip", r.URL.Path)
		w.Header().Set("ETag", `"list-v1"`)
		_, _ = w.Write(zipBytes)
	}))

	stored, err := client.FetchFilingList(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, `"list-v1"`, stored.ETag)
	assert.Equal(t, zipBytes, blobs.objects[stored.URI])
}

func TestFetch_Non200IsError(t *testing.T) {
	client, blobs := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.FetchPtr(context.Background(), "20032062", 2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 503")
	assert.Empty(t, blobs.objects)
}
