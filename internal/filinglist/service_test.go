package filinglist

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/entity"
	"github.com/mholloway/ptr-tracker/internal/house"
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

type fakeListFetcher struct {
	etag       string
	probeErr   error
	blobs      *memBlobs
	zipPayload []byte
	fetches    int
}

func (f *fakeListFetcher) ProbeFilingListETag(ctx context.Context, year int) (string, error) {
	return f.etag, f.probeErr
}

func (f *fakeListFetcher) FetchFilingList(ctx context.Context, year int) (*house.StoredResponse, error) {
	f.fetches++
	uri := "file:///blobs/" + constants.FilingListStorageKey(year)
	if err := f.blobs.Put(ctx, uri, bytes.NewReader(f.zipPayload), int64(len(f.zipPayload)), "application/zip"); err != nil {
		return nil, err
	}
	return &house.StoredResponse{URI: uri, ETag: f.etag}, nil
}

type fakeListRepo struct {
	existing *entity.FilingList
	upserted *entity.FilingList
}

func (f *fakeListRepo) GetByYear(ctx context.Context, year int) (*entity.FilingList, error) {
	if f.existing == nil {
		return nil, common.ErrNotFound
	}
	return f.existing, nil
}

func (f *fakeListRepo) Upsert(ctx context.Context, list *entity.FilingList) (*entity.FilingList, error) {
	f.upserted = list
	return list, nil
}

type fakeFilingsRepo struct {
	batches [][]entity.Filing
	err     error
}

func (f *fakeFilingsRepo) UpsertBatch(ctx context.Context, filings []entity.Filing) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.batches = append(f.batches, filings)
	return len(filings), nil
}

// zipWithTSV builds a yearly disclosure archive holding one TSV entry.
func zipWithTSV(t *testing.T, name, tsv string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write([]byte(tsv))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestIngest(t *testing.T) {
	tsv := constants.FilingListHeader + "\n" +
		"Hon.\tAderholt\tRobert B.\t\tP\tAL04\t2025\t8/4/2025\t20032062\n" +
		"Hon.\tPelosi\tNancy\t\tA\tCA11\t2025\t5/15/2025\t10063241\n" +
		"broken row\n"

	blobs := newMemBlobs()
	fetcher := &fakeListFetcher{etag: "z1", blobs: blobs, zipPayload: zipWithTSV(t, "2025FD.txt", tsv)}
	lists := &fakeListRepo{}
	filings := &fakeFilingsRepo{}
	svc := NewService(fetcher, blobs, lists, filings, "file:///blobs", nil)

	result, err := svc.Ingest(context.Background(), 2025, false)
	require.NoError(t, err)

	assert.Equal(t, 2025, result.Year)
	assert.False(t, result.Skipped)
	assert.Equal(t, 2, result.Rows)
	assert.Equal(t, 2, result.Upserts)
	assert.Equal(t, 1, result.Invalid)

	require.Len(t, filings.batches, 1)
	assert.Equal(t, "20032062", filings.batches[0][0].DocID)

	// The record is marked parsed under the fetched fingerprint.
	require.NotNil(t, lists.upserted)
	assert.True(t, lists.upserted.Parsed)
	require.NotNil(t, lists.upserted.ETag)
	assert.Equal(t, "z1", *lists.upserted.ETag)

	// The extracted TSV is re-stored next to the archive.
	stored, ok := blobs.objects["file:///blobs/"+constants.FilingListTsvStorageKey(2025)]
	require.True(t, ok)
	assert.Equal(t, tsv, string(stored))
}

func TestIngest_UnchangedETagSkips(t *testing.T) {
	etag := "z1"
	blobs := newMemBlobs()
	fetcher := &fakeListFetcher{etag: etag, blobs: blobs}
	lists := &fakeListRepo{existing: &entity.FilingList{Year: 2025, ETag: &etag, Parsed: true}}
	svc := NewService(fetcher, blobs, lists, &fakeFilingsRepo{}, "file:///blobs", nil)

	result, err := svc.Ingest(context.Background(), 2025, false)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Zero(t, fetcher.fetches)
}

func TestIngest_ForceIgnoresStoredETag(t *testing.T) {
	etag := "z1"
	tsv := constants.FilingListHeader + "\n"
	blobs := newMemBlobs()
	fetcher := &fakeListFetcher{etag: etag, blobs: blobs, zipPayload: zipWithTSV(t, "2025FD.txt", tsv)}
	lists := &fakeListRepo{existing: &entity.FilingList{Year: 2025, ETag: &etag, Parsed: true}}
	svc := NewService(fetcher, blobs, lists, &fakeFilingsRepo{}, "file:///blobs", nil)

	result, err := svc.Ingest(context.Background(), 2025, true)
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, 1, fetcher.fetches)
	assert.Zero(t, result.Rows)
}

func TestIngest_YearBeforeDisclosuresBegan(t *testing.T) {
	svc := NewService(&fakeListFetcher{}, newMemBlobs(), &fakeListRepo{}, &fakeFilingsRepo{}, "file:///blobs", nil)

	_, err := svc.Ingest(context.Background(), 2007, false)
	require.Error(t, err)

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_YEAR", appErr.Code)
}

func TestIngest_ProbeFailureAborts(t *testing.T) {
	fetcher := &fakeListFetcher{probeErr: errors.New("503")}
	svc := NewService(fetcher, newMemBlobs(), &fakeListRepo{}, &fakeFilingsRepo{}, "file:///blobs", nil)

	_, err := svc.Ingest(context.Background(), 2025, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probe filing list")
	assert.Zero(t, fetcher.fetches)
}

func TestIngest_MissingTSVEntryFails(t *testing.T) {
	blobs := newMemBlobs()
	fetcher := &fakeListFetcher{etag: "z1", blobs: blobs, zipPayload: zipWithTSV(t, "wrong-name.txt", "data")}
	svc := NewService(fetcher, blobs, &fakeListRepo{}, &fakeFilingsRepo{}, "file:///blobs", nil)

	_, err := svc.Ingest(context.Background(), 2025, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing 2025FD.txt")
}
