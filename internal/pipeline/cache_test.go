package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholloway/ptr-tracker/internal/entity"
)

func TestDecide(t *testing.T) {
	stored := &entity.Download{ID: 1, DocID: "20032062", ETag: "v1"}

	tests := []struct {
		name      string
		remote    string
		stored    *entity.Download
		wantFetch bool
	}{
		{name: "unchanged", remote: "v1", stored: stored, wantFetch: false},
		{name: "etag changed", remote: "v2", stored: stored, wantFetch: true},
		{name: "no stored record", remote: "v1", stored: nil, wantFetch: true},
		{name: "empty remote etag", remote: "", stored: stored, wantFetch: true},
		{name: "empty stored etag", remote: "v1", stored: &entity.Download{DocID: "20032062"}, wantFetch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			downloads := newFakeDownloads()
			if tt.stored != nil {
				downloads.byDocID[tt.stored.DocID] = tt.stored
			}
			cache := NewFingerprintCache(&fakeProber{etag: tt.remote}, downloads, time.Minute, nil)

			decision, err := cache.Decide(context.Background(), "20032062", 2025, false)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFetch, decision.Fetch)
			assert.Equal(t, tt.remote, decision.RemoteETag)
			assert.Equal(t, tt.stored, decision.Stored)
		})
	}
}

func TestDecide_ForceSkipsProbe(t *testing.T) {
	prober := &fakeProber{err: errors.New("503 service unavailable")}
	downloads := newFakeDownloads()
	downloads.byDocID["20032062"] = &entity.Download{ID: 1, DocID: "20032062", ETag: "v1"}
	cache := NewFingerprintCache(prober, downloads, time.Minute, nil)

	decision, err := cache.Decide(context.Background(), "20032062", 2025, true)
	require.NoError(t, err)
	assert.True(t, decision.Fetch)
	assert.Zero(t, prober.calls)
}

func TestDecide_ProbeFailureNeverFetches(t *testing.T) {
	prober := &fakeProber{err: errors.New("503 service unavailable")}
	cache := NewFingerprintCache(prober, newFakeDownloads(), time.Minute, nil)

	decision, err := cache.Decide(context.Background(), "20032062", 2025, false)
	require.Error(t, err)
	assert.Nil(t, decision)
	assert.Contains(t, err.Error(), "probe etag for 20032062")
}

func TestDecide_MemoizesProbes(t *testing.T) {
	prober := &fakeProber{etag: "v1"}
	cache := NewFingerprintCache(prober, newFakeDownloads(), time.Minute, nil)

	for i := 0; i < 3; i++ {
		_, err := cache.Decide(context.Background(), "20032062", 2025, false)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, prober.calls)

	// A different document misses the memo.
	_, err := cache.Decide(context.Background(), "10063241", 2025, false)
	require.NoError(t, err)
	assert.Equal(t, 2, prober.calls)
}

func TestDecide_FailedProbeIsNotMemoized(t *testing.T) {
	prober := &fakeProber{err: errors.New("timeout")}
	cache := NewFingerprintCache(prober, newFakeDownloads(), time.Minute, nil)

	_, err := cache.Decide(context.Background(), "20032062", 2025, false)
	require.Error(t, err)

	prober.err = nil
	prober.etag = "v1"
	decision, err := cache.Decide(context.Background(), "20032062", 2025, false)
	require.NoError(t, err)
	assert.Equal(t, "v1", decision.RemoteETag)
	assert.Equal(t, 2, prober.calls)
}
