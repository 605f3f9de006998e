package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

// Prober is the HEAD-probe side of the clerk client.
type Prober interface {
	ProbePtrETag(ctx context.Context, docID string, year int) (string, error)
}

// DownloadStore is the download-record persistence the pipeline needs.
type DownloadStore interface {
	GetByDocID(ctx context.Context, docID string) (*entity.Download, error)
	Upsert(ctx context.Context, d *entity.Download) (*entity.Download, error)
}

// FetchDecision says whether a document's bytes must be re-downloaded and
// what the remote currently reports as its fingerprint.
type FetchDecision struct {
	Fetch      bool
	RemoteETag string
	// Stored is the existing download record, nil when none exists.
	Stored *entity.Download
}

// FingerprintCache decides whether a remote document changed since it was
// last fetched, by comparing HEAD-probed ETags against stored ones. Probes
// are memoized for a short TTL so a batch run does not hammer the clerk
// site with repeated HEADs for the same document.
type FingerprintCache struct {
	prober    Prober
	downloads DownloadStore
	probes    *gocache.Cache
	logger    *slog.Logger
}

func NewFingerprintCache(prober Prober, downloads DownloadStore, probeTTL time.Duration, logger *slog.Logger) *FingerprintCache {
	if logger == nil {
		logger = slog.Default()
	}
	if probeTTL <= 0 {
		probeTTL = 10 * time.Minute
	}
	return &FingerprintCache{
		prober:    prober,
		downloads: downloads,
		probes:    gocache.New(probeTTL, probeTTL),
		logger:    logger,
	}
}

// Decide probes the remote ETag and compares it with the stored download.
// A forced fetch skips the probe entirely: the GET response carries the
// fresh ETag, and a dead HEAD endpoint must not block a fetch the caller
// demanded. On the non-forced path a failed probe is never treated as
// "changed": the error is surfaced and no fetch happens. An empty remote
// ETag cannot prove anything, so the document is re-fetched.
func (c *FingerprintCache) Decide(ctx context.Context, docID string, year int, force bool) (*FetchDecision, error) {
	if force {
		return &FetchDecision{Fetch: true}, nil
	}

	remote, err := c.probe(ctx, docID, year)
	if err != nil {
		return nil, fmt.Errorf("probe etag for %s: %w", docID, err)
	}

	stored, err := c.downloads.GetByDocID(ctx, docID)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("load download record for %s: %w", docID, err)
	}

	decision := &FetchDecision{RemoteETag: remote, Stored: stored}
	switch {
	case stored == nil:
		decision.Fetch = true
	case remote == "" || stored.ETag == "":
		decision.Fetch = true
	case stored.ETag != remote:
		decision.Fetch = true
	default:
		c.logger.Debug("pipeline.cache.unchanged", "doc_id", docID, "etag", remote)
	}
	return decision, nil
}

func (c *FingerprintCache) probe(ctx context.Context, docID string, year int) (string, error) {
	if v, ok := c.probes.Get(docID); ok {
		return v.(string), nil
	}
	etag, err := c.prober.ProbePtrETag(ctx, docID, year)
	if err != nil {
		return "", err
	}
	c.probes.Set(docID, etag, gocache.DefaultExpiration)
	return etag, nil
}
