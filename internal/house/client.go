package house

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/store"
)

// StoredResponse describes a document fetched from the clerk site and
// written to blob storage.
type StoredResponse struct {
	URI  string
	ETag string
}

// Config holds transport settings for the clerk site.
type Config struct {
	// BaseURL overrides the public clerk site, used by tests.
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// StoragePrefix is prepended to storage keys to form blob URIs,
	// e.g. "s3://ptr-tracker" or "file:///var/data".
	StoragePrefix string
}

// Client downloads filing lists and PTR documents from the House clerk's
// public disclosure site and streams them into blob storage.
type Client struct {
	cfg    Config
	http   *http.Client
	blobs  store.BlobStore
	logger *slog.Logger
}

func NewClient(cfg Config, blobs store.BlobStore, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = constants.DisclosureBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "ptr-tracker/1.0"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		blobs:  blobs,
		logger: logger,
	}
}

// ProbeFilingListETag issues a HEAD request for a year's filing-list ZIP
// and returns the reported ETag. An empty string means the server did not
// report one.
func (c *Client) ProbeFilingListETag(ctx context.Context, year int) (string, error) {
	return c.head(ctx, c.filingListURL(year))
}

// ProbePtrETag issues a HEAD request for one PTR document.
func (c *Client) ProbePtrETag(ctx context.Context, docID string, year int) (string, error) {
	return c.head(ctx, c.ptrDocURL(docID, year))
}

// FetchFilingList downloads a year's filing-list ZIP into blob storage.
func (c *Client) FetchFilingList(ctx context.Context, year int) (*StoredResponse, error) {
	uri := c.uriFor(constants.FilingListStorageKey(year))
	return c.fetch(ctx, c.filingListURL(year), uri, "application/zip")
}

// FetchPtr downloads one PTR document PDF into blob storage.
func (c *Client) FetchPtr(ctx context.Context, docID string, year int) (*StoredResponse, error) {
	uri := c.uriFor(constants.PtrPdfStorageKey(docID, year))
	return c.fetch(ctx, c.ptrDocURL(docID, year), uri, "application/pdf")
}

func (c *Client) head(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return "", fmt.Errorf("build HEAD request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("HEAD %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HEAD %s: unexpected status %d", url, resp.StatusCode)
	}

	etag := resp.Header.Get("ETag")
	c.logger.Debug("house.probe.ok", "url", url, "etag", etag)
	return etag, nil
}

func (c *Client) fetch(ctx context.Context, url, storageURI, contentType string) (*StoredResponse, error) {
	c.logger.Info("house.fetch.start", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build GET request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := c.blobs.Put(ctx, storageURI, resp.Body, resp.ContentLength, contentType); err != nil {
		return nil, fmt.Errorf("store %s: %w", storageURI, err)
	}

	etag := resp.Header.Get("ETag")
	c.logger.Info("house.fetch.ok", "url", url, "uri", storageURI, "etag", etag, "bytes", resp.ContentLength)
	return &StoredResponse{URI: storageURI, ETag: etag}, nil
}

func (c *Client) filingListURL(year int) string {
	return fmt.Sprintf("%s%s/%dFD.zip", c.cfg.BaseURL, constants.FilingListPath, year)
}

func (c *Client) ptrDocURL(docID string, year int) string {
	return fmt.Sprintf("%s%s/%d/%s.pdf", c.cfg.BaseURL, constants.PtrPath, year, docID)
}

func (c *Client) uriFor(key string) string {
	return strings.TrimRight(c.cfg.StoragePrefix, "/") + "/" + key
}
