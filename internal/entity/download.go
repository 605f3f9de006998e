package entity

import "time"

// Download records the fetched bytes of one PTR document: where they live in
// the blob store and the content fingerprint they were fetched under. One row
// per DocID; the ETag is overwritten on every fetch, never merged.
type Download struct {
	ID         int64      `json:"id"`
	DocID      string     `json:"doc_id"`
	ETag       string     `json:"etag"`
	StorageURI string     `json:"storage_uri"`
	FetchedAt  time.Time  `json:"fetched_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// OcrResult points at the extracted text for a Download.
type OcrResult struct {
	ID         int64     `json:"id"`
	DocID      string    `json:"doc_id"`
	DownloadID int64     `json:"download_id"`
	StorageURI string    `json:"storage_uri"`
	CreatedAt  time.Time `json:"created_at"`
}
