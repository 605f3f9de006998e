package entity

import (
	"time"
)

// FilingList tracks one year's disclosure index ZIP and its last-known ETag.
type FilingList struct {
	ID         int64      `json:"id"`
	Year       int        `json:"year"`
	ETag       *string    `json:"etag,omitempty"`
	StorageURI string     `json:"storage_uri"`
	Parsed     bool       `json:"parsed"`
	ParsedAt   *time.Time `json:"parsed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// Filing is one row of the yearly filing list. DocID is the source system's
// natural key and is globally unique across years.
type Filing struct {
	ID         int64     `json:"id"`
	DocID      string    `json:"doc_id"`
	Prefix     string    `json:"prefix"`
	Last       string    `json:"last"`
	First      string    `json:"first"`
	Suffix     string    `json:"suffix"`
	FilingType string    `json:"filing_type"`
	StateDst   string    `json:"state_dst"`
	Year       int       `json:"year"`
	FilingDate time.Time `json:"filing_date"`
	RawRow     string    `json:"raw_row"`
	CreatedAt  time.Time `json:"created_at"`
}

// RepresentativeName joins the name columns for display and export.
func (f Filing) RepresentativeName() string {
	name := f.First + " " + f.Last
	if f.Prefix != "" {
		name = f.Prefix + " " + name
	}
	if f.Suffix != "" {
		name = name + " " + f.Suffix
	}
	return name
}

// IsPtr reports whether the row is a periodic transaction report filing.
func (f Filing) IsPtr() bool {
	return f.FilingType == "P"
}
