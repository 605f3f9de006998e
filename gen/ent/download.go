// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mholloway/ptr-tracker/gen/ent/download"
)

// Download is the model entity for the Download schema.
type Download struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocID holds the value of the "doc_id" field.
	DocID string `json:"doc_id,omitempty"`
	// Etag holds the value of the "etag" field.
	Etag string `json:"etag,omitempty"`
	// StorageURI holds the value of the "storage_uri" field.
	StorageURI string `json:"storage_uri,omitempty"`
	// FetchedAt holds the value of the "fetched_at" field.
	FetchedAt time.Time `json:"fetched_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DownloadQuery when eager-loading is set.
	Edges        DownloadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DownloadEdges holds the relations/edges for other nodes in the graph.
type DownloadEdges struct {
	// OcrResults holds the value of the ocr_results edge.
	OcrResults []*OcrResult `json:"ocr_results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OcrResultsOrErr returns the OcrResults value or an error if the edge
// was not loaded in eager-loading.
func (e DownloadEdges) OcrResultsOrErr() ([]*OcrResult, error) {
	if e.loadedTypes[0] {
		return e.OcrResults, nil
	}
	return nil, &NotLoadedError{edge: "ocr_results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Download) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case download.FieldID:
			values[i] = new(sql.NullInt64)
		case download.FieldDocID, download.FieldEtag, download.FieldStorageURI:
			values[i] = new(sql.NullString)
		case download.FieldFetchedAt, download.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Download fields.
func (_m *Download) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case download.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case download.FieldDocID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_id", values[i])
			} else if value.Valid {
				_m.DocID = value.String
			}
		case download.FieldEtag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field etag", values[i])
			} else if value.Valid {
				_m.Etag = value.String
			}
		case download.FieldStorageURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_uri", values[i])
			} else if value.Valid {
				_m.StorageURI = value.String
			}
		case download.FieldFetchedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fetched_at", values[i])
			} else if value.Valid {
				_m.FetchedAt = value.Time
			}
		case download.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Download.
// This includes values selected through modifiers, order, etc.
func (_m *Download) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOcrResults queries the "ocr_results" edge of the Download entity.
func (_m *Download) QueryOcrResults() *OcrResultQuery {
	return NewDownloadClient(_m.config).QueryOcrResults(_m)
}

// Update returns a builder for updating this Download.
// Note that you need to call Download.Unwrap() before calling this method if this Download
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Download) Update() *DownloadUpdateOne {
	return NewDownloadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Download entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Download) Unwrap() *Download {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Download is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Download) String() string {
	var builder strings.Builder
	builder.WriteString("Download(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("doc_id=")
	builder.WriteString(_m.DocID)
	builder.WriteString(", ")
	builder.WriteString("etag=")
	builder.WriteString(_m.Etag)
	builder.WriteString(", ")
	builder.WriteString("storage_uri=")
	builder.WriteString(_m.StorageURI)
	builder.WriteString(", ")
	builder.WriteString("fetched_at=")
	builder.WriteString(_m.FetchedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Downloads is a parsable slice of Download.
type Downloads []*Download
