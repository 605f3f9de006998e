// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mholloway/ptr-tracker/gen/ent/download"
	"github.com/mholloway/ptr-tracker/gen/ent/ocrresult"
)

// OcrResult is the model entity for the OcrResult schema.
type OcrResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocID holds the value of the "doc_id" field.
	DocID string `json:"doc_id,omitempty"`
	// DownloadID holds the value of the "download_id" field.
	DownloadID int `json:"download_id,omitempty"`
	// StorageURI holds the value of the "storage_uri" field.
	StorageURI string `json:"storage_uri,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OcrResultQuery when eager-loading is set.
	Edges        OcrResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OcrResultEdges holds the relations/edges for other nodes in the graph.
type OcrResultEdges struct {
	// Download holds the value of the download edge.
	Download *Download `json:"download,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DownloadOrErr returns the Download value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OcrResultEdges) DownloadOrErr() (*Download, error) {
	if e.Download != nil {
		return e.Download, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: download.Label}
	}
	return nil, &NotLoadedError{edge: "download"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OcrResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ocrresult.FieldID, ocrresult.FieldDownloadID:
			values[i] = new(sql.NullInt64)
		case ocrresult.FieldDocID, ocrresult.FieldStorageURI:
			values[i] = new(sql.NullString)
		case ocrresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OcrResult fields.
func (_m *OcrResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ocrresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ocrresult.FieldDocID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_id", values[i])
			} else if value.Valid {
				_m.DocID = value.String
			}
		case ocrresult.FieldDownloadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field download_id", values[i])
			} else if value.Valid {
				_m.DownloadID = int(value.Int64)
			}
		case ocrresult.FieldStorageURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_uri", values[i])
			} else if value.Valid {
				_m.StorageURI = value.String
			}
		case ocrresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OcrResult.
// This includes values selected through modifiers, order, etc.
func (_m *OcrResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDownload queries the "download" edge of the OcrResult entity.
func (_m *OcrResult) QueryDownload() *DownloadQuery {
	return NewOcrResultClient(_m.config).QueryDownload(_m)
}

// Update returns a builder for updating this OcrResult.
// Note that you need to call OcrResult.Unwrap() before calling this method if this OcrResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OcrResult) Update() *OcrResultUpdateOne {
	return NewOcrResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OcrResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OcrResult) Unwrap() *OcrResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OcrResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OcrResult) String() string {
	var builder strings.Builder
	builder.WriteString("OcrResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("doc_id=")
	builder.WriteString(_m.DocID)
	builder.WriteString(", ")
	builder.WriteString("download_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DownloadID))
	builder.WriteString(", ")
	builder.WriteString("storage_uri=")
	builder.WriteString(_m.StorageURI)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OcrResults is a parsable slice of OcrResult.
type OcrResults []*OcrResult
