// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mholloway/ptr-tracker/gen/ent/filinglist"
)

// FilingList is the model entity for the FilingList schema.
type FilingList struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Year holds the value of the "year" field.
	Year int `json:"year,omitempty"`
	// Etag holds the value of the "etag" field.
	Etag *string `json:"etag,omitempty"`
	// StorageURI holds the value of the "storage_uri" field.
	StorageURI string `json:"storage_uri,omitempty"`
	// Parsed holds the value of the "parsed" field.
	Parsed bool `json:"parsed,omitempty"`
	// ParsedAt holds the value of the "parsed_at" field.
	ParsedAt *time.Time `json:"parsed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FilingList) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case filinglist.FieldParsed:
			values[i] = new(sql.NullBool)
		case filinglist.FieldID, filinglist.FieldYear:
			values[i] = new(sql.NullInt64)
		case filinglist.FieldEtag, filinglist.FieldStorageURI:
			values[i] = new(sql.NullString)
		case filinglist.FieldParsedAt, filinglist.FieldCreatedAt, filinglist.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FilingList fields.
func (_m *FilingList) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case filinglist.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case filinglist.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = int(value.Int64)
			}
		case filinglist.FieldEtag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field etag", values[i])
			} else if value.Valid {
				_m.Etag = new(string)
				*_m.Etag = value.String
			}
		case filinglist.FieldStorageURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_uri", values[i])
			} else if value.Valid {
				_m.StorageURI = value.String
			}
		case filinglist.FieldParsed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field parsed", values[i])
			} else if value.Valid {
				_m.Parsed = value.Bool
			}
		case filinglist.FieldParsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_at", values[i])
			} else if value.Valid {
				_m.ParsedAt = new(time.Time)
				*_m.ParsedAt = value.Time
			}
		case filinglist.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case filinglist.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FilingList.
// This includes values selected through modifiers, order, etc.
func (_m *FilingList) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FilingList.
// Note that you need to call FilingList.Unwrap() before calling this method if this FilingList
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FilingList) Update() *FilingListUpdateOne {
	return NewFilingListClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FilingList entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FilingList) Unwrap() *FilingList {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FilingList is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FilingList) String() string {
	var builder strings.Builder
	builder.WriteString("FilingList(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("year=")
	builder.WriteString(fmt.Sprintf("%v", _m.Year))
	builder.WriteString(", ")
	if v := _m.Etag; v != nil {
		builder.WriteString("etag=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("storage_uri=")
	builder.WriteString(_m.StorageURI)
	builder.WriteString(", ")
	builder.WriteString("parsed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parsed))
	builder.WriteString(", ")
	if v := _m.ParsedAt; v != nil {
		builder.WriteString("parsed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FilingLists is a parsable slice of FilingList.
type FilingLists []*FilingList
