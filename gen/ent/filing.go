// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mholloway/ptr-tracker/gen/ent/filing"
)

// Filing is the model entity for the Filing schema.
type Filing struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocID holds the value of the "doc_id" field.
	DocID string `json:"doc_id,omitempty"`
	// Prefix holds the value of the "prefix" field.
	Prefix string `json:"prefix,omitempty"`
	// Last holds the value of the "last" field.
	Last string `json:"last,omitempty"`
	// First holds the value of the "first" field.
	First string `json:"first,omitempty"`
	// Suffix holds the value of the "suffix" field.
	Suffix string `json:"suffix,omitempty"`
	// FilingType holds the value of the "filing_type" field.
	FilingType string `json:"filing_type,omitempty"`
	// StateDst holds the value of the "state_dst" field.
	StateDst string `json:"state_dst,omitempty"`
	// Year holds the value of the "year" field.
	Year int `json:"year,omitempty"`
	// FilingDate holds the value of the "filing_date" field.
	FilingDate time.Time `json:"filing_date,omitempty"`
	// RawRow holds the value of the "raw_row" field.
	RawRow string `json:"raw_row,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Filing) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case filing.FieldID, filing.FieldYear:
			values[i] = new(sql.NullInt64)
		case filing.FieldDocID, filing.FieldPrefix, filing.FieldLast, filing.FieldFirst, filing.FieldSuffix, filing.FieldFilingType, filing.FieldStateDst, filing.FieldRawRow:
			values[i] = new(sql.NullString)
		case filing.FieldFilingDate, filing.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Filing fields.
func (_m *Filing) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case filing.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case filing.FieldDocID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_id", values[i])
			} else if value.Valid {
				_m.DocID = value.String
			}
		case filing.FieldPrefix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prefix", values[i])
			} else if value.Valid {
				_m.Prefix = value.String
			}
		case filing.FieldLast:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last", values[i])
			} else if value.Valid {
				_m.Last = value.String
			}
		case filing.FieldFirst:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first", values[i])
			} else if value.Valid {
				_m.First = value.String
			}
		case filing.FieldSuffix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suffix", values[i])
			} else if value.Valid {
				_m.Suffix = value.String
			}
		case filing.FieldFilingType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filing_type", values[i])
			} else if value.Valid {
				_m.FilingType = value.String
			}
		case filing.FieldStateDst:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_dst", values[i])
			} else if value.Valid {
				_m.StateDst = value.String
			}
		case filing.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = int(value.Int64)
			}
		case filing.FieldFilingDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field filing_date", values[i])
			} else if value.Valid {
				_m.FilingDate = value.Time
			}
		case filing.FieldRawRow:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_row", values[i])
			} else if value.Valid {
				_m.RawRow = value.String
			}
		case filing.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Filing.
// This includes values selected through modifiers, order, etc.
func (_m *Filing) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Filing.
// Note that you need to call Filing.Unwrap() before calling this method if this Filing
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Filing) Update() *FilingUpdateOne {
	return NewFilingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Filing entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Filing) Unwrap() *Filing {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Filing is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Filing) String() string {
	var builder strings.Builder
	builder.WriteString("Filing(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("doc_id=")
	builder.WriteString(_m.DocID)
	builder.WriteString(", ")
	builder.WriteString("prefix=")
	builder.WriteString(_m.Prefix)
	builder.WriteString(", ")
	builder.WriteString("last=")
	builder.WriteString(_m.Last)
	builder.WriteString(", ")
	builder.WriteString("first=")
	builder.WriteString(_m.First)
	builder.WriteString(", ")
	builder.WriteString("suffix=")
	builder.WriteString(_m.Suffix)
	builder.WriteString(", ")
	builder.WriteString("filing_type=")
	builder.WriteString(_m.FilingType)
	builder.WriteString(", ")
	builder.WriteString("state_dst=")
	builder.WriteString(_m.StateDst)
	builder.WriteString(", ")
	builder.WriteString("year=")
	builder.WriteString(fmt.Sprintf("%v", _m.Year))
	builder.WriteString(", ")
	builder.WriteString("filing_date=")
	builder.WriteString(_m.FilingDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("raw_row=")
	builder.WriteString(_m.RawRow)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Filings is a parsable slice of Filing.
type Filings []*Filing
