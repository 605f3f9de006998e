// Code generated by ent, DO NOT EDIT.

package filing

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the filing type in the database.
	Label = "filing"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocID holds the string denoting the doc_id field in the database.
	FieldDocID = "doc_id"
	// FieldPrefix holds the string denoting the prefix field in the database.
	FieldPrefix = "prefix"
	// FieldLast holds the string denoting the last field in the database.
	FieldLast = "last"
	// FieldFirst holds the string denoting the first field in the database.
	FieldFirst = "first"
	// FieldSuffix holds the string denoting the suffix field in the database.
	FieldSuffix = "suffix"
	// FieldFilingType holds the string denoting the filing_type field in the database.
	FieldFilingType = "filing_type"
	// FieldStateDst holds the string denoting the state_dst field in the database.
	FieldStateDst = "state_dst"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldFilingDate holds the string denoting the filing_date field in the database.
	FieldFilingDate = "filing_date"
	// FieldRawRow holds the string denoting the raw_row field in the database.
	FieldRawRow = "raw_row"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the filing in the database.
	Table = "filings"
)

// Columns holds all SQL columns for filing fields.
var Columns = []string{
	FieldID,
	FieldDocID,
	FieldPrefix,
	FieldLast,
	FieldFirst,
	FieldSuffix,
	FieldFilingType,
	FieldStateDst,
	FieldYear,
	FieldFilingDate,
	FieldRawRow,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DocIDValidator is a validator for the "doc_id" field. It is called by the builders before save.
	DocIDValidator func(string) error
	// LastValidator is a validator for the "last" field. It is called by the builders before save.
	LastValidator func(string) error
	// FilingTypeValidator is a validator for the "filing_type" field. It is called by the builders before save.
	FilingTypeValidator func(string) error
	// YearValidator is a validator for the "year" field. It is called by the builders before save.
	YearValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Filing queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocID orders the results by the doc_id field.
func ByDocID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocID, opts...).ToFunc()
}

// ByPrefix orders the results by the prefix field.
func ByPrefix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrefix, opts...).ToFunc()
}

// ByLast orders the results by the last field.
func ByLast(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLast, opts...).ToFunc()
}

// ByFirst orders the results by the first field.
func ByFirst(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirst, opts...).ToFunc()
}

// BySuffix orders the results by the suffix field.
func BySuffix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuffix, opts...).ToFunc()
}

// ByFilingType orders the results by the filing_type field.
func ByFilingType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilingType, opts...).ToFunc()
}

// ByStateDst orders the results by the state_dst field.
func ByStateDst(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateDst, opts...).ToFunc()
}

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// ByFilingDate orders the results by the filing_date field.
func ByFilingDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilingDate, opts...).ToFunc()
}

// ByRawRow orders the results by the raw_row field.
func ByRawRow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawRow, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
