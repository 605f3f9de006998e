// Code generated by ent, DO NOT EDIT.

package filinglist

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the filinglist type in the database.
	Label = "filing_list"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldEtag holds the string denoting the etag field in the database.
	FieldEtag = "etag"
	// FieldStorageURI holds the string denoting the storage_uri field in the database.
	FieldStorageURI = "storage_uri"
	// FieldParsed holds the string denoting the parsed field in the database.
	FieldParsed = "parsed"
	// FieldParsedAt holds the string denoting the parsed_at field in the database.
	FieldParsedAt = "parsed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the filinglist in the database.
	Table = "filing_lists"
)

// Columns holds all SQL columns for filinglist fields.
var Columns = []string{
	FieldID,
	FieldYear,
	FieldEtag,
	FieldStorageURI,
	FieldParsed,
	FieldParsedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// YearValidator is a validator for the "year" field. It is called by the builders before save.
	YearValidator func(int) error
	// StorageURIValidator is a validator for the "storage_uri" field. It is called by the builders before save.
	StorageURIValidator func(string) error
	// DefaultParsed holds the default value on creation for the "parsed" field.
	DefaultParsed bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the FilingList queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// ByEtag orders the results by the etag field.
func ByEtag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEtag, opts...).ToFunc()
}

// ByStorageURI orders the results by the storage_uri field.
func ByStorageURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageURI, opts...).ToFunc()
}

// ByParsed orders the results by the parsed field.
func ByParsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParsed, opts...).ToFunc()
}

// ByParsedAt orders the results by the parsed_at field.
func ByParsedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParsedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
