// Code generated by ent, DO NOT EDIT.

package ocrresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the ocrresult type in the database.
	Label = "ocr_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocID holds the string denoting the doc_id field in the database.
	FieldDocID = "doc_id"
	// FieldDownloadID holds the string denoting the download_id field in the database.
	FieldDownloadID = "download_id"
	// FieldStorageURI holds the string denoting the storage_uri field in the database.
	FieldStorageURI = "storage_uri"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDownload holds the string denoting the download edge name in mutations.
	EdgeDownload = "download"
	// Table holds the table name of the ocrresult in the database.
	Table = "ocr_results"
	// DownloadTable is the table that holds the download relation/edge.
	DownloadTable = "ocr_results"
	// DownloadInverseTable is the table name for the Download entity.
	// It exists in this package in order to avoid circular dependency with the "download" package.
	DownloadInverseTable = "downloads"
	// DownloadColumn is the table column denoting the download relation/edge.
	DownloadColumn = "download_id"
)

// Columns holds all SQL columns for ocrresult fields.
var Columns = []string{
	FieldID,
	FieldDocID,
	FieldDownloadID,
	FieldStorageURI,
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
	// StorageURIValidator is a validator for the "storage_uri" field. It is called by the builders before save.
	StorageURIValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the OcrResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocID orders the results by the doc_id field.
func ByDocID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocID, opts...).ToFunc()
}

// ByDownloadID orders the results by the download_id field.
func ByDownloadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDownloadID, opts...).ToFunc()
}

// ByStorageURI orders the results by the storage_uri field.
func ByStorageURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageURI, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDownloadField orders the results by download field.
func ByDownloadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDownloadStep(), sql.OrderByField(field, opts...))
	}
}
func newDownloadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DownloadInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DownloadTable, DownloadColumn),
	)
}
