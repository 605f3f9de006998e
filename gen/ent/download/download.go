// Code generated by ent, DO NOT EDIT.

package download

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the download type in the database.
	Label = "download"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocID holds the string denoting the doc_id field in the database.
	FieldDocID = "doc_id"
	// FieldEtag holds the string denoting the etag field in the database.
	FieldEtag = "etag"
	// FieldStorageURI holds the string denoting the storage_uri field in the database.
	FieldStorageURI = "storage_uri"
	// FieldFetchedAt holds the string denoting the fetched_at field in the database.
	FieldFetchedAt = "fetched_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeOcrResults holds the string denoting the ocr_results edge name in mutations.
	EdgeOcrResults = "ocr_results"
	// Table holds the table name of the download in the database.
	Table = "downloads"
	// OcrResultsTable is the table that holds the ocr_results relation/edge.
	OcrResultsTable = "ocr_results"
	// OcrResultsInverseTable is the table name for the OcrResult entity.
	// It exists in this package in order to avoid circular dependency with the "ocrresult" package.
	OcrResultsInverseTable = "ocr_results"
	// OcrResultsColumn is the table column denoting the ocr_results relation/edge.
	OcrResultsColumn = "download_id"
)

// Columns holds all SQL columns for download fields.
var Columns = []string{
	FieldID,
	FieldDocID,
	FieldEtag,
	FieldStorageURI,
	FieldFetchedAt,
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
	// DocIDValidator is a validator for the "doc_id" field. It is called by the builders before save.
	DocIDValidator func(string) error
	// StorageURIValidator is a validator for the "storage_uri" field. It is called by the builders before save.
	StorageURIValidator func(string) error
	// DefaultFetchedAt holds the default value on creation for the "fetched_at" field.
	DefaultFetchedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Download queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocID orders the results by the doc_id field.
func ByDocID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocID, opts...).ToFunc()
}

// ByEtag orders the results by the etag field.
func ByEtag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEtag, opts...).ToFunc()
}

// ByStorageURI orders the results by the storage_uri field.
func ByStorageURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageURI, opts...).ToFunc()
}

// ByFetchedAt orders the results by the fetched_at field.
func ByFetchedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFetchedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOcrResultsCount orders the results by ocr_results count.
func ByOcrResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOcrResultsStep(), opts...)
	}
}

// ByOcrResults orders the results by ocr_results terms.
func ByOcrResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOcrResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newOcrResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OcrResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OcrResultsTable, OcrResultsColumn),
	)
}
