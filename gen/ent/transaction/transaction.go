// Code generated by ent, DO NOT EDIT.

package transaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the transaction type in the database.
	Label = "transaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldDocID holds the string denoting the doc_id field in the database.
	FieldDocID = "doc_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldAssetName holds the string denoting the asset_name field in the database.
	FieldAssetName = "asset_name"
	// FieldAssetType holds the string denoting the asset_type field in the database.
	FieldAssetType = "asset_type"
	// FieldFilingStatus holds the string denoting the filing_status field in the database.
	FieldFilingStatus = "filing_status"
	// FieldTradeType holds the string denoting the trade_type field in the database.
	FieldTradeType = "trade_type"
	// FieldAmountRange holds the string denoting the amount_range field in the database.
	FieldAmountRange = "amount_range"
	// FieldTradeDate holds the string denoting the trade_date field in the database.
	FieldTradeDate = "trade_date"
	// FieldNotificationDate holds the string denoting the notification_date field in the database.
	FieldNotificationDate = "notification_date"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeReport holds the string denoting the report edge name in mutations.
	EdgeReport = "report"
	// Table holds the table name of the transaction in the database.
	Table = "transactions"
	// ReportTable is the table that holds the report relation/edge.
	ReportTable = "transactions"
	// ReportInverseTable is the table name for the Report entity.
	// It exists in this package in order to avoid circular dependency with the "report" package.
	ReportInverseTable = "reports"
	// ReportColumn is the table column denoting the report relation/edge.
	ReportColumn = "report_id"
)

// Columns holds all SQL columns for transaction fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldDocID,
	FieldPosition,
	FieldOwner,
	FieldAssetName,
	FieldAssetType,
	FieldFilingStatus,
	FieldTradeType,
	FieldAmountRange,
	FieldTradeDate,
	FieldNotificationDate,
	FieldSourceURL,
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
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// OwnerValidator is a validator for the "owner" field. It is called by the builders before save.
	OwnerValidator func(string) error
	// AssetNameValidator is a validator for the "asset_name" field. It is called by the builders before save.
	AssetNameValidator func(string) error
	// FilingStatusValidator is a validator for the "filing_status" field. It is called by the builders before save.
	FilingStatusValidator func(string) error
	// TradeTypeValidator is a validator for the "trade_type" field. It is called by the builders before save.
	TradeTypeValidator func(string) error
	// AmountRangeValidator is a validator for the "amount_range" field. It is called by the builders before save.
	AmountRangeValidator func(string) error
	// SourceURLValidator is a validator for the "source_url" field. It is called by the builders before save.
	SourceURLValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Transaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByDocID orders the results by the doc_id field.
func ByDocID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
}

// ByAssetName orders the results by the asset_name field.
func ByAssetName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssetName, opts...).ToFunc()
}

// ByAssetType orders the results by the asset_type field.
func ByAssetType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssetType, opts...).ToFunc()
}

// ByFilingStatus orders the results by the filing_status field.
func ByFilingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilingStatus, opts...).ToFunc()
}

// ByTradeType orders the results by the trade_type field.
func ByTradeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTradeType, opts...).ToFunc()
}

// ByAmountRange orders the results by the amount_range field.
func ByAmountRange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountRange, opts...).ToFunc()
}

// ByTradeDate orders the results by the trade_date field.
func ByTradeDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTradeDate, opts...).ToFunc()
}

// ByNotificationDate orders the results by the notification_date field.
func ByNotificationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotificationDate, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReportField orders the results by report field.
func ByReportField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReportStep(), sql.OrderByField(field, opts...))
	}
}
func newReportStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReportInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
	)
}
