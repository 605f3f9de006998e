// Code generated by ent, DO NOT EDIT.

package transaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mholloway/ptr-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldReportID, v))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldDocID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldPosition, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldOwner, v))
}

// AssetName applies equality check predicate on the "asset_name" field. It's identical to AssetNameEQ.
func AssetName(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldAssetName, v))
}

// AssetType applies equality check predicate on the "asset_type" field. It's identical to AssetTypeEQ.
func AssetType(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldAssetType, v))
}

// FilingStatus applies equality check predicate on the "filing_status" field. It's identical to FilingStatusEQ.
func FilingStatus(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldFilingStatus, v))
}

// TradeType applies equality check predicate on the "trade_type" field. It's identical to TradeTypeEQ.
func TradeType(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldTradeType, v))
}

// AmountRange applies equality check predicate on the "amount_range" field. It's identical to AmountRangeEQ.
func AmountRange(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldAmountRange, v))
}

// TradeDate applies equality check predicate on the "trade_date" field. It's identical to TradeDateEQ.
func TradeDate(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldTradeDate, v))
}

// NotificationDate applies equality check predicate on the "notification_date" field. It's identical to NotificationDateEQ.
func NotificationDate(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldNotificationDate, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSourceURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCreatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldReportID, vs...))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldDocID, vs...))
}

// DocIDGT applies the GT predicate on the "doc_id" field.
func DocIDGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldDocID, v))
}

// DocIDGTE applies the GTE predicate on the "doc_id" field.
func DocIDGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldDocID, v))
}

// DocIDLT applies the LT predicate on the "doc_id" field.
func DocIDLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldDocID, v))
}

// DocIDLTE applies the LTE predicate on the "doc_id" field.
func DocIDLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldDocID, v))
}

// DocIDContains applies the Contains predicate on the "doc_id" field.
func DocIDContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldDocID, v))
}

// DocIDHasPrefix applies the HasPrefix predicate on the "doc_id" field.
func DocIDHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldDocID, v))
}

// DocIDHasSuffix applies the HasSuffix predicate on the "doc_id" field.
func DocIDHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldDocID, v))
}

// DocIDEqualFold applies the EqualFold predicate on the "doc_id" field.
func DocIDEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldDocID, v))
}

// DocIDContainsFold applies the ContainsFold predicate on the "doc_id" field.
func DocIDContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldDocID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldPosition, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerIsNil applies the IsNil predicate on the "owner" field.
func OwnerIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldOwner))
}

// OwnerNotNil applies the NotNil predicate on the "owner" field.
func OwnerNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldOwner))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldOwner, v))
}

// AssetNameEQ applies the EQ predicate on the "asset_name" field.
func AssetNameEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldAssetName, v))
}

// AssetNameNEQ applies the NEQ predicate on the "asset_name" field.
func AssetNameNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldAssetName, v))
}

// AssetNameIn applies the In predicate on the "asset_name" field.
func AssetNameIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldAssetName, vs...))
}

// AssetNameNotIn applies the NotIn predicate on the "asset_name" field.
func AssetNameNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldAssetName, vs...))
}

// AssetNameGT applies the GT predicate on the "asset_name" field.
func AssetNameGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldAssetName, v))
}

// AssetNameGTE applies the GTE predicate on the "asset_name" field.
func AssetNameGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldAssetName, v))
}

// AssetNameLT applies the LT predicate on the "asset_name" field.
func AssetNameLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldAssetName, v))
}

// AssetNameLTE applies the LTE predicate on the "asset_name" field.
func AssetNameLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldAssetName, v))
}

// AssetNameContains applies the Contains predicate on the "asset_name" field.
func AssetNameContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldAssetName, v))
}

// AssetNameHasPrefix applies the HasPrefix predicate on the "asset_name" field.
func AssetNameHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldAssetName, v))
}

// AssetNameHasSuffix applies the HasSuffix predicate on the "asset_name" field.
func AssetNameHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldAssetName, v))
}

// AssetNameEqualFold applies the EqualFold predicate on the "asset_name" field.
func AssetNameEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldAssetName, v))
}

// AssetNameContainsFold applies the ContainsFold predicate on the "asset_name" field.
func AssetNameContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldAssetName, v))
}

// AssetTypeEQ applies the EQ predicate on the "asset_type" field.
func AssetTypeEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldAssetType, v))
}

// AssetTypeNEQ applies the NEQ predicate on the "asset_type" field.
func AssetTypeNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldAssetType, v))
}

// AssetTypeIn applies the In predicate on the "asset_type" field.
func AssetTypeIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldAssetType, vs...))
}

// AssetTypeNotIn applies the NotIn predicate on the "asset_type" field.
func AssetTypeNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldAssetType, vs...))
}

// AssetTypeGT applies the GT predicate on the "asset_type" field.
func AssetTypeGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldAssetType, v))
}

// AssetTypeGTE applies the GTE predicate on the "asset_type" field.
func AssetTypeGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldAssetType, v))
}

// AssetTypeLT applies the LT predicate on the "asset_type" field.
func AssetTypeLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldAssetType, v))
}

// AssetTypeLTE applies the LTE predicate on the "asset_type" field.
func AssetTypeLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldAssetType, v))
}

// AssetTypeContains applies the Contains predicate on the "asset_type" field.
func AssetTypeContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldAssetType, v))
}

// AssetTypeHasPrefix applies the HasPrefix predicate on the "asset_type" field.
func AssetTypeHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldAssetType, v))
}

// AssetTypeHasSuffix applies the HasSuffix predicate on the "asset_type" field.
func AssetTypeHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldAssetType, v))
}

// AssetTypeIsNil applies the IsNil predicate on the "asset_type" field.
func AssetTypeIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldAssetType))
}

// AssetTypeNotNil applies the NotNil predicate on the "asset_type" field.
func AssetTypeNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldAssetType))
}

// AssetTypeEqualFold applies the EqualFold predicate on the "asset_type" field.
func AssetTypeEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldAssetType, v))
}

// AssetTypeContainsFold applies the ContainsFold predicate on the "asset_type" field.
func AssetTypeContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldAssetType, v))
}

// FilingStatusEQ applies the EQ predicate on the "filing_status" field.
func FilingStatusEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldFilingStatus, v))
}

// FilingStatusNEQ applies the NEQ predicate on the "filing_status" field.
func FilingStatusNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldFilingStatus, v))
}

// FilingStatusIn applies the In predicate on the "filing_status" field.
func FilingStatusIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldFilingStatus, vs...))
}

// FilingStatusNotIn applies the NotIn predicate on the "filing_status" field.
func FilingStatusNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldFilingStatus, vs...))
}

// FilingStatusGT applies the GT predicate on the "filing_status" field.
func FilingStatusGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldFilingStatus, v))
}

// FilingStatusGTE applies the GTE predicate on the "filing_status" field.
func FilingStatusGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldFilingStatus, v))
}

// FilingStatusLT applies the LT predicate on the "filing_status" field.
func FilingStatusLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldFilingStatus, v))
}

// FilingStatusLTE applies the LTE predicate on the "filing_status" field.
func FilingStatusLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldFilingStatus, v))
}

// FilingStatusContains applies the Contains predicate on the "filing_status" field.
func FilingStatusContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldFilingStatus, v))
}

// FilingStatusHasPrefix applies the HasPrefix predicate on the "filing_status" field.
func FilingStatusHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldFilingStatus, v))
}

// FilingStatusHasSuffix applies the HasSuffix predicate on the "filing_status" field.
func FilingStatusHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldFilingStatus, v))
}

// FilingStatusEqualFold applies the EqualFold predicate on the "filing_status" field.
func FilingStatusEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldFilingStatus, v))
}

// FilingStatusContainsFold applies the ContainsFold predicate on the "filing_status" field.
func FilingStatusContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldFilingStatus, v))
}

// TradeTypeEQ applies the EQ predicate on the "trade_type" field.
func TradeTypeEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldTradeType, v))
}

// TradeTypeNEQ applies the NEQ predicate on the "trade_type" field.
func TradeTypeNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldTradeType, v))
}

// TradeTypeIn applies the In predicate on the "trade_type" field.
func TradeTypeIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldTradeType, vs...))
}

// TradeTypeNotIn applies the NotIn predicate on the "trade_type" field.
func TradeTypeNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldTradeType, vs...))
}

// TradeTypeGT applies the GT predicate on the "trade_type" field.
func TradeTypeGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldTradeType, v))
}

// TradeTypeGTE applies the GTE predicate on the "trade_type" field.
func TradeTypeGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldTradeType, v))
}

// TradeTypeLT applies the LT predicate on the "trade_type" field.
func TradeTypeLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldTradeType, v))
}

// TradeTypeLTE applies the LTE predicate on the "trade_type" field.
func TradeTypeLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldTradeType, v))
}

// TradeTypeContains applies the Contains predicate on the "trade_type" field.
func TradeTypeContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldTradeType, v))
}

// TradeTypeHasPrefix applies the HasPrefix predicate on the "trade_type" field.
func TradeTypeHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldTradeType, v))
}

// TradeTypeHasSuffix applies the HasSuffix predicate on the "trade_type" field.
func TradeTypeHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldTradeType, v))
}

// TradeTypeEqualFold applies the EqualFold predicate on the "trade_type" field.
func TradeTypeEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldTradeType, v))
}

// TradeTypeContainsFold applies the ContainsFold predicate on the "trade_type" field.
func TradeTypeContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldTradeType, v))
}

// AmountRangeEQ applies the EQ predicate on the "amount_range" field.
func AmountRangeEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldAmountRange, v))
}

// AmountRangeNEQ applies the NEQ predicate on the "amount_range" field.
func AmountRangeNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldAmountRange, v))
}

// AmountRangeIn applies the In predicate on the "amount_range" field.
func AmountRangeIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldAmountRange, vs...))
}

// AmountRangeNotIn applies the NotIn predicate on the "amount_range" field.
func AmountRangeNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldAmountRange, vs...))
}

// AmountRangeGT applies the GT predicate on the "amount_range" field.
func AmountRangeGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldAmountRange, v))
}

// AmountRangeGTE applies the GTE predicate on the "amount_range" field.
func AmountRangeGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldAmountRange, v))
}

// AmountRangeLT applies the LT predicate on the "amount_range" field.
func AmountRangeLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldAmountRange, v))
}

// AmountRangeLTE applies the LTE predicate on the "amount_range" field.
func AmountRangeLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldAmountRange, v))
}

// AmountRangeContains applies the Contains predicate on the "amount_range" field.
func AmountRangeContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldAmountRange, v))
}

// AmountRangeHasPrefix applies the HasPrefix predicate on the "amount_range" field.
func AmountRangeHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldAmountRange, v))
}

// AmountRangeHasSuffix applies the HasSuffix predicate on the "amount_range" field.
func AmountRangeHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldAmountRange, v))
}

// AmountRangeEqualFold applies the EqualFold predicate on the "amount_range" field.
func AmountRangeEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldAmountRange, v))
}

// AmountRangeContainsFold applies the ContainsFold predicate on the "amount_range" field.
func AmountRangeContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldAmountRange, v))
}

// TradeDateEQ applies the EQ predicate on the "trade_date" field.
func TradeDateEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldTradeDate, v))
}

// TradeDateNEQ applies the NEQ predicate on the "trade_date" field.
func TradeDateNEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldTradeDate, v))
}

// TradeDateIn applies the In predicate on the "trade_date" field.
func TradeDateIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldTradeDate, vs...))
}

// TradeDateNotIn applies the NotIn predicate on the "trade_date" field.
func TradeDateNotIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldTradeDate, vs...))
}

// TradeDateGT applies the GT predicate on the "trade_date" field.
func TradeDateGT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldTradeDate, v))
}

// TradeDateGTE applies the GTE predicate on the "trade_date" field.
func TradeDateGTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldTradeDate, v))
}

// TradeDateLT applies the LT predicate on the "trade_date" field.
func TradeDateLT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldTradeDate, v))
}

// TradeDateLTE applies the LTE predicate on the "trade_date" field.
func TradeDateLTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldTradeDate, v))
}

// NotificationDateEQ applies the EQ predicate on the "notification_date" field.
func NotificationDateEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldNotificationDate, v))
}

// NotificationDateNEQ applies the NEQ predicate on the "notification_date" field.
func NotificationDateNEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldNotificationDate, v))
}

// NotificationDateIn applies the In predicate on the "notification_date" field.
func NotificationDateIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldNotificationDate, vs...))
}

// NotificationDateNotIn applies the NotIn predicate on the "notification_date" field.
func NotificationDateNotIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldNotificationDate, vs...))
}

// NotificationDateGT applies the GT predicate on the "notification_date" field.
func NotificationDateGT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldNotificationDate, v))
}

// NotificationDateGTE applies the GTE predicate on the "notification_date" field.
func NotificationDateGTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldNotificationDate, v))
}

// NotificationDateLT applies the LT predicate on the "notification_date" field.
func NotificationDateLT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldNotificationDate, v))
}

// NotificationDateLTE applies the LTE predicate on the "notification_date" field.
func NotificationDateLTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldNotificationDate, v))
}

// NotificationDateIsNil applies the IsNil predicate on the "notification_date" field.
func NotificationDateIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldNotificationDate))
}

// NotificationDateNotNil applies the NotNil predicate on the "notification_date" field.
func NotificationDateNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldNotificationDate))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldSourceURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldCreatedAt, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.NotPredicates(p))
}
