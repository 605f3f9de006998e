// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mholloway/ptr-tracker/gen/ent/predicate"
	"github.com/mholloway/ptr-tracker/gen/ent/report"
	"github.com/mholloway/ptr-tracker/gen/ent/transaction"
)

// TransactionUpdate is the builder for updating Transaction entities.
type TransactionUpdate struct {
	config
	hooks    []Hook
	mutation *TransactionMutation
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdate) Where(ps ...predicate.Transaction) *TransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *TransactionUpdate) SetReportID(v uuid.UUID) *TransactionUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableReportID(v *uuid.UUID) *TransactionUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *TransactionUpdate) SetDocID(v string) *TransactionUpdate {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableDocID(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *TransactionUpdate) SetPosition(v int) *TransactionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillablePosition(v *int) *TransactionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *TransactionUpdate) AddPosition(v int) *TransactionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *TransactionUpdate) SetOwner(v string) *TransactionUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableOwner(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *TransactionUpdate) ClearOwner() *TransactionUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// SetAssetName sets the "asset_name" field.
func (_u *TransactionUpdate) SetAssetName(v string) *TransactionUpdate {
	_u.mutation.SetAssetName(v)
	return _u
}

// SetNillableAssetName sets the "asset_name" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableAssetName(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetAssetName(*v)
	}
	return _u
}

// SetAssetType sets the "asset_type" field.
func (_u *TransactionUpdate) SetAssetType(v string) *TransactionUpdate {
	_u.mutation.SetAssetType(v)
	return _u
}

// SetNillableAssetType sets the "asset_type" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableAssetType(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetAssetType(*v)
	}
	return _u
}

// ClearAssetType clears the value of the "asset_type" field.
func (_u *TransactionUpdate) ClearAssetType() *TransactionUpdate {
	_u.mutation.ClearAssetType()
	return _u
}

// SetFilingStatus sets the "filing_status" field.
func (_u *TransactionUpdate) SetFilingStatus(v string) *TransactionUpdate {
	_u.mutation.SetFilingStatus(v)
	return _u
}

// SetNillableFilingStatus sets the "filing_status" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableFilingStatus(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetFilingStatus(*v)
	}
	return _u
}

// SetTradeType sets the "trade_type" field.
func (_u *TransactionUpdate) SetTradeType(v string) *TransactionUpdate {
	_u.mutation.SetTradeType(v)
	return _u
}

// SetNillableTradeType sets the "trade_type" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableTradeType(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetTradeType(*v)
	}
	return _u
}

// SetAmountRange sets the "amount_range" field.
func (_u *TransactionUpdate) SetAmountRange(v string) *TransactionUpdate {
	_u.mutation.SetAmountRange(v)
	return _u
}

// SetNillableAmountRange sets the "amount_range" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableAmountRange(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetAmountRange(*v)
	}
	return _u
}

// SetTradeDate sets the "trade_date" field.
func (_u *TransactionUpdate) SetTradeDate(v time.Time) *TransactionUpdate {
	_u.mutation.SetTradeDate(v)
	return _u
}

// SetNillableTradeDate sets the "trade_date" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableTradeDate(v *time.Time) *TransactionUpdate {
	if v != nil {
		_u.SetTradeDate(*v)
	}
	return _u
}

// SetNotificationDate sets the "notification_date" field.
func (_u *TransactionUpdate) SetNotificationDate(v time.Time) *TransactionUpdate {
	_u.mutation.SetNotificationDate(v)
	return _u
}

// SetNillableNotificationDate sets the "notification_date" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableNotificationDate(v *time.Time) *TransactionUpdate {
	if v != nil {
		_u.SetNotificationDate(*v)
	}
	return _u
}

// ClearNotificationDate clears the value of the "notification_date" field.
func (_u *TransactionUpdate) ClearNotificationDate() *TransactionUpdate {
	_u.mutation.ClearNotificationDate()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *TransactionUpdate) SetSourceURL(v string) *TransactionUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableSourceURL(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TransactionUpdate) SetCreatedAt(v time.Time) *TransactionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCreatedAt(v *time.Time) *TransactionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *TransactionUpdate) SetReport(v *Report) *TransactionUpdate {
	return _u.SetReportID(v.ID)
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdate) Mutation() *TransactionMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *TransactionUpdate) ClearReport() *TransactionUpdate {
	_u.mutation.ClearReport()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdate) check() error {
	if v, ok := _u.mutation.DocID(); ok {
		if err := transaction.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "Transaction.doc_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := transaction.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Transaction.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Owner(); ok {
		if err := transaction.OwnerValidator(v); err != nil {
			return &ValidationError{Name: "owner", err: fmt.Errorf(`ent: validator failed for field "Transaction.owner": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssetName(); ok {
		if err := transaction.AssetNameValidator(v); err != nil {
			return &ValidationError{Name: "asset_name", err: fmt.Errorf(`ent: validator failed for field "Transaction.asset_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilingStatus(); ok {
		if err := transaction.FilingStatusValidator(v); err != nil {
			return &ValidationError{Name: "filing_status", err: fmt.Errorf(`ent: validator failed for field "Transaction.filing_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TradeType(); ok {
		if err := transaction.TradeTypeValidator(v); err != nil {
			return &ValidationError{Name: "trade_type", err: fmt.Errorf(`ent: validator failed for field "Transaction.trade_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountRange(); ok {
		if err := transaction.AmountRangeValidator(v); err != nil {
			return &ValidationError{Name: "amount_range", err: fmt.Errorf(`ent: validator failed for field "Transaction.amount_range": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceURL(); ok {
		if err := transaction.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "Transaction.source_url": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transaction.report"`)
	}
	return nil
}

func (_u *TransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocID(); ok {
		_spec.SetField(transaction.FieldDocID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(transaction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(transaction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(transaction.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(transaction.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.AssetName(); ok {
		_spec.SetField(transaction.FieldAssetName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssetType(); ok {
		_spec.SetField(transaction.FieldAssetType, field.TypeString, value)
	}
	if _u.mutation.AssetTypeCleared() {
		_spec.ClearField(transaction.FieldAssetType, field.TypeString)
	}
	if value, ok := _u.mutation.FilingStatus(); ok {
		_spec.SetField(transaction.FieldFilingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TradeType(); ok {
		_spec.SetField(transaction.FieldTradeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AmountRange(); ok {
		_spec.SetField(transaction.FieldAmountRange, field.TypeString, value)
	}
	if value, ok := _u.mutation.TradeDate(); ok {
		_spec.SetField(transaction.FieldTradeDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NotificationDate(); ok {
		_spec.SetField(transaction.FieldNotificationDate, field.TypeTime, value)
	}
	if _u.mutation.NotificationDateCleared() {
		_spec.ClearField(transaction.FieldNotificationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(transaction.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.ReportTable,
			Columns: []string{transaction.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.ReportTable,
			Columns: []string{transaction.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransactionUpdateOne is the builder for updating a single Transaction entity.
type TransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransactionMutation
}

// SetReportID sets the "report_id" field.
func (_u *TransactionUpdateOne) SetReportID(v uuid.UUID) *TransactionUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableReportID(v *uuid.UUID) *TransactionUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *TransactionUpdateOne) SetDocID(v string) *TransactionUpdateOne {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableDocID(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *TransactionUpdateOne) SetPosition(v int) *TransactionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillablePosition(v *int) *TransactionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *TransactionUpdateOne) AddPosition(v int) *TransactionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *TransactionUpdateOne) SetOwner(v string) *TransactionUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableOwner(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *TransactionUpdateOne) ClearOwner() *TransactionUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// SetAssetName sets the "asset_name" field.
func (_u *TransactionUpdateOne) SetAssetName(v string) *TransactionUpdateOne {
	_u.mutation.SetAssetName(v)
	return _u
}

// SetNillableAssetName sets the "asset_name" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableAssetName(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetAssetName(*v)
	}
	return _u
}

// SetAssetType sets the "asset_type" field.
func (_u *TransactionUpdateOne) SetAssetType(v string) *TransactionUpdateOne {
	_u.mutation.SetAssetType(v)
	return _u
}

// SetNillableAssetType sets the "asset_type" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableAssetType(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetAssetType(*v)
	}
	return _u
}

// ClearAssetType clears the value of the "asset_type" field.
func (_u *TransactionUpdateOne) ClearAssetType() *TransactionUpdateOne {
	_u.mutation.ClearAssetType()
	return _u
}

// SetFilingStatus sets the "filing_status" field.
func (_u *TransactionUpdateOne) SetFilingStatus(v string) *TransactionUpdateOne {
	_u.mutation.SetFilingStatus(v)
	return _u
}

// SetNillableFilingStatus sets the "filing_status" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableFilingStatus(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetFilingStatus(*v)
	}
	return _u
}

// SetTradeType sets the "trade_type" field.
func (_u *TransactionUpdateOne) SetTradeType(v string) *TransactionUpdateOne {
	_u.mutation.SetTradeType(v)
	return _u
}

// SetNillableTradeType sets the "trade_type" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableTradeType(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetTradeType(*v)
	}
	return _u
}

// SetAmountRange sets the "amount_range" field.
func (_u *TransactionUpdateOne) SetAmountRange(v string) *TransactionUpdateOne {
	_u.mutation.SetAmountRange(v)
	return _u
}

// SetNillableAmountRange sets the "amount_range" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableAmountRange(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetAmountRange(*v)
	}
	return _u
}

// SetTradeDate sets the "trade_date" field.
func (_u *TransactionUpdateOne) SetTradeDate(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetTradeDate(v)
	return _u
}

// SetNillableTradeDate sets the "trade_date" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableTradeDate(v *time.Time) *TransactionUpdateOne {
	if v != nil {
		_u.SetTradeDate(*v)
	}
	return _u
}

// SetNotificationDate sets the "notification_date" field.
func (_u *TransactionUpdateOne) SetNotificationDate(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetNotificationDate(v)
	return _u
}

// SetNillableNotificationDate sets the "notification_date" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableNotificationDate(v *time.Time) *TransactionUpdateOne {
	if v != nil {
		_u.SetNotificationDate(*v)
	}
	return _u
}

// ClearNotificationDate clears the value of the "notification_date" field.
func (_u *TransactionUpdateOne) ClearNotificationDate() *TransactionUpdateOne {
	_u.mutation.ClearNotificationDate()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *TransactionUpdateOne) SetSourceURL(v string) *TransactionUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableSourceURL(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TransactionUpdateOne) SetCreatedAt(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCreatedAt(v *time.Time) *TransactionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *TransactionUpdateOne) SetReport(v *Report) *TransactionUpdateOne {
	return _u.SetReportID(v.ID)
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdateOne) Mutation() *TransactionMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *TransactionUpdateOne) ClearReport() *TransactionUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdateOne) Where(ps ...predicate.Transaction) *TransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransactionUpdateOne) Select(field string, fields ...string) *TransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transaction entity.
func (_u *TransactionUpdateOne) Save(ctx context.Context) (*Transaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdateOne) SaveX(ctx context.Context) *Transaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdateOne) check() error {
	if v, ok := _u.mutation.DocID(); ok {
		if err := transaction.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "Transaction.doc_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := transaction.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Transaction.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Owner(); ok {
		if err := transaction.OwnerValidator(v); err != nil {
			return &ValidationError{Name: "owner", err: fmt.Errorf(`ent: validator failed for field "Transaction.owner": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssetName(); ok {
		if err := transaction.AssetNameValidator(v); err != nil {
			return &ValidationError{Name: "asset_name", err: fmt.Errorf(`ent: validator failed for field "Transaction.asset_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilingStatus(); ok {
		if err := transaction.FilingStatusValidator(v); err != nil {
			return &ValidationError{Name: "filing_status", err: fmt.Errorf(`ent: validator failed for field "Transaction.filing_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TradeType(); ok {
		if err := transaction.TradeTypeValidator(v); err != nil {
			return &ValidationError{Name: "trade_type", err: fmt.Errorf(`ent: validator failed for field "Transaction.trade_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountRange(); ok {
		if err := transaction.AmountRangeValidator(v); err != nil {
			return &ValidationError{Name: "amount_range", err: fmt.Errorf(`ent: validator failed for field "Transaction.amount_range": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceURL(); ok {
		if err := transaction.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "Transaction.source_url": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transaction.report"`)
	}
	return nil
}

func (_u *TransactionUpdateOne) sqlSave(ctx context.Context) (_node *Transaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transaction.FieldID)
		for _, f := range fields {
			if !transaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocID(); ok {
		_spec.SetField(transaction.FieldDocID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(transaction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(transaction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(transaction.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(transaction.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.AssetName(); ok {
		_spec.SetField(transaction.FieldAssetName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssetType(); ok {
		_spec.SetField(transaction.FieldAssetType, field.TypeString, value)
	}
	if _u.mutation.AssetTypeCleared() {
		_spec.ClearField(transaction.FieldAssetType, field.TypeString)
	}
	if value, ok := _u.mutation.FilingStatus(); ok {
		_spec.SetField(transaction.FieldFilingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TradeType(); ok {
		_spec.SetField(transaction.FieldTradeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AmountRange(); ok {
		_spec.SetField(transaction.FieldAmountRange, field.TypeString, value)
	}
	if value, ok := _u.mutation.TradeDate(); ok {
		_spec.SetField(transaction.FieldTradeDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NotificationDate(); ok {
		_spec.SetField(transaction.FieldNotificationDate, field.TypeTime, value)
	}
	if _u.mutation.NotificationDateCleared() {
		_spec.ClearField(transaction.FieldNotificationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(transaction.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.ReportTable,
			Columns: []string{transaction.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.ReportTable,
			Columns: []string{transaction.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Transaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
