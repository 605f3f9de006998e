// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mholloway/ptr-tracker/gen/ent/report"
	"github.com/mholloway/ptr-tracker/gen/ent/transaction"
)

// TransactionCreate is the builder for creating a Transaction entity.
type TransactionCreate struct {
	config
	mutation *TransactionMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *TransactionCreate) SetReportID(v uuid.UUID) *TransactionCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetDocID sets the "doc_id" field.
func (_c *TransactionCreate) SetDocID(v string) *TransactionCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *TransactionCreate) SetPosition(v int) *TransactionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetOwner sets the "owner" field.
func (_c *TransactionCreate) SetOwner(v string) *TransactionCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableOwner(v *string) *TransactionCreate {
	if v != nil {
		_c.SetOwner(*v)
	}
	return _c
}

// SetAssetName sets the "asset_name" field.
func (_c *TransactionCreate) SetAssetName(v string) *TransactionCreate {
	_c.mutation.SetAssetName(v)
	return _c
}

// SetAssetType sets the "asset_type" field.
func (_c *TransactionCreate) SetAssetType(v string) *TransactionCreate {
	_c.mutation.SetAssetType(v)
	return _c
}

// SetNillableAssetType sets the "asset_type" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableAssetType(v *string) *TransactionCreate {
	if v != nil {
		_c.SetAssetType(*v)
	}
	return _c
}

// SetFilingStatus sets the "filing_status" field.
func (_c *TransactionCreate) SetFilingStatus(v string) *TransactionCreate {
	_c.mutation.SetFilingStatus(v)
	return _c
}

// SetTradeType sets the "trade_type" field.
func (_c *TransactionCreate) SetTradeType(v string) *TransactionCreate {
	_c.mutation.SetTradeType(v)
	return _c
}

// SetAmountRange sets the "amount_range" field.
func (_c *TransactionCreate) SetAmountRange(v string) *TransactionCreate {
	_c.mutation.SetAmountRange(v)
	return _c
}

// SetTradeDate sets the "trade_date" field.
func (_c *TransactionCreate) SetTradeDate(v time.Time) *TransactionCreate {
	_c.mutation.SetTradeDate(v)
	return _c
}

// SetNotificationDate sets the "notification_date" field.
func (_c *TransactionCreate) SetNotificationDate(v time.Time) *TransactionCreate {
	_c.mutation.SetNotificationDate(v)
	return _c
}

// SetNillableNotificationDate sets the "notification_date" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableNotificationDate(v *time.Time) *TransactionCreate {
	if v != nil {
		_c.SetNotificationDate(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *TransactionCreate) SetSourceURL(v string) *TransactionCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TransactionCreate) SetCreatedAt(v time.Time) *TransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableCreatedAt(v *time.Time) *TransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TransactionCreate) SetID(v uuid.UUID) *TransactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableID(v *uuid.UUID) *TransactionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *TransactionCreate) SetReport(v *Report) *TransactionCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the TransactionMutation object of the builder.
func (_c *TransactionCreate) Mutation() *TransactionMutation {
	return _c.mutation
}

// Save creates the Transaction in the database.
func (_c *TransactionCreate) Save(ctx context.Context) (*Transaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TransactionCreate) SaveX(ctx context.Context) *Transaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TransactionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := transaction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TransactionCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "Transaction.report_id"`)}
	}
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "Transaction.doc_id"`)}
	}
	if v, ok := _c.mutation.DocID(); ok {
		if err := transaction.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "Transaction.doc_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Transaction.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := transaction.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Transaction.position": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Owner(); ok {
		if err := transaction.OwnerValidator(v); err != nil {
			return &ValidationError{Name: "owner", err: fmt.Errorf(`ent: validator failed for field "Transaction.owner": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssetName(); !ok {
		return &ValidationError{Name: "asset_name", err: errors.New(`ent: missing required field "Transaction.asset_name"`)}
	}
	if v, ok := _c.mutation.AssetName(); ok {
		if err := transaction.AssetNameValidator(v); err != nil {
			return &ValidationError{Name: "asset_name", err: fmt.Errorf(`ent: validator failed for field "Transaction.asset_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilingStatus(); !ok {
		return &ValidationError{Name: "filing_status", err: errors.New(`ent: missing required field "Transaction.filing_status"`)}
	}
	if v, ok := _c.mutation.FilingStatus(); ok {
		if err := transaction.FilingStatusValidator(v); err != nil {
			return &ValidationError{Name: "filing_status", err: fmt.Errorf(`ent: validator failed for field "Transaction.filing_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TradeType(); !ok {
		return &ValidationError{Name: "trade_type", err: errors.New(`ent: missing required field "Transaction.trade_type"`)}
	}
	if v, ok := _c.mutation.TradeType(); ok {
		if err := transaction.TradeTypeValidator(v); err != nil {
			return &ValidationError{Name: "trade_type", err: fmt.Errorf(`ent: validator failed for field "Transaction.trade_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AmountRange(); !ok {
		return &ValidationError{Name: "amount_range", err: errors.New(`ent: missing required field "Transaction.amount_range"`)}
	}
	if v, ok := _c.mutation.AmountRange(); ok {
		if err := transaction.AmountRangeValidator(v); err != nil {
			return &ValidationError{Name: "amount_range", err: fmt.Errorf(`ent: validator failed for field "Transaction.amount_range": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TradeDate(); !ok {
		return &ValidationError{Name: "trade_date", err: errors.New(`ent: missing required field "Transaction.trade_date"`)}
	}
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`ent: missing required field "Transaction.source_url"`)}
	}
	if v, ok := _c.mutation.SourceURL(); ok {
		if err := transaction.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "Transaction.source_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Transaction.created_at"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "Transaction.report"`)}
	}
	return nil
}

func (_c *TransactionCreate) sqlSave(ctx context.Context) (*Transaction, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TransactionCreate) createSpec() (*Transaction, *sqlgraph.CreateSpec) {
	var (
		_node = &Transaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transaction.Table, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocID(); ok {
		_spec.SetField(transaction.FieldDocID, field.TypeString, value)
		_node.DocID = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(transaction.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(transaction.FieldOwner, field.TypeString, value)
		_node.Owner = &value
	}
	if value, ok := _c.mutation.AssetName(); ok {
		_spec.SetField(transaction.FieldAssetName, field.TypeString, value)
		_node.AssetName = value
	}
	if value, ok := _c.mutation.AssetType(); ok {
		_spec.SetField(transaction.FieldAssetType, field.TypeString, value)
		_node.AssetType = value
	}
	if value, ok := _c.mutation.FilingStatus(); ok {
		_spec.SetField(transaction.FieldFilingStatus, field.TypeString, value)
		_node.FilingStatus = value
	}
	if value, ok := _c.mutation.TradeType(); ok {
		_spec.SetField(transaction.FieldTradeType, field.TypeString, value)
		_node.TradeType = value
	}
	if value, ok := _c.mutation.AmountRange(); ok {
		_spec.SetField(transaction.FieldAmountRange, field.TypeString, value)
		_node.AmountRange = value
	}
	if value, ok := _c.mutation.TradeDate(); ok {
		_spec.SetField(transaction.FieldTradeDate, field.TypeTime, value)
		_node.TradeDate = value
	}
	if value, ok := _c.mutation.NotificationDate(); ok {
		_spec.SetField(transaction.FieldNotificationDate, field.TypeTime, value)
		_node.NotificationDate = &value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(transaction.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
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
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TransactionCreateBulk is the builder for creating many Transaction entities in bulk.
type TransactionCreateBulk struct {
	config
	err      error
	builders []*TransactionCreate
}

// Save creates the Transaction entities in the database.
func (_c *TransactionCreateBulk) Save(ctx context.Context) ([]*Transaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TransactionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TransactionCreateBulk) SaveX(ctx context.Context) []*Transaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
