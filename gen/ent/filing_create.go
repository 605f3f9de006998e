// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mholloway/ptr-tracker/gen/ent/filing"
)

// FilingCreate is the builder for creating a Filing entity.
type FilingCreate struct {
	config
	mutation *FilingMutation
	hooks    []Hook
}

// SetDocID sets the "doc_id" field.
func (_c *FilingCreate) SetDocID(v string) *FilingCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetPrefix sets the "prefix" field.
func (_c *FilingCreate) SetPrefix(v string) *FilingCreate {
	_c.mutation.SetPrefix(v)
	return _c
}

// SetNillablePrefix sets the "prefix" field if the given value is not nil.
func (_c *FilingCreate) SetNillablePrefix(v *string) *FilingCreate {
	if v != nil {
		_c.SetPrefix(*v)
	}
	return _c
}

// SetLast sets the "last" field.
func (_c *FilingCreate) SetLast(v string) *FilingCreate {
	_c.mutation.SetLast(v)
	return _c
}

// SetFirst sets the "first" field.
func (_c *FilingCreate) SetFirst(v string) *FilingCreate {
	_c.mutation.SetFirst(v)
	return _c
}

// SetNillableFirst sets the "first" field if the given value is not nil.
func (_c *FilingCreate) SetNillableFirst(v *string) *FilingCreate {
	if v != nil {
		_c.SetFirst(*v)
	}
	return _c
}

// SetSuffix sets the "suffix" field.
func (_c *FilingCreate) SetSuffix(v string) *FilingCreate {
	_c.mutation.SetSuffix(v)
	return _c
}

// SetNillableSuffix sets the "suffix" field if the given value is not nil.
func (_c *FilingCreate) SetNillableSuffix(v *string) *FilingCreate {
	if v != nil {
		_c.SetSuffix(*v)
	}
	return _c
}

// SetFilingType sets the "filing_type" field.
func (_c *FilingCreate) SetFilingType(v string) *FilingCreate {
	_c.mutation.SetFilingType(v)
	return _c
}

// SetStateDst sets the "state_dst" field.
func (_c *FilingCreate) SetStateDst(v string) *FilingCreate {
	_c.mutation.SetStateDst(v)
	return _c
}

// SetNillableStateDst sets the "state_dst" field if the given value is not nil.
func (_c *FilingCreate) SetNillableStateDst(v *string) *FilingCreate {
	if v != nil {
		_c.SetStateDst(*v)
	}
	return _c
}

// SetYear sets the "year" field.
func (_c *FilingCreate) SetYear(v int) *FilingCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetFilingDate sets the "filing_date" field.
func (_c *FilingCreate) SetFilingDate(v time.Time) *FilingCreate {
	_c.mutation.SetFilingDate(v)
	return _c
}

// SetRawRow sets the "raw_row" field.
func (_c *FilingCreate) SetRawRow(v string) *FilingCreate {
	_c.mutation.SetRawRow(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FilingCreate) SetCreatedAt(v time.Time) *FilingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FilingCreate) SetNillableCreatedAt(v *time.Time) *FilingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the FilingMutation object of the builder.
func (_c *FilingCreate) Mutation() *FilingMutation {
	return _c.mutation
}

// Save creates the Filing in the database.
func (_c *FilingCreate) Save(ctx context.Context) (*Filing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FilingCreate) SaveX(ctx context.Context) *Filing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FilingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FilingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FilingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := filing.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FilingCreate) check() error {
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "Filing.doc_id"`)}
	}
	if v, ok := _c.mutation.DocID(); ok {
		if err := filing.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "Filing.doc_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Last(); !ok {
		return &ValidationError{Name: "last", err: errors.New(`ent: missing required field "Filing.last"`)}
	}
	if v, ok := _c.mutation.Last(); ok {
		if err := filing.LastValidator(v); err != nil {
			return &ValidationError{Name: "last", err: fmt.Errorf(`ent: validator failed for field "Filing.last": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilingType(); !ok {
		return &ValidationError{Name: "filing_type", err: errors.New(`ent: missing required field "Filing.filing_type"`)}
	}
	if v, ok := _c.mutation.FilingType(); ok {
		if err := filing.FilingTypeValidator(v); err != nil {
			return &ValidationError{Name: "filing_type", err: fmt.Errorf(`ent: validator failed for field "Filing.filing_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Year(); !ok {
		return &ValidationError{Name: "year", err: errors.New(`ent: missing required field "Filing.year"`)}
	}
	if v, ok := _c.mutation.Year(); ok {
		if err := filing.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`ent: validator failed for field "Filing.year": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilingDate(); !ok {
		return &ValidationError{Name: "filing_date", err: errors.New(`ent: missing required field "Filing.filing_date"`)}
	}
	if _, ok := _c.mutation.RawRow(); !ok {
		return &ValidationError{Name: "raw_row", err: errors.New(`ent: missing required field "Filing.raw_row"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Filing.created_at"`)}
	}
	return nil
}

func (_c *FilingCreate) sqlSave(ctx context.Context) (*Filing, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FilingCreate) createSpec() (*Filing, *sqlgraph.CreateSpec) {
	var (
		_node = &Filing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(filing.Table, sqlgraph.NewFieldSpec(filing.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DocID(); ok {
		_spec.SetField(filing.FieldDocID, field.TypeString, value)
		_node.DocID = value
	}
	if value, ok := _c.mutation.Prefix(); ok {
		_spec.SetField(filing.FieldPrefix, field.TypeString, value)
		_node.Prefix = value
	}
	if value, ok := _c.mutation.Last(); ok {
		_spec.SetField(filing.FieldLast, field.TypeString, value)
		_node.Last = value
	}
	if value, ok := _c.mutation.First(); ok {
		_spec.SetField(filing.FieldFirst, field.TypeString, value)
		_node.First = value
	}
	if value, ok := _c.mutation.Suffix(); ok {
		_spec.SetField(filing.FieldSuffix, field.TypeString, value)
		_node.Suffix = value
	}
	if value, ok := _c.mutation.FilingType(); ok {
		_spec.SetField(filing.FieldFilingType, field.TypeString, value)
		_node.FilingType = value
	}
	if value, ok := _c.mutation.StateDst(); ok {
		_spec.SetField(filing.FieldStateDst, field.TypeString, value)
		_node.StateDst = value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(filing.FieldYear, field.TypeInt, value)
		_node.Year = value
	}
	if value, ok := _c.mutation.FilingDate(); ok {
		_spec.SetField(filing.FieldFilingDate, field.TypeTime, value)
		_node.FilingDate = value
	}
	if value, ok := _c.mutation.RawRow(); ok {
		_spec.SetField(filing.FieldRawRow, field.TypeString, value)
		_node.RawRow = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(filing.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// FilingCreateBulk is the builder for creating many Filing entities in bulk.
type FilingCreateBulk struct {
	config
	err      error
	builders []*FilingCreate
}

// Save creates the Filing entities in the database.
func (_c *FilingCreateBulk) Save(ctx context.Context) ([]*Filing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Filing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FilingMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *FilingCreateBulk) SaveX(ctx context.Context) []*Filing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FilingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FilingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
