// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mholloway/ptr-tracker/gen/ent/filinglist"
)

// FilingListCreate is the builder for creating a FilingList entity.
type FilingListCreate struct {
	config
	mutation *FilingListMutation
	hooks    []Hook
}

// SetYear sets the "year" field.
func (_c *FilingListCreate) SetYear(v int) *FilingListCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetEtag sets the "etag" field.
func (_c *FilingListCreate) SetEtag(v string) *FilingListCreate {
	_c.mutation.SetEtag(v)
	return _c
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_c *FilingListCreate) SetNillableEtag(v *string) *FilingListCreate {
	if v != nil {
		_c.SetEtag(*v)
	}
	return _c
}

// SetStorageURI sets the "storage_uri" field.
func (_c *FilingListCreate) SetStorageURI(v string) *FilingListCreate {
	_c.mutation.SetStorageURI(v)
	return _c
}

// SetParsed sets the "parsed" field.
func (_c *FilingListCreate) SetParsed(v bool) *FilingListCreate {
	_c.mutation.SetParsed(v)
	return _c
}

// SetNillableParsed sets the "parsed" field if the given value is not nil.
func (_c *FilingListCreate) SetNillableParsed(v *bool) *FilingListCreate {
	if v != nil {
		_c.SetParsed(*v)
	}
	return _c
}

// SetParsedAt sets the "parsed_at" field.
func (_c *FilingListCreate) SetParsedAt(v time.Time) *FilingListCreate {
	_c.mutation.SetParsedAt(v)
	return _c
}

// SetNillableParsedAt sets the "parsed_at" field if the given value is not nil.
func (_c *FilingListCreate) SetNillableParsedAt(v *time.Time) *FilingListCreate {
	if v != nil {
		_c.SetParsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FilingListCreate) SetCreatedAt(v time.Time) *FilingListCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FilingListCreate) SetNillableCreatedAt(v *time.Time) *FilingListCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FilingListCreate) SetUpdatedAt(v time.Time) *FilingListCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FilingListCreate) SetNillableUpdatedAt(v *time.Time) *FilingListCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the FilingListMutation object of the builder.
func (_c *FilingListCreate) Mutation() *FilingListMutation {
	return _c.mutation
}

// Save creates the FilingList in the database.
func (_c *FilingListCreate) Save(ctx context.Context) (*FilingList, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FilingListCreate) SaveX(ctx context.Context) *FilingList {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FilingListCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FilingListCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FilingListCreate) defaults() {
	if _, ok := _c.mutation.Parsed(); !ok {
		v := filinglist.DefaultParsed
		_c.mutation.SetParsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := filinglist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := filinglist.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FilingListCreate) check() error {
	if _, ok := _c.mutation.Year(); !ok {
		return &ValidationError{Name: "year", err: errors.New(`ent: missing required field "FilingList.year"`)}
	}
	if v, ok := _c.mutation.Year(); ok {
		if err := filinglist.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`ent: validator failed for field "FilingList.year": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageURI(); !ok {
		return &ValidationError{Name: "storage_uri", err: errors.New(`ent: missing required field "FilingList.storage_uri"`)}
	}
	if v, ok := _c.mutation.StorageURI(); ok {
		if err := filinglist.StorageURIValidator(v); err != nil {
			return &ValidationError{Name: "storage_uri", err: fmt.Errorf(`ent: validator failed for field "FilingList.storage_uri": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Parsed(); !ok {
		return &ValidationError{Name: "parsed", err: errors.New(`ent: missing required field "FilingList.parsed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FilingList.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FilingList.updated_at"`)}
	}
	return nil
}

func (_c *FilingListCreate) sqlSave(ctx context.Context) (*FilingList, error) {
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

func (_c *FilingListCreate) createSpec() (*FilingList, *sqlgraph.CreateSpec) {
	var (
		_node = &FilingList{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(filinglist.Table, sqlgraph.NewFieldSpec(filinglist.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(filinglist.FieldYear, field.TypeInt, value)
		_node.Year = value
	}
	if value, ok := _c.mutation.Etag(); ok {
		_spec.SetField(filinglist.FieldEtag, field.TypeString, value)
		_node.Etag = &value
	}
	if value, ok := _c.mutation.StorageURI(); ok {
		_spec.SetField(filinglist.FieldStorageURI, field.TypeString, value)
		_node.StorageURI = value
	}
	if value, ok := _c.mutation.Parsed(); ok {
		_spec.SetField(filinglist.FieldParsed, field.TypeBool, value)
		_node.Parsed = value
	}
	if value, ok := _c.mutation.ParsedAt(); ok {
		_spec.SetField(filinglist.FieldParsedAt, field.TypeTime, value)
		_node.ParsedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(filinglist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(filinglist.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// FilingListCreateBulk is the builder for creating many FilingList entities in bulk.
type FilingListCreateBulk struct {
	config
	err      error
	builders []*FilingListCreate
}

// Save creates the FilingList entities in the database.
func (_c *FilingListCreateBulk) Save(ctx context.Context) ([]*FilingList, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FilingList, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FilingListMutation)
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
func (_c *FilingListCreateBulk) SaveX(ctx context.Context) []*FilingList {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FilingListCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FilingListCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
