// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mholloway/ptr-tracker/gen/ent/download"
	"github.com/mholloway/ptr-tracker/gen/ent/ocrresult"
)

// OcrResultCreate is the builder for creating a OcrResult entity.
type OcrResultCreate struct {
	config
	mutation *OcrResultMutation
	hooks    []Hook
}

// SetDocID sets the "doc_id" field.
func (_c *OcrResultCreate) SetDocID(v string) *OcrResultCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetDownloadID sets the "download_id" field.
func (_c *OcrResultCreate) SetDownloadID(v int) *OcrResultCreate {
	_c.mutation.SetDownloadID(v)
	return _c
}

// SetStorageURI sets the "storage_uri" field.
func (_c *OcrResultCreate) SetStorageURI(v string) *OcrResultCreate {
	_c.mutation.SetStorageURI(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OcrResultCreate) SetCreatedAt(v time.Time) *OcrResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OcrResultCreate) SetNillableCreatedAt(v *time.Time) *OcrResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDownload sets the "download" edge to the Download entity.
func (_c *OcrResultCreate) SetDownload(v *Download) *OcrResultCreate {
	return _c.SetDownloadID(v.ID)
}

// Mutation returns the OcrResultMutation object of the builder.
func (_c *OcrResultCreate) Mutation() *OcrResultMutation {
	return _c.mutation
}

// Save creates the OcrResult in the database.
func (_c *OcrResultCreate) Save(ctx context.Context) (*OcrResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OcrResultCreate) SaveX(ctx context.Context) *OcrResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OcrResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OcrResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OcrResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ocrresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OcrResultCreate) check() error {
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "OcrResult.doc_id"`)}
	}
	if v, ok := _c.mutation.DocID(); ok {
		if err := ocrresult.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "OcrResult.doc_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DownloadID(); !ok {
		return &ValidationError{Name: "download_id", err: errors.New(`ent: missing required field "OcrResult.download_id"`)}
	}
	if _, ok := _c.mutation.StorageURI(); !ok {
		return &ValidationError{Name: "storage_uri", err: errors.New(`ent: missing required field "OcrResult.storage_uri"`)}
	}
	if v, ok := _c.mutation.StorageURI(); ok {
		if err := ocrresult.StorageURIValidator(v); err != nil {
			return &ValidationError{Name: "storage_uri", err: fmt.Errorf(`ent: validator failed for field "OcrResult.storage_uri": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OcrResult.created_at"`)}
	}
	if len(_c.mutation.DownloadIDs()) == 0 {
		return &ValidationError{Name: "download", err: errors.New(`ent: missing required edge "OcrResult.download"`)}
	}
	return nil
}

func (_c *OcrResultCreate) sqlSave(ctx context.Context) (*OcrResult, error) {
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

func (_c *OcrResultCreate) createSpec() (*OcrResult, *sqlgraph.CreateSpec) {
	var (
		_node = &OcrResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ocrresult.Table, sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DocID(); ok {
		_spec.SetField(ocrresult.FieldDocID, field.TypeString, value)
		_node.DocID = value
	}
	if value, ok := _c.mutation.StorageURI(); ok {
		_spec.SetField(ocrresult.FieldStorageURI, field.TypeString, value)
		_node.StorageURI = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ocrresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DownloadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrresult.DownloadTable,
			Columns: []string{ocrresult.DownloadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(download.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DownloadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OcrResultCreateBulk is the builder for creating many OcrResult entities in bulk.
type OcrResultCreateBulk struct {
	config
	err      error
	builders []*OcrResultCreate
}

// Save creates the OcrResult entities in the database.
func (_c *OcrResultCreateBulk) Save(ctx context.Context) ([]*OcrResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OcrResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OcrResultMutation)
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
func (_c *OcrResultCreateBulk) SaveX(ctx context.Context) []*OcrResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OcrResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OcrResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
