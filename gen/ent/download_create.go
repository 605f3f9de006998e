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

// DownloadCreate is the builder for creating a Download entity.
type DownloadCreate struct {
	config
	mutation *DownloadMutation
	hooks    []Hook
}

// SetDocID sets the "doc_id" field.
func (_c *DownloadCreate) SetDocID(v string) *DownloadCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetEtag sets the "etag" field.
func (_c *DownloadCreate) SetEtag(v string) *DownloadCreate {
	_c.mutation.SetEtag(v)
	return _c
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_c *DownloadCreate) SetNillableEtag(v *string) *DownloadCreate {
	if v != nil {
		_c.SetEtag(*v)
	}
	return _c
}

// SetStorageURI sets the "storage_uri" field.
func (_c *DownloadCreate) SetStorageURI(v string) *DownloadCreate {
	_c.mutation.SetStorageURI(v)
	return _c
}

// SetFetchedAt sets the "fetched_at" field.
func (_c *DownloadCreate) SetFetchedAt(v time.Time) *DownloadCreate {
	_c.mutation.SetFetchedAt(v)
	return _c
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_c *DownloadCreate) SetNillableFetchedAt(v *time.Time) *DownloadCreate {
	if v != nil {
		_c.SetFetchedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DownloadCreate) SetUpdatedAt(v time.Time) *DownloadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DownloadCreate) SetNillableUpdatedAt(v *time.Time) *DownloadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddOcrResultIDs adds the "ocr_results" edge to the OcrResult entity by IDs.
func (_c *DownloadCreate) AddOcrResultIDs(ids ...int) *DownloadCreate {
	_c.mutation.AddOcrResultIDs(ids...)
	return _c
}

// AddOcrResults adds the "ocr_results" edges to the OcrResult entity.
func (_c *DownloadCreate) AddOcrResults(v ...*OcrResult) *DownloadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOcrResultIDs(ids...)
}

// Mutation returns the DownloadMutation object of the builder.
func (_c *DownloadCreate) Mutation() *DownloadMutation {
	return _c.mutation
}

// Save creates the Download in the database.
func (_c *DownloadCreate) Save(ctx context.Context) (*Download, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DownloadCreate) SaveX(ctx context.Context) *Download {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DownloadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DownloadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DownloadCreate) defaults() {
	if _, ok := _c.mutation.FetchedAt(); !ok {
		v := download.DefaultFetchedAt()
		_c.mutation.SetFetchedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := download.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DownloadCreate) check() error {
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "Download.doc_id"`)}
	}
	if v, ok := _c.mutation.DocID(); ok {
		if err := download.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "Download.doc_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageURI(); !ok {
		return &ValidationError{Name: "storage_uri", err: errors.New(`ent: missing required field "Download.storage_uri"`)}
	}
	if v, ok := _c.mutation.StorageURI(); ok {
		if err := download.StorageURIValidator(v); err != nil {
			return &ValidationError{Name: "storage_uri", err: fmt.Errorf(`ent: validator failed for field "Download.storage_uri": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FetchedAt(); !ok {
		return &ValidationError{Name: "fetched_at", err: errors.New(`ent: missing required field "Download.fetched_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Download.updated_at"`)}
	}
	return nil
}

func (_c *DownloadCreate) sqlSave(ctx context.Context) (*Download, error) {
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

func (_c *DownloadCreate) createSpec() (*Download, *sqlgraph.CreateSpec) {
	var (
		_node = &Download{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(download.Table, sqlgraph.NewFieldSpec(download.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DocID(); ok {
		_spec.SetField(download.FieldDocID, field.TypeString, value)
		_node.DocID = value
	}
	if value, ok := _c.mutation.Etag(); ok {
		_spec.SetField(download.FieldEtag, field.TypeString, value)
		_node.Etag = value
	}
	if value, ok := _c.mutation.StorageURI(); ok {
		_spec.SetField(download.FieldStorageURI, field.TypeString, value)
		_node.StorageURI = value
	}
	if value, ok := _c.mutation.FetchedAt(); ok {
		_spec.SetField(download.FieldFetchedAt, field.TypeTime, value)
		_node.FetchedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(download.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OcrResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   download.OcrResultsTable,
			Columns: []string{download.OcrResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DownloadCreateBulk is the builder for creating many Download entities in bulk.
type DownloadCreateBulk struct {
	config
	err      error
	builders []*DownloadCreate
}

// Save creates the Download entities in the database.
func (_c *DownloadCreateBulk) Save(ctx context.Context) ([]*Download, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Download, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DownloadMutation)
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
func (_c *DownloadCreateBulk) SaveX(ctx context.Context) []*Download {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DownloadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DownloadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
