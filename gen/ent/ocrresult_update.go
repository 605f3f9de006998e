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
	"github.com/mholloway/ptr-tracker/gen/ent/download"
	"github.com/mholloway/ptr-tracker/gen/ent/ocrresult"
	"github.com/mholloway/ptr-tracker/gen/ent/predicate"
)

// OcrResultUpdate is the builder for updating OcrResult entities.
type OcrResultUpdate struct {
	config
	hooks    []Hook
	mutation *OcrResultMutation
}

// Where appends a list predicates to the OcrResultUpdate builder.
func (_u *OcrResultUpdate) Where(ps ...predicate.OcrResult) *OcrResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *OcrResultUpdate) SetDocID(v string) *OcrResultUpdate {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableDocID(v *string) *OcrResultUpdate {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetDownloadID sets the "download_id" field.
func (_u *OcrResultUpdate) SetDownloadID(v int) *OcrResultUpdate {
	_u.mutation.SetDownloadID(v)
	return _u
}

// SetNillableDownloadID sets the "download_id" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableDownloadID(v *int) *OcrResultUpdate {
	if v != nil {
		_u.SetDownloadID(*v)
	}
	return _u
}

// SetStorageURI sets the "storage_uri" field.
func (_u *OcrResultUpdate) SetStorageURI(v string) *OcrResultUpdate {
	_u.mutation.SetStorageURI(v)
	return _u
}

// SetNillableStorageURI sets the "storage_uri" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableStorageURI(v *string) *OcrResultUpdate {
	if v != nil {
		_u.SetStorageURI(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OcrResultUpdate) SetCreatedAt(v time.Time) *OcrResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableCreatedAt(v *time.Time) *OcrResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDownload sets the "download" edge to the Download entity.
func (_u *OcrResultUpdate) SetDownload(v *Download) *OcrResultUpdate {
	return _u.SetDownloadID(v.ID)
}

// Mutation returns the OcrResultMutation object of the builder.
func (_u *OcrResultUpdate) Mutation() *OcrResultMutation {
	return _u.mutation
}

// ClearDownload clears the "download" edge to the Download entity.
func (_u *OcrResultUpdate) ClearDownload() *OcrResultUpdate {
	_u.mutation.ClearDownload()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OcrResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OcrResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OcrResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OcrResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OcrResultUpdate) check() error {
	if v, ok := _u.mutation.DocID(); ok {
		if err := ocrresult.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "OcrResult.doc_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageURI(); ok {
		if err := ocrresult.StorageURIValidator(v); err != nil {
			return &ValidationError{Name: "storage_uri", err: fmt.Errorf(`ent: validator failed for field "OcrResult.storage_uri": %w`, err)}
		}
	}
	if _u.mutation.DownloadCleared() && len(_u.mutation.DownloadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OcrResult.download"`)
	}
	return nil
}

func (_u *OcrResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrresult.Table, ocrresult.Columns, sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocID(); ok {
		_spec.SetField(ocrresult.FieldDocID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageURI(); ok {
		_spec.SetField(ocrresult.FieldStorageURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ocrresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DownloadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DownloadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OcrResultUpdateOne is the builder for updating a single OcrResult entity.
type OcrResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OcrResultMutation
}

// SetDocID sets the "doc_id" field.
func (_u *OcrResultUpdateOne) SetDocID(v string) *OcrResultUpdateOne {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableDocID(v *string) *OcrResultUpdateOne {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetDownloadID sets the "download_id" field.
func (_u *OcrResultUpdateOne) SetDownloadID(v int) *OcrResultUpdateOne {
	_u.mutation.SetDownloadID(v)
	return _u
}

// SetNillableDownloadID sets the "download_id" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableDownloadID(v *int) *OcrResultUpdateOne {
	if v != nil {
		_u.SetDownloadID(*v)
	}
	return _u
}

// SetStorageURI sets the "storage_uri" field.
func (_u *OcrResultUpdateOne) SetStorageURI(v string) *OcrResultUpdateOne {
	_u.mutation.SetStorageURI(v)
	return _u
}

// SetNillableStorageURI sets the "storage_uri" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableStorageURI(v *string) *OcrResultUpdateOne {
	if v != nil {
		_u.SetStorageURI(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OcrResultUpdateOne) SetCreatedAt(v time.Time) *OcrResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableCreatedAt(v *time.Time) *OcrResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDownload sets the "download" edge to the Download entity.
func (_u *OcrResultUpdateOne) SetDownload(v *Download) *OcrResultUpdateOne {
	return _u.SetDownloadID(v.ID)
}

// Mutation returns the OcrResultMutation object of the builder.
func (_u *OcrResultUpdateOne) Mutation() *OcrResultMutation {
	return _u.mutation
}

// ClearDownload clears the "download" edge to the Download entity.
func (_u *OcrResultUpdateOne) ClearDownload() *OcrResultUpdateOne {
	_u.mutation.ClearDownload()
	return _u
}

// Where appends a list predicates to the OcrResultUpdate builder.
func (_u *OcrResultUpdateOne) Where(ps ...predicate.OcrResult) *OcrResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OcrResultUpdateOne) Select(field string, fields ...string) *OcrResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OcrResult entity.
func (_u *OcrResultUpdateOne) Save(ctx context.Context) (*OcrResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OcrResultUpdateOne) SaveX(ctx context.Context) *OcrResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OcrResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OcrResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OcrResultUpdateOne) check() error {
	if v, ok := _u.mutation.DocID(); ok {
		if err := ocrresult.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "OcrResult.doc_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageURI(); ok {
		if err := ocrresult.StorageURIValidator(v); err != nil {
			return &ValidationError{Name: "storage_uri", err: fmt.Errorf(`ent: validator failed for field "OcrResult.storage_uri": %w`, err)}
		}
	}
	if _u.mutation.DownloadCleared() && len(_u.mutation.DownloadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OcrResult.download"`)
	}
	return nil
}

func (_u *OcrResultUpdateOne) sqlSave(ctx context.Context) (_node *OcrResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrresult.Table, ocrresult.Columns, sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OcrResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ocrresult.FieldID)
		for _, f := range fields {
			if !ocrresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ocrresult.FieldID {
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
		_spec.SetField(ocrresult.FieldDocID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageURI(); ok {
		_spec.SetField(ocrresult.FieldStorageURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ocrresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DownloadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DownloadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OcrResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
