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

// DownloadUpdate is the builder for updating Download entities.
type DownloadUpdate struct {
	config
	hooks    []Hook
	mutation *DownloadMutation
}

// Where appends a list predicates to the DownloadUpdate builder.
func (_u *DownloadUpdate) Where(ps ...predicate.Download) *DownloadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *DownloadUpdate) SetDocID(v string) *DownloadUpdate {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *DownloadUpdate) SetNillableDocID(v *string) *DownloadUpdate {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetEtag sets the "etag" field.
func (_u *DownloadUpdate) SetEtag(v string) *DownloadUpdate {
	_u.mutation.SetEtag(v)
	return _u
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_u *DownloadUpdate) SetNillableEtag(v *string) *DownloadUpdate {
	if v != nil {
		_u.SetEtag(*v)
	}
	return _u
}

// ClearEtag clears the value of the "etag" field.
func (_u *DownloadUpdate) ClearEtag() *DownloadUpdate {
	_u.mutation.ClearEtag()
	return _u
}

// SetStorageURI sets the "storage_uri" field.
func (_u *DownloadUpdate) SetStorageURI(v string) *DownloadUpdate {
	_u.mutation.SetStorageURI(v)
	return _u
}

// SetNillableStorageURI sets the "storage_uri" field if the given value is not nil.
func (_u *DownloadUpdate) SetNillableStorageURI(v *string) *DownloadUpdate {
	if v != nil {
		_u.SetStorageURI(*v)
	}
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *DownloadUpdate) SetFetchedAt(v time.Time) *DownloadUpdate {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_u *DownloadUpdate) SetNillableFetchedAt(v *time.Time) *DownloadUpdate {
	if v != nil {
		_u.SetFetchedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DownloadUpdate) SetUpdatedAt(v time.Time) *DownloadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddOcrResultIDs adds the "ocr_results" edge to the OcrResult entity by IDs.
func (_u *DownloadUpdate) AddOcrResultIDs(ids ...int) *DownloadUpdate {
	_u.mutation.AddOcrResultIDs(ids...)
	return _u
}

// AddOcrResults adds the "ocr_results" edges to the OcrResult entity.
func (_u *DownloadUpdate) AddOcrResults(v ...*OcrResult) *DownloadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOcrResultIDs(ids...)
}

// Mutation returns the DownloadMutation object of the builder.
func (_u *DownloadUpdate) Mutation() *DownloadMutation {
	return _u.mutation
}

// ClearOcrResults clears all "ocr_results" edges to the OcrResult entity.
func (_u *DownloadUpdate) ClearOcrResults() *DownloadUpdate {
	_u.mutation.ClearOcrResults()
	return _u
}

// RemoveOcrResultIDs removes the "ocr_results" edge to OcrResult entities by IDs.
func (_u *DownloadUpdate) RemoveOcrResultIDs(ids ...int) *DownloadUpdate {
	_u.mutation.RemoveOcrResultIDs(ids...)
	return _u
}

// RemoveOcrResults removes "ocr_results" edges to OcrResult entities.
func (_u *DownloadUpdate) RemoveOcrResults(v ...*OcrResult) *DownloadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOcrResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DownloadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DownloadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DownloadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DownloadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DownloadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := download.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DownloadUpdate) check() error {
	if v, ok := _u.mutation.DocID(); ok {
		if err := download.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "Download.doc_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageURI(); ok {
		if err := download.StorageURIValidator(v); err != nil {
			return &ValidationError{Name: "storage_uri", err: fmt.Errorf(`ent: validator failed for field "Download.storage_uri": %w`, err)}
		}
	}
	return nil
}

func (_u *DownloadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(download.Table, download.Columns, sqlgraph.NewFieldSpec(download.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocID(); ok {
		_spec.SetField(download.FieldDocID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Etag(); ok {
		_spec.SetField(download.FieldEtag, field.TypeString, value)
	}
	if _u.mutation.EtagCleared() {
		_spec.ClearField(download.FieldEtag, field.TypeString)
	}
	if value, ok := _u.mutation.StorageURI(); ok {
		_spec.SetField(download.FieldStorageURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(download.FieldFetchedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(download.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OcrResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOcrResultsIDs(); len(nodes) > 0 && !_u.mutation.OcrResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OcrResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{download.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DownloadUpdateOne is the builder for updating a single Download entity.
type DownloadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DownloadMutation
}

// SetDocID sets the "doc_id" field.
func (_u *DownloadUpdateOne) SetDocID(v string) *DownloadUpdateOne {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *DownloadUpdateOne) SetNillableDocID(v *string) *DownloadUpdateOne {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetEtag sets the "etag" field.
func (_u *DownloadUpdateOne) SetEtag(v string) *DownloadUpdateOne {
	_u.mutation.SetEtag(v)
	return _u
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_u *DownloadUpdateOne) SetNillableEtag(v *string) *DownloadUpdateOne {
	if v != nil {
		_u.SetEtag(*v)
	}
	return _u
}

// ClearEtag clears the value of the "etag" field.
func (_u *DownloadUpdateOne) ClearEtag() *DownloadUpdateOne {
	_u.mutation.ClearEtag()
	return _u
}

// SetStorageURI sets the "storage_uri" field.
func (_u *DownloadUpdateOne) SetStorageURI(v string) *DownloadUpdateOne {
	_u.mutation.SetStorageURI(v)
	return _u
}

// SetNillableStorageURI sets the "storage_uri" field if the given value is not nil.
func (_u *DownloadUpdateOne) SetNillableStorageURI(v *string) *DownloadUpdateOne {
	if v != nil {
		_u.SetStorageURI(*v)
	}
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *DownloadUpdateOne) SetFetchedAt(v time.Time) *DownloadUpdateOne {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_u *DownloadUpdateOne) SetNillableFetchedAt(v *time.Time) *DownloadUpdateOne {
	if v != nil {
		_u.SetFetchedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DownloadUpdateOne) SetUpdatedAt(v time.Time) *DownloadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddOcrResultIDs adds the "ocr_results" edge to the OcrResult entity by IDs.
func (_u *DownloadUpdateOne) AddOcrResultIDs(ids ...int) *DownloadUpdateOne {
	_u.mutation.AddOcrResultIDs(ids...)
	return _u
}

// AddOcrResults adds the "ocr_results" edges to the OcrResult entity.
func (_u *DownloadUpdateOne) AddOcrResults(v ...*OcrResult) *DownloadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOcrResultIDs(ids...)
}

// Mutation returns the DownloadMutation object of the builder.
func (_u *DownloadUpdateOne) Mutation() *DownloadMutation {
	return _u.mutation
}

// ClearOcrResults clears all "ocr_results" edges to the OcrResult entity.
func (_u *DownloadUpdateOne) ClearOcrResults() *DownloadUpdateOne {
	_u.mutation.ClearOcrResults()
	return _u
}

// RemoveOcrResultIDs removes the "ocr_results" edge to OcrResult entities by IDs.
func (_u *DownloadUpdateOne) RemoveOcrResultIDs(ids ...int) *DownloadUpdateOne {
	_u.mutation.RemoveOcrResultIDs(ids...)
	return _u
}

// RemoveOcrResults removes "ocr_results" edges to OcrResult entities.
func (_u *DownloadUpdateOne) RemoveOcrResults(v ...*OcrResult) *DownloadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOcrResultIDs(ids...)
}

// Where appends a list predicates to the DownloadUpdate builder.
func (_u *DownloadUpdateOne) Where(ps ...predicate.Download) *DownloadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DownloadUpdateOne) Select(field string, fields ...string) *DownloadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Download entity.
func (_u *DownloadUpdateOne) Save(ctx context.Context) (*Download, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DownloadUpdateOne) SaveX(ctx context.Context) *Download {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DownloadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DownloadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DownloadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := download.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DownloadUpdateOne) check() error {
	if v, ok := _u.mutation.DocID(); ok {
		if err := download.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "Download.doc_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageURI(); ok {
		if err := download.StorageURIValidator(v); err != nil {
			return &ValidationError{Name: "storage_uri", err: fmt.Errorf(`ent: validator failed for field "Download.storage_uri": %w`, err)}
		}
	}
	return nil
}

func (_u *DownloadUpdateOne) sqlSave(ctx context.Context) (_node *Download, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(download.Table, download.Columns, sqlgraph.NewFieldSpec(download.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Download.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, download.FieldID)
		for _, f := range fields {
			if !download.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != download.FieldID {
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
		_spec.SetField(download.FieldDocID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Etag(); ok {
		_spec.SetField(download.FieldEtag, field.TypeString, value)
	}
	if _u.mutation.EtagCleared() {
		_spec.ClearField(download.FieldEtag, field.TypeString)
	}
	if value, ok := _u.mutation.StorageURI(); ok {
		_spec.SetField(download.FieldStorageURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(download.FieldFetchedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(download.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OcrResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOcrResultsIDs(); len(nodes) > 0 && !_u.mutation.OcrResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OcrResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Download{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{download.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
