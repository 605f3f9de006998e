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
	"github.com/mholloway/ptr-tracker/gen/ent/filinglist"
	"github.com/mholloway/ptr-tracker/gen/ent/predicate"
)

// FilingListUpdate is the builder for updating FilingList entities.
type FilingListUpdate struct {
	config
	hooks    []Hook
	mutation *FilingListMutation
}

// Where appends a list predicates to the FilingListUpdate builder.
func (_u *FilingListUpdate) Where(ps ...predicate.FilingList) *FilingListUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetYear sets the "year" field.
func (_u *FilingListUpdate) SetYear(v int) *FilingListUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *FilingListUpdate) SetNillableYear(v *int) *FilingListUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *FilingListUpdate) AddYear(v int) *FilingListUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// SetEtag sets the "etag" field.
func (_u *FilingListUpdate) SetEtag(v string) *FilingListUpdate {
	_u.mutation.SetEtag(v)
	return _u
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_u *FilingListUpdate) SetNillableEtag(v *string) *FilingListUpdate {
	if v != nil {
		_u.SetEtag(*v)
	}
	return _u
}

// ClearEtag clears the value of the "etag" field.
func (_u *FilingListUpdate) ClearEtag() *FilingListUpdate {
	_u.mutation.ClearEtag()
	return _u
}

// SetStorageURI sets the "storage_uri" field.
func (_u *FilingListUpdate) SetStorageURI(v string) *FilingListUpdate {
	_u.mutation.SetStorageURI(v)
	return _u
}

// SetNillableStorageURI sets the "storage_uri" field if the given value is not nil.
func (_u *FilingListUpdate) SetNillableStorageURI(v *string) *FilingListUpdate {
	if v != nil {
		_u.SetStorageURI(*v)
	}
	return _u
}

// SetParsed sets the "parsed" field.
func (_u *FilingListUpdate) SetParsed(v bool) *FilingListUpdate {
	_u.mutation.SetParsed(v)
	return _u
}

// SetNillableParsed sets the "parsed" field if the given value is not nil.
func (_u *FilingListUpdate) SetNillableParsed(v *bool) *FilingListUpdate {
	if v != nil {
		_u.SetParsed(*v)
	}
	return _u
}

// SetParsedAt sets the "parsed_at" field.
func (_u *FilingListUpdate) SetParsedAt(v time.Time) *FilingListUpdate {
	_u.mutation.SetParsedAt(v)
	return _u
}

// SetNillableParsedAt sets the "parsed_at" field if the given value is not nil.
func (_u *FilingListUpdate) SetNillableParsedAt(v *time.Time) *FilingListUpdate {
	if v != nil {
		_u.SetParsedAt(*v)
	}
	return _u
}

// ClearParsedAt clears the value of the "parsed_at" field.
func (_u *FilingListUpdate) ClearParsedAt() *FilingListUpdate {
	_u.mutation.ClearParsedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FilingListUpdate) SetCreatedAt(v time.Time) *FilingListUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FilingListUpdate) SetNillableCreatedAt(v *time.Time) *FilingListUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FilingListUpdate) SetUpdatedAt(v time.Time) *FilingListUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FilingListMutation object of the builder.
func (_u *FilingListUpdate) Mutation() *FilingListMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FilingListUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FilingListUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FilingListUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FilingListUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FilingListUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := filinglist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FilingListUpdate) check() error {
	if v, ok := _u.mutation.Year(); ok {
		if err := filinglist.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`ent: validator failed for field "FilingList.year": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageURI(); ok {
		if err := filinglist.StorageURIValidator(v); err != nil {
			return &ValidationError{Name: "storage_uri", err: fmt.Errorf(`ent: validator failed for field "FilingList.storage_uri": %w`, err)}
		}
	}
	return nil
}

func (_u *FilingListUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filinglist.Table, filinglist.Columns, sqlgraph.NewFieldSpec(filinglist.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(filinglist.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(filinglist.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Etag(); ok {
		_spec.SetField(filinglist.FieldEtag, field.TypeString, value)
	}
	if _u.mutation.EtagCleared() {
		_spec.ClearField(filinglist.FieldEtag, field.TypeString)
	}
	if value, ok := _u.mutation.StorageURI(); ok {
		_spec.SetField(filinglist.FieldStorageURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parsed(); ok {
		_spec.SetField(filinglist.FieldParsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ParsedAt(); ok {
		_spec.SetField(filinglist.FieldParsedAt, field.TypeTime, value)
	}
	if _u.mutation.ParsedAtCleared() {
		_spec.ClearField(filinglist.FieldParsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(filinglist.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(filinglist.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filinglist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FilingListUpdateOne is the builder for updating a single FilingList entity.
type FilingListUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FilingListMutation
}

// SetYear sets the "year" field.
func (_u *FilingListUpdateOne) SetYear(v int) *FilingListUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *FilingListUpdateOne) SetNillableYear(v *int) *FilingListUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *FilingListUpdateOne) AddYear(v int) *FilingListUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// SetEtag sets the "etag" field.
func (_u *FilingListUpdateOne) SetEtag(v string) *FilingListUpdateOne {
	_u.mutation.SetEtag(v)
	return _u
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_u *FilingListUpdateOne) SetNillableEtag(v *string) *FilingListUpdateOne {
	if v != nil {
		_u.SetEtag(*v)
	}
	return _u
}

// ClearEtag clears the value of the "etag" field.
func (_u *FilingListUpdateOne) ClearEtag() *FilingListUpdateOne {
	_u.mutation.ClearEtag()
	return _u
}

// SetStorageURI sets the "storage_uri" field.
func (_u *FilingListUpdateOne) SetStorageURI(v string) *FilingListUpdateOne {
	_u.mutation.SetStorageURI(v)
	return _u
}

// SetNillableStorageURI sets the "storage_uri" field if the given value is not nil.
func (_u *FilingListUpdateOne) SetNillableStorageURI(v *string) *FilingListUpdateOne {
	if v != nil {
		_u.SetStorageURI(*v)
	}
	return _u
}

// SetParsed sets the "parsed" field.
func (_u *FilingListUpdateOne) SetParsed(v bool) *FilingListUpdateOne {
	_u.mutation.SetParsed(v)
	return _u
}

// SetNillableParsed sets the "parsed" field if the given value is not nil.
func (_u *FilingListUpdateOne) SetNillableParsed(v *bool) *FilingListUpdateOne {
	if v != nil {
		_u.SetParsed(*v)
	}
	return _u
}

// SetParsedAt sets the "parsed_at" field.
func (_u *FilingListUpdateOne) SetParsedAt(v time.Time) *FilingListUpdateOne {
	_u.mutation.SetParsedAt(v)
	return _u
}

// SetNillableParsedAt sets the "parsed_at" field if the given value is not nil.
func (_u *FilingListUpdateOne) SetNillableParsedAt(v *time.Time) *FilingListUpdateOne {
	if v != nil {
		_u.SetParsedAt(*v)
	}
	return _u
}

// ClearParsedAt clears the value of the "parsed_at" field.
func (_u *FilingListUpdateOne) ClearParsedAt() *FilingListUpdateOne {
	_u.mutation.ClearParsedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FilingListUpdateOne) SetCreatedAt(v time.Time) *FilingListUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FilingListUpdateOne) SetNillableCreatedAt(v *time.Time) *FilingListUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FilingListUpdateOne) SetUpdatedAt(v time.Time) *FilingListUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FilingListMutation object of the builder.
func (_u *FilingListUpdateOne) Mutation() *FilingListMutation {
	return _u.mutation
}

// Where appends a list predicates to the FilingListUpdate builder.
func (_u *FilingListUpdateOne) Where(ps ...predicate.FilingList) *FilingListUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FilingListUpdateOne) Select(field string, fields ...string) *FilingListUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FilingList entity.
func (_u *FilingListUpdateOne) Save(ctx context.Context) (*FilingList, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FilingListUpdateOne) SaveX(ctx context.Context) *FilingList {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FilingListUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FilingListUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FilingListUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := filinglist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FilingListUpdateOne) check() error {
	if v, ok := _u.mutation.Year(); ok {
		if err := filinglist.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`ent: validator failed for field "FilingList.year": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageURI(); ok {
		if err := filinglist.StorageURIValidator(v); err != nil {
			return &ValidationError{Name: "storage_uri", err: fmt.Errorf(`ent: validator failed for field "FilingList.storage_uri": %w`, err)}
		}
	}
	return nil
}

func (_u *FilingListUpdateOne) sqlSave(ctx context.Context) (_node *FilingList, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filinglist.Table, filinglist.Columns, sqlgraph.NewFieldSpec(filinglist.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FilingList.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, filinglist.FieldID)
		for _, f := range fields {
			if !filinglist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != filinglist.FieldID {
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
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(filinglist.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(filinglist.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Etag(); ok {
		_spec.SetField(filinglist.FieldEtag, field.TypeString, value)
	}
	if _u.mutation.EtagCleared() {
		_spec.ClearField(filinglist.FieldEtag, field.TypeString)
	}
	if value, ok := _u.mutation.StorageURI(); ok {
		_spec.SetField(filinglist.FieldStorageURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parsed(); ok {
		_spec.SetField(filinglist.FieldParsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ParsedAt(); ok {
		_spec.SetField(filinglist.FieldParsedAt, field.TypeTime, value)
	}
	if _u.mutation.ParsedAtCleared() {
		_spec.ClearField(filinglist.FieldParsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(filinglist.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(filinglist.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &FilingList{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filinglist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
