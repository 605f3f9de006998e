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
	"github.com/mholloway/ptr-tracker/gen/ent/filing"
	"github.com/mholloway/ptr-tracker/gen/ent/predicate"
)

// FilingUpdate is the builder for updating Filing entities.
type FilingUpdate struct {
	config
	hooks    []Hook
	mutation *FilingMutation
}

// Where appends a list predicates to the FilingUpdate builder.
func (_u *FilingUpdate) Where(ps ...predicate.Filing) *FilingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *FilingUpdate) SetDocID(v string) *FilingUpdate {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableDocID(v *string) *FilingUpdate {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetPrefix sets the "prefix" field.
func (_u *FilingUpdate) SetPrefix(v string) *FilingUpdate {
	_u.mutation.SetPrefix(v)
	return _u
}

// SetNillablePrefix sets the "prefix" field if the given value is not nil.
func (_u *FilingUpdate) SetNillablePrefix(v *string) *FilingUpdate {
	if v != nil {
		_u.SetPrefix(*v)
	}
	return _u
}

// ClearPrefix clears the value of the "prefix" field.
func (_u *FilingUpdate) ClearPrefix() *FilingUpdate {
	_u.mutation.ClearPrefix()
	return _u
}

// SetLast sets the "last" field.
func (_u *FilingUpdate) SetLast(v string) *FilingUpdate {
	_u.mutation.SetLast(v)
	return _u
}

// SetNillableLast sets the "last" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableLast(v *string) *FilingUpdate {
	if v != nil {
		_u.SetLast(*v)
	}
	return _u
}

// SetFirst sets the "first" field.
func (_u *FilingUpdate) SetFirst(v string) *FilingUpdate {
	_u.mutation.SetFirst(v)
	return _u
}

// SetNillableFirst sets the "first" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableFirst(v *string) *FilingUpdate {
	if v != nil {
		_u.SetFirst(*v)
	}
	return _u
}

// ClearFirst clears the value of the "first" field.
func (_u *FilingUpdate) ClearFirst() *FilingUpdate {
	_u.mutation.ClearFirst()
	return _u
}

// SetSuffix sets the "suffix" field.
func (_u *FilingUpdate) SetSuffix(v string) *FilingUpdate {
	_u.mutation.SetSuffix(v)
	return _u
}

// SetNillableSuffix sets the "suffix" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableSuffix(v *string) *FilingUpdate {
	if v != nil {
		_u.SetSuffix(*v)
	}
	return _u
}

// ClearSuffix clears the value of the "suffix" field.
func (_u *FilingUpdate) ClearSuffix() *FilingUpdate {
	_u.mutation.ClearSuffix()
	return _u
}

// SetFilingType sets the "filing_type" field.
func (_u *FilingUpdate) SetFilingType(v string) *FilingUpdate {
	_u.mutation.SetFilingType(v)
	return _u
}

// SetNillableFilingType sets the "filing_type" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableFilingType(v *string) *FilingUpdate {
	if v != nil {
		_u.SetFilingType(*v)
	}
	return _u
}

// SetStateDst sets the "state_dst" field.
func (_u *FilingUpdate) SetStateDst(v string) *FilingUpdate {
	_u.mutation.SetStateDst(v)
	return _u
}

// SetNillableStateDst sets the "state_dst" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableStateDst(v *string) *FilingUpdate {
	if v != nil {
		_u.SetStateDst(*v)
	}
	return _u
}

// ClearStateDst clears the value of the "state_dst" field.
func (_u *FilingUpdate) ClearStateDst() *FilingUpdate {
	_u.mutation.ClearStateDst()
	return _u
}

// SetYear sets the "year" field.
func (_u *FilingUpdate) SetYear(v int) *FilingUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableYear(v *int) *FilingUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *FilingUpdate) AddYear(v int) *FilingUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// SetFilingDate sets the "filing_date" field.
func (_u *FilingUpdate) SetFilingDate(v time.Time) *FilingUpdate {
	_u.mutation.SetFilingDate(v)
	return _u
}

// SetNillableFilingDate sets the "filing_date" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableFilingDate(v *time.Time) *FilingUpdate {
	if v != nil {
		_u.SetFilingDate(*v)
	}
	return _u
}

// SetRawRow sets the "raw_row" field.
func (_u *FilingUpdate) SetRawRow(v string) *FilingUpdate {
	_u.mutation.SetRawRow(v)
	return _u
}

// SetNillableRawRow sets the "raw_row" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableRawRow(v *string) *FilingUpdate {
	if v != nil {
		_u.SetRawRow(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FilingUpdate) SetCreatedAt(v time.Time) *FilingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableCreatedAt(v *time.Time) *FilingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the FilingMutation object of the builder.
func (_u *FilingUpdate) Mutation() *FilingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FilingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FilingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FilingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FilingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FilingUpdate) check() error {
	if v, ok := _u.mutation.DocID(); ok {
		if err := filing.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "Filing.doc_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Last(); ok {
		if err := filing.LastValidator(v); err != nil {
			return &ValidationError{Name: "last", err: fmt.Errorf(`ent: validator failed for field "Filing.last": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilingType(); ok {
		if err := filing.FilingTypeValidator(v); err != nil {
			return &ValidationError{Name: "filing_type", err: fmt.Errorf(`ent: validator failed for field "Filing.filing_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Year(); ok {
		if err := filing.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`ent: validator failed for field "Filing.year": %w`, err)}
		}
	}
	return nil
}

func (_u *FilingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filing.Table, filing.Columns, sqlgraph.NewFieldSpec(filing.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocID(); ok {
		_spec.SetField(filing.FieldDocID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prefix(); ok {
		_spec.SetField(filing.FieldPrefix, field.TypeString, value)
	}
	if _u.mutation.PrefixCleared() {
		_spec.ClearField(filing.FieldPrefix, field.TypeString)
	}
	if value, ok := _u.mutation.Last(); ok {
		_spec.SetField(filing.FieldLast, field.TypeString, value)
	}
	if value, ok := _u.mutation.First(); ok {
		_spec.SetField(filing.FieldFirst, field.TypeString, value)
	}
	if _u.mutation.FirstCleared() {
		_spec.ClearField(filing.FieldFirst, field.TypeString)
	}
	if value, ok := _u.mutation.Suffix(); ok {
		_spec.SetField(filing.FieldSuffix, field.TypeString, value)
	}
	if _u.mutation.SuffixCleared() {
		_spec.ClearField(filing.FieldSuffix, field.TypeString)
	}
	if value, ok := _u.mutation.FilingType(); ok {
		_spec.SetField(filing.FieldFilingType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateDst(); ok {
		_spec.SetField(filing.FieldStateDst, field.TypeString, value)
	}
	if _u.mutation.StateDstCleared() {
		_spec.ClearField(filing.FieldStateDst, field.TypeString)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(filing.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(filing.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilingDate(); ok {
		_spec.SetField(filing.FieldFilingDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawRow(); ok {
		_spec.SetField(filing.FieldRawRow, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(filing.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FilingUpdateOne is the builder for updating a single Filing entity.
type FilingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FilingMutation
}

// SetDocID sets the "doc_id" field.
func (_u *FilingUpdateOne) SetDocID(v string) *FilingUpdateOne {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableDocID(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetPrefix sets the "prefix" field.
func (_u *FilingUpdateOne) SetPrefix(v string) *FilingUpdateOne {
	_u.mutation.SetPrefix(v)
	return _u
}

// SetNillablePrefix sets the "prefix" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillablePrefix(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetPrefix(*v)
	}
	return _u
}

// ClearPrefix clears the value of the "prefix" field.
func (_u *FilingUpdateOne) ClearPrefix() *FilingUpdateOne {
	_u.mutation.ClearPrefix()
	return _u
}

// SetLast sets the "last" field.
func (_u *FilingUpdateOne) SetLast(v string) *FilingUpdateOne {
	_u.mutation.SetLast(v)
	return _u
}

// SetNillableLast sets the "last" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableLast(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetLast(*v)
	}
	return _u
}

// SetFirst sets the "first" field.
func (_u *FilingUpdateOne) SetFirst(v string) *FilingUpdateOne {
	_u.mutation.SetFirst(v)
	return _u
}

// SetNillableFirst sets the "first" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableFirst(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetFirst(*v)
	}
	return _u
}

// ClearFirst clears the value of the "first" field.
func (_u *FilingUpdateOne) ClearFirst() *FilingUpdateOne {
	_u.mutation.ClearFirst()
	return _u
}

// SetSuffix sets the "suffix" field.
func (_u *FilingUpdateOne) SetSuffix(v string) *FilingUpdateOne {
	_u.mutation.SetSuffix(v)
	return _u
}

// SetNillableSuffix sets the "suffix" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableSuffix(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetSuffix(*v)
	}
	return _u
}

// ClearSuffix clears the value of the "suffix" field.
func (_u *FilingUpdateOne) ClearSuffix() *FilingUpdateOne {
	_u.mutation.ClearSuffix()
	return _u
}

// SetFilingType sets the "filing_type" field.
func (_u *FilingUpdateOne) SetFilingType(v string) *FilingUpdateOne {
	_u.mutation.SetFilingType(v)
	return _u
}

// SetNillableFilingType sets the "filing_type" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableFilingType(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetFilingType(*v)
	}
	return _u
}

// SetStateDst sets the "state_dst" field.
func (_u *FilingUpdateOne) SetStateDst(v string) *FilingUpdateOne {
	_u.mutation.SetStateDst(v)
	return _u
}

// SetNillableStateDst sets the "state_dst" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableStateDst(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetStateDst(*v)
	}
	return _u
}

// ClearStateDst clears the value of the "state_dst" field.
func (_u *FilingUpdateOne) ClearStateDst() *FilingUpdateOne {
	_u.mutation.ClearStateDst()
	return _u
}

// SetYear sets the "year" field.
func (_u *FilingUpdateOne) SetYear(v int) *FilingUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableYear(v *int) *FilingUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *FilingUpdateOne) AddYear(v int) *FilingUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// SetFilingDate sets the "filing_date" field.
func (_u *FilingUpdateOne) SetFilingDate(v time.Time) *FilingUpdateOne {
	_u.mutation.SetFilingDate(v)
	return _u
}

// SetNillableFilingDate sets the "filing_date" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableFilingDate(v *time.Time) *FilingUpdateOne {
	if v != nil {
		_u.SetFilingDate(*v)
	}
	return _u
}

// SetRawRow sets the "raw_row" field.
func (_u *FilingUpdateOne) SetRawRow(v string) *FilingUpdateOne {
	_u.mutation.SetRawRow(v)
	return _u
}

// SetNillableRawRow sets the "raw_row" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableRawRow(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetRawRow(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FilingUpdateOne) SetCreatedAt(v time.Time) *FilingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableCreatedAt(v *time.Time) *FilingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the FilingMutation object of the builder.
func (_u *FilingUpdateOne) Mutation() *FilingMutation {
	return _u.mutation
}

// Where appends a list predicates to the FilingUpdate builder.
func (_u *FilingUpdateOne) Where(ps ...predicate.Filing) *FilingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FilingUpdateOne) Select(field string, fields ...string) *FilingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Filing entity.
func (_u *FilingUpdateOne) Save(ctx context.Context) (*Filing, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FilingUpdateOne) SaveX(ctx context.Context) *Filing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FilingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FilingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FilingUpdateOne) check() error {
	if v, ok := _u.mutation.DocID(); ok {
		if err := filing.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "Filing.doc_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Last(); ok {
		if err := filing.LastValidator(v); err != nil {
			return &ValidationError{Name: "last", err: fmt.Errorf(`ent: validator failed for field "Filing.last": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilingType(); ok {
		if err := filing.FilingTypeValidator(v); err != nil {
			return &ValidationError{Name: "filing_type", err: fmt.Errorf(`ent: validator failed for field "Filing.filing_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Year(); ok {
		if err := filing.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`ent: validator failed for field "Filing.year": %w`, err)}
		}
	}
	return nil
}

func (_u *FilingUpdateOne) sqlSave(ctx context.Context) (_node *Filing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filing.Table, filing.Columns, sqlgraph.NewFieldSpec(filing.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Filing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, filing.FieldID)
		for _, f := range fields {
			if !filing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != filing.FieldID {
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
		_spec.SetField(filing.FieldDocID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prefix(); ok {
		_spec.SetField(filing.FieldPrefix, field.TypeString, value)
	}
	if _u.mutation.PrefixCleared() {
		_spec.ClearField(filing.FieldPrefix, field.TypeString)
	}
	if value, ok := _u.mutation.Last(); ok {
		_spec.SetField(filing.FieldLast, field.TypeString, value)
	}
	if value, ok := _u.mutation.First(); ok {
		_spec.SetField(filing.FieldFirst, field.TypeString, value)
	}
	if _u.mutation.FirstCleared() {
		_spec.ClearField(filing.FieldFirst, field.TypeString)
	}
	if value, ok := _u.mutation.Suffix(); ok {
		_spec.SetField(filing.FieldSuffix, field.TypeString, value)
	}
	if _u.mutation.SuffixCleared() {
		_spec.ClearField(filing.FieldSuffix, field.TypeString)
	}
	if value, ok := _u.mutation.FilingType(); ok {
		_spec.SetField(filing.FieldFilingType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateDst(); ok {
		_spec.SetField(filing.FieldStateDst, field.TypeString, value)
	}
	if _u.mutation.StateDstCleared() {
		_spec.ClearField(filing.FieldStateDst, field.TypeString)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(filing.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(filing.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilingDate(); ok {
		_spec.SetField(filing.FieldFilingDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawRow(); ok {
		_spec.SetField(filing.FieldRawRow, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(filing.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Filing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
