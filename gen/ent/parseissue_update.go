// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mholloway/ptr-tracker/gen/ent/parseissue"
	"github.com/mholloway/ptr-tracker/gen/ent/predicate"
)

// ParseIssueUpdate is the builder for updating ParseIssue entities.
type ParseIssueUpdate struct {
	config
	hooks    []Hook
	mutation *ParseIssueMutation
}

// Where appends a list predicates to the ParseIssueUpdate builder.
func (_u *ParseIssueUpdate) Where(ps ...predicate.ParseIssue) *ParseIssueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ParseIssueMutation object of the builder.
func (_u *ParseIssueUpdate) Mutation() *ParseIssueMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParseIssueUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseIssueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParseIssueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseIssueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ParseIssueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(parseissue.Table, parseissue.Columns, sqlgraph.NewFieldSpec(parseissue.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(parseissue.FieldDetails, field.TypeString)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(parseissue.FieldLocation, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parseissue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParseIssueUpdateOne is the builder for updating a single ParseIssue entity.
type ParseIssueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParseIssueMutation
}

// Mutation returns the ParseIssueMutation object of the builder.
func (_u *ParseIssueUpdateOne) Mutation() *ParseIssueMutation {
	return _u.mutation
}

// Where appends a list predicates to the ParseIssueUpdate builder.
func (_u *ParseIssueUpdateOne) Where(ps ...predicate.ParseIssue) *ParseIssueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParseIssueUpdateOne) Select(field string, fields ...string) *ParseIssueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParseIssue entity.
func (_u *ParseIssueUpdateOne) Save(ctx context.Context) (*ParseIssue, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseIssueUpdateOne) SaveX(ctx context.Context) *ParseIssue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParseIssueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseIssueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ParseIssueUpdateOne) sqlSave(ctx context.Context) (_node *ParseIssue, err error) {
	_spec := sqlgraph.NewUpdateSpec(parseissue.Table, parseissue.Columns, sqlgraph.NewFieldSpec(parseissue.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParseIssue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parseissue.FieldID)
		for _, f := range fields {
			if !parseissue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parseissue.FieldID {
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
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(parseissue.FieldDetails, field.TypeString)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(parseissue.FieldLocation, field.TypeString)
	}
	_node = &ParseIssue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parseissue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
