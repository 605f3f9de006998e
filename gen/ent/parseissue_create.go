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
	"github.com/mholloway/ptr-tracker/gen/ent/parseissue"
)

// ParseIssueCreate is the builder for creating a ParseIssue entity.
type ParseIssueCreate struct {
	config
	mutation *ParseIssueMutation
	hooks    []Hook
}

// SetDocID sets the "doc_id" field.
func (_c *ParseIssueCreate) SetDocID(v string) *ParseIssueCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ParseIssueCreate) SetSeverity(v string) *ParseIssueCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ParseIssueCreate) SetCategory(v string) *ParseIssueCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *ParseIssueCreate) SetMessage(v string) *ParseIssueCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *ParseIssueCreate) SetDetails(v string) *ParseIssueCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *ParseIssueCreate) SetNillableDetails(v *string) *ParseIssueCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *ParseIssueCreate) SetLocation(v string) *ParseIssueCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *ParseIssueCreate) SetNillableLocation(v *string) *ParseIssueCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ParseIssueCreate) SetCreatedAt(v time.Time) *ParseIssueCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ParseIssueCreate) SetNillableCreatedAt(v *time.Time) *ParseIssueCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ParseIssueCreate) SetID(v uuid.UUID) *ParseIssueCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ParseIssueCreate) SetNillableID(v *uuid.UUID) *ParseIssueCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ParseIssueMutation object of the builder.
func (_c *ParseIssueCreate) Mutation() *ParseIssueMutation {
	return _c.mutation
}

// Save creates the ParseIssue in the database.
func (_c *ParseIssueCreate) Save(ctx context.Context) (*ParseIssue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParseIssueCreate) SaveX(ctx context.Context) *ParseIssue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParseIssueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParseIssueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParseIssueCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := parseissue.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := parseissue.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParseIssueCreate) check() error {
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "ParseIssue.doc_id"`)}
	}
	if v, ok := _c.mutation.DocID(); ok {
		if err := parseissue.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "ParseIssue.doc_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "ParseIssue.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := parseissue.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ParseIssue.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ParseIssue.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := parseissue.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ParseIssue.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "ParseIssue.message"`)}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := parseissue.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "ParseIssue.message": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ParseIssue.created_at"`)}
	}
	return nil
}

func (_c *ParseIssueCreate) sqlSave(ctx context.Context) (*ParseIssue, error) {
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

func (_c *ParseIssueCreate) createSpec() (*ParseIssue, *sqlgraph.CreateSpec) {
	var (
		_node = &ParseIssue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(parseissue.Table, sqlgraph.NewFieldSpec(parseissue.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocID(); ok {
		_spec.SetField(parseissue.FieldDocID, field.TypeString, value)
		_node.DocID = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(parseissue.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(parseissue.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(parseissue.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(parseissue.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(parseissue.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(parseissue.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ParseIssueCreateBulk is the builder for creating many ParseIssue entities in bulk.
type ParseIssueCreateBulk struct {
	config
	err      error
	builders []*ParseIssueCreate
}

// Save creates the ParseIssue entities in the database.
func (_c *ParseIssueCreateBulk) Save(ctx context.Context) ([]*ParseIssue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParseIssue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParseIssueMutation)
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
func (_c *ParseIssueCreateBulk) SaveX(ctx context.Context) []*ParseIssue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParseIssueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParseIssueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
