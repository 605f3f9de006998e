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
	"github.com/google/uuid"
	"github.com/mholloway/ptr-tracker/gen/ent/predicate"
	"github.com/mholloway/ptr-tracker/gen/ent/report"
	"github.com/mholloway/ptr-tracker/gen/ent/transaction"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *ReportUpdate) SetDocID(v string) *ReportUpdate {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDocID(v *string) *ReportUpdate {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetFilerName sets the "filer_name" field.
func (_u *ReportUpdate) SetFilerName(v string) *ReportUpdate {
	_u.mutation.SetFilerName(v)
	return _u
}

// SetNillableFilerName sets the "filer_name" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableFilerName(v *string) *ReportUpdate {
	if v != nil {
		_u.SetFilerName(*v)
	}
	return _u
}

// SetFilerStatus sets the "filer_status" field.
func (_u *ReportUpdate) SetFilerStatus(v string) *ReportUpdate {
	_u.mutation.SetFilerStatus(v)
	return _u
}

// SetNillableFilerStatus sets the "filer_status" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableFilerStatus(v *string) *ReportUpdate {
	if v != nil {
		_u.SetFilerStatus(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ReportUpdate) SetState(v string) *ReportUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableState(v *string) *ReportUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetDistrict sets the "district" field.
func (_u *ReportUpdate) SetDistrict(v int) *ReportUpdate {
	_u.mutation.ResetDistrict()
	_u.mutation.SetDistrict(v)
	return _u
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDistrict(v *int) *ReportUpdate {
	if v != nil {
		_u.SetDistrict(*v)
	}
	return _u
}

// AddDistrict adds value to the "district" field.
func (_u *ReportUpdate) AddDistrict(v int) *ReportUpdate {
	_u.mutation.AddDistrict(v)
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *ReportUpdate) SetSourceURL(v string) *ReportUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableSourceURL(v *string) *ReportUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReportUpdate) SetCreatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCreatedAt(v *time.Time) *ReportUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *ReportUpdate) AddTransactionIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *ReportUpdate) AddTransactions(v ...*Transaction) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *ReportUpdate) ClearTransactions() *ReportUpdate {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *ReportUpdate) RemoveTransactionIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *ReportUpdate) RemoveTransactions(v ...*Transaction) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if v, ok := _u.mutation.DocID(); ok {
		if err := report.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "Report.doc_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilerName(); ok {
		if err := report.FilerNameValidator(v); err != nil {
			return &ValidationError{Name: "filer_name", err: fmt.Errorf(`ent: validator failed for field "Report.filer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilerStatus(); ok {
		if err := report.FilerStatusValidator(v); err != nil {
			return &ValidationError{Name: "filer_status", err: fmt.Errorf(`ent: validator failed for field "Report.filer_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := report.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Report.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.District(); ok {
		if err := report.DistrictValidator(v); err != nil {
			return &ValidationError{Name: "district", err: fmt.Errorf(`ent: validator failed for field "Report.district": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceURL(); ok {
		if err := report.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "Report.source_url": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocID(); ok {
		_spec.SetField(report.FieldDocID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilerName(); ok {
		_spec.SetField(report.FieldFilerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilerStatus(); ok {
		_spec.SetField(report.FieldFilerStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(report.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.District(); ok {
		_spec.SetField(report.FieldDistrict, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDistrict(); ok {
		_spec.AddField(report.FieldDistrict, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(report.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.TransactionsTable,
			Columns: []string{report.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.TransactionsTable,
			Columns: []string{report.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.TransactionsTable,
			Columns: []string{report.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetDocID sets the "doc_id" field.
func (_u *ReportUpdateOne) SetDocID(v string) *ReportUpdateOne {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDocID(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetFilerName sets the "filer_name" field.
func (_u *ReportUpdateOne) SetFilerName(v string) *ReportUpdateOne {
	_u.mutation.SetFilerName(v)
	return _u
}

// SetNillableFilerName sets the "filer_name" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableFilerName(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetFilerName(*v)
	}
	return _u
}

// SetFilerStatus sets the "filer_status" field.
func (_u *ReportUpdateOne) SetFilerStatus(v string) *ReportUpdateOne {
	_u.mutation.SetFilerStatus(v)
	return _u
}

// SetNillableFilerStatus sets the "filer_status" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableFilerStatus(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetFilerStatus(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ReportUpdateOne) SetState(v string) *ReportUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableState(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetDistrict sets the "district" field.
func (_u *ReportUpdateOne) SetDistrict(v int) *ReportUpdateOne {
	_u.mutation.ResetDistrict()
	_u.mutation.SetDistrict(v)
	return _u
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDistrict(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetDistrict(*v)
	}
	return _u
}

// AddDistrict adds value to the "district" field.
func (_u *ReportUpdateOne) AddDistrict(v int) *ReportUpdateOne {
	_u.mutation.AddDistrict(v)
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *ReportUpdateOne) SetSourceURL(v string) *ReportUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableSourceURL(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReportUpdateOne) SetCreatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCreatedAt(v *time.Time) *ReportUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *ReportUpdateOne) AddTransactionIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *ReportUpdateOne) AddTransactions(v ...*Transaction) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *ReportUpdateOne) ClearTransactions() *ReportUpdateOne {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *ReportUpdateOne) RemoveTransactionIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *ReportUpdateOne) RemoveTransactions(v ...*Transaction) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if v, ok := _u.mutation.DocID(); ok {
		if err := report.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "Report.doc_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilerName(); ok {
		if err := report.FilerNameValidator(v); err != nil {
			return &ValidationError{Name: "filer_name", err: fmt.Errorf(`ent: validator failed for field "Report.filer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilerStatus(); ok {
		if err := report.FilerStatusValidator(v); err != nil {
			return &ValidationError{Name: "filer_status", err: fmt.Errorf(`ent: validator failed for field "Report.filer_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := report.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Report.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.District(); ok {
		if err := report.DistrictValidator(v); err != nil {
			return &ValidationError{Name: "district", err: fmt.Errorf(`ent: validator failed for field "Report.district": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceURL(); ok {
		if err := report.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "Report.source_url": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
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
		_spec.SetField(report.FieldDocID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilerName(); ok {
		_spec.SetField(report.FieldFilerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilerStatus(); ok {
		_spec.SetField(report.FieldFilerStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(report.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.District(); ok {
		_spec.SetField(report.FieldDistrict, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDistrict(); ok {
		_spec.AddField(report.FieldDistrict, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(report.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.TransactionsTable,
			Columns: []string{report.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.TransactionsTable,
			Columns: []string{report.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.TransactionsTable,
			Columns: []string{report.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
