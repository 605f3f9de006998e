// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mholloway/ptr-tracker/gen/ent/download"
	"github.com/mholloway/ptr-tracker/gen/ent/ocrresult"
	"github.com/mholloway/ptr-tracker/gen/ent/predicate"
)

// DownloadQuery is the builder for querying Download entities.
type DownloadQuery struct {
	config
	ctx            *QueryContext
	order          []download.OrderOption
	inters         []Interceptor
	predicates     []predicate.Download
	withOcrResults *OcrResultQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DownloadQuery builder.
func (_q *DownloadQuery) Where(ps ...predicate.Download) *DownloadQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DownloadQuery) Limit(limit int) *DownloadQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DownloadQuery) Offset(offset int) *DownloadQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DownloadQuery) Unique(unique bool) *DownloadQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DownloadQuery) Order(o ...download.OrderOption) *DownloadQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryOcrResults chains the current query on the "ocr_results" edge.
func (_q *DownloadQuery) QueryOcrResults() *OcrResultQuery {
	query := (&OcrResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(download.Table, download.FieldID, selector),
			sqlgraph.To(ocrresult.Table, ocrresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, download.OcrResultsTable, download.OcrResultsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Download entity from the query.
// Returns a *NotFoundError when no Download was found.
func (_q *DownloadQuery) First(ctx context.Context) (*Download, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{download.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DownloadQuery) FirstX(ctx context.Context) *Download {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Download ID from the query.
// Returns a *NotFoundError when no Download ID was found.
func (_q *DownloadQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{download.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DownloadQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Download entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Download entity is found.
// Returns a *NotFoundError when no Download entities are found.
func (_q *DownloadQuery) Only(ctx context.Context) (*Download, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{download.Label}
	default:
		return nil, &NotSingularError{download.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DownloadQuery) OnlyX(ctx context.Context) *Download {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Download ID in the query.
// Returns a *NotSingularError when more than one Download ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DownloadQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{download.Label}
	default:
		err = &NotSingularError{download.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DownloadQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Downloads.
func (_q *DownloadQuery) All(ctx context.Context) ([]*Download, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Download, *DownloadQuery]()
	return withInterceptors[[]*Download](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DownloadQuery) AllX(ctx context.Context) []*Download {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Download IDs.
func (_q *DownloadQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(download.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DownloadQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DownloadQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DownloadQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DownloadQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DownloadQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DownloadQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DownloadQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DownloadQuery) Clone() *DownloadQuery {
	if _q == nil {
		return nil
	}
	return &DownloadQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]download.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Download{}, _q.predicates...),
		withOcrResults: _q.withOcrResults.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithOcrResults tells the query-builder to eager-load the nodes that are connected to
// the "ocr_results" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DownloadQuery) WithOcrResults(opts ...func(*OcrResultQuery)) *DownloadQuery {
	query := (&OcrResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOcrResults = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DocID string `json:"doc_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Download.Query().
//		GroupBy(download.FieldDocID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DownloadQuery) GroupBy(field string, fields ...string) *DownloadGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DownloadGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = download.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DocID string `json:"doc_id,omitempty"`
//	}
//
//	client.Download.Query().
//		Select(download.FieldDocID).
//		Scan(ctx, &v)
func (_q *DownloadQuery) Select(fields ...string) *DownloadSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DownloadSelect{DownloadQuery: _q}
	sbuild.label = download.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DownloadSelect configured with the given aggregations.
func (_q *DownloadQuery) Aggregate(fns ...AggregateFunc) *DownloadSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DownloadQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !download.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DownloadQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Download, error) {
	var (
		nodes       = []*Download{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withOcrResults != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Download).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Download{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withOcrResults; query != nil {
		if err := _q.loadOcrResults(ctx, query, nodes,
			func(n *Download) { n.Edges.OcrResults = []*OcrResult{} },
			func(n *Download, e *OcrResult) { n.Edges.OcrResults = append(n.Edges.OcrResults, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DownloadQuery) loadOcrResults(ctx context.Context, query *OcrResultQuery, nodes []*Download, init func(*Download), assign func(*Download, *OcrResult)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Download)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(ocrresult.FieldDownloadID)
	}
	query.Where(predicate.OcrResult(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(download.OcrResultsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DownloadID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "download_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DownloadQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DownloadQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(download.Table, download.Columns, sqlgraph.NewFieldSpec(download.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, download.FieldID)
		for i := range fields {
			if fields[i] != download.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DownloadQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(download.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = download.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DownloadGroupBy is the group-by builder for Download entities.
type DownloadGroupBy struct {
	selector
	build *DownloadQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DownloadGroupBy) Aggregate(fns ...AggregateFunc) *DownloadGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DownloadGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DownloadQuery, *DownloadGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DownloadGroupBy) sqlScan(ctx context.Context, root *DownloadQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DownloadSelect is the builder for selecting fields of Download entities.
type DownloadSelect struct {
	*DownloadQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DownloadSelect) Aggregate(fns ...AggregateFunc) *DownloadSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DownloadSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DownloadQuery, *DownloadSelect](ctx, _s.DownloadQuery, _s, _s.inters, v)
}

func (_s *DownloadSelect) sqlScan(ctx context.Context, root *DownloadQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
