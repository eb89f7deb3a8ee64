// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homecheff/affiliates/ent/predicate"
	"github.com/homecheff/affiliates/ent/referralclick"
	"github.com/homecheff/affiliates/ent/referrallink"
)

// ReferralClickQuery is the builder for querying ReferralClick entities.
type ReferralClickQuery struct {
	config
	ctx        *QueryContext
	order      []referralclick.OrderOption
	inters     []Interceptor
	predicates []predicate.ReferralClick
	withLink   *ReferralLinkQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ReferralClickQuery builder.
func (_q *ReferralClickQuery) Where(ps ...predicate.ReferralClick) *ReferralClickQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ReferralClickQuery) Limit(limit int) *ReferralClickQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ReferralClickQuery) Offset(offset int) *ReferralClickQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ReferralClickQuery) Unique(unique bool) *ReferralClickQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ReferralClickQuery) Order(o ...referralclick.OrderOption) *ReferralClickQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryLink chains the current query on the "link" edge.
func (_q *ReferralClickQuery) QueryLink() *ReferralLinkQuery {
	query := (&ReferralLinkClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(referralclick.Table, referralclick.FieldID, selector),
			sqlgraph.To(referrallink.Table, referrallink.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, referralclick.LinkTable, referralclick.LinkColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ReferralClick entity from the query.
// Returns a *NotFoundError when no ReferralClick was found.
func (_q *ReferralClickQuery) First(ctx context.Context) (*ReferralClick, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{referralclick.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ReferralClickQuery) FirstX(ctx context.Context) *ReferralClick {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ReferralClick ID from the query.
// Returns a *NotFoundError when no ReferralClick ID was found.
func (_q *ReferralClickQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{referralclick.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ReferralClickQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ReferralClick entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ReferralClick entity is found.
// Returns a *NotFoundError when no ReferralClick entities are found.
func (_q *ReferralClickQuery) Only(ctx context.Context) (*ReferralClick, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{referralclick.Label}
	default:
		return nil, &NotSingularError{referralclick.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ReferralClickQuery) OnlyX(ctx context.Context) *ReferralClick {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ReferralClick ID in the query.
// Returns a *NotSingularError when more than one ReferralClick ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ReferralClickQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{referralclick.Label}
	default:
		err = &NotSingularError{referralclick.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ReferralClickQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ReferralClicks.
func (_q *ReferralClickQuery) All(ctx context.Context) ([]*ReferralClick, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ReferralClick, *ReferralClickQuery]()
	return withInterceptors[[]*ReferralClick](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ReferralClickQuery) AllX(ctx context.Context) []*ReferralClick {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ReferralClick IDs.
func (_q *ReferralClickQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(referralclick.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ReferralClickQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ReferralClickQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ReferralClickQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ReferralClickQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ReferralClickQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ReferralClickQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ReferralClickQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ReferralClickQuery) Clone() *ReferralClickQuery {
	if _q == nil {
		return nil
	}
	return &ReferralClickQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]referralclick.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.ReferralClick{}, _q.predicates...),
		withLink:   _q.withLink.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithLink tells the query-builder to eager-load the nodes that are connected to
// the "link" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReferralClickQuery) WithLink(opts ...func(*ReferralLinkQuery)) *ReferralClickQuery {
	query := (&ReferralLinkClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLink = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		LinkID int `json:"link_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ReferralClick.Query().
//		GroupBy(referralclick.FieldLinkID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ReferralClickQuery) GroupBy(field string, fields ...string) *ReferralClickGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ReferralClickGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = referralclick.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		LinkID int `json:"link_id,omitempty"`
//	}
//
//	client.ReferralClick.Query().
//		Select(referralclick.FieldLinkID).
//		Scan(ctx, &v)
func (_q *ReferralClickQuery) Select(fields ...string) *ReferralClickSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ReferralClickSelect{ReferralClickQuery: _q}
	sbuild.label = referralclick.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ReferralClickSelect configured with the given aggregations.
func (_q *ReferralClickQuery) Aggregate(fns ...AggregateFunc) *ReferralClickSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ReferralClickQuery) prepareQuery(ctx context.Context) error {
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
		if !referralclick.ValidColumn(f) {
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

func (_q *ReferralClickQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ReferralClick, error) {
	var (
		nodes       = []*ReferralClick{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withLink != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ReferralClick).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ReferralClick{config: _q.config}
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
	if query := _q.withLink; query != nil {
		if err := _q.loadLink(ctx, query, nodes, nil,
			func(n *ReferralClick, e *ReferralLink) { n.Edges.Link = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ReferralClickQuery) loadLink(ctx context.Context, query *ReferralLinkQuery, nodes []*ReferralClick, init func(*ReferralClick), assign func(*ReferralClick, *ReferralLink)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ReferralClick)
	for i := range nodes {
		fk := nodes[i].LinkID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(referrallink.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "link_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ReferralClickQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ReferralClickQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(referralclick.Table, referralclick.Columns, sqlgraph.NewFieldSpec(referralclick.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, referralclick.FieldID)
		for i := range fields {
			if fields[i] != referralclick.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withLink != nil {
			_spec.Node.AddColumnOnce(referralclick.FieldLinkID)
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

func (_q *ReferralClickQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(referralclick.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = referralclick.Columns
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

// ReferralClickGroupBy is the group-by builder for ReferralClick entities.
type ReferralClickGroupBy struct {
	selector
	build *ReferralClickQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ReferralClickGroupBy) Aggregate(fns ...AggregateFunc) *ReferralClickGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ReferralClickGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReferralClickQuery, *ReferralClickGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ReferralClickGroupBy) sqlScan(ctx context.Context, root *ReferralClickQuery, v any) error {
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

// ReferralClickSelect is the builder for selecting fields of ReferralClick entities.
type ReferralClickSelect struct {
	*ReferralClickQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ReferralClickSelect) Aggregate(fns ...AggregateFunc) *ReferralClickSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ReferralClickSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReferralClickQuery, *ReferralClickSelect](ctx, _s.ReferralClickQuery, _s, _s.inters, v)
}

func (_s *ReferralClickSelect) sqlScan(ctx context.Context, root *ReferralClickQuery, v any) error {
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
