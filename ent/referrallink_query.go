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
	"github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/predicate"
	"github.com/homecheff/affiliates/ent/referralclick"
	"github.com/homecheff/affiliates/ent/referrallink"
)

// ReferralLinkQuery is the builder for querying ReferralLink entities.
type ReferralLinkQuery struct {
	config
	ctx           *QueryContext
	order         []referrallink.OrderOption
	inters        []Interceptor
	predicates    []predicate.ReferralLink
	withAffiliate *AffiliateQuery
	withClicks    *ReferralClickQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ReferralLinkQuery builder.
func (_q *ReferralLinkQuery) Where(ps ...predicate.ReferralLink) *ReferralLinkQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ReferralLinkQuery) Limit(limit int) *ReferralLinkQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ReferralLinkQuery) Offset(offset int) *ReferralLinkQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ReferralLinkQuery) Unique(unique bool) *ReferralLinkQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ReferralLinkQuery) Order(o ...referrallink.OrderOption) *ReferralLinkQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAffiliate chains the current query on the "affiliate" edge.
func (_q *ReferralLinkQuery) QueryAffiliate() *AffiliateQuery {
	query := (&AffiliateClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(referrallink.Table, referrallink.FieldID, selector),
			sqlgraph.To(affiliate.Table, affiliate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, referrallink.AffiliateTable, referrallink.AffiliateColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryClicks chains the current query on the "clicks" edge.
func (_q *ReferralLinkQuery) QueryClicks() *ReferralClickQuery {
	query := (&ReferralClickClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(referrallink.Table, referrallink.FieldID, selector),
			sqlgraph.To(referralclick.Table, referralclick.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, referrallink.ClicksTable, referrallink.ClicksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ReferralLink entity from the query.
// Returns a *NotFoundError when no ReferralLink was found.
func (_q *ReferralLinkQuery) First(ctx context.Context) (*ReferralLink, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{referrallink.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ReferralLinkQuery) FirstX(ctx context.Context) *ReferralLink {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ReferralLink ID from the query.
// Returns a *NotFoundError when no ReferralLink ID was found.
func (_q *ReferralLinkQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{referrallink.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ReferralLinkQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ReferralLink entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ReferralLink entity is found.
// Returns a *NotFoundError when no ReferralLink entities are found.
func (_q *ReferralLinkQuery) Only(ctx context.Context) (*ReferralLink, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{referrallink.Label}
	default:
		return nil, &NotSingularError{referrallink.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ReferralLinkQuery) OnlyX(ctx context.Context) *ReferralLink {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ReferralLink ID in the query.
// Returns a *NotSingularError when more than one ReferralLink ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ReferralLinkQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{referrallink.Label}
	default:
		err = &NotSingularError{referrallink.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ReferralLinkQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ReferralLinks.
func (_q *ReferralLinkQuery) All(ctx context.Context) ([]*ReferralLink, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ReferralLink, *ReferralLinkQuery]()
	return withInterceptors[[]*ReferralLink](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ReferralLinkQuery) AllX(ctx context.Context) []*ReferralLink {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ReferralLink IDs.
func (_q *ReferralLinkQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(referrallink.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ReferralLinkQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ReferralLinkQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ReferralLinkQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ReferralLinkQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ReferralLinkQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ReferralLinkQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ReferralLinkQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ReferralLinkQuery) Clone() *ReferralLinkQuery {
	if _q == nil {
		return nil
	}
	return &ReferralLinkQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]referrallink.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.ReferralLink{}, _q.predicates...),
		withAffiliate: _q.withAffiliate.Clone(),
		withClicks:    _q.withClicks.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAffiliate tells the query-builder to eager-load the nodes that are connected to
// the "affiliate" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReferralLinkQuery) WithAffiliate(opts ...func(*AffiliateQuery)) *ReferralLinkQuery {
	query := (&AffiliateClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAffiliate = query
	return _q
}

// WithClicks tells the query-builder to eager-load the nodes that are connected to
// the "clicks" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReferralLinkQuery) WithClicks(opts ...func(*ReferralClickQuery)) *ReferralLinkQuery {
	query := (&ReferralClickClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withClicks = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AffiliateID int `json:"affiliate_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ReferralLink.Query().
//		GroupBy(referrallink.FieldAffiliateID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ReferralLinkQuery) GroupBy(field string, fields ...string) *ReferralLinkGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ReferralLinkGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = referrallink.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AffiliateID int `json:"affiliate_id,omitempty"`
//	}
//
//	client.ReferralLink.Query().
//		Select(referrallink.FieldAffiliateID).
//		Scan(ctx, &v)
func (_q *ReferralLinkQuery) Select(fields ...string) *ReferralLinkSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ReferralLinkSelect{ReferralLinkQuery: _q}
	sbuild.label = referrallink.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ReferralLinkSelect configured with the given aggregations.
func (_q *ReferralLinkQuery) Aggregate(fns ...AggregateFunc) *ReferralLinkSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ReferralLinkQuery) prepareQuery(ctx context.Context) error {
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
		if !referrallink.ValidColumn(f) {
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

func (_q *ReferralLinkQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ReferralLink, error) {
	var (
		nodes       = []*ReferralLink{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withAffiliate != nil,
			_q.withClicks != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ReferralLink).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ReferralLink{config: _q.config}
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
	if query := _q.withAffiliate; query != nil {
		if err := _q.loadAffiliate(ctx, query, nodes, nil,
			func(n *ReferralLink, e *Affiliate) { n.Edges.Affiliate = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withClicks; query != nil {
		if err := _q.loadClicks(ctx, query, nodes,
			func(n *ReferralLink) { n.Edges.Clicks = []*ReferralClick{} },
			func(n *ReferralLink, e *ReferralClick) { n.Edges.Clicks = append(n.Edges.Clicks, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ReferralLinkQuery) loadAffiliate(ctx context.Context, query *AffiliateQuery, nodes []*ReferralLink, init func(*ReferralLink), assign func(*ReferralLink, *Affiliate)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ReferralLink)
	for i := range nodes {
		fk := nodes[i].AffiliateID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(affiliate.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "affiliate_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ReferralLinkQuery) loadClicks(ctx context.Context, query *ReferralClickQuery, nodes []*ReferralLink, init func(*ReferralLink), assign func(*ReferralLink, *ReferralClick)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ReferralLink)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(referralclick.FieldLinkID)
	}
	query.Where(predicate.ReferralClick(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(referrallink.ClicksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LinkID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "link_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ReferralLinkQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ReferralLinkQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(referrallink.Table, referrallink.Columns, sqlgraph.NewFieldSpec(referrallink.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, referrallink.FieldID)
		for i := range fields {
			if fields[i] != referrallink.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAffiliate != nil {
			_spec.Node.AddColumnOnce(referrallink.FieldAffiliateID)
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

func (_q *ReferralLinkQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(referrallink.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = referrallink.Columns
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

// ReferralLinkGroupBy is the group-by builder for ReferralLink entities.
type ReferralLinkGroupBy struct {
	selector
	build *ReferralLinkQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ReferralLinkGroupBy) Aggregate(fns ...AggregateFunc) *ReferralLinkGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ReferralLinkGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReferralLinkQuery, *ReferralLinkGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ReferralLinkGroupBy) sqlScan(ctx context.Context, root *ReferralLinkQuery, v any) error {
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

// ReferralLinkSelect is the builder for selecting fields of ReferralLink entities.
type ReferralLinkSelect struct {
	*ReferralLinkQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ReferralLinkSelect) Aggregate(fns ...AggregateFunc) *ReferralLinkSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ReferralLinkSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReferralLinkQuery, *ReferralLinkSelect](ctx, _s.ReferralLinkQuery, _s, _s.inters, v)
}

func (_s *ReferralLinkSelect) sqlScan(ctx context.Context, root *ReferralLinkQuery, v any) error {
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
