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
	"github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/ledgerentry"
	"github.com/homecheff/affiliates/ent/predicate"
	"github.com/homecheff/affiliates/ent/promocode"
)

// BusinessSubscriptionQuery is the builder for querying BusinessSubscription entities.
type BusinessSubscriptionQuery struct {
	config
	ctx               *QueryContext
	order             []businesssubscription.OrderOption
	inters            []Interceptor
	predicates        []predicate.BusinessSubscription
	withAttribution   *AttributionQuery
	withPromoCode     *PromoCodeQuery
	withLedgerEntries *LedgerEntryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BusinessSubscriptionQuery builder.
func (_q *BusinessSubscriptionQuery) Where(ps ...predicate.BusinessSubscription) *BusinessSubscriptionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BusinessSubscriptionQuery) Limit(limit int) *BusinessSubscriptionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BusinessSubscriptionQuery) Offset(offset int) *BusinessSubscriptionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BusinessSubscriptionQuery) Unique(unique bool) *BusinessSubscriptionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BusinessSubscriptionQuery) Order(o ...businesssubscription.OrderOption) *BusinessSubscriptionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAttribution chains the current query on the "attribution" edge.
func (_q *BusinessSubscriptionQuery) QueryAttribution() *AttributionQuery {
	query := (&AttributionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(businesssubscription.Table, businesssubscription.FieldID, selector),
			sqlgraph.To(attribution.Table, attribution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, businesssubscription.AttributionTable, businesssubscription.AttributionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPromoCode chains the current query on the "promo_code" edge.
func (_q *BusinessSubscriptionQuery) QueryPromoCode() *PromoCodeQuery {
	query := (&PromoCodeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(businesssubscription.Table, businesssubscription.FieldID, selector),
			sqlgraph.To(promocode.Table, promocode.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, businesssubscription.PromoCodeTable, businesssubscription.PromoCodeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLedgerEntries chains the current query on the "ledger_entries" edge.
func (_q *BusinessSubscriptionQuery) QueryLedgerEntries() *LedgerEntryQuery {
	query := (&LedgerEntryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(businesssubscription.Table, businesssubscription.FieldID, selector),
			sqlgraph.To(ledgerentry.Table, ledgerentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, businesssubscription.LedgerEntriesTable, businesssubscription.LedgerEntriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first BusinessSubscription entity from the query.
// Returns a *NotFoundError when no BusinessSubscription was found.
func (_q *BusinessSubscriptionQuery) First(ctx context.Context) (*BusinessSubscription, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{businesssubscription.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BusinessSubscriptionQuery) FirstX(ctx context.Context) *BusinessSubscription {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BusinessSubscription ID from the query.
// Returns a *NotFoundError when no BusinessSubscription ID was found.
func (_q *BusinessSubscriptionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{businesssubscription.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BusinessSubscriptionQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BusinessSubscription entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BusinessSubscription entity is found.
// Returns a *NotFoundError when no BusinessSubscription entities are found.
func (_q *BusinessSubscriptionQuery) Only(ctx context.Context) (*BusinessSubscription, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{businesssubscription.Label}
	default:
		return nil, &NotSingularError{businesssubscription.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BusinessSubscriptionQuery) OnlyX(ctx context.Context) *BusinessSubscription {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BusinessSubscription ID in the query.
// Returns a *NotSingularError when more than one BusinessSubscription ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BusinessSubscriptionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{businesssubscription.Label}
	default:
		err = &NotSingularError{businesssubscription.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BusinessSubscriptionQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BusinessSubscriptions.
func (_q *BusinessSubscriptionQuery) All(ctx context.Context) ([]*BusinessSubscription, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BusinessSubscription, *BusinessSubscriptionQuery]()
	return withInterceptors[[]*BusinessSubscription](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BusinessSubscriptionQuery) AllX(ctx context.Context) []*BusinessSubscription {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BusinessSubscription IDs.
func (_q *BusinessSubscriptionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(businesssubscription.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BusinessSubscriptionQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BusinessSubscriptionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BusinessSubscriptionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BusinessSubscriptionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BusinessSubscriptionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *BusinessSubscriptionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BusinessSubscriptionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BusinessSubscriptionQuery) Clone() *BusinessSubscriptionQuery {
	if _q == nil {
		return nil
	}
	return &BusinessSubscriptionQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]businesssubscription.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.BusinessSubscription{}, _q.predicates...),
		withAttribution:   _q.withAttribution.Clone(),
		withPromoCode:     _q.withPromoCode.Clone(),
		withLedgerEntries: _q.withLedgerEntries.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAttribution tells the query-builder to eager-load the nodes that are connected to
// the "attribution" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BusinessSubscriptionQuery) WithAttribution(opts ...func(*AttributionQuery)) *BusinessSubscriptionQuery {
	query := (&AttributionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAttribution = query
	return _q
}

// WithPromoCode tells the query-builder to eager-load the nodes that are connected to
// the "promo_code" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BusinessSubscriptionQuery) WithPromoCode(opts ...func(*PromoCodeQuery)) *BusinessSubscriptionQuery {
	query := (&PromoCodeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPromoCode = query
	return _q
}

// WithLedgerEntries tells the query-builder to eager-load the nodes that are connected to
// the "ledger_entries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BusinessSubscriptionQuery) WithLedgerEntries(opts ...func(*LedgerEntryQuery)) *BusinessSubscriptionQuery {
	query := (&LedgerEntryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLedgerEntries = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		StripeSubscriptionID string `json:"stripe_subscription_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.BusinessSubscription.Query().
//		GroupBy(businesssubscription.FieldStripeSubscriptionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BusinessSubscriptionQuery) GroupBy(field string, fields ...string) *BusinessSubscriptionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BusinessSubscriptionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = businesssubscription.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		StripeSubscriptionID string `json:"stripe_subscription_id,omitempty"`
//	}
//
//	client.BusinessSubscription.Query().
//		Select(businesssubscription.FieldStripeSubscriptionID).
//		Scan(ctx, &v)
func (_q *BusinessSubscriptionQuery) Select(fields ...string) *BusinessSubscriptionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BusinessSubscriptionSelect{BusinessSubscriptionQuery: _q}
	sbuild.label = businesssubscription.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BusinessSubscriptionSelect configured with the given aggregations.
func (_q *BusinessSubscriptionQuery) Aggregate(fns ...AggregateFunc) *BusinessSubscriptionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BusinessSubscriptionQuery) prepareQuery(ctx context.Context) error {
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
		if !businesssubscription.ValidColumn(f) {
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

func (_q *BusinessSubscriptionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BusinessSubscription, error) {
	var (
		nodes       = []*BusinessSubscription{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withAttribution != nil,
			_q.withPromoCode != nil,
			_q.withLedgerEntries != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BusinessSubscription).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BusinessSubscription{config: _q.config}
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
	if query := _q.withAttribution; query != nil {
		if err := _q.loadAttribution(ctx, query, nodes, nil,
			func(n *BusinessSubscription, e *Attribution) { n.Edges.Attribution = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPromoCode; query != nil {
		if err := _q.loadPromoCode(ctx, query, nodes, nil,
			func(n *BusinessSubscription, e *PromoCode) { n.Edges.PromoCode = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLedgerEntries; query != nil {
		if err := _q.loadLedgerEntries(ctx, query, nodes,
			func(n *BusinessSubscription) { n.Edges.LedgerEntries = []*LedgerEntry{} },
			func(n *BusinessSubscription, e *LedgerEntry) {
				n.Edges.LedgerEntries = append(n.Edges.LedgerEntries, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BusinessSubscriptionQuery) loadAttribution(ctx context.Context, query *AttributionQuery, nodes []*BusinessSubscription, init func(*BusinessSubscription), assign func(*BusinessSubscription, *Attribution)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*BusinessSubscription)
	for i := range nodes {
		if nodes[i].AttributionID == nil {
			continue
		}
		fk := *nodes[i].AttributionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(attribution.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "attribution_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BusinessSubscriptionQuery) loadPromoCode(ctx context.Context, query *PromoCodeQuery, nodes []*BusinessSubscription, init func(*BusinessSubscription), assign func(*BusinessSubscription, *PromoCode)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*BusinessSubscription)
	for i := range nodes {
		if nodes[i].PromoCodeID == nil {
			continue
		}
		fk := *nodes[i].PromoCodeID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(promocode.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "promo_code_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BusinessSubscriptionQuery) loadLedgerEntries(ctx context.Context, query *LedgerEntryQuery, nodes []*BusinessSubscription, init func(*BusinessSubscription), assign func(*BusinessSubscription, *LedgerEntry)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*BusinessSubscription)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(ledgerentry.FieldSubscriptionID)
	}
	query.Where(predicate.LedgerEntry(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(businesssubscription.LedgerEntriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SubscriptionID
		if fk == nil {
			return fmt.Errorf(`foreign-key "subscription_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "subscription_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *BusinessSubscriptionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BusinessSubscriptionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(businesssubscription.Table, businesssubscription.Columns, sqlgraph.NewFieldSpec(businesssubscription.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, businesssubscription.FieldID)
		for i := range fields {
			if fields[i] != businesssubscription.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAttribution != nil {
			_spec.Node.AddColumnOnce(businesssubscription.FieldAttributionID)
		}
		if _q.withPromoCode != nil {
			_spec.Node.AddColumnOnce(businesssubscription.FieldPromoCodeID)
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

func (_q *BusinessSubscriptionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(businesssubscription.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = businesssubscription.Columns
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

// BusinessSubscriptionGroupBy is the group-by builder for BusinessSubscription entities.
type BusinessSubscriptionGroupBy struct {
	selector
	build *BusinessSubscriptionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BusinessSubscriptionGroupBy) Aggregate(fns ...AggregateFunc) *BusinessSubscriptionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BusinessSubscriptionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BusinessSubscriptionQuery, *BusinessSubscriptionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BusinessSubscriptionGroupBy) sqlScan(ctx context.Context, root *BusinessSubscriptionQuery, v any) error {
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

// BusinessSubscriptionSelect is the builder for selecting fields of BusinessSubscription entities.
type BusinessSubscriptionSelect struct {
	*BusinessSubscriptionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BusinessSubscriptionSelect) Aggregate(fns ...AggregateFunc) *BusinessSubscriptionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BusinessSubscriptionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BusinessSubscriptionQuery, *BusinessSubscriptionSelect](ctx, _s.BusinessSubscriptionQuery, _s, _s.inters, v)
}

func (_s *BusinessSubscriptionSelect) sqlScan(ctx context.Context, root *BusinessSubscriptionQuery, v any) error {
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
