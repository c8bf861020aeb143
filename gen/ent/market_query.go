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
	"github.com/google/uuid"
	"github.com/promowatch/promo-tracker/gen/ent/market"
	"github.com/promowatch/promo-tracker/gen/ent/predicate"
	"github.com/promowatch/promo-tracker/gen/ent/promotion"
)

// MarketQuery is the builder for querying Market entities.
type MarketQuery struct {
	config
	ctx            *QueryContext
	order          []market.OrderOption
	inters         []Interceptor
	predicates     []predicate.Market
	withPromotions *PromotionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MarketQuery builder.
func (_q *MarketQuery) Where(ps ...predicate.Market) *MarketQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MarketQuery) Limit(limit int) *MarketQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MarketQuery) Offset(offset int) *MarketQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MarketQuery) Unique(unique bool) *MarketQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MarketQuery) Order(o ...market.OrderOption) *MarketQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPromotions chains the current query on the "promotions" edge.
func (_q *MarketQuery) QueryPromotions() *PromotionQuery {
	query := (&PromotionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(market.Table, market.FieldID, selector),
			sqlgraph.To(promotion.Table, promotion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, market.PromotionsTable, market.PromotionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Market entity from the query.
// Returns a *NotFoundError when no Market was found.
func (_q *MarketQuery) First(ctx context.Context) (*Market, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{market.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MarketQuery) FirstX(ctx context.Context) *Market {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Market ID from the query.
// Returns a *NotFoundError when no Market ID was found.
func (_q *MarketQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{market.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MarketQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Market entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Market entity is found.
// Returns a *NotFoundError when no Market entities are found.
func (_q *MarketQuery) Only(ctx context.Context) (*Market, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{market.Label}
	default:
		return nil, &NotSingularError{market.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MarketQuery) OnlyX(ctx context.Context) *Market {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Market ID in the query.
// Returns a *NotSingularError when more than one Market ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MarketQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{market.Label}
	default:
		err = &NotSingularError{market.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MarketQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Markets.
func (_q *MarketQuery) All(ctx context.Context) ([]*Market, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Market, *MarketQuery]()
	return withInterceptors[[]*Market](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MarketQuery) AllX(ctx context.Context) []*Market {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Market IDs.
func (_q *MarketQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(market.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MarketQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MarketQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MarketQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MarketQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MarketQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *MarketQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MarketQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MarketQuery) Clone() *MarketQuery {
	if _q == nil {
		return nil
	}
	return &MarketQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]market.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Market{}, _q.predicates...),
		withPromotions: _q.withPromotions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPromotions tells the query-builder to eager-load the nodes that are connected to
// the "promotions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MarketQuery) WithPromotions(opts ...func(*PromotionQuery)) *MarketQuery {
	query := (&PromotionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPromotions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Handle string `json:"handle,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Market.Query().
//		GroupBy(market.FieldHandle).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MarketQuery) GroupBy(field string, fields ...string) *MarketGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MarketGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = market.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Handle string `json:"handle,omitempty"`
//	}
//
//	client.Market.Query().
//		Select(market.FieldHandle).
//		Scan(ctx, &v)
func (_q *MarketQuery) Select(fields ...string) *MarketSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MarketSelect{MarketQuery: _q}
	sbuild.label = market.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MarketSelect configured with the given aggregations.
func (_q *MarketQuery) Aggregate(fns ...AggregateFunc) *MarketSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MarketQuery) prepareQuery(ctx context.Context) error {
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
		if !market.ValidColumn(f) {
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

func (_q *MarketQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Market, error) {
	var (
		nodes       = []*Market{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withPromotions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Market).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Market{config: _q.config}
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
	if query := _q.withPromotions; query != nil {
		if err := _q.loadPromotions(ctx, query, nodes,
			func(n *Market) { n.Edges.Promotions = []*Promotion{} },
			func(n *Market, e *Promotion) { n.Edges.Promotions = append(n.Edges.Promotions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MarketQuery) loadPromotions(ctx context.Context, query *PromotionQuery, nodes []*Market, init func(*Market), assign func(*Market, *Promotion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Market)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(promotion.FieldMarketID)
	}
	query.Where(predicate.Promotion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(market.PromotionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MarketID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "market_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *MarketQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MarketQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(market.Table, market.Columns, sqlgraph.NewFieldSpec(market.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, market.FieldID)
		for i := range fields {
			if fields[i] != market.FieldID {
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

func (_q *MarketQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(market.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = market.Columns
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

// MarketGroupBy is the group-by builder for Market entities.
type MarketGroupBy struct {
	selector
	build *MarketQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MarketGroupBy) Aggregate(fns ...AggregateFunc) *MarketGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MarketGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MarketQuery, *MarketGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MarketGroupBy) sqlScan(ctx context.Context, root *MarketQuery, v any) error {
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

// MarketSelect is the builder for selecting fields of Market entities.
type MarketSelect struct {
	*MarketQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MarketSelect) Aggregate(fns ...AggregateFunc) *MarketSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MarketSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MarketQuery, *MarketSelect](ctx, _s.MarketQuery, _s, _s.inters, v)
}

func (_s *MarketSelect) sqlScan(ctx context.Context, root *MarketQuery, v any) error {
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
