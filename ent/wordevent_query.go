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
	"github.com/abhisek/wordwave/ent/predicate"
	"github.com/abhisek/wordwave/ent/wordevent"
)

// WordEventQuery is the builder for querying WordEvent entities.
type WordEventQuery struct {
	config
	ctx        *QueryContext
	order      []wordevent.OrderOption
	inters     []Interceptor
	predicates []predicate.WordEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WordEventQuery builder.
func (weq *WordEventQuery) Where(ps ...predicate.WordEvent) *WordEventQuery {
	weq.predicates = append(weq.predicates, ps...)
	return weq
}

// Limit the number of records to be returned by this query.
func (weq *WordEventQuery) Limit(limit int) *WordEventQuery {
	weq.ctx.Limit = &limit
	return weq
}

// Offset to start from.
func (weq *WordEventQuery) Offset(offset int) *WordEventQuery {
	weq.ctx.Offset = &offset
	return weq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (weq *WordEventQuery) Unique(unique bool) *WordEventQuery {
	weq.ctx.Unique = &unique
	return weq
}

// Order specifies how the records should be ordered.
func (weq *WordEventQuery) Order(o ...wordevent.OrderOption) *WordEventQuery {
	weq.order = append(weq.order, o...)
	return weq
}

// First returns the first WordEvent entity from the query.
// Returns a *NotFoundError when no WordEvent was found.
func (weq *WordEventQuery) First(ctx context.Context) (*WordEvent, error) {
	nodes, err := weq.Limit(1).All(setContextOp(ctx, weq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{wordevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (weq *WordEventQuery) FirstX(ctx context.Context) *WordEvent {
	node, err := weq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WordEvent ID from the query.
// Returns a *NotFoundError when no WordEvent ID was found.
func (weq *WordEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = weq.Limit(1).IDs(setContextOp(ctx, weq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{wordevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (weq *WordEventQuery) FirstIDX(ctx context.Context) int {
	id, err := weq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WordEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WordEvent entity is found.
// Returns a *NotFoundError when no WordEvent entities are found.
func (weq *WordEventQuery) Only(ctx context.Context) (*WordEvent, error) {
	nodes, err := weq.Limit(2).All(setContextOp(ctx, weq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{wordevent.Label}
	default:
		return nil, &NotSingularError{wordevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (weq *WordEventQuery) OnlyX(ctx context.Context) *WordEvent {
	node, err := weq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WordEvent ID in the query.
// Returns a *NotSingularError when more than one WordEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (weq *WordEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = weq.Limit(2).IDs(setContextOp(ctx, weq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{wordevent.Label}
	default:
		err = &NotSingularError{wordevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (weq *WordEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := weq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WordEvents.
func (weq *WordEventQuery) All(ctx context.Context) ([]*WordEvent, error) {
	ctx = setContextOp(ctx, weq.ctx, ent.OpQueryAll)
	if err := weq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WordEvent, *WordEventQuery]()
	return withInterceptors[[]*WordEvent](ctx, weq, qr, weq.inters)
}

// AllX is like All, but panics if an error occurs.
func (weq *WordEventQuery) AllX(ctx context.Context) []*WordEvent {
	nodes, err := weq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WordEvent IDs.
func (weq *WordEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if weq.ctx.Unique == nil && weq.path != nil {
		weq.Unique(true)
	}
	ctx = setContextOp(ctx, weq.ctx, ent.OpQueryIDs)
	if err = weq.Select(wordevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (weq *WordEventQuery) IDsX(ctx context.Context) []int {
	ids, err := weq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (weq *WordEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, weq.ctx, ent.OpQueryCount)
	if err := weq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, weq, querierCount[*WordEventQuery](), weq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (weq *WordEventQuery) CountX(ctx context.Context) int {
	count, err := weq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (weq *WordEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, weq.ctx, ent.OpQueryExist)
	switch _, err := weq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (weq *WordEventQuery) ExistX(ctx context.Context) bool {
	exist, err := weq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WordEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (weq *WordEventQuery) Clone() *WordEventQuery {
	if weq == nil {
		return nil
	}
	return &WordEventQuery{
		config:     weq.config,
		ctx:        weq.ctx.Clone(),
		order:      append([]wordevent.OrderOption{}, weq.order...),
		inters:     append([]Interceptor{}, weq.inters...),
		predicates: append([]predicate.WordEvent{}, weq.predicates...),
		// clone intermediate query.
		sql:  weq.sql.Clone(),
		path: weq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.WordEvent.Query().
//		GroupBy(wordevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (weq *WordEventQuery) GroupBy(field string, fields ...string) *WordEventGroupBy {
	weq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WordEventGroupBy{build: weq}
	grbuild.flds = &weq.ctx.Fields
	grbuild.label = wordevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.WordEvent.Query().
//		Select(wordevent.FieldSequence).
//		Scan(ctx, &v)
func (weq *WordEventQuery) Select(fields ...string) *WordEventSelect {
	weq.ctx.Fields = append(weq.ctx.Fields, fields...)
	sbuild := &WordEventSelect{WordEventQuery: weq}
	sbuild.label = wordevent.Label
	sbuild.flds, sbuild.scan = &weq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WordEventSelect configured with the given aggregations.
func (weq *WordEventQuery) Aggregate(fns ...AggregateFunc) *WordEventSelect {
	return weq.Select().Aggregate(fns...)
}

func (weq *WordEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range weq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, weq); err != nil {
				return err
			}
		}
	}
	for _, f := range weq.ctx.Fields {
		if !wordevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if weq.path != nil {
		prev, err := weq.path(ctx)
		if err != nil {
			return err
		}
		weq.sql = prev
	}
	return nil
}

func (weq *WordEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WordEvent, error) {
	var (
		nodes = []*WordEvent{}
		_spec = weq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WordEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WordEvent{config: weq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, weq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (weq *WordEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := weq.querySpec()
	_spec.Node.Columns = weq.ctx.Fields
	if len(weq.ctx.Fields) > 0 {
		_spec.Unique = weq.ctx.Unique != nil && *weq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, weq.driver, _spec)
}

func (weq *WordEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(wordevent.Table, wordevent.Columns, sqlgraph.NewFieldSpec(wordevent.FieldID, field.TypeInt))
	_spec.From = weq.sql
	if unique := weq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if weq.path != nil {
		_spec.Unique = true
	}
	if fields := weq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wordevent.FieldID)
		for i := range fields {
			if fields[i] != wordevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := weq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := weq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := weq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := weq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (weq *WordEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(weq.driver.Dialect())
	t1 := builder.Table(wordevent.Table)
	columns := weq.ctx.Fields
	if len(columns) == 0 {
		columns = wordevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if weq.sql != nil {
		selector = weq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if weq.ctx.Unique != nil && *weq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range weq.predicates {
		p(selector)
	}
	for _, p := range weq.order {
		p(selector)
	}
	if offset := weq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := weq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// WordEventGroupBy is the group-by builder for WordEvent entities.
type WordEventGroupBy struct {
	selector
	build *WordEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (wegb *WordEventGroupBy) Aggregate(fns ...AggregateFunc) *WordEventGroupBy {
	wegb.fns = append(wegb.fns, fns...)
	return wegb
}

// Scan applies the selector query and scans the result into the given value.
func (wegb *WordEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wegb.build.ctx, ent.OpQueryGroupBy)
	if err := wegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WordEventQuery, *WordEventGroupBy](ctx, wegb.build, wegb, wegb.build.inters, v)
}

func (wegb *WordEventGroupBy) sqlScan(ctx context.Context, root *WordEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(wegb.fns))
	for _, fn := range wegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*wegb.flds)+len(wegb.fns))
		for _, f := range *wegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*wegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WordEventSelect is the builder for selecting fields of WordEvent entities.
type WordEventSelect struct {
	*WordEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (wes *WordEventSelect) Aggregate(fns ...AggregateFunc) *WordEventSelect {
	wes.fns = append(wes.fns, fns...)
	return wes
}

// Scan applies the selector query and scans the result into the given value.
func (wes *WordEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wes.ctx, ent.OpQuerySelect)
	if err := wes.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WordEventQuery, *WordEventSelect](ctx, wes.WordEventQuery, wes, wes.inters, v)
}

func (wes *WordEventSelect) sqlScan(ctx context.Context, root *WordEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(wes.fns))
	for _, fn := range wes.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*wes.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wes.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
