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
	"github.com/promowatch/promo-tracker/gen/ent/market"
	"github.com/promowatch/promo-tracker/gen/ent/predicate"
	"github.com/promowatch/promo-tracker/gen/ent/promotion"
)

// MarketUpdate is the builder for updating Market entities.
type MarketUpdate struct {
	config
	hooks    []Hook
	mutation *MarketMutation
}

// Where appends a list predicates to the MarketUpdate builder.
func (_u *MarketUpdate) Where(ps ...predicate.Market) *MarketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHandle sets the "handle" field.
func (_u *MarketUpdate) SetHandle(v string) *MarketUpdate {
	_u.mutation.SetHandle(v)
	return _u
}

// SetNillableHandle sets the "handle" field if the given value is not nil.
func (_u *MarketUpdate) SetNillableHandle(v *string) *MarketUpdate {
	if v != nil {
		_u.SetHandle(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MarketUpdate) SetName(v string) *MarketUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MarketUpdate) SetNillableName(v *string) *MarketUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *MarketUpdate) SetLocation(v string) *MarketUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *MarketUpdate) SetNillableLocation(v *string) *MarketUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *MarketUpdate) ClearLocation() *MarketUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MarketUpdate) SetCreatedAt(v time.Time) *MarketUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MarketUpdate) SetNillableCreatedAt(v *time.Time) *MarketUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MarketUpdate) SetUpdatedAt(v time.Time) *MarketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPromotionIDs adds the "promotions" edge to the Promotion entity by IDs.
func (_u *MarketUpdate) AddPromotionIDs(ids ...uuid.UUID) *MarketUpdate {
	_u.mutation.AddPromotionIDs(ids...)
	return _u
}

// AddPromotions adds the "promotions" edges to the Promotion entity.
func (_u *MarketUpdate) AddPromotions(v ...*Promotion) *MarketUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromotionIDs(ids...)
}

// Mutation returns the MarketMutation object of the builder.
func (_u *MarketUpdate) Mutation() *MarketMutation {
	return _u.mutation
}

// ClearPromotions clears all "promotions" edges to the Promotion entity.
func (_u *MarketUpdate) ClearPromotions() *MarketUpdate {
	_u.mutation.ClearPromotions()
	return _u
}

// RemovePromotionIDs removes the "promotions" edge to Promotion entities by IDs.
func (_u *MarketUpdate) RemovePromotionIDs(ids ...uuid.UUID) *MarketUpdate {
	_u.mutation.RemovePromotionIDs(ids...)
	return _u
}

// RemovePromotions removes "promotions" edges to Promotion entities.
func (_u *MarketUpdate) RemovePromotions(v ...*Promotion) *MarketUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromotionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MarketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MarketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MarketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := market.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MarketUpdate) check() error {
	if v, ok := _u.mutation.Handle(); ok {
		if err := market.HandleValidator(v); err != nil {
			return &ValidationError{Name: "handle", err: fmt.Errorf(`ent: validator failed for field "Market.handle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := market.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Market.name": %w`, err)}
		}
	}
	return nil
}

func (_u *MarketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(market.Table, market.Columns, sqlgraph.NewFieldSpec(market.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Handle(); ok {
		_spec.SetField(market.FieldHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(market.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(market.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(market.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(market.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(market.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PromotionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   market.PromotionsTable,
			Columns: []string{market.PromotionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promotion.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromotionsIDs(); len(nodes) > 0 && !_u.mutation.PromotionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   market.PromotionsTable,
			Columns: []string{market.PromotionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promotion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromotionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   market.PromotionsTable,
			Columns: []string{market.PromotionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promotion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{market.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MarketUpdateOne is the builder for updating a single Market entity.
type MarketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MarketMutation
}

// SetHandle sets the "handle" field.
func (_u *MarketUpdateOne) SetHandle(v string) *MarketUpdateOne {
	_u.mutation.SetHandle(v)
	return _u
}

// SetNillableHandle sets the "handle" field if the given value is not nil.
func (_u *MarketUpdateOne) SetNillableHandle(v *string) *MarketUpdateOne {
	if v != nil {
		_u.SetHandle(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MarketUpdateOne) SetName(v string) *MarketUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MarketUpdateOne) SetNillableName(v *string) *MarketUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *MarketUpdateOne) SetLocation(v string) *MarketUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *MarketUpdateOne) SetNillableLocation(v *string) *MarketUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *MarketUpdateOne) ClearLocation() *MarketUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MarketUpdateOne) SetCreatedAt(v time.Time) *MarketUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MarketUpdateOne) SetNillableCreatedAt(v *time.Time) *MarketUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MarketUpdateOne) SetUpdatedAt(v time.Time) *MarketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPromotionIDs adds the "promotions" edge to the Promotion entity by IDs.
func (_u *MarketUpdateOne) AddPromotionIDs(ids ...uuid.UUID) *MarketUpdateOne {
	_u.mutation.AddPromotionIDs(ids...)
	return _u
}

// AddPromotions adds the "promotions" edges to the Promotion entity.
func (_u *MarketUpdateOne) AddPromotions(v ...*Promotion) *MarketUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromotionIDs(ids...)
}

// Mutation returns the MarketMutation object of the builder.
func (_u *MarketUpdateOne) Mutation() *MarketMutation {
	return _u.mutation
}

// ClearPromotions clears all "promotions" edges to the Promotion entity.
func (_u *MarketUpdateOne) ClearPromotions() *MarketUpdateOne {
	_u.mutation.ClearPromotions()
	return _u
}

// RemovePromotionIDs removes the "promotions" edge to Promotion entities by IDs.
func (_u *MarketUpdateOne) RemovePromotionIDs(ids ...uuid.UUID) *MarketUpdateOne {
	_u.mutation.RemovePromotionIDs(ids...)
	return _u
}

// RemovePromotions removes "promotions" edges to Promotion entities.
func (_u *MarketUpdateOne) RemovePromotions(v ...*Promotion) *MarketUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromotionIDs(ids...)
}

// Where appends a list predicates to the MarketUpdate builder.
func (_u *MarketUpdateOne) Where(ps ...predicate.Market) *MarketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MarketUpdateOne) Select(field string, fields ...string) *MarketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Market entity.
func (_u *MarketUpdateOne) Save(ctx context.Context) (*Market, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketUpdateOne) SaveX(ctx context.Context) *Market {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MarketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MarketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := market.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MarketUpdateOne) check() error {
	if v, ok := _u.mutation.Handle(); ok {
		if err := market.HandleValidator(v); err != nil {
			return &ValidationError{Name: "handle", err: fmt.Errorf(`ent: validator failed for field "Market.handle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := market.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Market.name": %w`, err)}
		}
	}
	return nil
}

func (_u *MarketUpdateOne) sqlSave(ctx context.Context) (_node *Market, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(market.Table, market.Columns, sqlgraph.NewFieldSpec(market.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Market.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, market.FieldID)
		for _, f := range fields {
			if !market.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != market.FieldID {
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
	if value, ok := _u.mutation.Handle(); ok {
		_spec.SetField(market.FieldHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(market.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(market.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(market.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(market.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(market.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PromotionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   market.PromotionsTable,
			Columns: []string{market.PromotionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promotion.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromotionsIDs(); len(nodes) > 0 && !_u.mutation.PromotionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   market.PromotionsTable,
			Columns: []string{market.PromotionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promotion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromotionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   market.PromotionsTable,
			Columns: []string{market.PromotionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promotion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Market{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{market.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
