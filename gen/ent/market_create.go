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
	"github.com/promowatch/promo-tracker/gen/ent/market"
	"github.com/promowatch/promo-tracker/gen/ent/promotion"
)

// MarketCreate is the builder for creating a Market entity.
type MarketCreate struct {
	config
	mutation *MarketMutation
	hooks    []Hook
}

// SetHandle sets the "handle" field.
func (_c *MarketCreate) SetHandle(v string) *MarketCreate {
	_c.mutation.SetHandle(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MarketCreate) SetName(v string) *MarketCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *MarketCreate) SetLocation(v string) *MarketCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *MarketCreate) SetNillableLocation(v *string) *MarketCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MarketCreate) SetCreatedAt(v time.Time) *MarketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MarketCreate) SetNillableCreatedAt(v *time.Time) *MarketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MarketCreate) SetUpdatedAt(v time.Time) *MarketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MarketCreate) SetNillableUpdatedAt(v *time.Time) *MarketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MarketCreate) SetID(v uuid.UUID) *MarketCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MarketCreate) SetNillableID(v *uuid.UUID) *MarketCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPromotionIDs adds the "promotions" edge to the Promotion entity by IDs.
func (_c *MarketCreate) AddPromotionIDs(ids ...uuid.UUID) *MarketCreate {
	_c.mutation.AddPromotionIDs(ids...)
	return _c
}

// AddPromotions adds the "promotions" edges to the Promotion entity.
func (_c *MarketCreate) AddPromotions(v ...*Promotion) *MarketCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPromotionIDs(ids...)
}

// Mutation returns the MarketMutation object of the builder.
func (_c *MarketCreate) Mutation() *MarketMutation {
	return _c.mutation
}

// Save creates the Market in the database.
func (_c *MarketCreate) Save(ctx context.Context) (*Market, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MarketCreate) SaveX(ctx context.Context) *Market {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MarketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MarketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MarketCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := market.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := market.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := market.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MarketCreate) check() error {
	if _, ok := _c.mutation.Handle(); !ok {
		return &ValidationError{Name: "handle", err: errors.New(`ent: missing required field "Market.handle"`)}
	}
	if v, ok := _c.mutation.Handle(); ok {
		if err := market.HandleValidator(v); err != nil {
			return &ValidationError{Name: "handle", err: fmt.Errorf(`ent: validator failed for field "Market.handle": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Market.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := market.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Market.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Market.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Market.updated_at"`)}
	}
	return nil
}

func (_c *MarketCreate) sqlSave(ctx context.Context) (*Market, error) {
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

func (_c *MarketCreate) createSpec() (*Market, *sqlgraph.CreateSpec) {
	var (
		_node = &Market{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(market.Table, sqlgraph.NewFieldSpec(market.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Handle(); ok {
		_spec.SetField(market.FieldHandle, field.TypeString, value)
		_node.Handle = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(market.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(market.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(market.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(market.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PromotionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MarketCreateBulk is the builder for creating many Market entities in bulk.
type MarketCreateBulk struct {
	config
	err      error
	builders []*MarketCreate
}

// Save creates the Market entities in the database.
func (_c *MarketCreateBulk) Save(ctx context.Context) ([]*Market, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Market, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MarketMutation)
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
func (_c *MarketCreateBulk) SaveX(ctx context.Context) []*Market {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MarketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MarketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
