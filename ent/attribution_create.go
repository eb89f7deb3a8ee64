// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/user"
)

// AttributionCreate is the builder for creating a Attribution entity.
type AttributionCreate struct {
	config
	mutation *AttributionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AttributionCreate) SetUserID(v int) *AttributionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAffiliateID sets the "affiliate_id" field.
func (_c *AttributionCreate) SetAffiliateID(v int) *AttributionCreate {
	_c.mutation.SetAffiliateID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *AttributionCreate) SetType(v attribution.Type) *AttributionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *AttributionCreate) SetSource(v attribution.Source) *AttributionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *AttributionCreate) SetNillableSource(v *attribution.Source) *AttributionCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetStartsAt sets the "starts_at" field.
func (_c *AttributionCreate) SetStartsAt(v time.Time) *AttributionCreate {
	_c.mutation.SetStartsAt(v)
	return _c
}

// SetEndsAt sets the "ends_at" field.
func (_c *AttributionCreate) SetEndsAt(v time.Time) *AttributionCreate {
	_c.mutation.SetEndsAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttributionCreate) SetCreatedAt(v time.Time) *AttributionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttributionCreate) SetNillableCreatedAt(v *time.Time) *AttributionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *AttributionCreate) SetUser(v *User) *AttributionCreate {
	return _c.SetUserID(v.ID)
}

// SetAffiliate sets the "affiliate" edge to the Affiliate entity.
func (_c *AttributionCreate) SetAffiliate(v *Affiliate) *AttributionCreate {
	return _c.SetAffiliateID(v.ID)
}

// AddSubscriptionIDs adds the "subscriptions" edge to the BusinessSubscription entity by IDs.
func (_c *AttributionCreate) AddSubscriptionIDs(ids ...int) *AttributionCreate {
	_c.mutation.AddSubscriptionIDs(ids...)
	return _c
}

// AddSubscriptions adds the "subscriptions" edges to the BusinessSubscription entity.
func (_c *AttributionCreate) AddSubscriptions(v ...*BusinessSubscription) *AttributionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubscriptionIDs(ids...)
}

// Mutation returns the AttributionMutation object of the builder.
func (_c *AttributionCreate) Mutation() *AttributionMutation {
	return _c.mutation
}

// Save creates the Attribution in the database.
func (_c *AttributionCreate) Save(ctx context.Context) (*Attribution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttributionCreate) SaveX(ctx context.Context) *Attribution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttributionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttributionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttributionCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := attribution.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attribution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttributionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Attribution.user_id"`)}
	}
	if _, ok := _c.mutation.AffiliateID(); !ok {
		return &ValidationError{Name: "affiliate_id", err: errors.New(`ent: missing required field "Attribution.affiliate_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Attribution.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := attribution.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Attribution.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Attribution.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := attribution.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Attribution.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartsAt(); !ok {
		return &ValidationError{Name: "starts_at", err: errors.New(`ent: missing required field "Attribution.starts_at"`)}
	}
	if _, ok := _c.mutation.EndsAt(); !ok {
		return &ValidationError{Name: "ends_at", err: errors.New(`ent: missing required field "Attribution.ends_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Attribution.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Attribution.user"`)}
	}
	if len(_c.mutation.AffiliateIDs()) == 0 {
		return &ValidationError{Name: "affiliate", err: errors.New(`ent: missing required edge "Attribution.affiliate"`)}
	}
	return nil
}

func (_c *AttributionCreate) sqlSave(ctx context.Context) (*Attribution, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttributionCreate) createSpec() (*Attribution, *sqlgraph.CreateSpec) {
	var (
		_node = &Attribution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attribution.Table, sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(attribution.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(attribution.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.StartsAt(); ok {
		_spec.SetField(attribution.FieldStartsAt, field.TypeTime, value)
		_node.StartsAt = value
	}
	if value, ok := _c.mutation.EndsAt(); ok {
		_spec.SetField(attribution.FieldEndsAt, field.TypeTime, value)
		_node.EndsAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attribution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attribution.UserTable,
			Columns: []string{attribution.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AffiliateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attribution.AffiliateTable,
			Columns: []string{attribution.AffiliateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(affiliate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AffiliateID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubscriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attribution.SubscriptionsTable,
			Columns: []string{attribution.SubscriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(businesssubscription.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AttributionCreateBulk is the builder for creating many Attribution entities in bulk.
type AttributionCreateBulk struct {
	config
	err      error
	builders []*AttributionCreate
}

// Save creates the Attribution entities in the database.
func (_c *AttributionCreateBulk) Save(ctx context.Context) ([]*Attribution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attribution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttributionMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *AttributionCreateBulk) SaveX(ctx context.Context) []*Attribution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttributionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttributionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
