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
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/promocode"
)

// PromoCodeCreate is the builder for creating a PromoCode entity.
type PromoCodeCreate struct {
	config
	mutation *PromoCodeMutation
	hooks    []Hook
}

// SetAffiliateID sets the "affiliate_id" field.
func (_c *PromoCodeCreate) SetAffiliateID(v int) *PromoCodeCreate {
	_c.mutation.SetAffiliateID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *PromoCodeCreate) SetCode(v string) *PromoCodeCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetDiscountSharePct sets the "discount_share_pct" field.
func (_c *PromoCodeCreate) SetDiscountSharePct(v float64) *PromoCodeCreate {
	_c.mutation.SetDiscountSharePct(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *PromoCodeCreate) SetActive(v bool) *PromoCodeCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *PromoCodeCreate) SetNillableActive(v *bool) *PromoCodeCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromoCodeCreate) SetCreatedAt(v time.Time) *PromoCodeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromoCodeCreate) SetNillableCreatedAt(v *time.Time) *PromoCodeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAffiliate sets the "affiliate" edge to the Affiliate entity.
func (_c *PromoCodeCreate) SetAffiliate(v *Affiliate) *PromoCodeCreate {
	return _c.SetAffiliateID(v.ID)
}

// AddSubscriptionIDs adds the "subscriptions" edge to the BusinessSubscription entity by IDs.
func (_c *PromoCodeCreate) AddSubscriptionIDs(ids ...int) *PromoCodeCreate {
	_c.mutation.AddSubscriptionIDs(ids...)
	return _c
}

// AddSubscriptions adds the "subscriptions" edges to the BusinessSubscription entity.
func (_c *PromoCodeCreate) AddSubscriptions(v ...*BusinessSubscription) *PromoCodeCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubscriptionIDs(ids...)
}

// Mutation returns the PromoCodeMutation object of the builder.
func (_c *PromoCodeCreate) Mutation() *PromoCodeMutation {
	return _c.mutation
}

// Save creates the PromoCode in the database.
func (_c *PromoCodeCreate) Save(ctx context.Context) (*PromoCode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromoCodeCreate) SaveX(ctx context.Context) *PromoCode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromoCodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromoCodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromoCodeCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := promocode.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := promocode.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromoCodeCreate) check() error {
	if _, ok := _c.mutation.AffiliateID(); !ok {
		return &ValidationError{Name: "affiliate_id", err: errors.New(`ent: missing required field "PromoCode.affiliate_id"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "PromoCode.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := promocode.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "PromoCode.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiscountSharePct(); !ok {
		return &ValidationError{Name: "discount_share_pct", err: errors.New(`ent: missing required field "PromoCode.discount_share_pct"`)}
	}
	if v, ok := _c.mutation.DiscountSharePct(); ok {
		if err := promocode.DiscountSharePctValidator(v); err != nil {
			return &ValidationError{Name: "discount_share_pct", err: fmt.Errorf(`ent: validator failed for field "PromoCode.discount_share_pct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "PromoCode.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromoCode.created_at"`)}
	}
	if len(_c.mutation.AffiliateIDs()) == 0 {
		return &ValidationError{Name: "affiliate", err: errors.New(`ent: missing required edge "PromoCode.affiliate"`)}
	}
	return nil
}

func (_c *PromoCodeCreate) sqlSave(ctx context.Context) (*PromoCode, error) {
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

func (_c *PromoCodeCreate) createSpec() (*PromoCode, *sqlgraph.CreateSpec) {
	var (
		_node = &PromoCode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promocode.Table, sqlgraph.NewFieldSpec(promocode.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(promocode.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.DiscountSharePct(); ok {
		_spec.SetField(promocode.FieldDiscountSharePct, field.TypeFloat64, value)
		_node.DiscountSharePct = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(promocode.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promocode.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AffiliateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   promocode.AffiliateTable,
			Columns: []string{promocode.AffiliateColumn},
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
			Table:   promocode.SubscriptionsTable,
			Columns: []string{promocode.SubscriptionsColumn},
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

// PromoCodeCreateBulk is the builder for creating many PromoCode entities in bulk.
type PromoCodeCreateBulk struct {
	config
	err      error
	builders []*PromoCodeCreate
}

// Save creates the PromoCode entities in the database.
func (_c *PromoCodeCreateBulk) Save(ctx context.Context) ([]*PromoCode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromoCode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromoCodeMutation)
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
func (_c *PromoCodeCreateBulk) SaveX(ctx context.Context) []*PromoCode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromoCodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromoCodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
