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
	"github.com/homecheff/affiliates/ent/referralclick"
	"github.com/homecheff/affiliates/ent/referrallink"
)

// ReferralLinkCreate is the builder for creating a ReferralLink entity.
type ReferralLinkCreate struct {
	config
	mutation *ReferralLinkMutation
	hooks    []Hook
}

// SetAffiliateID sets the "affiliate_id" field.
func (_c *ReferralLinkCreate) SetAffiliateID(v int) *ReferralLinkCreate {
	_c.mutation.SetAffiliateID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *ReferralLinkCreate) SetCode(v string) *ReferralLinkCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *ReferralLinkCreate) SetActive(v bool) *ReferralLinkCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ReferralLinkCreate) SetNillableActive(v *bool) *ReferralLinkCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReferralLinkCreate) SetCreatedAt(v time.Time) *ReferralLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReferralLinkCreate) SetNillableCreatedAt(v *time.Time) *ReferralLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAffiliate sets the "affiliate" edge to the Affiliate entity.
func (_c *ReferralLinkCreate) SetAffiliate(v *Affiliate) *ReferralLinkCreate {
	return _c.SetAffiliateID(v.ID)
}

// AddClickIDs adds the "clicks" edge to the ReferralClick entity by IDs.
func (_c *ReferralLinkCreate) AddClickIDs(ids ...int) *ReferralLinkCreate {
	_c.mutation.AddClickIDs(ids...)
	return _c
}

// AddClicks adds the "clicks" edges to the ReferralClick entity.
func (_c *ReferralLinkCreate) AddClicks(v ...*ReferralClick) *ReferralLinkCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddClickIDs(ids...)
}

// Mutation returns the ReferralLinkMutation object of the builder.
func (_c *ReferralLinkCreate) Mutation() *ReferralLinkMutation {
	return _c.mutation
}

// Save creates the ReferralLink in the database.
func (_c *ReferralLinkCreate) Save(ctx context.Context) (*ReferralLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReferralLinkCreate) SaveX(ctx context.Context) *ReferralLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferralLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferralLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReferralLinkCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := referrallink.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := referrallink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReferralLinkCreate) check() error {
	if _, ok := _c.mutation.AffiliateID(); !ok {
		return &ValidationError{Name: "affiliate_id", err: errors.New(`ent: missing required field "ReferralLink.affiliate_id"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "ReferralLink.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := referrallink.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "ReferralLink.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ReferralLink.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReferralLink.created_at"`)}
	}
	if len(_c.mutation.AffiliateIDs()) == 0 {
		return &ValidationError{Name: "affiliate", err: errors.New(`ent: missing required edge "ReferralLink.affiliate"`)}
	}
	return nil
}

func (_c *ReferralLinkCreate) sqlSave(ctx context.Context) (*ReferralLink, error) {
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

func (_c *ReferralLinkCreate) createSpec() (*ReferralLink, *sqlgraph.CreateSpec) {
	var (
		_node = &ReferralLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(referrallink.Table, sqlgraph.NewFieldSpec(referrallink.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(referrallink.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(referrallink.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(referrallink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AffiliateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   referrallink.AffiliateTable,
			Columns: []string{referrallink.AffiliateColumn},
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
	if nodes := _c.mutation.ClicksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   referrallink.ClicksTable,
			Columns: []string{referrallink.ClicksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(referralclick.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReferralLinkCreateBulk is the builder for creating many ReferralLink entities in bulk.
type ReferralLinkCreateBulk struct {
	config
	err      error
	builders []*ReferralLinkCreate
}

// Save creates the ReferralLink entities in the database.
func (_c *ReferralLinkCreateBulk) Save(ctx context.Context) ([]*ReferralLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReferralLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReferralLinkMutation)
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
func (_c *ReferralLinkCreateBulk) SaveX(ctx context.Context) []*ReferralLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferralLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferralLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
