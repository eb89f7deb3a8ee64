// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homecheff/affiliates/ent/referralclick"
	"github.com/homecheff/affiliates/ent/referrallink"
)

// ReferralClickCreate is the builder for creating a ReferralClick entity.
type ReferralClickCreate struct {
	config
	mutation *ReferralClickMutation
	hooks    []Hook
}

// SetLinkID sets the "link_id" field.
func (_c *ReferralClickCreate) SetLinkID(v int) *ReferralClickCreate {
	_c.mutation.SetLinkID(v)
	return _c
}

// SetIPAddress sets the "ip_address" field.
func (_c *ReferralClickCreate) SetIPAddress(v string) *ReferralClickCreate {
	_c.mutation.SetIPAddress(v)
	return _c
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_c *ReferralClickCreate) SetNillableIPAddress(v *string) *ReferralClickCreate {
	if v != nil {
		_c.SetIPAddress(*v)
	}
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *ReferralClickCreate) SetUserAgent(v string) *ReferralClickCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *ReferralClickCreate) SetNillableUserAgent(v *string) *ReferralClickCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// SetReferrer sets the "referrer" field.
func (_c *ReferralClickCreate) SetReferrer(v string) *ReferralClickCreate {
	_c.mutation.SetReferrer(v)
	return _c
}

// SetNillableReferrer sets the "referrer" field if the given value is not nil.
func (_c *ReferralClickCreate) SetNillableReferrer(v *string) *ReferralClickCreate {
	if v != nil {
		_c.SetReferrer(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReferralClickCreate) SetCreatedAt(v time.Time) *ReferralClickCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReferralClickCreate) SetNillableCreatedAt(v *time.Time) *ReferralClickCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLink sets the "link" edge to the ReferralLink entity.
func (_c *ReferralClickCreate) SetLink(v *ReferralLink) *ReferralClickCreate {
	return _c.SetLinkID(v.ID)
}

// Mutation returns the ReferralClickMutation object of the builder.
func (_c *ReferralClickCreate) Mutation() *ReferralClickMutation {
	return _c.mutation
}

// Save creates the ReferralClick in the database.
func (_c *ReferralClickCreate) Save(ctx context.Context) (*ReferralClick, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReferralClickCreate) SaveX(ctx context.Context) *ReferralClick {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferralClickCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferralClickCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReferralClickCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := referralclick.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReferralClickCreate) check() error {
	if _, ok := _c.mutation.LinkID(); !ok {
		return &ValidationError{Name: "link_id", err: errors.New(`ent: missing required field "ReferralClick.link_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReferralClick.created_at"`)}
	}
	if len(_c.mutation.LinkIDs()) == 0 {
		return &ValidationError{Name: "link", err: errors.New(`ent: missing required edge "ReferralClick.link"`)}
	}
	return nil
}

func (_c *ReferralClickCreate) sqlSave(ctx context.Context) (*ReferralClick, error) {
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

func (_c *ReferralClickCreate) createSpec() (*ReferralClick, *sqlgraph.CreateSpec) {
	var (
		_node = &ReferralClick{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(referralclick.Table, sqlgraph.NewFieldSpec(referralclick.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.IPAddress(); ok {
		_spec.SetField(referralclick.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = &value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(referralclick.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = &value
	}
	if value, ok := _c.mutation.Referrer(); ok {
		_spec.SetField(referralclick.FieldReferrer, field.TypeString, value)
		_node.Referrer = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(referralclick.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LinkIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   referralclick.LinkTable,
			Columns: []string{referralclick.LinkColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(referrallink.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LinkID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReferralClickCreateBulk is the builder for creating many ReferralClick entities in bulk.
type ReferralClickCreateBulk struct {
	config
	err      error
	builders []*ReferralClickCreate
}

// Save creates the ReferralClick entities in the database.
func (_c *ReferralClickCreateBulk) Save(ctx context.Context) ([]*ReferralClick, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReferralClick, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReferralClickMutation)
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
func (_c *ReferralClickCreateBulk) SaveX(ctx context.Context) []*ReferralClick {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferralClickCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferralClickCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
