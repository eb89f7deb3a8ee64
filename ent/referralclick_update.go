// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homecheff/affiliates/ent/predicate"
	"github.com/homecheff/affiliates/ent/referralclick"
	"github.com/homecheff/affiliates/ent/referrallink"
)

// ReferralClickUpdate is the builder for updating ReferralClick entities.
type ReferralClickUpdate struct {
	config
	hooks    []Hook
	mutation *ReferralClickMutation
}

// Where appends a list predicates to the ReferralClickUpdate builder.
func (_u *ReferralClickUpdate) Where(ps ...predicate.ReferralClick) *ReferralClickUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLinkID sets the "link_id" field.
func (_u *ReferralClickUpdate) SetLinkID(v int) *ReferralClickUpdate {
	_u.mutation.SetLinkID(v)
	return _u
}

// SetNillableLinkID sets the "link_id" field if the given value is not nil.
func (_u *ReferralClickUpdate) SetNillableLinkID(v *int) *ReferralClickUpdate {
	if v != nil {
		_u.SetLinkID(*v)
	}
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *ReferralClickUpdate) SetIPAddress(v string) *ReferralClickUpdate {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *ReferralClickUpdate) SetNillableIPAddress(v *string) *ReferralClickUpdate {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (_u *ReferralClickUpdate) ClearIPAddress() *ReferralClickUpdate {
	_u.mutation.ClearIPAddress()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *ReferralClickUpdate) SetUserAgent(v string) *ReferralClickUpdate {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *ReferralClickUpdate) SetNillableUserAgent(v *string) *ReferralClickUpdate {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *ReferralClickUpdate) ClearUserAgent() *ReferralClickUpdate {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetReferrer sets the "referrer" field.
func (_u *ReferralClickUpdate) SetReferrer(v string) *ReferralClickUpdate {
	_u.mutation.SetReferrer(v)
	return _u
}

// SetNillableReferrer sets the "referrer" field if the given value is not nil.
func (_u *ReferralClickUpdate) SetNillableReferrer(v *string) *ReferralClickUpdate {
	if v != nil {
		_u.SetReferrer(*v)
	}
	return _u
}

// ClearReferrer clears the value of the "referrer" field.
func (_u *ReferralClickUpdate) ClearReferrer() *ReferralClickUpdate {
	_u.mutation.ClearReferrer()
	return _u
}

// SetLink sets the "link" edge to the ReferralLink entity.
func (_u *ReferralClickUpdate) SetLink(v *ReferralLink) *ReferralClickUpdate {
	return _u.SetLinkID(v.ID)
}

// Mutation returns the ReferralClickMutation object of the builder.
func (_u *ReferralClickUpdate) Mutation() *ReferralClickMutation {
	return _u.mutation
}

// ClearLink clears the "link" edge to the ReferralLink entity.
func (_u *ReferralClickUpdate) ClearLink() *ReferralClickUpdate {
	_u.mutation.ClearLink()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReferralClickUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferralClickUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReferralClickUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferralClickUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferralClickUpdate) check() error {
	if _u.mutation.LinkCleared() && len(_u.mutation.LinkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReferralClick.link"`)
	}
	return nil
}

func (_u *ReferralClickUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(referralclick.Table, referralclick.Columns, sqlgraph.NewFieldSpec(referralclick.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(referralclick.FieldIPAddress, field.TypeString, value)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(referralclick.FieldIPAddress, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(referralclick.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(referralclick.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Referrer(); ok {
		_spec.SetField(referralclick.FieldReferrer, field.TypeString, value)
	}
	if _u.mutation.ReferrerCleared() {
		_spec.ClearField(referralclick.FieldReferrer, field.TypeString)
	}
	if _u.mutation.LinkCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinkIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referralclick.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReferralClickUpdateOne is the builder for updating a single ReferralClick entity.
type ReferralClickUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReferralClickMutation
}

// SetLinkID sets the "link_id" field.
func (_u *ReferralClickUpdateOne) SetLinkID(v int) *ReferralClickUpdateOne {
	_u.mutation.SetLinkID(v)
	return _u
}

// SetNillableLinkID sets the "link_id" field if the given value is not nil.
func (_u *ReferralClickUpdateOne) SetNillableLinkID(v *int) *ReferralClickUpdateOne {
	if v != nil {
		_u.SetLinkID(*v)
	}
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *ReferralClickUpdateOne) SetIPAddress(v string) *ReferralClickUpdateOne {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *ReferralClickUpdateOne) SetNillableIPAddress(v *string) *ReferralClickUpdateOne {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (_u *ReferralClickUpdateOne) ClearIPAddress() *ReferralClickUpdateOne {
	_u.mutation.ClearIPAddress()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *ReferralClickUpdateOne) SetUserAgent(v string) *ReferralClickUpdateOne {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *ReferralClickUpdateOne) SetNillableUserAgent(v *string) *ReferralClickUpdateOne {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *ReferralClickUpdateOne) ClearUserAgent() *ReferralClickUpdateOne {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetReferrer sets the "referrer" field.
func (_u *ReferralClickUpdateOne) SetReferrer(v string) *ReferralClickUpdateOne {
	_u.mutation.SetReferrer(v)
	return _u
}

// SetNillableReferrer sets the "referrer" field if the given value is not nil.
func (_u *ReferralClickUpdateOne) SetNillableReferrer(v *string) *ReferralClickUpdateOne {
	if v != nil {
		_u.SetReferrer(*v)
	}
	return _u
}

// ClearReferrer clears the value of the "referrer" field.
func (_u *ReferralClickUpdateOne) ClearReferrer() *ReferralClickUpdateOne {
	_u.mutation.ClearReferrer()
	return _u
}

// SetLink sets the "link" edge to the ReferralLink entity.
func (_u *ReferralClickUpdateOne) SetLink(v *ReferralLink) *ReferralClickUpdateOne {
	return _u.SetLinkID(v.ID)
}

// Mutation returns the ReferralClickMutation object of the builder.
func (_u *ReferralClickUpdateOne) Mutation() *ReferralClickMutation {
	return _u.mutation
}

// ClearLink clears the "link" edge to the ReferralLink entity.
func (_u *ReferralClickUpdateOne) ClearLink() *ReferralClickUpdateOne {
	_u.mutation.ClearLink()
	return _u
}

// Where appends a list predicates to the ReferralClickUpdate builder.
func (_u *ReferralClickUpdateOne) Where(ps ...predicate.ReferralClick) *ReferralClickUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReferralClickUpdateOne) Select(field string, fields ...string) *ReferralClickUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReferralClick entity.
func (_u *ReferralClickUpdateOne) Save(ctx context.Context) (*ReferralClick, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferralClickUpdateOne) SaveX(ctx context.Context) *ReferralClick {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReferralClickUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferralClickUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferralClickUpdateOne) check() error {
	if _u.mutation.LinkCleared() && len(_u.mutation.LinkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReferralClick.link"`)
	}
	return nil
}

func (_u *ReferralClickUpdateOne) sqlSave(ctx context.Context) (_node *ReferralClick, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(referralclick.Table, referralclick.Columns, sqlgraph.NewFieldSpec(referralclick.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReferralClick.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, referralclick.FieldID)
		for _, f := range fields {
			if !referralclick.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != referralclick.FieldID {
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
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(referralclick.FieldIPAddress, field.TypeString, value)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(referralclick.FieldIPAddress, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(referralclick.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(referralclick.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Referrer(); ok {
		_spec.SetField(referralclick.FieldReferrer, field.TypeString, value)
	}
	if _u.mutation.ReferrerCleared() {
		_spec.ClearField(referralclick.FieldReferrer, field.TypeString)
	}
	if _u.mutation.LinkCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinkIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReferralClick{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referralclick.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
