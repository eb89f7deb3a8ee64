// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/predicate"
	"github.com/homecheff/affiliates/ent/promocode"
)

// PromoCodeUpdate is the builder for updating PromoCode entities.
type PromoCodeUpdate struct {
	config
	hooks    []Hook
	mutation *PromoCodeMutation
}

// Where appends a list predicates to the PromoCodeUpdate builder.
func (_u *PromoCodeUpdate) Where(ps ...predicate.PromoCode) *PromoCodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *PromoCodeUpdate) SetAffiliateID(v int) *PromoCodeUpdate {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *PromoCodeUpdate) SetNillableAffiliateID(v *int) *PromoCodeUpdate {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *PromoCodeUpdate) SetCode(v string) *PromoCodeUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *PromoCodeUpdate) SetNillableCode(v *string) *PromoCodeUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDiscountSharePct sets the "discount_share_pct" field.
func (_u *PromoCodeUpdate) SetDiscountSharePct(v float64) *PromoCodeUpdate {
	_u.mutation.ResetDiscountSharePct()
	_u.mutation.SetDiscountSharePct(v)
	return _u
}

// SetNillableDiscountSharePct sets the "discount_share_pct" field if the given value is not nil.
func (_u *PromoCodeUpdate) SetNillableDiscountSharePct(v *float64) *PromoCodeUpdate {
	if v != nil {
		_u.SetDiscountSharePct(*v)
	}
	return _u
}

// AddDiscountSharePct adds value to the "discount_share_pct" field.
func (_u *PromoCodeUpdate) AddDiscountSharePct(v float64) *PromoCodeUpdate {
	_u.mutation.AddDiscountSharePct(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *PromoCodeUpdate) SetActive(v bool) *PromoCodeUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PromoCodeUpdate) SetNillableActive(v *bool) *PromoCodeUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetAffiliate sets the "affiliate" edge to the Affiliate entity.
func (_u *PromoCodeUpdate) SetAffiliate(v *Affiliate) *PromoCodeUpdate {
	return _u.SetAffiliateID(v.ID)
}

// AddSubscriptionIDs adds the "subscriptions" edge to the BusinessSubscription entity by IDs.
func (_u *PromoCodeUpdate) AddSubscriptionIDs(ids ...int) *PromoCodeUpdate {
	_u.mutation.AddSubscriptionIDs(ids...)
	return _u
}

// AddSubscriptions adds the "subscriptions" edges to the BusinessSubscription entity.
func (_u *PromoCodeUpdate) AddSubscriptions(v ...*BusinessSubscription) *PromoCodeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriptionIDs(ids...)
}

// Mutation returns the PromoCodeMutation object of the builder.
func (_u *PromoCodeUpdate) Mutation() *PromoCodeMutation {
	return _u.mutation
}

// ClearAffiliate clears the "affiliate" edge to the Affiliate entity.
func (_u *PromoCodeUpdate) ClearAffiliate() *PromoCodeUpdate {
	_u.mutation.ClearAffiliate()
	return _u
}

// ClearSubscriptions clears all "subscriptions" edges to the BusinessSubscription entity.
func (_u *PromoCodeUpdate) ClearSubscriptions() *PromoCodeUpdate {
	_u.mutation.ClearSubscriptions()
	return _u
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to BusinessSubscription entities by IDs.
func (_u *PromoCodeUpdate) RemoveSubscriptionIDs(ids ...int) *PromoCodeUpdate {
	_u.mutation.RemoveSubscriptionIDs(ids...)
	return _u
}

// RemoveSubscriptions removes "subscriptions" edges to BusinessSubscription entities.
func (_u *PromoCodeUpdate) RemoveSubscriptions(v ...*BusinessSubscription) *PromoCodeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriptionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromoCodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromoCodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromoCodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromoCodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromoCodeUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := promocode.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "PromoCode.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiscountSharePct(); ok {
		if err := promocode.DiscountSharePctValidator(v); err != nil {
			return &ValidationError{Name: "discount_share_pct", err: fmt.Errorf(`ent: validator failed for field "PromoCode.discount_share_pct": %w`, err)}
		}
	}
	if _u.mutation.AffiliateCleared() && len(_u.mutation.AffiliateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromoCode.affiliate"`)
	}
	return nil
}

func (_u *PromoCodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promocode.Table, promocode.Columns, sqlgraph.NewFieldSpec(promocode.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(promocode.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiscountSharePct(); ok {
		_spec.SetField(promocode.FieldDiscountSharePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscountSharePct(); ok {
		_spec.AddField(promocode.FieldDiscountSharePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(promocode.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.AffiliateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AffiliateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscriptionsIDs(); len(nodes) > 0 && !_u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promocode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromoCodeUpdateOne is the builder for updating a single PromoCode entity.
type PromoCodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromoCodeMutation
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *PromoCodeUpdateOne) SetAffiliateID(v int) *PromoCodeUpdateOne {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *PromoCodeUpdateOne) SetNillableAffiliateID(v *int) *PromoCodeUpdateOne {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *PromoCodeUpdateOne) SetCode(v string) *PromoCodeUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *PromoCodeUpdateOne) SetNillableCode(v *string) *PromoCodeUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDiscountSharePct sets the "discount_share_pct" field.
func (_u *PromoCodeUpdateOne) SetDiscountSharePct(v float64) *PromoCodeUpdateOne {
	_u.mutation.ResetDiscountSharePct()
	_u.mutation.SetDiscountSharePct(v)
	return _u
}

// SetNillableDiscountSharePct sets the "discount_share_pct" field if the given value is not nil.
func (_u *PromoCodeUpdateOne) SetNillableDiscountSharePct(v *float64) *PromoCodeUpdateOne {
	if v != nil {
		_u.SetDiscountSharePct(*v)
	}
	return _u
}

// AddDiscountSharePct adds value to the "discount_share_pct" field.
func (_u *PromoCodeUpdateOne) AddDiscountSharePct(v float64) *PromoCodeUpdateOne {
	_u.mutation.AddDiscountSharePct(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *PromoCodeUpdateOne) SetActive(v bool) *PromoCodeUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PromoCodeUpdateOne) SetNillableActive(v *bool) *PromoCodeUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetAffiliate sets the "affiliate" edge to the Affiliate entity.
func (_u *PromoCodeUpdateOne) SetAffiliate(v *Affiliate) *PromoCodeUpdateOne {
	return _u.SetAffiliateID(v.ID)
}

// AddSubscriptionIDs adds the "subscriptions" edge to the BusinessSubscription entity by IDs.
func (_u *PromoCodeUpdateOne) AddSubscriptionIDs(ids ...int) *PromoCodeUpdateOne {
	_u.mutation.AddSubscriptionIDs(ids...)
	return _u
}

// AddSubscriptions adds the "subscriptions" edges to the BusinessSubscription entity.
func (_u *PromoCodeUpdateOne) AddSubscriptions(v ...*BusinessSubscription) *PromoCodeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriptionIDs(ids...)
}

// Mutation returns the PromoCodeMutation object of the builder.
func (_u *PromoCodeUpdateOne) Mutation() *PromoCodeMutation {
	return _u.mutation
}

// ClearAffiliate clears the "affiliate" edge to the Affiliate entity.
func (_u *PromoCodeUpdateOne) ClearAffiliate() *PromoCodeUpdateOne {
	_u.mutation.ClearAffiliate()
	return _u
}

// ClearSubscriptions clears all "subscriptions" edges to the BusinessSubscription entity.
func (_u *PromoCodeUpdateOne) ClearSubscriptions() *PromoCodeUpdateOne {
	_u.mutation.ClearSubscriptions()
	return _u
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to BusinessSubscription entities by IDs.
func (_u *PromoCodeUpdateOne) RemoveSubscriptionIDs(ids ...int) *PromoCodeUpdateOne {
	_u.mutation.RemoveSubscriptionIDs(ids...)
	return _u
}

// RemoveSubscriptions removes "subscriptions" edges to BusinessSubscription entities.
func (_u *PromoCodeUpdateOne) RemoveSubscriptions(v ...*BusinessSubscription) *PromoCodeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriptionIDs(ids...)
}

// Where appends a list predicates to the PromoCodeUpdate builder.
func (_u *PromoCodeUpdateOne) Where(ps ...predicate.PromoCode) *PromoCodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromoCodeUpdateOne) Select(field string, fields ...string) *PromoCodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromoCode entity.
func (_u *PromoCodeUpdateOne) Save(ctx context.Context) (*PromoCode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromoCodeUpdateOne) SaveX(ctx context.Context) *PromoCode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromoCodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromoCodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromoCodeUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := promocode.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "PromoCode.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiscountSharePct(); ok {
		if err := promocode.DiscountSharePctValidator(v); err != nil {
			return &ValidationError{Name: "discount_share_pct", err: fmt.Errorf(`ent: validator failed for field "PromoCode.discount_share_pct": %w`, err)}
		}
	}
	if _u.mutation.AffiliateCleared() && len(_u.mutation.AffiliateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromoCode.affiliate"`)
	}
	return nil
}

func (_u *PromoCodeUpdateOne) sqlSave(ctx context.Context) (_node *PromoCode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promocode.Table, promocode.Columns, sqlgraph.NewFieldSpec(promocode.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromoCode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promocode.FieldID)
		for _, f := range fields {
			if !promocode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promocode.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(promocode.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiscountSharePct(); ok {
		_spec.SetField(promocode.FieldDiscountSharePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscountSharePct(); ok {
		_spec.AddField(promocode.FieldDiscountSharePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(promocode.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.AffiliateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AffiliateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscriptionsIDs(); len(nodes) > 0 && !_u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PromoCode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promocode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
