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
	"github.com/homecheff/affiliates/ent/predicate"
	"github.com/homecheff/affiliates/ent/referralclick"
	"github.com/homecheff/affiliates/ent/referrallink"
)

// ReferralLinkUpdate is the builder for updating ReferralLink entities.
type ReferralLinkUpdate struct {
	config
	hooks    []Hook
	mutation *ReferralLinkMutation
}

// Where appends a list predicates to the ReferralLinkUpdate builder.
func (_u *ReferralLinkUpdate) Where(ps ...predicate.ReferralLink) *ReferralLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *ReferralLinkUpdate) SetAffiliateID(v int) *ReferralLinkUpdate {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *ReferralLinkUpdate) SetNillableAffiliateID(v *int) *ReferralLinkUpdate {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *ReferralLinkUpdate) SetCode(v string) *ReferralLinkUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *ReferralLinkUpdate) SetNillableCode(v *string) *ReferralLinkUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ReferralLinkUpdate) SetActive(v bool) *ReferralLinkUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ReferralLinkUpdate) SetNillableActive(v *bool) *ReferralLinkUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetAffiliate sets the "affiliate" edge to the Affiliate entity.
func (_u *ReferralLinkUpdate) SetAffiliate(v *Affiliate) *ReferralLinkUpdate {
	return _u.SetAffiliateID(v.ID)
}

// AddClickIDs adds the "clicks" edge to the ReferralClick entity by IDs.
func (_u *ReferralLinkUpdate) AddClickIDs(ids ...int) *ReferralLinkUpdate {
	_u.mutation.AddClickIDs(ids...)
	return _u
}

// AddClicks adds the "clicks" edges to the ReferralClick entity.
func (_u *ReferralLinkUpdate) AddClicks(v ...*ReferralClick) *ReferralLinkUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClickIDs(ids...)
}

// Mutation returns the ReferralLinkMutation object of the builder.
func (_u *ReferralLinkUpdate) Mutation() *ReferralLinkMutation {
	return _u.mutation
}

// ClearAffiliate clears the "affiliate" edge to the Affiliate entity.
func (_u *ReferralLinkUpdate) ClearAffiliate() *ReferralLinkUpdate {
	_u.mutation.ClearAffiliate()
	return _u
}

// ClearClicks clears all "clicks" edges to the ReferralClick entity.
func (_u *ReferralLinkUpdate) ClearClicks() *ReferralLinkUpdate {
	_u.mutation.ClearClicks()
	return _u
}

// RemoveClickIDs removes the "clicks" edge to ReferralClick entities by IDs.
func (_u *ReferralLinkUpdate) RemoveClickIDs(ids ...int) *ReferralLinkUpdate {
	_u.mutation.RemoveClickIDs(ids...)
	return _u
}

// RemoveClicks removes "clicks" edges to ReferralClick entities.
func (_u *ReferralLinkUpdate) RemoveClicks(v ...*ReferralClick) *ReferralLinkUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClickIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReferralLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferralLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReferralLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferralLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferralLinkUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := referrallink.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "ReferralLink.code": %w`, err)}
		}
	}
	if _u.mutation.AffiliateCleared() && len(_u.mutation.AffiliateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReferralLink.affiliate"`)
	}
	return nil
}

func (_u *ReferralLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(referrallink.Table, referrallink.Columns, sqlgraph.NewFieldSpec(referrallink.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(referrallink.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(referrallink.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.AffiliateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AffiliateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClicksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClicksIDs(); len(nodes) > 0 && !_u.mutation.ClicksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClicksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referrallink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReferralLinkUpdateOne is the builder for updating a single ReferralLink entity.
type ReferralLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReferralLinkMutation
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *ReferralLinkUpdateOne) SetAffiliateID(v int) *ReferralLinkUpdateOne {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *ReferralLinkUpdateOne) SetNillableAffiliateID(v *int) *ReferralLinkUpdateOne {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *ReferralLinkUpdateOne) SetCode(v string) *ReferralLinkUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *ReferralLinkUpdateOne) SetNillableCode(v *string) *ReferralLinkUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ReferralLinkUpdateOne) SetActive(v bool) *ReferralLinkUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ReferralLinkUpdateOne) SetNillableActive(v *bool) *ReferralLinkUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetAffiliate sets the "affiliate" edge to the Affiliate entity.
func (_u *ReferralLinkUpdateOne) SetAffiliate(v *Affiliate) *ReferralLinkUpdateOne {
	return _u.SetAffiliateID(v.ID)
}

// AddClickIDs adds the "clicks" edge to the ReferralClick entity by IDs.
func (_u *ReferralLinkUpdateOne) AddClickIDs(ids ...int) *ReferralLinkUpdateOne {
	_u.mutation.AddClickIDs(ids...)
	return _u
}

// AddClicks adds the "clicks" edges to the ReferralClick entity.
func (_u *ReferralLinkUpdateOne) AddClicks(v ...*ReferralClick) *ReferralLinkUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClickIDs(ids...)
}

// Mutation returns the ReferralLinkMutation object of the builder.
func (_u *ReferralLinkUpdateOne) Mutation() *ReferralLinkMutation {
	return _u.mutation
}

// ClearAffiliate clears the "affiliate" edge to the Affiliate entity.
func (_u *ReferralLinkUpdateOne) ClearAffiliate() *ReferralLinkUpdateOne {
	_u.mutation.ClearAffiliate()
	return _u
}

// ClearClicks clears all "clicks" edges to the ReferralClick entity.
func (_u *ReferralLinkUpdateOne) ClearClicks() *ReferralLinkUpdateOne {
	_u.mutation.ClearClicks()
	return _u
}

// RemoveClickIDs removes the "clicks" edge to ReferralClick entities by IDs.
func (_u *ReferralLinkUpdateOne) RemoveClickIDs(ids ...int) *ReferralLinkUpdateOne {
	_u.mutation.RemoveClickIDs(ids...)
	return _u
}

// RemoveClicks removes "clicks" edges to ReferralClick entities.
func (_u *ReferralLinkUpdateOne) RemoveClicks(v ...*ReferralClick) *ReferralLinkUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClickIDs(ids...)
}

// Where appends a list predicates to the ReferralLinkUpdate builder.
func (_u *ReferralLinkUpdateOne) Where(ps ...predicate.ReferralLink) *ReferralLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReferralLinkUpdateOne) Select(field string, fields ...string) *ReferralLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReferralLink entity.
func (_u *ReferralLinkUpdateOne) Save(ctx context.Context) (*ReferralLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferralLinkUpdateOne) SaveX(ctx context.Context) *ReferralLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReferralLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferralLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferralLinkUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := referrallink.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "ReferralLink.code": %w`, err)}
		}
	}
	if _u.mutation.AffiliateCleared() && len(_u.mutation.AffiliateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReferralLink.affiliate"`)
	}
	return nil
}

func (_u *ReferralLinkUpdateOne) sqlSave(ctx context.Context) (_node *ReferralLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(referrallink.Table, referrallink.Columns, sqlgraph.NewFieldSpec(referrallink.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReferralLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, referrallink.FieldID)
		for _, f := range fields {
			if !referrallink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != referrallink.FieldID {
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
		_spec.SetField(referrallink.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(referrallink.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.AffiliateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AffiliateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClicksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClicksIDs(); len(nodes) > 0 && !_u.mutation.ClicksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClicksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReferralLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referrallink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
