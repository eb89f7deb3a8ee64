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
	"github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/predicate"
	"github.com/homecheff/affiliates/ent/user"
)

// AttributionUpdate is the builder for updating Attribution entities.
type AttributionUpdate struct {
	config
	hooks    []Hook
	mutation *AttributionMutation
}

// Where appends a list predicates to the AttributionUpdate builder.
func (_u *AttributionUpdate) Where(ps ...predicate.Attribution) *AttributionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AttributionUpdate) SetUserID(v int) *AttributionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttributionUpdate) SetNillableUserID(v *int) *AttributionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *AttributionUpdate) SetAffiliateID(v int) *AttributionUpdate {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *AttributionUpdate) SetNillableAffiliateID(v *int) *AttributionUpdate {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *AttributionUpdate) SetType(v attribution.Type) *AttributionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *AttributionUpdate) SetNillableType(v *attribution.Type) *AttributionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AttributionUpdate) SetSource(v attribution.Source) *AttributionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AttributionUpdate) SetNillableSource(v *attribution.Source) *AttributionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *AttributionUpdate) SetStartsAt(v time.Time) *AttributionUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *AttributionUpdate) SetNillableStartsAt(v *time.Time) *AttributionUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *AttributionUpdate) SetEndsAt(v time.Time) *AttributionUpdate {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *AttributionUpdate) SetNillableEndsAt(v *time.Time) *AttributionUpdate {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *AttributionUpdate) SetUser(v *User) *AttributionUpdate {
	return _u.SetUserID(v.ID)
}

// SetAffiliate sets the "affiliate" edge to the Affiliate entity.
func (_u *AttributionUpdate) SetAffiliate(v *Affiliate) *AttributionUpdate {
	return _u.SetAffiliateID(v.ID)
}

// AddSubscriptionIDs adds the "subscriptions" edge to the BusinessSubscription entity by IDs.
func (_u *AttributionUpdate) AddSubscriptionIDs(ids ...int) *AttributionUpdate {
	_u.mutation.AddSubscriptionIDs(ids...)
	return _u
}

// AddSubscriptions adds the "subscriptions" edges to the BusinessSubscription entity.
func (_u *AttributionUpdate) AddSubscriptions(v ...*BusinessSubscription) *AttributionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriptionIDs(ids...)
}

// Mutation returns the AttributionMutation object of the builder.
func (_u *AttributionUpdate) Mutation() *AttributionMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *AttributionUpdate) ClearUser() *AttributionUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearAffiliate clears the "affiliate" edge to the Affiliate entity.
func (_u *AttributionUpdate) ClearAffiliate() *AttributionUpdate {
	_u.mutation.ClearAffiliate()
	return _u
}

// ClearSubscriptions clears all "subscriptions" edges to the BusinessSubscription entity.
func (_u *AttributionUpdate) ClearSubscriptions() *AttributionUpdate {
	_u.mutation.ClearSubscriptions()
	return _u
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to BusinessSubscription entities by IDs.
func (_u *AttributionUpdate) RemoveSubscriptionIDs(ids ...int) *AttributionUpdate {
	_u.mutation.RemoveSubscriptionIDs(ids...)
	return _u
}

// RemoveSubscriptions removes "subscriptions" edges to BusinessSubscription entities.
func (_u *AttributionUpdate) RemoveSubscriptions(v ...*BusinessSubscription) *AttributionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriptionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttributionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttributionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttributionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttributionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttributionUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := attribution.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Attribution.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := attribution.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Attribution.source": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attribution.user"`)
	}
	if _u.mutation.AffiliateCleared() && len(_u.mutation.AffiliateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attribution.affiliate"`)
	}
	return nil
}

func (_u *AttributionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attribution.Table, attribution.Columns, sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(attribution.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(attribution.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(attribution.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(attribution.FieldEndsAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AffiliateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AffiliateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscriptionsIDs(); len(nodes) > 0 && !_u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attribution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttributionUpdateOne is the builder for updating a single Attribution entity.
type AttributionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttributionMutation
}

// SetUserID sets the "user_id" field.
func (_u *AttributionUpdateOne) SetUserID(v int) *AttributionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttributionUpdateOne) SetNillableUserID(v *int) *AttributionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *AttributionUpdateOne) SetAffiliateID(v int) *AttributionUpdateOne {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *AttributionUpdateOne) SetNillableAffiliateID(v *int) *AttributionUpdateOne {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *AttributionUpdateOne) SetType(v attribution.Type) *AttributionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *AttributionUpdateOne) SetNillableType(v *attribution.Type) *AttributionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AttributionUpdateOne) SetSource(v attribution.Source) *AttributionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AttributionUpdateOne) SetNillableSource(v *attribution.Source) *AttributionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *AttributionUpdateOne) SetStartsAt(v time.Time) *AttributionUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *AttributionUpdateOne) SetNillableStartsAt(v *time.Time) *AttributionUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *AttributionUpdateOne) SetEndsAt(v time.Time) *AttributionUpdateOne {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *AttributionUpdateOne) SetNillableEndsAt(v *time.Time) *AttributionUpdateOne {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *AttributionUpdateOne) SetUser(v *User) *AttributionUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetAffiliate sets the "affiliate" edge to the Affiliate entity.
func (_u *AttributionUpdateOne) SetAffiliate(v *Affiliate) *AttributionUpdateOne {
	return _u.SetAffiliateID(v.ID)
}

// AddSubscriptionIDs adds the "subscriptions" edge to the BusinessSubscription entity by IDs.
func (_u *AttributionUpdateOne) AddSubscriptionIDs(ids ...int) *AttributionUpdateOne {
	_u.mutation.AddSubscriptionIDs(ids...)
	return _u
}

// AddSubscriptions adds the "subscriptions" edges to the BusinessSubscription entity.
func (_u *AttributionUpdateOne) AddSubscriptions(v ...*BusinessSubscription) *AttributionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriptionIDs(ids...)
}

// Mutation returns the AttributionMutation object of the builder.
func (_u *AttributionUpdateOne) Mutation() *AttributionMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *AttributionUpdateOne) ClearUser() *AttributionUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearAffiliate clears the "affiliate" edge to the Affiliate entity.
func (_u *AttributionUpdateOne) ClearAffiliate() *AttributionUpdateOne {
	_u.mutation.ClearAffiliate()
	return _u
}

// ClearSubscriptions clears all "subscriptions" edges to the BusinessSubscription entity.
func (_u *AttributionUpdateOne) ClearSubscriptions() *AttributionUpdateOne {
	_u.mutation.ClearSubscriptions()
	return _u
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to BusinessSubscription entities by IDs.
func (_u *AttributionUpdateOne) RemoveSubscriptionIDs(ids ...int) *AttributionUpdateOne {
	_u.mutation.RemoveSubscriptionIDs(ids...)
	return _u
}

// RemoveSubscriptions removes "subscriptions" edges to BusinessSubscription entities.
func (_u *AttributionUpdateOne) RemoveSubscriptions(v ...*BusinessSubscription) *AttributionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriptionIDs(ids...)
}

// Where appends a list predicates to the AttributionUpdate builder.
func (_u *AttributionUpdateOne) Where(ps ...predicate.Attribution) *AttributionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttributionUpdateOne) Select(field string, fields ...string) *AttributionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attribution entity.
func (_u *AttributionUpdateOne) Save(ctx context.Context) (*Attribution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttributionUpdateOne) SaveX(ctx context.Context) *Attribution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttributionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttributionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttributionUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := attribution.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Attribution.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := attribution.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Attribution.source": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attribution.user"`)
	}
	if _u.mutation.AffiliateCleared() && len(_u.mutation.AffiliateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attribution.affiliate"`)
	}
	return nil
}

func (_u *AttributionUpdateOne) sqlSave(ctx context.Context) (_node *Attribution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attribution.Table, attribution.Columns, sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attribution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attribution.FieldID)
		for _, f := range fields {
			if !attribution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attribution.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(attribution.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(attribution.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(attribution.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(attribution.FieldEndsAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AffiliateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AffiliateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscriptionsIDs(); len(nodes) > 0 && !_u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Attribution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attribution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
