// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/ledgerentry"
	"github.com/homecheff/affiliates/ent/promocode"
)

// BusinessSubscriptionCreate is the builder for creating a BusinessSubscription entity.
type BusinessSubscriptionCreate struct {
	config
	mutation *BusinessSubscriptionMutation
	hooks    []Hook
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (_c *BusinessSubscriptionCreate) SetStripeSubscriptionID(v string) *BusinessSubscriptionCreate {
	_c.mutation.SetStripeSubscriptionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *BusinessSubscriptionCreate) SetUserID(v int) *BusinessSubscriptionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAttributionID sets the "attribution_id" field.
func (_c *BusinessSubscriptionCreate) SetAttributionID(v int) *BusinessSubscriptionCreate {
	_c.mutation.SetAttributionID(v)
	return _c
}

// SetNillableAttributionID sets the "attribution_id" field if the given value is not nil.
func (_c *BusinessSubscriptionCreate) SetNillableAttributionID(v *int) *BusinessSubscriptionCreate {
	if v != nil {
		_c.SetAttributionID(*v)
	}
	return _c
}

// SetPromoCodeID sets the "promo_code_id" field.
func (_c *BusinessSubscriptionCreate) SetPromoCodeID(v int) *BusinessSubscriptionCreate {
	_c.mutation.SetPromoCodeID(v)
	return _c
}

// SetNillablePromoCodeID sets the "promo_code_id" field if the given value is not nil.
func (_c *BusinessSubscriptionCreate) SetNillablePromoCodeID(v *int) *BusinessSubscriptionCreate {
	if v != nil {
		_c.SetPromoCodeID(*v)
	}
	return _c
}

// SetFeeCents sets the "fee_cents" field.
func (_c *BusinessSubscriptionCreate) SetFeeCents(v int64) *BusinessSubscriptionCreate {
	_c.mutation.SetFeeCents(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BusinessSubscriptionCreate) SetStatus(v businesssubscription.Status) *BusinessSubscriptionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BusinessSubscriptionCreate) SetNillableStatus(v *businesssubscription.Status) *BusinessSubscriptionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEndsAt sets the "ends_at" field.
func (_c *BusinessSubscriptionCreate) SetEndsAt(v time.Time) *BusinessSubscriptionCreate {
	_c.mutation.SetEndsAt(v)
	return _c
}

// SetCurrentPeriodStart sets the "current_period_start" field.
func (_c *BusinessSubscriptionCreate) SetCurrentPeriodStart(v time.Time) *BusinessSubscriptionCreate {
	_c.mutation.SetCurrentPeriodStart(v)
	return _c
}

// SetNillableCurrentPeriodStart sets the "current_period_start" field if the given value is not nil.
func (_c *BusinessSubscriptionCreate) SetNillableCurrentPeriodStart(v *time.Time) *BusinessSubscriptionCreate {
	if v != nil {
		_c.SetCurrentPeriodStart(*v)
	}
	return _c
}

// SetCurrentPeriodEnd sets the "current_period_end" field.
func (_c *BusinessSubscriptionCreate) SetCurrentPeriodEnd(v time.Time) *BusinessSubscriptionCreate {
	_c.mutation.SetCurrentPeriodEnd(v)
	return _c
}

// SetNillableCurrentPeriodEnd sets the "current_period_end" field if the given value is not nil.
func (_c *BusinessSubscriptionCreate) SetNillableCurrentPeriodEnd(v *time.Time) *BusinessSubscriptionCreate {
	if v != nil {
		_c.SetCurrentPeriodEnd(*v)
	}
	return _c
}

// SetCanceledAt sets the "canceled_at" field.
func (_c *BusinessSubscriptionCreate) SetCanceledAt(v time.Time) *BusinessSubscriptionCreate {
	_c.mutation.SetCanceledAt(v)
	return _c
}

// SetNillableCanceledAt sets the "canceled_at" field if the given value is not nil.
func (_c *BusinessSubscriptionCreate) SetNillableCanceledAt(v *time.Time) *BusinessSubscriptionCreate {
	if v != nil {
		_c.SetCanceledAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BusinessSubscriptionCreate) SetCreatedAt(v time.Time) *BusinessSubscriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BusinessSubscriptionCreate) SetNillableCreatedAt(v *time.Time) *BusinessSubscriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BusinessSubscriptionCreate) SetUpdatedAt(v time.Time) *BusinessSubscriptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BusinessSubscriptionCreate) SetNillableUpdatedAt(v *time.Time) *BusinessSubscriptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAttribution sets the "attribution" edge to the Attribution entity.
func (_c *BusinessSubscriptionCreate) SetAttribution(v *Attribution) *BusinessSubscriptionCreate {
	return _c.SetAttributionID(v.ID)
}

// SetPromoCode sets the "promo_code" edge to the PromoCode entity.
func (_c *BusinessSubscriptionCreate) SetPromoCode(v *PromoCode) *BusinessSubscriptionCreate {
	return _c.SetPromoCodeID(v.ID)
}

// AddLedgerEntryIDs adds the "ledger_entries" edge to the LedgerEntry entity by IDs.
func (_c *BusinessSubscriptionCreate) AddLedgerEntryIDs(ids ...int) *BusinessSubscriptionCreate {
	_c.mutation.AddLedgerEntryIDs(ids...)
	return _c
}

// AddLedgerEntries adds the "ledger_entries" edges to the LedgerEntry entity.
func (_c *BusinessSubscriptionCreate) AddLedgerEntries(v ...*LedgerEntry) *BusinessSubscriptionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLedgerEntryIDs(ids...)
}

// Mutation returns the BusinessSubscriptionMutation object of the builder.
func (_c *BusinessSubscriptionCreate) Mutation() *BusinessSubscriptionMutation {
	return _c.mutation
}

// Save creates the BusinessSubscription in the database.
func (_c *BusinessSubscriptionCreate) Save(ctx context.Context) (*BusinessSubscription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessSubscriptionCreate) SaveX(ctx context.Context) *BusinessSubscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessSubscriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessSubscriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusinessSubscriptionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := businesssubscription.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := businesssubscription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := businesssubscription.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessSubscriptionCreate) check() error {
	if _, ok := _c.mutation.StripeSubscriptionID(); !ok {
		return &ValidationError{Name: "stripe_subscription_id", err: errors.New(`ent: missing required field "BusinessSubscription.stripe_subscription_id"`)}
	}
	if v, ok := _c.mutation.StripeSubscriptionID(); ok {
		if err := businesssubscription.StripeSubscriptionIDValidator(v); err != nil {
			return &ValidationError{Name: "stripe_subscription_id", err: fmt.Errorf(`ent: validator failed for field "BusinessSubscription.stripe_subscription_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BusinessSubscription.user_id"`)}
	}
	if _, ok := _c.mutation.FeeCents(); !ok {
		return &ValidationError{Name: "fee_cents", err: errors.New(`ent: missing required field "BusinessSubscription.fee_cents"`)}
	}
	if v, ok := _c.mutation.FeeCents(); ok {
		if err := businesssubscription.FeeCentsValidator(v); err != nil {
			return &ValidationError{Name: "fee_cents", err: fmt.Errorf(`ent: validator failed for field "BusinessSubscription.fee_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BusinessSubscription.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := businesssubscription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BusinessSubscription.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndsAt(); !ok {
		return &ValidationError{Name: "ends_at", err: errors.New(`ent: missing required field "BusinessSubscription.ends_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BusinessSubscription.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BusinessSubscription.updated_at"`)}
	}
	return nil
}

func (_c *BusinessSubscriptionCreate) sqlSave(ctx context.Context) (*BusinessSubscription, error) {
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

func (_c *BusinessSubscriptionCreate) createSpec() (*BusinessSubscription, *sqlgraph.CreateSpec) {
	var (
		_node = &BusinessSubscription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(businesssubscription.Table, sqlgraph.NewFieldSpec(businesssubscription.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(businesssubscription.FieldStripeSubscriptionID, field.TypeString, value)
		_node.StripeSubscriptionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(businesssubscription.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FeeCents(); ok {
		_spec.SetField(businesssubscription.FieldFeeCents, field.TypeInt64, value)
		_node.FeeCents = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(businesssubscription.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EndsAt(); ok {
		_spec.SetField(businesssubscription.FieldEndsAt, field.TypeTime, value)
		_node.EndsAt = value
	}
	if value, ok := _c.mutation.CurrentPeriodStart(); ok {
		_spec.SetField(businesssubscription.FieldCurrentPeriodStart, field.TypeTime, value)
		_node.CurrentPeriodStart = &value
	}
	if value, ok := _c.mutation.CurrentPeriodEnd(); ok {
		_spec.SetField(businesssubscription.FieldCurrentPeriodEnd, field.TypeTime, value)
		_node.CurrentPeriodEnd = &value
	}
	if value, ok := _c.mutation.CanceledAt(); ok {
		_spec.SetField(businesssubscription.FieldCanceledAt, field.TypeTime, value)
		_node.CanceledAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(businesssubscription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(businesssubscription.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AttributionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   businesssubscription.AttributionTable,
			Columns: []string{businesssubscription.AttributionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AttributionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PromoCodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   businesssubscription.PromoCodeTable,
			Columns: []string{businesssubscription.PromoCodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promocode.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PromoCodeID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LedgerEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   businesssubscription.LedgerEntriesTable,
			Columns: []string{businesssubscription.LedgerEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BusinessSubscriptionCreateBulk is the builder for creating many BusinessSubscription entities in bulk.
type BusinessSubscriptionCreateBulk struct {
	config
	err      error
	builders []*BusinessSubscriptionCreate
}

// Save creates the BusinessSubscription entities in the database.
func (_c *BusinessSubscriptionCreateBulk) Save(ctx context.Context) ([]*BusinessSubscription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusinessSubscription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessSubscriptionMutation)
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
func (_c *BusinessSubscriptionCreateBulk) SaveX(ctx context.Context) []*BusinessSubscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessSubscriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessSubscriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
