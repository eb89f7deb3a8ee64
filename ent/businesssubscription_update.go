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
	"github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/ledgerentry"
	"github.com/homecheff/affiliates/ent/predicate"
	"github.com/homecheff/affiliates/ent/promocode"
)

// BusinessSubscriptionUpdate is the builder for updating BusinessSubscription entities.
type BusinessSubscriptionUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessSubscriptionMutation
}

// Where appends a list predicates to the BusinessSubscriptionUpdate builder.
func (_u *BusinessSubscriptionUpdate) Where(ps ...predicate.BusinessSubscription) *BusinessSubscriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (_u *BusinessSubscriptionUpdate) SetStripeSubscriptionID(v string) *BusinessSubscriptionUpdate {
	_u.mutation.SetStripeSubscriptionID(v)
	return _u
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdate) SetNillableStripeSubscriptionID(v *string) *BusinessSubscriptionUpdate {
	if v != nil {
		_u.SetStripeSubscriptionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BusinessSubscriptionUpdate) SetUserID(v int) *BusinessSubscriptionUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdate) SetNillableUserID(v *int) *BusinessSubscriptionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *BusinessSubscriptionUpdate) AddUserID(v int) *BusinessSubscriptionUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetAttributionID sets the "attribution_id" field.
func (_u *BusinessSubscriptionUpdate) SetAttributionID(v int) *BusinessSubscriptionUpdate {
	_u.mutation.SetAttributionID(v)
	return _u
}

// SetNillableAttributionID sets the "attribution_id" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdate) SetNillableAttributionID(v *int) *BusinessSubscriptionUpdate {
	if v != nil {
		_u.SetAttributionID(*v)
	}
	return _u
}

// ClearAttributionID clears the value of the "attribution_id" field.
func (_u *BusinessSubscriptionUpdate) ClearAttributionID() *BusinessSubscriptionUpdate {
	_u.mutation.ClearAttributionID()
	return _u
}

// SetPromoCodeID sets the "promo_code_id" field.
func (_u *BusinessSubscriptionUpdate) SetPromoCodeID(v int) *BusinessSubscriptionUpdate {
	_u.mutation.SetPromoCodeID(v)
	return _u
}

// SetNillablePromoCodeID sets the "promo_code_id" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdate) SetNillablePromoCodeID(v *int) *BusinessSubscriptionUpdate {
	if v != nil {
		_u.SetPromoCodeID(*v)
	}
	return _u
}

// ClearPromoCodeID clears the value of the "promo_code_id" field.
func (_u *BusinessSubscriptionUpdate) ClearPromoCodeID() *BusinessSubscriptionUpdate {
	_u.mutation.ClearPromoCodeID()
	return _u
}

// SetFeeCents sets the "fee_cents" field.
func (_u *BusinessSubscriptionUpdate) SetFeeCents(v int64) *BusinessSubscriptionUpdate {
	_u.mutation.ResetFeeCents()
	_u.mutation.SetFeeCents(v)
	return _u
}

// SetNillableFeeCents sets the "fee_cents" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdate) SetNillableFeeCents(v *int64) *BusinessSubscriptionUpdate {
	if v != nil {
		_u.SetFeeCents(*v)
	}
	return _u
}

// AddFeeCents adds value to the "fee_cents" field.
func (_u *BusinessSubscriptionUpdate) AddFeeCents(v int64) *BusinessSubscriptionUpdate {
	_u.mutation.AddFeeCents(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BusinessSubscriptionUpdate) SetStatus(v businesssubscription.Status) *BusinessSubscriptionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdate) SetNillableStatus(v *businesssubscription.Status) *BusinessSubscriptionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *BusinessSubscriptionUpdate) SetEndsAt(v time.Time) *BusinessSubscriptionUpdate {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdate) SetNillableEndsAt(v *time.Time) *BusinessSubscriptionUpdate {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetCurrentPeriodStart sets the "current_period_start" field.
func (_u *BusinessSubscriptionUpdate) SetCurrentPeriodStart(v time.Time) *BusinessSubscriptionUpdate {
	_u.mutation.SetCurrentPeriodStart(v)
	return _u
}

// SetNillableCurrentPeriodStart sets the "current_period_start" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdate) SetNillableCurrentPeriodStart(v *time.Time) *BusinessSubscriptionUpdate {
	if v != nil {
		_u.SetCurrentPeriodStart(*v)
	}
	return _u
}

// ClearCurrentPeriodStart clears the value of the "current_period_start" field.
func (_u *BusinessSubscriptionUpdate) ClearCurrentPeriodStart() *BusinessSubscriptionUpdate {
	_u.mutation.ClearCurrentPeriodStart()
	return _u
}

// SetCurrentPeriodEnd sets the "current_period_end" field.
func (_u *BusinessSubscriptionUpdate) SetCurrentPeriodEnd(v time.Time) *BusinessSubscriptionUpdate {
	_u.mutation.SetCurrentPeriodEnd(v)
	return _u
}

// SetNillableCurrentPeriodEnd sets the "current_period_end" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdate) SetNillableCurrentPeriodEnd(v *time.Time) *BusinessSubscriptionUpdate {
	if v != nil {
		_u.SetCurrentPeriodEnd(*v)
	}
	return _u
}

// ClearCurrentPeriodEnd clears the value of the "current_period_end" field.
func (_u *BusinessSubscriptionUpdate) ClearCurrentPeriodEnd() *BusinessSubscriptionUpdate {
	_u.mutation.ClearCurrentPeriodEnd()
	return _u
}

// SetCanceledAt sets the "canceled_at" field.
func (_u *BusinessSubscriptionUpdate) SetCanceledAt(v time.Time) *BusinessSubscriptionUpdate {
	_u.mutation.SetCanceledAt(v)
	return _u
}

// SetNillableCanceledAt sets the "canceled_at" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdate) SetNillableCanceledAt(v *time.Time) *BusinessSubscriptionUpdate {
	if v != nil {
		_u.SetCanceledAt(*v)
	}
	return _u
}

// ClearCanceledAt clears the value of the "canceled_at" field.
func (_u *BusinessSubscriptionUpdate) ClearCanceledAt() *BusinessSubscriptionUpdate {
	_u.mutation.ClearCanceledAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessSubscriptionUpdate) SetUpdatedAt(v time.Time) *BusinessSubscriptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAttribution sets the "attribution" edge to the Attribution entity.
func (_u *BusinessSubscriptionUpdate) SetAttribution(v *Attribution) *BusinessSubscriptionUpdate {
	return _u.SetAttributionID(v.ID)
}

// SetPromoCode sets the "promo_code" edge to the PromoCode entity.
func (_u *BusinessSubscriptionUpdate) SetPromoCode(v *PromoCode) *BusinessSubscriptionUpdate {
	return _u.SetPromoCodeID(v.ID)
}

// AddLedgerEntryIDs adds the "ledger_entries" edge to the LedgerEntry entity by IDs.
func (_u *BusinessSubscriptionUpdate) AddLedgerEntryIDs(ids ...int) *BusinessSubscriptionUpdate {
	_u.mutation.AddLedgerEntryIDs(ids...)
	return _u
}

// AddLedgerEntries adds the "ledger_entries" edges to the LedgerEntry entity.
func (_u *BusinessSubscriptionUpdate) AddLedgerEntries(v ...*LedgerEntry) *BusinessSubscriptionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLedgerEntryIDs(ids...)
}

// Mutation returns the BusinessSubscriptionMutation object of the builder.
func (_u *BusinessSubscriptionUpdate) Mutation() *BusinessSubscriptionMutation {
	return _u.mutation
}

// ClearAttribution clears the "attribution" edge to the Attribution entity.
func (_u *BusinessSubscriptionUpdate) ClearAttribution() *BusinessSubscriptionUpdate {
	_u.mutation.ClearAttribution()
	return _u
}

// ClearPromoCode clears the "promo_code" edge to the PromoCode entity.
func (_u *BusinessSubscriptionUpdate) ClearPromoCode() *BusinessSubscriptionUpdate {
	_u.mutation.ClearPromoCode()
	return _u
}

// ClearLedgerEntries clears all "ledger_entries" edges to the LedgerEntry entity.
func (_u *BusinessSubscriptionUpdate) ClearLedgerEntries() *BusinessSubscriptionUpdate {
	_u.mutation.ClearLedgerEntries()
	return _u
}

// RemoveLedgerEntryIDs removes the "ledger_entries" edge to LedgerEntry entities by IDs.
func (_u *BusinessSubscriptionUpdate) RemoveLedgerEntryIDs(ids ...int) *BusinessSubscriptionUpdate {
	_u.mutation.RemoveLedgerEntryIDs(ids...)
	return _u
}

// RemoveLedgerEntries removes "ledger_entries" edges to LedgerEntry entities.
func (_u *BusinessSubscriptionUpdate) RemoveLedgerEntries(v ...*LedgerEntry) *BusinessSubscriptionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLedgerEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessSubscriptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessSubscriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessSubscriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessSubscriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessSubscriptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businesssubscription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessSubscriptionUpdate) check() error {
	if v, ok := _u.mutation.StripeSubscriptionID(); ok {
		if err := businesssubscription.StripeSubscriptionIDValidator(v); err != nil {
			return &ValidationError{Name: "stripe_subscription_id", err: fmt.Errorf(`ent: validator failed for field "BusinessSubscription.stripe_subscription_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeeCents(); ok {
		if err := businesssubscription.FeeCentsValidator(v); err != nil {
			return &ValidationError{Name: "fee_cents", err: fmt.Errorf(`ent: validator failed for field "BusinessSubscription.fee_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := businesssubscription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BusinessSubscription.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessSubscriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businesssubscription.Table, businesssubscription.Columns, sqlgraph.NewFieldSpec(businesssubscription.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(businesssubscription.FieldStripeSubscriptionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(businesssubscription.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(businesssubscription.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FeeCents(); ok {
		_spec.SetField(businesssubscription.FieldFeeCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFeeCents(); ok {
		_spec.AddField(businesssubscription.FieldFeeCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(businesssubscription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(businesssubscription.FieldEndsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CurrentPeriodStart(); ok {
		_spec.SetField(businesssubscription.FieldCurrentPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.CurrentPeriodStartCleared() {
		_spec.ClearField(businesssubscription.FieldCurrentPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentPeriodEnd(); ok {
		_spec.SetField(businesssubscription.FieldCurrentPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.CurrentPeriodEndCleared() {
		_spec.ClearField(businesssubscription.FieldCurrentPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.CanceledAt(); ok {
		_spec.SetField(businesssubscription.FieldCanceledAt, field.TypeTime, value)
	}
	if _u.mutation.CanceledAtCleared() {
		_spec.ClearField(businesssubscription.FieldCanceledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(businesssubscription.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AttributionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttributionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromoCodeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromoCodeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LedgerEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLedgerEntriesIDs(); len(nodes) > 0 && !_u.mutation.LedgerEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LedgerEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businesssubscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessSubscriptionUpdateOne is the builder for updating a single BusinessSubscription entity.
type BusinessSubscriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessSubscriptionMutation
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (_u *BusinessSubscriptionUpdateOne) SetStripeSubscriptionID(v string) *BusinessSubscriptionUpdateOne {
	_u.mutation.SetStripeSubscriptionID(v)
	return _u
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdateOne) SetNillableStripeSubscriptionID(v *string) *BusinessSubscriptionUpdateOne {
	if v != nil {
		_u.SetStripeSubscriptionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BusinessSubscriptionUpdateOne) SetUserID(v int) *BusinessSubscriptionUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdateOne) SetNillableUserID(v *int) *BusinessSubscriptionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *BusinessSubscriptionUpdateOne) AddUserID(v int) *BusinessSubscriptionUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetAttributionID sets the "attribution_id" field.
func (_u *BusinessSubscriptionUpdateOne) SetAttributionID(v int) *BusinessSubscriptionUpdateOne {
	_u.mutation.SetAttributionID(v)
	return _u
}

// SetNillableAttributionID sets the "attribution_id" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdateOne) SetNillableAttributionID(v *int) *BusinessSubscriptionUpdateOne {
	if v != nil {
		_u.SetAttributionID(*v)
	}
	return _u
}

// ClearAttributionID clears the value of the "attribution_id" field.
func (_u *BusinessSubscriptionUpdateOne) ClearAttributionID() *BusinessSubscriptionUpdateOne {
	_u.mutation.ClearAttributionID()
	return _u
}

// SetPromoCodeID sets the "promo_code_id" field.
func (_u *BusinessSubscriptionUpdateOne) SetPromoCodeID(v int) *BusinessSubscriptionUpdateOne {
	_u.mutation.SetPromoCodeID(v)
	return _u
}

// SetNillablePromoCodeID sets the "promo_code_id" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdateOne) SetNillablePromoCodeID(v *int) *BusinessSubscriptionUpdateOne {
	if v != nil {
		_u.SetPromoCodeID(*v)
	}
	return _u
}

// ClearPromoCodeID clears the value of the "promo_code_id" field.
func (_u *BusinessSubscriptionUpdateOne) ClearPromoCodeID() *BusinessSubscriptionUpdateOne {
	_u.mutation.ClearPromoCodeID()
	return _u
}

// SetFeeCents sets the "fee_cents" field.
func (_u *BusinessSubscriptionUpdateOne) SetFeeCents(v int64) *BusinessSubscriptionUpdateOne {
	_u.mutation.ResetFeeCents()
	_u.mutation.SetFeeCents(v)
	return _u
}

// SetNillableFeeCents sets the "fee_cents" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdateOne) SetNillableFeeCents(v *int64) *BusinessSubscriptionUpdateOne {
	if v != nil {
		_u.SetFeeCents(*v)
	}
	return _u
}

// AddFeeCents adds value to the "fee_cents" field.
func (_u *BusinessSubscriptionUpdateOne) AddFeeCents(v int64) *BusinessSubscriptionUpdateOne {
	_u.mutation.AddFeeCents(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BusinessSubscriptionUpdateOne) SetStatus(v businesssubscription.Status) *BusinessSubscriptionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdateOne) SetNillableStatus(v *businesssubscription.Status) *BusinessSubscriptionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *BusinessSubscriptionUpdateOne) SetEndsAt(v time.Time) *BusinessSubscriptionUpdateOne {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdateOne) SetNillableEndsAt(v *time.Time) *BusinessSubscriptionUpdateOne {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetCurrentPeriodStart sets the "current_period_start" field.
func (_u *BusinessSubscriptionUpdateOne) SetCurrentPeriodStart(v time.Time) *BusinessSubscriptionUpdateOne {
	_u.mutation.SetCurrentPeriodStart(v)
	return _u
}

// SetNillableCurrentPeriodStart sets the "current_period_start" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdateOne) SetNillableCurrentPeriodStart(v *time.Time) *BusinessSubscriptionUpdateOne {
	if v != nil {
		_u.SetCurrentPeriodStart(*v)
	}
	return _u
}

// ClearCurrentPeriodStart clears the value of the "current_period_start" field.
func (_u *BusinessSubscriptionUpdateOne) ClearCurrentPeriodStart() *BusinessSubscriptionUpdateOne {
	_u.mutation.ClearCurrentPeriodStart()
	return _u
}

// SetCurrentPeriodEnd sets the "current_period_end" field.
func (_u *BusinessSubscriptionUpdateOne) SetCurrentPeriodEnd(v time.Time) *BusinessSubscriptionUpdateOne {
	_u.mutation.SetCurrentPeriodEnd(v)
	return _u
}

// SetNillableCurrentPeriodEnd sets the "current_period_end" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdateOne) SetNillableCurrentPeriodEnd(v *time.Time) *BusinessSubscriptionUpdateOne {
	if v != nil {
		_u.SetCurrentPeriodEnd(*v)
	}
	return _u
}

// ClearCurrentPeriodEnd clears the value of the "current_period_end" field.
func (_u *BusinessSubscriptionUpdateOne) ClearCurrentPeriodEnd() *BusinessSubscriptionUpdateOne {
	_u.mutation.ClearCurrentPeriodEnd()
	return _u
}

// SetCanceledAt sets the "canceled_at" field.
func (_u *BusinessSubscriptionUpdateOne) SetCanceledAt(v time.Time) *BusinessSubscriptionUpdateOne {
	_u.mutation.SetCanceledAt(v)
	return _u
}

// SetNillableCanceledAt sets the "canceled_at" field if the given value is not nil.
func (_u *BusinessSubscriptionUpdateOne) SetNillableCanceledAt(v *time.Time) *BusinessSubscriptionUpdateOne {
	if v != nil {
		_u.SetCanceledAt(*v)
	}
	return _u
}

// ClearCanceledAt clears the value of the "canceled_at" field.
func (_u *BusinessSubscriptionUpdateOne) ClearCanceledAt() *BusinessSubscriptionUpdateOne {
	_u.mutation.ClearCanceledAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessSubscriptionUpdateOne) SetUpdatedAt(v time.Time) *BusinessSubscriptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAttribution sets the "attribution" edge to the Attribution entity.
func (_u *BusinessSubscriptionUpdateOne) SetAttribution(v *Attribution) *BusinessSubscriptionUpdateOne {
	return _u.SetAttributionID(v.ID)
}

// SetPromoCode sets the "promo_code" edge to the PromoCode entity.
func (_u *BusinessSubscriptionUpdateOne) SetPromoCode(v *PromoCode) *BusinessSubscriptionUpdateOne {
	return _u.SetPromoCodeID(v.ID)
}

// AddLedgerEntryIDs adds the "ledger_entries" edge to the LedgerEntry entity by IDs.
func (_u *BusinessSubscriptionUpdateOne) AddLedgerEntryIDs(ids ...int) *BusinessSubscriptionUpdateOne {
	_u.mutation.AddLedgerEntryIDs(ids...)
	return _u
}

// AddLedgerEntries adds the "ledger_entries" edges to the LedgerEntry entity.
func (_u *BusinessSubscriptionUpdateOne) AddLedgerEntries(v ...*LedgerEntry) *BusinessSubscriptionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLedgerEntryIDs(ids...)
}

// Mutation returns the BusinessSubscriptionMutation object of the builder.
func (_u *BusinessSubscriptionUpdateOne) Mutation() *BusinessSubscriptionMutation {
	return _u.mutation
}

// ClearAttribution clears the "attribution" edge to the Attribution entity.
func (_u *BusinessSubscriptionUpdateOne) ClearAttribution() *BusinessSubscriptionUpdateOne {
	_u.mutation.ClearAttribution()
	return _u
}

// ClearPromoCode clears the "promo_code" edge to the PromoCode entity.
func (_u *BusinessSubscriptionUpdateOne) ClearPromoCode() *BusinessSubscriptionUpdateOne {
	_u.mutation.ClearPromoCode()
	return _u
}

// ClearLedgerEntries clears all "ledger_entries" edges to the LedgerEntry entity.
func (_u *BusinessSubscriptionUpdateOne) ClearLedgerEntries() *BusinessSubscriptionUpdateOne {
	_u.mutation.ClearLedgerEntries()
	return _u
}

// RemoveLedgerEntryIDs removes the "ledger_entries" edge to LedgerEntry entities by IDs.
func (_u *BusinessSubscriptionUpdateOne) RemoveLedgerEntryIDs(ids ...int) *BusinessSubscriptionUpdateOne {
	_u.mutation.RemoveLedgerEntryIDs(ids...)
	return _u
}

// RemoveLedgerEntries removes "ledger_entries" edges to LedgerEntry entities.
func (_u *BusinessSubscriptionUpdateOne) RemoveLedgerEntries(v ...*LedgerEntry) *BusinessSubscriptionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLedgerEntryIDs(ids...)
}

// Where appends a list predicates to the BusinessSubscriptionUpdate builder.
func (_u *BusinessSubscriptionUpdateOne) Where(ps ...predicate.BusinessSubscription) *BusinessSubscriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessSubscriptionUpdateOne) Select(field string, fields ...string) *BusinessSubscriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusinessSubscription entity.
func (_u *BusinessSubscriptionUpdateOne) Save(ctx context.Context) (*BusinessSubscription, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessSubscriptionUpdateOne) SaveX(ctx context.Context) *BusinessSubscription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessSubscriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessSubscriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessSubscriptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businesssubscription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessSubscriptionUpdateOne) check() error {
	if v, ok := _u.mutation.StripeSubscriptionID(); ok {
		if err := businesssubscription.StripeSubscriptionIDValidator(v); err != nil {
			return &ValidationError{Name: "stripe_subscription_id", err: fmt.Errorf(`ent: validator failed for field "BusinessSubscription.stripe_subscription_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeeCents(); ok {
		if err := businesssubscription.FeeCentsValidator(v); err != nil {
			return &ValidationError{Name: "fee_cents", err: fmt.Errorf(`ent: validator failed for field "BusinessSubscription.fee_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := businesssubscription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BusinessSubscription.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessSubscriptionUpdateOne) sqlSave(ctx context.Context) (_node *BusinessSubscription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businesssubscription.Table, businesssubscription.Columns, sqlgraph.NewFieldSpec(businesssubscription.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BusinessSubscription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, businesssubscription.FieldID)
		for _, f := range fields {
			if !businesssubscription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != businesssubscription.FieldID {
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
	if value, ok := _u.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(businesssubscription.FieldStripeSubscriptionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(businesssubscription.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(businesssubscription.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FeeCents(); ok {
		_spec.SetField(businesssubscription.FieldFeeCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFeeCents(); ok {
		_spec.AddField(businesssubscription.FieldFeeCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(businesssubscription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(businesssubscription.FieldEndsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CurrentPeriodStart(); ok {
		_spec.SetField(businesssubscription.FieldCurrentPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.CurrentPeriodStartCleared() {
		_spec.ClearField(businesssubscription.FieldCurrentPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentPeriodEnd(); ok {
		_spec.SetField(businesssubscription.FieldCurrentPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.CurrentPeriodEndCleared() {
		_spec.ClearField(businesssubscription.FieldCurrentPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.CanceledAt(); ok {
		_spec.SetField(businesssubscription.FieldCanceledAt, field.TypeTime, value)
	}
	if _u.mutation.CanceledAtCleared() {
		_spec.ClearField(businesssubscription.FieldCanceledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(businesssubscription.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AttributionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttributionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromoCodeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromoCodeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LedgerEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLedgerEntriesIDs(); len(nodes) > 0 && !_u.mutation.LedgerEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LedgerEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BusinessSubscription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businesssubscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
