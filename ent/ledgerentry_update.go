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
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/ledgerentry"
	"github.com/homecheff/affiliates/ent/predicate"
)

// LedgerEntryUpdate is the builder for updating LedgerEntry entities.
type LedgerEntryUpdate struct {
	config
	hooks    []Hook
	mutation *LedgerEntryMutation
}

// Where appends a list predicates to the LedgerEntryUpdate builder.
func (_u *LedgerEntryUpdate) Where(ps ...predicate.LedgerEntry) *LedgerEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *LedgerEntryUpdate) SetEventID(v string) *LedgerEntryUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableEventID(v *string) *LedgerEntryUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *LedgerEntryUpdate) SetEventType(v ledgerentry.EventType) *LedgerEntryUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableEventType(v *ledgerentry.EventType) *LedgerEntryUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *LedgerEntryUpdate) SetAffiliateID(v int) *LedgerEntryUpdate {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableAffiliateID(v *int) *LedgerEntryUpdate {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *LedgerEntryUpdate) SetAmountCents(v int64) *LedgerEntryUpdate {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableAmountCents(v *int64) *LedgerEntryUpdate {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *LedgerEntryUpdate) AddAmountCents(v int64) *LedgerEntryUpdate {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetBaseAmountCents sets the "base_amount_cents" field.
func (_u *LedgerEntryUpdate) SetBaseAmountCents(v int64) *LedgerEntryUpdate {
	_u.mutation.ResetBaseAmountCents()
	_u.mutation.SetBaseAmountCents(v)
	return _u
}

// SetNillableBaseAmountCents sets the "base_amount_cents" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableBaseAmountCents(v *int64) *LedgerEntryUpdate {
	if v != nil {
		_u.SetBaseAmountCents(*v)
	}
	return _u
}

// AddBaseAmountCents adds value to the "base_amount_cents" field.
func (_u *LedgerEntryUpdate) AddBaseAmountCents(v int64) *LedgerEntryUpdate {
	_u.mutation.AddBaseAmountCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *LedgerEntryUpdate) SetCurrency(v string) *LedgerEntryUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableCurrency(v *string) *LedgerEntryUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LedgerEntryUpdate) SetStatus(v ledgerentry.Status) *LedgerEntryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableStatus(v *ledgerentry.Status) *LedgerEntryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *LedgerEntryUpdate) SetAvailableAt(v time.Time) *LedgerEntryUpdate {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableAvailableAt(v *time.Time) *LedgerEntryUpdate {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// ClearAvailableAt clears the value of the "available_at" field.
func (_u *LedgerEntryUpdate) ClearAvailableAt() *LedgerEntryUpdate {
	_u.mutation.ClearAvailableAt()
	return _u
}

// SetSubscriptionID sets the "subscription_id" field.
func (_u *LedgerEntryUpdate) SetSubscriptionID(v int) *LedgerEntryUpdate {
	_u.mutation.SetSubscriptionID(v)
	return _u
}

// SetNillableSubscriptionID sets the "subscription_id" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableSubscriptionID(v *int) *LedgerEntryUpdate {
	if v != nil {
		_u.SetSubscriptionID(*v)
	}
	return _u
}

// ClearSubscriptionID clears the value of the "subscription_id" field.
func (_u *LedgerEntryUpdate) ClearSubscriptionID() *LedgerEntryUpdate {
	_u.mutation.ClearSubscriptionID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *LedgerEntryUpdate) SetMetadata(v map[string]string) *LedgerEntryUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *LedgerEntryUpdate) ClearMetadata() *LedgerEntryUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetAffiliate sets the "affiliate" edge to the Affiliate entity.
func (_u *LedgerEntryUpdate) SetAffiliate(v *Affiliate) *LedgerEntryUpdate {
	return _u.SetAffiliateID(v.ID)
}

// SetSubscription sets the "subscription" edge to the BusinessSubscription entity.
func (_u *LedgerEntryUpdate) SetSubscription(v *BusinessSubscription) *LedgerEntryUpdate {
	return _u.SetSubscriptionID(v.ID)
}

// Mutation returns the LedgerEntryMutation object of the builder.
func (_u *LedgerEntryUpdate) Mutation() *LedgerEntryMutation {
	return _u.mutation
}

// ClearAffiliate clears the "affiliate" edge to the Affiliate entity.
func (_u *LedgerEntryUpdate) ClearAffiliate() *LedgerEntryUpdate {
	_u.mutation.ClearAffiliate()
	return _u
}

// ClearSubscription clears the "subscription" edge to the BusinessSubscription entity.
func (_u *LedgerEntryUpdate) ClearSubscription() *LedgerEntryUpdate {
	_u.mutation.ClearSubscription()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LedgerEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LedgerEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LedgerEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LedgerEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LedgerEntryUpdate) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := ledgerentry.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := ledgerentry.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := ledgerentry.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ledgerentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.status": %w`, err)}
		}
	}
	if _u.mutation.AffiliateCleared() && len(_u.mutation.AffiliateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LedgerEntry.affiliate"`)
	}
	return nil
}

func (_u *LedgerEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ledgerentry.Table, ledgerentry.Columns, sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(ledgerentry.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(ledgerentry.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(ledgerentry.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(ledgerentry.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BaseAmountCents(); ok {
		_spec.SetField(ledgerentry.FieldBaseAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBaseAmountCents(); ok {
		_spec.AddField(ledgerentry.FieldBaseAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(ledgerentry.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ledgerentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(ledgerentry.FieldAvailableAt, field.TypeTime, value)
	}
	if _u.mutation.AvailableAtCleared() {
		_spec.ClearField(ledgerentry.FieldAvailableAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(ledgerentry.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(ledgerentry.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.AffiliateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.AffiliateTable,
			Columns: []string{ledgerentry.AffiliateColumn},
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
			Table:   ledgerentry.AffiliateTable,
			Columns: []string{ledgerentry.AffiliateColumn},
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
	if _u.mutation.SubscriptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.SubscriptionTable,
			Columns: []string{ledgerentry.SubscriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(businesssubscription.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.SubscriptionTable,
			Columns: []string{ledgerentry.SubscriptionColumn},
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
			err = &NotFoundError{ledgerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LedgerEntryUpdateOne is the builder for updating a single LedgerEntry entity.
type LedgerEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LedgerEntryMutation
}

// SetEventID sets the "event_id" field.
func (_u *LedgerEntryUpdateOne) SetEventID(v string) *LedgerEntryUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableEventID(v *string) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *LedgerEntryUpdateOne) SetEventType(v ledgerentry.EventType) *LedgerEntryUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableEventType(v *ledgerentry.EventType) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *LedgerEntryUpdateOne) SetAffiliateID(v int) *LedgerEntryUpdateOne {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableAffiliateID(v *int) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *LedgerEntryUpdateOne) SetAmountCents(v int64) *LedgerEntryUpdateOne {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableAmountCents(v *int64) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *LedgerEntryUpdateOne) AddAmountCents(v int64) *LedgerEntryUpdateOne {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetBaseAmountCents sets the "base_amount_cents" field.
func (_u *LedgerEntryUpdateOne) SetBaseAmountCents(v int64) *LedgerEntryUpdateOne {
	_u.mutation.ResetBaseAmountCents()
	_u.mutation.SetBaseAmountCents(v)
	return _u
}

// SetNillableBaseAmountCents sets the "base_amount_cents" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableBaseAmountCents(v *int64) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetBaseAmountCents(*v)
	}
	return _u
}

// AddBaseAmountCents adds value to the "base_amount_cents" field.
func (_u *LedgerEntryUpdateOne) AddBaseAmountCents(v int64) *LedgerEntryUpdateOne {
	_u.mutation.AddBaseAmountCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *LedgerEntryUpdateOne) SetCurrency(v string) *LedgerEntryUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableCurrency(v *string) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LedgerEntryUpdateOne) SetStatus(v ledgerentry.Status) *LedgerEntryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableStatus(v *ledgerentry.Status) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *LedgerEntryUpdateOne) SetAvailableAt(v time.Time) *LedgerEntryUpdateOne {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableAvailableAt(v *time.Time) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// ClearAvailableAt clears the value of the "available_at" field.
func (_u *LedgerEntryUpdateOne) ClearAvailableAt() *LedgerEntryUpdateOne {
	_u.mutation.ClearAvailableAt()
	return _u
}

// SetSubscriptionID sets the "subscription_id" field.
func (_u *LedgerEntryUpdateOne) SetSubscriptionID(v int) *LedgerEntryUpdateOne {
	_u.mutation.SetSubscriptionID(v)
	return _u
}

// SetNillableSubscriptionID sets the "subscription_id" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableSubscriptionID(v *int) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetSubscriptionID(*v)
	}
	return _u
}

// ClearSubscriptionID clears the value of the "subscription_id" field.
func (_u *LedgerEntryUpdateOne) ClearSubscriptionID() *LedgerEntryUpdateOne {
	_u.mutation.ClearSubscriptionID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *LedgerEntryUpdateOne) SetMetadata(v map[string]string) *LedgerEntryUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *LedgerEntryUpdateOne) ClearMetadata() *LedgerEntryUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetAffiliate sets the "affiliate" edge to the Affiliate entity.
func (_u *LedgerEntryUpdateOne) SetAffiliate(v *Affiliate) *LedgerEntryUpdateOne {
	return _u.SetAffiliateID(v.ID)
}

// SetSubscription sets the "subscription" edge to the BusinessSubscription entity.
func (_u *LedgerEntryUpdateOne) SetSubscription(v *BusinessSubscription) *LedgerEntryUpdateOne {
	return _u.SetSubscriptionID(v.ID)
}

// Mutation returns the LedgerEntryMutation object of the builder.
func (_u *LedgerEntryUpdateOne) Mutation() *LedgerEntryMutation {
	return _u.mutation
}

// ClearAffiliate clears the "affiliate" edge to the Affiliate entity.
func (_u *LedgerEntryUpdateOne) ClearAffiliate() *LedgerEntryUpdateOne {
	_u.mutation.ClearAffiliate()
	return _u
}

// ClearSubscription clears the "subscription" edge to the BusinessSubscription entity.
func (_u *LedgerEntryUpdateOne) ClearSubscription() *LedgerEntryUpdateOne {
	_u.mutation.ClearSubscription()
	return _u
}

// Where appends a list predicates to the LedgerEntryUpdate builder.
func (_u *LedgerEntryUpdateOne) Where(ps ...predicate.LedgerEntry) *LedgerEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LedgerEntryUpdateOne) Select(field string, fields ...string) *LedgerEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LedgerEntry entity.
func (_u *LedgerEntryUpdateOne) Save(ctx context.Context) (*LedgerEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LedgerEntryUpdateOne) SaveX(ctx context.Context) *LedgerEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LedgerEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LedgerEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LedgerEntryUpdateOne) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := ledgerentry.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := ledgerentry.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := ledgerentry.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ledgerentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.status": %w`, err)}
		}
	}
	if _u.mutation.AffiliateCleared() && len(_u.mutation.AffiliateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LedgerEntry.affiliate"`)
	}
	return nil
}

func (_u *LedgerEntryUpdateOne) sqlSave(ctx context.Context) (_node *LedgerEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ledgerentry.Table, ledgerentry.Columns, sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LedgerEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ledgerentry.FieldID)
		for _, f := range fields {
			if !ledgerentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ledgerentry.FieldID {
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
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(ledgerentry.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(ledgerentry.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(ledgerentry.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(ledgerentry.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BaseAmountCents(); ok {
		_spec.SetField(ledgerentry.FieldBaseAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBaseAmountCents(); ok {
		_spec.AddField(ledgerentry.FieldBaseAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(ledgerentry.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ledgerentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(ledgerentry.FieldAvailableAt, field.TypeTime, value)
	}
	if _u.mutation.AvailableAtCleared() {
		_spec.ClearField(ledgerentry.FieldAvailableAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(ledgerentry.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(ledgerentry.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.AffiliateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.AffiliateTable,
			Columns: []string{ledgerentry.AffiliateColumn},
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
			Table:   ledgerentry.AffiliateTable,
			Columns: []string{ledgerentry.AffiliateColumn},
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
	if _u.mutation.SubscriptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.SubscriptionTable,
			Columns: []string{ledgerentry.SubscriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(businesssubscription.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.SubscriptionTable,
			Columns: []string{ledgerentry.SubscriptionColumn},
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
	_node = &LedgerEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ledgerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
