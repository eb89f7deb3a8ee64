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
	"github.com/homecheff/affiliates/ent/ledgerentry"
	"github.com/homecheff/affiliates/ent/predicate"
	"github.com/homecheff/affiliates/ent/promocode"
	"github.com/homecheff/affiliates/ent/referrallink"
	"github.com/homecheff/affiliates/ent/user"
)

// AffiliateUpdate is the builder for updating Affiliate entities.
type AffiliateUpdate struct {
	config
	hooks    []Hook
	mutation *AffiliateMutation
}

// Where appends a list predicates to the AffiliateUpdate builder.
func (_u *AffiliateUpdate) Where(ps ...predicate.Affiliate) *AffiliateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AffiliateUpdate) SetUserID(v int) *AffiliateUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AffiliateUpdate) SetNillableUserID(v *int) *AffiliateUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AffiliateUpdate) SetStatus(v affiliate.Status) *AffiliateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AffiliateUpdate) SetNillableStatus(v *affiliate.Status) *AffiliateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *AffiliateUpdate) SetParentID(v int) *AffiliateUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *AffiliateUpdate) SetNillableParentID(v *int) *AffiliateUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *AffiliateUpdate) ClearParentID() *AffiliateUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetSubscriptionPct sets the "subscription_pct" field.
func (_u *AffiliateUpdate) SetSubscriptionPct(v float64) *AffiliateUpdate {
	_u.mutation.ResetSubscriptionPct()
	_u.mutation.SetSubscriptionPct(v)
	return _u
}

// SetNillableSubscriptionPct sets the "subscription_pct" field if the given value is not nil.
func (_u *AffiliateUpdate) SetNillableSubscriptionPct(v *float64) *AffiliateUpdate {
	if v != nil {
		_u.SetSubscriptionPct(*v)
	}
	return _u
}

// AddSubscriptionPct adds value to the "subscription_pct" field.
func (_u *AffiliateUpdate) AddSubscriptionPct(v float64) *AffiliateUpdate {
	_u.mutation.AddSubscriptionPct(v)
	return _u
}

// ClearSubscriptionPct clears the value of the "subscription_pct" field.
func (_u *AffiliateUpdate) ClearSubscriptionPct() *AffiliateUpdate {
	_u.mutation.ClearSubscriptionPct()
	return _u
}

// SetOrderPct sets the "order_pct" field.
func (_u *AffiliateUpdate) SetOrderPct(v float64) *AffiliateUpdate {
	_u.mutation.ResetOrderPct()
	_u.mutation.SetOrderPct(v)
	return _u
}

// SetNillableOrderPct sets the "order_pct" field if the given value is not nil.
func (_u *AffiliateUpdate) SetNillableOrderPct(v *float64) *AffiliateUpdate {
	if v != nil {
		_u.SetOrderPct(*v)
	}
	return _u
}

// AddOrderPct adds value to the "order_pct" field.
func (_u *AffiliateUpdate) AddOrderPct(v float64) *AffiliateUpdate {
	_u.mutation.AddOrderPct(v)
	return _u
}

// ClearOrderPct clears the value of the "order_pct" field.
func (_u *AffiliateUpdate) ClearOrderPct() *AffiliateUpdate {
	_u.mutation.ClearOrderPct()
	return _u
}

// SetParentSubscriptionPct sets the "parent_subscription_pct" field.
func (_u *AffiliateUpdate) SetParentSubscriptionPct(v float64) *AffiliateUpdate {
	_u.mutation.ResetParentSubscriptionPct()
	_u.mutation.SetParentSubscriptionPct(v)
	return _u
}

// SetNillableParentSubscriptionPct sets the "parent_subscription_pct" field if the given value is not nil.
func (_u *AffiliateUpdate) SetNillableParentSubscriptionPct(v *float64) *AffiliateUpdate {
	if v != nil {
		_u.SetParentSubscriptionPct(*v)
	}
	return _u
}

// AddParentSubscriptionPct adds value to the "parent_subscription_pct" field.
func (_u *AffiliateUpdate) AddParentSubscriptionPct(v float64) *AffiliateUpdate {
	_u.mutation.AddParentSubscriptionPct(v)
	return _u
}

// ClearParentSubscriptionPct clears the value of the "parent_subscription_pct" field.
func (_u *AffiliateUpdate) ClearParentSubscriptionPct() *AffiliateUpdate {
	_u.mutation.ClearParentSubscriptionPct()
	return _u
}

// SetParentOrderPct sets the "parent_order_pct" field.
func (_u *AffiliateUpdate) SetParentOrderPct(v float64) *AffiliateUpdate {
	_u.mutation.ResetParentOrderPct()
	_u.mutation.SetParentOrderPct(v)
	return _u
}

// SetNillableParentOrderPct sets the "parent_order_pct" field if the given value is not nil.
func (_u *AffiliateUpdate) SetNillableParentOrderPct(v *float64) *AffiliateUpdate {
	if v != nil {
		_u.SetParentOrderPct(*v)
	}
	return _u
}

// AddParentOrderPct adds value to the "parent_order_pct" field.
func (_u *AffiliateUpdate) AddParentOrderPct(v float64) *AffiliateUpdate {
	_u.mutation.AddParentOrderPct(v)
	return _u
}

// ClearParentOrderPct clears the value of the "parent_order_pct" field.
func (_u *AffiliateUpdate) ClearParentOrderPct() *AffiliateUpdate {
	_u.mutation.ClearParentOrderPct()
	return _u
}

// SetTotalClicks sets the "total_clicks" field.
func (_u *AffiliateUpdate) SetTotalClicks(v int) *AffiliateUpdate {
	_u.mutation.ResetTotalClicks()
	_u.mutation.SetTotalClicks(v)
	return _u
}

// SetNillableTotalClicks sets the "total_clicks" field if the given value is not nil.
func (_u *AffiliateUpdate) SetNillableTotalClicks(v *int) *AffiliateUpdate {
	if v != nil {
		_u.SetTotalClicks(*v)
	}
	return _u
}

// AddTotalClicks adds value to the "total_clicks" field.
func (_u *AffiliateUpdate) AddTotalClicks(v int) *AffiliateUpdate {
	_u.mutation.AddTotalClicks(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AffiliateUpdate) SetUpdatedAt(v time.Time) *AffiliateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *AffiliateUpdate) SetUser(v *User) *AffiliateUpdate {
	return _u.SetUserID(v.ID)
}

// SetParent sets the "parent" edge to the Affiliate entity.
func (_u *AffiliateUpdate) SetParent(v *Affiliate) *AffiliateUpdate {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Affiliate entity by IDs.
func (_u *AffiliateUpdate) AddChildIDs(ids ...int) *AffiliateUpdate {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Affiliate entity.
func (_u *AffiliateUpdate) AddChildren(v ...*Affiliate) *AffiliateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddLinkIDs adds the "links" edge to the ReferralLink entity by IDs.
func (_u *AffiliateUpdate) AddLinkIDs(ids ...int) *AffiliateUpdate {
	_u.mutation.AddLinkIDs(ids...)
	return _u
}

// AddLinks adds the "links" edges to the ReferralLink entity.
func (_u *AffiliateUpdate) AddLinks(v ...*ReferralLink) *AffiliateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLinkIDs(ids...)
}

// AddPromoCodeIDs adds the "promo_codes" edge to the PromoCode entity by IDs.
func (_u *AffiliateUpdate) AddPromoCodeIDs(ids ...int) *AffiliateUpdate {
	_u.mutation.AddPromoCodeIDs(ids...)
	return _u
}

// AddPromoCodes adds the "promo_codes" edges to the PromoCode entity.
func (_u *AffiliateUpdate) AddPromoCodes(v ...*PromoCode) *AffiliateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromoCodeIDs(ids...)
}

// AddAttributionIDs adds the "attributions" edge to the Attribution entity by IDs.
func (_u *AffiliateUpdate) AddAttributionIDs(ids ...int) *AffiliateUpdate {
	_u.mutation.AddAttributionIDs(ids...)
	return _u
}

// AddAttributions adds the "attributions" edges to the Attribution entity.
func (_u *AffiliateUpdate) AddAttributions(v ...*Attribution) *AffiliateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttributionIDs(ids...)
}

// AddLedgerEntryIDs adds the "ledger_entries" edge to the LedgerEntry entity by IDs.
func (_u *AffiliateUpdate) AddLedgerEntryIDs(ids ...int) *AffiliateUpdate {
	_u.mutation.AddLedgerEntryIDs(ids...)
	return _u
}

// AddLedgerEntries adds the "ledger_entries" edges to the LedgerEntry entity.
func (_u *AffiliateUpdate) AddLedgerEntries(v ...*LedgerEntry) *AffiliateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLedgerEntryIDs(ids...)
}

// Mutation returns the AffiliateMutation object of the builder.
func (_u *AffiliateUpdate) Mutation() *AffiliateMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *AffiliateUpdate) ClearUser() *AffiliateUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearParent clears the "parent" edge to the Affiliate entity.
func (_u *AffiliateUpdate) ClearParent() *AffiliateUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Affiliate entity.
func (_u *AffiliateUpdate) ClearChildren() *AffiliateUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Affiliate entities by IDs.
func (_u *AffiliateUpdate) RemoveChildIDs(ids ...int) *AffiliateUpdate {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Affiliate entities.
func (_u *AffiliateUpdate) RemoveChildren(v ...*Affiliate) *AffiliateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearLinks clears all "links" edges to the ReferralLink entity.
func (_u *AffiliateUpdate) ClearLinks() *AffiliateUpdate {
	_u.mutation.ClearLinks()
	return _u
}

// RemoveLinkIDs removes the "links" edge to ReferralLink entities by IDs.
func (_u *AffiliateUpdate) RemoveLinkIDs(ids ...int) *AffiliateUpdate {
	_u.mutation.RemoveLinkIDs(ids...)
	return _u
}

// RemoveLinks removes "links" edges to ReferralLink entities.
func (_u *AffiliateUpdate) RemoveLinks(v ...*ReferralLink) *AffiliateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLinkIDs(ids...)
}

// ClearPromoCodes clears all "promo_codes" edges to the PromoCode entity.
func (_u *AffiliateUpdate) ClearPromoCodes() *AffiliateUpdate {
	_u.mutation.ClearPromoCodes()
	return _u
}

// RemovePromoCodeIDs removes the "promo_codes" edge to PromoCode entities by IDs.
func (_u *AffiliateUpdate) RemovePromoCodeIDs(ids ...int) *AffiliateUpdate {
	_u.mutation.RemovePromoCodeIDs(ids...)
	return _u
}

// RemovePromoCodes removes "promo_codes" edges to PromoCode entities.
func (_u *AffiliateUpdate) RemovePromoCodes(v ...*PromoCode) *AffiliateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromoCodeIDs(ids...)
}

// ClearAttributions clears all "attributions" edges to the Attribution entity.
func (_u *AffiliateUpdate) ClearAttributions() *AffiliateUpdate {
	_u.mutation.ClearAttributions()
	return _u
}

// RemoveAttributionIDs removes the "attributions" edge to Attribution entities by IDs.
func (_u *AffiliateUpdate) RemoveAttributionIDs(ids ...int) *AffiliateUpdate {
	_u.mutation.RemoveAttributionIDs(ids...)
	return _u
}

// RemoveAttributions removes "attributions" edges to Attribution entities.
func (_u *AffiliateUpdate) RemoveAttributions(v ...*Attribution) *AffiliateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttributionIDs(ids...)
}

// ClearLedgerEntries clears all "ledger_entries" edges to the LedgerEntry entity.
func (_u *AffiliateUpdate) ClearLedgerEntries() *AffiliateUpdate {
	_u.mutation.ClearLedgerEntries()
	return _u
}

// RemoveLedgerEntryIDs removes the "ledger_entries" edge to LedgerEntry entities by IDs.
func (_u *AffiliateUpdate) RemoveLedgerEntryIDs(ids ...int) *AffiliateUpdate {
	_u.mutation.RemoveLedgerEntryIDs(ids...)
	return _u
}

// RemoveLedgerEntries removes "ledger_entries" edges to LedgerEntry entities.
func (_u *AffiliateUpdate) RemoveLedgerEntries(v ...*LedgerEntry) *AffiliateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLedgerEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AffiliateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AffiliateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AffiliateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AffiliateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AffiliateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := affiliate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AffiliateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := affiliate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Affiliate.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Affiliate.user"`)
	}
	return nil
}

func (_u *AffiliateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(affiliate.Table, affiliate.Columns, sqlgraph.NewFieldSpec(affiliate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(affiliate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubscriptionPct(); ok {
		_spec.SetField(affiliate.FieldSubscriptionPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubscriptionPct(); ok {
		_spec.AddField(affiliate.FieldSubscriptionPct, field.TypeFloat64, value)
	}
	if _u.mutation.SubscriptionPctCleared() {
		_spec.ClearField(affiliate.FieldSubscriptionPct, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OrderPct(); ok {
		_spec.SetField(affiliate.FieldOrderPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOrderPct(); ok {
		_spec.AddField(affiliate.FieldOrderPct, field.TypeFloat64, value)
	}
	if _u.mutation.OrderPctCleared() {
		_spec.ClearField(affiliate.FieldOrderPct, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ParentSubscriptionPct(); ok {
		_spec.SetField(affiliate.FieldParentSubscriptionPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedParentSubscriptionPct(); ok {
		_spec.AddField(affiliate.FieldParentSubscriptionPct, field.TypeFloat64, value)
	}
	if _u.mutation.ParentSubscriptionPctCleared() {
		_spec.ClearField(affiliate.FieldParentSubscriptionPct, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ParentOrderPct(); ok {
		_spec.SetField(affiliate.FieldParentOrderPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedParentOrderPct(); ok {
		_spec.AddField(affiliate.FieldParentOrderPct, field.TypeFloat64, value)
	}
	if _u.mutation.ParentOrderPctCleared() {
		_spec.ClearField(affiliate.FieldParentOrderPct, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalClicks(); ok {
		_spec.SetField(affiliate.FieldTotalClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalClicks(); ok {
		_spec.AddField(affiliate.FieldTotalClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(affiliate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   affiliate.UserTable,
			Columns: []string{affiliate.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   affiliate.UserTable,
			Columns: []string{affiliate.UserColumn},
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
	if _u.mutation.ParentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   affiliate.ParentTable,
			Columns: []string{affiliate.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(affiliate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   affiliate.ParentTable,
			Columns: []string{affiliate.ParentColumn},
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
	if _u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.ChildrenTable,
			Columns: []string{affiliate.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(affiliate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.ChildrenTable,
			Columns: []string{affiliate.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(affiliate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.ChildrenTable,
			Columns: []string{affiliate.ChildrenColumn},
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
	if _u.mutation.LinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.LinksTable,
			Columns: []string{affiliate.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(referrallink.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinksIDs(); len(nodes) > 0 && !_u.mutation.LinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.LinksTable,
			Columns: []string{affiliate.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(referrallink.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.LinksTable,
			Columns: []string{affiliate.LinksColumn},
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
	if _u.mutation.PromoCodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.PromoCodesTable,
			Columns: []string{affiliate.PromoCodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promocode.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromoCodesIDs(); len(nodes) > 0 && !_u.mutation.PromoCodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.PromoCodesTable,
			Columns: []string{affiliate.PromoCodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promocode.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromoCodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.PromoCodesTable,
			Columns: []string{affiliate.PromoCodesColumn},
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
	if _u.mutation.AttributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.AttributionsTable,
			Columns: []string{affiliate.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttributionsIDs(); len(nodes) > 0 && !_u.mutation.AttributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.AttributionsTable,
			Columns: []string{affiliate.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttributionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.AttributionsTable,
			Columns: []string{affiliate.AttributionsColumn},
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
	if _u.mutation.LedgerEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.LedgerEntriesTable,
			Columns: []string{affiliate.LedgerEntriesColumn},
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
			Table:   affiliate.LedgerEntriesTable,
			Columns: []string{affiliate.LedgerEntriesColumn},
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
			Table:   affiliate.LedgerEntriesTable,
			Columns: []string{affiliate.LedgerEntriesColumn},
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
			err = &NotFoundError{affiliate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AffiliateUpdateOne is the builder for updating a single Affiliate entity.
type AffiliateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AffiliateMutation
}

// SetUserID sets the "user_id" field.
func (_u *AffiliateUpdateOne) SetUserID(v int) *AffiliateUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AffiliateUpdateOne) SetNillableUserID(v *int) *AffiliateUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AffiliateUpdateOne) SetStatus(v affiliate.Status) *AffiliateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AffiliateUpdateOne) SetNillableStatus(v *affiliate.Status) *AffiliateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *AffiliateUpdateOne) SetParentID(v int) *AffiliateUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *AffiliateUpdateOne) SetNillableParentID(v *int) *AffiliateUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *AffiliateUpdateOne) ClearParentID() *AffiliateUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetSubscriptionPct sets the "subscription_pct" field.
func (_u *AffiliateUpdateOne) SetSubscriptionPct(v float64) *AffiliateUpdateOne {
	_u.mutation.ResetSubscriptionPct()
	_u.mutation.SetSubscriptionPct(v)
	return _u
}

// SetNillableSubscriptionPct sets the "subscription_pct" field if the given value is not nil.
func (_u *AffiliateUpdateOne) SetNillableSubscriptionPct(v *float64) *AffiliateUpdateOne {
	if v != nil {
		_u.SetSubscriptionPct(*v)
	}
	return _u
}

// AddSubscriptionPct adds value to the "subscription_pct" field.
func (_u *AffiliateUpdateOne) AddSubscriptionPct(v float64) *AffiliateUpdateOne {
	_u.mutation.AddSubscriptionPct(v)
	return _u
}

// ClearSubscriptionPct clears the value of the "subscription_pct" field.
func (_u *AffiliateUpdateOne) ClearSubscriptionPct() *AffiliateUpdateOne {
	_u.mutation.ClearSubscriptionPct()
	return _u
}

// SetOrderPct sets the "order_pct" field.
func (_u *AffiliateUpdateOne) SetOrderPct(v float64) *AffiliateUpdateOne {
	_u.mutation.ResetOrderPct()
	_u.mutation.SetOrderPct(v)
	return _u
}

// SetNillableOrderPct sets the "order_pct" field if the given value is not nil.
func (_u *AffiliateUpdateOne) SetNillableOrderPct(v *float64) *AffiliateUpdateOne {
	if v != nil {
		_u.SetOrderPct(*v)
	}
	return _u
}

// AddOrderPct adds value to the "order_pct" field.
func (_u *AffiliateUpdateOne) AddOrderPct(v float64) *AffiliateUpdateOne {
	_u.mutation.AddOrderPct(v)
	return _u
}

// ClearOrderPct clears the value of the "order_pct" field.
func (_u *AffiliateUpdateOne) ClearOrderPct() *AffiliateUpdateOne {
	_u.mutation.ClearOrderPct()
	return _u
}

// SetParentSubscriptionPct sets the "parent_subscription_pct" field.
func (_u *AffiliateUpdateOne) SetParentSubscriptionPct(v float64) *AffiliateUpdateOne {
	_u.mutation.ResetParentSubscriptionPct()
	_u.mutation.SetParentSubscriptionPct(v)
	return _u
}

// SetNillableParentSubscriptionPct sets the "parent_subscription_pct" field if the given value is not nil.
func (_u *AffiliateUpdateOne) SetNillableParentSubscriptionPct(v *float64) *AffiliateUpdateOne {
	if v != nil {
		_u.SetParentSubscriptionPct(*v)
	}
	return _u
}

// AddParentSubscriptionPct adds value to the "parent_subscription_pct" field.
func (_u *AffiliateUpdateOne) AddParentSubscriptionPct(v float64) *AffiliateUpdateOne {
	_u.mutation.AddParentSubscriptionPct(v)
	return _u
}

// ClearParentSubscriptionPct clears the value of the "parent_subscription_pct" field.
func (_u *AffiliateUpdateOne) ClearParentSubscriptionPct() *AffiliateUpdateOne {
	_u.mutation.ClearParentSubscriptionPct()
	return _u
}

// SetParentOrderPct sets the "parent_order_pct" field.
func (_u *AffiliateUpdateOne) SetParentOrderPct(v float64) *AffiliateUpdateOne {
	_u.mutation.ResetParentOrderPct()
	_u.mutation.SetParentOrderPct(v)
	return _u
}

// SetNillableParentOrderPct sets the "parent_order_pct" field if the given value is not nil.
func (_u *AffiliateUpdateOne) SetNillableParentOrderPct(v *float64) *AffiliateUpdateOne {
	if v != nil {
		_u.SetParentOrderPct(*v)
	}
	return _u
}

// AddParentOrderPct adds value to the "parent_order_pct" field.
func (_u *AffiliateUpdateOne) AddParentOrderPct(v float64) *AffiliateUpdateOne {
	_u.mutation.AddParentOrderPct(v)
	return _u
}

// ClearParentOrderPct clears the value of the "parent_order_pct" field.
func (_u *AffiliateUpdateOne) ClearParentOrderPct() *AffiliateUpdateOne {
	_u.mutation.ClearParentOrderPct()
	return _u
}

// SetTotalClicks sets the "total_clicks" field.
func (_u *AffiliateUpdateOne) SetTotalClicks(v int) *AffiliateUpdateOne {
	_u.mutation.ResetTotalClicks()
	_u.mutation.SetTotalClicks(v)
	return _u
}

// SetNillableTotalClicks sets the "total_clicks" field if the given value is not nil.
func (_u *AffiliateUpdateOne) SetNillableTotalClicks(v *int) *AffiliateUpdateOne {
	if v != nil {
		_u.SetTotalClicks(*v)
	}
	return _u
}

// AddTotalClicks adds value to the "total_clicks" field.
func (_u *AffiliateUpdateOne) AddTotalClicks(v int) *AffiliateUpdateOne {
	_u.mutation.AddTotalClicks(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AffiliateUpdateOne) SetUpdatedAt(v time.Time) *AffiliateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *AffiliateUpdateOne) SetUser(v *User) *AffiliateUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetParent sets the "parent" edge to the Affiliate entity.
func (_u *AffiliateUpdateOne) SetParent(v *Affiliate) *AffiliateUpdateOne {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Affiliate entity by IDs.
func (_u *AffiliateUpdateOne) AddChildIDs(ids ...int) *AffiliateUpdateOne {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Affiliate entity.
func (_u *AffiliateUpdateOne) AddChildren(v ...*Affiliate) *AffiliateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddLinkIDs adds the "links" edge to the ReferralLink entity by IDs.
func (_u *AffiliateUpdateOne) AddLinkIDs(ids ...int) *AffiliateUpdateOne {
	_u.mutation.AddLinkIDs(ids...)
	return _u
}

// AddLinks adds the "links" edges to the ReferralLink entity.
func (_u *AffiliateUpdateOne) AddLinks(v ...*ReferralLink) *AffiliateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLinkIDs(ids...)
}

// AddPromoCodeIDs adds the "promo_codes" edge to the PromoCode entity by IDs.
func (_u *AffiliateUpdateOne) AddPromoCodeIDs(ids ...int) *AffiliateUpdateOne {
	_u.mutation.AddPromoCodeIDs(ids...)
	return _u
}

// AddPromoCodes adds the "promo_codes" edges to the PromoCode entity.
func (_u *AffiliateUpdateOne) AddPromoCodes(v ...*PromoCode) *AffiliateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromoCodeIDs(ids...)
}

// AddAttributionIDs adds the "attributions" edge to the Attribution entity by IDs.
func (_u *AffiliateUpdateOne) AddAttributionIDs(ids ...int) *AffiliateUpdateOne {
	_u.mutation.AddAttributionIDs(ids...)
	return _u
}

// AddAttributions adds the "attributions" edges to the Attribution entity.
func (_u *AffiliateUpdateOne) AddAttributions(v ...*Attribution) *AffiliateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttributionIDs(ids...)
}

// AddLedgerEntryIDs adds the "ledger_entries" edge to the LedgerEntry entity by IDs.
func (_u *AffiliateUpdateOne) AddLedgerEntryIDs(ids ...int) *AffiliateUpdateOne {
	_u.mutation.AddLedgerEntryIDs(ids...)
	return _u
}

// AddLedgerEntries adds the "ledger_entries" edges to the LedgerEntry entity.
func (_u *AffiliateUpdateOne) AddLedgerEntries(v ...*LedgerEntry) *AffiliateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLedgerEntryIDs(ids...)
}

// Mutation returns the AffiliateMutation object of the builder.
func (_u *AffiliateUpdateOne) Mutation() *AffiliateMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *AffiliateUpdateOne) ClearUser() *AffiliateUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearParent clears the "parent" edge to the Affiliate entity.
func (_u *AffiliateUpdateOne) ClearParent() *AffiliateUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Affiliate entity.
func (_u *AffiliateUpdateOne) ClearChildren() *AffiliateUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Affiliate entities by IDs.
func (_u *AffiliateUpdateOne) RemoveChildIDs(ids ...int) *AffiliateUpdateOne {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Affiliate entities.
func (_u *AffiliateUpdateOne) RemoveChildren(v ...*Affiliate) *AffiliateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearLinks clears all "links" edges to the ReferralLink entity.
func (_u *AffiliateUpdateOne) ClearLinks() *AffiliateUpdateOne {
	_u.mutation.ClearLinks()
	return _u
}

// RemoveLinkIDs removes the "links" edge to ReferralLink entities by IDs.
func (_u *AffiliateUpdateOne) RemoveLinkIDs(ids ...int) *AffiliateUpdateOne {
	_u.mutation.RemoveLinkIDs(ids...)
	return _u
}

// RemoveLinks removes "links" edges to ReferralLink entities.
func (_u *AffiliateUpdateOne) RemoveLinks(v ...*ReferralLink) *AffiliateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLinkIDs(ids...)
}

// ClearPromoCodes clears all "promo_codes" edges to the PromoCode entity.
func (_u *AffiliateUpdateOne) ClearPromoCodes() *AffiliateUpdateOne {
	_u.mutation.ClearPromoCodes()
	return _u
}

// RemovePromoCodeIDs removes the "promo_codes" edge to PromoCode entities by IDs.
func (_u *AffiliateUpdateOne) RemovePromoCodeIDs(ids ...int) *AffiliateUpdateOne {
	_u.mutation.RemovePromoCodeIDs(ids...)
	return _u
}

// RemovePromoCodes removes "promo_codes" edges to PromoCode entities.
func (_u *AffiliateUpdateOne) RemovePromoCodes(v ...*PromoCode) *AffiliateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromoCodeIDs(ids...)
}

// ClearAttributions clears all "attributions" edges to the Attribution entity.
func (_u *AffiliateUpdateOne) ClearAttributions() *AffiliateUpdateOne {
	_u.mutation.ClearAttributions()
	return _u
}

// RemoveAttributionIDs removes the "attributions" edge to Attribution entities by IDs.
func (_u *AffiliateUpdateOne) RemoveAttributionIDs(ids ...int) *AffiliateUpdateOne {
	_u.mutation.RemoveAttributionIDs(ids...)
	return _u
}

// RemoveAttributions removes "attributions" edges to Attribution entities.
func (_u *AffiliateUpdateOne) RemoveAttributions(v ...*Attribution) *AffiliateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttributionIDs(ids...)
}

// ClearLedgerEntries clears all "ledger_entries" edges to the LedgerEntry entity.
func (_u *AffiliateUpdateOne) ClearLedgerEntries() *AffiliateUpdateOne {
	_u.mutation.ClearLedgerEntries()
	return _u
}

// RemoveLedgerEntryIDs removes the "ledger_entries" edge to LedgerEntry entities by IDs.
func (_u *AffiliateUpdateOne) RemoveLedgerEntryIDs(ids ...int) *AffiliateUpdateOne {
	_u.mutation.RemoveLedgerEntryIDs(ids...)
	return _u
}

// RemoveLedgerEntries removes "ledger_entries" edges to LedgerEntry entities.
func (_u *AffiliateUpdateOne) RemoveLedgerEntries(v ...*LedgerEntry) *AffiliateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLedgerEntryIDs(ids...)
}

// Where appends a list predicates to the AffiliateUpdate builder.
func (_u *AffiliateUpdateOne) Where(ps ...predicate.Affiliate) *AffiliateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AffiliateUpdateOne) Select(field string, fields ...string) *AffiliateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Affiliate entity.
func (_u *AffiliateUpdateOne) Save(ctx context.Context) (*Affiliate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AffiliateUpdateOne) SaveX(ctx context.Context) *Affiliate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AffiliateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AffiliateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AffiliateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := affiliate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AffiliateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := affiliate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Affiliate.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Affiliate.user"`)
	}
	return nil
}

func (_u *AffiliateUpdateOne) sqlSave(ctx context.Context) (_node *Affiliate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(affiliate.Table, affiliate.Columns, sqlgraph.NewFieldSpec(affiliate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Affiliate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, affiliate.FieldID)
		for _, f := range fields {
			if !affiliate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != affiliate.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(affiliate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubscriptionPct(); ok {
		_spec.SetField(affiliate.FieldSubscriptionPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubscriptionPct(); ok {
		_spec.AddField(affiliate.FieldSubscriptionPct, field.TypeFloat64, value)
	}
	if _u.mutation.SubscriptionPctCleared() {
		_spec.ClearField(affiliate.FieldSubscriptionPct, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OrderPct(); ok {
		_spec.SetField(affiliate.FieldOrderPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOrderPct(); ok {
		_spec.AddField(affiliate.FieldOrderPct, field.TypeFloat64, value)
	}
	if _u.mutation.OrderPctCleared() {
		_spec.ClearField(affiliate.FieldOrderPct, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ParentSubscriptionPct(); ok {
		_spec.SetField(affiliate.FieldParentSubscriptionPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedParentSubscriptionPct(); ok {
		_spec.AddField(affiliate.FieldParentSubscriptionPct, field.TypeFloat64, value)
	}
	if _u.mutation.ParentSubscriptionPctCleared() {
		_spec.ClearField(affiliate.FieldParentSubscriptionPct, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ParentOrderPct(); ok {
		_spec.SetField(affiliate.FieldParentOrderPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedParentOrderPct(); ok {
		_spec.AddField(affiliate.FieldParentOrderPct, field.TypeFloat64, value)
	}
	if _u.mutation.ParentOrderPctCleared() {
		_spec.ClearField(affiliate.FieldParentOrderPct, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalClicks(); ok {
		_spec.SetField(affiliate.FieldTotalClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalClicks(); ok {
		_spec.AddField(affiliate.FieldTotalClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(affiliate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   affiliate.UserTable,
			Columns: []string{affiliate.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   affiliate.UserTable,
			Columns: []string{affiliate.UserColumn},
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
	if _u.mutation.ParentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   affiliate.ParentTable,
			Columns: []string{affiliate.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(affiliate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   affiliate.ParentTable,
			Columns: []string{affiliate.ParentColumn},
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
	if _u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.ChildrenTable,
			Columns: []string{affiliate.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(affiliate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.ChildrenTable,
			Columns: []string{affiliate.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(affiliate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.ChildrenTable,
			Columns: []string{affiliate.ChildrenColumn},
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
	if _u.mutation.LinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.LinksTable,
			Columns: []string{affiliate.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(referrallink.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinksIDs(); len(nodes) > 0 && !_u.mutation.LinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.LinksTable,
			Columns: []string{affiliate.LinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(referrallink.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.LinksTable,
			Columns: []string{affiliate.LinksColumn},
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
	if _u.mutation.PromoCodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.PromoCodesTable,
			Columns: []string{affiliate.PromoCodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promocode.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromoCodesIDs(); len(nodes) > 0 && !_u.mutation.PromoCodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.PromoCodesTable,
			Columns: []string{affiliate.PromoCodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promocode.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromoCodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.PromoCodesTable,
			Columns: []string{affiliate.PromoCodesColumn},
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
	if _u.mutation.AttributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.AttributionsTable,
			Columns: []string{affiliate.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttributionsIDs(); len(nodes) > 0 && !_u.mutation.AttributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.AttributionsTable,
			Columns: []string{affiliate.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttributionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.AttributionsTable,
			Columns: []string{affiliate.AttributionsColumn},
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
	if _u.mutation.LedgerEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   affiliate.LedgerEntriesTable,
			Columns: []string{affiliate.LedgerEntriesColumn},
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
			Table:   affiliate.LedgerEntriesTable,
			Columns: []string{affiliate.LedgerEntriesColumn},
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
			Table:   affiliate.LedgerEntriesTable,
			Columns: []string{affiliate.LedgerEntriesColumn},
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
	_node = &Affiliate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{affiliate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
