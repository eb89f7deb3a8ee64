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
	"github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/ledgerentry"
	"github.com/homecheff/affiliates/ent/promocode"
	"github.com/homecheff/affiliates/ent/referrallink"
	"github.com/homecheff/affiliates/ent/user"
)

// AffiliateCreate is the builder for creating a Affiliate entity.
type AffiliateCreate struct {
	config
	mutation *AffiliateMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AffiliateCreate) SetUserID(v int) *AffiliateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AffiliateCreate) SetStatus(v affiliate.Status) *AffiliateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AffiliateCreate) SetNillableStatus(v *affiliate.Status) *AffiliateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *AffiliateCreate) SetParentID(v int) *AffiliateCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *AffiliateCreate) SetNillableParentID(v *int) *AffiliateCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetSubscriptionPct sets the "subscription_pct" field.
func (_c *AffiliateCreate) SetSubscriptionPct(v float64) *AffiliateCreate {
	_c.mutation.SetSubscriptionPct(v)
	return _c
}

// SetNillableSubscriptionPct sets the "subscription_pct" field if the given value is not nil.
func (_c *AffiliateCreate) SetNillableSubscriptionPct(v *float64) *AffiliateCreate {
	if v != nil {
		_c.SetSubscriptionPct(*v)
	}
	return _c
}

// SetOrderPct sets the "order_pct" field.
func (_c *AffiliateCreate) SetOrderPct(v float64) *AffiliateCreate {
	_c.mutation.SetOrderPct(v)
	return _c
}

// SetNillableOrderPct sets the "order_pct" field if the given value is not nil.
func (_c *AffiliateCreate) SetNillableOrderPct(v *float64) *AffiliateCreate {
	if v != nil {
		_c.SetOrderPct(*v)
	}
	return _c
}

// SetParentSubscriptionPct sets the "parent_subscription_pct" field.
func (_c *AffiliateCreate) SetParentSubscriptionPct(v float64) *AffiliateCreate {
	_c.mutation.SetParentSubscriptionPct(v)
	return _c
}

// SetNillableParentSubscriptionPct sets the "parent_subscription_pct" field if the given value is not nil.
func (_c *AffiliateCreate) SetNillableParentSubscriptionPct(v *float64) *AffiliateCreate {
	if v != nil {
		_c.SetParentSubscriptionPct(*v)
	}
	return _c
}

// SetParentOrderPct sets the "parent_order_pct" field.
func (_c *AffiliateCreate) SetParentOrderPct(v float64) *AffiliateCreate {
	_c.mutation.SetParentOrderPct(v)
	return _c
}

// SetNillableParentOrderPct sets the "parent_order_pct" field if the given value is not nil.
func (_c *AffiliateCreate) SetNillableParentOrderPct(v *float64) *AffiliateCreate {
	if v != nil {
		_c.SetParentOrderPct(*v)
	}
	return _c
}

// SetTotalClicks sets the "total_clicks" field.
func (_c *AffiliateCreate) SetTotalClicks(v int) *AffiliateCreate {
	_c.mutation.SetTotalClicks(v)
	return _c
}

// SetNillableTotalClicks sets the "total_clicks" field if the given value is not nil.
func (_c *AffiliateCreate) SetNillableTotalClicks(v *int) *AffiliateCreate {
	if v != nil {
		_c.SetTotalClicks(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AffiliateCreate) SetCreatedAt(v time.Time) *AffiliateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AffiliateCreate) SetNillableCreatedAt(v *time.Time) *AffiliateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AffiliateCreate) SetUpdatedAt(v time.Time) *AffiliateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AffiliateCreate) SetNillableUpdatedAt(v *time.Time) *AffiliateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *AffiliateCreate) SetUser(v *User) *AffiliateCreate {
	return _c.SetUserID(v.ID)
}

// SetParent sets the "parent" edge to the Affiliate entity.
func (_c *AffiliateCreate) SetParent(v *Affiliate) *AffiliateCreate {
	return _c.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Affiliate entity by IDs.
func (_c *AffiliateCreate) AddChildIDs(ids ...int) *AffiliateCreate {
	_c.mutation.AddChildIDs(ids...)
	return _c
}

// AddChildren adds the "children" edges to the Affiliate entity.
func (_c *AffiliateCreate) AddChildren(v ...*Affiliate) *AffiliateCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChildIDs(ids...)
}

// AddLinkIDs adds the "links" edge to the ReferralLink entity by IDs.
func (_c *AffiliateCreate) AddLinkIDs(ids ...int) *AffiliateCreate {
	_c.mutation.AddLinkIDs(ids...)
	return _c
}

// AddLinks adds the "links" edges to the ReferralLink entity.
func (_c *AffiliateCreate) AddLinks(v ...*ReferralLink) *AffiliateCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLinkIDs(ids...)
}

// AddPromoCodeIDs adds the "promo_codes" edge to the PromoCode entity by IDs.
func (_c *AffiliateCreate) AddPromoCodeIDs(ids ...int) *AffiliateCreate {
	_c.mutation.AddPromoCodeIDs(ids...)
	return _c
}

// AddPromoCodes adds the "promo_codes" edges to the PromoCode entity.
func (_c *AffiliateCreate) AddPromoCodes(v ...*PromoCode) *AffiliateCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPromoCodeIDs(ids...)
}

// AddAttributionIDs adds the "attributions" edge to the Attribution entity by IDs.
func (_c *AffiliateCreate) AddAttributionIDs(ids ...int) *AffiliateCreate {
	_c.mutation.AddAttributionIDs(ids...)
	return _c
}

// AddAttributions adds the "attributions" edges to the Attribution entity.
func (_c *AffiliateCreate) AddAttributions(v ...*Attribution) *AffiliateCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttributionIDs(ids...)
}

// AddLedgerEntryIDs adds the "ledger_entries" edge to the LedgerEntry entity by IDs.
func (_c *AffiliateCreate) AddLedgerEntryIDs(ids ...int) *AffiliateCreate {
	_c.mutation.AddLedgerEntryIDs(ids...)
	return _c
}

// AddLedgerEntries adds the "ledger_entries" edges to the LedgerEntry entity.
func (_c *AffiliateCreate) AddLedgerEntries(v ...*LedgerEntry) *AffiliateCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLedgerEntryIDs(ids...)
}

// Mutation returns the AffiliateMutation object of the builder.
func (_c *AffiliateCreate) Mutation() *AffiliateMutation {
	return _c.mutation
}

// Save creates the Affiliate in the database.
func (_c *AffiliateCreate) Save(ctx context.Context) (*Affiliate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AffiliateCreate) SaveX(ctx context.Context) *Affiliate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AffiliateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AffiliateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AffiliateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := affiliate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalClicks(); !ok {
		v := affiliate.DefaultTotalClicks
		_c.mutation.SetTotalClicks(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := affiliate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := affiliate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AffiliateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Affiliate.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Affiliate.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := affiliate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Affiliate.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalClicks(); !ok {
		return &ValidationError{Name: "total_clicks", err: errors.New(`ent: missing required field "Affiliate.total_clicks"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Affiliate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Affiliate.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Affiliate.user"`)}
	}
	return nil
}

func (_c *AffiliateCreate) sqlSave(ctx context.Context) (*Affiliate, error) {
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

func (_c *AffiliateCreate) createSpec() (*Affiliate, *sqlgraph.CreateSpec) {
	var (
		_node = &Affiliate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(affiliate.Table, sqlgraph.NewFieldSpec(affiliate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(affiliate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SubscriptionPct(); ok {
		_spec.SetField(affiliate.FieldSubscriptionPct, field.TypeFloat64, value)
		_node.SubscriptionPct = &value
	}
	if value, ok := _c.mutation.OrderPct(); ok {
		_spec.SetField(affiliate.FieldOrderPct, field.TypeFloat64, value)
		_node.OrderPct = &value
	}
	if value, ok := _c.mutation.ParentSubscriptionPct(); ok {
		_spec.SetField(affiliate.FieldParentSubscriptionPct, field.TypeFloat64, value)
		_node.ParentSubscriptionPct = &value
	}
	if value, ok := _c.mutation.ParentOrderPct(); ok {
		_spec.SetField(affiliate.FieldParentOrderPct, field.TypeFloat64, value)
		_node.ParentOrderPct = &value
	}
	if value, ok := _c.mutation.TotalClicks(); ok {
		_spec.SetField(affiliate.FieldTotalClicks, field.TypeInt, value)
		_node.TotalClicks = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(affiliate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(affiliate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
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
		_node.ParentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LinksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PromoCodesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttributionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LedgerEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AffiliateCreateBulk is the builder for creating many Affiliate entities in bulk.
type AffiliateCreateBulk struct {
	config
	err      error
	builders []*AffiliateCreate
}

// Save creates the Affiliate entities in the database.
func (_c *AffiliateCreateBulk) Save(ctx context.Context) ([]*Affiliate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Affiliate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AffiliateMutation)
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
func (_c *AffiliateCreateBulk) SaveX(ctx context.Context) []*Affiliate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AffiliateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AffiliateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
