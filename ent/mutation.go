// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/ledgerentry"
	"github.com/homecheff/affiliates/ent/predicate"
	"github.com/homecheff/affiliates/ent/promocode"
	"github.com/homecheff/affiliates/ent/referralclick"
	"github.com/homecheff/affiliates/ent/referrallink"
	"github.com/homecheff/affiliates/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAffiliate            = "Affiliate"
	TypeAttribution          = "Attribution"
	TypeBusinessSubscription = "BusinessSubscription"
	TypeLedgerEntry          = "LedgerEntry"
	TypePromoCode            = "PromoCode"
	TypeReferralClick        = "ReferralClick"
	TypeReferralLink         = "ReferralLink"
	TypeUser                 = "User"
)

// AffiliateMutation represents an operation that mutates the Affiliate nodes in the graph.
type AffiliateMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	status                     *affiliate.Status
	subscription_pct           *float64
	addsubscription_pct        *float64
	order_pct                  *float64
	addorder_pct               *float64
	parent_subscription_pct    *float64
	addparent_subscription_pct *float64
	parent_order_pct           *float64
	addparent_order_pct        *float64
	total_clicks               *int
	addtotal_clicks            *int
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	user                       *int
	cleareduser                bool
	parent                     *int
	clearedparent              bool
	children                   map[int]struct{}
	removedchildren            map[int]struct{}
	clearedchildren            bool
	links                      map[int]struct{}
	removedlinks               map[int]struct{}
	clearedlinks               bool
	promo_codes                map[int]struct{}
	removedpromo_codes         map[int]struct{}
	clearedpromo_codes         bool
	attributions               map[int]struct{}
	removedattributions        map[int]struct{}
	clearedattributions        bool
	ledger_entries             map[int]struct{}
	removedledger_entries      map[int]struct{}
	clearedledger_entries      bool
	done                       bool
	oldValue                   func(context.Context) (*Affiliate, error)
	predicates                 []predicate.Affiliate
}

var _ ent.Mutation = (*AffiliateMutation)(nil)

// affiliateOption allows management of the mutation configuration using functional options.
type affiliateOption func(*AffiliateMutation)

// newAffiliateMutation creates new mutation for the Affiliate entity.
func newAffiliateMutation(c config, op Op, opts ...affiliateOption) *AffiliateMutation {
	m := &AffiliateMutation{
		config:        c,
		op:            op,
		typ:           TypeAffiliate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAffiliateID sets the ID field of the mutation.
func withAffiliateID(id int) affiliateOption {
	return func(m *AffiliateMutation) {
		var (
			err   error
			once  sync.Once
			value *Affiliate
		)
		m.oldValue = func(ctx context.Context) (*Affiliate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Affiliate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAffiliate sets the old Affiliate of the mutation.
func withAffiliate(node *Affiliate) affiliateOption {
	return func(m *AffiliateMutation) {
		m.oldValue = func(context.Context) (*Affiliate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AffiliateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AffiliateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AffiliateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AffiliateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Affiliate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AffiliateMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AffiliateMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Affiliate entity.
// If the Affiliate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AffiliateMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AffiliateMutation) ResetUserID() {
	m.user = nil
}

// SetStatus sets the "status" field.
func (m *AffiliateMutation) SetStatus(a affiliate.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AffiliateMutation) Status() (r affiliate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Affiliate entity.
// If the Affiliate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AffiliateMutation) OldStatus(ctx context.Context) (v affiliate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AffiliateMutation) ResetStatus() {
	m.status = nil
}

// SetParentID sets the "parent_id" field.
func (m *AffiliateMutation) SetParentID(i int) {
	m.parent = &i
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *AffiliateMutation) ParentID() (r int, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Affiliate entity.
// If the Affiliate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AffiliateMutation) OldParentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *AffiliateMutation) ClearParentID() {
	m.parent = nil
	m.clearedFields[affiliate.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *AffiliateMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[affiliate.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *AffiliateMutation) ResetParentID() {
	m.parent = nil
	delete(m.clearedFields, affiliate.FieldParentID)
}

// SetSubscriptionPct sets the "subscription_pct" field.
func (m *AffiliateMutation) SetSubscriptionPct(f float64) {
	m.subscription_pct = &f
	m.addsubscription_pct = nil
}

// SubscriptionPct returns the value of the "subscription_pct" field in the mutation.
func (m *AffiliateMutation) SubscriptionPct() (r float64, exists bool) {
	v := m.subscription_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionPct returns the old "subscription_pct" field's value of the Affiliate entity.
// If the Affiliate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AffiliateMutation) OldSubscriptionPct(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionPct: %w", err)
	}
	return oldValue.SubscriptionPct, nil
}

// AddSubscriptionPct adds f to the "subscription_pct" field.
func (m *AffiliateMutation) AddSubscriptionPct(f float64) {
	if m.addsubscription_pct != nil {
		*m.addsubscription_pct += f
	} else {
		m.addsubscription_pct = &f
	}
}

// AddedSubscriptionPct returns the value that was added to the "subscription_pct" field in this mutation.
func (m *AffiliateMutation) AddedSubscriptionPct() (r float64, exists bool) {
	v := m.addsubscription_pct
	if v == nil {
		return
	}
	return *v, true
}

// ClearSubscriptionPct clears the value of the "subscription_pct" field.
func (m *AffiliateMutation) ClearSubscriptionPct() {
	m.subscription_pct = nil
	m.addsubscription_pct = nil
	m.clearedFields[affiliate.FieldSubscriptionPct] = struct{}{}
}

// SubscriptionPctCleared returns if the "subscription_pct" field was cleared in this mutation.
func (m *AffiliateMutation) SubscriptionPctCleared() bool {
	_, ok := m.clearedFields[affiliate.FieldSubscriptionPct]
	return ok
}

// ResetSubscriptionPct resets all changes to the "subscription_pct" field.
func (m *AffiliateMutation) ResetSubscriptionPct() {
	m.subscription_pct = nil
	m.addsubscription_pct = nil
	delete(m.clearedFields, affiliate.FieldSubscriptionPct)
}

// SetOrderPct sets the "order_pct" field.
func (m *AffiliateMutation) SetOrderPct(f float64) {
	m.order_pct = &f
	m.addorder_pct = nil
}

// OrderPct returns the value of the "order_pct" field in the mutation.
func (m *AffiliateMutation) OrderPct() (r float64, exists bool) {
	v := m.order_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderPct returns the old "order_pct" field's value of the Affiliate entity.
// If the Affiliate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AffiliateMutation) OldOrderPct(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderPct: %w", err)
	}
	return oldValue.OrderPct, nil
}

// AddOrderPct adds f to the "order_pct" field.
func (m *AffiliateMutation) AddOrderPct(f float64) {
	if m.addorder_pct != nil {
		*m.addorder_pct += f
	} else {
		m.addorder_pct = &f
	}
}

// AddedOrderPct returns the value that was added to the "order_pct" field in this mutation.
func (m *AffiliateMutation) AddedOrderPct() (r float64, exists bool) {
	v := m.addorder_pct
	if v == nil {
		return
	}
	return *v, true
}

// ClearOrderPct clears the value of the "order_pct" field.
func (m *AffiliateMutation) ClearOrderPct() {
	m.order_pct = nil
	m.addorder_pct = nil
	m.clearedFields[affiliate.FieldOrderPct] = struct{}{}
}

// OrderPctCleared returns if the "order_pct" field was cleared in this mutation.
func (m *AffiliateMutation) OrderPctCleared() bool {
	_, ok := m.clearedFields[affiliate.FieldOrderPct]
	return ok
}

// ResetOrderPct resets all changes to the "order_pct" field.
func (m *AffiliateMutation) ResetOrderPct() {
	m.order_pct = nil
	m.addorder_pct = nil
	delete(m.clearedFields, affiliate.FieldOrderPct)
}

// SetParentSubscriptionPct sets the "parent_subscription_pct" field.
func (m *AffiliateMutation) SetParentSubscriptionPct(f float64) {
	m.parent_subscription_pct = &f
	m.addparent_subscription_pct = nil
}

// ParentSubscriptionPct returns the value of the "parent_subscription_pct" field in the mutation.
func (m *AffiliateMutation) ParentSubscriptionPct() (r float64, exists bool) {
	v := m.parent_subscription_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldParentSubscriptionPct returns the old "parent_subscription_pct" field's value of the Affiliate entity.
// If the Affiliate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AffiliateMutation) OldParentSubscriptionPct(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentSubscriptionPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentSubscriptionPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentSubscriptionPct: %w", err)
	}
	return oldValue.ParentSubscriptionPct, nil
}

// AddParentSubscriptionPct adds f to the "parent_subscription_pct" field.
func (m *AffiliateMutation) AddParentSubscriptionPct(f float64) {
	if m.addparent_subscription_pct != nil {
		*m.addparent_subscription_pct += f
	} else {
		m.addparent_subscription_pct = &f
	}
}

// AddedParentSubscriptionPct returns the value that was added to the "parent_subscription_pct" field in this mutation.
func (m *AffiliateMutation) AddedParentSubscriptionPct() (r float64, exists bool) {
	v := m.addparent_subscription_pct
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentSubscriptionPct clears the value of the "parent_subscription_pct" field.
func (m *AffiliateMutation) ClearParentSubscriptionPct() {
	m.parent_subscription_pct = nil
	m.addparent_subscription_pct = nil
	m.clearedFields[affiliate.FieldParentSubscriptionPct] = struct{}{}
}

// ParentSubscriptionPctCleared returns if the "parent_subscription_pct" field was cleared in this mutation.
func (m *AffiliateMutation) ParentSubscriptionPctCleared() bool {
	_, ok := m.clearedFields[affiliate.FieldParentSubscriptionPct]
	return ok
}

// ResetParentSubscriptionPct resets all changes to the "parent_subscription_pct" field.
func (m *AffiliateMutation) ResetParentSubscriptionPct() {
	m.parent_subscription_pct = nil
	m.addparent_subscription_pct = nil
	delete(m.clearedFields, affiliate.FieldParentSubscriptionPct)
}

// SetParentOrderPct sets the "parent_order_pct" field.
func (m *AffiliateMutation) SetParentOrderPct(f float64) {
	m.parent_order_pct = &f
	m.addparent_order_pct = nil
}

// ParentOrderPct returns the value of the "parent_order_pct" field in the mutation.
func (m *AffiliateMutation) ParentOrderPct() (r float64, exists bool) {
	v := m.parent_order_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldParentOrderPct returns the old "parent_order_pct" field's value of the Affiliate entity.
// If the Affiliate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AffiliateMutation) OldParentOrderPct(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentOrderPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentOrderPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentOrderPct: %w", err)
	}
	return oldValue.ParentOrderPct, nil
}

// AddParentOrderPct adds f to the "parent_order_pct" field.
func (m *AffiliateMutation) AddParentOrderPct(f float64) {
	if m.addparent_order_pct != nil {
		*m.addparent_order_pct += f
	} else {
		m.addparent_order_pct = &f
	}
}

// AddedParentOrderPct returns the value that was added to the "parent_order_pct" field in this mutation.
func (m *AffiliateMutation) AddedParentOrderPct() (r float64, exists bool) {
	v := m.addparent_order_pct
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentOrderPct clears the value of the "parent_order_pct" field.
func (m *AffiliateMutation) ClearParentOrderPct() {
	m.parent_order_pct = nil
	m.addparent_order_pct = nil
	m.clearedFields[affiliate.FieldParentOrderPct] = struct{}{}
}

// ParentOrderPctCleared returns if the "parent_order_pct" field was cleared in this mutation.
func (m *AffiliateMutation) ParentOrderPctCleared() bool {
	_, ok := m.clearedFields[affiliate.FieldParentOrderPct]
	return ok
}

// ResetParentOrderPct resets all changes to the "parent_order_pct" field.
func (m *AffiliateMutation) ResetParentOrderPct() {
	m.parent_order_pct = nil
	m.addparent_order_pct = nil
	delete(m.clearedFields, affiliate.FieldParentOrderPct)
}

// SetTotalClicks sets the "total_clicks" field.
func (m *AffiliateMutation) SetTotalClicks(i int) {
	m.total_clicks = &i
	m.addtotal_clicks = nil
}

// TotalClicks returns the value of the "total_clicks" field in the mutation.
func (m *AffiliateMutation) TotalClicks() (r int, exists bool) {
	v := m.total_clicks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalClicks returns the old "total_clicks" field's value of the Affiliate entity.
// If the Affiliate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AffiliateMutation) OldTotalClicks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalClicks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalClicks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalClicks: %w", err)
	}
	return oldValue.TotalClicks, nil
}

// AddTotalClicks adds i to the "total_clicks" field.
func (m *AffiliateMutation) AddTotalClicks(i int) {
	if m.addtotal_clicks != nil {
		*m.addtotal_clicks += i
	} else {
		m.addtotal_clicks = &i
	}
}

// AddedTotalClicks returns the value that was added to the "total_clicks" field in this mutation.
func (m *AffiliateMutation) AddedTotalClicks() (r int, exists bool) {
	v := m.addtotal_clicks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalClicks resets all changes to the "total_clicks" field.
func (m *AffiliateMutation) ResetTotalClicks() {
	m.total_clicks = nil
	m.addtotal_clicks = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AffiliateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AffiliateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Affiliate entity.
// If the Affiliate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AffiliateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AffiliateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AffiliateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AffiliateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Affiliate entity.
// If the Affiliate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AffiliateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AffiliateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *AffiliateMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[affiliate.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *AffiliateMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *AffiliateMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *AffiliateMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearParent clears the "parent" edge to the Affiliate entity.
func (m *AffiliateMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[affiliate.FieldParentID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Affiliate entity was cleared.
func (m *AffiliateMutation) ParentCleared() bool {
	return m.ParentIDCleared() || m.clearedparent
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *AffiliateMutation) ParentIDs() (ids []int) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *AffiliateMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the Affiliate entity by ids.
func (m *AffiliateMutation) AddChildIDs(ids ...int) {
	if m.children == nil {
		m.children = make(map[int]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the Affiliate entity.
func (m *AffiliateMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the Affiliate entity was cleared.
func (m *AffiliateMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the Affiliate entity by IDs.
func (m *AffiliateMutation) RemoveChildIDs(ids ...int) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the Affiliate entity.
func (m *AffiliateMutation) RemovedChildrenIDs() (ids []int) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *AffiliateMutation) ChildrenIDs() (ids []int) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *AffiliateMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// AddLinkIDs adds the "links" edge to the ReferralLink entity by ids.
func (m *AffiliateMutation) AddLinkIDs(ids ...int) {
	if m.links == nil {
		m.links = make(map[int]struct{})
	}
	for i := range ids {
		m.links[ids[i]] = struct{}{}
	}
}

// ClearLinks clears the "links" edge to the ReferralLink entity.
func (m *AffiliateMutation) ClearLinks() {
	m.clearedlinks = true
}

// LinksCleared reports if the "links" edge to the ReferralLink entity was cleared.
func (m *AffiliateMutation) LinksCleared() bool {
	return m.clearedlinks
}

// RemoveLinkIDs removes the "links" edge to the ReferralLink entity by IDs.
func (m *AffiliateMutation) RemoveLinkIDs(ids ...int) {
	if m.removedlinks == nil {
		m.removedlinks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.links, ids[i])
		m.removedlinks[ids[i]] = struct{}{}
	}
}

// RemovedLinks returns the removed IDs of the "links" edge to the ReferralLink entity.
func (m *AffiliateMutation) RemovedLinksIDs() (ids []int) {
	for id := range m.removedlinks {
		ids = append(ids, id)
	}
	return
}

// LinksIDs returns the "links" edge IDs in the mutation.
func (m *AffiliateMutation) LinksIDs() (ids []int) {
	for id := range m.links {
		ids = append(ids, id)
	}
	return
}

// ResetLinks resets all changes to the "links" edge.
func (m *AffiliateMutation) ResetLinks() {
	m.links = nil
	m.clearedlinks = false
	m.removedlinks = nil
}

// AddPromoCodeIDs adds the "promo_codes" edge to the PromoCode entity by ids.
func (m *AffiliateMutation) AddPromoCodeIDs(ids ...int) {
	if m.promo_codes == nil {
		m.promo_codes = make(map[int]struct{})
	}
	for i := range ids {
		m.promo_codes[ids[i]] = struct{}{}
	}
}

// ClearPromoCodes clears the "promo_codes" edge to the PromoCode entity.
func (m *AffiliateMutation) ClearPromoCodes() {
	m.clearedpromo_codes = true
}

// PromoCodesCleared reports if the "promo_codes" edge to the PromoCode entity was cleared.
func (m *AffiliateMutation) PromoCodesCleared() bool {
	return m.clearedpromo_codes
}

// RemovePromoCodeIDs removes the "promo_codes" edge to the PromoCode entity by IDs.
func (m *AffiliateMutation) RemovePromoCodeIDs(ids ...int) {
	if m.removedpromo_codes == nil {
		m.removedpromo_codes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.promo_codes, ids[i])
		m.removedpromo_codes[ids[i]] = struct{}{}
	}
}

// RemovedPromoCodes returns the removed IDs of the "promo_codes" edge to the PromoCode entity.
func (m *AffiliateMutation) RemovedPromoCodesIDs() (ids []int) {
	for id := range m.removedpromo_codes {
		ids = append(ids, id)
	}
	return
}

// PromoCodesIDs returns the "promo_codes" edge IDs in the mutation.
func (m *AffiliateMutation) PromoCodesIDs() (ids []int) {
	for id := range m.promo_codes {
		ids = append(ids, id)
	}
	return
}

// ResetPromoCodes resets all changes to the "promo_codes" edge.
func (m *AffiliateMutation) ResetPromoCodes() {
	m.promo_codes = nil
	m.clearedpromo_codes = false
	m.removedpromo_codes = nil
}

// AddAttributionIDs adds the "attributions" edge to the Attribution entity by ids.
func (m *AffiliateMutation) AddAttributionIDs(ids ...int) {
	if m.attributions == nil {
		m.attributions = make(map[int]struct{})
	}
	for i := range ids {
		m.attributions[ids[i]] = struct{}{}
	}
}

// ClearAttributions clears the "attributions" edge to the Attribution entity.
func (m *AffiliateMutation) ClearAttributions() {
	m.clearedattributions = true
}

// AttributionsCleared reports if the "attributions" edge to the Attribution entity was cleared.
func (m *AffiliateMutation) AttributionsCleared() bool {
	return m.clearedattributions
}

// RemoveAttributionIDs removes the "attributions" edge to the Attribution entity by IDs.
func (m *AffiliateMutation) RemoveAttributionIDs(ids ...int) {
	if m.removedattributions == nil {
		m.removedattributions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.attributions, ids[i])
		m.removedattributions[ids[i]] = struct{}{}
	}
}

// RemovedAttributions returns the removed IDs of the "attributions" edge to the Attribution entity.
func (m *AffiliateMutation) RemovedAttributionsIDs() (ids []int) {
	for id := range m.removedattributions {
		ids = append(ids, id)
	}
	return
}

// AttributionsIDs returns the "attributions" edge IDs in the mutation.
func (m *AffiliateMutation) AttributionsIDs() (ids []int) {
	for id := range m.attributions {
		ids = append(ids, id)
	}
	return
}

// ResetAttributions resets all changes to the "attributions" edge.
func (m *AffiliateMutation) ResetAttributions() {
	m.attributions = nil
	m.clearedattributions = false
	m.removedattributions = nil
}

// AddLedgerEntryIDs adds the "ledger_entries" edge to the LedgerEntry entity by ids.
func (m *AffiliateMutation) AddLedgerEntryIDs(ids ...int) {
	if m.ledger_entries == nil {
		m.ledger_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.ledger_entries[ids[i]] = struct{}{}
	}
}

// ClearLedgerEntries clears the "ledger_entries" edge to the LedgerEntry entity.
func (m *AffiliateMutation) ClearLedgerEntries() {
	m.clearedledger_entries = true
}

// LedgerEntriesCleared reports if the "ledger_entries" edge to the LedgerEntry entity was cleared.
func (m *AffiliateMutation) LedgerEntriesCleared() bool {
	return m.clearedledger_entries
}

// RemoveLedgerEntryIDs removes the "ledger_entries" edge to the LedgerEntry entity by IDs.
func (m *AffiliateMutation) RemoveLedgerEntryIDs(ids ...int) {
	if m.removedledger_entries == nil {
		m.removedledger_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.ledger_entries, ids[i])
		m.removedledger_entries[ids[i]] = struct{}{}
	}
}

// RemovedLedgerEntries returns the removed IDs of the "ledger_entries" edge to the LedgerEntry entity.
func (m *AffiliateMutation) RemovedLedgerEntriesIDs() (ids []int) {
	for id := range m.removedledger_entries {
		ids = append(ids, id)
	}
	return
}

// LedgerEntriesIDs returns the "ledger_entries" edge IDs in the mutation.
func (m *AffiliateMutation) LedgerEntriesIDs() (ids []int) {
	for id := range m.ledger_entries {
		ids = append(ids, id)
	}
	return
}

// ResetLedgerEntries resets all changes to the "ledger_entries" edge.
func (m *AffiliateMutation) ResetLedgerEntries() {
	m.ledger_entries = nil
	m.clearedledger_entries = false
	m.removedledger_entries = nil
}

// Where appends a list predicates to the AffiliateMutation builder.
func (m *AffiliateMutation) Where(ps ...predicate.Affiliate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AffiliateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AffiliateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Affiliate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AffiliateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AffiliateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Affiliate).
func (m *AffiliateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AffiliateMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user != nil {
		fields = append(fields, affiliate.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, affiliate.FieldStatus)
	}
	if m.parent != nil {
		fields = append(fields, affiliate.FieldParentID)
	}
	if m.subscription_pct != nil {
		fields = append(fields, affiliate.FieldSubscriptionPct)
	}
	if m.order_pct != nil {
		fields = append(fields, affiliate.FieldOrderPct)
	}
	if m.parent_subscription_pct != nil {
		fields = append(fields, affiliate.FieldParentSubscriptionPct)
	}
	if m.parent_order_pct != nil {
		fields = append(fields, affiliate.FieldParentOrderPct)
	}
	if m.total_clicks != nil {
		fields = append(fields, affiliate.FieldTotalClicks)
	}
	if m.created_at != nil {
		fields = append(fields, affiliate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, affiliate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AffiliateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case affiliate.FieldUserID:
		return m.UserID()
	case affiliate.FieldStatus:
		return m.Status()
	case affiliate.FieldParentID:
		return m.ParentID()
	case affiliate.FieldSubscriptionPct:
		return m.SubscriptionPct()
	case affiliate.FieldOrderPct:
		return m.OrderPct()
	case affiliate.FieldParentSubscriptionPct:
		return m.ParentSubscriptionPct()
	case affiliate.FieldParentOrderPct:
		return m.ParentOrderPct()
	case affiliate.FieldTotalClicks:
		return m.TotalClicks()
	case affiliate.FieldCreatedAt:
		return m.CreatedAt()
	case affiliate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AffiliateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case affiliate.FieldUserID:
		return m.OldUserID(ctx)
	case affiliate.FieldStatus:
		return m.OldStatus(ctx)
	case affiliate.FieldParentID:
		return m.OldParentID(ctx)
	case affiliate.FieldSubscriptionPct:
		return m.OldSubscriptionPct(ctx)
	case affiliate.FieldOrderPct:
		return m.OldOrderPct(ctx)
	case affiliate.FieldParentSubscriptionPct:
		return m.OldParentSubscriptionPct(ctx)
	case affiliate.FieldParentOrderPct:
		return m.OldParentOrderPct(ctx)
	case affiliate.FieldTotalClicks:
		return m.OldTotalClicks(ctx)
	case affiliate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case affiliate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Affiliate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AffiliateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case affiliate.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case affiliate.FieldStatus:
		v, ok := value.(affiliate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case affiliate.FieldParentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case affiliate.FieldSubscriptionPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionPct(v)
		return nil
	case affiliate.FieldOrderPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderPct(v)
		return nil
	case affiliate.FieldParentSubscriptionPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentSubscriptionPct(v)
		return nil
	case affiliate.FieldParentOrderPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentOrderPct(v)
		return nil
	case affiliate.FieldTotalClicks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalClicks(v)
		return nil
	case affiliate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case affiliate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Affiliate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AffiliateMutation) AddedFields() []string {
	var fields []string
	if m.addsubscription_pct != nil {
		fields = append(fields, affiliate.FieldSubscriptionPct)
	}
	if m.addorder_pct != nil {
		fields = append(fields, affiliate.FieldOrderPct)
	}
	if m.addparent_subscription_pct != nil {
		fields = append(fields, affiliate.FieldParentSubscriptionPct)
	}
	if m.addparent_order_pct != nil {
		fields = append(fields, affiliate.FieldParentOrderPct)
	}
	if m.addtotal_clicks != nil {
		fields = append(fields, affiliate.FieldTotalClicks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AffiliateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case affiliate.FieldSubscriptionPct:
		return m.AddedSubscriptionPct()
	case affiliate.FieldOrderPct:
		return m.AddedOrderPct()
	case affiliate.FieldParentSubscriptionPct:
		return m.AddedParentSubscriptionPct()
	case affiliate.FieldParentOrderPct:
		return m.AddedParentOrderPct()
	case affiliate.FieldTotalClicks:
		return m.AddedTotalClicks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AffiliateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case affiliate.FieldSubscriptionPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubscriptionPct(v)
		return nil
	case affiliate.FieldOrderPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderPct(v)
		return nil
	case affiliate.FieldParentSubscriptionPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentSubscriptionPct(v)
		return nil
	case affiliate.FieldParentOrderPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentOrderPct(v)
		return nil
	case affiliate.FieldTotalClicks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalClicks(v)
		return nil
	}
	return fmt.Errorf("unknown Affiliate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AffiliateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(affiliate.FieldParentID) {
		fields = append(fields, affiliate.FieldParentID)
	}
	if m.FieldCleared(affiliate.FieldSubscriptionPct) {
		fields = append(fields, affiliate.FieldSubscriptionPct)
	}
	if m.FieldCleared(affiliate.FieldOrderPct) {
		fields = append(fields, affiliate.FieldOrderPct)
	}
	if m.FieldCleared(affiliate.FieldParentSubscriptionPct) {
		fields = append(fields, affiliate.FieldParentSubscriptionPct)
	}
	if m.FieldCleared(affiliate.FieldParentOrderPct) {
		fields = append(fields, affiliate.FieldParentOrderPct)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AffiliateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AffiliateMutation) ClearField(name string) error {
	switch name {
	case affiliate.FieldParentID:
		m.ClearParentID()
		return nil
	case affiliate.FieldSubscriptionPct:
		m.ClearSubscriptionPct()
		return nil
	case affiliate.FieldOrderPct:
		m.ClearOrderPct()
		return nil
	case affiliate.FieldParentSubscriptionPct:
		m.ClearParentSubscriptionPct()
		return nil
	case affiliate.FieldParentOrderPct:
		m.ClearParentOrderPct()
		return nil
	}
	return fmt.Errorf("unknown Affiliate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AffiliateMutation) ResetField(name string) error {
	switch name {
	case affiliate.FieldUserID:
		m.ResetUserID()
		return nil
	case affiliate.FieldStatus:
		m.ResetStatus()
		return nil
	case affiliate.FieldParentID:
		m.ResetParentID()
		return nil
	case affiliate.FieldSubscriptionPct:
		m.ResetSubscriptionPct()
		return nil
	case affiliate.FieldOrderPct:
		m.ResetOrderPct()
		return nil
	case affiliate.FieldParentSubscriptionPct:
		m.ResetParentSubscriptionPct()
		return nil
	case affiliate.FieldParentOrderPct:
		m.ResetParentOrderPct()
		return nil
	case affiliate.FieldTotalClicks:
		m.ResetTotalClicks()
		return nil
	case affiliate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case affiliate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Affiliate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AffiliateMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.user != nil {
		edges = append(edges, affiliate.EdgeUser)
	}
	if m.parent != nil {
		edges = append(edges, affiliate.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, affiliate.EdgeChildren)
	}
	if m.links != nil {
		edges = append(edges, affiliate.EdgeLinks)
	}
	if m.promo_codes != nil {
		edges = append(edges, affiliate.EdgePromoCodes)
	}
	if m.attributions != nil {
		edges = append(edges, affiliate.EdgeAttributions)
	}
	if m.ledger_entries != nil {
		edges = append(edges, affiliate.EdgeLedgerEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AffiliateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case affiliate.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case affiliate.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case affiliate.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	case affiliate.EdgeLinks:
		ids := make([]ent.Value, 0, len(m.links))
		for id := range m.links {
			ids = append(ids, id)
		}
		return ids
	case affiliate.EdgePromoCodes:
		ids := make([]ent.Value, 0, len(m.promo_codes))
		for id := range m.promo_codes {
			ids = append(ids, id)
		}
		return ids
	case affiliate.EdgeAttributions:
		ids := make([]ent.Value, 0, len(m.attributions))
		for id := range m.attributions {
			ids = append(ids, id)
		}
		return ids
	case affiliate.EdgeLedgerEntries:
		ids := make([]ent.Value, 0, len(m.ledger_entries))
		for id := range m.ledger_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AffiliateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedchildren != nil {
		edges = append(edges, affiliate.EdgeChildren)
	}
	if m.removedlinks != nil {
		edges = append(edges, affiliate.EdgeLinks)
	}
	if m.removedpromo_codes != nil {
		edges = append(edges, affiliate.EdgePromoCodes)
	}
	if m.removedattributions != nil {
		edges = append(edges, affiliate.EdgeAttributions)
	}
	if m.removedledger_entries != nil {
		edges = append(edges, affiliate.EdgeLedgerEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AffiliateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case affiliate.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	case affiliate.EdgeLinks:
		ids := make([]ent.Value, 0, len(m.removedlinks))
		for id := range m.removedlinks {
			ids = append(ids, id)
		}
		return ids
	case affiliate.EdgePromoCodes:
		ids := make([]ent.Value, 0, len(m.removedpromo_codes))
		for id := range m.removedpromo_codes {
			ids = append(ids, id)
		}
		return ids
	case affiliate.EdgeAttributions:
		ids := make([]ent.Value, 0, len(m.removedattributions))
		for id := range m.removedattributions {
			ids = append(ids, id)
		}
		return ids
	case affiliate.EdgeLedgerEntries:
		ids := make([]ent.Value, 0, len(m.removedledger_entries))
		for id := range m.removedledger_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AffiliateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.cleareduser {
		edges = append(edges, affiliate.EdgeUser)
	}
	if m.clearedparent {
		edges = append(edges, affiliate.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, affiliate.EdgeChildren)
	}
	if m.clearedlinks {
		edges = append(edges, affiliate.EdgeLinks)
	}
	if m.clearedpromo_codes {
		edges = append(edges, affiliate.EdgePromoCodes)
	}
	if m.clearedattributions {
		edges = append(edges, affiliate.EdgeAttributions)
	}
	if m.clearedledger_entries {
		edges = append(edges, affiliate.EdgeLedgerEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AffiliateMutation) EdgeCleared(name string) bool {
	switch name {
	case affiliate.EdgeUser:
		return m.cleareduser
	case affiliate.EdgeParent:
		return m.clearedparent
	case affiliate.EdgeChildren:
		return m.clearedchildren
	case affiliate.EdgeLinks:
		return m.clearedlinks
	case affiliate.EdgePromoCodes:
		return m.clearedpromo_codes
	case affiliate.EdgeAttributions:
		return m.clearedattributions
	case affiliate.EdgeLedgerEntries:
		return m.clearedledger_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AffiliateMutation) ClearEdge(name string) error {
	switch name {
	case affiliate.EdgeUser:
		m.ClearUser()
		return nil
	case affiliate.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown Affiliate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AffiliateMutation) ResetEdge(name string) error {
	switch name {
	case affiliate.EdgeUser:
		m.ResetUser()
		return nil
	case affiliate.EdgeParent:
		m.ResetParent()
		return nil
	case affiliate.EdgeChildren:
		m.ResetChildren()
		return nil
	case affiliate.EdgeLinks:
		m.ResetLinks()
		return nil
	case affiliate.EdgePromoCodes:
		m.ResetPromoCodes()
		return nil
	case affiliate.EdgeAttributions:
		m.ResetAttributions()
		return nil
	case affiliate.EdgeLedgerEntries:
		m.ResetLedgerEntries()
		return nil
	}
	return fmt.Errorf("unknown Affiliate edge %s", name)
}

// AttributionMutation represents an operation that mutates the Attribution nodes in the graph.
type AttributionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	_type                *attribution.Type
	source               *attribution.Source
	starts_at            *time.Time
	ends_at              *time.Time
	created_at           *time.Time
	clearedFields        map[string]struct{}
	user                 *int
	cleareduser          bool
	affiliate            *int
	clearedaffiliate     bool
	subscriptions        map[int]struct{}
	removedsubscriptions map[int]struct{}
	clearedsubscriptions bool
	done                 bool
	oldValue             func(context.Context) (*Attribution, error)
	predicates           []predicate.Attribution
}

var _ ent.Mutation = (*AttributionMutation)(nil)

// attributionOption allows management of the mutation configuration using functional options.
type attributionOption func(*AttributionMutation)

// newAttributionMutation creates new mutation for the Attribution entity.
func newAttributionMutation(c config, op Op, opts ...attributionOption) *AttributionMutation {
	m := &AttributionMutation{
		config:        c,
		op:            op,
		typ:           TypeAttribution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttributionID sets the ID field of the mutation.
func withAttributionID(id int) attributionOption {
	return func(m *AttributionMutation) {
		var (
			err   error
			once  sync.Once
			value *Attribution
		)
		m.oldValue = func(ctx context.Context) (*Attribution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attribution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttribution sets the old Attribution of the mutation.
func withAttribution(node *Attribution) attributionOption {
	return func(m *AttributionMutation) {
		m.oldValue = func(context.Context) (*Attribution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttributionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttributionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttributionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttributionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attribution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AttributionMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AttributionMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Attribution entity.
// If the Attribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributionMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AttributionMutation) ResetUserID() {
	m.user = nil
}

// SetAffiliateID sets the "affiliate_id" field.
func (m *AttributionMutation) SetAffiliateID(i int) {
	m.affiliate = &i
}

// AffiliateID returns the value of the "affiliate_id" field in the mutation.
func (m *AttributionMutation) AffiliateID() (r int, exists bool) {
	v := m.affiliate
	if v == nil {
		return
	}
	return *v, true
}

// OldAffiliateID returns the old "affiliate_id" field's value of the Attribution entity.
// If the Attribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributionMutation) OldAffiliateID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffiliateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffiliateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffiliateID: %w", err)
	}
	return oldValue.AffiliateID, nil
}

// ResetAffiliateID resets all changes to the "affiliate_id" field.
func (m *AttributionMutation) ResetAffiliateID() {
	m.affiliate = nil
}

// SetType sets the "type" field.
func (m *AttributionMutation) SetType(a attribution.Type) {
	m._type = &a
}

// GetType returns the value of the "type" field in the mutation.
func (m *AttributionMutation) GetType() (r attribution.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Attribution entity.
// If the Attribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributionMutation) OldType(ctx context.Context) (v attribution.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *AttributionMutation) ResetType() {
	m._type = nil
}

// SetSource sets the "source" field.
func (m *AttributionMutation) SetSource(a attribution.Source) {
	m.source = &a
}

// Source returns the value of the "source" field in the mutation.
func (m *AttributionMutation) Source() (r attribution.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Attribution entity.
// If the Attribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributionMutation) OldSource(ctx context.Context) (v attribution.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *AttributionMutation) ResetSource() {
	m.source = nil
}

// SetStartsAt sets the "starts_at" field.
func (m *AttributionMutation) SetStartsAt(t time.Time) {
	m.starts_at = &t
}

// StartsAt returns the value of the "starts_at" field in the mutation.
func (m *AttributionMutation) StartsAt() (r time.Time, exists bool) {
	v := m.starts_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsAt returns the old "starts_at" field's value of the Attribution entity.
// If the Attribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributionMutation) OldStartsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsAt: %w", err)
	}
	return oldValue.StartsAt, nil
}

// ResetStartsAt resets all changes to the "starts_at" field.
func (m *AttributionMutation) ResetStartsAt() {
	m.starts_at = nil
}

// SetEndsAt sets the "ends_at" field.
func (m *AttributionMutation) SetEndsAt(t time.Time) {
	m.ends_at = &t
}

// EndsAt returns the value of the "ends_at" field in the mutation.
func (m *AttributionMutation) EndsAt() (r time.Time, exists bool) {
	v := m.ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsAt returns the old "ends_at" field's value of the Attribution entity.
// If the Attribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributionMutation) OldEndsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsAt: %w", err)
	}
	return oldValue.EndsAt, nil
}

// ResetEndsAt resets all changes to the "ends_at" field.
func (m *AttributionMutation) ResetEndsAt() {
	m.ends_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AttributionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttributionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attribution entity.
// If the Attribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttributionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *AttributionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[attribution.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *AttributionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *AttributionMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *AttributionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearAffiliate clears the "affiliate" edge to the Affiliate entity.
func (m *AttributionMutation) ClearAffiliate() {
	m.clearedaffiliate = true
	m.clearedFields[attribution.FieldAffiliateID] = struct{}{}
}

// AffiliateCleared reports if the "affiliate" edge to the Affiliate entity was cleared.
func (m *AttributionMutation) AffiliateCleared() bool {
	return m.clearedaffiliate
}

// AffiliateIDs returns the "affiliate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AffiliateID instead. It exists only for internal usage by the builders.
func (m *AttributionMutation) AffiliateIDs() (ids []int) {
	if id := m.affiliate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAffiliate resets all changes to the "affiliate" edge.
func (m *AttributionMutation) ResetAffiliate() {
	m.affiliate = nil
	m.clearedaffiliate = false
}

// AddSubscriptionIDs adds the "subscriptions" edge to the BusinessSubscription entity by ids.
func (m *AttributionMutation) AddSubscriptionIDs(ids ...int) {
	if m.subscriptions == nil {
		m.subscriptions = make(map[int]struct{})
	}
	for i := range ids {
		m.subscriptions[ids[i]] = struct{}{}
	}
}

// ClearSubscriptions clears the "subscriptions" edge to the BusinessSubscription entity.
func (m *AttributionMutation) ClearSubscriptions() {
	m.clearedsubscriptions = true
}

// SubscriptionsCleared reports if the "subscriptions" edge to the BusinessSubscription entity was cleared.
func (m *AttributionMutation) SubscriptionsCleared() bool {
	return m.clearedsubscriptions
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to the BusinessSubscription entity by IDs.
func (m *AttributionMutation) RemoveSubscriptionIDs(ids ...int) {
	if m.removedsubscriptions == nil {
		m.removedsubscriptions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.subscriptions, ids[i])
		m.removedsubscriptions[ids[i]] = struct{}{}
	}
}

// RemovedSubscriptions returns the removed IDs of the "subscriptions" edge to the BusinessSubscription entity.
func (m *AttributionMutation) RemovedSubscriptionsIDs() (ids []int) {
	for id := range m.removedsubscriptions {
		ids = append(ids, id)
	}
	return
}

// SubscriptionsIDs returns the "subscriptions" edge IDs in the mutation.
func (m *AttributionMutation) SubscriptionsIDs() (ids []int) {
	for id := range m.subscriptions {
		ids = append(ids, id)
	}
	return
}

// ResetSubscriptions resets all changes to the "subscriptions" edge.
func (m *AttributionMutation) ResetSubscriptions() {
	m.subscriptions = nil
	m.clearedsubscriptions = false
	m.removedsubscriptions = nil
}

// Where appends a list predicates to the AttributionMutation builder.
func (m *AttributionMutation) Where(ps ...predicate.Attribution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttributionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttributionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attribution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttributionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttributionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attribution).
func (m *AttributionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttributionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user != nil {
		fields = append(fields, attribution.FieldUserID)
	}
	if m.affiliate != nil {
		fields = append(fields, attribution.FieldAffiliateID)
	}
	if m._type != nil {
		fields = append(fields, attribution.FieldType)
	}
	if m.source != nil {
		fields = append(fields, attribution.FieldSource)
	}
	if m.starts_at != nil {
		fields = append(fields, attribution.FieldStartsAt)
	}
	if m.ends_at != nil {
		fields = append(fields, attribution.FieldEndsAt)
	}
	if m.created_at != nil {
		fields = append(fields, attribution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttributionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attribution.FieldUserID:
		return m.UserID()
	case attribution.FieldAffiliateID:
		return m.AffiliateID()
	case attribution.FieldType:
		return m.GetType()
	case attribution.FieldSource:
		return m.Source()
	case attribution.FieldStartsAt:
		return m.StartsAt()
	case attribution.FieldEndsAt:
		return m.EndsAt()
	case attribution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttributionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attribution.FieldUserID:
		return m.OldUserID(ctx)
	case attribution.FieldAffiliateID:
		return m.OldAffiliateID(ctx)
	case attribution.FieldType:
		return m.OldType(ctx)
	case attribution.FieldSource:
		return m.OldSource(ctx)
	case attribution.FieldStartsAt:
		return m.OldStartsAt(ctx)
	case attribution.FieldEndsAt:
		return m.OldEndsAt(ctx)
	case attribution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Attribution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttributionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attribution.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case attribution.FieldAffiliateID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffiliateID(v)
		return nil
	case attribution.FieldType:
		v, ok := value.(attribution.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case attribution.FieldSource:
		v, ok := value.(attribution.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case attribution.FieldStartsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsAt(v)
		return nil
	case attribution.FieldEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsAt(v)
		return nil
	case attribution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Attribution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttributionMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttributionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttributionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Attribution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttributionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttributionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttributionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Attribution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttributionMutation) ResetField(name string) error {
	switch name {
	case attribution.FieldUserID:
		m.ResetUserID()
		return nil
	case attribution.FieldAffiliateID:
		m.ResetAffiliateID()
		return nil
	case attribution.FieldType:
		m.ResetType()
		return nil
	case attribution.FieldSource:
		m.ResetSource()
		return nil
	case attribution.FieldStartsAt:
		m.ResetStartsAt()
		return nil
	case attribution.FieldEndsAt:
		m.ResetEndsAt()
		return nil
	case attribution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Attribution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttributionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.user != nil {
		edges = append(edges, attribution.EdgeUser)
	}
	if m.affiliate != nil {
		edges = append(edges, attribution.EdgeAffiliate)
	}
	if m.subscriptions != nil {
		edges = append(edges, attribution.EdgeSubscriptions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttributionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attribution.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case attribution.EdgeAffiliate:
		if id := m.affiliate; id != nil {
			return []ent.Value{*id}
		}
	case attribution.EdgeSubscriptions:
		ids := make([]ent.Value, 0, len(m.subscriptions))
		for id := range m.subscriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttributionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsubscriptions != nil {
		edges = append(edges, attribution.EdgeSubscriptions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttributionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case attribution.EdgeSubscriptions:
		ids := make([]ent.Value, 0, len(m.removedsubscriptions))
		for id := range m.removedsubscriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttributionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareduser {
		edges = append(edges, attribution.EdgeUser)
	}
	if m.clearedaffiliate {
		edges = append(edges, attribution.EdgeAffiliate)
	}
	if m.clearedsubscriptions {
		edges = append(edges, attribution.EdgeSubscriptions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttributionMutation) EdgeCleared(name string) bool {
	switch name {
	case attribution.EdgeUser:
		return m.cleareduser
	case attribution.EdgeAffiliate:
		return m.clearedaffiliate
	case attribution.EdgeSubscriptions:
		return m.clearedsubscriptions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttributionMutation) ClearEdge(name string) error {
	switch name {
	case attribution.EdgeUser:
		m.ClearUser()
		return nil
	case attribution.EdgeAffiliate:
		m.ClearAffiliate()
		return nil
	}
	return fmt.Errorf("unknown Attribution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttributionMutation) ResetEdge(name string) error {
	switch name {
	case attribution.EdgeUser:
		m.ResetUser()
		return nil
	case attribution.EdgeAffiliate:
		m.ResetAffiliate()
		return nil
	case attribution.EdgeSubscriptions:
		m.ResetSubscriptions()
		return nil
	}
	return fmt.Errorf("unknown Attribution edge %s", name)
}

// BusinessSubscriptionMutation represents an operation that mutates the BusinessSubscription nodes in the graph.
type BusinessSubscriptionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	stripe_subscription_id *string
	user_id                *int
	adduser_id             *int
	fee_cents              *int64
	addfee_cents           *int64
	status                 *businesssubscription.Status
	ends_at                *time.Time
	current_period_start   *time.Time
	current_period_end     *time.Time
	canceled_at            *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	attribution            *int
	clearedattribution     bool
	promo_code             *int
	clearedpromo_code      bool
	ledger_entries         map[int]struct{}
	removedledger_entries  map[int]struct{}
	clearedledger_entries  bool
	done                   bool
	oldValue               func(context.Context) (*BusinessSubscription, error)
	predicates             []predicate.BusinessSubscription
}

var _ ent.Mutation = (*BusinessSubscriptionMutation)(nil)

// businesssubscriptionOption allows management of the mutation configuration using functional options.
type businesssubscriptionOption func(*BusinessSubscriptionMutation)

// newBusinessSubscriptionMutation creates new mutation for the BusinessSubscription entity.
func newBusinessSubscriptionMutation(c config, op Op, opts ...businesssubscriptionOption) *BusinessSubscriptionMutation {
	m := &BusinessSubscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypeBusinessSubscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusinessSubscriptionID sets the ID field of the mutation.
func withBusinessSubscriptionID(id int) businesssubscriptionOption {
	return func(m *BusinessSubscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *BusinessSubscription
		)
		m.oldValue = func(ctx context.Context) (*BusinessSubscription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BusinessSubscription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusinessSubscription sets the old BusinessSubscription of the mutation.
func withBusinessSubscription(node *BusinessSubscription) businesssubscriptionOption {
	return func(m *BusinessSubscriptionMutation) {
		m.oldValue = func(context.Context) (*BusinessSubscription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusinessSubscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusinessSubscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusinessSubscriptionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusinessSubscriptionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BusinessSubscription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (m *BusinessSubscriptionMutation) SetStripeSubscriptionID(s string) {
	m.stripe_subscription_id = &s
}

// StripeSubscriptionID returns the value of the "stripe_subscription_id" field in the mutation.
func (m *BusinessSubscriptionMutation) StripeSubscriptionID() (r string, exists bool) {
	v := m.stripe_subscription_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeSubscriptionID returns the old "stripe_subscription_id" field's value of the BusinessSubscription entity.
// If the BusinessSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessSubscriptionMutation) OldStripeSubscriptionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeSubscriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeSubscriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeSubscriptionID: %w", err)
	}
	return oldValue.StripeSubscriptionID, nil
}

// ResetStripeSubscriptionID resets all changes to the "stripe_subscription_id" field.
func (m *BusinessSubscriptionMutation) ResetStripeSubscriptionID() {
	m.stripe_subscription_id = nil
}

// SetUserID sets the "user_id" field.
func (m *BusinessSubscriptionMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BusinessSubscriptionMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BusinessSubscription entity.
// If the BusinessSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessSubscriptionMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *BusinessSubscriptionMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *BusinessSubscriptionMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BusinessSubscriptionMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetAttributionID sets the "attribution_id" field.
func (m *BusinessSubscriptionMutation) SetAttributionID(i int) {
	m.attribution = &i
}

// AttributionID returns the value of the "attribution_id" field in the mutation.
func (m *BusinessSubscriptionMutation) AttributionID() (r int, exists bool) {
	v := m.attribution
	if v == nil {
		return
	}
	return *v, true
}

// OldAttributionID returns the old "attribution_id" field's value of the BusinessSubscription entity.
// If the BusinessSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessSubscriptionMutation) OldAttributionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttributionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttributionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttributionID: %w", err)
	}
	return oldValue.AttributionID, nil
}

// ClearAttributionID clears the value of the "attribution_id" field.
func (m *BusinessSubscriptionMutation) ClearAttributionID() {
	m.attribution = nil
	m.clearedFields[businesssubscription.FieldAttributionID] = struct{}{}
}

// AttributionIDCleared returns if the "attribution_id" field was cleared in this mutation.
func (m *BusinessSubscriptionMutation) AttributionIDCleared() bool {
	_, ok := m.clearedFields[businesssubscription.FieldAttributionID]
	return ok
}

// ResetAttributionID resets all changes to the "attribution_id" field.
func (m *BusinessSubscriptionMutation) ResetAttributionID() {
	m.attribution = nil
	delete(m.clearedFields, businesssubscription.FieldAttributionID)
}

// SetPromoCodeID sets the "promo_code_id" field.
func (m *BusinessSubscriptionMutation) SetPromoCodeID(i int) {
	m.promo_code = &i
}

// PromoCodeID returns the value of the "promo_code_id" field in the mutation.
func (m *BusinessSubscriptionMutation) PromoCodeID() (r int, exists bool) {
	v := m.promo_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPromoCodeID returns the old "promo_code_id" field's value of the BusinessSubscription entity.
// If the BusinessSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessSubscriptionMutation) OldPromoCodeID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromoCodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromoCodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromoCodeID: %w", err)
	}
	return oldValue.PromoCodeID, nil
}

// ClearPromoCodeID clears the value of the "promo_code_id" field.
func (m *BusinessSubscriptionMutation) ClearPromoCodeID() {
	m.promo_code = nil
	m.clearedFields[businesssubscription.FieldPromoCodeID] = struct{}{}
}

// PromoCodeIDCleared returns if the "promo_code_id" field was cleared in this mutation.
func (m *BusinessSubscriptionMutation) PromoCodeIDCleared() bool {
	_, ok := m.clearedFields[businesssubscription.FieldPromoCodeID]
	return ok
}

// ResetPromoCodeID resets all changes to the "promo_code_id" field.
func (m *BusinessSubscriptionMutation) ResetPromoCodeID() {
	m.promo_code = nil
	delete(m.clearedFields, businesssubscription.FieldPromoCodeID)
}

// SetFeeCents sets the "fee_cents" field.
func (m *BusinessSubscriptionMutation) SetFeeCents(i int64) {
	m.fee_cents = &i
	m.addfee_cents = nil
}

// FeeCents returns the value of the "fee_cents" field in the mutation.
func (m *BusinessSubscriptionMutation) FeeCents() (r int64, exists bool) {
	v := m.fee_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldFeeCents returns the old "fee_cents" field's value of the BusinessSubscription entity.
// If the BusinessSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessSubscriptionMutation) OldFeeCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeeCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeeCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeeCents: %w", err)
	}
	return oldValue.FeeCents, nil
}

// AddFeeCents adds i to the "fee_cents" field.
func (m *BusinessSubscriptionMutation) AddFeeCents(i int64) {
	if m.addfee_cents != nil {
		*m.addfee_cents += i
	} else {
		m.addfee_cents = &i
	}
}

// AddedFeeCents returns the value that was added to the "fee_cents" field in this mutation.
func (m *BusinessSubscriptionMutation) AddedFeeCents() (r int64, exists bool) {
	v := m.addfee_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetFeeCents resets all changes to the "fee_cents" field.
func (m *BusinessSubscriptionMutation) ResetFeeCents() {
	m.fee_cents = nil
	m.addfee_cents = nil
}

// SetStatus sets the "status" field.
func (m *BusinessSubscriptionMutation) SetStatus(b businesssubscription.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BusinessSubscriptionMutation) Status() (r businesssubscription.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BusinessSubscription entity.
// If the BusinessSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessSubscriptionMutation) OldStatus(ctx context.Context) (v businesssubscription.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BusinessSubscriptionMutation) ResetStatus() {
	m.status = nil
}

// SetEndsAt sets the "ends_at" field.
func (m *BusinessSubscriptionMutation) SetEndsAt(t time.Time) {
	m.ends_at = &t
}

// EndsAt returns the value of the "ends_at" field in the mutation.
func (m *BusinessSubscriptionMutation) EndsAt() (r time.Time, exists bool) {
	v := m.ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsAt returns the old "ends_at" field's value of the BusinessSubscription entity.
// If the BusinessSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessSubscriptionMutation) OldEndsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsAt: %w", err)
	}
	return oldValue.EndsAt, nil
}

// ResetEndsAt resets all changes to the "ends_at" field.
func (m *BusinessSubscriptionMutation) ResetEndsAt() {
	m.ends_at = nil
}

// SetCurrentPeriodStart sets the "current_period_start" field.
func (m *BusinessSubscriptionMutation) SetCurrentPeriodStart(t time.Time) {
	m.current_period_start = &t
}

// CurrentPeriodStart returns the value of the "current_period_start" field in the mutation.
func (m *BusinessSubscriptionMutation) CurrentPeriodStart() (r time.Time, exists bool) {
	v := m.current_period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPeriodStart returns the old "current_period_start" field's value of the BusinessSubscription entity.
// If the BusinessSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessSubscriptionMutation) OldCurrentPeriodStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPeriodStart: %w", err)
	}
	return oldValue.CurrentPeriodStart, nil
}

// ClearCurrentPeriodStart clears the value of the "current_period_start" field.
func (m *BusinessSubscriptionMutation) ClearCurrentPeriodStart() {
	m.current_period_start = nil
	m.clearedFields[businesssubscription.FieldCurrentPeriodStart] = struct{}{}
}

// CurrentPeriodStartCleared returns if the "current_period_start" field was cleared in this mutation.
func (m *BusinessSubscriptionMutation) CurrentPeriodStartCleared() bool {
	_, ok := m.clearedFields[businesssubscription.FieldCurrentPeriodStart]
	return ok
}

// ResetCurrentPeriodStart resets all changes to the "current_period_start" field.
func (m *BusinessSubscriptionMutation) ResetCurrentPeriodStart() {
	m.current_period_start = nil
	delete(m.clearedFields, businesssubscription.FieldCurrentPeriodStart)
}

// SetCurrentPeriodEnd sets the "current_period_end" field.
func (m *BusinessSubscriptionMutation) SetCurrentPeriodEnd(t time.Time) {
	m.current_period_end = &t
}

// CurrentPeriodEnd returns the value of the "current_period_end" field in the mutation.
func (m *BusinessSubscriptionMutation) CurrentPeriodEnd() (r time.Time, exists bool) {
	v := m.current_period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPeriodEnd returns the old "current_period_end" field's value of the BusinessSubscription entity.
// If the BusinessSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessSubscriptionMutation) OldCurrentPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPeriodEnd: %w", err)
	}
	return oldValue.CurrentPeriodEnd, nil
}

// ClearCurrentPeriodEnd clears the value of the "current_period_end" field.
func (m *BusinessSubscriptionMutation) ClearCurrentPeriodEnd() {
	m.current_period_end = nil
	m.clearedFields[businesssubscription.FieldCurrentPeriodEnd] = struct{}{}
}

// CurrentPeriodEndCleared returns if the "current_period_end" field was cleared in this mutation.
func (m *BusinessSubscriptionMutation) CurrentPeriodEndCleared() bool {
	_, ok := m.clearedFields[businesssubscription.FieldCurrentPeriodEnd]
	return ok
}

// ResetCurrentPeriodEnd resets all changes to the "current_period_end" field.
func (m *BusinessSubscriptionMutation) ResetCurrentPeriodEnd() {
	m.current_period_end = nil
	delete(m.clearedFields, businesssubscription.FieldCurrentPeriodEnd)
}

// SetCanceledAt sets the "canceled_at" field.
func (m *BusinessSubscriptionMutation) SetCanceledAt(t time.Time) {
	m.canceled_at = &t
}

// CanceledAt returns the value of the "canceled_at" field in the mutation.
func (m *BusinessSubscriptionMutation) CanceledAt() (r time.Time, exists bool) {
	v := m.canceled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCanceledAt returns the old "canceled_at" field's value of the BusinessSubscription entity.
// If the BusinessSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessSubscriptionMutation) OldCanceledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanceledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanceledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanceledAt: %w", err)
	}
	return oldValue.CanceledAt, nil
}

// ClearCanceledAt clears the value of the "canceled_at" field.
func (m *BusinessSubscriptionMutation) ClearCanceledAt() {
	m.canceled_at = nil
	m.clearedFields[businesssubscription.FieldCanceledAt] = struct{}{}
}

// CanceledAtCleared returns if the "canceled_at" field was cleared in this mutation.
func (m *BusinessSubscriptionMutation) CanceledAtCleared() bool {
	_, ok := m.clearedFields[businesssubscription.FieldCanceledAt]
	return ok
}

// ResetCanceledAt resets all changes to the "canceled_at" field.
func (m *BusinessSubscriptionMutation) ResetCanceledAt() {
	m.canceled_at = nil
	delete(m.clearedFields, businesssubscription.FieldCanceledAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *BusinessSubscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BusinessSubscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BusinessSubscription entity.
// If the BusinessSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessSubscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BusinessSubscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BusinessSubscriptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BusinessSubscriptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BusinessSubscription entity.
// If the BusinessSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessSubscriptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BusinessSubscriptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAttribution clears the "attribution" edge to the Attribution entity.
func (m *BusinessSubscriptionMutation) ClearAttribution() {
	m.clearedattribution = true
	m.clearedFields[businesssubscription.FieldAttributionID] = struct{}{}
}

// AttributionCleared reports if the "attribution" edge to the Attribution entity was cleared.
func (m *BusinessSubscriptionMutation) AttributionCleared() bool {
	return m.AttributionIDCleared() || m.clearedattribution
}

// AttributionIDs returns the "attribution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AttributionID instead. It exists only for internal usage by the builders.
func (m *BusinessSubscriptionMutation) AttributionIDs() (ids []int) {
	if id := m.attribution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAttribution resets all changes to the "attribution" edge.
func (m *BusinessSubscriptionMutation) ResetAttribution() {
	m.attribution = nil
	m.clearedattribution = false
}

// ClearPromoCode clears the "promo_code" edge to the PromoCode entity.
func (m *BusinessSubscriptionMutation) ClearPromoCode() {
	m.clearedpromo_code = true
	m.clearedFields[businesssubscription.FieldPromoCodeID] = struct{}{}
}

// PromoCodeCleared reports if the "promo_code" edge to the PromoCode entity was cleared.
func (m *BusinessSubscriptionMutation) PromoCodeCleared() bool {
	return m.PromoCodeIDCleared() || m.clearedpromo_code
}

// PromoCodeIDs returns the "promo_code" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PromoCodeID instead. It exists only for internal usage by the builders.
func (m *BusinessSubscriptionMutation) PromoCodeIDs() (ids []int) {
	if id := m.promo_code; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPromoCode resets all changes to the "promo_code" edge.
func (m *BusinessSubscriptionMutation) ResetPromoCode() {
	m.promo_code = nil
	m.clearedpromo_code = false
}

// AddLedgerEntryIDs adds the "ledger_entries" edge to the LedgerEntry entity by ids.
func (m *BusinessSubscriptionMutation) AddLedgerEntryIDs(ids ...int) {
	if m.ledger_entries == nil {
		m.ledger_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.ledger_entries[ids[i]] = struct{}{}
	}
}

// ClearLedgerEntries clears the "ledger_entries" edge to the LedgerEntry entity.
func (m *BusinessSubscriptionMutation) ClearLedgerEntries() {
	m.clearedledger_entries = true
}

// LedgerEntriesCleared reports if the "ledger_entries" edge to the LedgerEntry entity was cleared.
func (m *BusinessSubscriptionMutation) LedgerEntriesCleared() bool {
	return m.clearedledger_entries
}

// RemoveLedgerEntryIDs removes the "ledger_entries" edge to the LedgerEntry entity by IDs.
func (m *BusinessSubscriptionMutation) RemoveLedgerEntryIDs(ids ...int) {
	if m.removedledger_entries == nil {
		m.removedledger_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.ledger_entries, ids[i])
		m.removedledger_entries[ids[i]] = struct{}{}
	}
}

// RemovedLedgerEntries returns the removed IDs of the "ledger_entries" edge to the LedgerEntry entity.
func (m *BusinessSubscriptionMutation) RemovedLedgerEntriesIDs() (ids []int) {
	for id := range m.removedledger_entries {
		ids = append(ids, id)
	}
	return
}

// LedgerEntriesIDs returns the "ledger_entries" edge IDs in the mutation.
func (m *BusinessSubscriptionMutation) LedgerEntriesIDs() (ids []int) {
	for id := range m.ledger_entries {
		ids = append(ids, id)
	}
	return
}

// ResetLedgerEntries resets all changes to the "ledger_entries" edge.
func (m *BusinessSubscriptionMutation) ResetLedgerEntries() {
	m.ledger_entries = nil
	m.clearedledger_entries = false
	m.removedledger_entries = nil
}

// Where appends a list predicates to the BusinessSubscriptionMutation builder.
func (m *BusinessSubscriptionMutation) Where(ps ...predicate.BusinessSubscription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusinessSubscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusinessSubscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BusinessSubscription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusinessSubscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusinessSubscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BusinessSubscription).
func (m *BusinessSubscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusinessSubscriptionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.stripe_subscription_id != nil {
		fields = append(fields, businesssubscription.FieldStripeSubscriptionID)
	}
	if m.user_id != nil {
		fields = append(fields, businesssubscription.FieldUserID)
	}
	if m.attribution != nil {
		fields = append(fields, businesssubscription.FieldAttributionID)
	}
	if m.promo_code != nil {
		fields = append(fields, businesssubscription.FieldPromoCodeID)
	}
	if m.fee_cents != nil {
		fields = append(fields, businesssubscription.FieldFeeCents)
	}
	if m.status != nil {
		fields = append(fields, businesssubscription.FieldStatus)
	}
	if m.ends_at != nil {
		fields = append(fields, businesssubscription.FieldEndsAt)
	}
	if m.current_period_start != nil {
		fields = append(fields, businesssubscription.FieldCurrentPeriodStart)
	}
	if m.current_period_end != nil {
		fields = append(fields, businesssubscription.FieldCurrentPeriodEnd)
	}
	if m.canceled_at != nil {
		fields = append(fields, businesssubscription.FieldCanceledAt)
	}
	if m.created_at != nil {
		fields = append(fields, businesssubscription.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, businesssubscription.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusinessSubscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case businesssubscription.FieldStripeSubscriptionID:
		return m.StripeSubscriptionID()
	case businesssubscription.FieldUserID:
		return m.UserID()
	case businesssubscription.FieldAttributionID:
		return m.AttributionID()
	case businesssubscription.FieldPromoCodeID:
		return m.PromoCodeID()
	case businesssubscription.FieldFeeCents:
		return m.FeeCents()
	case businesssubscription.FieldStatus:
		return m.Status()
	case businesssubscription.FieldEndsAt:
		return m.EndsAt()
	case businesssubscription.FieldCurrentPeriodStart:
		return m.CurrentPeriodStart()
	case businesssubscription.FieldCurrentPeriodEnd:
		return m.CurrentPeriodEnd()
	case businesssubscription.FieldCanceledAt:
		return m.CanceledAt()
	case businesssubscription.FieldCreatedAt:
		return m.CreatedAt()
	case businesssubscription.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusinessSubscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case businesssubscription.FieldStripeSubscriptionID:
		return m.OldStripeSubscriptionID(ctx)
	case businesssubscription.FieldUserID:
		return m.OldUserID(ctx)
	case businesssubscription.FieldAttributionID:
		return m.OldAttributionID(ctx)
	case businesssubscription.FieldPromoCodeID:
		return m.OldPromoCodeID(ctx)
	case businesssubscription.FieldFeeCents:
		return m.OldFeeCents(ctx)
	case businesssubscription.FieldStatus:
		return m.OldStatus(ctx)
	case businesssubscription.FieldEndsAt:
		return m.OldEndsAt(ctx)
	case businesssubscription.FieldCurrentPeriodStart:
		return m.OldCurrentPeriodStart(ctx)
	case businesssubscription.FieldCurrentPeriodEnd:
		return m.OldCurrentPeriodEnd(ctx)
	case businesssubscription.FieldCanceledAt:
		return m.OldCanceledAt(ctx)
	case businesssubscription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case businesssubscription.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BusinessSubscription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessSubscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case businesssubscription.FieldStripeSubscriptionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeSubscriptionID(v)
		return nil
	case businesssubscription.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case businesssubscription.FieldAttributionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttributionID(v)
		return nil
	case businesssubscription.FieldPromoCodeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromoCodeID(v)
		return nil
	case businesssubscription.FieldFeeCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeeCents(v)
		return nil
	case businesssubscription.FieldStatus:
		v, ok := value.(businesssubscription.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case businesssubscription.FieldEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsAt(v)
		return nil
	case businesssubscription.FieldCurrentPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPeriodStart(v)
		return nil
	case businesssubscription.FieldCurrentPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPeriodEnd(v)
		return nil
	case businesssubscription.FieldCanceledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanceledAt(v)
		return nil
	case businesssubscription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case businesssubscription.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BusinessSubscription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusinessSubscriptionMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, businesssubscription.FieldUserID)
	}
	if m.addfee_cents != nil {
		fields = append(fields, businesssubscription.FieldFeeCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusinessSubscriptionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case businesssubscription.FieldUserID:
		return m.AddedUserID()
	case businesssubscription.FieldFeeCents:
		return m.AddedFeeCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessSubscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case businesssubscription.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case businesssubscription.FieldFeeCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFeeCents(v)
		return nil
	}
	return fmt.Errorf("unknown BusinessSubscription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusinessSubscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(businesssubscription.FieldAttributionID) {
		fields = append(fields, businesssubscription.FieldAttributionID)
	}
	if m.FieldCleared(businesssubscription.FieldPromoCodeID) {
		fields = append(fields, businesssubscription.FieldPromoCodeID)
	}
	if m.FieldCleared(businesssubscription.FieldCurrentPeriodStart) {
		fields = append(fields, businesssubscription.FieldCurrentPeriodStart)
	}
	if m.FieldCleared(businesssubscription.FieldCurrentPeriodEnd) {
		fields = append(fields, businesssubscription.FieldCurrentPeriodEnd)
	}
	if m.FieldCleared(businesssubscription.FieldCanceledAt) {
		fields = append(fields, businesssubscription.FieldCanceledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusinessSubscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusinessSubscriptionMutation) ClearField(name string) error {
	switch name {
	case businesssubscription.FieldAttributionID:
		m.ClearAttributionID()
		return nil
	case businesssubscription.FieldPromoCodeID:
		m.ClearPromoCodeID()
		return nil
	case businesssubscription.FieldCurrentPeriodStart:
		m.ClearCurrentPeriodStart()
		return nil
	case businesssubscription.FieldCurrentPeriodEnd:
		m.ClearCurrentPeriodEnd()
		return nil
	case businesssubscription.FieldCanceledAt:
		m.ClearCanceledAt()
		return nil
	}
	return fmt.Errorf("unknown BusinessSubscription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusinessSubscriptionMutation) ResetField(name string) error {
	switch name {
	case businesssubscription.FieldStripeSubscriptionID:
		m.ResetStripeSubscriptionID()
		return nil
	case businesssubscription.FieldUserID:
		m.ResetUserID()
		return nil
	case businesssubscription.FieldAttributionID:
		m.ResetAttributionID()
		return nil
	case businesssubscription.FieldPromoCodeID:
		m.ResetPromoCodeID()
		return nil
	case businesssubscription.FieldFeeCents:
		m.ResetFeeCents()
		return nil
	case businesssubscription.FieldStatus:
		m.ResetStatus()
		return nil
	case businesssubscription.FieldEndsAt:
		m.ResetEndsAt()
		return nil
	case businesssubscription.FieldCurrentPeriodStart:
		m.ResetCurrentPeriodStart()
		return nil
	case businesssubscription.FieldCurrentPeriodEnd:
		m.ResetCurrentPeriodEnd()
		return nil
	case businesssubscription.FieldCanceledAt:
		m.ResetCanceledAt()
		return nil
	case businesssubscription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case businesssubscription.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BusinessSubscription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusinessSubscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.attribution != nil {
		edges = append(edges, businesssubscription.EdgeAttribution)
	}
	if m.promo_code != nil {
		edges = append(edges, businesssubscription.EdgePromoCode)
	}
	if m.ledger_entries != nil {
		edges = append(edges, businesssubscription.EdgeLedgerEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusinessSubscriptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case businesssubscription.EdgeAttribution:
		if id := m.attribution; id != nil {
			return []ent.Value{*id}
		}
	case businesssubscription.EdgePromoCode:
		if id := m.promo_code; id != nil {
			return []ent.Value{*id}
		}
	case businesssubscription.EdgeLedgerEntries:
		ids := make([]ent.Value, 0, len(m.ledger_entries))
		for id := range m.ledger_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusinessSubscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedledger_entries != nil {
		edges = append(edges, businesssubscription.EdgeLedgerEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusinessSubscriptionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case businesssubscription.EdgeLedgerEntries:
		ids := make([]ent.Value, 0, len(m.removedledger_entries))
		for id := range m.removedledger_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusinessSubscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedattribution {
		edges = append(edges, businesssubscription.EdgeAttribution)
	}
	if m.clearedpromo_code {
		edges = append(edges, businesssubscription.EdgePromoCode)
	}
	if m.clearedledger_entries {
		edges = append(edges, businesssubscription.EdgeLedgerEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusinessSubscriptionMutation) EdgeCleared(name string) bool {
	switch name {
	case businesssubscription.EdgeAttribution:
		return m.clearedattribution
	case businesssubscription.EdgePromoCode:
		return m.clearedpromo_code
	case businesssubscription.EdgeLedgerEntries:
		return m.clearedledger_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusinessSubscriptionMutation) ClearEdge(name string) error {
	switch name {
	case businesssubscription.EdgeAttribution:
		m.ClearAttribution()
		return nil
	case businesssubscription.EdgePromoCode:
		m.ClearPromoCode()
		return nil
	}
	return fmt.Errorf("unknown BusinessSubscription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusinessSubscriptionMutation) ResetEdge(name string) error {
	switch name {
	case businesssubscription.EdgeAttribution:
		m.ResetAttribution()
		return nil
	case businesssubscription.EdgePromoCode:
		m.ResetPromoCode()
		return nil
	case businesssubscription.EdgeLedgerEntries:
		m.ResetLedgerEntries()
		return nil
	}
	return fmt.Errorf("unknown BusinessSubscription edge %s", name)
}

// LedgerEntryMutation represents an operation that mutates the LedgerEntry nodes in the graph.
type LedgerEntryMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	event_id             *string
	event_type           *ledgerentry.EventType
	amount_cents         *int64
	addamount_cents      *int64
	base_amount_cents    *int64
	addbase_amount_cents *int64
	currency             *string
	status               *ledgerentry.Status
	available_at         *time.Time
	metadata             *map[string]string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	affiliate            *int
	clearedaffiliate     bool
	subscription         *int
	clearedsubscription  bool
	done                 bool
	oldValue             func(context.Context) (*LedgerEntry, error)
	predicates           []predicate.LedgerEntry
}

var _ ent.Mutation = (*LedgerEntryMutation)(nil)

// ledgerentryOption allows management of the mutation configuration using functional options.
type ledgerentryOption func(*LedgerEntryMutation)

// newLedgerEntryMutation creates new mutation for the LedgerEntry entity.
func newLedgerEntryMutation(c config, op Op, opts ...ledgerentryOption) *LedgerEntryMutation {
	m := &LedgerEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeLedgerEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLedgerEntryID sets the ID field of the mutation.
func withLedgerEntryID(id int) ledgerentryOption {
	return func(m *LedgerEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *LedgerEntry
		)
		m.oldValue = func(ctx context.Context) (*LedgerEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LedgerEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLedgerEntry sets the old LedgerEntry of the mutation.
func withLedgerEntry(node *LedgerEntry) ledgerentryOption {
	return func(m *LedgerEntryMutation) {
		m.oldValue = func(context.Context) (*LedgerEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LedgerEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LedgerEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LedgerEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LedgerEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LedgerEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *LedgerEntryMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *LedgerEntryMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *LedgerEntryMutation) ResetEventID() {
	m.event_id = nil
}

// SetEventType sets the "event_type" field.
func (m *LedgerEntryMutation) SetEventType(lt ledgerentry.EventType) {
	m.event_type = &lt
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *LedgerEntryMutation) EventType() (r ledgerentry.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldEventType(ctx context.Context) (v ledgerentry.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *LedgerEntryMutation) ResetEventType() {
	m.event_type = nil
}

// SetAffiliateID sets the "affiliate_id" field.
func (m *LedgerEntryMutation) SetAffiliateID(i int) {
	m.affiliate = &i
}

// AffiliateID returns the value of the "affiliate_id" field in the mutation.
func (m *LedgerEntryMutation) AffiliateID() (r int, exists bool) {
	v := m.affiliate
	if v == nil {
		return
	}
	return *v, true
}

// OldAffiliateID returns the old "affiliate_id" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldAffiliateID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffiliateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffiliateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffiliateID: %w", err)
	}
	return oldValue.AffiliateID, nil
}

// ResetAffiliateID resets all changes to the "affiliate_id" field.
func (m *LedgerEntryMutation) ResetAffiliateID() {
	m.affiliate = nil
}

// SetAmountCents sets the "amount_cents" field.
func (m *LedgerEntryMutation) SetAmountCents(i int64) {
	m.amount_cents = &i
	m.addamount_cents = nil
}

// AmountCents returns the value of the "amount_cents" field in the mutation.
func (m *LedgerEntryMutation) AmountCents() (r int64, exists bool) {
	v := m.amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountCents returns the old "amount_cents" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldAmountCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountCents: %w", err)
	}
	return oldValue.AmountCents, nil
}

// AddAmountCents adds i to the "amount_cents" field.
func (m *LedgerEntryMutation) AddAmountCents(i int64) {
	if m.addamount_cents != nil {
		*m.addamount_cents += i
	} else {
		m.addamount_cents = &i
	}
}

// AddedAmountCents returns the value that was added to the "amount_cents" field in this mutation.
func (m *LedgerEntryMutation) AddedAmountCents() (r int64, exists bool) {
	v := m.addamount_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountCents resets all changes to the "amount_cents" field.
func (m *LedgerEntryMutation) ResetAmountCents() {
	m.amount_cents = nil
	m.addamount_cents = nil
}

// SetBaseAmountCents sets the "base_amount_cents" field.
func (m *LedgerEntryMutation) SetBaseAmountCents(i int64) {
	m.base_amount_cents = &i
	m.addbase_amount_cents = nil
}

// BaseAmountCents returns the value of the "base_amount_cents" field in the mutation.
func (m *LedgerEntryMutation) BaseAmountCents() (r int64, exists bool) {
	v := m.base_amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseAmountCents returns the old "base_amount_cents" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldBaseAmountCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseAmountCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseAmountCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseAmountCents: %w", err)
	}
	return oldValue.BaseAmountCents, nil
}

// AddBaseAmountCents adds i to the "base_amount_cents" field.
func (m *LedgerEntryMutation) AddBaseAmountCents(i int64) {
	if m.addbase_amount_cents != nil {
		*m.addbase_amount_cents += i
	} else {
		m.addbase_amount_cents = &i
	}
}

// AddedBaseAmountCents returns the value that was added to the "base_amount_cents" field in this mutation.
func (m *LedgerEntryMutation) AddedBaseAmountCents() (r int64, exists bool) {
	v := m.addbase_amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaseAmountCents resets all changes to the "base_amount_cents" field.
func (m *LedgerEntryMutation) ResetBaseAmountCents() {
	m.base_amount_cents = nil
	m.addbase_amount_cents = nil
}

// SetCurrency sets the "currency" field.
func (m *LedgerEntryMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *LedgerEntryMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *LedgerEntryMutation) ResetCurrency() {
	m.currency = nil
}

// SetStatus sets the "status" field.
func (m *LedgerEntryMutation) SetStatus(l ledgerentry.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LedgerEntryMutation) Status() (r ledgerentry.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldStatus(ctx context.Context) (v ledgerentry.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LedgerEntryMutation) ResetStatus() {
	m.status = nil
}

// SetAvailableAt sets the "available_at" field.
func (m *LedgerEntryMutation) SetAvailableAt(t time.Time) {
	m.available_at = &t
}

// AvailableAt returns the value of the "available_at" field in the mutation.
func (m *LedgerEntryMutation) AvailableAt() (r time.Time, exists bool) {
	v := m.available_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableAt returns the old "available_at" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldAvailableAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableAt: %w", err)
	}
	return oldValue.AvailableAt, nil
}

// ClearAvailableAt clears the value of the "available_at" field.
func (m *LedgerEntryMutation) ClearAvailableAt() {
	m.available_at = nil
	m.clearedFields[ledgerentry.FieldAvailableAt] = struct{}{}
}

// AvailableAtCleared returns if the "available_at" field was cleared in this mutation.
func (m *LedgerEntryMutation) AvailableAtCleared() bool {
	_, ok := m.clearedFields[ledgerentry.FieldAvailableAt]
	return ok
}

// ResetAvailableAt resets all changes to the "available_at" field.
func (m *LedgerEntryMutation) ResetAvailableAt() {
	m.available_at = nil
	delete(m.clearedFields, ledgerentry.FieldAvailableAt)
}

// SetSubscriptionID sets the "subscription_id" field.
func (m *LedgerEntryMutation) SetSubscriptionID(i int) {
	m.subscription = &i
}

// SubscriptionID returns the value of the "subscription_id" field in the mutation.
func (m *LedgerEntryMutation) SubscriptionID() (r int, exists bool) {
	v := m.subscription
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionID returns the old "subscription_id" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldSubscriptionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionID: %w", err)
	}
	return oldValue.SubscriptionID, nil
}

// ClearSubscriptionID clears the value of the "subscription_id" field.
func (m *LedgerEntryMutation) ClearSubscriptionID() {
	m.subscription = nil
	m.clearedFields[ledgerentry.FieldSubscriptionID] = struct{}{}
}

// SubscriptionIDCleared returns if the "subscription_id" field was cleared in this mutation.
func (m *LedgerEntryMutation) SubscriptionIDCleared() bool {
	_, ok := m.clearedFields[ledgerentry.FieldSubscriptionID]
	return ok
}

// ResetSubscriptionID resets all changes to the "subscription_id" field.
func (m *LedgerEntryMutation) ResetSubscriptionID() {
	m.subscription = nil
	delete(m.clearedFields, ledgerentry.FieldSubscriptionID)
}

// SetMetadata sets the "metadata" field.
func (m *LedgerEntryMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *LedgerEntryMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *LedgerEntryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[ledgerentry.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *LedgerEntryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[ledgerentry.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *LedgerEntryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, ledgerentry.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *LedgerEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LedgerEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LedgerEntry entity.
// If the LedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LedgerEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LedgerEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAffiliate clears the "affiliate" edge to the Affiliate entity.
func (m *LedgerEntryMutation) ClearAffiliate() {
	m.clearedaffiliate = true
	m.clearedFields[ledgerentry.FieldAffiliateID] = struct{}{}
}

// AffiliateCleared reports if the "affiliate" edge to the Affiliate entity was cleared.
func (m *LedgerEntryMutation) AffiliateCleared() bool {
	return m.clearedaffiliate
}

// AffiliateIDs returns the "affiliate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AffiliateID instead. It exists only for internal usage by the builders.
func (m *LedgerEntryMutation) AffiliateIDs() (ids []int) {
	if id := m.affiliate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAffiliate resets all changes to the "affiliate" edge.
func (m *LedgerEntryMutation) ResetAffiliate() {
	m.affiliate = nil
	m.clearedaffiliate = false
}

// ClearSubscription clears the "subscription" edge to the BusinessSubscription entity.
func (m *LedgerEntryMutation) ClearSubscription() {
	m.clearedsubscription = true
	m.clearedFields[ledgerentry.FieldSubscriptionID] = struct{}{}
}

// SubscriptionCleared reports if the "subscription" edge to the BusinessSubscription entity was cleared.
func (m *LedgerEntryMutation) SubscriptionCleared() bool {
	return m.SubscriptionIDCleared() || m.clearedsubscription
}

// SubscriptionIDs returns the "subscription" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubscriptionID instead. It exists only for internal usage by the builders.
func (m *LedgerEntryMutation) SubscriptionIDs() (ids []int) {
	if id := m.subscription; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubscription resets all changes to the "subscription" edge.
func (m *LedgerEntryMutation) ResetSubscription() {
	m.subscription = nil
	m.clearedsubscription = false
}

// Where appends a list predicates to the LedgerEntryMutation builder.
func (m *LedgerEntryMutation) Where(ps ...predicate.LedgerEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LedgerEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LedgerEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LedgerEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LedgerEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LedgerEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LedgerEntry).
func (m *LedgerEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LedgerEntryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.event_id != nil {
		fields = append(fields, ledgerentry.FieldEventID)
	}
	if m.event_type != nil {
		fields = append(fields, ledgerentry.FieldEventType)
	}
	if m.affiliate != nil {
		fields = append(fields, ledgerentry.FieldAffiliateID)
	}
	if m.amount_cents != nil {
		fields = append(fields, ledgerentry.FieldAmountCents)
	}
	if m.base_amount_cents != nil {
		fields = append(fields, ledgerentry.FieldBaseAmountCents)
	}
	if m.currency != nil {
		fields = append(fields, ledgerentry.FieldCurrency)
	}
	if m.status != nil {
		fields = append(fields, ledgerentry.FieldStatus)
	}
	if m.available_at != nil {
		fields = append(fields, ledgerentry.FieldAvailableAt)
	}
	if m.subscription != nil {
		fields = append(fields, ledgerentry.FieldSubscriptionID)
	}
	if m.metadata != nil {
		fields = append(fields, ledgerentry.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, ledgerentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LedgerEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ledgerentry.FieldEventID:
		return m.EventID()
	case ledgerentry.FieldEventType:
		return m.EventType()
	case ledgerentry.FieldAffiliateID:
		return m.AffiliateID()
	case ledgerentry.FieldAmountCents:
		return m.AmountCents()
	case ledgerentry.FieldBaseAmountCents:
		return m.BaseAmountCents()
	case ledgerentry.FieldCurrency:
		return m.Currency()
	case ledgerentry.FieldStatus:
		return m.Status()
	case ledgerentry.FieldAvailableAt:
		return m.AvailableAt()
	case ledgerentry.FieldSubscriptionID:
		return m.SubscriptionID()
	case ledgerentry.FieldMetadata:
		return m.Metadata()
	case ledgerentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LedgerEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ledgerentry.FieldEventID:
		return m.OldEventID(ctx)
	case ledgerentry.FieldEventType:
		return m.OldEventType(ctx)
	case ledgerentry.FieldAffiliateID:
		return m.OldAffiliateID(ctx)
	case ledgerentry.FieldAmountCents:
		return m.OldAmountCents(ctx)
	case ledgerentry.FieldBaseAmountCents:
		return m.OldBaseAmountCents(ctx)
	case ledgerentry.FieldCurrency:
		return m.OldCurrency(ctx)
	case ledgerentry.FieldStatus:
		return m.OldStatus(ctx)
	case ledgerentry.FieldAvailableAt:
		return m.OldAvailableAt(ctx)
	case ledgerentry.FieldSubscriptionID:
		return m.OldSubscriptionID(ctx)
	case ledgerentry.FieldMetadata:
		return m.OldMetadata(ctx)
	case ledgerentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LedgerEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LedgerEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ledgerentry.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case ledgerentry.FieldEventType:
		v, ok := value.(ledgerentry.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case ledgerentry.FieldAffiliateID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffiliateID(v)
		return nil
	case ledgerentry.FieldAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountCents(v)
		return nil
	case ledgerentry.FieldBaseAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseAmountCents(v)
		return nil
	case ledgerentry.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case ledgerentry.FieldStatus:
		v, ok := value.(ledgerentry.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ledgerentry.FieldAvailableAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableAt(v)
		return nil
	case ledgerentry.FieldSubscriptionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionID(v)
		return nil
	case ledgerentry.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case ledgerentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LedgerEntryMutation) AddedFields() []string {
	var fields []string
	if m.addamount_cents != nil {
		fields = append(fields, ledgerentry.FieldAmountCents)
	}
	if m.addbase_amount_cents != nil {
		fields = append(fields, ledgerentry.FieldBaseAmountCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LedgerEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ledgerentry.FieldAmountCents:
		return m.AddedAmountCents()
	case ledgerentry.FieldBaseAmountCents:
		return m.AddedBaseAmountCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LedgerEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ledgerentry.FieldAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountCents(v)
		return nil
	case ledgerentry.FieldBaseAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaseAmountCents(v)
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LedgerEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ledgerentry.FieldAvailableAt) {
		fields = append(fields, ledgerentry.FieldAvailableAt)
	}
	if m.FieldCleared(ledgerentry.FieldSubscriptionID) {
		fields = append(fields, ledgerentry.FieldSubscriptionID)
	}
	if m.FieldCleared(ledgerentry.FieldMetadata) {
		fields = append(fields, ledgerentry.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LedgerEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LedgerEntryMutation) ClearField(name string) error {
	switch name {
	case ledgerentry.FieldAvailableAt:
		m.ClearAvailableAt()
		return nil
	case ledgerentry.FieldSubscriptionID:
		m.ClearSubscriptionID()
		return nil
	case ledgerentry.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LedgerEntryMutation) ResetField(name string) error {
	switch name {
	case ledgerentry.FieldEventID:
		m.ResetEventID()
		return nil
	case ledgerentry.FieldEventType:
		m.ResetEventType()
		return nil
	case ledgerentry.FieldAffiliateID:
		m.ResetAffiliateID()
		return nil
	case ledgerentry.FieldAmountCents:
		m.ResetAmountCents()
		return nil
	case ledgerentry.FieldBaseAmountCents:
		m.ResetBaseAmountCents()
		return nil
	case ledgerentry.FieldCurrency:
		m.ResetCurrency()
		return nil
	case ledgerentry.FieldStatus:
		m.ResetStatus()
		return nil
	case ledgerentry.FieldAvailableAt:
		m.ResetAvailableAt()
		return nil
	case ledgerentry.FieldSubscriptionID:
		m.ResetSubscriptionID()
		return nil
	case ledgerentry.FieldMetadata:
		m.ResetMetadata()
		return nil
	case ledgerentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LedgerEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.affiliate != nil {
		edges = append(edges, ledgerentry.EdgeAffiliate)
	}
	if m.subscription != nil {
		edges = append(edges, ledgerentry.EdgeSubscription)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LedgerEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ledgerentry.EdgeAffiliate:
		if id := m.affiliate; id != nil {
			return []ent.Value{*id}
		}
	case ledgerentry.EdgeSubscription:
		if id := m.subscription; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LedgerEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LedgerEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LedgerEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaffiliate {
		edges = append(edges, ledgerentry.EdgeAffiliate)
	}
	if m.clearedsubscription {
		edges = append(edges, ledgerentry.EdgeSubscription)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LedgerEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case ledgerentry.EdgeAffiliate:
		return m.clearedaffiliate
	case ledgerentry.EdgeSubscription:
		return m.clearedsubscription
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LedgerEntryMutation) ClearEdge(name string) error {
	switch name {
	case ledgerentry.EdgeAffiliate:
		m.ClearAffiliate()
		return nil
	case ledgerentry.EdgeSubscription:
		m.ClearSubscription()
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LedgerEntryMutation) ResetEdge(name string) error {
	switch name {
	case ledgerentry.EdgeAffiliate:
		m.ResetAffiliate()
		return nil
	case ledgerentry.EdgeSubscription:
		m.ResetSubscription()
		return nil
	}
	return fmt.Errorf("unknown LedgerEntry edge %s", name)
}

// PromoCodeMutation represents an operation that mutates the PromoCode nodes in the graph.
type PromoCodeMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	code                  *string
	discount_share_pct    *float64
	adddiscount_share_pct *float64
	active                *bool
	created_at            *time.Time
	clearedFields         map[string]struct{}
	affiliate             *int
	clearedaffiliate      bool
	subscriptions         map[int]struct{}
	removedsubscriptions  map[int]struct{}
	clearedsubscriptions  bool
	done                  bool
	oldValue              func(context.Context) (*PromoCode, error)
	predicates            []predicate.PromoCode
}

var _ ent.Mutation = (*PromoCodeMutation)(nil)

// promocodeOption allows management of the mutation configuration using functional options.
type promocodeOption func(*PromoCodeMutation)

// newPromoCodeMutation creates new mutation for the PromoCode entity.
func newPromoCodeMutation(c config, op Op, opts ...promocodeOption) *PromoCodeMutation {
	m := &PromoCodeMutation{
		config:        c,
		op:            op,
		typ:           TypePromoCode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromoCodeID sets the ID field of the mutation.
func withPromoCodeID(id int) promocodeOption {
	return func(m *PromoCodeMutation) {
		var (
			err   error
			once  sync.Once
			value *PromoCode
		)
		m.oldValue = func(ctx context.Context) (*PromoCode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromoCode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromoCode sets the old PromoCode of the mutation.
func withPromoCode(node *PromoCode) promocodeOption {
	return func(m *PromoCodeMutation) {
		m.oldValue = func(context.Context) (*PromoCode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromoCodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromoCodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromoCodeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromoCodeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromoCode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAffiliateID sets the "affiliate_id" field.
func (m *PromoCodeMutation) SetAffiliateID(i int) {
	m.affiliate = &i
}

// AffiliateID returns the value of the "affiliate_id" field in the mutation.
func (m *PromoCodeMutation) AffiliateID() (r int, exists bool) {
	v := m.affiliate
	if v == nil {
		return
	}
	return *v, true
}

// OldAffiliateID returns the old "affiliate_id" field's value of the PromoCode entity.
// If the PromoCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromoCodeMutation) OldAffiliateID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffiliateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffiliateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffiliateID: %w", err)
	}
	return oldValue.AffiliateID, nil
}

// ResetAffiliateID resets all changes to the "affiliate_id" field.
func (m *PromoCodeMutation) ResetAffiliateID() {
	m.affiliate = nil
}

// SetCode sets the "code" field.
func (m *PromoCodeMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *PromoCodeMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the PromoCode entity.
// If the PromoCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromoCodeMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *PromoCodeMutation) ResetCode() {
	m.code = nil
}

// SetDiscountSharePct sets the "discount_share_pct" field.
func (m *PromoCodeMutation) SetDiscountSharePct(f float64) {
	m.discount_share_pct = &f
	m.adddiscount_share_pct = nil
}

// DiscountSharePct returns the value of the "discount_share_pct" field in the mutation.
func (m *PromoCodeMutation) DiscountSharePct() (r float64, exists bool) {
	v := m.discount_share_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscountSharePct returns the old "discount_share_pct" field's value of the PromoCode entity.
// If the PromoCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromoCodeMutation) OldDiscountSharePct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscountSharePct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscountSharePct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscountSharePct: %w", err)
	}
	return oldValue.DiscountSharePct, nil
}

// AddDiscountSharePct adds f to the "discount_share_pct" field.
func (m *PromoCodeMutation) AddDiscountSharePct(f float64) {
	if m.adddiscount_share_pct != nil {
		*m.adddiscount_share_pct += f
	} else {
		m.adddiscount_share_pct = &f
	}
}

// AddedDiscountSharePct returns the value that was added to the "discount_share_pct" field in this mutation.
func (m *PromoCodeMutation) AddedDiscountSharePct() (r float64, exists bool) {
	v := m.adddiscount_share_pct
	if v == nil {
		return
	}
	return *v, true
}

// ResetDiscountSharePct resets all changes to the "discount_share_pct" field.
func (m *PromoCodeMutation) ResetDiscountSharePct() {
	m.discount_share_pct = nil
	m.adddiscount_share_pct = nil
}

// SetActive sets the "active" field.
func (m *PromoCodeMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *PromoCodeMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the PromoCode entity.
// If the PromoCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromoCodeMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *PromoCodeMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PromoCodeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromoCodeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromoCode entity.
// If the PromoCode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromoCodeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromoCodeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAffiliate clears the "affiliate" edge to the Affiliate entity.
func (m *PromoCodeMutation) ClearAffiliate() {
	m.clearedaffiliate = true
	m.clearedFields[promocode.FieldAffiliateID] = struct{}{}
}

// AffiliateCleared reports if the "affiliate" edge to the Affiliate entity was cleared.
func (m *PromoCodeMutation) AffiliateCleared() bool {
	return m.clearedaffiliate
}

// AffiliateIDs returns the "affiliate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AffiliateID instead. It exists only for internal usage by the builders.
func (m *PromoCodeMutation) AffiliateIDs() (ids []int) {
	if id := m.affiliate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAffiliate resets all changes to the "affiliate" edge.
func (m *PromoCodeMutation) ResetAffiliate() {
	m.affiliate = nil
	m.clearedaffiliate = false
}

// AddSubscriptionIDs adds the "subscriptions" edge to the BusinessSubscription entity by ids.
func (m *PromoCodeMutation) AddSubscriptionIDs(ids ...int) {
	if m.subscriptions == nil {
		m.subscriptions = make(map[int]struct{})
	}
	for i := range ids {
		m.subscriptions[ids[i]] = struct{}{}
	}
}

// ClearSubscriptions clears the "subscriptions" edge to the BusinessSubscription entity.
func (m *PromoCodeMutation) ClearSubscriptions() {
	m.clearedsubscriptions = true
}

// SubscriptionsCleared reports if the "subscriptions" edge to the BusinessSubscription entity was cleared.
func (m *PromoCodeMutation) SubscriptionsCleared() bool {
	return m.clearedsubscriptions
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to the BusinessSubscription entity by IDs.
func (m *PromoCodeMutation) RemoveSubscriptionIDs(ids ...int) {
	if m.removedsubscriptions == nil {
		m.removedsubscriptions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.subscriptions, ids[i])
		m.removedsubscriptions[ids[i]] = struct{}{}
	}
}

// RemovedSubscriptions returns the removed IDs of the "subscriptions" edge to the BusinessSubscription entity.
func (m *PromoCodeMutation) RemovedSubscriptionsIDs() (ids []int) {
	for id := range m.removedsubscriptions {
		ids = append(ids, id)
	}
	return
}

// SubscriptionsIDs returns the "subscriptions" edge IDs in the mutation.
func (m *PromoCodeMutation) SubscriptionsIDs() (ids []int) {
	for id := range m.subscriptions {
		ids = append(ids, id)
	}
	return
}

// ResetSubscriptions resets all changes to the "subscriptions" edge.
func (m *PromoCodeMutation) ResetSubscriptions() {
	m.subscriptions = nil
	m.clearedsubscriptions = false
	m.removedsubscriptions = nil
}

// Where appends a list predicates to the PromoCodeMutation builder.
func (m *PromoCodeMutation) Where(ps ...predicate.PromoCode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromoCodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromoCodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromoCode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromoCodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromoCodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromoCode).
func (m *PromoCodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromoCodeMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.affiliate != nil {
		fields = append(fields, promocode.FieldAffiliateID)
	}
	if m.code != nil {
		fields = append(fields, promocode.FieldCode)
	}
	if m.discount_share_pct != nil {
		fields = append(fields, promocode.FieldDiscountSharePct)
	}
	if m.active != nil {
		fields = append(fields, promocode.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, promocode.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromoCodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case promocode.FieldAffiliateID:
		return m.AffiliateID()
	case promocode.FieldCode:
		return m.Code()
	case promocode.FieldDiscountSharePct:
		return m.DiscountSharePct()
	case promocode.FieldActive:
		return m.Active()
	case promocode.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromoCodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case promocode.FieldAffiliateID:
		return m.OldAffiliateID(ctx)
	case promocode.FieldCode:
		return m.OldCode(ctx)
	case promocode.FieldDiscountSharePct:
		return m.OldDiscountSharePct(ctx)
	case promocode.FieldActive:
		return m.OldActive(ctx)
	case promocode.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromoCode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromoCodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case promocode.FieldAffiliateID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffiliateID(v)
		return nil
	case promocode.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case promocode.FieldDiscountSharePct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscountSharePct(v)
		return nil
	case promocode.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case promocode.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromoCode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromoCodeMutation) AddedFields() []string {
	var fields []string
	if m.adddiscount_share_pct != nil {
		fields = append(fields, promocode.FieldDiscountSharePct)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromoCodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case promocode.FieldDiscountSharePct:
		return m.AddedDiscountSharePct()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromoCodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case promocode.FieldDiscountSharePct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDiscountSharePct(v)
		return nil
	}
	return fmt.Errorf("unknown PromoCode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromoCodeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromoCodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromoCodeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PromoCode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromoCodeMutation) ResetField(name string) error {
	switch name {
	case promocode.FieldAffiliateID:
		m.ResetAffiliateID()
		return nil
	case promocode.FieldCode:
		m.ResetCode()
		return nil
	case promocode.FieldDiscountSharePct:
		m.ResetDiscountSharePct()
		return nil
	case promocode.FieldActive:
		m.ResetActive()
		return nil
	case promocode.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromoCode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromoCodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.affiliate != nil {
		edges = append(edges, promocode.EdgeAffiliate)
	}
	if m.subscriptions != nil {
		edges = append(edges, promocode.EdgeSubscriptions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromoCodeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case promocode.EdgeAffiliate:
		if id := m.affiliate; id != nil {
			return []ent.Value{*id}
		}
	case promocode.EdgeSubscriptions:
		ids := make([]ent.Value, 0, len(m.subscriptions))
		for id := range m.subscriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromoCodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsubscriptions != nil {
		edges = append(edges, promocode.EdgeSubscriptions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromoCodeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case promocode.EdgeSubscriptions:
		ids := make([]ent.Value, 0, len(m.removedsubscriptions))
		for id := range m.removedsubscriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromoCodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaffiliate {
		edges = append(edges, promocode.EdgeAffiliate)
	}
	if m.clearedsubscriptions {
		edges = append(edges, promocode.EdgeSubscriptions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromoCodeMutation) EdgeCleared(name string) bool {
	switch name {
	case promocode.EdgeAffiliate:
		return m.clearedaffiliate
	case promocode.EdgeSubscriptions:
		return m.clearedsubscriptions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromoCodeMutation) ClearEdge(name string) error {
	switch name {
	case promocode.EdgeAffiliate:
		m.ClearAffiliate()
		return nil
	}
	return fmt.Errorf("unknown PromoCode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromoCodeMutation) ResetEdge(name string) error {
	switch name {
	case promocode.EdgeAffiliate:
		m.ResetAffiliate()
		return nil
	case promocode.EdgeSubscriptions:
		m.ResetSubscriptions()
		return nil
	}
	return fmt.Errorf("unknown PromoCode edge %s", name)
}

// ReferralClickMutation represents an operation that mutates the ReferralClick nodes in the graph.
type ReferralClickMutation struct {
	config
	op            Op
	typ           string
	id            *int
	ip_address    *string
	user_agent    *string
	referrer      *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	link          *int
	clearedlink   bool
	done          bool
	oldValue      func(context.Context) (*ReferralClick, error)
	predicates    []predicate.ReferralClick
}

var _ ent.Mutation = (*ReferralClickMutation)(nil)

// referralclickOption allows management of the mutation configuration using functional options.
type referralclickOption func(*ReferralClickMutation)

// newReferralClickMutation creates new mutation for the ReferralClick entity.
func newReferralClickMutation(c config, op Op, opts ...referralclickOption) *ReferralClickMutation {
	m := &ReferralClickMutation{
		config:        c,
		op:            op,
		typ:           TypeReferralClick,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReferralClickID sets the ID field of the mutation.
func withReferralClickID(id int) referralclickOption {
	return func(m *ReferralClickMutation) {
		var (
			err   error
			once  sync.Once
			value *ReferralClick
		)
		m.oldValue = func(ctx context.Context) (*ReferralClick, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReferralClick.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReferralClick sets the old ReferralClick of the mutation.
func withReferralClick(node *ReferralClick) referralclickOption {
	return func(m *ReferralClickMutation) {
		m.oldValue = func(context.Context) (*ReferralClick, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReferralClickMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReferralClickMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReferralClickMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReferralClickMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReferralClick.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLinkID sets the "link_id" field.
func (m *ReferralClickMutation) SetLinkID(i int) {
	m.link = &i
}

// LinkID returns the value of the "link_id" field in the mutation.
func (m *ReferralClickMutation) LinkID() (r int, exists bool) {
	v := m.link
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkID returns the old "link_id" field's value of the ReferralClick entity.
// If the ReferralClick object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralClickMutation) OldLinkID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkID: %w", err)
	}
	return oldValue.LinkID, nil
}

// ResetLinkID resets all changes to the "link_id" field.
func (m *ReferralClickMutation) ResetLinkID() {
	m.link = nil
}

// SetIPAddress sets the "ip_address" field.
func (m *ReferralClickMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *ReferralClickMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the ReferralClick entity.
// If the ReferralClick object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralClickMutation) OldIPAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *ReferralClickMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[referralclick.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *ReferralClickMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[referralclick.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *ReferralClickMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, referralclick.FieldIPAddress)
}

// SetUserAgent sets the "user_agent" field.
func (m *ReferralClickMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *ReferralClickMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the ReferralClick entity.
// If the ReferralClick object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralClickMutation) OldUserAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *ReferralClickMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[referralclick.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *ReferralClickMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[referralclick.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *ReferralClickMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, referralclick.FieldUserAgent)
}

// SetReferrer sets the "referrer" field.
func (m *ReferralClickMutation) SetReferrer(s string) {
	m.referrer = &s
}

// Referrer returns the value of the "referrer" field in the mutation.
func (m *ReferralClickMutation) Referrer() (r string, exists bool) {
	v := m.referrer
	if v == nil {
		return
	}
	return *v, true
}

// OldReferrer returns the old "referrer" field's value of the ReferralClick entity.
// If the ReferralClick object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralClickMutation) OldReferrer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferrer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferrer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferrer: %w", err)
	}
	return oldValue.Referrer, nil
}

// ClearReferrer clears the value of the "referrer" field.
func (m *ReferralClickMutation) ClearReferrer() {
	m.referrer = nil
	m.clearedFields[referralclick.FieldReferrer] = struct{}{}
}

// ReferrerCleared returns if the "referrer" field was cleared in this mutation.
func (m *ReferralClickMutation) ReferrerCleared() bool {
	_, ok := m.clearedFields[referralclick.FieldReferrer]
	return ok
}

// ResetReferrer resets all changes to the "referrer" field.
func (m *ReferralClickMutation) ResetReferrer() {
	m.referrer = nil
	delete(m.clearedFields, referralclick.FieldReferrer)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReferralClickMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReferralClickMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReferralClick entity.
// If the ReferralClick object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralClickMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReferralClickMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearLink clears the "link" edge to the ReferralLink entity.
func (m *ReferralClickMutation) ClearLink() {
	m.clearedlink = true
	m.clearedFields[referralclick.FieldLinkID] = struct{}{}
}

// LinkCleared reports if the "link" edge to the ReferralLink entity was cleared.
func (m *ReferralClickMutation) LinkCleared() bool {
	return m.clearedlink
}

// LinkIDs returns the "link" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LinkID instead. It exists only for internal usage by the builders.
func (m *ReferralClickMutation) LinkIDs() (ids []int) {
	if id := m.link; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLink resets all changes to the "link" edge.
func (m *ReferralClickMutation) ResetLink() {
	m.link = nil
	m.clearedlink = false
}

// Where appends a list predicates to the ReferralClickMutation builder.
func (m *ReferralClickMutation) Where(ps ...predicate.ReferralClick) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReferralClickMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReferralClickMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReferralClick, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReferralClickMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReferralClickMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReferralClick).
func (m *ReferralClickMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReferralClickMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.link != nil {
		fields = append(fields, referralclick.FieldLinkID)
	}
	if m.ip_address != nil {
		fields = append(fields, referralclick.FieldIPAddress)
	}
	if m.user_agent != nil {
		fields = append(fields, referralclick.FieldUserAgent)
	}
	if m.referrer != nil {
		fields = append(fields, referralclick.FieldReferrer)
	}
	if m.created_at != nil {
		fields = append(fields, referralclick.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReferralClickMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case referralclick.FieldLinkID:
		return m.LinkID()
	case referralclick.FieldIPAddress:
		return m.IPAddress()
	case referralclick.FieldUserAgent:
		return m.UserAgent()
	case referralclick.FieldReferrer:
		return m.Referrer()
	case referralclick.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReferralClickMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case referralclick.FieldLinkID:
		return m.OldLinkID(ctx)
	case referralclick.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case referralclick.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case referralclick.FieldReferrer:
		return m.OldReferrer(ctx)
	case referralclick.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReferralClick field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferralClickMutation) SetField(name string, value ent.Value) error {
	switch name {
	case referralclick.FieldLinkID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkID(v)
		return nil
	case referralclick.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case referralclick.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case referralclick.FieldReferrer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferrer(v)
		return nil
	case referralclick.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReferralClick field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReferralClickMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReferralClickMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferralClickMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReferralClick numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReferralClickMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(referralclick.FieldIPAddress) {
		fields = append(fields, referralclick.FieldIPAddress)
	}
	if m.FieldCleared(referralclick.FieldUserAgent) {
		fields = append(fields, referralclick.FieldUserAgent)
	}
	if m.FieldCleared(referralclick.FieldReferrer) {
		fields = append(fields, referralclick.FieldReferrer)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReferralClickMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReferralClickMutation) ClearField(name string) error {
	switch name {
	case referralclick.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case referralclick.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case referralclick.FieldReferrer:
		m.ClearReferrer()
		return nil
	}
	return fmt.Errorf("unknown ReferralClick nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReferralClickMutation) ResetField(name string) error {
	switch name {
	case referralclick.FieldLinkID:
		m.ResetLinkID()
		return nil
	case referralclick.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case referralclick.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case referralclick.FieldReferrer:
		m.ResetReferrer()
		return nil
	case referralclick.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReferralClick field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReferralClickMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.link != nil {
		edges = append(edges, referralclick.EdgeLink)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReferralClickMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case referralclick.EdgeLink:
		if id := m.link; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReferralClickMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReferralClickMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReferralClickMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlink {
		edges = append(edges, referralclick.EdgeLink)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReferralClickMutation) EdgeCleared(name string) bool {
	switch name {
	case referralclick.EdgeLink:
		return m.clearedlink
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReferralClickMutation) ClearEdge(name string) error {
	switch name {
	case referralclick.EdgeLink:
		m.ClearLink()
		return nil
	}
	return fmt.Errorf("unknown ReferralClick unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReferralClickMutation) ResetEdge(name string) error {
	switch name {
	case referralclick.EdgeLink:
		m.ResetLink()
		return nil
	}
	return fmt.Errorf("unknown ReferralClick edge %s", name)
}

// ReferralLinkMutation represents an operation that mutates the ReferralLink nodes in the graph.
type ReferralLinkMutation struct {
	config
	op               Op
	typ              string
	id               *int
	code             *string
	active           *bool
	created_at       *time.Time
	clearedFields    map[string]struct{}
	affiliate        *int
	clearedaffiliate bool
	clicks           map[int]struct{}
	removedclicks    map[int]struct{}
	clearedclicks    bool
	done             bool
	oldValue         func(context.Context) (*ReferralLink, error)
	predicates       []predicate.ReferralLink
}

var _ ent.Mutation = (*ReferralLinkMutation)(nil)

// referrallinkOption allows management of the mutation configuration using functional options.
type referrallinkOption func(*ReferralLinkMutation)

// newReferralLinkMutation creates new mutation for the ReferralLink entity.
func newReferralLinkMutation(c config, op Op, opts ...referrallinkOption) *ReferralLinkMutation {
	m := &ReferralLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeReferralLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReferralLinkID sets the ID field of the mutation.
func withReferralLinkID(id int) referrallinkOption {
	return func(m *ReferralLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *ReferralLink
		)
		m.oldValue = func(ctx context.Context) (*ReferralLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReferralLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReferralLink sets the old ReferralLink of the mutation.
func withReferralLink(node *ReferralLink) referrallinkOption {
	return func(m *ReferralLinkMutation) {
		m.oldValue = func(context.Context) (*ReferralLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReferralLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReferralLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReferralLinkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReferralLinkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReferralLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAffiliateID sets the "affiliate_id" field.
func (m *ReferralLinkMutation) SetAffiliateID(i int) {
	m.affiliate = &i
}

// AffiliateID returns the value of the "affiliate_id" field in the mutation.
func (m *ReferralLinkMutation) AffiliateID() (r int, exists bool) {
	v := m.affiliate
	if v == nil {
		return
	}
	return *v, true
}

// OldAffiliateID returns the old "affiliate_id" field's value of the ReferralLink entity.
// If the ReferralLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralLinkMutation) OldAffiliateID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffiliateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffiliateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffiliateID: %w", err)
	}
	return oldValue.AffiliateID, nil
}

// ResetAffiliateID resets all changes to the "affiliate_id" field.
func (m *ReferralLinkMutation) ResetAffiliateID() {
	m.affiliate = nil
}

// SetCode sets the "code" field.
func (m *ReferralLinkMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *ReferralLinkMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the ReferralLink entity.
// If the ReferralLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralLinkMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *ReferralLinkMutation) ResetCode() {
	m.code = nil
}

// SetActive sets the "active" field.
func (m *ReferralLinkMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ReferralLinkMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the ReferralLink entity.
// If the ReferralLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralLinkMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ReferralLinkMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReferralLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReferralLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReferralLink entity.
// If the ReferralLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReferralLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAffiliate clears the "affiliate" edge to the Affiliate entity.
func (m *ReferralLinkMutation) ClearAffiliate() {
	m.clearedaffiliate = true
	m.clearedFields[referrallink.FieldAffiliateID] = struct{}{}
}

// AffiliateCleared reports if the "affiliate" edge to the Affiliate entity was cleared.
func (m *ReferralLinkMutation) AffiliateCleared() bool {
	return m.clearedaffiliate
}

// AffiliateIDs returns the "affiliate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AffiliateID instead. It exists only for internal usage by the builders.
func (m *ReferralLinkMutation) AffiliateIDs() (ids []int) {
	if id := m.affiliate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAffiliate resets all changes to the "affiliate" edge.
func (m *ReferralLinkMutation) ResetAffiliate() {
	m.affiliate = nil
	m.clearedaffiliate = false
}

// AddClickIDs adds the "clicks" edge to the ReferralClick entity by ids.
func (m *ReferralLinkMutation) AddClickIDs(ids ...int) {
	if m.clicks == nil {
		m.clicks = make(map[int]struct{})
	}
	for i := range ids {
		m.clicks[ids[i]] = struct{}{}
	}
}

// ClearClicks clears the "clicks" edge to the ReferralClick entity.
func (m *ReferralLinkMutation) ClearClicks() {
	m.clearedclicks = true
}

// ClicksCleared reports if the "clicks" edge to the ReferralClick entity was cleared.
func (m *ReferralLinkMutation) ClicksCleared() bool {
	return m.clearedclicks
}

// RemoveClickIDs removes the "clicks" edge to the ReferralClick entity by IDs.
func (m *ReferralLinkMutation) RemoveClickIDs(ids ...int) {
	if m.removedclicks == nil {
		m.removedclicks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.clicks, ids[i])
		m.removedclicks[ids[i]] = struct{}{}
	}
}

// RemovedClicks returns the removed IDs of the "clicks" edge to the ReferralClick entity.
func (m *ReferralLinkMutation) RemovedClicksIDs() (ids []int) {
	for id := range m.removedclicks {
		ids = append(ids, id)
	}
	return
}

// ClicksIDs returns the "clicks" edge IDs in the mutation.
func (m *ReferralLinkMutation) ClicksIDs() (ids []int) {
	for id := range m.clicks {
		ids = append(ids, id)
	}
	return
}

// ResetClicks resets all changes to the "clicks" edge.
func (m *ReferralLinkMutation) ResetClicks() {
	m.clicks = nil
	m.clearedclicks = false
	m.removedclicks = nil
}

// Where appends a list predicates to the ReferralLinkMutation builder.
func (m *ReferralLinkMutation) Where(ps ...predicate.ReferralLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReferralLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReferralLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReferralLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReferralLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReferralLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReferralLink).
func (m *ReferralLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReferralLinkMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.affiliate != nil {
		fields = append(fields, referrallink.FieldAffiliateID)
	}
	if m.code != nil {
		fields = append(fields, referrallink.FieldCode)
	}
	if m.active != nil {
		fields = append(fields, referrallink.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, referrallink.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReferralLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case referrallink.FieldAffiliateID:
		return m.AffiliateID()
	case referrallink.FieldCode:
		return m.Code()
	case referrallink.FieldActive:
		return m.Active()
	case referrallink.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReferralLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case referrallink.FieldAffiliateID:
		return m.OldAffiliateID(ctx)
	case referrallink.FieldCode:
		return m.OldCode(ctx)
	case referrallink.FieldActive:
		return m.OldActive(ctx)
	case referrallink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReferralLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferralLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case referrallink.FieldAffiliateID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffiliateID(v)
		return nil
	case referrallink.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case referrallink.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case referrallink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReferralLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReferralLinkMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReferralLinkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferralLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReferralLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReferralLinkMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReferralLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReferralLinkMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReferralLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReferralLinkMutation) ResetField(name string) error {
	switch name {
	case referrallink.FieldAffiliateID:
		m.ResetAffiliateID()
		return nil
	case referrallink.FieldCode:
		m.ResetCode()
		return nil
	case referrallink.FieldActive:
		m.ResetActive()
		return nil
	case referrallink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReferralLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReferralLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.affiliate != nil {
		edges = append(edges, referrallink.EdgeAffiliate)
	}
	if m.clicks != nil {
		edges = append(edges, referrallink.EdgeClicks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReferralLinkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case referrallink.EdgeAffiliate:
		if id := m.affiliate; id != nil {
			return []ent.Value{*id}
		}
	case referrallink.EdgeClicks:
		ids := make([]ent.Value, 0, len(m.clicks))
		for id := range m.clicks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReferralLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedclicks != nil {
		edges = append(edges, referrallink.EdgeClicks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReferralLinkMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case referrallink.EdgeClicks:
		ids := make([]ent.Value, 0, len(m.removedclicks))
		for id := range m.removedclicks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReferralLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaffiliate {
		edges = append(edges, referrallink.EdgeAffiliate)
	}
	if m.clearedclicks {
		edges = append(edges, referrallink.EdgeClicks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReferralLinkMutation) EdgeCleared(name string) bool {
	switch name {
	case referrallink.EdgeAffiliate:
		return m.clearedaffiliate
	case referrallink.EdgeClicks:
		return m.clearedclicks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReferralLinkMutation) ClearEdge(name string) error {
	switch name {
	case referrallink.EdgeAffiliate:
		m.ClearAffiliate()
		return nil
	}
	return fmt.Errorf("unknown ReferralLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReferralLinkMutation) ResetEdge(name string) error {
	switch name {
	case referrallink.EdgeAffiliate:
		m.ResetAffiliate()
		return nil
	case referrallink.EdgeClicks:
		m.ResetClicks()
		return nil
	}
	return fmt.Errorf("unknown ReferralLink edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	name                *string
	email               *string
	is_business         *bool
	created_at          *time.Time
	clearedFields       map[string]struct{}
	affiliate           *int
	clearedaffiliate    bool
	attributions        map[int]struct{}
	removedattributions map[int]struct{}
	clearedattributions bool
	done                bool
	oldValue            func(context.Context) (*User, error)
	predicates          []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetIsBusiness sets the "is_business" field.
func (m *UserMutation) SetIsBusiness(b bool) {
	m.is_business = &b
}

// IsBusiness returns the value of the "is_business" field in the mutation.
func (m *UserMutation) IsBusiness() (r bool, exists bool) {
	v := m.is_business
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBusiness returns the old "is_business" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsBusiness(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBusiness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBusiness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBusiness: %w", err)
	}
	return oldValue.IsBusiness, nil
}

// ResetIsBusiness resets all changes to the "is_business" field.
func (m *UserMutation) ResetIsBusiness() {
	m.is_business = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAffiliateID sets the "affiliate" edge to the Affiliate entity by id.
func (m *UserMutation) SetAffiliateID(id int) {
	m.affiliate = &id
}

// ClearAffiliate clears the "affiliate" edge to the Affiliate entity.
func (m *UserMutation) ClearAffiliate() {
	m.clearedaffiliate = true
}

// AffiliateCleared reports if the "affiliate" edge to the Affiliate entity was cleared.
func (m *UserMutation) AffiliateCleared() bool {
	return m.clearedaffiliate
}

// AffiliateID returns the "affiliate" edge ID in the mutation.
func (m *UserMutation) AffiliateID() (id int, exists bool) {
	if m.affiliate != nil {
		return *m.affiliate, true
	}
	return
}

// AffiliateIDs returns the "affiliate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AffiliateID instead. It exists only for internal usage by the builders.
func (m *UserMutation) AffiliateIDs() (ids []int) {
	if id := m.affiliate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAffiliate resets all changes to the "affiliate" edge.
func (m *UserMutation) ResetAffiliate() {
	m.affiliate = nil
	m.clearedaffiliate = false
}

// AddAttributionIDs adds the "attributions" edge to the Attribution entity by ids.
func (m *UserMutation) AddAttributionIDs(ids ...int) {
	if m.attributions == nil {
		m.attributions = make(map[int]struct{})
	}
	for i := range ids {
		m.attributions[ids[i]] = struct{}{}
	}
}

// ClearAttributions clears the "attributions" edge to the Attribution entity.
func (m *UserMutation) ClearAttributions() {
	m.clearedattributions = true
}

// AttributionsCleared reports if the "attributions" edge to the Attribution entity was cleared.
func (m *UserMutation) AttributionsCleared() bool {
	return m.clearedattributions
}

// RemoveAttributionIDs removes the "attributions" edge to the Attribution entity by IDs.
func (m *UserMutation) RemoveAttributionIDs(ids ...int) {
	if m.removedattributions == nil {
		m.removedattributions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.attributions, ids[i])
		m.removedattributions[ids[i]] = struct{}{}
	}
}

// RemovedAttributions returns the removed IDs of the "attributions" edge to the Attribution entity.
func (m *UserMutation) RemovedAttributionsIDs() (ids []int) {
	for id := range m.removedattributions {
		ids = append(ids, id)
	}
	return
}

// AttributionsIDs returns the "attributions" edge IDs in the mutation.
func (m *UserMutation) AttributionsIDs() (ids []int) {
	for id := range m.attributions {
		ids = append(ids, id)
	}
	return
}

// ResetAttributions resets all changes to the "attributions" edge.
func (m *UserMutation) ResetAttributions() {
	m.attributions = nil
	m.clearedattributions = false
	m.removedattributions = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.is_business != nil {
		fields = append(fields, user.FieldIsBusiness)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldIsBusiness:
		return m.IsBusiness()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldIsBusiness:
		return m.OldIsBusiness(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldIsBusiness:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBusiness(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldIsBusiness:
		m.ResetIsBusiness()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.affiliate != nil {
		edges = append(edges, user.EdgeAffiliate)
	}
	if m.attributions != nil {
		edges = append(edges, user.EdgeAttributions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAffiliate:
		if id := m.affiliate; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeAttributions:
		ids := make([]ent.Value, 0, len(m.attributions))
		for id := range m.attributions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedattributions != nil {
		edges = append(edges, user.EdgeAttributions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAttributions:
		ids := make([]ent.Value, 0, len(m.removedattributions))
		for id := range m.removedattributions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaffiliate {
		edges = append(edges, user.EdgeAffiliate)
	}
	if m.clearedattributions {
		edges = append(edges, user.EdgeAttributions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeAffiliate:
		return m.clearedaffiliate
	case user.EdgeAttributions:
		return m.clearedattributions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeAffiliate:
		m.ClearAffiliate()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeAffiliate:
		m.ResetAffiliate()
		return nil
	case user.EdgeAttributions:
		m.ResetAttributions()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
