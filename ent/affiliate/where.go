// Code generated by ent, DO NOT EDIT.

package affiliate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/homecheff/affiliates/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldUserID, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldParentID, v))
}

// SubscriptionPct applies equality check predicate on the "subscription_pct" field. It's identical to SubscriptionPctEQ.
func SubscriptionPct(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldSubscriptionPct, v))
}

// OrderPct applies equality check predicate on the "order_pct" field. It's identical to OrderPctEQ.
func OrderPct(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldOrderPct, v))
}

// ParentSubscriptionPct applies equality check predicate on the "parent_subscription_pct" field. It's identical to ParentSubscriptionPctEQ.
func ParentSubscriptionPct(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldParentSubscriptionPct, v))
}

// ParentOrderPct applies equality check predicate on the "parent_order_pct" field. It's identical to ParentOrderPctEQ.
func ParentOrderPct(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldParentOrderPct, v))
}

// TotalClicks applies equality check predicate on the "total_clicks" field. It's identical to TotalClicksEQ.
func TotalClicks(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldTotalClicks, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldUserID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldStatus, vs...))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotNull(FieldParentID))
}

// SubscriptionPctEQ applies the EQ predicate on the "subscription_pct" field.
func SubscriptionPctEQ(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldSubscriptionPct, v))
}

// SubscriptionPctNEQ applies the NEQ predicate on the "subscription_pct" field.
func SubscriptionPctNEQ(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldSubscriptionPct, v))
}

// SubscriptionPctIn applies the In predicate on the "subscription_pct" field.
func SubscriptionPctIn(vs ...float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldSubscriptionPct, vs...))
}

// SubscriptionPctNotIn applies the NotIn predicate on the "subscription_pct" field.
func SubscriptionPctNotIn(vs ...float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldSubscriptionPct, vs...))
}

// SubscriptionPctGT applies the GT predicate on the "subscription_pct" field.
func SubscriptionPctGT(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldSubscriptionPct, v))
}

// SubscriptionPctGTE applies the GTE predicate on the "subscription_pct" field.
func SubscriptionPctGTE(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldSubscriptionPct, v))
}

// SubscriptionPctLT applies the LT predicate on the "subscription_pct" field.
func SubscriptionPctLT(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldSubscriptionPct, v))
}

// SubscriptionPctLTE applies the LTE predicate on the "subscription_pct" field.
func SubscriptionPctLTE(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldSubscriptionPct, v))
}

// SubscriptionPctIsNil applies the IsNil predicate on the "subscription_pct" field.
func SubscriptionPctIsNil() predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIsNull(FieldSubscriptionPct))
}

// SubscriptionPctNotNil applies the NotNil predicate on the "subscription_pct" field.
func SubscriptionPctNotNil() predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotNull(FieldSubscriptionPct))
}

// OrderPctEQ applies the EQ predicate on the "order_pct" field.
func OrderPctEQ(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldOrderPct, v))
}

// OrderPctNEQ applies the NEQ predicate on the "order_pct" field.
func OrderPctNEQ(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldOrderPct, v))
}

// OrderPctIn applies the In predicate on the "order_pct" field.
func OrderPctIn(vs ...float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldOrderPct, vs...))
}

// OrderPctNotIn applies the NotIn predicate on the "order_pct" field.
func OrderPctNotIn(vs ...float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldOrderPct, vs...))
}

// OrderPctGT applies the GT predicate on the "order_pct" field.
func OrderPctGT(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldOrderPct, v))
}

// OrderPctGTE applies the GTE predicate on the "order_pct" field.
func OrderPctGTE(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldOrderPct, v))
}

// OrderPctLT applies the LT predicate on the "order_pct" field.
func OrderPctLT(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldOrderPct, v))
}

// OrderPctLTE applies the LTE predicate on the "order_pct" field.
func OrderPctLTE(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldOrderPct, v))
}

// OrderPctIsNil applies the IsNil predicate on the "order_pct" field.
func OrderPctIsNil() predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIsNull(FieldOrderPct))
}

// OrderPctNotNil applies the NotNil predicate on the "order_pct" field.
func OrderPctNotNil() predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotNull(FieldOrderPct))
}

// ParentSubscriptionPctEQ applies the EQ predicate on the "parent_subscription_pct" field.
func ParentSubscriptionPctEQ(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldParentSubscriptionPct, v))
}

// ParentSubscriptionPctNEQ applies the NEQ predicate on the "parent_subscription_pct" field.
func ParentSubscriptionPctNEQ(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldParentSubscriptionPct, v))
}

// ParentSubscriptionPctIn applies the In predicate on the "parent_subscription_pct" field.
func ParentSubscriptionPctIn(vs ...float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldParentSubscriptionPct, vs...))
}

// ParentSubscriptionPctNotIn applies the NotIn predicate on the "parent_subscription_pct" field.
func ParentSubscriptionPctNotIn(vs ...float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldParentSubscriptionPct, vs...))
}

// ParentSubscriptionPctGT applies the GT predicate on the "parent_subscription_pct" field.
func ParentSubscriptionPctGT(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldParentSubscriptionPct, v))
}

// ParentSubscriptionPctGTE applies the GTE predicate on the "parent_subscription_pct" field.
func ParentSubscriptionPctGTE(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldParentSubscriptionPct, v))
}

// ParentSubscriptionPctLT applies the LT predicate on the "parent_subscription_pct" field.
func ParentSubscriptionPctLT(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldParentSubscriptionPct, v))
}

// ParentSubscriptionPctLTE applies the LTE predicate on the "parent_subscription_pct" field.
func ParentSubscriptionPctLTE(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldParentSubscriptionPct, v))
}

// ParentSubscriptionPctIsNil applies the IsNil predicate on the "parent_subscription_pct" field.
func ParentSubscriptionPctIsNil() predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIsNull(FieldParentSubscriptionPct))
}

// ParentSubscriptionPctNotNil applies the NotNil predicate on the "parent_subscription_pct" field.
func ParentSubscriptionPctNotNil() predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotNull(FieldParentSubscriptionPct))
}

// ParentOrderPctEQ applies the EQ predicate on the "parent_order_pct" field.
func ParentOrderPctEQ(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldParentOrderPct, v))
}

// ParentOrderPctNEQ applies the NEQ predicate on the "parent_order_pct" field.
func ParentOrderPctNEQ(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldParentOrderPct, v))
}

// ParentOrderPctIn applies the In predicate on the "parent_order_pct" field.
func ParentOrderPctIn(vs ...float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldParentOrderPct, vs...))
}

// ParentOrderPctNotIn applies the NotIn predicate on the "parent_order_pct" field.
func ParentOrderPctNotIn(vs ...float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldParentOrderPct, vs...))
}

// ParentOrderPctGT applies the GT predicate on the "parent_order_pct" field.
func ParentOrderPctGT(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldParentOrderPct, v))
}

// ParentOrderPctGTE applies the GTE predicate on the "parent_order_pct" field.
func ParentOrderPctGTE(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldParentOrderPct, v))
}

// ParentOrderPctLT applies the LT predicate on the "parent_order_pct" field.
func ParentOrderPctLT(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldParentOrderPct, v))
}

// ParentOrderPctLTE applies the LTE predicate on the "parent_order_pct" field.
func ParentOrderPctLTE(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldParentOrderPct, v))
}

// ParentOrderPctIsNil applies the IsNil predicate on the "parent_order_pct" field.
func ParentOrderPctIsNil() predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIsNull(FieldParentOrderPct))
}

// ParentOrderPctNotNil applies the NotNil predicate on the "parent_order_pct" field.
func ParentOrderPctNotNil() predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotNull(FieldParentOrderPct))
}

// TotalClicksEQ applies the EQ predicate on the "total_clicks" field.
func TotalClicksEQ(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldTotalClicks, v))
}

// TotalClicksNEQ applies the NEQ predicate on the "total_clicks" field.
func TotalClicksNEQ(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldTotalClicks, v))
}

// TotalClicksIn applies the In predicate on the "total_clicks" field.
func TotalClicksIn(vs ...int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldTotalClicks, vs...))
}

// TotalClicksNotIn applies the NotIn predicate on the "total_clicks" field.
func TotalClicksNotIn(vs ...int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldTotalClicks, vs...))
}

// TotalClicksGT applies the GT predicate on the "total_clicks" field.
func TotalClicksGT(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldTotalClicks, v))
}

// TotalClicksGTE applies the GTE predicate on the "total_clicks" field.
func TotalClicksGTE(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldTotalClicks, v))
}

// TotalClicksLT applies the LT predicate on the "total_clicks" field.
func TotalClicksLT(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldTotalClicks, v))
}

// TotalClicksLTE applies the LTE predicate on the "total_clicks" field.
func TotalClicksLTE(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldTotalClicks, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Affiliate {
	return predicate.Affiliate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Affiliate {
	return predicate.Affiliate(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.Affiliate {
	return predicate.Affiliate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.Affiliate) predicate.Affiliate {
	return predicate.Affiliate(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.Affiliate {
	return predicate.Affiliate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.Affiliate) predicate.Affiliate {
	return predicate.Affiliate(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLinks applies the HasEdge predicate on the "links" edge.
func HasLinks() predicate.Affiliate {
	return predicate.Affiliate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LinksTable, LinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLinksWith applies the HasEdge predicate on the "links" edge with a given conditions (other predicates).
func HasLinksWith(preds ...predicate.ReferralLink) predicate.Affiliate {
	return predicate.Affiliate(func(s *sql.Selector) {
		step := newLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPromoCodes applies the HasEdge predicate on the "promo_codes" edge.
func HasPromoCodes() predicate.Affiliate {
	return predicate.Affiliate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PromoCodesTable, PromoCodesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPromoCodesWith applies the HasEdge predicate on the "promo_codes" edge with a given conditions (other predicates).
func HasPromoCodesWith(preds ...predicate.PromoCode) predicate.Affiliate {
	return predicate.Affiliate(func(s *sql.Selector) {
		step := newPromoCodesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttributions applies the HasEdge predicate on the "attributions" edge.
func HasAttributions() predicate.Affiliate {
	return predicate.Affiliate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttributionsTable, AttributionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttributionsWith applies the HasEdge predicate on the "attributions" edge with a given conditions (other predicates).
func HasAttributionsWith(preds ...predicate.Attribution) predicate.Affiliate {
	return predicate.Affiliate(func(s *sql.Selector) {
		step := newAttributionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLedgerEntries applies the HasEdge predicate on the "ledger_entries" edge.
func HasLedgerEntries() predicate.Affiliate {
	return predicate.Affiliate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LedgerEntriesTable, LedgerEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLedgerEntriesWith applies the HasEdge predicate on the "ledger_entries" edge with a given conditions (other predicates).
func HasLedgerEntriesWith(preds ...predicate.LedgerEntry) predicate.Affiliate {
	return predicate.Affiliate(func(s *sql.Selector) {
		step := newLedgerEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Affiliate) predicate.Affiliate {
	return predicate.Affiliate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Affiliate) predicate.Affiliate {
	return predicate.Affiliate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Affiliate) predicate.Affiliate {
	return predicate.Affiliate(sql.NotPredicates(p))
}
