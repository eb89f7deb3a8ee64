// Code generated by ent, DO NOT EDIT.

package promocode

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/homecheff/affiliates/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldLTE(FieldID, id))
}

// AffiliateID applies equality check predicate on the "affiliate_id" field. It's identical to AffiliateIDEQ.
func AffiliateID(v int) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldEQ(FieldAffiliateID, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldEQ(FieldCode, v))
}

// DiscountSharePct applies equality check predicate on the "discount_share_pct" field. It's identical to DiscountSharePctEQ.
func DiscountSharePct(v float64) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldEQ(FieldDiscountSharePct, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldEQ(FieldCreatedAt, v))
}

// AffiliateIDEQ applies the EQ predicate on the "affiliate_id" field.
func AffiliateIDEQ(v int) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldEQ(FieldAffiliateID, v))
}

// AffiliateIDNEQ applies the NEQ predicate on the "affiliate_id" field.
func AffiliateIDNEQ(v int) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldNEQ(FieldAffiliateID, v))
}

// AffiliateIDIn applies the In predicate on the "affiliate_id" field.
func AffiliateIDIn(vs ...int) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldIn(FieldAffiliateID, vs...))
}

// AffiliateIDNotIn applies the NotIn predicate on the "affiliate_id" field.
func AffiliateIDNotIn(vs ...int) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldNotIn(FieldAffiliateID, vs...))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldContainsFold(FieldCode, v))
}

// DiscountSharePctEQ applies the EQ predicate on the "discount_share_pct" field.
func DiscountSharePctEQ(v float64) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldEQ(FieldDiscountSharePct, v))
}

// DiscountSharePctNEQ applies the NEQ predicate on the "discount_share_pct" field.
func DiscountSharePctNEQ(v float64) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldNEQ(FieldDiscountSharePct, v))
}

// DiscountSharePctIn applies the In predicate on the "discount_share_pct" field.
func DiscountSharePctIn(vs ...float64) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldIn(FieldDiscountSharePct, vs...))
}

// DiscountSharePctNotIn applies the NotIn predicate on the "discount_share_pct" field.
func DiscountSharePctNotIn(vs ...float64) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldNotIn(FieldDiscountSharePct, vs...))
}

// DiscountSharePctGT applies the GT predicate on the "discount_share_pct" field.
func DiscountSharePctGT(v float64) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldGT(FieldDiscountSharePct, v))
}

// DiscountSharePctGTE applies the GTE predicate on the "discount_share_pct" field.
func DiscountSharePctGTE(v float64) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldGTE(FieldDiscountSharePct, v))
}

// DiscountSharePctLT applies the LT predicate on the "discount_share_pct" field.
func DiscountSharePctLT(v float64) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldLT(FieldDiscountSharePct, v))
}

// DiscountSharePctLTE applies the LTE predicate on the "discount_share_pct" field.
func DiscountSharePctLTE(v float64) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldLTE(FieldDiscountSharePct, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PromoCode {
	return predicate.PromoCode(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAffiliate applies the HasEdge predicate on the "affiliate" edge.
func HasAffiliate() predicate.PromoCode {
	return predicate.PromoCode(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AffiliateTable, AffiliateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAffiliateWith applies the HasEdge predicate on the "affiliate" edge with a given conditions (other predicates).
func HasAffiliateWith(preds ...predicate.Affiliate) predicate.PromoCode {
	return predicate.PromoCode(func(s *sql.Selector) {
		step := newAffiliateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubscriptions applies the HasEdge predicate on the "subscriptions" edge.
func HasSubscriptions() predicate.PromoCode {
	return predicate.PromoCode(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubscriptionsTable, SubscriptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubscriptionsWith applies the HasEdge predicate on the "subscriptions" edge with a given conditions (other predicates).
func HasSubscriptionsWith(preds ...predicate.BusinessSubscription) predicate.PromoCode {
	return predicate.PromoCode(func(s *sql.Selector) {
		step := newSubscriptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PromoCode) predicate.PromoCode {
	return predicate.PromoCode(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PromoCode) predicate.PromoCode {
	return predicate.PromoCode(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PromoCode) predicate.PromoCode {
	return predicate.PromoCode(sql.NotPredicates(p))
}
