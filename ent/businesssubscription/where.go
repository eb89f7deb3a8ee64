// Code generated by ent, DO NOT EDIT.

package businesssubscription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/homecheff/affiliates/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLTE(FieldID, id))
}

// StripeSubscriptionID applies equality check predicate on the "stripe_subscription_id" field. It's identical to StripeSubscriptionIDEQ.
func StripeSubscriptionID(v string) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldStripeSubscriptionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldUserID, v))
}

// AttributionID applies equality check predicate on the "attribution_id" field. It's identical to AttributionIDEQ.
func AttributionID(v int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldAttributionID, v))
}

// PromoCodeID applies equality check predicate on the "promo_code_id" field. It's identical to PromoCodeIDEQ.
func PromoCodeID(v int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldPromoCodeID, v))
}

// FeeCents applies equality check predicate on the "fee_cents" field. It's identical to FeeCentsEQ.
func FeeCents(v int64) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldFeeCents, v))
}

// EndsAt applies equality check predicate on the "ends_at" field. It's identical to EndsAtEQ.
func EndsAt(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldEndsAt, v))
}

// CurrentPeriodStart applies equality check predicate on the "current_period_start" field. It's identical to CurrentPeriodStartEQ.
func CurrentPeriodStart(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldCurrentPeriodStart, v))
}

// CurrentPeriodEnd applies equality check predicate on the "current_period_end" field. It's identical to CurrentPeriodEndEQ.
func CurrentPeriodEnd(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldCurrentPeriodEnd, v))
}

// CanceledAt applies equality check predicate on the "canceled_at" field. It's identical to CanceledAtEQ.
func CanceledAt(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldCanceledAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldUpdatedAt, v))
}

// StripeSubscriptionIDEQ applies the EQ predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDEQ(v string) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDNEQ applies the NEQ predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDNEQ(v string) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNEQ(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDIn applies the In predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDIn(vs ...string) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIn(FieldStripeSubscriptionID, vs...))
}

// StripeSubscriptionIDNotIn applies the NotIn predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDNotIn(vs ...string) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotIn(FieldStripeSubscriptionID, vs...))
}

// StripeSubscriptionIDGT applies the GT predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDGT(v string) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGT(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDGTE applies the GTE predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDGTE(v string) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGTE(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDLT applies the LT predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDLT(v string) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLT(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDLTE applies the LTE predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDLTE(v string) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLTE(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDContains applies the Contains predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDContains(v string) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldContains(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDHasPrefix applies the HasPrefix predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDHasPrefix(v string) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldHasPrefix(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDHasSuffix applies the HasSuffix predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDHasSuffix(v string) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldHasSuffix(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDEqualFold applies the EqualFold predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDEqualFold(v string) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEqualFold(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDContainsFold applies the ContainsFold predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDContainsFold(v string) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldContainsFold(FieldStripeSubscriptionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLTE(FieldUserID, v))
}

// AttributionIDEQ applies the EQ predicate on the "attribution_id" field.
func AttributionIDEQ(v int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldAttributionID, v))
}

// AttributionIDNEQ applies the NEQ predicate on the "attribution_id" field.
func AttributionIDNEQ(v int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNEQ(FieldAttributionID, v))
}

// AttributionIDIn applies the In predicate on the "attribution_id" field.
func AttributionIDIn(vs ...int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIn(FieldAttributionID, vs...))
}

// AttributionIDNotIn applies the NotIn predicate on the "attribution_id" field.
func AttributionIDNotIn(vs ...int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotIn(FieldAttributionID, vs...))
}

// AttributionIDIsNil applies the IsNil predicate on the "attribution_id" field.
func AttributionIDIsNil() predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIsNull(FieldAttributionID))
}

// AttributionIDNotNil applies the NotNil predicate on the "attribution_id" field.
func AttributionIDNotNil() predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotNull(FieldAttributionID))
}

// PromoCodeIDEQ applies the EQ predicate on the "promo_code_id" field.
func PromoCodeIDEQ(v int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldPromoCodeID, v))
}

// PromoCodeIDNEQ applies the NEQ predicate on the "promo_code_id" field.
func PromoCodeIDNEQ(v int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNEQ(FieldPromoCodeID, v))
}

// PromoCodeIDIn applies the In predicate on the "promo_code_id" field.
func PromoCodeIDIn(vs ...int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIn(FieldPromoCodeID, vs...))
}

// PromoCodeIDNotIn applies the NotIn predicate on the "promo_code_id" field.
func PromoCodeIDNotIn(vs ...int) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotIn(FieldPromoCodeID, vs...))
}

// PromoCodeIDIsNil applies the IsNil predicate on the "promo_code_id" field.
func PromoCodeIDIsNil() predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIsNull(FieldPromoCodeID))
}

// PromoCodeIDNotNil applies the NotNil predicate on the "promo_code_id" field.
func PromoCodeIDNotNil() predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotNull(FieldPromoCodeID))
}

// FeeCentsEQ applies the EQ predicate on the "fee_cents" field.
func FeeCentsEQ(v int64) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldFeeCents, v))
}

// FeeCentsNEQ applies the NEQ predicate on the "fee_cents" field.
func FeeCentsNEQ(v int64) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNEQ(FieldFeeCents, v))
}

// FeeCentsIn applies the In predicate on the "fee_cents" field.
func FeeCentsIn(vs ...int64) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIn(FieldFeeCents, vs...))
}

// FeeCentsNotIn applies the NotIn predicate on the "fee_cents" field.
func FeeCentsNotIn(vs ...int64) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotIn(FieldFeeCents, vs...))
}

// FeeCentsGT applies the GT predicate on the "fee_cents" field.
func FeeCentsGT(v int64) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGT(FieldFeeCents, v))
}

// FeeCentsGTE applies the GTE predicate on the "fee_cents" field.
func FeeCentsGTE(v int64) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGTE(FieldFeeCents, v))
}

// FeeCentsLT applies the LT predicate on the "fee_cents" field.
func FeeCentsLT(v int64) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLT(FieldFeeCents, v))
}

// FeeCentsLTE applies the LTE predicate on the "fee_cents" field.
func FeeCentsLTE(v int64) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLTE(FieldFeeCents, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotIn(FieldStatus, vs...))
}

// EndsAtEQ applies the EQ predicate on the "ends_at" field.
func EndsAtEQ(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldEndsAt, v))
}

// EndsAtNEQ applies the NEQ predicate on the "ends_at" field.
func EndsAtNEQ(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNEQ(FieldEndsAt, v))
}

// EndsAtIn applies the In predicate on the "ends_at" field.
func EndsAtIn(vs ...time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIn(FieldEndsAt, vs...))
}

// EndsAtNotIn applies the NotIn predicate on the "ends_at" field.
func EndsAtNotIn(vs ...time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotIn(FieldEndsAt, vs...))
}

// EndsAtGT applies the GT predicate on the "ends_at" field.
func EndsAtGT(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGT(FieldEndsAt, v))
}

// EndsAtGTE applies the GTE predicate on the "ends_at" field.
func EndsAtGTE(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGTE(FieldEndsAt, v))
}

// EndsAtLT applies the LT predicate on the "ends_at" field.
func EndsAtLT(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLT(FieldEndsAt, v))
}

// EndsAtLTE applies the LTE predicate on the "ends_at" field.
func EndsAtLTE(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLTE(FieldEndsAt, v))
}

// CurrentPeriodStartEQ applies the EQ predicate on the "current_period_start" field.
func CurrentPeriodStartEQ(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartNEQ applies the NEQ predicate on the "current_period_start" field.
func CurrentPeriodStartNEQ(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNEQ(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartIn applies the In predicate on the "current_period_start" field.
func CurrentPeriodStartIn(vs ...time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIn(FieldCurrentPeriodStart, vs...))
}

// CurrentPeriodStartNotIn applies the NotIn predicate on the "current_period_start" field.
func CurrentPeriodStartNotIn(vs ...time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotIn(FieldCurrentPeriodStart, vs...))
}

// CurrentPeriodStartGT applies the GT predicate on the "current_period_start" field.
func CurrentPeriodStartGT(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGT(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartGTE applies the GTE predicate on the "current_period_start" field.
func CurrentPeriodStartGTE(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGTE(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartLT applies the LT predicate on the "current_period_start" field.
func CurrentPeriodStartLT(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLT(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartLTE applies the LTE predicate on the "current_period_start" field.
func CurrentPeriodStartLTE(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLTE(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartIsNil applies the IsNil predicate on the "current_period_start" field.
func CurrentPeriodStartIsNil() predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIsNull(FieldCurrentPeriodStart))
}

// CurrentPeriodStartNotNil applies the NotNil predicate on the "current_period_start" field.
func CurrentPeriodStartNotNil() predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotNull(FieldCurrentPeriodStart))
}

// CurrentPeriodEndEQ applies the EQ predicate on the "current_period_end" field.
func CurrentPeriodEndEQ(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldCurrentPeriodEnd, v))
}

// CurrentPeriodEndNEQ applies the NEQ predicate on the "current_period_end" field.
func CurrentPeriodEndNEQ(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNEQ(FieldCurrentPeriodEnd, v))
}

// CurrentPeriodEndIn applies the In predicate on the "current_period_end" field.
func CurrentPeriodEndIn(vs ...time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIn(FieldCurrentPeriodEnd, vs...))
}

// CurrentPeriodEndNotIn applies the NotIn predicate on the "current_period_end" field.
func CurrentPeriodEndNotIn(vs ...time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotIn(FieldCurrentPeriodEnd, vs...))
}

// CurrentPeriodEndGT applies the GT predicate on the "current_period_end" field.
func CurrentPeriodEndGT(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGT(FieldCurrentPeriodEnd, v))
}

// CurrentPeriodEndGTE applies the GTE predicate on the "current_period_end" field.
func CurrentPeriodEndGTE(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGTE(FieldCurrentPeriodEnd, v))
}

// CurrentPeriodEndLT applies the LT predicate on the "current_period_end" field.
func CurrentPeriodEndLT(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLT(FieldCurrentPeriodEnd, v))
}

// CurrentPeriodEndLTE applies the LTE predicate on the "current_period_end" field.
func CurrentPeriodEndLTE(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLTE(FieldCurrentPeriodEnd, v))
}

// CurrentPeriodEndIsNil applies the IsNil predicate on the "current_period_end" field.
func CurrentPeriodEndIsNil() predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIsNull(FieldCurrentPeriodEnd))
}

// CurrentPeriodEndNotNil applies the NotNil predicate on the "current_period_end" field.
func CurrentPeriodEndNotNil() predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotNull(FieldCurrentPeriodEnd))
}

// CanceledAtEQ applies the EQ predicate on the "canceled_at" field.
func CanceledAtEQ(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldCanceledAt, v))
}

// CanceledAtNEQ applies the NEQ predicate on the "canceled_at" field.
func CanceledAtNEQ(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNEQ(FieldCanceledAt, v))
}

// CanceledAtIn applies the In predicate on the "canceled_at" field.
func CanceledAtIn(vs ...time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIn(FieldCanceledAt, vs...))
}

// CanceledAtNotIn applies the NotIn predicate on the "canceled_at" field.
func CanceledAtNotIn(vs ...time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotIn(FieldCanceledAt, vs...))
}

// CanceledAtGT applies the GT predicate on the "canceled_at" field.
func CanceledAtGT(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGT(FieldCanceledAt, v))
}

// CanceledAtGTE applies the GTE predicate on the "canceled_at" field.
func CanceledAtGTE(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGTE(FieldCanceledAt, v))
}

// CanceledAtLT applies the LT predicate on the "canceled_at" field.
func CanceledAtLT(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLT(FieldCanceledAt, v))
}

// CanceledAtLTE applies the LTE predicate on the "canceled_at" field.
func CanceledAtLTE(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLTE(FieldCanceledAt, v))
}

// CanceledAtIsNil applies the IsNil predicate on the "canceled_at" field.
func CanceledAtIsNil() predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIsNull(FieldCanceledAt))
}

// CanceledAtNotNil applies the NotNil predicate on the "canceled_at" field.
func CanceledAtNotNil() predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotNull(FieldCanceledAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAttribution applies the HasEdge predicate on the "attribution" edge.
func HasAttribution() predicate.BusinessSubscription {
	return predicate.BusinessSubscription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AttributionTable, AttributionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttributionWith applies the HasEdge predicate on the "attribution" edge with a given conditions (other predicates).
func HasAttributionWith(preds ...predicate.Attribution) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(func(s *sql.Selector) {
		step := newAttributionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPromoCode applies the HasEdge predicate on the "promo_code" edge.
func HasPromoCode() predicate.BusinessSubscription {
	return predicate.BusinessSubscription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PromoCodeTable, PromoCodeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPromoCodeWith applies the HasEdge predicate on the "promo_code" edge with a given conditions (other predicates).
func HasPromoCodeWith(preds ...predicate.PromoCode) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(func(s *sql.Selector) {
		step := newPromoCodeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLedgerEntries applies the HasEdge predicate on the "ledger_entries" edge.
func HasLedgerEntries() predicate.BusinessSubscription {
	return predicate.BusinessSubscription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LedgerEntriesTable, LedgerEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLedgerEntriesWith applies the HasEdge predicate on the "ledger_entries" edge with a given conditions (other predicates).
func HasLedgerEntriesWith(preds ...predicate.LedgerEntry) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(func(s *sql.Selector) {
		step := newLedgerEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BusinessSubscription) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BusinessSubscription) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BusinessSubscription) predicate.BusinessSubscription {
	return predicate.BusinessSubscription(sql.NotPredicates(p))
}
