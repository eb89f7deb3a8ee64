package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BusinessSubscription holds the schema definition for the
// BusinessSubscription entity. Commission is only computed on its invoices
// while now <= ends_at; unattributed subscriptions exist and simply never
// produce ledger entries.
type BusinessSubscription struct {
	ent.Schema
}

// Fields of the BusinessSubscription.
func (BusinessSubscription) Fields() []ent.Field {
	return []ent.Field{
		field.String("stripe_subscription_id").
			Unique().
			NotEmpty().
			Comment("Stripe subscription id, the external key invoices reference"),
		field.Int("user_id").
			Comment("Business user paying the subscription"),
		field.Int("attribution_id").
			Optional().
			Nillable().
			Comment("Originating attribution, null for unattributed subscriptions"),
		field.Int("promo_code_id").
			Optional().
			Nillable().
			Comment("Promo code redeemed at checkout, if any"),
		field.Int64("fee_cents").
			Positive().
			Comment("Pre-discount base subscription price in cents"),
		field.Enum("status").
			Values("active", "canceled", "past_due", "unpaid").
			Default("active").
			Comment("Billing status mirrored from Stripe"),
		field.Time("ends_at").
			Comment("Commission window end, mirrors the attribution window"),
		field.Time("current_period_start").
			Optional().
			Nillable().
			Comment("Current billing period start"),
		field.Time("current_period_end").
			Optional().
			Nillable().
			Comment("Current billing period end"),
		field.Time("canceled_at").
			Optional().
			Nillable().
			Comment("When the subscription was canceled"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the BusinessSubscription.
func (BusinessSubscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("attribution", Attribution.Type).
			Ref("subscriptions").
			Field("attribution_id").
			Unique().
			Comment("Originating attribution"),
		edge.From("promo_code", PromoCode.Type).
			Ref("subscriptions").
			Field("promo_code_id").
			Unique().
			Comment("Redeemed promo code"),
		edge.To("ledger_entries", LedgerEntry.Type).
			Comment("Commission entries generated by this subscription's invoices"),
	}
}

// Indexes of the BusinessSubscription.
func (BusinessSubscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stripe_subscription_id").Unique(),
		index.Fields("user_id"),
		index.Fields("status"),
	}
}
