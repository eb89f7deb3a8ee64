package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Affiliate holds the schema definition for the Affiliate entity.
type Affiliate struct {
	ent.Schema
}

// Fields of the Affiliate.
func (Affiliate) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Unique().
			Comment("User who owns this affiliate account"),
		field.Enum("status").
			Values("active", "inactive", "suspended").
			Default("active").
			Comment("Affiliate status; never hard-deleted so ledger history stays attributable"),
		field.Int("parent_id").
			Optional().
			Nillable().
			Comment("Upline affiliate; presence makes this a sub-affiliate (depth is at most 1)"),
		field.Float("subscription_pct").
			Optional().
			Nillable().
			Comment("Custom subscription commission percentage, overrides the tier default"),
		field.Float("order_pct").
			Optional().
			Nillable().
			Comment("Custom per-side order commission percentage, overrides the tier default"),
		field.Float("parent_subscription_pct").
			Optional().
			Nillable().
			Comment("Custom upline percentage for subscription commissions earned through children"),
		field.Float("parent_order_pct").
			Optional().
			Nillable().
			Comment("Custom upline per-side percentage for order commissions earned through children"),
		field.Int("total_clicks").
			Default(0).
			Comment("Total clicks on this affiliate's referral links"),
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

// Edges of the Affiliate.
func (Affiliate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("affiliate").
			Field("user_id").
			Unique().
			Required().
			Comment("Owning user"),
		edge.To("children", Affiliate.Type).
			From("parent").
			Field("parent_id").
			Unique().
			Comment("Upline affiliate"),
		edge.To("links", ReferralLink.Type).
			Comment("Trackable referral links"),
		edge.To("promo_codes", PromoCode.Type).
			Comment("Self-funded discount codes for business subscriptions"),
		edge.To("attributions", Attribution.Type).
			Comment("Users acquired through this affiliate"),
		edge.To("ledger_entries", LedgerEntry.Type).
			Comment("Commission ledger entries credited to this affiliate"),
	}
}

// Indexes of the Affiliate.
func (Affiliate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
		index.Fields("parent_id"),
		index.Fields("status"),
	}
}
