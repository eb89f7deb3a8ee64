package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromoCode holds the schema definition for the PromoCode entity.
// The discount is funded from the owning affiliate's commission share,
// never from the platform's.
type PromoCode struct {
	ent.Schema
}

// Fields of the PromoCode.
func (PromoCode) Fields() []ent.Field {
	return []ent.Field{
		field.Int("affiliate_id").
			Comment("Affiliate funding this discount"),
		field.String("code").
			Unique().
			NotEmpty().
			MaxLen(32).
			Comment("Unique promo code"),
		field.Float("discount_share_pct").
			Min(0).
			Max(100).
			Comment("Requested discount as a percentage of the affiliate's own commission share"),
		field.Bool("active").
			Default(true).
			Comment("Deactivated codes are ignored at checkout"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the PromoCode.
func (PromoCode) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("affiliate", Affiliate.Type).
			Ref("promo_codes").
			Field("affiliate_id").
			Unique().
			Required().
			Comment("Owning affiliate"),
		edge.To("subscriptions", BusinessSubscription.Type).
			Comment("Subscriptions that redeemed this code"),
	}
}

// Indexes of the PromoCode.
func (PromoCode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("code").Unique(),
		index.Fields("affiliate_id"),
	}
}
