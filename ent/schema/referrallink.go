package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReferralLink holds the schema definition for the ReferralLink entity.
type ReferralLink struct {
	ent.Schema
}

// Fields of the ReferralLink.
func (ReferralLink) Fields() []ent.Field {
	return []ent.Field{
		field.Int("affiliate_id").
			Comment("Affiliate this link belongs to"),
		field.String("code").
			Unique().
			NotEmpty().
			MaxLen(32).
			Comment("Unique short tracking code, immutable once issued"),
		field.Bool("active").
			Default(true).
			Comment("Deactivated links no longer resolve"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the ReferralLink.
func (ReferralLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("affiliate", Affiliate.Type).
			Ref("links").
			Field("affiliate_id").
			Unique().
			Required().
			Comment("Owning affiliate"),
		edge.To("clicks", ReferralClick.Type).
			Comment("Clicks recorded against this link"),
	}
}

// Indexes of the ReferralLink.
func (ReferralLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("code").Unique(),
		index.Fields("affiliate_id"),
	}
}
