package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReferralClick holds the schema definition for the ReferralClick entity.
type ReferralClick struct {
	ent.Schema
}

// Fields of the ReferralClick.
func (ReferralClick) Fields() []ent.Field {
	return []ent.Field{
		field.Int("link_id").
			Comment("Referral link that was visited"),
		field.String("ip_address").
			Optional().
			Nillable().
			Comment("Visitor IP address"),
		field.String("user_agent").
			Optional().
			Nillable().
			Comment("Visitor user agent"),
		field.String("referrer").
			Optional().
			Nillable().
			Comment("HTTP referrer of the visit"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Click timestamp"),
	}
}

// Edges of the ReferralClick.
func (ReferralClick) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("link", ReferralLink.Type).
			Ref("clicks").
			Field("link_id").
			Unique().
			Required().
			Comment("Visited link"),
	}
}

// Indexes of the ReferralClick.
func (ReferralClick) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("link_id"),
		index.Fields("created_at"),
	}
}
