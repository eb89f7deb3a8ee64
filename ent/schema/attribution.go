package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attribution holds the schema definition for the Attribution entity.
// A row is a time-windowed claim that a user was acquired through an
// affiliate. Rows are never mutated; they expire naturally once now passes
// ends_at.
type Attribution struct {
	ent.Schema
}

// Fields of the Attribution.
func (Attribution) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("Acquired user"),
		field.Int("affiliate_id").
			Comment("Affiliate responsible for the acquisition"),
		field.Enum("type").
			Values("user_signup", "business_signup").
			Comment("Signup family this attribution applies to"),
		field.Enum("source").
			Values("referral_link").
			Default("referral_link").
			Comment("How the attribution was established"),
		field.Time("starts_at").
			Comment("Window start (signup time)"),
		field.Time("ends_at").
			Comment("Window end (starts_at + attribution window)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Attribution.
func (Attribution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("attributions").
			Field("user_id").
			Unique().
			Required().
			Comment("Acquired user"),
		edge.From("affiliate", Affiliate.Type).
			Ref("attributions").
			Field("affiliate_id").
			Unique().
			Required().
			Comment("Referring affiliate"),
		edge.To("subscriptions", BusinessSubscription.Type).
			Comment("Business subscriptions originating from this attribution"),
	}
}

// Indexes of the Attribution.
func (Attribution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "type"),
		index.Fields("affiliate_id"),
		index.Fields("ends_at"),
	}
}
