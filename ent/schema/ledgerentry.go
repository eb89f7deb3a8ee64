package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LedgerEntry holds the schema definition for the LedgerEntry entity.
// The ledger is append-only: amounts are never mutated in place. The only
// in-place write is the status flip to reversed, paired with a new negative
// entry so both sides of a reversal stay visible for audit.
type LedgerEntry struct {
	ent.Schema
}

// Fields of the LedgerEntry.
func (LedgerEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Unique().
			NotEmpty().
			Comment("Externally-supplied event id; the unique constraint is the idempotency guard"),
		field.Enum("event_type").
			Values("invoice_paid", "order_paid", "refund", "chargeback").
			Comment("Upstream event family that produced this entry"),
		field.Int("affiliate_id").
			Comment("Affiliate credited or debited"),
		field.Int64("amount_cents").
			Comment("Signed commission amount in cents; negative for reversal entries"),
		field.Int64("base_amount_cents").
			Comment("Amount the upstream event was denominated in, used for proportional reversal"),
		field.String("currency").
			Default("EUR").
			MaxLen(3).
			Comment("ISO 4217 currency code"),
		field.Enum("status").
			Values("pending", "available", "reversed").
			Default("pending").
			Comment("Hold state; pending entries become available once available_at passes"),
		field.Time("available_at").
			Optional().
			Nillable().
			Comment("When a pending entry becomes available, null for terminal entries"),
		field.Int("subscription_id").
			Optional().
			Nillable().
			Comment("Originating business subscription, for invoice entries"),
		field.JSON("metadata", map[string]string{}).
			Optional().
			Comment("Computation inputs preserved for audit (base amount, discount, tier, counterpart ids)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the LedgerEntry.
func (LedgerEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("affiliate", Affiliate.Type).
			Ref("ledger_entries").
			Field("affiliate_id").
			Unique().
			Required().
			Comment("Credited affiliate"),
		edge.From("subscription", BusinessSubscription.Type).
			Ref("ledger_entries").
			Field("subscription_id").
			Unique().
			Comment("Originating subscription"),
	}
}

// Indexes of the LedgerEntry.
func (LedgerEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id").Unique(),
		index.Fields("affiliate_id", "status"),
		index.Fields("status", "available_at"),
		index.Fields("created_at"),
	}
}
