// Code generated by ent, DO NOT EDIT.

package businesssubscription

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the businesssubscription type in the database.
	Label = "business_subscription"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStripeSubscriptionID holds the string denoting the stripe_subscription_id field in the database.
	FieldStripeSubscriptionID = "stripe_subscription_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAttributionID holds the string denoting the attribution_id field in the database.
	FieldAttributionID = "attribution_id"
	// FieldPromoCodeID holds the string denoting the promo_code_id field in the database.
	FieldPromoCodeID = "promo_code_id"
	// FieldFeeCents holds the string denoting the fee_cents field in the database.
	FieldFeeCents = "fee_cents"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEndsAt holds the string denoting the ends_at field in the database.
	FieldEndsAt = "ends_at"
	// FieldCurrentPeriodStart holds the string denoting the current_period_start field in the database.
	FieldCurrentPeriodStart = "current_period_start"
	// FieldCurrentPeriodEnd holds the string denoting the current_period_end field in the database.
	FieldCurrentPeriodEnd = "current_period_end"
	// FieldCanceledAt holds the string denoting the canceled_at field in the database.
	FieldCanceledAt = "canceled_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAttribution holds the string denoting the attribution edge name in mutations.
	EdgeAttribution = "attribution"
	// EdgePromoCode holds the string denoting the promo_code edge name in mutations.
	EdgePromoCode = "promo_code"
	// EdgeLedgerEntries holds the string denoting the ledger_entries edge name in mutations.
	EdgeLedgerEntries = "ledger_entries"
	// Table holds the table name of the businesssubscription in the database.
	Table = "business_subscriptions"
	// AttributionTable is the table that holds the attribution relation/edge.
	AttributionTable = "business_subscriptions"
	// AttributionInverseTable is the table name for the Attribution entity.
	// It exists in this package in order to avoid circular dependency with the "attribution" package.
	AttributionInverseTable = "attributions"
	// AttributionColumn is the table column denoting the attribution relation/edge.
	AttributionColumn = "attribution_id"
	// PromoCodeTable is the table that holds the promo_code relation/edge.
	PromoCodeTable = "business_subscriptions"
	// PromoCodeInverseTable is the table name for the PromoCode entity.
	// It exists in this package in order to avoid circular dependency with the "promocode" package.
	PromoCodeInverseTable = "promo_codes"
	// PromoCodeColumn is the table column denoting the promo_code relation/edge.
	PromoCodeColumn = "promo_code_id"
	// LedgerEntriesTable is the table that holds the ledger_entries relation/edge.
	LedgerEntriesTable = "ledger_entries"
	// LedgerEntriesInverseTable is the table name for the LedgerEntry entity.
	// It exists in this package in order to avoid circular dependency with the "ledgerentry" package.
	LedgerEntriesInverseTable = "ledger_entries"
	// LedgerEntriesColumn is the table column denoting the ledger_entries relation/edge.
	LedgerEntriesColumn = "subscription_id"
)

// Columns holds all SQL columns for businesssubscription fields.
var Columns = []string{
	FieldID,
	FieldStripeSubscriptionID,
	FieldUserID,
	FieldAttributionID,
	FieldPromoCodeID,
	FieldFeeCents,
	FieldStatus,
	FieldEndsAt,
	FieldCurrentPeriodStart,
	FieldCurrentPeriodEnd,
	FieldCanceledAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StripeSubscriptionIDValidator is a validator for the "stripe_subscription_id" field. It is called by the builders before save.
	StripeSubscriptionIDValidator func(string) error
	// FeeCentsValidator is a validator for the "fee_cents" field. It is called by the builders before save.
	FeeCentsValidator func(int64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusCanceled Status = "canceled"
	StatusPastDue  Status = "past_due"
	StatusUnpaid   Status = "unpaid"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusCanceled, StatusPastDue, StatusUnpaid:
		return nil
	default:
		return fmt.Errorf("businesssubscription: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the BusinessSubscription queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStripeSubscriptionID orders the results by the stripe_subscription_id field.
func ByStripeSubscriptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripeSubscriptionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAttributionID orders the results by the attribution_id field.
func ByAttributionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttributionID, opts...).ToFunc()
}

// ByPromoCodeID orders the results by the promo_code_id field.
func ByPromoCodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromoCodeID, opts...).ToFunc()
}

// ByFeeCents orders the results by the fee_cents field.
func ByFeeCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeeCents, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEndsAt orders the results by the ends_at field.
func ByEndsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndsAt, opts...).ToFunc()
}

// ByCurrentPeriodStart orders the results by the current_period_start field.
func ByCurrentPeriodStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPeriodStart, opts...).ToFunc()
}

// ByCurrentPeriodEnd orders the results by the current_period_end field.
func ByCurrentPeriodEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPeriodEnd, opts...).ToFunc()
}

// ByCanceledAt orders the results by the canceled_at field.
func ByCanceledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanceledAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAttributionField orders the results by attribution field.
func ByAttributionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttributionStep(), sql.OrderByField(field, opts...))
	}
}

// ByPromoCodeField orders the results by promo_code field.
func ByPromoCodeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPromoCodeStep(), sql.OrderByField(field, opts...))
	}
}

// ByLedgerEntriesCount orders the results by ledger_entries count.
func ByLedgerEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLedgerEntriesStep(), opts...)
	}
}

// ByLedgerEntries orders the results by ledger_entries terms.
func ByLedgerEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLedgerEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAttributionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttributionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AttributionTable, AttributionColumn),
	)
}
func newPromoCodeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PromoCodeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PromoCodeTable, PromoCodeColumn),
	)
}
func newLedgerEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LedgerEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LedgerEntriesTable, LedgerEntriesColumn),
	)
}
