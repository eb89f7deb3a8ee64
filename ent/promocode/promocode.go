// Code generated by ent, DO NOT EDIT.

package promocode

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the promocode type in the database.
	Label = "promo_code"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAffiliateID holds the string denoting the affiliate_id field in the database.
	FieldAffiliateID = "affiliate_id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldDiscountSharePct holds the string denoting the discount_share_pct field in the database.
	FieldDiscountSharePct = "discount_share_pct"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAffiliate holds the string denoting the affiliate edge name in mutations.
	EdgeAffiliate = "affiliate"
	// EdgeSubscriptions holds the string denoting the subscriptions edge name in mutations.
	EdgeSubscriptions = "subscriptions"
	// Table holds the table name of the promocode in the database.
	Table = "promo_codes"
	// AffiliateTable is the table that holds the affiliate relation/edge.
	AffiliateTable = "promo_codes"
	// AffiliateInverseTable is the table name for the Affiliate entity.
	// It exists in this package in order to avoid circular dependency with the "affiliate" package.
	AffiliateInverseTable = "affiliates"
	// AffiliateColumn is the table column denoting the affiliate relation/edge.
	AffiliateColumn = "affiliate_id"
	// SubscriptionsTable is the table that holds the subscriptions relation/edge.
	SubscriptionsTable = "business_subscriptions"
	// SubscriptionsInverseTable is the table name for the BusinessSubscription entity.
	// It exists in this package in order to avoid circular dependency with the "businesssubscription" package.
	SubscriptionsInverseTable = "business_subscriptions"
	// SubscriptionsColumn is the table column denoting the subscriptions relation/edge.
	SubscriptionsColumn = "promo_code_id"
)

// Columns holds all SQL columns for promocode fields.
var Columns = []string{
	FieldID,
	FieldAffiliateID,
	FieldCode,
	FieldDiscountSharePct,
	FieldActive,
	FieldCreatedAt,
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
	// CodeValidator is a validator for the "code" field. It is called by the builders before save.
	CodeValidator func(string) error
	// DiscountSharePctValidator is a validator for the "discount_share_pct" field. It is called by the builders before save.
	DiscountSharePctValidator func(float64) error
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the PromoCode queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAffiliateID orders the results by the affiliate_id field.
func ByAffiliateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffiliateID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByDiscountSharePct orders the results by the discount_share_pct field.
func ByDiscountSharePct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscountSharePct, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAffiliateField orders the results by affiliate field.
func ByAffiliateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAffiliateStep(), sql.OrderByField(field, opts...))
	}
}

// BySubscriptionsCount orders the results by subscriptions count.
func BySubscriptionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubscriptionsStep(), opts...)
	}
}

// BySubscriptions orders the results by subscriptions terms.
func BySubscriptions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubscriptionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAffiliateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AffiliateInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AffiliateTable, AffiliateColumn),
	)
}
func newSubscriptionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubscriptionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubscriptionsTable, SubscriptionsColumn),
	)
}
