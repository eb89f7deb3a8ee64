// Code generated by ent, DO NOT EDIT.

package referrallink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the referrallink type in the database.
	Label = "referral_link"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAffiliateID holds the string denoting the affiliate_id field in the database.
	FieldAffiliateID = "affiliate_id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAffiliate holds the string denoting the affiliate edge name in mutations.
	EdgeAffiliate = "affiliate"
	// EdgeClicks holds the string denoting the clicks edge name in mutations.
	EdgeClicks = "clicks"
	// Table holds the table name of the referrallink in the database.
	Table = "referral_links"
	// AffiliateTable is the table that holds the affiliate relation/edge.
	AffiliateTable = "referral_links"
	// AffiliateInverseTable is the table name for the Affiliate entity.
	// It exists in this package in order to avoid circular dependency with the "affiliate" package.
	AffiliateInverseTable = "affiliates"
	// AffiliateColumn is the table column denoting the affiliate relation/edge.
	AffiliateColumn = "affiliate_id"
	// ClicksTable is the table that holds the clicks relation/edge.
	ClicksTable = "referral_clicks"
	// ClicksInverseTable is the table name for the ReferralClick entity.
	// It exists in this package in order to avoid circular dependency with the "referralclick" package.
	ClicksInverseTable = "referral_clicks"
	// ClicksColumn is the table column denoting the clicks relation/edge.
	ClicksColumn = "link_id"
)

// Columns holds all SQL columns for referrallink fields.
var Columns = []string{
	FieldID,
	FieldAffiliateID,
	FieldCode,
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
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ReferralLink queries.
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

// ByClicksCount orders the results by clicks count.
func ByClicksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newClicksStep(), opts...)
	}
}

// ByClicks orders the results by clicks terms.
func ByClicks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClicksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAffiliateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AffiliateInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AffiliateTable, AffiliateColumn),
	)
}
func newClicksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClicksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ClicksTable, ClicksColumn),
	)
}
