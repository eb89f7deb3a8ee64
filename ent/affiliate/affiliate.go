// Code generated by ent, DO NOT EDIT.

package affiliate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the affiliate type in the database.
	Label = "affiliate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldSubscriptionPct holds the string denoting the subscription_pct field in the database.
	FieldSubscriptionPct = "subscription_pct"
	// FieldOrderPct holds the string denoting the order_pct field in the database.
	FieldOrderPct = "order_pct"
	// FieldParentSubscriptionPct holds the string denoting the parent_subscription_pct field in the database.
	FieldParentSubscriptionPct = "parent_subscription_pct"
	// FieldParentOrderPct holds the string denoting the parent_order_pct field in the database.
	FieldParentOrderPct = "parent_order_pct"
	// FieldTotalClicks holds the string denoting the total_clicks field in the database.
	FieldTotalClicks = "total_clicks"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeChildren holds the string denoting the children edge name in mutations.
	EdgeChildren = "children"
	// EdgeLinks holds the string denoting the links edge name in mutations.
	EdgeLinks = "links"
	// EdgePromoCodes holds the string denoting the promo_codes edge name in mutations.
	EdgePromoCodes = "promo_codes"
	// EdgeAttributions holds the string denoting the attributions edge name in mutations.
	EdgeAttributions = "attributions"
	// EdgeLedgerEntries holds the string denoting the ledger_entries edge name in mutations.
	EdgeLedgerEntries = "ledger_entries"
	// Table holds the table name of the affiliate in the database.
	Table = "affiliates"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "affiliates"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "affiliates"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_id"
	// ChildrenTable is the table that holds the children relation/edge.
	ChildrenTable = "affiliates"
	// ChildrenColumn is the table column denoting the children relation/edge.
	ChildrenColumn = "parent_id"
	// LinksTable is the table that holds the links relation/edge.
	LinksTable = "referral_links"
	// LinksInverseTable is the table name for the ReferralLink entity.
	// It exists in this package in order to avoid circular dependency with the "referrallink" package.
	LinksInverseTable = "referral_links"
	// LinksColumn is the table column denoting the links relation/edge.
	LinksColumn = "affiliate_id"
	// PromoCodesTable is the table that holds the promo_codes relation/edge.
	PromoCodesTable = "promo_codes"
	// PromoCodesInverseTable is the table name for the PromoCode entity.
	// It exists in this package in order to avoid circular dependency with the "promocode" package.
	PromoCodesInverseTable = "promo_codes"
	// PromoCodesColumn is the table column denoting the promo_codes relation/edge.
	PromoCodesColumn = "affiliate_id"
	// AttributionsTable is the table that holds the attributions relation/edge.
	AttributionsTable = "attributions"
	// AttributionsInverseTable is the table name for the Attribution entity.
	// It exists in this package in order to avoid circular dependency with the "attribution" package.
	AttributionsInverseTable = "attributions"
	// AttributionsColumn is the table column denoting the attributions relation/edge.
	AttributionsColumn = "affiliate_id"
	// LedgerEntriesTable is the table that holds the ledger_entries relation/edge.
	LedgerEntriesTable = "ledger_entries"
	// LedgerEntriesInverseTable is the table name for the LedgerEntry entity.
	// It exists in this package in order to avoid circular dependency with the "ledgerentry" package.
	LedgerEntriesInverseTable = "ledger_entries"
	// LedgerEntriesColumn is the table column denoting the ledger_entries relation/edge.
	LedgerEntriesColumn = "affiliate_id"
)

// Columns holds all SQL columns for affiliate fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStatus,
	FieldParentID,
	FieldSubscriptionPct,
	FieldOrderPct,
	FieldParentSubscriptionPct,
	FieldParentOrderPct,
	FieldTotalClicks,
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
	// DefaultTotalClicks holds the default value on creation for the "total_clicks" field.
	DefaultTotalClicks int
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
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return nil
	default:
		return fmt.Errorf("affiliate: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Affiliate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// BySubscriptionPct orders the results by the subscription_pct field.
func BySubscriptionPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscriptionPct, opts...).ToFunc()
}

// ByOrderPct orders the results by the order_pct field.
func ByOrderPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderPct, opts...).ToFunc()
}

// ByParentSubscriptionPct orders the results by the parent_subscription_pct field.
func ByParentSubscriptionPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentSubscriptionPct, opts...).ToFunc()
}

// ByParentOrderPct orders the results by the parent_order_pct field.
func ByParentOrderPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentOrderPct, opts...).ToFunc()
}

// ByTotalClicks orders the results by the total_clicks field.
func ByTotalClicks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalClicks, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByChildrenCount orders the results by children count.
func ByChildrenCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChildrenStep(), opts...)
	}
}

// ByChildren orders the results by children terms.
func ByChildren(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildrenStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLinksCount orders the results by links count.
func ByLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLinksStep(), opts...)
	}
}

// ByLinks orders the results by links terms.
func ByLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPromoCodesCount orders the results by promo_codes count.
func ByPromoCodesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPromoCodesStep(), opts...)
	}
}

// ByPromoCodes orders the results by promo_codes terms.
func ByPromoCodes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPromoCodesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttributionsCount orders the results by attributions count.
func ByAttributionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttributionsStep(), opts...)
	}
}

// ByAttributions orders the results by attributions terms.
func ByAttributions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttributionsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
	)
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newChildrenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
	)
}
func newLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LinksTable, LinksColumn),
	)
}
func newPromoCodesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PromoCodesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PromoCodesTable, PromoCodesColumn),
	)
}
func newAttributionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttributionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttributionsTable, AttributionsColumn),
	)
}
func newLedgerEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LedgerEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LedgerEntriesTable, LedgerEntriesColumn),
	)
}
