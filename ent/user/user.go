// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldIsBusiness holds the string denoting the is_business field in the database.
	FieldIsBusiness = "is_business"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAffiliate holds the string denoting the affiliate edge name in mutations.
	EdgeAffiliate = "affiliate"
	// EdgeAttributions holds the string denoting the attributions edge name in mutations.
	EdgeAttributions = "attributions"
	// Table holds the table name of the user in the database.
	Table = "users"
	// AffiliateTable is the table that holds the affiliate relation/edge.
	AffiliateTable = "affiliates"
	// AffiliateInverseTable is the table name for the Affiliate entity.
	// It exists in this package in order to avoid circular dependency with the "affiliate" package.
	AffiliateInverseTable = "affiliates"
	// AffiliateColumn is the table column denoting the affiliate relation/edge.
	AffiliateColumn = "user_id"
	// AttributionsTable is the table that holds the attributions relation/edge.
	AttributionsTable = "attributions"
	// AttributionsInverseTable is the table name for the Attribution entity.
	// It exists in this package in order to avoid circular dependency with the "attribution" package.
	AttributionsInverseTable = "attributions"
	// AttributionsColumn is the table column denoting the attributions relation/edge.
	AttributionsColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEmail,
	FieldIsBusiness,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultIsBusiness holds the default value on creation for the "is_business" field.
	DefaultIsBusiness bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByIsBusiness orders the results by the is_business field.
func ByIsBusiness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBusiness, opts...).ToFunc()
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
func newAffiliateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AffiliateInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, AffiliateTable, AffiliateColumn),
	)
}
func newAttributionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttributionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttributionsTable, AttributionsColumn),
	)
}
