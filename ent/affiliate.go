// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/user"
)

// Affiliate is the model entity for the Affiliate schema.
type Affiliate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// User who owns this affiliate account
	UserID int `json:"user_id,omitempty"`
	// Affiliate status; never hard-deleted so ledger history stays attributable
	Status affiliate.Status `json:"status,omitempty"`
	// Upline affiliate; presence makes this a sub-affiliate (depth is at most 1)
	ParentID *int `json:"parent_id,omitempty"`
	// Custom subscription commission percentage, overrides the tier default
	SubscriptionPct *float64 `json:"subscription_pct,omitempty"`
	// Custom per-side order commission percentage, overrides the tier default
	OrderPct *float64 `json:"order_pct,omitempty"`
	// Custom upline percentage for subscription commissions earned through children
	ParentSubscriptionPct *float64 `json:"parent_subscription_pct,omitempty"`
	// Custom upline per-side percentage for order commissions earned through children
	ParentOrderPct *float64 `json:"parent_order_pct,omitempty"`
	// Total clicks on this affiliate's referral links
	TotalClicks int `json:"total_clicks,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AffiliateQuery when eager-loading is set.
	Edges        AffiliateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AffiliateEdges holds the relations/edges for other nodes in the graph.
type AffiliateEdges struct {
	// Owning user
	User *User `json:"user,omitempty"`
	// Upline affiliate
	Parent *Affiliate `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*Affiliate `json:"children,omitempty"`
	// Trackable referral links
	Links []*ReferralLink `json:"links,omitempty"`
	// Self-funded discount codes for business subscriptions
	PromoCodes []*PromoCode `json:"promo_codes,omitempty"`
	// Users acquired through this affiliate
	Attributions []*Attribution `json:"attributions,omitempty"`
	// Commission ledger entries credited to this affiliate
	LedgerEntries []*LedgerEntry `json:"ledger_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AffiliateEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AffiliateEdges) ParentOrErr() (*Affiliate, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: affiliate.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e AffiliateEdges) ChildrenOrErr() ([]*Affiliate, error) {
	if e.loadedTypes[2] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// LinksOrErr returns the Links value or an error if the edge
// was not loaded in eager-loading.
func (e AffiliateEdges) LinksOrErr() ([]*ReferralLink, error) {
	if e.loadedTypes[3] {
		return e.Links, nil
	}
	return nil, &NotLoadedError{edge: "links"}
}

// PromoCodesOrErr returns the PromoCodes value or an error if the edge
// was not loaded in eager-loading.
func (e AffiliateEdges) PromoCodesOrErr() ([]*PromoCode, error) {
	if e.loadedTypes[4] {
		return e.PromoCodes, nil
	}
	return nil, &NotLoadedError{edge: "promo_codes"}
}

// AttributionsOrErr returns the Attributions value or an error if the edge
// was not loaded in eager-loading.
func (e AffiliateEdges) AttributionsOrErr() ([]*Attribution, error) {
	if e.loadedTypes[5] {
		return e.Attributions, nil
	}
	return nil, &NotLoadedError{edge: "attributions"}
}

// LedgerEntriesOrErr returns the LedgerEntries value or an error if the edge
// was not loaded in eager-loading.
func (e AffiliateEdges) LedgerEntriesOrErr() ([]*LedgerEntry, error) {
	if e.loadedTypes[6] {
		return e.LedgerEntries, nil
	}
	return nil, &NotLoadedError{edge: "ledger_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Affiliate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case affiliate.FieldSubscriptionPct, affiliate.FieldOrderPct, affiliate.FieldParentSubscriptionPct, affiliate.FieldParentOrderPct:
			values[i] = new(sql.NullFloat64)
		case affiliate.FieldID, affiliate.FieldUserID, affiliate.FieldParentID, affiliate.FieldTotalClicks:
			values[i] = new(sql.NullInt64)
		case affiliate.FieldStatus:
			values[i] = new(sql.NullString)
		case affiliate.FieldCreatedAt, affiliate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Affiliate fields.
func (_m *Affiliate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case affiliate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case affiliate.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case affiliate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = affiliate.Status(value.String)
			}
		case affiliate.FieldParentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(int)
				*_m.ParentID = int(value.Int64)
			}
		case affiliate.FieldSubscriptionPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_pct", values[i])
			} else if value.Valid {
				_m.SubscriptionPct = new(float64)
				*_m.SubscriptionPct = value.Float64
			}
		case affiliate.FieldOrderPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field order_pct", values[i])
			} else if value.Valid {
				_m.OrderPct = new(float64)
				*_m.OrderPct = value.Float64
			}
		case affiliate.FieldParentSubscriptionPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_subscription_pct", values[i])
			} else if value.Valid {
				_m.ParentSubscriptionPct = new(float64)
				*_m.ParentSubscriptionPct = value.Float64
			}
		case affiliate.FieldParentOrderPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_order_pct", values[i])
			} else if value.Valid {
				_m.ParentOrderPct = new(float64)
				*_m.ParentOrderPct = value.Float64
			}
		case affiliate.FieldTotalClicks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_clicks", values[i])
			} else if value.Valid {
				_m.TotalClicks = int(value.Int64)
			}
		case affiliate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case affiliate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Affiliate.
// This includes values selected through modifiers, order, etc.
func (_m *Affiliate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Affiliate entity.
func (_m *Affiliate) QueryUser() *UserQuery {
	return NewAffiliateClient(_m.config).QueryUser(_m)
}

// QueryParent queries the "parent" edge of the Affiliate entity.
func (_m *Affiliate) QueryParent() *AffiliateQuery {
	return NewAffiliateClient(_m.config).QueryParent(_m)
}

// QueryChildren queries the "children" edge of the Affiliate entity.
func (_m *Affiliate) QueryChildren() *AffiliateQuery {
	return NewAffiliateClient(_m.config).QueryChildren(_m)
}

// QueryLinks queries the "links" edge of the Affiliate entity.
func (_m *Affiliate) QueryLinks() *ReferralLinkQuery {
	return NewAffiliateClient(_m.config).QueryLinks(_m)
}

// QueryPromoCodes queries the "promo_codes" edge of the Affiliate entity.
func (_m *Affiliate) QueryPromoCodes() *PromoCodeQuery {
	return NewAffiliateClient(_m.config).QueryPromoCodes(_m)
}

// QueryAttributions queries the "attributions" edge of the Affiliate entity.
func (_m *Affiliate) QueryAttributions() *AttributionQuery {
	return NewAffiliateClient(_m.config).QueryAttributions(_m)
}

// QueryLedgerEntries queries the "ledger_entries" edge of the Affiliate entity.
func (_m *Affiliate) QueryLedgerEntries() *LedgerEntryQuery {
	return NewAffiliateClient(_m.config).QueryLedgerEntries(_m)
}

// Update returns a builder for updating this Affiliate.
// Note that you need to call Affiliate.Unwrap() before calling this method if this Affiliate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Affiliate) Update() *AffiliateUpdateOne {
	return NewAffiliateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Affiliate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Affiliate) Unwrap() *Affiliate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Affiliate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Affiliate) String() string {
	var builder strings.Builder
	builder.WriteString("Affiliate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SubscriptionPct; v != nil {
		builder.WriteString("subscription_pct=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OrderPct; v != nil {
		builder.WriteString("order_pct=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ParentSubscriptionPct; v != nil {
		builder.WriteString("parent_subscription_pct=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ParentOrderPct; v != nil {
		builder.WriteString("parent_order_pct=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_clicks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalClicks))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Affiliates is a parsable slice of Affiliate.
type Affiliates []*Affiliate
