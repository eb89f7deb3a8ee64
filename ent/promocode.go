// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/promocode"
)

// PromoCode is the model entity for the PromoCode schema.
type PromoCode struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Affiliate funding this discount
	AffiliateID int `json:"affiliate_id,omitempty"`
	// Unique promo code
	Code string `json:"code,omitempty"`
	// Requested discount as a percentage of the affiliate's own commission share
	DiscountSharePct float64 `json:"discount_share_pct,omitempty"`
	// Deactivated codes are ignored at checkout
	Active bool `json:"active,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PromoCodeQuery when eager-loading is set.
	Edges        PromoCodeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PromoCodeEdges holds the relations/edges for other nodes in the graph.
type PromoCodeEdges struct {
	// Owning affiliate
	Affiliate *Affiliate `json:"affiliate,omitempty"`
	// Subscriptions that redeemed this code
	Subscriptions []*BusinessSubscription `json:"subscriptions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AffiliateOrErr returns the Affiliate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PromoCodeEdges) AffiliateOrErr() (*Affiliate, error) {
	if e.Affiliate != nil {
		return e.Affiliate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: affiliate.Label}
	}
	return nil, &NotLoadedError{edge: "affiliate"}
}

// SubscriptionsOrErr returns the Subscriptions value or an error if the edge
// was not loaded in eager-loading.
func (e PromoCodeEdges) SubscriptionsOrErr() ([]*BusinessSubscription, error) {
	if e.loadedTypes[1] {
		return e.Subscriptions, nil
	}
	return nil, &NotLoadedError{edge: "subscriptions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PromoCode) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case promocode.FieldActive:
			values[i] = new(sql.NullBool)
		case promocode.FieldDiscountSharePct:
			values[i] = new(sql.NullFloat64)
		case promocode.FieldID, promocode.FieldAffiliateID:
			values[i] = new(sql.NullInt64)
		case promocode.FieldCode:
			values[i] = new(sql.NullString)
		case promocode.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PromoCode fields.
func (_m *PromoCode) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case promocode.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case promocode.FieldAffiliateID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_id", values[i])
			} else if value.Valid {
				_m.AffiliateID = int(value.Int64)
			}
		case promocode.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case promocode.FieldDiscountSharePct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field discount_share_pct", values[i])
			} else if value.Valid {
				_m.DiscountSharePct = value.Float64
			}
		case promocode.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case promocode.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PromoCode.
// This includes values selected through modifiers, order, etc.
func (_m *PromoCode) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAffiliate queries the "affiliate" edge of the PromoCode entity.
func (_m *PromoCode) QueryAffiliate() *AffiliateQuery {
	return NewPromoCodeClient(_m.config).QueryAffiliate(_m)
}

// QuerySubscriptions queries the "subscriptions" edge of the PromoCode entity.
func (_m *PromoCode) QuerySubscriptions() *BusinessSubscriptionQuery {
	return NewPromoCodeClient(_m.config).QuerySubscriptions(_m)
}

// Update returns a builder for updating this PromoCode.
// Note that you need to call PromoCode.Unwrap() before calling this method if this PromoCode
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PromoCode) Update() *PromoCodeUpdateOne {
	return NewPromoCodeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PromoCode entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PromoCode) Unwrap() *PromoCode {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PromoCode is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PromoCode) String() string {
	var builder strings.Builder
	builder.WriteString("PromoCode(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("affiliate_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffiliateID))
	builder.WriteString(", ")
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("discount_share_pct=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiscountSharePct))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PromoCodes is a parsable slice of PromoCode.
type PromoCodes []*PromoCode
