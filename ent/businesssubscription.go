// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/promocode"
)

// BusinessSubscription is the model entity for the BusinessSubscription schema.
type BusinessSubscription struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stripe subscription id, the external key invoices reference
	StripeSubscriptionID string `json:"stripe_subscription_id,omitempty"`
	// Business user paying the subscription
	UserID int `json:"user_id,omitempty"`
	// Originating attribution, null for unattributed subscriptions
	AttributionID *int `json:"attribution_id,omitempty"`
	// Promo code redeemed at checkout, if any
	PromoCodeID *int `json:"promo_code_id,omitempty"`
	// Pre-discount base subscription price in cents
	FeeCents int64 `json:"fee_cents,omitempty"`
	// Billing status mirrored from Stripe
	Status businesssubscription.Status `json:"status,omitempty"`
	// Commission window end, mirrors the attribution window
	EndsAt time.Time `json:"ends_at,omitempty"`
	// Current billing period start
	CurrentPeriodStart *time.Time `json:"current_period_start,omitempty"`
	// Current billing period end
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
	// When the subscription was canceled
	CanceledAt *time.Time `json:"canceled_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BusinessSubscriptionQuery when eager-loading is set.
	Edges        BusinessSubscriptionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BusinessSubscriptionEdges holds the relations/edges for other nodes in the graph.
type BusinessSubscriptionEdges struct {
	// Originating attribution
	Attribution *Attribution `json:"attribution,omitempty"`
	// Redeemed promo code
	PromoCode *PromoCode `json:"promo_code,omitempty"`
	// Commission entries generated by this subscription's invoices
	LedgerEntries []*LedgerEntry `json:"ledger_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// AttributionOrErr returns the Attribution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BusinessSubscriptionEdges) AttributionOrErr() (*Attribution, error) {
	if e.Attribution != nil {
		return e.Attribution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: attribution.Label}
	}
	return nil, &NotLoadedError{edge: "attribution"}
}

// PromoCodeOrErr returns the PromoCode value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BusinessSubscriptionEdges) PromoCodeOrErr() (*PromoCode, error) {
	if e.PromoCode != nil {
		return e.PromoCode, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: promocode.Label}
	}
	return nil, &NotLoadedError{edge: "promo_code"}
}

// LedgerEntriesOrErr returns the LedgerEntries value or an error if the edge
// was not loaded in eager-loading.
func (e BusinessSubscriptionEdges) LedgerEntriesOrErr() ([]*LedgerEntry, error) {
	if e.loadedTypes[2] {
		return e.LedgerEntries, nil
	}
	return nil, &NotLoadedError{edge: "ledger_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BusinessSubscription) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case businesssubscription.FieldID, businesssubscription.FieldUserID, businesssubscription.FieldAttributionID, businesssubscription.FieldPromoCodeID, businesssubscription.FieldFeeCents:
			values[i] = new(sql.NullInt64)
		case businesssubscription.FieldStripeSubscriptionID, businesssubscription.FieldStatus:
			values[i] = new(sql.NullString)
		case businesssubscription.FieldEndsAt, businesssubscription.FieldCurrentPeriodStart, businesssubscription.FieldCurrentPeriodEnd, businesssubscription.FieldCanceledAt, businesssubscription.FieldCreatedAt, businesssubscription.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BusinessSubscription fields.
func (_m *BusinessSubscription) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case businesssubscription.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case businesssubscription.FieldStripeSubscriptionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_subscription_id", values[i])
			} else if value.Valid {
				_m.StripeSubscriptionID = value.String
			}
		case businesssubscription.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case businesssubscription.FieldAttributionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attribution_id", values[i])
			} else if value.Valid {
				_m.AttributionID = new(int)
				*_m.AttributionID = int(value.Int64)
			}
		case businesssubscription.FieldPromoCodeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field promo_code_id", values[i])
			} else if value.Valid {
				_m.PromoCodeID = new(int)
				*_m.PromoCodeID = int(value.Int64)
			}
		case businesssubscription.FieldFeeCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fee_cents", values[i])
			} else if value.Valid {
				_m.FeeCents = value.Int64
			}
		case businesssubscription.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = businesssubscription.Status(value.String)
			}
		case businesssubscription.FieldEndsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ends_at", values[i])
			} else if value.Valid {
				_m.EndsAt = value.Time
			}
		case businesssubscription.FieldCurrentPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field current_period_start", values[i])
			} else if value.Valid {
				_m.CurrentPeriodStart = new(time.Time)
				*_m.CurrentPeriodStart = value.Time
			}
		case businesssubscription.FieldCurrentPeriodEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field current_period_end", values[i])
			} else if value.Valid {
				_m.CurrentPeriodEnd = new(time.Time)
				*_m.CurrentPeriodEnd = value.Time
			}
		case businesssubscription.FieldCanceledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field canceled_at", values[i])
			} else if value.Valid {
				_m.CanceledAt = new(time.Time)
				*_m.CanceledAt = value.Time
			}
		case businesssubscription.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case businesssubscription.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BusinessSubscription.
// This includes values selected through modifiers, order, etc.
func (_m *BusinessSubscription) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAttribution queries the "attribution" edge of the BusinessSubscription entity.
func (_m *BusinessSubscription) QueryAttribution() *AttributionQuery {
	return NewBusinessSubscriptionClient(_m.config).QueryAttribution(_m)
}

// QueryPromoCode queries the "promo_code" edge of the BusinessSubscription entity.
func (_m *BusinessSubscription) QueryPromoCode() *PromoCodeQuery {
	return NewBusinessSubscriptionClient(_m.config).QueryPromoCode(_m)
}

// QueryLedgerEntries queries the "ledger_entries" edge of the BusinessSubscription entity.
func (_m *BusinessSubscription) QueryLedgerEntries() *LedgerEntryQuery {
	return NewBusinessSubscriptionClient(_m.config).QueryLedgerEntries(_m)
}

// Update returns a builder for updating this BusinessSubscription.
// Note that you need to call BusinessSubscription.Unwrap() before calling this method if this BusinessSubscription
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BusinessSubscription) Update() *BusinessSubscriptionUpdateOne {
	return NewBusinessSubscriptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BusinessSubscription entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BusinessSubscription) Unwrap() *BusinessSubscription {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BusinessSubscription is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BusinessSubscription) String() string {
	var builder strings.Builder
	builder.WriteString("BusinessSubscription(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stripe_subscription_id=")
	builder.WriteString(_m.StripeSubscriptionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	if v := _m.AttributionID; v != nil {
		builder.WriteString("attribution_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PromoCodeID; v != nil {
		builder.WriteString("promo_code_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("fee_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeeCents))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("ends_at=")
	builder.WriteString(_m.EndsAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CurrentPeriodStart; v != nil {
		builder.WriteString("current_period_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CurrentPeriodEnd; v != nil {
		builder.WriteString("current_period_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CanceledAt; v != nil {
		builder.WriteString("canceled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BusinessSubscriptions is a parsable slice of BusinessSubscription.
type BusinessSubscriptions []*BusinessSubscription
