// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/ledgerentry"
)

// LedgerEntry is the model entity for the LedgerEntry schema.
type LedgerEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Externally-supplied event id; the unique constraint is the idempotency guard
	EventID string `json:"event_id,omitempty"`
	// Upstream event family that produced this entry
	EventType ledgerentry.EventType `json:"event_type,omitempty"`
	// Affiliate credited or debited
	AffiliateID int `json:"affiliate_id,omitempty"`
	// Signed commission amount in cents; negative for reversal entries
	AmountCents int64 `json:"amount_cents,omitempty"`
	// Amount the upstream event was denominated in, used for proportional reversal
	BaseAmountCents int64 `json:"base_amount_cents,omitempty"`
	// ISO 4217 currency code
	Currency string `json:"currency,omitempty"`
	// Hold state; pending entries become available once available_at passes
	Status ledgerentry.Status `json:"status,omitempty"`
	// When a pending entry becomes available, null for terminal entries
	AvailableAt *time.Time `json:"available_at,omitempty"`
	// Originating business subscription, for invoice entries
	SubscriptionID *int `json:"subscription_id,omitempty"`
	// Computation inputs preserved for audit (base amount, discount, tier, counterpart ids)
	Metadata map[string]string `json:"metadata,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LedgerEntryQuery when eager-loading is set.
	Edges        LedgerEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LedgerEntryEdges holds the relations/edges for other nodes in the graph.
type LedgerEntryEdges struct {
	// Credited affiliate
	Affiliate *Affiliate `json:"affiliate,omitempty"`
	// Originating subscription
	Subscription *BusinessSubscription `json:"subscription,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AffiliateOrErr returns the Affiliate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LedgerEntryEdges) AffiliateOrErr() (*Affiliate, error) {
	if e.Affiliate != nil {
		return e.Affiliate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: affiliate.Label}
	}
	return nil, &NotLoadedError{edge: "affiliate"}
}

// SubscriptionOrErr returns the Subscription value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LedgerEntryEdges) SubscriptionOrErr() (*BusinessSubscription, error) {
	if e.Subscription != nil {
		return e.Subscription, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: businesssubscription.Label}
	}
	return nil, &NotLoadedError{edge: "subscription"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LedgerEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ledgerentry.FieldMetadata:
			values[i] = new([]byte)
		case ledgerentry.FieldID, ledgerentry.FieldAffiliateID, ledgerentry.FieldAmountCents, ledgerentry.FieldBaseAmountCents, ledgerentry.FieldSubscriptionID:
			values[i] = new(sql.NullInt64)
		case ledgerentry.FieldEventID, ledgerentry.FieldEventType, ledgerentry.FieldCurrency, ledgerentry.FieldStatus:
			values[i] = new(sql.NullString)
		case ledgerentry.FieldAvailableAt, ledgerentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LedgerEntry fields.
func (_m *LedgerEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ledgerentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ledgerentry.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case ledgerentry.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = ledgerentry.EventType(value.String)
			}
		case ledgerentry.FieldAffiliateID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_id", values[i])
			} else if value.Valid {
				_m.AffiliateID = int(value.Int64)
			}
		case ledgerentry.FieldAmountCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_cents", values[i])
			} else if value.Valid {
				_m.AmountCents = value.Int64
			}
		case ledgerentry.FieldBaseAmountCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field base_amount_cents", values[i])
			} else if value.Valid {
				_m.BaseAmountCents = value.Int64
			}
		case ledgerentry.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case ledgerentry.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = ledgerentry.Status(value.String)
			}
		case ledgerentry.FieldAvailableAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field available_at", values[i])
			} else if value.Valid {
				_m.AvailableAt = new(time.Time)
				*_m.AvailableAt = value.Time
			}
		case ledgerentry.FieldSubscriptionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_id", values[i])
			} else if value.Valid {
				_m.SubscriptionID = new(int)
				*_m.SubscriptionID = int(value.Int64)
			}
		case ledgerentry.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case ledgerentry.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LedgerEntry.
// This includes values selected through modifiers, order, etc.
func (_m *LedgerEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAffiliate queries the "affiliate" edge of the LedgerEntry entity.
func (_m *LedgerEntry) QueryAffiliate() *AffiliateQuery {
	return NewLedgerEntryClient(_m.config).QueryAffiliate(_m)
}

// QuerySubscription queries the "subscription" edge of the LedgerEntry entity.
func (_m *LedgerEntry) QuerySubscription() *BusinessSubscriptionQuery {
	return NewLedgerEntryClient(_m.config).QuerySubscription(_m)
}

// Update returns a builder for updating this LedgerEntry.
// Note that you need to call LedgerEntry.Unwrap() before calling this method if this LedgerEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LedgerEntry) Update() *LedgerEntryUpdateOne {
	return NewLedgerEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LedgerEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LedgerEntry) Unwrap() *LedgerEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LedgerEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LedgerEntry) String() string {
	var builder strings.Builder
	builder.WriteString("LedgerEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	builder.WriteString("affiliate_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffiliateID))
	builder.WriteString(", ")
	builder.WriteString("amount_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountCents))
	builder.WriteString(", ")
	builder.WriteString("base_amount_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaseAmountCents))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.AvailableAt; v != nil {
		builder.WriteString("available_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SubscriptionID; v != nil {
		builder.WriteString("subscription_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LedgerEntries is a parsable slice of LedgerEntry.
type LedgerEntries []*LedgerEntry
