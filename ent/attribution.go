// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/user"
)

// Attribution is the model entity for the Attribution schema.
type Attribution struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Acquired user
	UserID int `json:"user_id,omitempty"`
	// Affiliate responsible for the acquisition
	AffiliateID int `json:"affiliate_id,omitempty"`
	// Signup family this attribution applies to
	Type attribution.Type `json:"type,omitempty"`
	// How the attribution was established
	Source attribution.Source `json:"source,omitempty"`
	// Window start (signup time)
	StartsAt time.Time `json:"starts_at,omitempty"`
	// Window end (starts_at + attribution window)
	EndsAt time.Time `json:"ends_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AttributionQuery when eager-loading is set.
	Edges        AttributionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AttributionEdges holds the relations/edges for other nodes in the graph.
type AttributionEdges struct {
	// Acquired user
	User *User `json:"user,omitempty"`
	// Referring affiliate
	Affiliate *Affiliate `json:"affiliate,omitempty"`
	// Business subscriptions originating from this attribution
	Subscriptions []*BusinessSubscription `json:"subscriptions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttributionEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// AffiliateOrErr returns the Affiliate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttributionEdges) AffiliateOrErr() (*Affiliate, error) {
	if e.Affiliate != nil {
		return e.Affiliate, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: affiliate.Label}
	}
	return nil, &NotLoadedError{edge: "affiliate"}
}

// SubscriptionsOrErr returns the Subscriptions value or an error if the edge
// was not loaded in eager-loading.
func (e AttributionEdges) SubscriptionsOrErr() ([]*BusinessSubscription, error) {
	if e.loadedTypes[2] {
		return e.Subscriptions, nil
	}
	return nil, &NotLoadedError{edge: "subscriptions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Attribution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attribution.FieldID, attribution.FieldUserID, attribution.FieldAffiliateID:
			values[i] = new(sql.NullInt64)
		case attribution.FieldType, attribution.FieldSource:
			values[i] = new(sql.NullString)
		case attribution.FieldStartsAt, attribution.FieldEndsAt, attribution.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Attribution fields.
func (_m *Attribution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attribution.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attribution.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case attribution.FieldAffiliateID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_id", values[i])
			} else if value.Valid {
				_m.AffiliateID = int(value.Int64)
			}
		case attribution.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = attribution.Type(value.String)
			}
		case attribution.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = attribution.Source(value.String)
			}
		case attribution.FieldStartsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field starts_at", values[i])
			} else if value.Valid {
				_m.StartsAt = value.Time
			}
		case attribution.FieldEndsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ends_at", values[i])
			} else if value.Valid {
				_m.EndsAt = value.Time
			}
		case attribution.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Attribution.
// This includes values selected through modifiers, order, etc.
func (_m *Attribution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Attribution entity.
func (_m *Attribution) QueryUser() *UserQuery {
	return NewAttributionClient(_m.config).QueryUser(_m)
}

// QueryAffiliate queries the "affiliate" edge of the Attribution entity.
func (_m *Attribution) QueryAffiliate() *AffiliateQuery {
	return NewAttributionClient(_m.config).QueryAffiliate(_m)
}

// QuerySubscriptions queries the "subscriptions" edge of the Attribution entity.
func (_m *Attribution) QuerySubscriptions() *BusinessSubscriptionQuery {
	return NewAttributionClient(_m.config).QuerySubscriptions(_m)
}

// Update returns a builder for updating this Attribution.
// Note that you need to call Attribution.Unwrap() before calling this method if this Attribution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Attribution) Update() *AttributionUpdateOne {
	return NewAttributionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Attribution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Attribution) Unwrap() *Attribution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Attribution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Attribution) String() string {
	var builder strings.Builder
	builder.WriteString("Attribution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("affiliate_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffiliateID))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("starts_at=")
	builder.WriteString(_m.StartsAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ends_at=")
	builder.WriteString(_m.EndsAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Attributions is a parsable slice of Attribution.
type Attributions []*Attribution
