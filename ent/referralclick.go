// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homecheff/affiliates/ent/referralclick"
	"github.com/homecheff/affiliates/ent/referrallink"
)

// ReferralClick is the model entity for the ReferralClick schema.
type ReferralClick struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Referral link that was visited
	LinkID int `json:"link_id,omitempty"`
	// Visitor IP address
	IPAddress *string `json:"ip_address,omitempty"`
	// Visitor user agent
	UserAgent *string `json:"user_agent,omitempty"`
	// HTTP referrer of the visit
	Referrer *string `json:"referrer,omitempty"`
	// Click timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReferralClickQuery when eager-loading is set.
	Edges        ReferralClickEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReferralClickEdges holds the relations/edges for other nodes in the graph.
type ReferralClickEdges struct {
	// Visited link
	Link *ReferralLink `json:"link,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LinkOrErr returns the Link value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReferralClickEdges) LinkOrErr() (*ReferralLink, error) {
	if e.Link != nil {
		return e.Link, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: referrallink.Label}
	}
	return nil, &NotLoadedError{edge: "link"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReferralClick) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case referralclick.FieldID, referralclick.FieldLinkID:
			values[i] = new(sql.NullInt64)
		case referralclick.FieldIPAddress, referralclick.FieldUserAgent, referralclick.FieldReferrer:
			values[i] = new(sql.NullString)
		case referralclick.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReferralClick fields.
func (_m *ReferralClick) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case referralclick.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case referralclick.FieldLinkID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field link_id", values[i])
			} else if value.Valid {
				_m.LinkID = int(value.Int64)
			}
		case referralclick.FieldIPAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_address", values[i])
			} else if value.Valid {
				_m.IPAddress = new(string)
				*_m.IPAddress = value.String
			}
		case referralclick.FieldUserAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_agent", values[i])
			} else if value.Valid {
				_m.UserAgent = new(string)
				*_m.UserAgent = value.String
			}
		case referralclick.FieldReferrer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field referrer", values[i])
			} else if value.Valid {
				_m.Referrer = new(string)
				*_m.Referrer = value.String
			}
		case referralclick.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ReferralClick.
// This includes values selected through modifiers, order, etc.
func (_m *ReferralClick) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLink queries the "link" edge of the ReferralClick entity.
func (_m *ReferralClick) QueryLink() *ReferralLinkQuery {
	return NewReferralClickClient(_m.config).QueryLink(_m)
}

// Update returns a builder for updating this ReferralClick.
// Note that you need to call ReferralClick.Unwrap() before calling this method if this ReferralClick
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReferralClick) Update() *ReferralClickUpdateOne {
	return NewReferralClickClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReferralClick entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReferralClick) Unwrap() *ReferralClick {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReferralClick is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReferralClick) String() string {
	var builder strings.Builder
	builder.WriteString("ReferralClick(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("link_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LinkID))
	builder.WriteString(", ")
	if v := _m.IPAddress; v != nil {
		builder.WriteString("ip_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UserAgent; v != nil {
		builder.WriteString("user_agent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Referrer; v != nil {
		builder.WriteString("referrer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReferralClicks is a parsable slice of ReferralClick.
type ReferralClicks []*ReferralClick
