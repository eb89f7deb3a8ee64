// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/referrallink"
)

// ReferralLink is the model entity for the ReferralLink schema.
type ReferralLink struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Affiliate this link belongs to
	AffiliateID int `json:"affiliate_id,omitempty"`
	// Unique short tracking code, immutable once issued
	Code string `json:"code,omitempty"`
	// Deactivated links no longer resolve
	Active bool `json:"active,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReferralLinkQuery when eager-loading is set.
	Edges        ReferralLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReferralLinkEdges holds the relations/edges for other nodes in the graph.
type ReferralLinkEdges struct {
	// Owning affiliate
	Affiliate *Affiliate `json:"affiliate,omitempty"`
	// Clicks recorded against this link
	Clicks []*ReferralClick `json:"clicks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AffiliateOrErr returns the Affiliate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReferralLinkEdges) AffiliateOrErr() (*Affiliate, error) {
	if e.Affiliate != nil {
		return e.Affiliate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: affiliate.Label}
	}
	return nil, &NotLoadedError{edge: "affiliate"}
}

// ClicksOrErr returns the Clicks value or an error if the edge
// was not loaded in eager-loading.
func (e ReferralLinkEdges) ClicksOrErr() ([]*ReferralClick, error) {
	if e.loadedTypes[1] {
		return e.Clicks, nil
	}
	return nil, &NotLoadedError{edge: "clicks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReferralLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case referrallink.FieldActive:
			values[i] = new(sql.NullBool)
		case referrallink.FieldID, referrallink.FieldAffiliateID:
			values[i] = new(sql.NullInt64)
		case referrallink.FieldCode:
			values[i] = new(sql.NullString)
		case referrallink.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReferralLink fields.
func (_m *ReferralLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case referrallink.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case referrallink.FieldAffiliateID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_id", values[i])
			} else if value.Valid {
				_m.AffiliateID = int(value.Int64)
			}
		case referrallink.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case referrallink.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case referrallink.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ReferralLink.
// This includes values selected through modifiers, order, etc.
func (_m *ReferralLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAffiliate queries the "affiliate" edge of the ReferralLink entity.
func (_m *ReferralLink) QueryAffiliate() *AffiliateQuery {
	return NewReferralLinkClient(_m.config).QueryAffiliate(_m)
}

// QueryClicks queries the "clicks" edge of the ReferralLink entity.
func (_m *ReferralLink) QueryClicks() *ReferralClickQuery {
	return NewReferralLinkClient(_m.config).QueryClicks(_m)
}

// Update returns a builder for updating this ReferralLink.
// Note that you need to call ReferralLink.Unwrap() before calling this method if this ReferralLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReferralLink) Update() *ReferralLinkUpdateOne {
	return NewReferralLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReferralLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReferralLink) Unwrap() *ReferralLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReferralLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReferralLink) String() string {
	var builder strings.Builder
	builder.WriteString("ReferralLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("affiliate_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffiliateID))
	builder.WriteString(", ")
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReferralLinks is a parsable slice of ReferralLink.
type ReferralLinks []*ReferralLink
