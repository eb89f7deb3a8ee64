// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Affiliate is the predicate function for affiliate builders.
type Affiliate func(*sql.Selector)

// Attribution is the predicate function for attribution builders.
type Attribution func(*sql.Selector)

// BusinessSubscription is the predicate function for businesssubscription builders.
type BusinessSubscription func(*sql.Selector)

// LedgerEntry is the predicate function for ledgerentry builders.
type LedgerEntry func(*sql.Selector)

// PromoCode is the predicate function for promocode builders.
type PromoCode func(*sql.Selector)

// ReferralClick is the predicate function for referralclick builders.
type ReferralClick func(*sql.Selector)

// ReferralLink is the predicate function for referrallink builders.
type ReferralLink func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
