package testdata

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/homecheff/affiliates/ent"
)

// emailSeq keeps generated emails unique; the schema enforces uniqueness and
// gofakeit alone collides on small test datasets.
var emailSeq atomic.Int64

// UniqueEmail returns a realistic, never-colliding email address
func UniqueEmail() string {
	return fmt.Sprintf("%s.%d@%s", gofakeit.Username(), emailSeq.Add(1), gofakeit.DomainName())
}

// NewUser returns a user create builder with fake identity data
func NewUser(db *ent.Client) *ent.UserCreate {
	return db.User.
		Create().
		SetName(gofakeit.Name()).
		SetEmail(UniqueEmail())
}

// NewBusinessUser returns a business user create builder with a fake company name
func NewBusinessUser(db *ent.Client) *ent.UserCreate {
	return db.User.
		Create().
		SetName(gofakeit.Company()).
		SetEmail(UniqueEmail()).
		SetIsBusiness(true)
}

// SeededAffiliate bundles the rows created for one affiliate fixture
type SeededAffiliate struct {
	User      *ent.User
	Affiliate *ent.Affiliate
	Link      *ent.ReferralLink
}

// SeedAffiliate creates a user, an active affiliate account for them and one
// active referral link
func SeedAffiliate(ctx context.Context, db *ent.Client, code string) (*SeededAffiliate, error) {
	user, err := NewUser(db).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed user: %w", err)
	}

	aff, err := db.Affiliate.
		Create().
		SetUserID(user.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed affiliate: %w", err)
	}

	link, err := db.ReferralLink.
		Create().
		SetAffiliateID(aff.ID).
		SetCode(code).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed referral link: %w", err)
	}

	return &SeededAffiliate{User: user, Affiliate: aff, Link: link}, nil
}

// SeedSubAffiliate creates an affiliate fixture parented under the given
// affiliate
func SeedSubAffiliate(ctx context.Context, db *ent.Client, parentID int, code string) (*SeededAffiliate, error) {
	seeded, err := SeedAffiliate(ctx, db, code)
	if err != nil {
		return nil, err
	}

	aff, err := db.Affiliate.
		UpdateOneID(seeded.Affiliate.ID).
		SetParentID(parentID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign parent: %w", err)
	}
	seeded.Affiliate = aff

	return seeded, nil
}
