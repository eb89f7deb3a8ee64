package attribution

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/homecheff/affiliates/ent"
	entattribution "github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/pkg/referral"
)

// Skip explains why a signup produced no attribution. Attribution is a
// best-effort side effect of signup: none of these reasons is an error and
// none may abort the surrounding signup.
type Skip string

const (
	// SkipNone means an attribution was recorded
	SkipNone Skip = ""
	// SkipNoReferral means the signup carried no resolvable referral code
	SkipNoReferral Skip = "no_referral"
	// SkipSelfReferral means the code belongs to the signing-up user
	SkipSelfReferral Skip = "self_referral"
	// SkipAlreadyAttributed means an unexpired attribution already exists
	SkipAlreadyAttributed Skip = "already_attributed"
	// SkipStorageError means the write failed and was logged, not propagated
	SkipStorageError Skip = "storage_error"
)

// Store creates and queries time-windowed attribution records.
type Store struct {
	db         *ent.Client
	resolver   *referral.Service
	windowDays int
}

// NewStore creates a new attribution store. windowDays is how long an
// attribution stays active after signup.
func NewStore(db *ent.Client, resolver *referral.Service, windowDays int) *Store {
	return &Store{
		db:         db,
		resolver:   resolver,
		windowDays: windowDays,
	}
}

// RecordSignupAttribution links a newly signed-up user to the affiliate whose
// referral code they carried. Every failure path is a silent skip: a missing
// or stale code, a self-referral, and even a storage error must never fail
// the signup that triggered it.
func (s *Store) RecordSignupAttribution(ctx context.Context, newUserID int, referralCode string, isBusiness bool) Skip {
	affiliateID, err := s.resolver.Resolve(ctx, referralCode)
	if err != nil {
		if !errors.Is(err, referral.ErrNotFound) {
			log.Printf("⚠️  Referral resolution failed for user %d: %v", newUserID, err)
		}
		return SkipNoReferral
	}

	aff, err := s.db.Affiliate.Get(ctx, affiliateID)
	if err != nil {
		log.Printf("⚠️  Failed to load affiliate %d during signup attribution: %v", affiliateID, err)
		return SkipStorageError
	}

	if aff.UserID == newUserID {
		log.Printf("⚠️  Self-referral rejected: user %d used their own code", newUserID)
		return SkipSelfReferral
	}

	typ := entattribution.TypeUserSignup
	if isBusiness {
		typ = entattribution.TypeBusinessSignup
	}

	now := time.Now()

	// Best-effort uniqueness: a racing duplicate row is tolerated because
	// reads only ever use the first active record, but the common case is
	// caught here.
	existing, err := s.FindActiveAttribution(ctx, newUserID, typ, now)
	if err != nil {
		log.Printf("⚠️  Failed to check existing attribution for user %d: %v", newUserID, err)
		return SkipStorageError
	}
	if existing != nil {
		return SkipAlreadyAttributed
	}

	_, err = s.db.Attribution.
		Create().
		SetUserID(newUserID).
		SetAffiliateID(affiliateID).
		SetType(typ).
		SetSource(entattribution.SourceReferralLink).
		SetStartsAt(now).
		SetEndsAt(now.AddDate(0, 0, s.windowDays)).
		Save(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to record attribution for user %d: %v", newUserID, err)
		return SkipStorageError
	}

	return SkipNone
}

// FindActiveAttribution returns the attribution whose window covers asOf,
// or nil when none exists. Expired records are kept but never returned.
func (s *Store) FindActiveAttribution(ctx context.Context, userID int, typ entattribution.Type, asOf time.Time) (*ent.Attribution, error) {
	attr, err := s.db.Attribution.
		Query().
		Where(
			entattribution.UserIDEQ(userID),
			entattribution.TypeEQ(typ),
			entattribution.StartsAtLTE(asOf),
			entattribution.EndsAtGTE(asOf),
		).
		Order(ent.Asc(entattribution.FieldStartsAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query attribution: %w", err)
	}

	return attr, nil
}
