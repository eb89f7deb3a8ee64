package affiliate

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/homecheff/affiliates/ent"
	entaffiliate "github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/pkg/ledger"
)

var (
	// ErrAffiliateNotFound is returned when affiliate doesn't exist
	ErrAffiliateNotFound = errors.New("affiliate not found")
	// ErrInvalidParent is returned when a parent assignment would break the
	// two-level hierarchy
	ErrInvalidParent = errors.New("invalid parent affiliate")
	// ErrInvalidDiscount is returned for discount percentages outside 0-100
	ErrInvalidDiscount = errors.New("discount share must be between 0 and 100")
)

// Stats holds dashboard figures for an affiliate
type Stats struct {
	Status         string `json:"status"`
	IsSubAffiliate bool   `json:"is_sub_affiliate"`
	TotalClicks    int    `json:"total_clicks"`
	PendingCents   int64  `json:"pending_cents"`
	AvailableCents int64  `json:"available_cents"`
	ReversedCents  int64  `json:"reversed_cents"`
}

// Service handles affiliate account operations
type Service struct {
	db     *ent.Client
	ledger *ledger.Service
}

// NewService creates a new affiliate service
func NewService(db *ent.Client, ledgerService *ledger.Service) *Service {
	return &Service{db: db, ledger: ledgerService}
}

// CreateAffiliate creates a new affiliate account for a user
func (s *Service) CreateAffiliate(ctx context.Context, userID int) (*ent.Affiliate, error) {
	aff, err := s.db.Affiliate.
		Create().
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create affiliate: %w", err)
	}

	return aff, nil
}

// AssignParent makes an affiliate a sub-affiliate of the given parent.
// The hierarchy has depth at most 1: the parent must not itself have a
// parent, and an affiliate with children cannot be demoted under one.
func (s *Service) AssignParent(ctx context.Context, affiliateID, parentID int) error {
	if affiliateID == parentID {
		return ErrInvalidParent
	}

	parent, err := s.db.Affiliate.Get(ctx, parentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrAffiliateNotFound
		}
		return fmt.Errorf("failed to load parent affiliate: %w", err)
	}
	if parent.ParentID != nil {
		return ErrInvalidParent
	}

	children, err := s.db.Affiliate.
		Query().
		Where(entaffiliate.ParentIDEQ(affiliateID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count children: %w", err)
	}
	if children > 0 {
		return ErrInvalidParent
	}

	_, err = s.db.Affiliate.
		UpdateOneID(affiliateID).
		SetParentID(parentID).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrAffiliateNotFound
		}
		return fmt.Errorf("failed to assign parent: %w", err)
	}

	return nil
}

// SetStatus changes an affiliate's status. Affiliates are never hard-deleted
// so historical ledger entries stay attributable.
func (s *Service) SetStatus(ctx context.Context, affiliateID int, status entaffiliate.Status) error {
	_, err := s.db.Affiliate.
		UpdateOneID(affiliateID).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrAffiliateNotFound
		}
		return fmt.Errorf("failed to update status: %w", err)
	}

	return nil
}

// CreatePromoCode issues a discount code funded from the affiliate's own
// commission share
func (s *Service) CreatePromoCode(ctx context.Context, affiliateID int, discountSharePct float64) (*ent.PromoCode, error) {
	if discountSharePct < 0 || discountSharePct > 100 {
		return nil, ErrInvalidDiscount
	}

	code, err := generateCode(8)
	if err != nil {
		return nil, fmt.Errorf("failed to generate promo code: %w", err)
	}

	promo, err := s.db.PromoCode.
		Create().
		SetAffiliateID(affiliateID).
		SetCode(code).
		SetDiscountSharePct(discountSharePct).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create promo code: %w", err)
	}

	return promo, nil
}

// GetStats retrieves dashboard statistics for an affiliate
func (s *Service) GetStats(ctx context.Context, affiliateID int) (*Stats, error) {
	aff, err := s.db.Affiliate.Get(ctx, affiliateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrAffiliateNotFound
		}
		return nil, fmt.Errorf("failed to load affiliate: %w", err)
	}

	balance := s.ledger.Balance(ctx, affiliateID)

	return &Stats{
		Status:         string(aff.Status),
		IsSubAffiliate: aff.ParentID != nil,
		TotalClicks:    aff.TotalClicks,
		PendingCents:   balance.PendingCents,
		AvailableCents: balance.AvailableCents,
		ReversedCents:  balance.ReversedCents,
	}, nil
}

// generateCode returns a cryptographically secure random hex code
func generateCode(length int) (string, error) {
	bytes := make([]byte, length/2) // Each byte = 2 hex characters
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes)[:length], nil
}
