package referral

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/homecheff/affiliates/ent"
	entaffiliate "github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/referrallink"
	"github.com/homecheff/affiliates/pkg/cache"
)

var (
	// ErrNotFound is returned when a code does not resolve to an active affiliate
	ErrNotFound = errors.New("referral code not found")
)

// cacheTTL bounds staleness after a link deactivation or affiliate suspension.
const cacheTTL = 5 * time.Minute

// Service resolves referral codes and manages trackable links.
// Resolution is a pure read: safe to call repeatedly, no side effects.
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new referral service. The cache client is optional;
// without it every resolution hits the database.
func NewService(db *ent.Client, cacheClient *cache.Client) *Service {
	return &Service{db: db, cache: cacheClient}
}

// Resolve maps a referral code to the active affiliate it belongs to.
// Returns ErrNotFound when the code is unknown, the link was deactivated,
// or the affiliate is not active.
func (s *Service) Resolve(ctx context.Context, code string) (int, error) {
	if code == "" {
		return 0, ErrNotFound
	}

	if id, ok := s.cacheGet(ctx, code); ok {
		return id, nil
	}

	link, err := s.db.ReferralLink.
		Query().
		Where(
			referrallink.CodeEQ(code),
			referrallink.Active(true),
		).
		WithAffiliate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to query referral link: %w", err)
	}

	aff := link.Edges.Affiliate
	if aff == nil || aff.Status != entaffiliate.StatusActive {
		return 0, ErrNotFound
	}

	s.cacheSet(ctx, code, aff.ID)

	return aff.ID, nil
}

// IssueLink creates a new trackable referral link for an affiliate
func (s *Service) IssueLink(ctx context.Context, affiliateID int) (*ent.ReferralLink, error) {
	code, err := generateCode(8)
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	link, err := s.db.ReferralLink.
		Create().
		SetAffiliateID(affiliateID).
		SetCode(code).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create referral link: %w", err)
	}

	return link, nil
}

// DeactivateLink disables a referral link; the code stops resolving
func (s *Service) DeactivateLink(ctx context.Context, code string) error {
	n, err := s.db.ReferralLink.
		Update().
		Where(referrallink.CodeEQ(code)).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate link: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	s.cacheInvalidate(ctx, code)

	return nil
}

// RecordClick stores a click against the link and bumps the owning
// affiliate's counter
func (s *Service) RecordClick(ctx context.Context, code, ipAddress, userAgent, referrer string) error {
	link, err := s.db.ReferralLink.
		Query().
		Where(referrallink.CodeEQ(code), referrallink.Active(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to query referral link: %w", err)
	}

	builder := s.db.ReferralClick.
		Create().
		SetLinkID(link.ID)

	if ipAddress != "" {
		builder.SetIPAddress(ipAddress)
	}
	if userAgent != "" {
		builder.SetUserAgent(userAgent)
	}
	if referrer != "" {
		builder.SetReferrer(referrer)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to create click: %w", err)
	}

	_, err = s.db.Affiliate.
		UpdateOneID(link.AffiliateID).
		AddTotalClicks(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update click count: %w", err)
	}

	return nil
}

// Cache helpers. Cache failures are logged and degrade to database reads;
// resolution correctness never depends on Redis.

func (s *Service) cacheGet(ctx context.Context, code string) (int, bool) {
	if s.cache == nil {
		return 0, false
	}

	val, err := s.cache.Get(ctx, cacheKey(code))
	if err != nil {
		return 0, false
	}

	id, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}

	return id, true
}

func (s *Service) cacheSet(ctx context.Context, code string, affiliateID int) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, cacheKey(code), strconv.Itoa(affiliateID), cacheTTL); err != nil {
		log.Printf("⚠️  Failed to cache referral code: %v", err)
	}
}

func (s *Service) cacheInvalidate(ctx context.Context, code string) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, cacheKey(code)); err != nil {
		log.Printf("⚠️  Failed to invalidate referral code cache: %v", err)
	}
}

func cacheKey(code string) string {
	return "referral:code:" + code
}

// generateCode returns a cryptographically secure random hex code
func generateCode(length int) (string, error) {
	bytes := make([]byte, length/2) // Each byte = 2 hex characters
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes)[:length], nil
}
