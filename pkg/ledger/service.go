package ledger

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/homecheff/affiliates/ent"
	entaffiliate "github.com/homecheff/affiliates/ent/affiliate"
	entattribution "github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/ledgerentry"
	"github.com/homecheff/affiliates/pkg/attribution"
	"github.com/homecheff/affiliates/pkg/commission"
)

// parentSuffix derives the upline entry's event id from the direct entry's,
// keeping idempotency per logical sub-entry.
const parentSuffix = "_parent"

// ReversalKind distinguishes the two reversal event families.
type ReversalKind string

const (
	// KindRefund marks a reversal triggered by a refund
	KindRefund ReversalKind = "refund"
	// KindChargeback marks a reversal triggered by a chargeback
	KindChargeback ReversalKind = "chargeback"
)

// Service is the commission system of record. Writes are idempotent on the
// external event id and append-only; the only in-place mutation is the
// status flip on reversal. Unlike attribution, a failed ledger write is a
// financial correctness bug and always propagates to the caller.
type Service struct {
	db           *ent.Client
	calc         *commission.Calculator
	attributions *attribution.Store
	pendingDays  int
	currency     string
}

// NewService creates a new ledger service. pendingDays is how long an entry
// stays on hold before the sweep makes it available.
func NewService(db *ent.Client, calc *commission.Calculator, attributions *attribution.Store, pendingDays int, currency string) *Service {
	return &Service{
		db:           db,
		calc:         calc,
		attributions: attributions,
		pendingDays:  pendingDays,
		currency:     currency,
	}
}

// entrySpec is one row to insert; direct and parent entries of the same
// event are inserted in a single transaction.
type entrySpec struct {
	eventID        string
	eventType      ledgerentry.EventType
	affiliateID    int
	amountCents    int64
	baseCents      int64
	status         ledgerentry.Status
	availableAt    *time.Time
	subscriptionID *int
	metadata       map[string]string
}

// RecordInvoicePaid credits commission for one paid business-subscription
// invoice. Re-delivery of the same invoice id is a no-op. Unattributed
// subscriptions and subscriptions past their commission window are skipped
// silently.
func (s *Service) RecordInvoicePaid(ctx context.Context, invoiceID, stripeSubscriptionID string, amountPaidCents int64, metadata map[string]string) error {
	exists, err := s.db.LedgerEntry.
		Query().
		Where(ledgerentry.EventIDEQ(invoiceID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing entry: %w", err)
	}
	if exists {
		log.Printf("ℹ️  Invoice %s already processed, skipping", invoiceID)
		return nil
	}

	sub, err := s.db.BusinessSubscription.
		Query().
		Where(businesssubscription.StripeSubscriptionIDEQ(stripeSubscriptionID)).
		WithAttribution().
		WithPromoCode().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("ℹ️  No subscription %s for invoice %s, skipping", stripeSubscriptionID, invoiceID)
			return nil
		}
		return fmt.Errorf("failed to load subscription: %w", err)
	}

	attr := sub.Edges.Attribution
	if attr == nil {
		log.Printf("ℹ️  Subscription %s is unattributed, skipping invoice %s", stripeSubscriptionID, invoiceID)
		return nil
	}

	now := time.Now()
	if now.After(sub.EndsAt) {
		log.Printf("ℹ️  Commission window for subscription %s expired, skipping invoice %s", stripeSubscriptionID, invoiceID)
		return nil
	}

	aff, err := s.loadAffiliateWithParent(ctx, attr.AffiliateID)
	if err != nil {
		return err
	}

	discountPct := 0.0
	if promo := sub.Edges.PromoCode; promo != nil && promo.Active {
		discountPct = promo.DiscountSharePct
	}

	isSub := aff.ParentID != nil
	in := commission.SubscriptionInput{
		SubscriptionFeeCents:  sub.FeeCents,
		DiscountSharePct:      discountPct,
		IsSubAffiliate:        isSub,
		CommissionPctOverride: aff.SubscriptionPct,
	}
	if parent := aff.Edges.Parent; parent != nil {
		in.ParentPctOverride = parent.ParentSubscriptionPct
	}
	split := s.calc.SubscriptionSplit(in)

	availableAt := now.AddDate(0, 0, s.pendingDays)

	meta := cloneMetadata(metadata)
	meta["subscription_fee_cents"] = strconv.FormatInt(sub.FeeCents, 10)
	meta["amount_paid_cents"] = strconv.FormatInt(amountPaidCents, 10)
	meta["discount_share_pct"] = strconv.FormatFloat(discountPct, 'f', -1, 64)
	meta["discount_cents"] = strconv.FormatInt(split.DiscountCents, 10)
	meta["homecheff_share_cents"] = strconv.FormatInt(split.HomecheffShareCents, 10)
	meta["tier"] = tierLabel(isSub)

	specs := []entrySpec{{
		eventID:        invoiceID,
		eventType:      ledgerentry.EventTypeInvoicePaid,
		affiliateID:    aff.ID,
		amountCents:    split.FinalAffiliateCommissionCents,
		baseCents:      amountPaidCents,
		status:         ledgerentry.StatusPending,
		availableAt:    &availableAt,
		subscriptionID: &sub.ID,
		metadata:       meta,
	}}

	if isSub && aff.Edges.Parent != nil {
		parentMeta := cloneMetadata(meta)
		parentMeta["child_affiliate_id"] = strconv.Itoa(aff.ID)
		parentMeta["tier"] = "parent"
		specs = append(specs, entrySpec{
			eventID:        invoiceID + parentSuffix,
			eventType:      ledgerentry.EventTypeInvoicePaid,
			affiliateID:    aff.Edges.Parent.ID,
			amountCents:    split.ParentCommissionCents,
			baseCents:      amountPaidCents,
			status:         ledgerentry.StatusPending,
			availableAt:    &availableAt,
			subscriptionID: &sub.ID,
			metadata:       parentMeta,
		})
	}

	return s.insertEntries(ctx, invoiceID, specs)
}

// RecordOrderPaid credits commission on one paid marketplace order's platform
// fee. Buyer and seller attributions are resolved independently; when they
// point at different affiliates only the buyer's affiliate is credited, and
// only for the sides attributed to it.
func (s *Service) RecordOrderPaid(ctx context.Context, orderID string, homecheffFeeCents int64, buyerID, sellerID int, metadata map[string]string) error {
	exists, err := s.db.LedgerEntry.
		Query().
		Where(ledgerentry.EventIDEQ(orderID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing entry: %w", err)
	}
	if exists {
		log.Printf("ℹ️  Order %s already processed, skipping", orderID)
		return nil
	}

	now := time.Now()

	buyerAttr, err := s.attributions.FindActiveAttribution(ctx, buyerID, entattribution.TypeUserSignup, now)
	if err != nil {
		return fmt.Errorf("failed to resolve buyer attribution: %w", err)
	}
	sellerAttr, err := s.attributions.FindActiveAttribution(ctx, sellerID, entattribution.TypeUserSignup, now)
	if err != nil {
		return fmt.Errorf("failed to resolve seller attribution: %w", err)
	}

	if buyerAttr == nil && sellerAttr == nil {
		log.Printf("ℹ️  Order %s has no attributed parties, skipping", orderID)
		return nil
	}

	// Only one affiliate is credited per order; the buyer's wins when they
	// differ. This mirrors a deliberate product decision, not a fair split.
	creditedID := 0
	if buyerAttr != nil {
		creditedID = buyerAttr.AffiliateID
	} else {
		creditedID = sellerAttr.AffiliateID
	}

	aff, err := s.loadAffiliateWithParent(ctx, creditedID)
	if err != nil {
		return err
	}

	isSub := aff.ParentID != nil
	in := commission.OrderInput{
		HomecheffFeeCents:  homecheffFeeCents,
		BuyerAttributed:    buyerAttr != nil && buyerAttr.AffiliateID == creditedID,
		SellerAttributed:   sellerAttr != nil && sellerAttr.AffiliateID == creditedID,
		IsSubAffiliate:     isSub,
		PerSidePctOverride: aff.OrderPct,
	}
	if parent := aff.Edges.Parent; parent != nil {
		in.ParentPctOverride = parent.ParentOrderPct
	}
	split := s.calc.OrderSplit(in)

	availableAt := now.AddDate(0, 0, s.pendingDays)

	meta := cloneMetadata(metadata)
	meta["homecheff_fee_cents"] = strconv.FormatInt(homecheffFeeCents, 10)
	meta["buyer_id"] = strconv.Itoa(buyerID)
	meta["seller_id"] = strconv.Itoa(sellerID)
	meta["attributed_sides"] = strconv.Itoa(split.AttributedSides)
	meta["tier"] = tierLabel(isSub)

	specs := []entrySpec{{
		eventID:     orderID,
		eventType:   ledgerentry.EventTypeOrderPaid,
		affiliateID: aff.ID,
		amountCents: split.CommissionCents,
		baseCents:   homecheffFeeCents,
		status:      ledgerentry.StatusPending,
		availableAt: &availableAt,
		metadata:    meta,
	}}

	if isSub && aff.Edges.Parent != nil {
		parentMeta := cloneMetadata(meta)
		parentMeta["child_affiliate_id"] = strconv.Itoa(aff.ID)
		parentMeta["tier"] = "parent"
		specs = append(specs, entrySpec{
			eventID:     orderID + parentSuffix,
			eventType:   ledgerentry.EventTypeOrderPaid,
			affiliateID: aff.Edges.Parent.ID,
			amountCents: split.ParentCommissionCents,
			baseCents:   homecheffFeeCents,
			status:      ledgerentry.StatusPending,
			availableAt: &availableAt,
			metadata:    parentMeta,
		})
	}

	return s.insertEntries(ctx, orderID, specs)
}

// Reverse debits previously credited commission after a refund or
// chargeback. Every non-reversed entry of the original event (direct and
// parent alike) is flipped to reversed and paired with a new negative entry
// proportional to the refunded amount, keeping both sides visible for audit.
// The reversal's own event id makes re-delivery a no-op, and the conditional
// status flip protects against double reversal races.
func (s *Service) Reverse(ctx context.Context, eventID, originalEventID string, amountCents int64, kind ReversalKind) error {
	exists, err := s.db.LedgerEntry.
		Query().
		Where(ledgerentry.EventIDEQ(eventID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing reversal: %w", err)
	}
	if exists {
		log.Printf("ℹ️  Reversal %s already processed, skipping", eventID)
		return nil
	}

	originals, err := s.db.LedgerEntry.
		Query().
		Where(
			ledgerentry.EventIDIn(originalEventID, originalEventID+parentSuffix),
			ledgerentry.StatusNEQ(ledgerentry.StatusReversed),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load original entries: %w", err)
	}
	if len(originals) == 0 {
		log.Printf("ℹ️  No reversible entries for event %s, skipping", originalEventID)
		return nil
	}

	eventType := ledgerentry.EventTypeRefund
	if kind == KindChargeback {
		eventType = ledgerentry.EventTypeChargeback
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	for _, orig := range originals {
		// Atomic conditional flip; zero rows means a concurrent reversal won.
		n, err := tx.LedgerEntry.
			Update().
			Where(
				ledgerentry.IDEQ(orig.ID),
				ledgerentry.StatusNEQ(ledgerentry.StatusReversed),
			).
			SetStatus(ledgerentry.StatusReversed).
			ClearAvailableAt().
			Save(ctx)
		if err != nil {
			return rollback(tx, fmt.Errorf("failed to mark entry reversed: %w", err))
		}
		if n == 0 {
			continue
		}

		reversalAmount := proportionalAmount(orig.AmountCents, amountCents, orig.BaseAmountCents)

		revEventID := eventID
		if strings.HasSuffix(orig.EventID, parentSuffix) {
			revEventID += parentSuffix
		}

		builder := tx.LedgerEntry.
			Create().
			SetEventID(revEventID).
			SetEventType(eventType).
			SetAffiliateID(orig.AffiliateID).
			SetAmountCents(-reversalAmount).
			SetBaseAmountCents(amountCents).
			SetCurrency(orig.Currency).
			SetStatus(ledgerentry.StatusReversed).
			SetMetadata(map[string]string{
				"original_event_id":     orig.EventID,
				"original_amount_cents": strconv.FormatInt(orig.AmountCents, 10),
				"refunded_cents":        strconv.FormatInt(amountCents, 10),
				"kind":                  string(kind),
			})
		if orig.SubscriptionID != nil {
			builder.SetSubscriptionID(*orig.SubscriptionID)
		}

		if _, err := builder.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				log.Printf("ℹ️  Reversal %s raced a duplicate delivery, skipping", revEventID)
				return rollbackSilent(tx)
			}
			return rollback(tx, fmt.Errorf("failed to create reversal entry: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reversal: %w", err)
	}

	return nil
}

// SweptCommission aggregates what one sweep made available per affiliate.
type SweptCommission struct {
	AffiliateID int
	AmountCents int64
	Entries     int
}

// SweepAvailable flips pending entries whose hold period has elapsed to
// available and reports what changed, grouped by affiliate.
func (s *Service) SweepAvailable(ctx context.Context, now time.Time) ([]SweptCommission, error) {
	due, err := s.db.LedgerEntry.
		Query().
		Where(
			ledgerentry.StatusEQ(ledgerentry.StatusPending),
			ledgerentry.AvailableAtLTE(now),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due entries: %w", err)
	}
	if len(due) == 0 {
		return nil, nil
	}

	ids := make([]int, 0, len(due))
	for _, e := range due {
		ids = append(ids, e.ID)
	}

	// The status predicate keeps a concurrent reversal from being undone.
	_, err = s.db.LedgerEntry.
		Update().
		Where(
			ledgerentry.IDIn(ids...),
			ledgerentry.StatusEQ(ledgerentry.StatusPending),
		).
		SetStatus(ledgerentry.StatusAvailable).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sweep entries: %w", err)
	}

	byAffiliate := make(map[int]*SweptCommission)
	for _, e := range due {
		sw, ok := byAffiliate[e.AffiliateID]
		if !ok {
			sw = &SweptCommission{AffiliateID: e.AffiliateID}
			byAffiliate[e.AffiliateID] = sw
		}
		sw.AmountCents += e.AmountCents
		sw.Entries++
	}

	swept := make([]SweptCommission, 0, len(byAffiliate))
	for _, sw := range byAffiliate {
		swept = append(swept, *sw)
	}

	return swept, nil
}

// ListEntries returns an affiliate's ledger entries, newest first, optionally
// filtered by status.
func (s *Service) ListEntries(ctx context.Context, affiliateID int, status *ledgerentry.Status, limit, offset int) ([]*ent.LedgerEntry, error) {
	q := s.db.LedgerEntry.
		Query().
		Where(ledgerentry.AffiliateIDEQ(affiliateID))

	if status != nil {
		q = q.Where(ledgerentry.StatusEQ(*status))
	}

	entries, err := q.
		Order(ent.Desc(ledgerentry.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}

	return entries, nil
}

// Balance holds an affiliate's ledger totals per hold state.
type Balance struct {
	PendingCents   int64 `json:"pending_cents"`
	AvailableCents int64 `json:"available_cents"`
	ReversedCents  int64 `json:"reversed_cents"`
}

// Balance sums an affiliate's entries per status. The three aggregates are
// independent, individually-failable reads: a failed one is logged and
// reported as zero rather than failing the whole dashboard read.
func (s *Service) Balance(ctx context.Context, affiliateID int) Balance {
	var b Balance
	b.PendingCents = s.sumByStatus(ctx, affiliateID, ledgerentry.StatusPending)
	b.AvailableCents = s.sumByStatus(ctx, affiliateID, ledgerentry.StatusAvailable)
	b.ReversedCents = s.sumByStatus(ctx, affiliateID, ledgerentry.StatusReversed)
	return b
}

func (s *Service) sumByStatus(ctx context.Context, affiliateID int, status ledgerentry.Status) int64 {
	sum, err := s.db.LedgerEntry.
		Query().
		Where(
			ledgerentry.AffiliateIDEQ(affiliateID),
			ledgerentry.StatusEQ(status),
		).
		Aggregate(ent.Sum(ledgerentry.FieldAmountCents)).
		Int(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to sum %s entries for affiliate %d: %v", status, affiliateID, err)
		return 0
	}
	return int64(sum)
}

// insertEntries writes the direct and parent entries of one event in a
// single transaction. A unique-constraint violation means a concurrent
// delivery of the same event already won, which is a silent no-op, never a
// duplicate credit.
func (s *Service) insertEntries(ctx context.Context, eventID string, specs []entrySpec) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	for _, spec := range specs {
		builder := tx.LedgerEntry.
			Create().
			SetEventID(spec.eventID).
			SetEventType(spec.eventType).
			SetAffiliateID(spec.affiliateID).
			SetAmountCents(spec.amountCents).
			SetBaseAmountCents(spec.baseCents).
			SetCurrency(s.currency).
			SetStatus(spec.status).
			SetMetadata(spec.metadata)
		if spec.availableAt != nil {
			builder.SetAvailableAt(*spec.availableAt)
		}
		if spec.subscriptionID != nil {
			builder.SetSubscriptionID(*spec.subscriptionID)
		}

		if _, err := builder.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				log.Printf("ℹ️  Event %s raced a duplicate delivery, skipping", eventID)
				return rollbackSilent(tx)
			}
			return rollback(tx, fmt.Errorf("failed to create ledger entry: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ledger entries: %w", err)
	}

	return nil
}

func (s *Service) loadAffiliateWithParent(ctx context.Context, affiliateID int) (*ent.Affiliate, error) {
	aff, err := s.db.Affiliate.
		Query().
		Where(entaffiliate.IDEQ(affiliateID)).
		WithParent().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load affiliate %d: %w", affiliateID, err)
	}
	return aff, nil
}

// proportionalAmount scales the original entry amount by the refunded share
// of the base amount, rounding half up.
func proportionalAmount(originalCents, refundedCents, baseCents int64) int64 {
	if baseCents == 0 {
		return originalCents
	}
	return int64(math.Round(float64(originalCents) * float64(refundedCents) / float64(baseCents)))
}

func tierLabel(isSub bool) string {
	if isSub {
		return "sub"
	}
	return "direct"
}

func cloneMetadata(metadata map[string]string) map[string]string {
	meta := make(map[string]string, len(metadata)+8)
	for k, v := range metadata {
		meta[k] = v
	}
	return meta
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}

func rollbackSilent(tx *ent.Tx) error {
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("failed to roll back duplicate delivery: %w", err)
	}
	return nil
}
