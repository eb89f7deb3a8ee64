package commission

import "math"

// Config holds the commission percentages injected at construction time.
// All values are percentages of the relevant base amount, in the 0-100 range.
type Config struct {
	// Business subscription event family
	DirectSubscriptionPct float64 // direct affiliate share of the base subscription fee
	SubSubscriptionPct    float64 // sub-affiliate share of the base subscription fee
	HomecheffSharePct     float64 // platform share, always taken on the base fee
	ParentSubscriptionPct float64 // upline share, funded from the platform's margin

	// Marketplace order event family (per attributed side)
	DirectOrderPct float64
	SubOrderPct    float64
	ParentOrderPct float64

	// Affiliate-funded discount bounds. MaxDiscountPct caps how much of their
	// own share an affiliate may give away; MinRetainedPct is the hard floor
	// of the nominal commission they must keep. The floor wins over the cap
	// when the two disagree, so reconfiguring the base percentages cannot
	// silently erode the retained-commission guarantee.
	DirectMaxDiscountPct float64
	SubMaxDiscountPct    float64
	MinRetainedPct       float64
}

// DefaultConfig returns the production percentages.
func DefaultConfig() Config {
	return Config{
		DirectSubscriptionPct: 50,
		SubSubscriptionPct:    40,
		HomecheffSharePct:     50,
		ParentSubscriptionPct: 10,
		DirectOrderPct:        25,
		SubOrderPct:           20,
		ParentOrderPct:        5,
		DirectMaxDiscountPct:  80,
		SubMaxDiscountPct:     75,
		MinRetainedPct:        20,
	}
}

// Calculator computes commission splits. It is pure: no I/O, no clock, no
// storage access. Callers resolve attribution and hierarchy first and hand
// the results in.
type Calculator struct {
	cfg Config
}

// New creates a calculator with the given configuration.
func New(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// SubscriptionInput describes one paid business-subscription invoice.
type SubscriptionInput struct {
	SubscriptionFeeCents int64   // pre-discount base price
	DiscountSharePct     float64 // affiliate-funded discount request, 0-100
	IsSubAffiliate       bool

	// Per-affiliate overrides; nil means tier default.
	CommissionPctOverride *float64
	ParentPctOverride     *float64
}

// SubscriptionResult is the computed split for one invoice.
type SubscriptionResult struct {
	AffiliateCommissionCents      int64 // nominal share before discount
	DiscountCents                 int64 // granted discount after cap and floor
	FinalAffiliateCommissionCents int64
	HomecheffShareCents           int64 // always the platform share of the base fee
	FinalPriceCents               int64 // what the business actually pays
	ParentCommissionCents         int64 // zero unless IsSubAffiliate
}

// SubscriptionSplit computes the commission split for a business
// subscription payment. The requested discount is capped per tier and then
// clamped so the affiliate always retains at least MinRetainedPct of their
// nominal commission. The platform share is taken on the base fee and is
// never discounted. For sub-affiliates a separate upline commission is
// computed on the base fee; it is additive, not subtracted from the
// sub-affiliate's share.
func (c *Calculator) SubscriptionSplit(in SubscriptionInput) SubscriptionResult {
	commissionPct := c.cfg.DirectSubscriptionPct
	maxDiscountPct := c.cfg.DirectMaxDiscountPct
	if in.IsSubAffiliate {
		commissionPct = c.cfg.SubSubscriptionPct
		maxDiscountPct = c.cfg.SubMaxDiscountPct
	}
	if in.CommissionPctOverride != nil {
		commissionPct = *in.CommissionPctOverride
	}

	affiliateCommission := pctOf(in.SubscriptionFeeCents, commissionPct)
	homecheffShare := pctOf(in.SubscriptionFeeCents, c.cfg.HomecheffSharePct)

	requested := clampPct(in.DiscountSharePct)
	if requested > maxDiscountPct {
		requested = maxDiscountPct
	}
	discount := pctOf(affiliateCommission, requested)

	// The retained-commission floor always wins over the requested discount.
	minCommission := pctOf(affiliateCommission, c.cfg.MinRetainedPct)
	if affiliateCommission-discount < minCommission {
		discount = affiliateCommission - minCommission
	}
	if discount < 0 {
		discount = 0
	}

	res := SubscriptionResult{
		AffiliateCommissionCents:      affiliateCommission,
		DiscountCents:                 discount,
		FinalAffiliateCommissionCents: affiliateCommission - discount,
		HomecheffShareCents:           homecheffShare,
		FinalPriceCents:               in.SubscriptionFeeCents - discount,
	}

	if in.IsSubAffiliate {
		parentPct := c.cfg.ParentSubscriptionPct
		if in.ParentPctOverride != nil {
			parentPct = *in.ParentPctOverride
		}
		res.ParentCommissionCents = pctOf(in.SubscriptionFeeCents, parentPct)
	}

	return res
}

// OrderInput describes the platform fee of one paid marketplace order and
// which sides of the transaction are attributed to the credited affiliate.
type OrderInput struct {
	HomecheffFeeCents int64 // platform fee, already net of payment-processor cut
	BuyerAttributed   bool
	SellerAttributed  bool
	IsSubAffiliate    bool

	PerSidePctOverride *float64
	ParentPctOverride  *float64
}

// OrderResult is the computed split for one order fee.
type OrderResult struct {
	AttributedSides       int
	CommissionCents       int64
	ParentCommissionCents int64 // zero unless IsSubAffiliate
}

// OrderSplit computes the commission on one order's platform fee. The per-side
// percentage is credited once per attributed side, so an affiliate who
// acquired both buyer and seller earns exactly double the single-side amount.
func (c *Calculator) OrderSplit(in OrderInput) OrderResult {
	sides := 0
	if in.BuyerAttributed {
		sides++
	}
	if in.SellerAttributed {
		sides++
	}

	perSidePct := c.cfg.DirectOrderPct
	if in.IsSubAffiliate {
		perSidePct = c.cfg.SubOrderPct
	}
	if in.PerSidePctOverride != nil {
		perSidePct = *in.PerSidePctOverride
	}

	res := OrderResult{
		AttributedSides: sides,
		CommissionCents: pctOf(in.HomecheffFeeCents, perSidePct) * int64(sides),
	}

	if in.IsSubAffiliate {
		parentPct := c.cfg.ParentOrderPct
		if in.ParentPctOverride != nil {
			parentPct = *in.ParentPctOverride
		}
		res.ParentCommissionCents = pctOf(in.HomecheffFeeCents, parentPct) * int64(sides)
	}

	return res
}

// pctOf applies a 0-100 percentage to an amount of cents, rounding half up
// to the nearest cent.
func pctOf(amountCents int64, pct float64) int64 {
	return int64(math.Round(float64(amountCents) * pct / 100))
}

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
