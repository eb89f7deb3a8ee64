package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionSplit(t *testing.T) {
	calc := New(DefaultConfig())

	t.Run("Direct affiliate with max discount hits the retained floor", func(t *testing.T) {
		// €99 subscription, direct affiliate giving away 80% of their share
		res := calc.SubscriptionSplit(SubscriptionInput{
			SubscriptionFeeCents: 9900,
			DiscountSharePct:     80,
		})

		assert.Equal(t, int64(4950), res.AffiliateCommissionCents)
		assert.Equal(t, int64(3960), res.DiscountCents)
		assert.Equal(t, int64(990), res.FinalAffiliateCommissionCents)
		assert.Equal(t, int64(4950), res.HomecheffShareCents)
		assert.Equal(t, int64(5940), res.FinalPriceCents)
		assert.Equal(t, int64(0), res.ParentCommissionCents)
	})

	t.Run("No discount", func(t *testing.T) {
		res := calc.SubscriptionSplit(SubscriptionInput{
			SubscriptionFeeCents: 9900,
		})

		assert.Equal(t, int64(4950), res.AffiliateCommissionCents)
		assert.Equal(t, int64(0), res.DiscountCents)
		assert.Equal(t, int64(4950), res.FinalAffiliateCommissionCents)
		assert.Equal(t, int64(9900), res.FinalPriceCents)
	})

	t.Run("Requested discount above the cap is capped", func(t *testing.T) {
		res := calc.SubscriptionSplit(SubscriptionInput{
			SubscriptionFeeCents: 9900,
			DiscountSharePct:     100,
		})

		// Capped to 80%, which coincides with the 20% floor
		assert.Equal(t, int64(3960), res.DiscountCents)
		assert.Equal(t, int64(990), res.FinalAffiliateCommissionCents)
	})

	t.Run("Sub-affiliate gets reduced share plus independent parent commission", func(t *testing.T) {
		res := calc.SubscriptionSplit(SubscriptionInput{
			SubscriptionFeeCents: 9900,
			IsSubAffiliate:       true,
		})

		assert.Equal(t, int64(3960), res.AffiliateCommissionCents) // 40%
		assert.Equal(t, int64(4950), res.HomecheffShareCents)      // still 50% of base
		assert.Equal(t, int64(990), res.ParentCommissionCents)     // 10%, additive
	})

	t.Run("Sub-affiliate discount capped at 75 percent of own share", func(t *testing.T) {
		res := calc.SubscriptionSplit(SubscriptionInput{
			SubscriptionFeeCents: 9900,
			DiscountSharePct:     100,
			IsSubAffiliate:       true,
		})

		assert.Equal(t, int64(2970), res.DiscountCents) // 75% of 3960
		assert.Equal(t, int64(990), res.FinalAffiliateCommissionCents)
	})

	t.Run("Custom commission override takes precedence over tier default", func(t *testing.T) {
		override := 60.0
		res := calc.SubscriptionSplit(SubscriptionInput{
			SubscriptionFeeCents:  10000,
			CommissionPctOverride: &override,
		})

		assert.Equal(t, int64(6000), res.AffiliateCommissionCents)
		assert.Equal(t, int64(5000), res.HomecheffShareCents)
	})

	t.Run("Custom parent override", func(t *testing.T) {
		override := 15.0
		res := calc.SubscriptionSplit(SubscriptionInput{
			SubscriptionFeeCents: 10000,
			IsSubAffiliate:       true,
			ParentPctOverride:    &override,
		})

		assert.Equal(t, int64(1500), res.ParentCommissionCents)
	})

	t.Run("Negative discount request treated as zero", func(t *testing.T) {
		res := calc.SubscriptionSplit(SubscriptionInput{
			SubscriptionFeeCents: 9900,
			DiscountSharePct:     -10,
		})

		assert.Equal(t, int64(0), res.DiscountCents)
	})
}

func TestSubscriptionSplitFloorInvariant(t *testing.T) {
	calc := New(DefaultConfig())

	// The retained-commission floor holds for every discount request,
	// direct and sub-affiliate alike.
	for _, isSub := range []bool{false, true} {
		for pct := 0.0; pct <= 100; pct += 2.5 {
			res := calc.SubscriptionSplit(SubscriptionInput{
				SubscriptionFeeCents: 9900,
				DiscountSharePct:     pct,
				IsSubAffiliate:       isSub,
			})

			floor := pctOf(res.AffiliateCommissionCents, 20)
			assert.GreaterOrEqual(t, res.FinalAffiliateCommissionCents, floor,
				"discount=%v sub=%v", pct, isSub)
			assert.GreaterOrEqual(t, res.FinalAffiliateCommissionCents, int64(0))

			// The platform share never depends on tier or discount
			assert.Equal(t, int64(4950), res.HomecheffShareCents)
		}
	}
}

func TestOrderSplit(t *testing.T) {
	calc := New(DefaultConfig())

	t.Run("Sub-affiliate buyer side only", func(t *testing.T) {
		// €12 fee on a €100 order
		res := calc.OrderSplit(OrderInput{
			HomecheffFeeCents: 1200,
			BuyerAttributed:   true,
			IsSubAffiliate:    true,
		})

		assert.Equal(t, 1, res.AttributedSides)
		assert.Equal(t, int64(240), res.CommissionCents)      // 20%
		assert.Equal(t, int64(60), res.ParentCommissionCents) // 5%
	})

	t.Run("Sub-affiliate both sides", func(t *testing.T) {
		res := calc.OrderSplit(OrderInput{
			HomecheffFeeCents: 1200,
			BuyerAttributed:   true,
			SellerAttributed:  true,
			IsSubAffiliate:    true,
		})

		assert.Equal(t, 2, res.AttributedSides)
		assert.Equal(t, int64(480), res.CommissionCents)
		assert.Equal(t, int64(120), res.ParentCommissionCents)
	})

	t.Run("Direct affiliate earns 25 percent per side with no parent cut", func(t *testing.T) {
		res := calc.OrderSplit(OrderInput{
			HomecheffFeeCents: 1200,
			BuyerAttributed:   true,
			SellerAttributed:  true,
		})

		assert.Equal(t, int64(600), res.CommissionCents)
		assert.Equal(t, int64(0), res.ParentCommissionCents)
	})

	t.Run("Both sides is exactly double one side", func(t *testing.T) {
		for _, fee := range []int64{1, 99, 1200, 333, 12345} {
			one := calc.OrderSplit(OrderInput{HomecheffFeeCents: fee, BuyerAttributed: true})
			two := calc.OrderSplit(OrderInput{HomecheffFeeCents: fee, BuyerAttributed: true, SellerAttributed: true})
			assert.Equal(t, 2*one.CommissionCents, two.CommissionCents, "fee=%d", fee)
		}
	})

	t.Run("No attributed sides yields nothing", func(t *testing.T) {
		res := calc.OrderSplit(OrderInput{HomecheffFeeCents: 1200})

		assert.Equal(t, 0, res.AttributedSides)
		assert.Equal(t, int64(0), res.CommissionCents)
		assert.Equal(t, int64(0), res.ParentCommissionCents)
	})

	t.Run("Per-side override", func(t *testing.T) {
		override := 30.0
		res := calc.OrderSplit(OrderInput{
			HomecheffFeeCents:  1000,
			BuyerAttributed:    true,
			PerSidePctOverride: &override,
		})

		assert.Equal(t, int64(300), res.CommissionCents)
	})
}

func TestPctOfRounding(t *testing.T) {
	// Round half up on integer cents
	assert.Equal(t, int64(1), pctOf(1, 50))   // 0.5 -> 1
	assert.Equal(t, int64(13), pctOf(50, 25)) // 12.5 -> 13
	assert.Equal(t, int64(0), pctOf(0, 50))
	assert.Equal(t, int64(4950), pctOf(9900, 50))
}
