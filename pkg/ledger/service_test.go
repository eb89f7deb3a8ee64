package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/homecheff/affiliates/ent"
	entattribution "github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/enttest"
	"github.com/homecheff/affiliates/ent/ledgerentry"
	"github.com/homecheff/affiliates/pkg/attribution"
	"github.com/homecheff/affiliates/pkg/commission"
	"github.com/homecheff/affiliates/pkg/referral"
	"github.com/homecheff/affiliates/pkg/testdata"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func newTestService(client *ent.Client) *Service {
	store := attribution.NewStore(client, referral.NewService(client, nil), 365)
	return NewService(client, commission.New(commission.DefaultConfig()), store, 14, "EUR")
}

// seedSubscription creates a business user, a business-signup attribution to
// the given affiliate and a subscription tied to that attribution.
func seedSubscription(t *testing.T, client *ent.Client, affiliateID int, stripeID string, feeCents int64) *ent.BusinessSubscription {
	t.Helper()
	ctx := context.Background()

	biz, err := testdata.NewBusinessUser(client).Save(ctx)
	require.NoError(t, err)

	now := time.Now()
	attr, err := client.Attribution.
		Create().
		SetUserID(biz.ID).
		SetAffiliateID(affiliateID).
		SetType(entattribution.TypeBusinessSignup).
		SetStartsAt(now.AddDate(0, 0, -1)).
		SetEndsAt(now.AddDate(1, 0, 0)).
		Save(ctx)
	require.NoError(t, err)

	sub, err := client.BusinessSubscription.
		Create().
		SetStripeSubscriptionID(stripeID).
		SetUserID(biz.ID).
		SetAttributionID(attr.ID).
		SetFeeCents(feeCents).
		SetEndsAt(attr.EndsAt).
		Save(ctx)
	require.NoError(t, err)

	return sub
}

// attributeUser links an existing user to an affiliate for marketplace orders
func attributeUser(t *testing.T, client *ent.Client, userID, affiliateID int) {
	t.Helper()
	now := time.Now()
	_, err := client.Attribution.
		Create().
		SetUserID(userID).
		SetAffiliateID(affiliateID).
		SetType(entattribution.TypeUserSignup).
		SetStartsAt(now.AddDate(0, 0, -1)).
		SetEndsAt(now.AddDate(1, 0, 0)).
		Save(context.Background())
	require.NoError(t, err)
}

func entriesFor(t *testing.T, client *ent.Client, eventIDs ...string) []*ent.LedgerEntry {
	t.Helper()
	entries, err := client.LedgerEntry.
		Query().
		Where(ledgerentry.EventIDIn(eventIDs...)).
		Order(ent.Asc(ledgerentry.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	return entries
}

func TestRecordInvoicePaid(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client)
	ctx := context.Background()

	t.Run("Success - Direct affiliate credited", func(t *testing.T) {
		seeded, err := testdata.SeedAffiliate(ctx, client, "direct01")
		require.NoError(t, err)
		seedSubscription(t, client, seeded.Affiliate.ID, "sub_direct", 9900)

		err = service.RecordInvoicePaid(ctx, "in_direct_1", "sub_direct", 9900, nil)
		require.NoError(t, err)

		entries := entriesFor(t, client, "in_direct_1", "in_direct_1_parent")
		require.Len(t, entries, 1)

		entry := entries[0]
		assert.Equal(t, int64(4950), entry.AmountCents) // 50% of 9900
		assert.Equal(t, int64(9900), entry.BaseAmountCents)
		assert.Equal(t, seeded.Affiliate.ID, entry.AffiliateID)
		assert.Equal(t, ledgerentry.EventTypeInvoicePaid, entry.EventType)
		assert.Equal(t, ledgerentry.StatusPending, entry.Status)
		assert.Equal(t, "EUR", entry.Currency)

		require.NotNil(t, entry.AvailableAt)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, 14), *entry.AvailableAt, time.Minute)

		assert.Equal(t, "direct", entry.Metadata["tier"])
		assert.Equal(t, "9900", entry.Metadata["subscription_fee_cents"])
	})

	t.Run("Success - Re-delivery is a no-op", func(t *testing.T) {
		err := service.RecordInvoicePaid(ctx, "in_direct_1", "sub_direct", 9900, nil)
		require.NoError(t, err)

		entries := entriesFor(t, client, "in_direct_1")
		assert.Len(t, entries, 1)
	})

	t.Run("Success - Sub-affiliate credits parent too", func(t *testing.T) {
		parent, err := testdata.SeedAffiliate(ctx, client, "parent01")
		require.NoError(t, err)
		child, err := testdata.SeedSubAffiliate(ctx, client, parent.Affiliate.ID, "child001")
		require.NoError(t, err)
		seedSubscription(t, client, child.Affiliate.ID, "sub_child", 9900)

		err = service.RecordInvoicePaid(ctx, "in_child_1", "sub_child", 9900, nil)
		require.NoError(t, err)

		entries := entriesFor(t, client, "in_child_1", "in_child_1_parent")
		require.Len(t, entries, 2)

		assert.Equal(t, child.Affiliate.ID, entries[0].AffiliateID)
		assert.Equal(t, int64(3960), entries[0].AmountCents) // 40% of 9900
		assert.Equal(t, "sub", entries[0].Metadata["tier"])

		assert.Equal(t, "in_child_1_parent", entries[1].EventID)
		assert.Equal(t, parent.Affiliate.ID, entries[1].AffiliateID)
		assert.Equal(t, int64(990), entries[1].AmountCents) // 10% of 9900
		assert.Equal(t, "parent", entries[1].Metadata["tier"])
	})

	t.Run("Success - Promo discount funded from commission", func(t *testing.T) {
		seeded, err := testdata.SeedAffiliate(ctx, client, "promo001")
		require.NoError(t, err)
		sub := seedSubscription(t, client, seeded.Affiliate.ID, "sub_promo", 9900)

		promo, err := client.PromoCode.
			Create().
			SetAffiliateID(seeded.Affiliate.ID).
			SetCode("SAVE80").
			SetDiscountSharePct(80).
			Save(ctx)
		require.NoError(t, err)

		_, err = client.BusinessSubscription.
			UpdateOneID(sub.ID).
			SetPromoCodeID(promo.ID).
			Save(ctx)
		require.NoError(t, err)

		// 80% of 9900 exceeds the cap, so the discount clamps at 80% of the
		// 4950 commission and the retained floor holds at 990.
		err = service.RecordInvoicePaid(ctx, "in_promo_1", "sub_promo", 5940, nil)
		require.NoError(t, err)

		entries := entriesFor(t, client, "in_promo_1")
		require.Len(t, entries, 1)
		assert.Equal(t, int64(990), entries[0].AmountCents)
		assert.Equal(t, "3960", entries[0].Metadata["discount_cents"])
		assert.Equal(t, "4950", entries[0].Metadata["homecheff_share_cents"])
	})

	t.Run("Skip - Unattributed subscription", func(t *testing.T) {
		biz, err := testdata.NewBusinessUser(client).Save(ctx)
		require.NoError(t, err)

		_, err = client.BusinessSubscription.
			Create().
			SetStripeSubscriptionID("sub_noattr").
			SetUserID(biz.ID).
			SetFeeCents(9900).
			SetEndsAt(time.Now().AddDate(1, 0, 0)).
			Save(ctx)
		require.NoError(t, err)

		err = service.RecordInvoicePaid(ctx, "in_noattr_1", "sub_noattr", 9900, nil)
		require.NoError(t, err)

		assert.Empty(t, entriesFor(t, client, "in_noattr_1"))
	})

	t.Run("Skip - Expired commission window", func(t *testing.T) {
		seeded, err := testdata.SeedAffiliate(ctx, client, "expired1")
		require.NoError(t, err)
		sub := seedSubscription(t, client, seeded.Affiliate.ID, "sub_expired", 9900)

		_, err = client.BusinessSubscription.
			UpdateOneID(sub.ID).
			SetEndsAt(time.Now().AddDate(0, 0, -1)).
			Save(ctx)
		require.NoError(t, err)

		err = service.RecordInvoicePaid(ctx, "in_expired_1", "sub_expired", 9900, nil)
		require.NoError(t, err)

		assert.Empty(t, entriesFor(t, client, "in_expired_1"))
	})

	t.Run("Skip - Unknown subscription", func(t *testing.T) {
		err := service.RecordInvoicePaid(ctx, "in_orphan_1", "sub_orphan", 9900, nil)
		require.NoError(t, err)

		assert.Empty(t, entriesFor(t, client, "in_orphan_1"))
	})
}

func TestRecordOrderPaid(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client)
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, "orders01")
	require.NoError(t, err)

	t.Run("Success - Both sides attributed to one affiliate", func(t *testing.T) {
		buyer, err := testdata.NewUser(client).Save(ctx)
		require.NoError(t, err)
		seller, err := testdata.NewBusinessUser(client).Save(ctx)
		require.NoError(t, err)
		attributeUser(t, client, buyer.ID, seeded.Affiliate.ID)
		attributeUser(t, client, seller.ID, seeded.Affiliate.ID)

		err = service.RecordOrderPaid(ctx, "ord_both", 1200, buyer.ID, seller.ID, nil)
		require.NoError(t, err)

		entries := entriesFor(t, client, "ord_both")
		require.Len(t, entries, 1)
		assert.Equal(t, int64(600), entries[0].AmountCents) // 25% per side, two sides
		assert.Equal(t, int64(1200), entries[0].BaseAmountCents)
		assert.Equal(t, ledgerentry.EventTypeOrderPaid, entries[0].EventType)
		assert.Equal(t, "2", entries[0].Metadata["attributed_sides"])
	})

	t.Run("Success - Only buyer attributed", func(t *testing.T) {
		buyer, err := testdata.NewUser(client).Save(ctx)
		require.NoError(t, err)
		seller, err := testdata.NewBusinessUser(client).Save(ctx)
		require.NoError(t, err)
		attributeUser(t, client, buyer.ID, seeded.Affiliate.ID)

		err = service.RecordOrderPaid(ctx, "ord_buyer", 1200, buyer.ID, seller.ID, nil)
		require.NoError(t, err)

		entries := entriesFor(t, client, "ord_buyer")
		require.Len(t, entries, 1)
		assert.Equal(t, int64(300), entries[0].AmountCents)
		assert.Equal(t, "1", entries[0].Metadata["attributed_sides"])
	})

	t.Run("Success - Buyer's affiliate wins a split order", func(t *testing.T) {
		other, err := testdata.SeedAffiliate(ctx, client, "orders02")
		require.NoError(t, err)

		buyer, err := testdata.NewUser(client).Save(ctx)
		require.NoError(t, err)
		seller, err := testdata.NewBusinessUser(client).Save(ctx)
		require.NoError(t, err)
		attributeUser(t, client, buyer.ID, seeded.Affiliate.ID)
		attributeUser(t, client, seller.ID, other.Affiliate.ID)

		err = service.RecordOrderPaid(ctx, "ord_split", 1200, buyer.ID, seller.ID, nil)
		require.NoError(t, err)

		entries := entriesFor(t, client, "ord_split")
		require.Len(t, entries, 1)
		assert.Equal(t, seeded.Affiliate.ID, entries[0].AffiliateID)
		// Only the buyer side counts for the credited affiliate
		assert.Equal(t, int64(300), entries[0].AmountCents)
	})

	t.Run("Success - Sub-affiliate credits parent too", func(t *testing.T) {
		parent, err := testdata.SeedAffiliate(ctx, client, "orders03")
		require.NoError(t, err)
		child, err := testdata.SeedSubAffiliate(ctx, client, parent.Affiliate.ID, "orders04")
		require.NoError(t, err)

		buyer, err := testdata.NewUser(client).Save(ctx)
		require.NoError(t, err)
		seller, err := testdata.NewBusinessUser(client).Save(ctx)
		require.NoError(t, err)
		attributeUser(t, client, buyer.ID, child.Affiliate.ID)

		err = service.RecordOrderPaid(ctx, "ord_sub", 1200, buyer.ID, seller.ID, nil)
		require.NoError(t, err)

		entries := entriesFor(t, client, "ord_sub", "ord_sub_parent")
		require.Len(t, entries, 2)
		assert.Equal(t, int64(240), entries[0].AmountCents) // 20% of 1200, one side
		assert.Equal(t, parent.Affiliate.ID, entries[1].AffiliateID)
		assert.Equal(t, int64(60), entries[1].AmountCents) // 5% of 1200, one side
	})

	t.Run("Skip - No attributed parties", func(t *testing.T) {
		buyer, err := testdata.NewUser(client).Save(ctx)
		require.NoError(t, err)
		seller, err := testdata.NewBusinessUser(client).Save(ctx)
		require.NoError(t, err)

		err = service.RecordOrderPaid(ctx, "ord_none", 1200, buyer.ID, seller.ID, nil)
		require.NoError(t, err)

		assert.Empty(t, entriesFor(t, client, "ord_none"))
	})

	t.Run("Success - Re-delivery is a no-op", func(t *testing.T) {
		buyer, err := testdata.NewUser(client).Save(ctx)
		require.NoError(t, err)
		seller, err := testdata.NewBusinessUser(client).Save(ctx)
		require.NoError(t, err)
		attributeUser(t, client, buyer.ID, seeded.Affiliate.ID)

		require.NoError(t, service.RecordOrderPaid(ctx, "ord_dup", 1200, buyer.ID, seller.ID, nil))
		require.NoError(t, service.RecordOrderPaid(ctx, "ord_dup", 1200, buyer.ID, seller.ID, nil))

		assert.Len(t, entriesFor(t, client, "ord_dup"), 1)
	})
}

func TestReverse(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client)
	ctx := context.Background()

	t.Run("Success - Full refund reverses the whole entry", func(t *testing.T) {
		seeded, err := testdata.SeedAffiliate(ctx, client, "refund01")
		require.NoError(t, err)
		seedSubscription(t, client, seeded.Affiliate.ID, "sub_refund", 9900)

		require.NoError(t, service.RecordInvoicePaid(ctx, "in_refund_1", "sub_refund", 9900, nil))
		require.NoError(t, service.Reverse(ctx, "re_refund_1", "in_refund_1", 9900, KindRefund))

		entries := entriesFor(t, client, "in_refund_1", "re_refund_1")
		require.Len(t, entries, 2)

		original, reversal := entries[0], entries[1]
		assert.Equal(t, ledgerentry.StatusReversed, original.Status)
		assert.Nil(t, original.AvailableAt)

		assert.Equal(t, int64(-4950), reversal.AmountCents)
		assert.Equal(t, ledgerentry.EventTypeRefund, reversal.EventType)
		assert.Equal(t, ledgerentry.StatusReversed, reversal.Status)
		assert.Equal(t, "in_refund_1", reversal.Metadata["original_event_id"])

		// The pair nets to zero
		assert.Zero(t, original.AmountCents+reversal.AmountCents)
	})

	t.Run("Success - Partial refund reverses proportionally", func(t *testing.T) {
		seeded, err := testdata.SeedAffiliate(ctx, client, "refund02")
		require.NoError(t, err)
		seedSubscription(t, client, seeded.Affiliate.ID, "sub_partial", 9900)

		require.NoError(t, service.RecordInvoicePaid(ctx, "in_partial_1", "sub_partial", 9900, nil))
		require.NoError(t, service.Reverse(ctx, "re_partial_1", "in_partial_1", 4950, KindRefund))

		entries := entriesFor(t, client, "re_partial_1")
		require.Len(t, entries, 1)
		assert.Equal(t, int64(-2475), entries[0].AmountCents) // half the 4950 commission
	})

	t.Run("Success - Parent entry reversed alongside", func(t *testing.T) {
		parent, err := testdata.SeedAffiliate(ctx, client, "refund03")
		require.NoError(t, err)
		child, err := testdata.SeedSubAffiliate(ctx, client, parent.Affiliate.ID, "refund04")
		require.NoError(t, err)
		seedSubscription(t, client, child.Affiliate.ID, "sub_pair", 9900)

		require.NoError(t, service.RecordInvoicePaid(ctx, "in_pair_1", "sub_pair", 9900, nil))
		require.NoError(t, service.Reverse(ctx, "re_pair_1", "in_pair_1", 9900, KindChargeback))

		reversals := entriesFor(t, client, "re_pair_1", "re_pair_1_parent")
		require.Len(t, reversals, 2)
		assert.Equal(t, int64(-3960), reversals[0].AmountCents)
		assert.Equal(t, int64(-990), reversals[1].AmountCents)
		assert.Equal(t, ledgerentry.EventTypeChargeback, reversals[0].EventType)

		originals := entriesFor(t, client, "in_pair_1", "in_pair_1_parent")
		for _, o := range originals {
			assert.Equal(t, ledgerentry.StatusReversed, o.Status)
		}
	})

	t.Run("Success - Re-delivered reversal is a no-op", func(t *testing.T) {
		seeded, err := testdata.SeedAffiliate(ctx, client, "refund05")
		require.NoError(t, err)
		seedSubscription(t, client, seeded.Affiliate.ID, "sub_redeliver", 9900)

		require.NoError(t, service.RecordInvoicePaid(ctx, "in_re_1", "sub_redeliver", 9900, nil))
		require.NoError(t, service.Reverse(ctx, "re_re_1", "in_re_1", 9900, KindRefund))
		require.NoError(t, service.Reverse(ctx, "re_re_1", "in_re_1", 9900, KindRefund))

		assert.Len(t, entriesFor(t, client, "re_re_1"), 1)
	})

	t.Run("Skip - Already reversed under a different event", func(t *testing.T) {
		seeded, err := testdata.SeedAffiliate(ctx, client, "refund06")
		require.NoError(t, err)
		seedSubscription(t, client, seeded.Affiliate.ID, "sub_double", 9900)

		require.NoError(t, service.RecordInvoicePaid(ctx, "in_double_1", "sub_double", 9900, nil))
		require.NoError(t, service.Reverse(ctx, "re_double_a", "in_double_1", 9900, KindRefund))
		require.NoError(t, service.Reverse(ctx, "re_double_b", "in_double_1", 9900, KindChargeback))

		// The second reversal found nothing left to flip
		assert.Empty(t, entriesFor(t, client, "re_double_b"))
	})

	t.Run("Skip - Unknown original event", func(t *testing.T) {
		require.NoError(t, service.Reverse(ctx, "re_orphan_1", "in_orphan_x", 9900, KindRefund))

		assert.Empty(t, entriesFor(t, client, "re_orphan_1"))
	})
}

func TestSweepAvailable(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client)
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, "sweep001")
	require.NoError(t, err)
	seedSubscription(t, client, seeded.Affiliate.ID, "sub_sweep", 9900)

	require.NoError(t, service.RecordInvoicePaid(ctx, "in_sweep_1", "sub_sweep", 9900, nil))
	require.NoError(t, service.RecordInvoicePaid(ctx, "in_sweep_2", "sub_sweep", 9900, nil))

	t.Run("Nothing due before the hold elapses", func(t *testing.T) {
		swept, err := service.SweepAvailable(ctx, time.Now())
		require.NoError(t, err)
		assert.Empty(t, swept)
	})

	t.Run("Success - Due entries become available", func(t *testing.T) {
		swept, err := service.SweepAvailable(ctx, time.Now().AddDate(0, 0, 15))
		require.NoError(t, err)

		require.Len(t, swept, 1)
		assert.Equal(t, seeded.Affiliate.ID, swept[0].AffiliateID)
		assert.Equal(t, int64(9900), swept[0].AmountCents) // two 4950 entries
		assert.Equal(t, 2, swept[0].Entries)

		available, err := client.LedgerEntry.
			Query().
			Where(ledgerentry.StatusEQ(ledgerentry.StatusAvailable)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, available)
	})

	t.Run("Second sweep finds nothing", func(t *testing.T) {
		swept, err := service.SweepAvailable(ctx, time.Now().AddDate(0, 0, 15))
		require.NoError(t, err)
		assert.Empty(t, swept)
	})
}

func TestBalanceAndListEntries(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client)
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, "balance1")
	require.NoError(t, err)
	seedSubscription(t, client, seeded.Affiliate.ID, "sub_balance", 9900)

	require.NoError(t, service.RecordInvoicePaid(ctx, "in_bal_1", "sub_balance", 9900, nil))
	require.NoError(t, service.RecordInvoicePaid(ctx, "in_bal_2", "sub_balance", 9900, nil))
	require.NoError(t, service.Reverse(ctx, "re_bal_1", "in_bal_2", 9900, KindRefund))

	// Age the surviving entry past its hold and sweep it
	_, err = service.SweepAvailable(ctx, time.Now().AddDate(0, 0, 15))
	require.NoError(t, err)

	t.Run("Balance sums per status", func(t *testing.T) {
		b := service.Balance(ctx, seeded.Affiliate.ID)

		assert.Equal(t, int64(0), b.PendingCents)
		assert.Equal(t, int64(4950), b.AvailableCents)
		// Reversed original and its negative pair cancel out
		assert.Equal(t, int64(0), b.ReversedCents)
	})

	t.Run("ListEntries filters by status", func(t *testing.T) {
		status := ledgerentry.StatusReversed
		entries, err := service.ListEntries(ctx, seeded.Affiliate.ID, &status, 50, 0)
		require.NoError(t, err)
		assert.Len(t, entries, 2)

		entries, err = service.ListEntries(ctx, seeded.Affiliate.ID, nil, 50, 0)
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("ListEntries paginates", func(t *testing.T) {
		entries, err := service.ListEntries(ctx, seeded.Affiliate.ID, nil, 2, 0)
		require.NoError(t, err)
		assert.Len(t, entries, 2)

		entries, err = service.ListEntries(ctx, seeded.Affiliate.ID, nil, 2, 2)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
