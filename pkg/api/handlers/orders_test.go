package handlers

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/homecheff/affiliates/ent"
	entattribution "github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/ledgerentry"
	"github.com/homecheff/affiliates/pkg/attribution"
	"github.com/homecheff/affiliates/pkg/commission"
	"github.com/homecheff/affiliates/pkg/ledger"
	"github.com/homecheff/affiliates/pkg/referral"
	"github.com/homecheff/affiliates/pkg/testdata"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(client *ent.Client) *ledger.Service {
	store := attribution.NewStore(client, referral.NewService(client, nil), 365)
	return ledger.NewService(client, commission.New(commission.DefaultConfig()), store, 14, "EUR")
}

// seedAttributedBuyer creates an affiliate, a buyer attributed to it and an
// unattributed seller, returning their ids.
func seedAttributedBuyer(t *testing.T, client *ent.Client, code string) (affiliateID, buyerID, sellerID int) {
	t.Helper()
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, code)
	require.NoError(t, err)

	buyer, err := testdata.NewUser(client).Save(ctx)
	require.NoError(t, err)
	seller, err := testdata.NewBusinessUser(client).Save(ctx)
	require.NoError(t, err)

	now := time.Now()
	_, err = client.Attribution.
		Create().
		SetUserID(buyer.ID).
		SetAffiliateID(seeded.Affiliate.ID).
		SetType(entattribution.TypeUserSignup).
		SetStartsAt(now.AddDate(0, 0, -1)).
		SetEndsAt(now.AddDate(1, 0, 0)).
		Save(ctx)
	require.NoError(t, err)

	return seeded.Affiliate.ID, buyer.ID, seller.ID
}

func TestOrderPaid(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ledgerService := newTestLedger(client)
	handler := NewOrderHandler(ledgerService, nil)
	ctx := context.Background()

	affiliateID, buyerID, sellerID := seedAttributedBuyer(t, client, "orders01")

	t.Run("Success - Commission credited", func(t *testing.T) {
		c, rec := postJSON("/api/v1/internal/orders/paid",
			`{"order_id":"ord_1","homecheff_fee_cents":1200,"buyer_id":`+strconv.Itoa(buyerID)+`,"seller_id":`+strconv.Itoa(sellerID)+`}`, nil)

		require.NoError(t, handler.OrderPaid(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		entries, err := client.LedgerEntry.
			Query().
			Where(ledgerentry.EventIDEQ("ord_1")).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, affiliateID, entries[0].AffiliateID)
		assert.Equal(t, int64(300), entries[0].AmountCents)
	})

	t.Run("Failure - Missing fee", func(t *testing.T) {
		c, rec := postJSON("/api/v1/internal/orders/paid",
			`{"order_id":"ord_2","buyer_id":1,"seller_id":2}`, nil)

		require.NoError(t, handler.OrderPaid(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - Malformed body", func(t *testing.T) {
		c, rec := postJSON("/api/v1/internal/orders/paid", `{not json`, nil)

		require.NoError(t, handler.OrderPaid(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderReversed(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ledgerService := newTestLedger(client)
	paidHandler := NewOrderHandler(ledgerService, nil)
	ctx := context.Background()

	_, buyerID, sellerID := seedAttributedBuyer(t, client, "orders02")

	c, _ := postJSON("/api/v1/internal/orders/paid",
		`{"order_id":"ord_rev","homecheff_fee_cents":1200,"buyer_id":`+strconv.Itoa(buyerID)+`,"seller_id":`+strconv.Itoa(sellerID)+`}`, nil)
	require.NoError(t, paidHandler.OrderPaid(c))

	t.Run("Success - Refund reverses the order commission", func(t *testing.T) {
		c, rec := postJSON("/api/v1/internal/orders/reversed",
			`{"event_id":"rev_1","original_event_id":"ord_rev","amount_cents":1200,"kind":"refund"}`, nil)

		require.NoError(t, paidHandler.OrderReversed(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		entries, err := client.LedgerEntry.
			Query().
			Where(ledgerentry.EventIDEQ("rev_1")).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(-300), entries[0].AmountCents)
		assert.Equal(t, ledgerentry.EventTypeRefund, entries[0].EventType)
	})

	t.Run("Failure - Unknown reversal kind", func(t *testing.T) {
		c, rec := postJSON("/api/v1/internal/orders/reversed",
			`{"event_id":"rev_2","original_event_id":"ord_rev","amount_cents":1200,"kind":"goodwill"}`, nil)

		require.NoError(t, paidHandler.OrderReversed(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
