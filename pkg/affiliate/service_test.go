package affiliate

import (
	"context"
	"testing"

	"github.com/homecheff/affiliates/ent"
	entaffiliate "github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/enttest"
	"github.com/homecheff/affiliates/pkg/attribution"
	"github.com/homecheff/affiliates/pkg/commission"
	"github.com/homecheff/affiliates/pkg/ledger"
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
	ledgerService := ledger.NewService(client, commission.New(commission.DefaultConfig()), store, 14, "EUR")
	return NewService(client, ledgerService)
}

func TestCreateAffiliate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client)
	ctx := context.Background()

	user, err := testdata.NewUser(client).Save(ctx)
	require.NoError(t, err)

	t.Run("Success - Create new affiliate", func(t *testing.T) {
		aff, err := service.CreateAffiliate(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.ID, aff.UserID)
		assert.Equal(t, entaffiliate.StatusActive, aff.Status)
		assert.Nil(t, aff.ParentID)
	})

	t.Run("Failure - One affiliate account per user", func(t *testing.T) {
		_, err := service.CreateAffiliate(ctx, user.ID)

		require.Error(t, err)
		assert.True(t, ent.IsConstraintError(err))
	})
}

func TestAssignParent(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client)
	ctx := context.Background()

	parent, err := testdata.SeedAffiliate(ctx, client, "parent01")
	require.NoError(t, err)
	child, err := testdata.SeedAffiliate(ctx, client, "child001")
	require.NoError(t, err)

	t.Run("Success - Assign parent", func(t *testing.T) {
		err := service.AssignParent(ctx, child.Affiliate.ID, parent.Affiliate.ID)
		require.NoError(t, err)

		updated, err := client.Affiliate.Get(ctx, child.Affiliate.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.ParentID)
		assert.Equal(t, parent.Affiliate.ID, *updated.ParentID)
	})

	t.Run("Failure - Self as parent", func(t *testing.T) {
		err := service.AssignParent(ctx, parent.Affiliate.ID, parent.Affiliate.ID)

		assert.ErrorIs(t, err, ErrInvalidParent)
	})

	t.Run("Failure - Parent is itself a sub-affiliate", func(t *testing.T) {
		grandchild, err := testdata.SeedAffiliate(ctx, client, "grand001")
		require.NoError(t, err)

		err = service.AssignParent(ctx, grandchild.Affiliate.ID, child.Affiliate.ID)
		assert.ErrorIs(t, err, ErrInvalidParent)
	})

	t.Run("Failure - Affiliate with children cannot be demoted", func(t *testing.T) {
		top, err := testdata.SeedAffiliate(ctx, client, "top00001")
		require.NoError(t, err)

		err = service.AssignParent(ctx, parent.Affiliate.ID, top.Affiliate.ID)
		assert.ErrorIs(t, err, ErrInvalidParent)
	})

	t.Run("Failure - Unknown parent", func(t *testing.T) {
		orphan, err := testdata.SeedAffiliate(ctx, client, "orphan01")
		require.NoError(t, err)

		err = service.AssignParent(ctx, orphan.Affiliate.ID, 999999)
		assert.ErrorIs(t, err, ErrAffiliateNotFound)
	})
}

func TestSetStatus(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client)
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, "status01")
	require.NoError(t, err)

	t.Run("Success - Suspend affiliate", func(t *testing.T) {
		err := service.SetStatus(ctx, seeded.Affiliate.ID, entaffiliate.StatusSuspended)
		require.NoError(t, err)

		updated, err := client.Affiliate.Get(ctx, seeded.Affiliate.ID)
		require.NoError(t, err)
		assert.Equal(t, entaffiliate.StatusSuspended, updated.Status)
	})

	t.Run("Failure - Unknown affiliate", func(t *testing.T) {
		err := service.SetStatus(ctx, 999999, entaffiliate.StatusActive)

		assert.ErrorIs(t, err, ErrAffiliateNotFound)
	})
}

func TestCreatePromoCode(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client)
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, "promo001")
	require.NoError(t, err)

	t.Run("Success - Create promo code", func(t *testing.T) {
		promo, err := service.CreatePromoCode(ctx, seeded.Affiliate.ID, 50)

		require.NoError(t, err)
		assert.Len(t, promo.Code, 8)
		assert.Equal(t, 50.0, promo.DiscountSharePct)
		assert.True(t, promo.Active)
	})

	t.Run("Failure - Discount above 100", func(t *testing.T) {
		_, err := service.CreatePromoCode(ctx, seeded.Affiliate.ID, 101)

		assert.ErrorIs(t, err, ErrInvalidDiscount)
	})

	t.Run("Failure - Negative discount", func(t *testing.T) {
		_, err := service.CreatePromoCode(ctx, seeded.Affiliate.ID, -1)

		assert.ErrorIs(t, err, ErrInvalidDiscount)
	})
}

func TestGetStats(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client)
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, "stats001")
	require.NoError(t, err)

	t.Run("Success - Fresh affiliate has zero balances", func(t *testing.T) {
		stats, err := service.GetStats(ctx, seeded.Affiliate.ID)

		require.NoError(t, err)
		assert.Equal(t, "active", stats.Status)
		assert.False(t, stats.IsSubAffiliate)
		assert.Zero(t, stats.TotalClicks)
		assert.Zero(t, stats.PendingCents)
		assert.Zero(t, stats.AvailableCents)
	})

	t.Run("Success - Sub-affiliate flagged", func(t *testing.T) {
		child, err := testdata.SeedSubAffiliate(ctx, client, seeded.Affiliate.ID, "stats002")
		require.NoError(t, err)

		stats, err := service.GetStats(ctx, child.Affiliate.ID)
		require.NoError(t, err)
		assert.True(t, stats.IsSubAffiliate)
	})

	t.Run("Failure - Unknown affiliate", func(t *testing.T) {
		_, err := service.GetStats(ctx, 999999)

		assert.ErrorIs(t, err, ErrAffiliateNotFound)
	})
}
