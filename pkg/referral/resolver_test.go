package referral

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/homecheff/affiliates/ent"
	entaffiliate "github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/enttest"
	"github.com/homecheff/affiliates/ent/referrallink"
	"github.com/homecheff/affiliates/pkg/cache"
	"github.com/homecheff/affiliates/pkg/testdata"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func setupTestCache(t *testing.T) *cache.Client {
	mr := miniredis.RunT(t)
	c, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	return c
}

func TestResolve(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, "chef1234")
	require.NoError(t, err)

	t.Run("Success - Resolve active code", func(t *testing.T) {
		id, err := service.Resolve(ctx, "chef1234")

		require.NoError(t, err)
		assert.Equal(t, seeded.Affiliate.ID, id)
	})

	t.Run("Failure - Unknown code", func(t *testing.T) {
		_, err := service.Resolve(ctx, "nosuchcode")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Failure - Empty code", func(t *testing.T) {
		_, err := service.Resolve(ctx, "")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Failure - Deactivated link", func(t *testing.T) {
		_, err := testdata.SeedAffiliate(ctx, client, "stale123")
		require.NoError(t, err)

		_, err = client.ReferralLink.
			Update().
			Where(referrallink.CodeEQ("stale123")).
			SetActive(false).
			Save(ctx)
		require.NoError(t, err)

		_, err = service.Resolve(ctx, "stale123")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Failure - Suspended affiliate", func(t *testing.T) {
		susp, err := testdata.SeedAffiliate(ctx, client, "susp1234")
		require.NoError(t, err)

		_, err = client.Affiliate.
			UpdateOneID(susp.Affiliate.ID).
			SetStatus(entaffiliate.StatusSuspended).
			Save(ctx)
		require.NoError(t, err)

		_, err = service.Resolve(ctx, "susp1234")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestResolveCaching(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, setupTestCache(t))
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, "cached12")
	require.NoError(t, err)

	t.Run("Success - Second resolution served from cache", func(t *testing.T) {
		id, err := service.Resolve(ctx, "cached12")
		require.NoError(t, err)
		assert.Equal(t, seeded.Affiliate.ID, id)

		// Deactivate behind the service's back; the cached value should
		// still answer within its TTL.
		_, err = client.ReferralLink.
			Update().
			Where(referrallink.CodeEQ("cached12")).
			SetActive(false).
			Save(ctx)
		require.NoError(t, err)

		id, err = service.Resolve(ctx, "cached12")
		require.NoError(t, err)
		assert.Equal(t, seeded.Affiliate.ID, id)
	})

	t.Run("Success - DeactivateLink invalidates the cache", func(t *testing.T) {
		fresh, err := testdata.SeedAffiliate(ctx, client, "fresh123")
		require.NoError(t, err)

		id, err := service.Resolve(ctx, "fresh123")
		require.NoError(t, err)
		assert.Equal(t, fresh.Affiliate.ID, id)

		require.NoError(t, service.DeactivateLink(ctx, "fresh123"))

		_, err = service.Resolve(ctx, "fresh123")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestIssueLink(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, "seed1234")
	require.NoError(t, err)

	t.Run("Success - Issue new link", func(t *testing.T) {
		link, err := service.IssueLink(ctx, seeded.Affiliate.ID)

		require.NoError(t, err)
		assert.Len(t, link.Code, 8)
		assert.True(t, link.Active)
		assert.Equal(t, seeded.Affiliate.ID, link.AffiliateID)

		id, err := service.Resolve(ctx, link.Code)
		require.NoError(t, err)
		assert.Equal(t, seeded.Affiliate.ID, id)
	})
}

func TestDeactivateLink(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	_, err := testdata.SeedAffiliate(ctx, client, "gone1234")
	require.NoError(t, err)

	t.Run("Success - Code stops resolving", func(t *testing.T) {
		require.NoError(t, service.DeactivateLink(ctx, "gone1234"))

		_, err := service.Resolve(ctx, "gone1234")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Failure - Unknown code", func(t *testing.T) {
		err := service.DeactivateLink(ctx, "nosuchcode")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRecordClick(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, "click123")
	require.NoError(t, err)

	t.Run("Success - Click recorded and counter bumped", func(t *testing.T) {
		err := service.RecordClick(ctx, "click123", "192.168.1.1", "Mozilla/5.0", "https://instagram.com")
		require.NoError(t, err)

		clicks, err := client.ReferralClick.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, clicks, 1)
		assert.Equal(t, seeded.Link.ID, clicks[0].LinkID)
		assert.Equal(t, "192.168.1.1", *clicks[0].IPAddress)

		updated, err := client.Affiliate.Get(ctx, seeded.Affiliate.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.TotalClicks)
	})

	t.Run("Success - Empty optional fields stay null", func(t *testing.T) {
		err := service.RecordClick(ctx, "click123", "", "", "")
		require.NoError(t, err)

		clicks, err := client.ReferralClick.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, clicks, 2)
	})

	t.Run("Failure - Unknown code", func(t *testing.T) {
		err := service.RecordClick(ctx, "nosuchcode", "10.0.0.1", "", "")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
