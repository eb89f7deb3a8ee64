package attribution

import (
	"context"
	"testing"
	"time"

	"github.com/homecheff/affiliates/ent"
	entattribution "github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/enttest"
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

func newTestStore(client *ent.Client, windowDays int) *Store {
	return NewStore(client, referral.NewService(client, nil), windowDays)
}

func TestRecordSignupAttribution(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(client, 365)
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, "chef1234")
	require.NoError(t, err)

	t.Run("Success - User signup attributed", func(t *testing.T) {
		user, err := testdata.NewUser(client).Save(ctx)
		require.NoError(t, err)

		skip := store.RecordSignupAttribution(ctx, user.ID, "chef1234", false)
		assert.Equal(t, SkipNone, skip)

		attr, err := store.FindActiveAttribution(ctx, user.ID, entattribution.TypeUserSignup, time.Now())
		require.NoError(t, err)
		require.NotNil(t, attr)
		assert.Equal(t, seeded.Affiliate.ID, attr.AffiliateID)

		// Window spans exactly the configured number of days
		assert.WithinDuration(t, attr.StartsAt.AddDate(0, 0, 365), attr.EndsAt, time.Second)
	})

	t.Run("Success - Business signup gets its own type", func(t *testing.T) {
		biz, err := testdata.NewBusinessUser(client).Save(ctx)
		require.NoError(t, err)

		skip := store.RecordSignupAttribution(ctx, biz.ID, "chef1234", true)
		assert.Equal(t, SkipNone, skip)

		attr, err := store.FindActiveAttribution(ctx, biz.ID, entattribution.TypeBusinessSignup, time.Now())
		require.NoError(t, err)
		require.NotNil(t, attr)

		// No user_signup record was created as a side effect
		userAttr, err := store.FindActiveAttribution(ctx, biz.ID, entattribution.TypeUserSignup, time.Now())
		require.NoError(t, err)
		assert.Nil(t, userAttr)
	})

	t.Run("Skip - Unknown code", func(t *testing.T) {
		user, err := testdata.NewUser(client).Save(ctx)
		require.NoError(t, err)

		skip := store.RecordSignupAttribution(ctx, user.ID, "nosuchcode", false)
		assert.Equal(t, SkipNoReferral, skip)
	})

	t.Run("Skip - Empty code", func(t *testing.T) {
		user, err := testdata.NewUser(client).Save(ctx)
		require.NoError(t, err)

		skip := store.RecordSignupAttribution(ctx, user.ID, "", false)
		assert.Equal(t, SkipNoReferral, skip)
	})

	t.Run("Skip - Self referral", func(t *testing.T) {
		skip := store.RecordSignupAttribution(ctx, seeded.User.ID, "chef1234", false)
		assert.Equal(t, SkipSelfReferral, skip)

		attr, err := store.FindActiveAttribution(ctx, seeded.User.ID, entattribution.TypeUserSignup, time.Now())
		require.NoError(t, err)
		assert.Nil(t, attr)
	})

	t.Run("Skip - Already attributed", func(t *testing.T) {
		other, err := testdata.SeedAffiliate(ctx, client, "other123")
		require.NoError(t, err)

		user, err := testdata.NewUser(client).Save(ctx)
		require.NoError(t, err)

		skip := store.RecordSignupAttribution(ctx, user.ID, "chef1234", false)
		require.Equal(t, SkipNone, skip)

		skip = store.RecordSignupAttribution(ctx, user.ID, "other123", false)
		assert.Equal(t, SkipAlreadyAttributed, skip)

		// First claim wins
		attr, err := store.FindActiveAttribution(ctx, user.ID, entattribution.TypeUserSignup, time.Now())
		require.NoError(t, err)
		require.NotNil(t, attr)
		assert.Equal(t, seeded.Affiliate.ID, attr.AffiliateID)
		assert.NotEqual(t, other.Affiliate.ID, attr.AffiliateID)
	})
}

func TestFindActiveAttribution(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(client, 365)
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, "chef1234")
	require.NoError(t, err)

	user, err := testdata.NewUser(client).Save(ctx)
	require.NoError(t, err)

	now := time.Now()
	_, err = client.Attribution.
		Create().
		SetUserID(user.ID).
		SetAffiliateID(seeded.Affiliate.ID).
		SetType(entattribution.TypeUserSignup).
		SetStartsAt(now.AddDate(-1, 0, 0)).
		SetEndsAt(now.AddDate(0, 0, -1)).
		Save(ctx)
	require.NoError(t, err)

	t.Run("Expired window returns nothing", func(t *testing.T) {
		attr, err := store.FindActiveAttribution(ctx, user.ID, entattribution.TypeUserSignup, now)
		require.NoError(t, err)
		assert.Nil(t, attr)
	})

	t.Run("Same record was active before expiry", func(t *testing.T) {
		attr, err := store.FindActiveAttribution(ctx, user.ID, entattribution.TypeUserSignup, now.AddDate(0, 0, -2))
		require.NoError(t, err)
		require.NotNil(t, attr)
		assert.Equal(t, seeded.Affiliate.ID, attr.AffiliateID)
	})

	t.Run("No record for unknown user", func(t *testing.T) {
		attr, err := store.FindActiveAttribution(ctx, 999999, entattribution.TypeUserSignup, now)
		require.NoError(t, err)
		assert.Nil(t, attr)
	})
}
