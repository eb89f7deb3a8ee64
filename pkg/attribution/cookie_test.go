package attribution

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	entattribution "github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/pkg/testdata"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetReferralCookie(t *testing.T) {
	bridge := NewCookieBridge(nil, 30)

	rec := httptest.NewRecorder()
	bridge.SetReferralCookie(rec, "chef1234")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "chef1234", cookie.Value)
	assert.Equal(t, 30*24*60*60, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestReadReferralCode(t *testing.T) {
	bridge := NewCookieBridge(nil, 30)

	t.Run("Explicit code wins over cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "fromcookie"})

		assert.Equal(t, "explicit1", bridge.ReadReferralCode(req, "explicit1"))
	})

	t.Run("Cookie used when no explicit code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "fromcookie"})

		assert.Equal(t, "fromcookie", bridge.ReadReferralCode(req, ""))
	})

	t.Run("Empty when neither present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil)

		assert.Empty(t, bridge.ReadReferralCode(req, ""))
	})
}

func TestAttributeSignup(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(client, 365)
	bridge := NewCookieBridge(store, 30)
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, "chef1234")
	require.NoError(t, err)

	t.Run("Success - Cookie-carried code attributes the signup", func(t *testing.T) {
		user, err := testdata.NewUser(client).Save(ctx)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "chef1234"})

		skip := bridge.AttributeSignup(req, user.ID, "", false)
		assert.Equal(t, SkipNone, skip)

		attr, err := store.FindActiveAttribution(ctx, user.ID, entattribution.TypeUserSignup, time.Now())
		require.NoError(t, err)
		require.NotNil(t, attr)
		assert.Equal(t, seeded.Affiliate.ID, attr.AffiliateID)
	})

	t.Run("Skip - No cookie and no explicit code", func(t *testing.T) {
		user, err := testdata.NewUser(client).Save(ctx)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil)

		skip := bridge.AttributeSignup(req, user.ID, "", false)
		assert.Equal(t, SkipNoReferral, skip)
	})
}
