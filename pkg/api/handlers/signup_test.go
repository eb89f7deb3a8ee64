package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/homecheff/affiliates/ent"
	entattribution "github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/enttest"
	"github.com/homecheff/affiliates/pkg/attribution"
	"github.com/homecheff/affiliates/pkg/models"
	"github.com/homecheff/affiliates/pkg/referral"
	"github.com/homecheff/affiliates/pkg/testdata"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func newTestBridge(client *ent.Client) (*attribution.Store, *attribution.CookieBridge) {
	store := attribution.NewStore(client, referral.NewService(client, nil), 365)
	return store, attribution.NewCookieBridge(store, 30)
}

// postJSON builds an echo context for a JSON POST with an optional cookie
func postJSON(path, body string, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	store, bridge := newTestBridge(client)
	handler := NewSignupHandler(client, bridge, nil)
	ctx := context.Background()

	seeded, err := testdata.SeedAffiliate(ctx, client, "chef1234")
	require.NoError(t, err)

	t.Run("Success - Register without referral", func(t *testing.T) {
		c, rec := postJSON("/api/v1/auth/register",
			`{"name":"Ada","email":"ada@example.com"}`, nil)

		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp models.RegisterResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotZero(t, resp.UserID)
		assert.Equal(t, string(attribution.SkipNoReferral), resp.AttributionSkipped)
	})

	t.Run("Success - Explicit code attributes the signup", func(t *testing.T) {
		c, rec := postJSON("/api/v1/auth/register",
			`{"name":"Grace","email":"grace@example.com","referral_code":"chef1234"}`, nil)

		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp models.RegisterResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.AttributionSkipped)

		attr, err := store.FindActiveAttribution(ctx, resp.UserID, entattribution.TypeUserSignup, time.Now())
		require.NoError(t, err)
		require.NotNil(t, attr)
		assert.Equal(t, seeded.Affiliate.ID, attr.AffiliateID)
	})

	t.Run("Success - Cookie attributes the signup", func(t *testing.T) {
		c, rec := postJSON("/api/v1/auth/register",
			`{"name":"Linus","email":"linus@example.com"}`,
			&http.Cookie{Name: attribution.CookieName, Value: "chef1234"})

		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp models.RegisterResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.AttributionSkipped)
	})

	t.Run("Success - Business signup records business attribution", func(t *testing.T) {
		c, rec := postJSON("/api/v1/auth/register",
			`{"name":"Tante Truus","email":"truus@example.com","is_business":true,"referral_code":"chef1234"}`, nil)

		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp models.RegisterResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		attr, err := store.FindActiveAttribution(ctx, resp.UserID, entattribution.TypeBusinessSignup, time.Now())
		require.NoError(t, err)
		require.NotNil(t, attr)
	})

	t.Run("Failure - Missing email", func(t *testing.T) {
		c, rec := postJSON("/api/v1/auth/register", `{"name":"NoEmail"}`, nil)

		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - Duplicate email", func(t *testing.T) {
		c, rec := postJSON("/api/v1/auth/register",
			`{"name":"Ada Again","email":"ada@example.com"}`, nil)

		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Success - Stale referral code never fails the signup", func(t *testing.T) {
		c, rec := postJSON("/api/v1/auth/register",
			`{"name":"Margaret","email":"margaret@example.com","referral_code":"nosuchcode"}`, nil)

		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp models.RegisterResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, string(attribution.SkipNoReferral), resp.AttributionSkipped)
	})
}
