package attribution

import (
	"net/http"
	"time"
)

// CookieName is the referral cookie set when a referral link is visited and
// read back once, at signup time.
const CookieName = "hc_ref"

// CookieBridge translates inbound cookie state into a referral code at
// signup and feeds it to the attribution store.
type CookieBridge struct {
	store   *Store
	ttlDays int
}

// NewCookieBridge creates a cookie bridge with the given cookie TTL.
func NewCookieBridge(store *Store, ttlDays int) *CookieBridge {
	return &CookieBridge{store: store, ttlDays: ttlDays}
}

// SetReferralCookie writes the referral cookie on a link visit.
func (b *CookieBridge) SetReferralCookie(w http.ResponseWriter, code string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    code,
		Path:     "/",
		Expires:  time.Now().AddDate(0, 0, b.ttlDays),
		MaxAge:   b.ttlDays * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadReferralCode extracts the referral code for a signup request. An
// explicit code (e.g. typed into the signup form) wins over the cookie.
func (b *CookieBridge) ReadReferralCode(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}

	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// AttributeSignup resolves the request's referral code and records the
// attribution. Best-effort: the returned Skip is informational only.
func (b *CookieBridge) AttributeSignup(r *http.Request, newUserID int, explicitCode string, isBusiness bool) Skip {
	code := b.ReadReferralCode(r, explicitCode)
	if code == "" {
		return SkipNoReferral
	}

	return b.store.RecordSignupAttribution(r.Context(), newUserID, code, isBusiness)
}
