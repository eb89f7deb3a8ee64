package handlers

import (
	"errors"
	"log"
	"net/http"

	apierrors "github.com/homecheff/affiliates/pkg/api/errors"
	"github.com/homecheff/affiliates/pkg/attribution"
	"github.com/homecheff/affiliates/pkg/metrics"
	"github.com/homecheff/affiliates/pkg/referral"
	"github.com/labstack/echo/v4"
)

// ReferralHandler handles referral link visits
type ReferralHandler struct {
	referrals   *referral.Service
	bridge      *attribution.CookieBridge
	frontendURL string
	metrics     *metrics.Metrics
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(referrals *referral.Service, bridge *attribution.CookieBridge, frontendURL string, m *metrics.Metrics) *ReferralHandler {
	return &ReferralHandler{
		referrals:   referrals,
		bridge:      bridge,
		frontendURL: frontendURL,
		metrics:     m,
	}
}

// TrackVisit records a click on a referral link, drops the hc_ref cookie and
// redirects to the storefront. Unknown codes still redirect; the visitor
// should never see an error page because a link went stale.
func (h *ReferralHandler) TrackVisit(c echo.Context) error {
	code := c.Param("code")

	err := h.referrals.RecordClick(
		c.Request().Context(),
		code,
		c.RealIP(),
		c.Request().UserAgent(),
		c.Request().Referer(),
	)
	switch {
	case err == nil:
		h.bridge.SetReferralCookie(c.Response(), code)
		if h.metrics != nil {
			h.metrics.ReferralClicks.Inc()
		}
	case errors.Is(err, referral.ErrNotFound):
		// Stale or fabricated code; no cookie, plain redirect
	default:
		log.Printf("⚠️  Failed to record referral click: %v", err)
	}

	return c.Redirect(http.StatusFound, h.frontendURL)
}

// IssueLink creates a new trackable referral link for an affiliate
func (h *ReferralHandler) IssueLink(c echo.Context) error {
	affiliateID, err := pathID(c, "id")
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	link, err := h.referrals.IssueLink(c.Request().Context(), affiliateID)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"code": link.Code,
		"url":  h.frontendURL + "/r/" + link.Code,
	})
}
