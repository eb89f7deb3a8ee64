package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/homecheff/affiliates/ent/ledgerentry"
	"github.com/homecheff/affiliates/pkg/affiliate"
	apierrors "github.com/homecheff/affiliates/pkg/api/errors"
	"github.com/homecheff/affiliates/pkg/ledger"
	"github.com/labstack/echo/v4"
)

const defaultPageSize = 50

// AffiliateHandler exposes the read-only affiliate dashboard queries
type AffiliateHandler struct {
	affiliates *affiliate.Service
	ledger     *ledger.Service
}

// NewAffiliateHandler creates a new affiliate handler
func NewAffiliateHandler(affiliates *affiliate.Service, ledgerService *ledger.Service) *AffiliateHandler {
	return &AffiliateHandler{
		affiliates: affiliates,
		ledger:     ledgerService,
	}
}

// GetStats returns dashboard figures for an affiliate
func (h *AffiliateHandler) GetStats(c echo.Context) error {
	affiliateID, err := pathID(c, "id")
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	stats, err := h.affiliates.GetStats(c.Request().Context(), affiliateID)
	if err != nil {
		if errors.Is(err, affiliate.ErrAffiliateNotFound) {
			return apierrors.NotFoundError(c, "affiliate")
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// ListLedger returns an affiliate's ledger entries, optionally filtered by
// status with ?status=pending|available|reversed
func (h *AffiliateHandler) ListLedger(c echo.Context) error {
	affiliateID, err := pathID(c, "id")
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	var status *ledgerentry.Status
	if raw := c.QueryParam("status"); raw != "" {
		st := ledgerentry.Status(raw)
		if err := ledgerentry.StatusValidator(st); err != nil {
			return apierrors.ValidationError(c, err)
		}
		status = &st
	}

	limit := queryInt(c, "limit", defaultPageSize)
	offset := queryInt(c, "offset", 0)

	entries, err := h.ledger.ListEntries(c.Request().Context(), affiliateID, status, limit, offset)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, entries)
}

// pathID parses a numeric path parameter
func pathID(c echo.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
