package handlers

import (
	"io"
	"net/http"

	apierrors "github.com/homecheff/affiliates/pkg/api/errors"
	"github.com/homecheff/affiliates/pkg/billing"
	"github.com/homecheff/affiliates/pkg/metrics"
	"github.com/homecheff/affiliates/pkg/models"
	"github.com/labstack/echo/v4"
)

// BillingHandler handles Stripe webhook ingestion
type BillingHandler struct {
	billingService *billing.Service
	metrics        *metrics.Metrics
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *billing.Service, m *metrics.Metrics) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		metrics:        m,
	}
}

// HandleWebhook handles Stripe webhook events
func (h *BillingHandler) HandleWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_body",
			Message: "Failed to read request body",
		})
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if signature == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "missing_signature",
		})
	}

	if err := h.billingService.HandleWebhook(c.Request().Context(), body, signature); err != nil {
		if h.metrics != nil {
			h.metrics.WebhookEvents.WithLabelValues("stripe", "error").Inc()
		}
		return apierrors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.WebhookEvents.WithLabelValues("stripe", "ok").Inc()
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Webhook processed successfully",
	})
}
