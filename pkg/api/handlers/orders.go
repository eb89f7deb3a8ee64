package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	apierrors "github.com/homecheff/affiliates/pkg/api/errors"
	"github.com/homecheff/affiliates/pkg/ledger"
	"github.com/homecheff/affiliates/pkg/metrics"
	"github.com/homecheff/affiliates/pkg/models"
	"github.com/labstack/echo/v4"
)

// OrderHandler receives order lifecycle notifications from the checkout
// pipeline
type OrderHandler struct {
	ledger    *ledger.Service
	validator *validator.Validate
	metrics   *metrics.Metrics
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(ledgerService *ledger.Service, m *metrics.Metrics) *OrderHandler {
	return &OrderHandler{
		ledger:    ledgerService,
		validator: validator.New(),
		metrics:   m,
	}
}

// OrderPaid credits commission for a paid marketplace order
func (h *OrderHandler) OrderPaid(c echo.Context) error {
	var req models.OrderPaidRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	err := h.ledger.RecordOrderPaid(
		c.Request().Context(),
		req.OrderID,
		req.HomecheffFeeCents,
		req.BuyerID,
		req.SellerID,
		req.Metadata,
	)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.LedgerEntriesCreated.WithLabelValues("order_paid").Inc()
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// OrderReversed reverses commission after an order refund or chargeback
func (h *OrderHandler) OrderReversed(c echo.Context) error {
	var req models.OrderReversalRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	kind := ledger.KindRefund
	if req.Kind == string(ledger.KindChargeback) {
		kind = ledger.KindChargeback
	}

	err := h.ledger.Reverse(
		c.Request().Context(),
		req.EventID,
		req.OriginalEventID,
		req.AmountCents,
		kind,
	)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.ReversalsProcessed.WithLabelValues(req.Kind).Inc()
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
