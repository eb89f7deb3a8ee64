package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/homecheff/affiliates/ent"
	apierrors "github.com/homecheff/affiliates/pkg/api/errors"
	"github.com/homecheff/affiliates/pkg/attribution"
	"github.com/homecheff/affiliates/pkg/metrics"
	"github.com/homecheff/affiliates/pkg/models"
	"github.com/labstack/echo/v4"
)

// SignupHandler handles user registration, the call site of the cookie
// attribution bridge
type SignupHandler struct {
	db        *ent.Client
	bridge    *attribution.CookieBridge
	validator *validator.Validate
	metrics   *metrics.Metrics
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(db *ent.Client, bridge *attribution.CookieBridge, m *metrics.Metrics) *SignupHandler {
	return &SignupHandler{
		db:        db,
		bridge:    bridge,
		validator: validator.New(),
		metrics:   m,
	}
}

// Register creates a user and records their signup attribution. The
// attribution is a best-effort side effect: whatever happens to it, the
// signup itself succeeds.
func (h *SignupHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	u, err := h.db.User.
		Create().
		SetName(req.Name).
		SetEmail(req.Email).
		SetIsBusiness(req.IsBusiness).
		Save(c.Request().Context())
	if err != nil {
		if ent.IsConstraintError(err) {
			return apierrors.ConflictError(c, "A user with this email already exists")
		}
		return apierrors.InternalError(c, err)
	}

	skip := h.bridge.AttributeSignup(c.Request(), u.ID, req.ReferralCode, req.IsBusiness)
	if h.metrics != nil {
		outcome := string(skip)
		if skip == attribution.SkipNone {
			outcome = "recorded"
		}
		h.metrics.AttributionsRecorded.WithLabelValues(outcome).Inc()
	}

	return c.JSON(http.StatusCreated, models.RegisterResponse{
		UserID:             u.ID,
		AttributionSkipped: string(skip),
	})
}
