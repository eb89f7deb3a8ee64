package models

// ErrorResponse is the generic error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse is the generic success payload
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// RegisterRequest is the signup payload. The referral code is optional and
// falls back to the hc_ref cookie when absent.
type RegisterRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	IsBusiness   bool   `json:"is_business"`
	ReferralCode string `json:"referral_code"`
}

// RegisterResponse reports the created user and the attribution outcome
type RegisterResponse struct {
	UserID             int    `json:"user_id"`
	AttributionSkipped string `json:"attribution_skipped,omitempty"`
}

// OrderPaidRequest is the checkout collaborator's order-paid notification
type OrderPaidRequest struct {
	OrderID           string            `json:"order_id" validate:"required"`
	HomecheffFeeCents int64             `json:"homecheff_fee_cents" validate:"required,gt=0"`
	BuyerID           int               `json:"buyer_id" validate:"required"`
	SellerID          int               `json:"seller_id" validate:"required"`
	Metadata          map[string]string `json:"metadata"`
}

// OrderReversalRequest is the refund/chargeback collaborator's notification
// for marketplace orders
type OrderReversalRequest struct {
	EventID         string `json:"event_id" validate:"required"`
	OriginalEventID string `json:"original_event_id" validate:"required"`
	AmountCents     int64  `json:"amount_cents" validate:"required,gt=0"`
	Kind            string `json:"kind" validate:"required,oneof=refund chargeback"`
}
