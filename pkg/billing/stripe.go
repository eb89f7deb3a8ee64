package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/homecheff/affiliates/ent"
	entattribution "github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/promocode"
	"github.com/homecheff/affiliates/pkg/attribution"
	"github.com/homecheff/affiliates/pkg/ledger"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Service translates Stripe billing events into subscription records and
// ledger operations
type Service struct {
	db           *ent.Client
	ledger       *ledger.Service
	attributions *attribution.Store
	config       *StripeConfig
}

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey             string
	WebhookSecret         string
	AttributionWindowDays int
}

// NewService creates a new billing service
func NewService(db *ent.Client, ledgerService *ledger.Service, attributions *attribution.Store, config *StripeConfig) *Service {
	// Set Stripe API key
	stripe.Key = config.SecretKey

	return &Service{
		db:           db,
		ledger:       ledgerService,
		attributions: attributions,
		config:       config,
	}
}

// HandleWebhook processes Stripe webhook events
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	// Verify webhook signature
	event, err := webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	log.Printf("📨 Stripe webhook received: %s", event.Type)

	switch event.Type {
	case "customer.subscription.created":
		return s.handleSubscriptionCreated(ctx, event)
	case "customer.subscription.updated":
		return s.handleSubscriptionUpdated(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	case "invoice.paid":
		return s.handleInvoicePaid(ctx, event)
	case "charge.refunded":
		return s.handleChargeRefunded(ctx, event)
	case "charge.dispute.created":
		return s.handleDisputeCreated(ctx, event)
	default:
		log.Printf("⚠️  Unhandled webhook event type: %s", event.Type)
	}

	return nil
}

// handleSubscriptionCreated registers a business subscription and links it to
// the business's active signup attribution, when one exists. The commission
// window mirrors the attribution window.
func (s *Service) handleSubscriptionCreated(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	userIDStr, ok := sub.Metadata["user_id"]
	if !ok {
		log.Printf("⚠️  Subscription %s has no user_id metadata, skipping", sub.ID)
		return nil
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return fmt.Errorf("invalid user_id metadata on subscription %s: %w", sub.ID, err)
	}

	var feeCents int64
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		feeCents = sub.Items.Data[0].Price.UnitAmount
	}
	if feeCents <= 0 {
		log.Printf("⚠️  Subscription %s has no positive price, skipping", sub.ID)
		return nil
	}

	now := time.Now()
	endsAt := now.AddDate(0, 0, s.config.AttributionWindowDays)

	builder := s.db.BusinessSubscription.
		Create().
		SetStripeSubscriptionID(sub.ID).
		SetUserID(userID).
		SetFeeCents(feeCents).
		SetEndsAt(endsAt)

	attr, err := s.attributions.FindActiveAttribution(ctx, userID, entattribution.TypeBusinessSignup, now)
	if err != nil {
		return fmt.Errorf("failed to resolve business attribution: %w", err)
	}
	if attr != nil {
		builder.SetAttributionID(attr.ID).SetEndsAt(attr.EndsAt)
	}

	if code, ok := sub.Metadata["promo_code"]; ok && code != "" {
		promo, err := s.db.PromoCode.
			Query().
			Where(promocode.CodeEQ(code), promocode.Active(true)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to load promo code: %w", err)
		}
		if promo != nil {
			builder.SetPromoCodeID(promo.ID)
		}
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("ℹ️  Subscription %s already registered, skipping", sub.ID)
			return nil
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	log.Printf("✅ Business subscription registered: %s (user=%d, fee=%d, attributed=%t)", sub.ID, userID, feeCents, attr != nil)
	return nil
}

// handleSubscriptionUpdated mirrors billing status and period changes
func (s *Service) handleSubscriptionUpdated(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	entSub, err := s.db.BusinessSubscription.
		Query().
		Where(businesssubscription.StripeSubscriptionIDEQ(sub.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("⚠️  Subscription not found in DB: %s", sub.ID)
			return nil
		}
		return fmt.Errorf("failed to find subscription: %w", err)
	}

	status := businesssubscription.StatusActive
	switch sub.Status {
	case stripe.SubscriptionStatusActive:
		status = businesssubscription.StatusActive
	case stripe.SubscriptionStatusCanceled:
		status = businesssubscription.StatusCanceled
	case stripe.SubscriptionStatusPastDue:
		status = businesssubscription.StatusPastDue
	case stripe.SubscriptionStatusUnpaid:
		status = businesssubscription.StatusUnpaid
	}

	_, err = s.db.BusinessSubscription.UpdateOne(entSub).
		SetStatus(status).
		SetCurrentPeriodStart(time.Unix(sub.CurrentPeriodStart, 0)).
		SetCurrentPeriodEnd(time.Unix(sub.CurrentPeriodEnd, 0)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	return nil
}

// handleSubscriptionDeleted marks the subscription canceled
func (s *Service) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	n, err := s.db.BusinessSubscription.
		Update().
		Where(businesssubscription.StripeSubscriptionIDEQ(sub.ID)).
		SetStatus(businesssubscription.StatusCanceled).
		SetCanceledAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}
	if n == 0 {
		log.Printf("⚠️  Subscription not found in DB: %s", sub.ID)
	}

	return nil
}

// handleInvoicePaid credits commission for a paid invoice
func (s *Service) handleInvoicePaid(ctx context.Context, event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("failed to unmarshal invoice: %w", err)
	}

	if invoice.Subscription == nil {
		log.Printf("ℹ️  Invoice %s has no subscription, skipping", invoice.ID)
		return nil
	}

	log.Printf("💰 Invoice paid: %s, amount=%d", invoice.ID, invoice.AmountPaid)

	metadata := map[string]string{
		"stripe_event_id": event.ID,
		"currency":        string(invoice.Currency),
	}
	if invoice.Customer != nil {
		metadata["stripe_customer_id"] = invoice.Customer.ID
	}

	return s.ledger.RecordInvoicePaid(ctx, invoice.ID, invoice.Subscription.ID, invoice.AmountPaid, metadata)
}

// handleChargeRefunded reverses commission proportionally to the refund
func (s *Service) handleChargeRefunded(ctx context.Context, event stripe.Event) error {
	var charge stripe.Charge
	if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
		return fmt.Errorf("failed to unmarshal charge: %w", err)
	}

	if charge.Invoice == nil {
		log.Printf("ℹ️  Refunded charge %s has no invoice, skipping", charge.ID)
		return nil
	}

	log.Printf("↩️  Charge refunded: %s, invoice=%s, refunded=%d", charge.ID, charge.Invoice.ID, charge.AmountRefunded)

	return s.ledger.Reverse(ctx, event.ID, charge.Invoice.ID, charge.AmountRefunded, ledger.KindRefund)
}

// handleDisputeCreated reverses commission on a chargeback. The charge must
// be expanded with its invoice in the webhook configuration; without it
// there is nothing to tie the dispute back to.
func (s *Service) handleDisputeCreated(ctx context.Context, event stripe.Event) error {
	var dispute stripe.Dispute
	if err := json.Unmarshal(event.Data.Raw, &dispute); err != nil {
		return fmt.Errorf("failed to unmarshal dispute: %w", err)
	}

	if dispute.Charge == nil || dispute.Charge.Invoice == nil {
		log.Printf("⚠️  Dispute %s has no expanded invoice reference, skipping", dispute.ID)
		return nil
	}

	log.Printf("⚡ Chargeback: dispute=%s, invoice=%s, amount=%d", dispute.ID, dispute.Charge.Invoice.ID, dispute.Amount)

	return s.ledger.Reverse(ctx, event.ID, dispute.Charge.Invoice.ID, dispute.Amount, ledger.KindChargeback)
}
