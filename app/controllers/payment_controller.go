package controllers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/internal/pkg/apperr"
	"github.com/betwise/picks-backend/internal/pkg/billing"
	"github.com/betwise/picks-backend/internal/pkg/database"
	"github.com/betwise/picks-backend/internal/pkg/env"
	"github.com/betwise/picks-backend/internal/pkg/listquery"
	"github.com/betwise/picks-backend/internal/pkg/mail"
	"github.com/betwise/picks-backend/internal/pkg/usercontext"
)

// checkoutTimeout bounds the outbound call to the payment provider.
const checkoutTimeout = 20 * time.Second

// HandlePostCheckout opens a hosted checkout for the authenticated user and
// returns the provider redirect URL.
func HandlePostCheckout(c *fiber.Ctx) error {
	var body struct {
		SubscriptionID uint `json:"subscriptionId"`
	}
	if err := c.BodyParser(&body); err != nil || body.SubscriptionID == 0 {
		return respondError(c, apperr.BadRequest("subscriptionId is required"))
	}

	svc := billing.NewServiceFromDB(database.GetDB(), mail.SMTPMailer{})
	ctx, cancel := context.WithTimeout(context.Background(), checkoutTimeout)
	defer cancel()

	url, err := svc.InitiateCheckout(ctx, usercontext.GetUserID(c), body.SubscriptionID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"url": url})
}

// HandleStripeWebhook consumes provider events. Signature failures return a
// client error with no state change; once the signature passes the endpoint
// always acknowledges so the provider never retry-storms a confirmed event.
func HandleStripeWebhook(c *fiber.Ctx) error {
	rawBody := append([]byte(nil), c.BodyRaw()...)
	sigHeader := c.Get("Stripe-Signature")
	secret := env.GetEnv("STRIPE_WEBHOOK_SECRET", "")

	event, err := webhook.ConstructEventWithOptions(rawBody, sigHeader, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_signature", "message": "Webhook signature verification failed"})
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			log.Errorf("[Webhook] malformed checkout.session.completed payload: %v", err)
			break
		}
		paymentIntentID := ""
		if session.PaymentIntent != nil {
			paymentIntentID = session.PaymentIntent.ID
		}

		svc := billing.NewServiceFromDB(database.GetDB(), mail.SMTPMailer{})
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := svc.ReconcileCheckoutCompleted(ctx, session.ID, paymentIntentID); err != nil {
			// Swallowed on purpose: the provider already has our ack for the
			// signature; reconciliation problems are ours to chase in logs.
			log.Errorf("[Webhook] reconciliation failed for session %s: %v", session.ID, err)
		}
	default:
		log.Infof("[Webhook] unhandled event type (%s)", event.Type)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"received": true})
}

// HandleGetAllPayments lists confirmed ledger entries for operators, with
// search over the provider identifiers.
func HandleGetAllPayments(c *fiber.Ctx) error {
	params := listquery.Parse(c, "user_id", "subscription_status")

	var payments []models.Payment
	base := database.GetDB().Model(&models.Payment{}).
		Preload("User").Preload("SubscriptionPlan").
		Where("status = ?", models.PaymentStatusSucceeded)

	meta, err := listquery.New(base, params).
		Search("checkout_session_id", "payment_intent_id").
		Filter().
		Sort().
		Fields().
		Paginate().
		Find(&payments)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"meta": meta, "result": payments})
}
