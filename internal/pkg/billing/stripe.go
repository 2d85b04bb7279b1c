package billing

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"github.com/betwise/picks-backend/internal/pkg/env"
)

// StripeProvider creates hosted Stripe checkout sessions.
type StripeProvider struct {
	successURL string
	cancelURL  string
}

// NewStripeProviderFromEnv configures the Stripe client from the environment.
// The secret key is process-global in stripe-go, so this also sets it.
func NewStripeProviderFromEnv() *StripeProvider {
	stripe.Key = env.GetEnv("STRIPE_SECRET_KEY", "")
	base := fmt.Sprintf("http://%s:%s",
		env.GetEnv("APP_HOST", "localhost"),
		env.GetEnv("APP_PORT", "4000"),
	)
	return &StripeProvider{
		successURL: env.GetEnv("STRIPE_SUCCESS_URL", base+"/payment/success"),
		cancelURL:  env.GetEnv("STRIPE_CANCEL_URL", base+"/payment/cancel"),
	}
}

// CreateCheckoutSession opens a one-time card payment session for the rounded
// amount and returns its id and hosted URL.
func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(p.successURL),
		CancelURL:          stripe.String(p.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(in.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(in.ProductName),
					},
					UnitAmount: stripe.Int64(in.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return nil, err
	}
	return &CheckoutSession{ID: s.ID, URL: s.URL}, nil
}
