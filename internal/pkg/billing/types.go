package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutSessionInput is the provider-agnostic shape passed to the external
// payment processor when opening a hosted checkout.
type CheckoutSessionInput struct {
	AmountCents int64
	Currency    string
	ProductName string
}

// CheckoutSession is the provider response the initiator cares about: the
// session id (our reconciliation key) and the hosted redirect URL. Success
// and cancel redirect targets are provider configuration, not per-call
// input.
type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutProvider abstracts the external payment processor. The outbound
// call must respect the context deadline; a hung provider surfaces as an
// error to the caller, never as a stuck request.
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (*CheckoutSession, error)
}

// Mailer covers the confirmation email sent after reconciliation.
type Mailer interface {
	SendSubscriptionConfirmed(to string, data SubscriptionEmailData) error
}

// SubscriptionEmailData carries the fields rendered into the confirmation
// email body.
type SubscriptionEmailData struct {
	Name            string
	PlanName        string
	Price           decimal.Decimal
	Currency        string
	StartDate       time.Time
	EndDate         time.Time
	PaymentIntentID string
}
