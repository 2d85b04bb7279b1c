package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/internal/pkg/apperr"
	"github.com/betwise/picks-backend/internal/pkg/entitlements"
	"github.com/betwise/picks-backend/internal/pkg/notify"
)

const subscriptionCurrency = "usd"
const checkoutProductName = "Subscription Fee"

// Service implements checkout initiation and webhook reconciliation over the
// payment ledger.
type Service struct {
	repo     Repository
	provider CheckoutProvider
	mailer   Mailer
	now      func() time.Time
}

// NewService creates a billing service from injected collaborators.
func NewService(repo Repository, provider CheckoutProvider, mailer Mailer) *Service {
	return &Service{repo: repo, provider: provider, mailer: mailer, now: time.Now}
}

// NewServiceFromDB creates a billing service from a GORM DB handle using the
// Stripe checkout provider configured from the environment.
func NewServiceFromDB(db *gorm.DB, mailer Mailer) *Service {
	return NewService(NewRepository(db), NewStripeProviderFromEnv(), mailer)
}

// InitiateCheckout opens a hosted checkout for a plan and returns the
// redirect URL. A placeholder UNPAID ledger entry is persisted before the
// provider call so a local record always precedes the external session; the
// placeholder is removed again when the provider rejects the session.
func (s *Service) InitiateCheckout(ctx context.Context, userID uint, planID uint) (string, error) {
	plan, err := s.repo.GetPlanByID(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFound("SubscriptionPlan not found")
		}
		return "", err
	}

	amountCents := AmountCents(plan.Price)
	planID = plan.ID

	payment := &models.Payment{
		UserID:             userID,
		SubscriptionPlanID: &planID,
		Amount:             AmountFromCents(amountCents),
		CheckoutSessionID:  "pending_" + uuid.NewString(),
		Status:             models.PaymentStatusUnpaid,
	}
	if err := s.repo.CreatePayment(payment); err != nil {
		return "", err
	}

	session, err := s.provider.CreateCheckoutSession(ctx, CheckoutSessionInput{
		AmountCents: amountCents,
		Currency:    subscriptionCurrency,
		ProductName: checkoutProductName,
	})
	if err != nil {
		// No external session exists, so the placeholder can go.
		if delErr := s.repo.DeletePayment(payment.ID); delErr != nil {
			log.Errorf("[Billing] failed to remove placeholder payment %d: %v", payment.ID, delErr)
		}
		return "", apperr.BadRequest(err.Error())
	}

	if err := s.repo.UpdatePaymentCheckoutSessionID(payment.ID, session.ID); err != nil {
		return "", err
	}

	return session.URL, nil
}

// ReconcileCheckoutCompleted transitions the matching ledger entry to paid,
// stamps the subscription window and propagates the entitlement to the user.
// It is idempotent by checkout session id: a duplicate delivery finds the
// entry already succeeded and changes nothing.
func (s *Service) ReconcileCheckoutCompleted(ctx context.Context, sessionID, paymentIntentID string) error {
	payment, err := s.repo.GetPaymentByCheckoutSessionID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Nothing the provider can do about a lookup miss; log and move on.
			log.Warnf("[Billing] no ledger entry for checkout session %s", sessionID)
			return nil
		}
		return err
	}

	if payment.IsSucceeded() {
		log.Infof("[Billing] checkout session %s already reconciled", sessionID)
		return nil
	}

	if payment.SubscriptionPlan == nil {
		return fmt.Errorf("payment %d has no plan; cannot compute subscription window", payment.ID)
	}

	now := s.now()
	start, end, err := SubscriptionWindow(now, payment.SubscriptionPlan.Duration)
	if err != nil {
		return err
	}

	payment.Status = models.PaymentStatusSucceeded
	payment.PaymentIntentID = paymentIntentID
	payment.SubscriptionStatus = models.SubscriptionStatusActive
	payment.SubscriptionStartDate = &start
	payment.SubscriptionEndDate = &end
	if err := s.repo.SavePayment(payment); err != nil {
		return err
	}

	ent := entitlements.FromWindow(payment.SubscriptionPlanID, start, end, now)
	if err := s.repo.UpdateUserEntitlement(payment.UserID, ent); err != nil {
		return err
	}

	// Best-effort side effects run after both state transitions. Their
	// failures are logged and never reach the provider.
	s.dispatchConfirmationEffects(payment, start, end)

	return nil
}

func (s *Service) dispatchConfirmationEffects(payment *models.Payment, start, end time.Time) {
	user := payment.User
	plan := payment.SubscriptionPlan

	if s.mailer != nil && user != nil && plan != nil {
		data := SubscriptionEmailData{
			Name:            user.Name,
			PlanName:        plan.SubscriptionType,
			Price:           payment.Amount,
			Currency:        subscriptionCurrency,
			StartDate:       start,
			EndDate:         end,
			PaymentIntentID: payment.PaymentIntentID,
		}
		to := user.Email
		notify.Go("subscription confirmation email", func() error {
			return s.mailer.SendSubscriptionConfirmed(to, data)
		})
	}

	userID := payment.UserID
	notify.Go("subscriber notification", func() error {
		return s.repo.CreateNotification(userID, "Subscription Success",
			"Your subscription has been successfully updated.")
	})
	notify.Go("operator broadcast notification", func() error {
		return s.repo.CreateNotification(notify.BroadcastUserID, "New Subscriber",
			"BetWise Picks got a new subscriber. Check it out!")
	})
}
