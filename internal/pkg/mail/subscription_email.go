package mail

import (
	"fmt"
	"strings"

	"github.com/betwise/picks-backend/internal/pkg/billing"
)

// SMTPMailer satisfies the mailer interfaces of the billing service and the
// expiry sweeper with plain SMTP delivery.
type SMTPMailer struct{}

// SendSubscriptionConfirmed emails a payment confirmation with the plan and
// entitlement window.
func (SMTPMailer) SendSubscriptionConfirmed(to string, data billing.SubscriptionEmailData) error {
	var b strings.Builder
	b.WriteString("<h2>Subscription Confirmed</h2>")
	fmt.Fprintf(&b, "<p>Hi %s,</p>", data.Name)
	fmt.Fprintf(&b, "<p>Your <strong>%s</strong> subscription is now active.</p>", data.PlanName)
	b.WriteString("<ul>")
	fmt.Fprintf(&b, "<li>Amount: %s %s</li>", data.Price.StringFixed(2), strings.ToUpper(data.Currency))
	fmt.Fprintf(&b, "<li>Start: %s</li>", data.StartDate.Format("Jan 2, 2006"))
	fmt.Fprintf(&b, "<li>End: %s</li>", data.EndDate.Format("Jan 2, 2006"))
	fmt.Fprintf(&b, "<li>Payment reference: %s</li>", data.PaymentIntentID)
	b.WriteString("</ul>")
	b.WriteString("<p>Enjoy your picks!</p>")

	return SendMail(to, "Your BetWise Picks subscription is active", b.String())
}

// SendSubscriptionExpired emails a lapse notice after the sweep clears an
// entitlement.
func (SMTPMailer) SendSubscriptionExpired(to string) error {
	var b strings.Builder
	b.WriteString("<h2>Subscription Expired</h2>")
	b.WriteString("<p>Your BetWise Picks subscription has expired.</p>")
	b.WriteString("<p>Renew any time to keep receiving picks for your tier.</p>")

	return SendMail(to, "Your BetWise Picks subscription has expired", b.String())
}
