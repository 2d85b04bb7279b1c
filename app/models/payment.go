package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusUnpaid    = "unpaid"
	PaymentStatusSucceeded = "succeeded"

	SubscriptionStatusActive  = "ACTIVE"
	SubscriptionStatusExpired = "EXPIRED"
)

// Payment is one ledger entry per checkout attempt. The checkout session id
// is the idempotency key for webhook reconciliation. The subscription window
// is stamped at confirmation time, never at creation.
type Payment struct {
	ID                 uint              `gorm:"primaryKey" json:"id"`
	UserID             uint              `gorm:"not null;index" json:"user_id"`
	User               *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	SubscriptionPlanID *uint             `gorm:"index" json:"subscription_plan_id,omitempty"`
	SubscriptionPlan   *SubscriptionPlan `gorm:"foreignKey:SubscriptionPlanID" json:"subscription_plan,omitempty"`

	// Amount charged, snapshotted at checkout creation. Later plan price
	// edits must not alter it.
	Amount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`

	CheckoutSessionID string `gorm:"type:varchar(191);uniqueIndex;not null" json:"checkout_session_id"`
	PaymentIntentID   string `gorm:"type:varchar(191);default:null" json:"payment_intent_id"`

	Status                string     `gorm:"type:varchar(20);not null;default:'unpaid';index" json:"status"`
	SubscriptionStatus    string     `gorm:"type:varchar(20);default:null;index" json:"subscription_status"`
	SubscriptionStartDate *time.Time `gorm:"type:timestamp;default:null" json:"subscription_start_date,omitempty"`
	SubscriptionEndDate   *time.Time `gorm:"type:timestamp;default:null;index" json:"subscription_end_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsSucceeded reports whether this entry has already been reconciled. The
// webhook path checks this before transitioning so duplicate deliveries stay
// no-ops.
func (p *Payment) IsSucceeded() bool {
	return p.Status == PaymentStatusSucceeded
}
