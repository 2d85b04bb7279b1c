package models

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/betwise/picks-backend/internal/pkg/entitlements"
)

const (
	PlanDurationDaily   = "DAILY"
	PlanDurationMonthly = "MONTHLY"
	PlanDurationYearly  = "YEARLY"
)

// SubscriptionPlan is a purchasable tier definition. Ledger entries snapshot
// the amount at checkout time, so editing a plan never changes what an
// existing subscriber was charged or how long their window runs.
type SubscriptionPlan struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	SubscriptionType string          `gorm:"type:varchar(50);not null;index" json:"subscription_type" validate:"required"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration         string          `gorm:"type:varchar(20);not null" json:"duration" validate:"required,oneof=DAILY MONTHLY YEARLY"`
	FeaturesJSON     string          `gorm:"column:features;type:text" json:"-"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *SubscriptionPlan) Validate() error {
	v := validator.New()
	if err := v.Struct(p); err != nil {
		return err
	}
	if _, ok := entitlements.ParseTier(p.SubscriptionType); !ok {
		return ErrInvalidTier
	}
	if !p.Price.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}

// Tier returns the plan's entitlement tier.
func (p *SubscriptionPlan) Tier() (entitlements.Tier, bool) {
	return entitlements.ParseTier(p.SubscriptionType)
}

// Features decodes the stored feature list, empty on malformed data.
func (p *SubscriptionPlan) Features() []string {
	if p.FeaturesJSON == "" {
		return nil
	}
	var features []string
	if err := json.Unmarshal([]byte(p.FeaturesJSON), &features); err != nil {
		return nil
	}
	return features
}

// SetFeatures encodes and stores the feature list.
func (p *SubscriptionPlan) SetFeatures(features []string) error {
	raw, err := json.Marshal(features)
	if err != nil {
		return err
	}
	p.FeaturesJSON = string(raw)
	return nil
}
