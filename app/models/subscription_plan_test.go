package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func validPlan() *SubscriptionPlan {
	return &SubscriptionPlan{
		SubscriptionType: "GOLD",
		Price:            decimal.RequireFromString("29.99"),
		Duration:         PlanDurationMonthly,
	}
}

func TestSubscriptionPlanValidate(t *testing.T) {
	if err := validPlan().Validate(); err != nil {
		t.Fatalf("valid plan rejected: %v", err)
	}
}

func TestSubscriptionPlanValidateRejectsUnknownTier(t *testing.T) {
	p := validPlan()
	p.SubscriptionType = "DIAMOND"
	if err := p.Validate(); !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("got %v, want ErrInvalidTier", err)
	}
}

func TestSubscriptionPlanValidateRejectsBadDuration(t *testing.T) {
	p := validPlan()
	p.Duration = "WEEKLY"
	if err := p.Validate(); err == nil {
		t.Fatalf("expected validation error for unknown duration")
	}
}

func TestSubscriptionPlanValidateRejectsNonPositivePrice(t *testing.T) {
	p := validPlan()
	p.Price = decimal.Zero
	if err := p.Validate(); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("got %v, want ErrInvalidPrice", err)
	}

	p.Price = decimal.RequireFromString("-5")
	if err := p.Validate(); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("got %v, want ErrInvalidPrice", err)
	}
}

func TestSubscriptionPlanFeaturesRoundTrip(t *testing.T) {
	p := validPlan()
	if err := p.SetFeatures([]string{"All picks", "Priority support"}); err != nil {
		t.Fatalf("SetFeatures: %v", err)
	}
	got := p.Features()
	if len(got) != 2 || got[0] != "All picks" {
		t.Fatalf("Features() = %v", got)
	}

	p.FeaturesJSON = "{not json"
	if p.Features() != nil {
		t.Fatalf("malformed features must decode to nil")
	}
}
