package repository

import (
	"testing"
	"time"

	"github.com/betwise/picks-backend/internal/pkg/entitlements"
)

func TestEntitlementColumnsCleared(t *testing.T) {
	cols := entitlementColumns(entitlements.Cleared())

	if got := cols["is_subscribed"]; got != false {
		t.Fatalf("is_subscribed = %v, want false", got)
	}
	for _, col := range []string{"subscription_plan_id", "subscription_start_date", "subscription_end_date"} {
		v, ok := cols[col]
		if !ok {
			t.Fatalf("column %s missing from cleared update", col)
		}
		switch p := v.(type) {
		case *uint:
			if p != nil {
				t.Fatalf("column %s = %v, want nil", col, p)
			}
		case *time.Time:
			if p != nil {
				t.Fatalf("column %s = %v, want nil", col, p)
			}
		default:
			t.Fatalf("column %s has unexpected type %T", col, v)
		}
	}
}

func TestEntitlementColumnsActive(t *testing.T) {
	planID := uint(3)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	cols := entitlementColumns(entitlements.FromWindow(&planID, start, end, start))

	if got := cols["is_subscribed"]; got != true {
		t.Fatalf("is_subscribed = %v, want true", got)
	}
	if p := cols["subscription_plan_id"].(*uint); p == nil || *p != planID {
		t.Fatalf("subscription_plan_id = %v, want %d", p, planID)
	}
	if p := cols["subscription_end_date"].(*time.Time); p == nil || !p.Equal(end) {
		t.Fatalf("subscription_end_date = %v, want %v", p, end)
	}
}
