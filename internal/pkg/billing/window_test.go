package billing

import (
	"testing"
	"time"

	"github.com/betwise/picks-backend/app/models"
)

func TestSubscriptionWindow(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name      string
		confirmed time.Time
		duration  string
		wantEnd   time.Time
	}{
		{
			name:      "daily",
			confirmed: time.Date(2025, 3, 10, 9, 30, 0, 0, loc),
			duration:  models.PlanDurationDaily,
			wantEnd:   time.Date(2025, 3, 11, 9, 30, 0, 0, loc),
		},
		{
			name:      "monthly",
			confirmed: time.Date(2025, 3, 10, 9, 30, 0, 0, loc),
			duration:  models.PlanDurationMonthly,
			wantEnd:   time.Date(2025, 4, 10, 9, 30, 0, 0, loc),
		},
		{
			name:      "monthly clamps to end of february",
			confirmed: time.Date(2025, 1, 31, 23, 0, 0, 0, loc),
			duration:  models.PlanDurationMonthly,
			wantEnd:   time.Date(2025, 2, 28, 23, 0, 0, 0, loc),
		},
		{
			name:      "monthly clamps to leap february",
			confirmed: time.Date(2024, 1, 31, 23, 0, 0, 0, loc),
			duration:  models.PlanDurationMonthly,
			wantEnd:   time.Date(2024, 2, 29, 23, 0, 0, 0, loc),
		},
		{
			name:      "yearly",
			confirmed: time.Date(2025, 3, 10, 9, 30, 0, 0, loc),
			duration:  models.PlanDurationYearly,
			wantEnd:   time.Date(2026, 3, 10, 9, 30, 0, 0, loc),
		},
		{
			name:      "yearly clamps leap day",
			confirmed: time.Date(2024, 2, 29, 12, 0, 0, 0, loc),
			duration:  models.PlanDurationYearly,
			wantEnd:   time.Date(2025, 2, 28, 12, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		start, end, err := SubscriptionWindow(tt.confirmed, tt.duration)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if !start.Equal(tt.confirmed) {
			t.Fatalf("%s: start = %v, want %v", tt.name, start, tt.confirmed)
		}
		if !end.Equal(tt.wantEnd) {
			t.Fatalf("%s: end = %v, want %v", tt.name, end, tt.wantEnd)
		}
	}
}

func TestSubscriptionWindowRejectsUnknownDuration(t *testing.T) {
	_, _, err := SubscriptionWindow(time.Now(), "WEEKLY")
	if err == nil {
		t.Fatalf("expected error for unknown duration")
	}
}
