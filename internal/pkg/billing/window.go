package billing

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/internal/pkg/apperr"
)

// SubscriptionWindow computes the entitlement window for a plan duration,
// anchored at the confirmation time. Month and year additions clamp to the
// last valid day of the target month: confirming a monthly plan on Jan 31
// ends on Feb 28 (or 29), never on an overflow date in March.
func SubscriptionWindow(confirmedAt time.Time, duration string) (start, end time.Time, err error) {
	start = confirmedAt
	switch duration {
	case models.PlanDurationDaily:
		end = confirmedAt.AddDate(0, 0, 1)
	case models.PlanDurationMonthly:
		end = addMonthsClamped(confirmedAt, 1)
	case models.PlanDurationYearly:
		end = addMonthsClamped(confirmedAt, 12)
	default:
		err = apperr.New(fiber.StatusBadRequest, "Invalid duration")
	}
	return start, end, err
}

func addMonthsClamped(t time.Time, months int) time.Time {
	// Anchor on the first of the target month so time.Date never rolls over,
	// then clamp the day-of-month.
	anchor := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := daysInMonth(anchor.Year(), anchor.Month()); day > last {
		day = last
	}
	return time.Date(anchor.Year(), anchor.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
