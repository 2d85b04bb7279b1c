package entitlements

import (
	"strings"
	"time"
)

type Tier string

const (
	TierBronze Tier = "BRONZE"
	TierSilver Tier = "SILVER"
	TierGold   Tier = "GOLD"
)

// Ladder is the canonical tier ordering from lowest to highest entitlement
// breadth. Access rules derive from this list; adding a tier means inserting
// it here and nowhere else.
var Ladder = []Tier{TierBronze, TierSilver, TierGold}

// ParseTier normalizes a tier name against the ladder. The second return is
// false for names outside the ladder.
func ParseTier(s string) (Tier, bool) {
	t := Tier(strings.ToUpper(strings.TrimSpace(s)))
	for _, l := range Ladder {
		if t == l {
			return l, true
		}
	}
	return "", false
}

// Rank returns the ladder position of a tier, -1 for unknown tiers.
func Rank(t Tier) int {
	for i, l := range Ladder {
		if t == l {
			return i
		}
	}
	return -1
}

// AllowedTiers returns every tier a subscriber on the given tier may read:
// the ladder prefix up to and including their own tier. Higher-paying users
// see everything lower-paying users see plus their own exclusive content.
func AllowedTiers(t Tier) []Tier {
	r := Rank(t)
	if r < 0 {
		return nil
	}
	allowed := make([]Tier, r+1)
	copy(allowed, Ladder[:r+1])
	return allowed
}

// CanAccess reports whether a subscriber on userTier may read content marked
// contentTier. Unknown tiers on either side never grant access.
func CanAccess(userTier, contentTier Tier) bool {
	ur, cr := Rank(userTier), Rank(contentTier)
	if ur < 0 || cr < 0 {
		return false
	}
	return cr <= ur
}

// Entitlement is the derived subscription snapshot cached on a user record.
// The payment ledger stays authoritative; this struct only mirrors it.
type Entitlement struct {
	IsSubscribed          bool
	SubscriptionPlanID    *uint
	SubscriptionStartDate *time.Time
	SubscriptionEndDate   *time.Time
}

// FromWindow derives the entitlement for a confirmed ledger entry. Both the
// webhook reconciler and the expiry sweeper go through this function so the
// two writers can never disagree on what "subscribed" means.
func FromWindow(planID *uint, start, end time.Time, now time.Time) Entitlement {
	if planID == nil || !end.After(now) {
		return Cleared()
	}
	s, e := start, end
	return Entitlement{
		IsSubscribed:          true,
		SubscriptionPlanID:    planID,
		SubscriptionStartDate: &s,
		SubscriptionEndDate:   &e,
	}
}

// Cleared is the entitlement of a user with no active subscription.
func Cleared() Entitlement {
	return Entitlement{}
}
