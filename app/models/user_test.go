package models

import (
	"testing"
	"time"

	"github.com/betwise/picks-backend/internal/pkg/entitlements"
)

func TestCreateUser(t *testing.T) {
	u, err := CreateUser("Dana Miller", "dana@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.Role != ROLE_USER || u.Status != STATUS_ACTIVE {
		t.Fatalf("unexpected defaults: role=%s status=%s", u.Role, u.Status)
	}
	if !u.CheckPassword("s3cret-pass") {
		t.Fatalf("password hash does not verify")
	}
	if u.CheckPassword("wrong") {
		t.Fatalf("wrong password must not verify")
	}
}

func TestCreateUserRejectsBadInput(t *testing.T) {
	if _, err := CreateUser("Dana", "not-an-email", "s3cret-pass"); err == nil {
		t.Fatalf("expected validation error for bad email")
	}
	if _, err := CreateUser("Da", "dana@example.com", "s3cret-pass"); err == nil {
		t.Fatalf("expected validation error for short name")
	}
}

func TestGenerateAPIKey(t *testing.T) {
	u := &User{}
	key, err := u.GenerateAPIKey()
	if err != nil {
		t.Fatalf("GenerateAPIKey: %v", err)
	}
	if len(key) != 48 {
		t.Fatalf("key length = %d, want 48 hex chars", len(key))
	}
	if u.APIKeyHash == "" || u.APIKeyHash == key {
		t.Fatalf("stored hash must be set and differ from the plaintext")
	}
	if HashAPIKey(key) != u.APIKeyHash {
		t.Fatalf("hash lookup of the plaintext must match the stored hash")
	}
}

func TestApplyEntitlement(t *testing.T) {
	planID := uint(3)
	start := time.Now()
	end := start.AddDate(0, 1, 0)

	u := &User{}
	u.ApplyEntitlement(entitlements.Entitlement{
		IsSubscribed:          true,
		SubscriptionPlanID:    &planID,
		SubscriptionStartDate: &start,
		SubscriptionEndDate:   &end,
	})
	if !u.IsSubscribed || u.SubscriptionPlanID == nil {
		t.Fatalf("active entitlement not applied: %+v", u)
	}

	u.ApplyEntitlement(entitlements.Cleared())
	if u.IsSubscribed || u.SubscriptionPlanID != nil || u.SubscriptionStartDate != nil || u.SubscriptionEndDate != nil {
		t.Fatalf("cleared entitlement must null every snapshot field: %+v", u)
	}
}

func TestIsStaff(t *testing.T) {
	if (&User{Role: ROLE_USER}).IsStaff() {
		t.Fatalf("plain user is not staff")
	}
	if !(&User{Role: ROLE_ADMIN}).IsStaff() || !(&User{Role: ROLE_SUPER_ADMIN}).IsStaff() {
		t.Fatalf("admin roles are staff")
	}
}
