package models

import (
	"errors"
	"testing"
)

func validPost() *Post {
	adminID := uint(1)
	return &Post{
		PostTitle:             "Lakers vs Celtics",
		SportType:             "Basketball",
		PredictionType:        "Over/Under",
		PredictionDescription: "Expect a high scoring game.",
		WinRate:               72.5,
		OddsRange:             "1.8 - 2.1",
		PostImage:             "https://cdn.example.com/picks/lakers.png",
		TargetUser:            "SILVER",
		PostedByAdminID:       &adminID,
	}
}

func TestPostValidate(t *testing.T) {
	if err := validPost().Validate(); err != nil {
		t.Fatalf("valid post rejected: %v", err)
	}
}

func TestPostValidateRejectsUnknownTier(t *testing.T) {
	p := validPost()
	p.TargetUser = "PLATINUM"
	if err := p.Validate(); !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("got %v, want ErrInvalidTier", err)
	}
}

func TestPostAuthorMutualExclusion(t *testing.T) {
	adminID := uint(1)
	superID := uint(2)

	p := validPost()
	p.PostedByAdminID = nil
	if err := p.Validate(); !errors.Is(err, ErrPostAuthor) {
		t.Fatalf("no author: got %v, want ErrPostAuthor", err)
	}

	p = validPost()
	p.PostedByAdminID = &adminID
	p.PostedBySuperAdminID = &superID
	if err := p.Validate(); !errors.Is(err, ErrPostAuthor) {
		t.Fatalf("both authors: got %v, want ErrPostAuthor", err)
	}
	if err := p.BeforeSave(nil); !errors.Is(err, ErrPostAuthor) {
		t.Fatalf("BeforeSave must enforce the exclusion too, got %v", err)
	}

	p = validPost()
	p.PostedByAdminID = nil
	p.PostedBySuperAdminID = &superID
	if err := p.Validate(); err != nil {
		t.Fatalf("super admin author rejected: %v", err)
	}
}
