package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/betwise/picks-backend/internal/pkg/entitlements"
)

// Post is a sports prediction pick gated behind a subscription tier.
// TargetUser names the minimum tier whose ladder includes the pick.
type Post struct {
	ID                    uint    `gorm:"primaryKey" json:"id"`
	PostTitle             string  `gorm:"type:varchar(255);not null" json:"post_title" validate:"required,max=255"`
	SportType             string  `gorm:"type:varchar(100);not null" json:"sport_type" validate:"required,max=100"`
	PredictionType        string  `gorm:"type:varchar(100);not null" json:"prediction_type" validate:"required,max=100"`
	PredictionDescription string  `gorm:"type:text;not null" json:"prediction_description" validate:"required"`
	WinRate               float64 `gorm:"not null" json:"win_rate" validate:"gte=0,lte=100"`
	OddsRange             string  `gorm:"type:varchar(50);not null" json:"odds_range" validate:"required,max=50"`
	PostImage             string  `gorm:"type:varchar(255);not null" json:"post_image" validate:"required,max=255"`
	TargetUser            string  `gorm:"type:varchar(50);not null;index" json:"target_user" validate:"required"`

	// Exactly one of the two author references must be set.
	PostedByAdminID      *uint `gorm:"index" json:"posted_by_admin_id,omitempty"`
	PostedBySuperAdminID *uint `gorm:"index" json:"posted_by_super_admin_id,omitempty"`
	PostedByAdmin        *User `gorm:"foreignKey:PostedByAdminID" json:"posted_by_admin,omitempty"`
	PostedBySuperAdmin   *User `gorm:"foreignKey:PostedBySuperAdminID" json:"posted_by_super_admin,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Post) Validate() error {
	v := validator.New()
	if err := v.Struct(p); err != nil {
		return err
	}
	if _, ok := entitlements.ParseTier(p.TargetUser); !ok {
		return ErrInvalidTier
	}
	if (p.PostedByAdminID == nil) == (p.PostedBySuperAdminID == nil) {
		return ErrPostAuthor
	}
	return nil
}

// BeforeSave enforces the author mutual exclusion at the persistence boundary.
func (p *Post) BeforeSave(tx *gorm.DB) error {
	if (p.PostedByAdminID == nil) == (p.PostedBySuperAdminID == nil) {
		return ErrPostAuthor
	}
	return nil
}
