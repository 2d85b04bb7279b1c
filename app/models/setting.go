package models

import (
	"time"
)

// Setting is a persisted key/value system setting
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:255;not null;uniqueIndex" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	Type      string    `gorm:"size:50;not null" json:"type"` // string, boolean, integer, float
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Setting keys used by the content subsystem.
const (
	// SettingContentGatingEnabled toggles tier gating on the post listing.
	// When "false" every post is visible regardless of subscription state.
	SettingContentGatingEnabled = "content_gating_enabled"
)
