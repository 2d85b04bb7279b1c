package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Feedback is a free-form user submission reviewed by operators.
type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Subject   string    `gorm:"type:varchar(255)" json:"subject" validate:"max=255"`
	Message   string    `gorm:"type:text;not null" json:"message" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *Feedback) Validate() error {
	v := validator.New()
	return v.Struct(f)
}
