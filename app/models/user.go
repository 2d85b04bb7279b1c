package models

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/betwise/picks-backend/internal/pkg/entitlements"
)

const (
	ROLE_USER        = "USER"
	ROLE_ADMIN       = "ADMIN"
	ROLE_SUPER_ADMIN = "SUPER_ADMIN"

	STATUS_ACTIVE  = "active"
	STATUS_BLOCKED = "blocked"
)

type User struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(150)" json:"name" validate:"required,min=3,max=150"`
	Email      string `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,min=5,max=200"`
	Password   string `gorm:"type:text" json:"-" validate:"required,min=6"`
	Role       string `gorm:"type:varchar(50);default:'USER';index" json:"role" validate:"oneof=USER ADMIN SUPER_ADMIN"`
	Status     string `gorm:"type:varchar(50);default:'active'" json:"status" validate:"oneof=active blocked"`
	AvatarURL  string `gorm:"type:varchar(255);default:null" json:"avatar_url" validate:"max=255"`
	APIKeyHash string `gorm:"type:varchar(64);index" json:"-"`

	// Entitlement snapshot derived from the payment ledger. Only the webhook
	// reconciler and the expiry sweeper write these fields.
	IsSubscribed          bool              `gorm:"default:false;index" json:"is_subscribed"`
	SubscriptionPlanID    *uint             `gorm:"index" json:"subscription_plan_id,omitempty"`
	SubscriptionPlan      *SubscriptionPlan `gorm:"foreignKey:SubscriptionPlanID" json:"subscription_plan,omitempty"`
	SubscriptionStartDate *time.Time        `gorm:"type:timestamp;default:null" json:"subscription_start_date,omitempty"`
	SubscriptionEndDate   *time.Time        `gorm:"type:timestamp;default:null;index" json:"subscription_end_date,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

func CreateUser(name string, email string, password string) (*User, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:     name,
		Email:    email,
		Password: pw,
		Role:     ROLE_USER,
		Status:   STATUS_ACTIVE,
	}

	err = u.Validate()
	if err != nil {
		return nil, err
	}

	return u, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.Password)
}

// SetPassword hashes and sets a new password for the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hashedPassword
	return nil
}

// IsActive reports whether the user account may make requests
func (u *User) IsActive() bool {
	return u.Status == STATUS_ACTIVE
}

// IsStaff reports whether the user holds an admin or super-admin role
func (u *User) IsStaff() bool {
	return u.Role == ROLE_ADMIN || u.Role == ROLE_SUPER_ADMIN
}

// GenerateAPIKey creates a random API key, stores its hash on the user and
// returns the plaintext key. The plaintext is shown once and never persisted.
func (u *User) GenerateAPIKey() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	key := hex.EncodeToString(b)
	u.APIKeyHash = HashAPIKey(key)
	return key, nil
}

// HashAPIKey hashes a plaintext API key for storage and lookup.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// ApplyEntitlement copies a derived entitlement snapshot onto the user.
func (u *User) ApplyEntitlement(e entitlements.Entitlement) {
	u.IsSubscribed = e.IsSubscribed
	u.SubscriptionPlanID = e.SubscriptionPlanID
	u.SubscriptionStartDate = e.SubscriptionStartDate
	u.SubscriptionEndDate = e.SubscriptionEndDate
}
