package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/internal/pkg/entitlements"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByAPIKeyHash(hash string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	UpdateEntitlement(userID uint, e entitlements.Entitlement) error
	ListExpiredSubscribers(now time.Time) ([]models.User, error)
	ClearExpiredEntitlements(now time.Time) (int64, error)
	ListByRoles(roles []string, offset, limit int) ([]models.User, error)
	CountByRoles(roles []string) (int64, error)
	Count() (int64, error)
	CountSubscribed() (int64, error)
}

// PlanRepository defines the interface for subscription plan operations
type PlanRepository interface {
	Create(plan *models.SubscriptionPlan) error
	GetByID(id uint) (*models.SubscriptionPlan, error)
	Update(plan *models.SubscriptionPlan) error
	Delete(id uint) error
	List() ([]models.SubscriptionPlan, error)
}

// PaymentRepository defines the interface for payment ledger operations
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	GetByCheckoutSessionID(sessionID string) (*models.Payment, error)
	Save(payment *models.Payment) error
	UpdateCheckoutSessionID(id uint, sessionID string) error
	Delete(id uint) error
	DeleteUnpaidBefore(cutoff time.Time) (int64, error)
	ExpireLapsed(now time.Time) (int64, error)
	TotalRevenue() (decimal.Decimal, error)
	MonthlyRevenue(year int) ([]models.MonthlyRevenue, error)
	RecentSucceeded(limit int) ([]models.Payment, error)
}

// PostRepository defines the interface for post operations
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) error
}

// SettingRepository defines the interface for system settings
type SettingRepository interface {
	GetValue(key string, def string) string
	GetBool(key string, def bool) bool
	SetValue(key string, value string, valueType string) error
}

// FeedbackRepository defines the interface for user feedback
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	List(offset, limit int) ([]models.Feedback, error)
	Count() (int64, error)
}
