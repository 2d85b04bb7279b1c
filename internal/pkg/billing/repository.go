package billing

import (
	"gorm.io/gorm"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/app/repository"
	"github.com/betwise/picks-backend/internal/pkg/entitlements"
)

// Repository provides the DB operations used by the billing service.
type Repository interface {
	GetPlanByID(id uint) (*models.SubscriptionPlan, error)
	CreatePayment(payment *models.Payment) error
	UpdatePaymentCheckoutSessionID(id uint, sessionID string) error
	DeletePayment(id uint) error
	GetPaymentByCheckoutSessionID(sessionID string) (*models.Payment, error)
	SavePayment(payment *models.Payment) error
	UpdateUserEntitlement(userID uint, e entitlements.Entitlement) error
	CreateNotification(userID uint, title, content string) error
}

type gormRepository struct {
	db       *gorm.DB
	plans    repository.PlanRepository
	payments repository.PaymentRepository
	users    repository.UserRepository
}

// NewRepository creates a billing repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{
		db:       db,
		plans:    repository.NewPlanRepository(db),
		payments: repository.NewPaymentRepository(db),
		users:    repository.NewUserRepository(db),
	}
}

func (r *gormRepository) GetPlanByID(id uint) (*models.SubscriptionPlan, error) {
	return r.plans.GetByID(id)
}

func (r *gormRepository) CreatePayment(payment *models.Payment) error {
	return r.payments.Create(payment)
}

func (r *gormRepository) UpdatePaymentCheckoutSessionID(id uint, sessionID string) error {
	return r.payments.UpdateCheckoutSessionID(id, sessionID)
}

func (r *gormRepository) DeletePayment(id uint) error {
	return r.payments.Delete(id)
}

func (r *gormRepository) GetPaymentByCheckoutSessionID(sessionID string) (*models.Payment, error) {
	return r.payments.GetByCheckoutSessionID(sessionID)
}

func (r *gormRepository) SavePayment(payment *models.Payment) error {
	return r.payments.Save(payment)
}

func (r *gormRepository) UpdateUserEntitlement(userID uint, e entitlements.Entitlement) error {
	return r.users.UpdateEntitlement(userID, e)
}

func (r *gormRepository) CreateNotification(userID uint, title, content string) error {
	return models.CreateNotification(r.db, userID, title, content)
}
