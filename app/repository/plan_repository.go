package repository

import (
	"gorm.io/gorm"

	"github.com/betwise/picks-backend/app/models"
)

// planRepository implements the PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(plan *models.SubscriptionPlan) error {
	return r.db.Create(plan).Error
}

func (r *planRepository) GetByID(id uint) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := r.db.First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) Update(plan *models.SubscriptionPlan) error {
	return r.db.Save(plan).Error
}

// Delete removes a plan. Ledger entries keep their snapshot and a nullable
// plan reference, so historical payments survive plan deletion.
func (r *planRepository) Delete(id uint) error {
	return r.db.Delete(&models.SubscriptionPlan{}, id).Error
}

func (r *planRepository) List() ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	err := r.db.Order("price asc").Find(&plans).Error
	return plans, err
}
