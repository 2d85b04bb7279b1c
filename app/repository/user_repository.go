package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/internal/pkg/entitlements"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("SubscriptionPlan").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByAPIKeyHash retrieves a user by the hash of their API key
func (r *userRepository) GetByAPIKeyHash(hash string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("SubscriptionPlan").Where("api_key_hash = ?", hash).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update saves changes to an existing user
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// entitlementColumns maps a derived entitlement snapshot to its user table
// columns. Every entitlement write goes through this map, so the reconciler
// and the sweeper can never disagree on what a cleared or active snapshot
// looks like.
func entitlementColumns(e entitlements.Entitlement) map[string]interface{} {
	return map[string]interface{}{
		"is_subscribed":           e.IsSubscribed,
		"subscription_plan_id":    e.SubscriptionPlanID,
		"subscription_start_date": e.SubscriptionStartDate,
		"subscription_end_date":   e.SubscriptionEndDate,
	}
}

// UpdateEntitlement writes a derived entitlement snapshot onto a user row.
// This is the only write path for the subscription cache fields.
func (r *userRepository) UpdateEntitlement(userID uint, e entitlements.Entitlement) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(entitlementColumns(e)).Error
}

// ListExpiredSubscribers returns users still flagged subscribed whose window
// has already passed
func (r *userRepository) ListExpiredSubscribers(now time.Time) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("is_subscribed = ? AND subscription_end_date < ?", true, now).Find(&users).Error
	return users, err
}

// ClearExpiredEntitlements resets the entitlement cache for every user whose
// window has passed and returns the number of affected rows
func (r *userRepository) ClearExpiredEntitlements(now time.Time) (int64, error) {
	tx := r.db.Model(&models.User{}).
		Where("is_subscribed = ? AND subscription_end_date < ?", true, now).
		Updates(entitlementColumns(entitlements.Cleared()))
	return tx.RowsAffected, tx.Error
}

// Delete soft deletes a user by their ID
func (r *userRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

// ListByRoles returns a page of users holding one of the given roles
func (r *userRepository) ListByRoles(roles []string, offset, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role IN ?", roles).
		Order("created_at desc").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}

// CountByRoles returns the number of users holding one of the given roles
func (r *userRepository) CountByRoles(roles []string) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role IN ?", roles).Count(&count).Error
	return count, err
}

// Count returns the total number of users
func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// CountSubscribed returns the number of currently subscribed users
func (r *userRepository) CountSubscribed() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("is_subscribed = ?", true).Count(&count).Error
	return count, err
}
