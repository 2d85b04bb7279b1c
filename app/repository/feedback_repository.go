package repository

import (
	"gorm.io/gorm"

	"github.com/betwise/picks-backend/app/models"
)

// feedbackRepository implements the FeedbackRepository interface
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository instance
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *feedbackRepository) List(offset, limit int) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := r.db.Preload("User").Order("created_at desc").Offset(offset).Limit(limit).Find(&feedback).Error
	return feedback, err
}

func (r *feedbackRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Feedback{}).Count(&count).Error
	return count, err
}
