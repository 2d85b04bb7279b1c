package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/betwise/picks-backend/app/models"
)

// paymentRepository implements the PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Preload("SubscriptionPlan").Preload("User").First(&payment, id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByCheckoutSessionID resolves the ledger entry for a provider checkout
// session. This is the reconciliation lookup, so plan and user come preloaded.
func (r *paymentRepository) GetByCheckoutSessionID(sessionID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Preload("SubscriptionPlan").Preload("User").
		Where("checkout_session_id = ?", sessionID).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) Save(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

// UpdateCheckoutSessionID swaps the placeholder session ref for the real
// provider session id once the external session exists.
func (r *paymentRepository) UpdateCheckoutSessionID(id uint, sessionID string) error {
	return r.db.Model(&models.Payment{}).Where("id = ?", id).
		Update("checkout_session_id", sessionID).Error
}

func (r *paymentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Payment{}, id).Error
}

// DeleteUnpaidBefore purges abandoned checkouts older than the sweep boundary
func (r *paymentRepository) DeleteUnpaidBefore(cutoff time.Time) (int64, error) {
	tx := r.db.Where("status = ? AND created_at < ?", models.PaymentStatusUnpaid, cutoff).
		Delete(&models.Payment{})
	return tx.RowsAffected, tx.Error
}

// ExpireLapsed flips ACTIVE ledger entries whose window has passed to EXPIRED
func (r *paymentRepository) ExpireLapsed(now time.Time) (int64, error) {
	tx := r.db.Model(&models.Payment{}).
		Where("subscription_status = ? AND subscription_end_date < ?", models.SubscriptionStatusActive, now).
		Update("subscription_status", models.SubscriptionStatusExpired)
	return tx.RowsAffected, tx.Error
}

// TotalRevenue sums the charged amount over all confirmed payments
func (r *paymentRepository) TotalRevenue() (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.Model(&models.Payment{}).
		Where("status = ?", models.PaymentStatusSucceeded).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// MonthlyRevenue groups confirmed revenue by calendar month for one year
func (r *paymentRepository) MonthlyRevenue(year int) ([]models.MonthlyRevenue, error) {
	var rows []models.MonthlyRevenue
	err := r.db.Model(&models.Payment{}).
		Select("YEAR(created_at) AS year, MONTH(created_at) AS month, COALESCE(SUM(amount), 0) AS revenue, COUNT(*) AS count").
		Where("status = ? AND YEAR(created_at) = ?", models.PaymentStatusSucceeded, year).
		Group("YEAR(created_at), MONTH(created_at)").
		Order("year, month").
		Scan(&rows).Error
	return rows, err
}

// RecentSucceeded returns the latest confirmed payments for the dashboard
func (r *paymentRepository) RecentSucceeded(limit int) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Preload("SubscriptionPlan").Preload("User").
		Where("status = ?", models.PaymentStatusSucceeded).
		Order("created_at desc").Limit(limit).Find(&payments).Error
	return payments, err
}
