package sweeper

import (
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/app/repository"
	"github.com/betwise/picks-backend/internal/pkg/notify"
)

// unpaidBoundary is how long an UNPAID ledger entry may linger before the
// sweep treats it as an abandoned checkout.
const unpaidBoundary = 24 * time.Hour

// sweepSchedule fires once a day at midnight. Fixed at process start.
const sweepSchedule = "0 0 * * *"

// Repository provides the DB operations used by the sweep passes.
type Repository interface {
	DeleteUnpaidBefore(cutoff time.Time) (int64, error)
	ExpireLapsedPayments(now time.Time) (int64, error)
	ListExpiredSubscribers(now time.Time) ([]models.User, error)
	ClearExpiredEntitlements(now time.Time) (int64, error)
}

// Mailer covers the lapse notice sent after an entitlement is cleared.
type Mailer interface {
	SendSubscriptionExpired(to string) error
}

// Sweeper runs the daily maintenance over the payment ledger and the user
// entitlement cache.
type Sweeper struct {
	repo   Repository
	mailer Mailer
	now    func() time.Time
}

// New creates a sweeper from injected collaborators.
func New(repo Repository, mailer Mailer) *Sweeper {
	return &Sweeper{repo: repo, mailer: mailer, now: time.Now}
}

// NewFromDB creates a sweeper backed by GORM repositories.
func NewFromDB(db *gorm.DB, mailer Mailer) *Sweeper {
	return New(NewRepository(db), mailer)
}

// Run executes the three sweep passes. The passes touch disjoint record sets
// and carry no ordering dependency, so a failure in one never blocks the
// others; every error ends at the log.
func (s *Sweeper) Run() {
	now := s.now()

	if err := s.deleteAbandonedCheckouts(now); err != nil {
		log.Errorf("[Sweeper] abandoned checkout pass failed: %v", err)
	}
	if err := s.expireLapsedPayments(now); err != nil {
		log.Errorf("[Sweeper] ledger expiry pass failed: %v", err)
	}
	if err := s.clearLapsedEntitlements(now); err != nil {
		log.Errorf("[Sweeper] entitlement pass failed: %v", err)
	}
}

// Schedule registers the daily run on a new cron scheduler and starts it.
func (s *Sweeper) Schedule() (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(sweepSchedule, s.Run); err != nil {
		return nil, err
	}
	c.Start()
	log.Infof("[Sweeper] scheduled daily sweep (%s)", sweepSchedule)
	return c, nil
}

func (s *Sweeper) deleteAbandonedCheckouts(now time.Time) error {
	deleted, err := s.repo.DeleteUnpaidBefore(now.Add(-unpaidBoundary))
	if err != nil {
		return err
	}
	if deleted > 0 {
		log.Infof("[Sweeper] deleted %d unpaid payments", deleted)
	}
	return nil
}

func (s *Sweeper) expireLapsedPayments(now time.Time) error {
	expired, err := s.repo.ExpireLapsedPayments(now)
	if err != nil {
		return err
	}
	if expired > 0 {
		log.Infof("[Sweeper] marked %d subscriptions expired", expired)
	}
	return nil
}

func (s *Sweeper) clearLapsedEntitlements(now time.Time) error {
	// Collect addresses first; the clear below drops the query predicate.
	users, err := s.repo.ListExpiredSubscribers(now)
	if err != nil {
		return err
	}

	cleared, err := s.repo.ClearExpiredEntitlements(now)
	if err != nil {
		return err
	}
	if cleared > 0 {
		log.Infof("[Sweeper] cleared entitlement for %d users", cleared)
	}

	// Lapse notices go out only after the state change has landed.
	for _, user := range users {
		to := user.Email
		notify.Go("subscription expired email", func() error {
			return s.mailer.SendSubscriptionExpired(to)
		})
	}
	return nil
}

// gormRepository adapts the app repositories to the sweep passes.
type gormRepository struct {
	payments repository.PaymentRepository
	users    repository.UserRepository
}

// NewRepository creates a sweeper repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{
		payments: repository.NewPaymentRepository(db),
		users:    repository.NewUserRepository(db),
	}
}

func (r *gormRepository) DeleteUnpaidBefore(cutoff time.Time) (int64, error) {
	return r.payments.DeleteUnpaidBefore(cutoff)
}

func (r *gormRepository) ExpireLapsedPayments(now time.Time) (int64, error) {
	return r.payments.ExpireLapsed(now)
}

func (r *gormRepository) ListExpiredSubscribers(now time.Time) ([]models.User, error) {
	return r.users.ListExpiredSubscribers(now)
}

func (r *gormRepository) ClearExpiredEntitlements(now time.Time) (int64, error) {
	return r.users.ClearExpiredEntitlements(now)
}
