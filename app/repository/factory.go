package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Repositories bundles all repository implementations
type Repositories struct {
	User     UserRepository
	Plan     PlanRepository
	Payment  PaymentRepository
	Post     PostRepository
	Setting  SettingRepository
	Feedback FeedbackRepository
}

// NewRepositories creates all repositories backed by the given DB handle
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Plan:     NewPlanRepository(db),
		Payment:  NewPaymentRepository(db),
		Post:     NewPostRepository(db),
		Setting:  NewSettingRepository(db),
		Feedback: NewFeedbackRepository(db),
	}
}

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetPlanRepository returns the plan repository instance
func (f *Factory) GetPlanRepository() PlanRepository {
	return f.GetRepositories().Plan
}

// GetPaymentRepository returns the payment repository instance
func (f *Factory) GetPaymentRepository() PaymentRepository {
	return f.GetRepositories().Payment
}

// GetPostRepository returns the post repository instance
func (f *Factory) GetPostRepository() PostRepository {
	return f.GetRepositories().Post
}

// GetSettingRepository returns the setting repository instance
func (f *Factory) GetSettingRepository() SettingRepository {
	return f.GetRepositories().Setting
}

// GetFeedbackRepository returns the feedback repository instance
func (f *Factory) GetFeedbackRepository() FeedbackRepository {
	return f.GetRepositories().Feedback
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}

// SetGlobalRepositories installs a prebuilt repository set, bypassing the
// factory. Handler tests use this to stub storage.
func SetGlobalRepositories(repos *Repositories) {
	f := &Factory{repos: repos}
	f.once.Do(func() {})
	globalFactory = f
}
