package repository

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/internal/pkg/cache"
)

const settingCacheTTL = 30 * time.Second
const settingCachePrefix = "setting:"

// settingRepository implements the SettingRepository interface with a short
// redis cache in front of the settings table. The content-gating kill switch
// is read on every post listing, so the cache keeps that off the DB.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository instance
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// GetValue returns the stored value for key, or def when absent
func (r *settingRepository) GetValue(key string, def string) string {
	cached, err := cache.Get(settingCachePrefix + key)
	if err == nil {
		return cached
	}
	if !cache.IsNotFound(err) {
		log.Printf("setting cache read failed for %s: %v", key, err)
	}

	var setting models.Setting
	if err := r.db.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("setting lookup failed for %s: %v", key, err)
		}
		return def
	}

	_ = cache.Set(settingCachePrefix+key, setting.Value, settingCacheTTL)
	return setting.Value
}

// GetBool returns a boolean setting, or def when absent or malformed
func (r *settingRepository) GetBool(key string, def bool) bool {
	raw := r.GetValue(key, "")
	switch raw {
	case "true", "1":
		return true
	case "false", "0":
		return false
	default:
		return def
	}
}

// SetValue upserts a setting and invalidates its cache entry
func (r *settingRepository) SetValue(key string, value string, valueType string) error {
	var setting models.Setting
	err := r.db.Where("setting_key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.Setting{Key: key, Value: value, Type: valueType}
		err = r.db.Create(&setting).Error
	} else if err == nil {
		setting.Value = value
		setting.Type = valueType
		err = r.db.Save(&setting).Error
	}
	if err != nil {
		return err
	}
	return cache.Delete(settingCachePrefix + key)
}
