package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

var (
	ErrSettingNotFound = errors.New("setting not found")
)

// settingRepository implements SettingRepositoryInterface
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) SettingRepositoryInterface {
	return &settingRepository{
		db: db,
	}
}

// Get retrieves one setting by key
func (r *settingRepository) Get(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return &setting, nil
}

// Set writes a setting, replacing any existing value under the same key
func (r *settingRepository) Set(setting *models.Setting) error {
	var existing models.Setting
	err := r.db.Where("key = ?", setting.Key).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if createErr := r.db.Create(setting).Error; createErr != nil {
				return fmt.Errorf("failed to create setting: %w", createErr)
			}
			return nil
		}
		return fmt.Errorf("failed to look up setting: %w", err)
	}

	existing.Value = setting.Value
	existing.Sealed = setting.Sealed
	if err := r.db.Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update setting: %w", err)
	}
	*setting = existing
	return nil
}

// Delete removes one setting by key
func (r *settingRepository) Delete(key string) error {
	result := r.db.Where("key = ?", key).Delete(&models.Setting{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete setting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}
	return nil
}

// GetAll retrieves every setting ordered by key
func (r *settingRepository) GetAll() ([]models.Setting, error) {
	var settings []models.Setting
	if err := r.db.Order("key ASC").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}
