package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

var (
	ErrOverrideNotFound = errors.New("merchant override not found")
)

// merchantOverrideRepository implements MerchantOverrideRepositoryInterface
type merchantOverrideRepository struct {
	db *gorm.DB
}

// NewMerchantOverrideRepository creates a new merchant override repository
func NewMerchantOverrideRepository(db *gorm.DB) MerchantOverrideRepositoryInterface {
	return &merchantOverrideRepository{
		db: db,
	}
}

// Upsert pins a raw merchant name to a group, replacing any earlier pin
func (r *merchantOverrideRepository) Upsert(rawName, groupName string) error {
	var existing models.MerchantOverride
	err := r.db.Where("raw_name = ?", rawName).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			override := &models.MerchantOverride{RawName: rawName, GroupName: groupName}
			if createErr := r.db.Create(override).Error; createErr != nil {
				return fmt.Errorf("failed to create merchant override: %w", createErr)
			}
			return nil
		}
		return fmt.Errorf("failed to look up merchant override: %w", err)
	}

	existing.GroupName = groupName
	if err := r.db.Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update merchant override: %w", err)
	}
	return nil
}

// UpsertBatch pins a set of raw names in one transaction
func (r *merchantOverrideRepository) UpsertBatch(overrides []models.MerchantOverride) error {
	if len(overrides) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, override := range overrides {
			var existing models.MerchantOverride
			err := tx.Where("raw_name = ?", override.RawName).First(&existing).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					record := models.MerchantOverride{
						RawName:   override.RawName,
						GroupName: override.GroupName,
					}
					if createErr := tx.Create(&record).Error; createErr != nil {
						return fmt.Errorf("failed to create merchant override: %w", createErr)
					}
					continue
				}
				return fmt.Errorf("failed to look up merchant override: %w", err)
			}

			existing.GroupName = override.GroupName
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("failed to update merchant override: %w", err)
			}
		}
		return nil
	})
}

// GetByRawName retrieves the pin for one raw merchant name
func (r *merchantOverrideRepository) GetByRawName(rawName string) (*models.MerchantOverride, error) {
	var override models.MerchantOverride
	if err := r.db.Where("raw_name = ?", rawName).First(&override).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOverrideNotFound
		}
		return nil, fmt.Errorf("failed to get merchant override: %w", err)
	}
	return &override, nil
}

// GetAll retrieves every merchant override ordered by raw name
func (r *merchantOverrideRepository) GetAll() ([]models.MerchantOverride, error) {
	var overrides []models.MerchantOverride
	if err := r.db.Order("raw_name ASC").Find(&overrides).Error; err != nil {
		return nil, fmt.Errorf("failed to get merchant overrides: %w", err)
	}
	return overrides, nil
}

// Delete removes the pin for one raw merchant name
func (r *merchantOverrideRepository) Delete(rawName string) error {
	result := r.db.Where("raw_name = ?", rawName).Delete(&models.MerchantOverride{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete merchant override: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOverrideNotFound
	}
	return nil
}
