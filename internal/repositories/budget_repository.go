package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates the category's budget record or updates its base amount
func (r *budgetRepository) Upsert(record *models.BudgetRecord) error {
	var existing models.BudgetRecord
	err := r.db.Where("category = ?", record.Category).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if createErr := r.db.Create(record).Error; createErr != nil {
				return fmt.Errorf("failed to create budget: %w", createErr)
			}
			return nil
		}
		return fmt.Errorf("failed to look up budget: %w", err)
	}

	existing.BaseAmount = record.BaseAmount
	if err := r.db.Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	*record = existing
	return nil
}

// GetByCategory retrieves the budget record for one category
func (r *budgetRepository) GetByCategory(category string) (*models.BudgetRecord, error) {
	var record models.BudgetRecord
	if err := r.db.Where("category = ?", category).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &record, nil
}

// GetAll retrieves every budget record ordered by category
func (r *budgetRepository) GetAll() ([]models.BudgetRecord, error) {
	var records []models.BudgetRecord
	if err := r.db.Order("category ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return records, nil
}

// Delete removes the budget record for one category
func (r *budgetRepository) Delete(category string) error {
	result := r.db.Where("category = ?", category).Delete(&models.BudgetRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
