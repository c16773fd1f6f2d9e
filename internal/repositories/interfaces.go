package repositories

import (
	"time"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

// SnapshotRepositoryInterface defines the contract for sheet snapshot persistence
type SnapshotRepositoryInterface interface {
	Create(snapshot *models.RowSnapshot) error
	GetLatestBySheet(sheet string) (*models.RowSnapshot, error)
	ListBySheet(sheet string, limit int) ([]models.RowSnapshot, error)
	PruneBySheet(sheet string, keep int) (int64, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

// BudgetRepositoryInterface defines the contract for budget persistence
type BudgetRepositoryInterface interface {
	Upsert(record *models.BudgetRecord) error
	GetByCategory(category string) (*models.BudgetRecord, error)
	GetAll() ([]models.BudgetRecord, error)
	Delete(category string) error
}

// MerchantOverrideRepositoryInterface defines the contract for merchant override persistence
type MerchantOverrideRepositoryInterface interface {
	Upsert(rawName, groupName string) error
	UpsertBatch(overrides []models.MerchantOverride) error
	GetByRawName(rawName string) (*models.MerchantOverride, error)
	GetAll() ([]models.MerchantOverride, error)
	Delete(rawName string) error
}

// SettingRepositoryInterface defines the contract for application settings
type SettingRepositoryInterface interface {
	Get(key string) (*models.Setting, error)
	Set(setting *models.Setting) error
	Delete(key string) error
	GetAll() ([]models.Setting, error)
}
