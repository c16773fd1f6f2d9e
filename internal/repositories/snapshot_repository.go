package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// snapshotRepository implements SnapshotRepositoryInterface
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *gorm.DB) SnapshotRepositoryInterface {
	return &snapshotRepository{
		db: db,
	}
}

// Create stores a new sheet snapshot
func (r *snapshotRepository) Create(snapshot *models.RowSnapshot) error {
	if err := r.db.Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	return nil
}

// GetLatestBySheet retrieves the most recent snapshot for a sheet
func (r *snapshotRepository) GetLatestBySheet(sheet string) (*models.RowSnapshot, error) {
	var snapshot models.RowSnapshot
	if err := r.db.Where("sheet = ?", sheet).
		Order("taken_at DESC").First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return &snapshot, nil
}

// ListBySheet retrieves snapshots for a sheet, newest first
func (r *snapshotRepository) ListBySheet(sheet string, limit int) ([]models.RowSnapshot, error) {
	var snapshots []models.RowSnapshot
	query := r.db.Where("sheet = ?", sheet).Order("taken_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}

// PruneBySheet deletes all but the keep newest snapshots for a sheet and
// returns the number of rows removed
func (r *snapshotRepository) PruneBySheet(sheet string, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	var keepIDs []string
	if err := r.db.Model(&models.RowSnapshot{}).
		Where("sheet = ?", sheet).
		Order("taken_at DESC").
		Limit(keep).
		Pluck("id", &keepIDs).Error; err != nil {
		return 0, fmt.Errorf("failed to select snapshots to keep: %w", err)
	}

	query := r.db.Where("sheet = ?", sheet)
	if len(keepIDs) > 0 {
		query = query.Where("id NOT IN ?", keepIDs)
	}

	result := query.Delete(&models.RowSnapshot{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteOlderThan removes every snapshot taken before the cutoff
func (r *snapshotRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("taken_at < ?", cutoff).Delete(&models.RowSnapshot{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old snapshots: %w", result.Error)
	}
	return result.RowsAffected, nil
}
