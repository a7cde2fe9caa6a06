package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/moodmeal/backend/internal/models"
	"gorm.io/gorm"
)

type foodEntryRepository struct {
	db *gorm.DB
}

// NewFoodEntryRepository creates a gorm-backed FoodEntryRepository
func NewFoodEntryRepository(db *gorm.DB) FoodEntryRepository {
	return &foodEntryRepository{db: db}
}

func (r *foodEntryRepository) Create(ctx context.Context, entry *models.FoodEntry) (*models.FoodEntry, error) {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create food entry: %w", err)
	}
	return entry, nil
}

func (r *foodEntryRepository) GetByID(ctx context.Context, userID, id uint) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get food entry: %w", err)
	}
	return &entry, nil
}

func (r *foodEntryRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]models.FoodEntry, int64, error) {
	var entries []models.FoodEntry
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.FoodEntry{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count food entries: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("consumed_at DESC").
		Limit(limit).Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list food entries: %w", err)
	}

	return entries, total, nil
}

func (r *foodEntryRepository) GetByUserIDAndDateRange(ctx context.Context, userID uint, startDate, endDate time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND consumed_at >= ? AND consumed_at <= ?", userID, startDate, endDate).
		Order("consumed_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query food entries: %w", err)
	}
	return entries, nil
}

func (r *foodEntryRepository) GetForExport(ctx context.Context, userID uint, startDate, endDate *time.Time) ([]models.FoodEntry, error) {
	// Export filters on created_at, not consumed_at; results still come
	// back in consumption order.
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if startDate != nil {
		q = q.Where("created_at >= ?", *startDate)
	}
	if endDate != nil {
		q = q.Where("created_at <= ?", *endDate)
	}

	var entries []models.FoodEntry
	if err := q.Order("consumed_at ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to query food entries for export: %w", err)
	}
	return entries, nil
}

func (r *foodEntryRepository) Update(ctx context.Context, entry *models.FoodEntry) (*models.FoodEntry, error) {
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to update food entry: %w", err)
	}
	return entry, nil
}

func (r *foodEntryRepository) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.FoodEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete food entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
