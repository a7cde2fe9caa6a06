package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/moodmeal/backend/internal/models"
	"gorm.io/gorm"
)

type moodEntryRepository struct {
	db *gorm.DB
}

// NewMoodEntryRepository creates a gorm-backed MoodEntryRepository
func NewMoodEntryRepository(db *gorm.DB) MoodEntryRepository {
	return &moodEntryRepository{db: db}
}

func (r *moodEntryRepository) Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}
	return entry, nil
}

func (r *moodEntryRepository) GetByID(ctx context.Context, userID, id uint) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entry: %w", err)
	}
	return &entry, nil
}

func (r *moodEntryRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]models.MoodEntry, int64, error) {
	var entries []models.MoodEntry
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.MoodEntry{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count mood entries: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list mood entries: %w", err)
	}

	return entries, total, nil
}

func (r *moodEntryRepository) GetByUserIDAndDateRange(ctx context.Context, userID uint, startDate, endDate time.Time) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND started_at >= ? AND started_at <= ?", userID, startDate, endDate).
		Order("started_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}
	return entries, nil
}

func (r *moodEntryRepository) GetForExport(ctx context.Context, userID uint, startDate, endDate *time.Time) ([]models.MoodEntry, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if startDate != nil {
		q = q.Where("created_at >= ?", *startDate)
	}
	if endDate != nil {
		q = q.Where("created_at <= ?", *endDate)
	}

	var entries []models.MoodEntry
	if err := q.Order("started_at ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to query mood entries for export: %w", err)
	}
	return entries, nil
}

func (r *moodEntryRepository) Update(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to update mood entry: %w", err)
	}
	return entry, nil
}

func (r *moodEntryRepository) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.MoodEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete mood entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
