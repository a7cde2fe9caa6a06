package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/moodmeal/backend/internal/models"
)

type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository creates a gorm-backed IdempotencyRepository
func NewIdempotencyRepository(db *gorm.DB) IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) Get(ctx context.Context, key, route string, userID uint) (*models.IdempotencyRecord, error) {
	var record models.IdempotencyRecord
	err := r.db.WithContext(ctx).
		Where("key = ? AND route = ? AND user_id = ?", key, route, userID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idempotency record: %w", err)
	}
	return &record, nil
}

func (r *idempotencyRepository) Store(ctx context.Context, key, route string, userID uint, responseBody []byte, statusCode int) error {
	record := models.IdempotencyRecord{
		Key:          key,
		Route:        route,
		UserID:       userID,
		ResponseBody: responseBody,
		StatusCode:   statusCode,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to store idempotency record: %w", err)
	}
	return nil
}
