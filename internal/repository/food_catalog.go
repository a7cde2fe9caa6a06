package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/moodmeal/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type foodCatalogRepository struct {
	db *gorm.DB
}

// NewFoodCatalogRepository creates a gorm-backed FoodCatalogRepository
func NewFoodCatalogRepository(db *gorm.DB) FoodCatalogRepository {
	return &foodCatalogRepository{db: db}
}

func (r *foodCatalogRepository) Search(ctx context.Context, query, category string, limit, offset int) ([]models.FoodCatalogItem, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.FoodCatalogItem{})
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count catalog items: %w", err)
	}

	var items []models.FoodCatalogItem
	if err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search catalog: %w", err)
	}
	return items, total, nil
}

func (r *foodCatalogRepository) GetByID(ctx context.Context, id uint) (*models.FoodCatalogItem, error) {
	var item models.FoodCatalogItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}
	return &item, nil
}

func (r *foodCatalogRepository) Upsert(ctx context.Context, item *models.FoodCatalogItem) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(item).Error
	if err != nil {
		return fmt.Errorf("failed to upsert catalog item: %w", err)
	}
	return nil
}
