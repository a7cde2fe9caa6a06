package service

import (
	"context"
	"strings"

	"github.com/moodmeal/backend/internal/models"
	"github.com/moodmeal/backend/internal/repository"
)

const defaultCatalogSearchLimit = 20

type foodCatalogService struct {
	catalogRepo repository.FoodCatalogRepository
}

// NewFoodCatalogService creates a new food catalog service
func NewFoodCatalogService(catalogRepo repository.FoodCatalogRepository) FoodCatalogService {
	return &foodCatalogService{catalogRepo: catalogRepo}
}

func (s *foodCatalogService) Search(ctx context.Context, query, category string, page, limit int) ([]models.FoodCatalogItem, models.Pagination, error) {
	query = strings.TrimSpace(query)
	category = strings.TrimSpace(category)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultCatalogSearchLimit
	}

	items, total, err := s.catalogRepo.Search(ctx, query, category, limit, (page-1)*limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return items, models.NewPagination(page, limit, total), nil
}

func (s *foodCatalogService) GetItem(ctx context.Context, id uint) (*models.FoodCatalogItem, error) {
	item, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}
