package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/moodmeal/backend/internal/models"
	"github.com/moodmeal/backend/internal/repository"
)

type foodEntryService struct {
	foodRepo repository.FoodEntryRepository
}

// NewFoodEntryService creates a new food entry service
func NewFoodEntryService(foodRepo repository.FoodEntryRepository) FoodEntryService {
	return &foodEntryService{foodRepo: foodRepo}
}

func (s *foodEntryService) CreateEntry(ctx context.Context, userID uint, req *models.CreateFoodEntryRequest) (*models.FoodEntry, error) {
	entry := &models.FoodEntry{
		UserID:     userID,
		FoodName:   req.FoodName,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		ConsumedAt: req.ConsumedAt,
		Notes:      req.Notes,
	}
	if raw, err := encodeNutrition(req.NutritionalData); err == nil {
		entry.NutritionalData = raw
	}

	created, err := s.foodRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create food entry: %w", err)
	}
	return created, nil
}

func (s *foodEntryService) GetEntry(ctx context.Context, userID, entryID uint) (*models.FoodEntry, error) {
	entry, err := s.foodRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	return entry, nil
}

func (s *foodEntryService) ListEntries(ctx context.Context, userID uint, page, limit int) ([]models.FoodEntry, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	entries, total, err := s.foodRepo.GetByUserID(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return entries, models.NewPagination(page, limit, total), nil
}

func (s *foodEntryService) UpdateEntry(ctx context.Context, userID, entryID uint, req *models.CreateFoodEntryRequest) (*models.FoodEntry, error) {
	entry, err := s.foodRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}

	// Full replacement, matching the PUT contract.
	entry.FoodName = req.FoodName
	entry.Quantity = req.Quantity
	entry.Unit = req.Unit
	entry.ConsumedAt = req.ConsumedAt
	entry.Notes = req.Notes
	entry.NutritionalData = nil
	if raw, err := encodeNutrition(req.NutritionalData); err == nil {
		entry.NutritionalData = raw
	}

	updated, err := s.foodRepo.Update(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to update food entry: %w", err)
	}
	return updated, nil
}

func (s *foodEntryService) DeleteEntry(ctx context.Context, userID, entryID uint) error {
	entry, err := s.foodRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrNotFound
	}
	return s.foodRepo.Delete(ctx, userID, entryID)
}

func (s *foodEntryService) Summary(ctx context.Context, userID uint, period string, date time.Time) (*models.FoodSummaryResponse, error) {
	startDate, endDate, err := periodWindow(period, date)
	if err != nil {
		return nil, err
	}

	entries, err := s.foodRepo.GetByUserIDAndDateRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary := models.NutritionSummary{EntryCount: len(entries)}
	responses := make([]models.FoodEntryResponse, 0, len(entries))
	for i := range entries {
		resp := entries[i].ToResponse()
		responses = append(responses, resp)
		if n := resp.NutritionalData; n != nil {
			summary.TotalCalories += n.Calories
			summary.TotalProtein += n.Protein
			summary.TotalCarbs += n.Carbs
			summary.TotalFat += n.Fat
			summary.TotalFiber += n.Fiber
			summary.TotalSugar += n.Sugar
			summary.TotalSodium += n.Sodium
		}
	}

	return &models.FoodSummaryResponse{
		Period:    period,
		DateRange: models.SummaryRange{StartDate: startDate, EndDate: endDate},
		Summary:   summary,
		Entries:   responses,
	}, nil
}

// encodeNutrition serializes a request's nutritional payload for
// storage. A nil map means no payload was supplied.
func encodeNutrition(data map[string]float64) (*string, error) {
	if data == nil {
		return nil, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	s := string(raw)
	return &s, nil
}
