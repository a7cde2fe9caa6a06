package service

import (
	"context"
	"fmt"
	"time"

	"github.com/moodmeal/backend/internal/models"
	"github.com/moodmeal/backend/internal/repository"
)

type moodEntryService struct {
	moodRepo repository.MoodEntryRepository
}

// NewMoodEntryService creates a new mood entry service
func NewMoodEntryService(moodRepo repository.MoodEntryRepository) MoodEntryService {
	return &moodEntryService{moodRepo: moodRepo}
}

func (s *moodEntryService) CreateEntry(ctx context.Context, userID uint, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error) {
	entry := &models.MoodEntry{
		UserID:          userID,
		MoodRating:      req.MoodRating,
		MoodType:        req.MoodType,
		Intensity:       req.Intensity,
		DurationMinutes: req.DurationMinutes,
		StartedAt:       req.StartedAt,
		EndedAt:         req.EndedAt,
		Notes:           req.Notes,
		Triggers:        req.Triggers,
	}

	created, err := s.moodRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}
	return created, nil
}

func (s *moodEntryService) GetEntry(ctx context.Context, userID, entryID uint) (*models.MoodEntry, error) {
	entry, err := s.moodRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	return entry, nil
}

func (s *moodEntryService) ListEntries(ctx context.Context, userID uint, page, limit int) ([]models.MoodEntry, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	entries, total, err := s.moodRepo.GetByUserID(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return entries, models.NewPagination(page, limit, total), nil
}

func (s *moodEntryService) UpdateEntry(ctx context.Context, userID, entryID uint, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error) {
	entry, err := s.moodRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}

	entry.MoodRating = req.MoodRating
	entry.MoodType = req.MoodType
	entry.Intensity = req.Intensity
	entry.DurationMinutes = req.DurationMinutes
	entry.StartedAt = req.StartedAt
	entry.EndedAt = req.EndedAt
	entry.Notes = req.Notes
	entry.Triggers = req.Triggers

	updated, err := s.moodRepo.Update(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to update mood entry: %w", err)
	}
	return updated, nil
}

func (s *moodEntryService) DeleteEntry(ctx context.Context, userID, entryID uint) error {
	entry, err := s.moodRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrNotFound
	}
	return s.moodRepo.Delete(ctx, userID, entryID)
}

func (s *moodEntryService) Summary(ctx context.Context, userID uint, period string, date time.Time) (*models.MoodSummaryResponse, error) {
	startDate, endDate, err := periodWindow(period, date)
	if err != nil {
		return nil, err
	}

	entries, err := s.moodRepo.GetByUserIDAndDateRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary := models.MoodSummary{
		EntryCount:           len(entries),
		MoodTypeDistribution: make(map[models.MoodType]int),
	}
	responses := make([]models.MoodEntryResponse, 0, len(entries))

	var ratingSum float64
	var intensitySum float64
	intensityCount := 0
	for i := range entries {
		e := &entries[i]
		responses = append(responses, e.ToResponse())
		ratingSum += float64(e.MoodRating)
		summary.MoodTypeDistribution[e.MoodType]++
		if e.Intensity != nil {
			intensitySum += *e.Intensity
			intensityCount++
		}
	}
	if len(entries) > 0 {
		summary.AverageRating = round2(ratingSum / float64(len(entries)))
	}
	if intensityCount > 0 {
		avg := round2(intensitySum / float64(intensityCount))
		summary.AverageIntensity = &avg
	}

	return &models.MoodSummaryResponse{
		Period:    period,
		DateRange: models.SummaryRange{StartDate: startDate, EndDate: endDate},
		Summary:   summary,
		Entries:   responses,
	}, nil
}
