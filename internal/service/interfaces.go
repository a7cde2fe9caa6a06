package service

import (
	"context"
	"time"

	"github.com/moodmeal/backend/internal/models"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, userID uint) (*models.User, error)
}

// FoodEntryService defines the interface for food entry business logic
type FoodEntryService interface {
	CreateEntry(ctx context.Context, userID uint, req *models.CreateFoodEntryRequest) (*models.FoodEntry, error)
	GetEntry(ctx context.Context, userID, entryID uint) (*models.FoodEntry, error)
	ListEntries(ctx context.Context, userID uint, page, limit int) ([]models.FoodEntry, models.Pagination, error)
	UpdateEntry(ctx context.Context, userID, entryID uint, req *models.CreateFoodEntryRequest) (*models.FoodEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID uint) error
	Summary(ctx context.Context, userID uint, period string, date time.Time) (*models.FoodSummaryResponse, error)
}

// MoodEntryService defines the interface for mood entry business logic
type MoodEntryService interface {
	CreateEntry(ctx context.Context, userID uint, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error)
	GetEntry(ctx context.Context, userID, entryID uint) (*models.MoodEntry, error)
	ListEntries(ctx context.Context, userID uint, page, limit int) ([]models.MoodEntry, models.Pagination, error)
	UpdateEntry(ctx context.Context, userID, entryID uint, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID uint) error
	Summary(ctx context.Context, userID uint, period string, date time.Time) (*models.MoodSummaryResponse, error)
}

// FoodCatalogService defines the interface for the food reference database
type FoodCatalogService interface {
	Search(ctx context.Context, query, category string, page, limit int) ([]models.FoodCatalogItem, models.Pagination, error)
	GetItem(ctx context.Context, id uint) (*models.FoodCatalogItem, error)
}

// AnalyticsService defines the interface for the analytics engine
type AnalyticsService interface {
	GetCorrelations(ctx context.Context, userID uint, days int) (*models.CorrelationsResponse, error)
	GetTrends(ctx context.Context, userID uint, period string, months int) (*models.TrendsResponse, error)
	GetInsights(ctx context.Context, userID uint, days int) (*models.InsightsResponse, error)
	ExportData(ctx context.Context, userID uint, startDate, endDate *time.Time) (*models.ExportPayload, error)
}
