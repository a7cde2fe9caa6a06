package repository

import (
	"context"
	"time"

	"github.com/moodmeal/backend/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// FoodEntryRepository defines the interface for food entry data access.
// Date-range queries return entries ordered ascending by consumed_at,
// a contract the analytics engine depends on.
type FoodEntryRepository interface {
	Create(ctx context.Context, entry *models.FoodEntry) (*models.FoodEntry, error)
	GetByID(ctx context.Context, userID, id uint) (*models.FoodEntry, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]models.FoodEntry, int64, error)
	GetByUserIDAndDateRange(ctx context.Context, userID uint, startDate, endDate time.Time) ([]models.FoodEntry, error)
	GetForExport(ctx context.Context, userID uint, startDate, endDate *time.Time) ([]models.FoodEntry, error)
	Update(ctx context.Context, entry *models.FoodEntry) (*models.FoodEntry, error)
	Delete(ctx context.Context, userID, id uint) error
}

// MoodEntryRepository defines the interface for mood entry data access.
// Date-range queries return entries ordered ascending by started_at.
type MoodEntryRepository interface {
	Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	GetByID(ctx context.Context, userID, id uint) (*models.MoodEntry, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]models.MoodEntry, int64, error)
	GetByUserIDAndDateRange(ctx context.Context, userID uint, startDate, endDate time.Time) ([]models.MoodEntry, error)
	GetForExport(ctx context.Context, userID uint, startDate, endDate *time.Time) ([]models.MoodEntry, error)
	Update(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	Delete(ctx context.Context, userID, id uint) error
}

// IdempotencyRepository defines the interface for cached responses to
// idempotent mutating requests.
type IdempotencyRepository interface {
	Get(ctx context.Context, key, route string, userID uint) (*models.IdempotencyRecord, error)
	Store(ctx context.Context, key, route string, userID uint, responseBody []byte, statusCode int) error
}

// FoodCatalogRepository defines the interface for the read-heavy food
// reference database.
type FoodCatalogRepository interface {
	Search(ctx context.Context, query, category string, limit, offset int) ([]models.FoodCatalogItem, int64, error)
	GetByID(ctx context.Context, id uint) (*models.FoodCatalogItem, error)
	Upsert(ctx context.Context, item *models.FoodCatalogItem) error
}
