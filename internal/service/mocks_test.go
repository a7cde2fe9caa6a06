package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/moodmeal/backend/internal/models"
)

// mockFoodEntryRepository is a mock implementation of FoodEntryRepository for testing
type mockFoodEntryRepository struct {
	entries     []models.FoodEntry
	nextID      uint
	createCalls int
	deleteCalls int
}

func newMockFoodEntryRepository() *mockFoodEntryRepository {
	return &mockFoodEntryRepository{nextID: 1}
}

func (m *mockFoodEntryRepository) Create(ctx context.Context, entry *models.FoodEntry) (*models.FoodEntry, error) {
	m.createCalls++
	entry.ID = m.nextID
	m.nextID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	m.entries = append(m.entries, *entry)
	return entry, nil
}

func (m *mockFoodEntryRepository) GetByID(ctx context.Context, userID, id uint) (*models.FoodEntry, error) {
	for i := range m.entries {
		if m.entries[i].ID == id && m.entries[i].UserID == userID {
			e := m.entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (m *mockFoodEntryRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]models.FoodEntry, int64, error) {
	var owned []models.FoodEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			owned = append(owned, e)
		}
	}
	total := int64(len(owned))
	if offset >= len(owned) {
		return nil, total, nil
	}
	owned = owned[offset:]
	if limit > 0 && len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, total, nil
}

func (m *mockFoodEntryRepository) GetByUserIDAndDateRange(ctx context.Context, userID uint, startDate, endDate time.Time) ([]models.FoodEntry, error) {
	var result []models.FoodEntry
	for _, e := range m.entries {
		if e.UserID == userID && !e.ConsumedAt.Before(startDate) && !e.ConsumedAt.After(endDate) {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ConsumedAt.Before(result[j].ConsumedAt)
	})
	return result, nil
}

func (m *mockFoodEntryRepository) GetForExport(ctx context.Context, userID uint, startDate, endDate *time.Time) ([]models.FoodEntry, error) {
	var result []models.FoodEntry
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		if startDate != nil && e.CreatedAt.Before(*startDate) {
			continue
		}
		if endDate != nil && e.CreatedAt.After(*endDate) {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (m *mockFoodEntryRepository) Update(ctx context.Context, entry *models.FoodEntry) (*models.FoodEntry, error) {
	for i := range m.entries {
		if m.entries[i].ID == entry.ID && m.entries[i].UserID == entry.UserID {
			m.entries[i] = *entry
			e := m.entries[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFoodEntryRepository) Delete(ctx context.Context, userID, id uint) error {
	m.deleteCalls++
	for i := range m.entries {
		if m.entries[i].ID == id && m.entries[i].UserID == userID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// mockMoodEntryRepository is a mock implementation of MoodEntryRepository for testing
type mockMoodEntryRepository struct {
	entries     []models.MoodEntry
	nextID      uint
	createCalls int
	deleteCalls int
}

func newMockMoodEntryRepository() *mockMoodEntryRepository {
	return &mockMoodEntryRepository{nextID: 1}
}

func (m *mockMoodEntryRepository) Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	m.createCalls++
	entry.ID = m.nextID
	m.nextID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	m.entries = append(m.entries, *entry)
	return entry, nil
}

func (m *mockMoodEntryRepository) GetByID(ctx context.Context, userID, id uint) (*models.MoodEntry, error) {
	for i := range m.entries {
		if m.entries[i].ID == id && m.entries[i].UserID == userID {
			e := m.entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (m *mockMoodEntryRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]models.MoodEntry, int64, error) {
	var owned []models.MoodEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			owned = append(owned, e)
		}
	}
	total := int64(len(owned))
	if offset >= len(owned) {
		return nil, total, nil
	}
	owned = owned[offset:]
	if limit > 0 && len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, total, nil
}

func (m *mockMoodEntryRepository) GetByUserIDAndDateRange(ctx context.Context, userID uint, startDate, endDate time.Time) ([]models.MoodEntry, error) {
	var result []models.MoodEntry
	for _, e := range m.entries {
		if e.UserID == userID && !e.StartedAt.Before(startDate) && !e.StartedAt.After(endDate) {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartedAt.Before(result[j].StartedAt)
	})
	return result, nil
}

func (m *mockMoodEntryRepository) GetForExport(ctx context.Context, userID uint, startDate, endDate *time.Time) ([]models.MoodEntry, error) {
	var result []models.MoodEntry
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		if startDate != nil && e.CreatedAt.Before(*startDate) {
			continue
		}
		if endDate != nil && e.CreatedAt.After(*endDate) {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (m *mockMoodEntryRepository) Update(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	for i := range m.entries {
		if m.entries[i].ID == entry.ID && m.entries[i].UserID == entry.UserID {
			m.entries[i] = *entry
			e := m.entries[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMoodEntryRepository) Delete(ctx context.Context, userID, id uint) error {
	m.deleteCalls++
	for i := range m.entries {
		if m.entries[i].ID == id && m.entries[i].UserID == userID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// mockUserRepository is a mock implementation of UserRepository for testing
type mockUserRepository struct {
	users  map[uint]*models.User
	nextID uint
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uint]*models.User), nextID: 1}
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return user, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }

func foodAt(userID uint, name string, consumedAt time.Time) models.FoodEntry {
	return models.FoodEntry{UserID: userID, FoodName: name, ConsumedAt: consumedAt, CreatedAt: consumedAt}
}

func moodAt(userID uint, rating int, moodType models.MoodType, startedAt time.Time) models.MoodEntry {
	return models.MoodEntry{UserID: userID, MoodRating: rating, MoodType: moodType, StartedAt: startedAt, CreatedAt: startedAt}
}
