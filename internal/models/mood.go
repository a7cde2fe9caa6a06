package models

import "time"

// MoodType is the closed set of mood categories a mood entry can carry.
type MoodType string

const (
	MoodHappy     MoodType = "happy"
	MoodSad       MoodType = "sad"
	MoodAnxious   MoodType = "anxious"
	MoodEnergetic MoodType = "energetic"
	MoodTired     MoodType = "tired"
	MoodStressed  MoodType = "stressed"
	MoodCalm      MoodType = "calm"
	MoodIrritable MoodType = "irritable"
	MoodFocused   MoodType = "focused"
	MoodConfused  MoodType = "confused"
)

// Valid reports whether t is one of the recognized mood types.
func (t MoodType) Valid() bool {
	switch t {
	case MoodHappy, MoodSad, MoodAnxious, MoodEnergetic, MoodTired,
		MoodStressed, MoodCalm, MoodIrritable, MoodFocused, MoodConfused:
		return true
	}
	return false
}

// MoodEntry represents one recorded mood state.
type MoodEntry struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"index;not null" json:"user_id"`
	MoodRating      int        `gorm:"not null" json:"mood_rating"`
	MoodType        MoodType   `gorm:"size:50;not null" json:"mood_type"`
	Intensity       *float64   `gorm:"type:decimal(3,2)" json:"intensity,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	StartedAt       time.Time  `gorm:"index;not null" json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	Notes           *string    `gorm:"type:text" json:"notes,omitempty"`
	Triggers        *string    `gorm:"type:text" json:"triggers,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// CreateMoodEntryRequest represents the request to record a mood state
type CreateMoodEntryRequest struct {
	MoodRating      int        `json:"mood_rating" binding:"required,min=1,max=10"`
	MoodType        MoodType   `json:"mood_type" binding:"required,oneof=happy sad anxious energetic tired stressed calm irritable focused confused"`
	Intensity       *float64   `json:"intensity" binding:"omitempty,min=0,max=1"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,gt=0"`
	StartedAt       time.Time  `json:"started_at" binding:"required"`
	EndedAt         *time.Time `json:"ended_at"`
	Notes           *string    `json:"notes"`
	Triggers        *string    `json:"triggers"`
}

// MoodEntryResponse is the public shape of a mood entry.
type MoodEntryResponse struct {
	ID              uint       `json:"id"`
	MoodRating      int        `json:"mood_rating"`
	MoodType        MoodType   `json:"mood_type"`
	Intensity       *float64   `json:"intensity,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	Triggers        *string    `json:"triggers,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ToResponse converts a stored entry into its public response shape.
func (e *MoodEntry) ToResponse() MoodEntryResponse {
	return MoodEntryResponse{
		ID:              e.ID,
		MoodRating:      e.MoodRating,
		MoodType:        e.MoodType,
		Intensity:       e.Intensity,
		DurationMinutes: e.DurationMinutes,
		StartedAt:       e.StartedAt,
		EndedAt:         e.EndedAt,
		Notes:           e.Notes,
		Triggers:        e.Triggers,
		CreatedAt:       e.CreatedAt,
	}
}

// MoodSummary holds aggregate mood statistics for a summary window.
type MoodSummary struct {
	AverageRating        float64          `json:"average_rating"`
	AverageIntensity     *float64         `json:"average_intensity,omitempty"`
	EntryCount           int              `json:"entry_count"`
	MoodTypeDistribution map[MoodType]int `json:"mood_type_distribution"`
}
