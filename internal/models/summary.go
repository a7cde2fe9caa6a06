package models

import "time"

// SummaryRange is the resolved inclusive window of a summary request.
type SummaryRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// FoodSummaryResponse is the payload of the food summary operation.
type FoodSummaryResponse struct {
	Period    string              `json:"period"`
	DateRange SummaryRange        `json:"date_range"`
	Summary   NutritionSummary    `json:"summary"`
	Entries   []FoodEntryResponse `json:"entries"`
}

// MoodSummaryResponse is the payload of the mood summary operation.
type MoodSummaryResponse struct {
	Period    string              `json:"period"`
	DateRange SummaryRange        `json:"date_range"`
	Summary   MoodSummary         `json:"summary"`
	Entries   []MoodEntryResponse `json:"entries"`
}
