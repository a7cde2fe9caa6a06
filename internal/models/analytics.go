package models

import "time"

// FoodMoodCorrelation reports the Pearson correlation between a food
// and same-day mood averages. Foods with fewer than the minimum number
// of observations are never reported.
type FoodMoodCorrelation struct {
	FoodName    string  `json:"food_name"`
	Correlation float64 `json:"correlation"`
	DataPoints  int     `json:"data_points"`
}

// PeriodInfo echoes the day-based window of an analytics request.
type PeriodInfo struct {
	Days      int       `json:"days"`
	StartDate time.Time `json:"start_date"`
}

// CorrelationsResponse is the payload of the correlations operation.
type CorrelationsResponse struct {
	Period           PeriodInfo            `json:"period"`
	Correlations     []FoodMoodCorrelation `json:"correlations"`
	TotalFoodEntries int                   `json:"total_food_entries"`
	TotalMoodEntries int                   `json:"total_mood_entries"`
}

// TopFood is one entry of the top-foods ranking.
type TopFood struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MoodTrend aggregates mood statistics over the trends window.
type MoodTrend struct {
	AverageRating        float64          `json:"average_rating"`
	Trend                string           `json:"trend"`
	MoodTypeDistribution map[MoodType]int `json:"mood_type_distribution"`
}

// FoodTrend aggregates food statistics over the trends window.
type FoodTrend struct {
	TotalEntries         int       `json:"total_entries"`
	AverageEntriesPerDay float64   `json:"average_entries_per_day"`
	TopFoods             []TopFood `json:"top_foods"`
}

// TrendData is the combined trends payload.
type TrendData struct {
	Mood MoodTrend `json:"mood"`
	Food FoodTrend `json:"food"`
}

// TrendPeriod echoes the month-based window of a trends request.
type TrendPeriod struct {
	Months    int       `json:"months"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// TrendsResponse is the payload of the trends operation.
type TrendsResponse struct {
	Period TrendPeriod `json:"period"`
	Trends TrendData   `json:"trends"`
}

// InsightsResponse is the payload of the insights operation.
type InsightsResponse struct {
	Period   PeriodInfo `json:"period"`
	Insights []string   `json:"insights"`
}

// DateRange is the optional range echo on an export.
type DateRange struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// ExportPayload is the full data export for one user, renderable as
// JSON or as delimited text.
type ExportPayload struct {
	ExportDate  time.Time           `json:"export_date"`
	DateRange   *DateRange          `json:"date_range,omitempty"`
	FoodEntries []FoodEntryResponse `json:"food_entries"`
	MoodEntries []MoodEntryResponse `json:"mood_entries"`
}
