package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/moodmeal/backend/internal/models"
	"github.com/moodmeal/backend/internal/repository"
)

// minCorrelationSamples is the minimum number of (food, same-day mood
// average) observations required before a correlation is reported.
const minCorrelationSamples = 3

// topFoodsLimit caps the top-foods ranking in the trends payload.
const topFoodsLimit = 10

type analyticsService struct {
	foodRepo repository.FoodEntryRepository
	moodRepo repository.MoodEntryRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(foodRepo repository.FoodEntryRepository, moodRepo repository.MoodEntryRepository) AnalyticsService {
	return &analyticsService{
		foodRepo: foodRepo,
		moodRepo: moodRepo,
	}
}

func (s *analyticsService) GetCorrelations(ctx context.Context, userID uint, days int) (*models.CorrelationsResponse, error) {
	now := time.Now()
	startDate := now.AddDate(0, 0, -days)

	foodEntries, err := s.foodRepo.GetByUserIDAndDateRange(ctx, userID, startDate, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get food entries: %w", err)
	}
	moodEntries, err := s.moodRepo.GetByUserIDAndDateRange(ctx, userID, startDate, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entries: %w", err)
	}

	return &models.CorrelationsResponse{
		Period:           models.PeriodInfo{Days: days, StartDate: startDate},
		Correlations:     analyzeCorrelations(foodEntries, moodEntries),
		TotalFoodEntries: len(foodEntries),
		TotalMoodEntries: len(moodEntries),
	}, nil
}

func (s *analyticsService) GetTrends(ctx context.Context, userID uint, period string, months int) (*models.TrendsResponse, error) {
	if !validTrendPeriod(period) {
		return nil, ErrInvalidPeriod
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, -months, 0)

	moodEntries, err := s.moodRepo.GetByUserIDAndDateRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entries: %w", err)
	}
	foodEntries, err := s.foodRepo.GetByUserIDAndDateRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get food entries: %w", err)
	}

	return &models.TrendsResponse{
		Period: models.TrendPeriod{Months: months, StartDate: startDate, EndDate: endDate},
		Trends: analyzeTrends(moodEntries, foodEntries),
	}, nil
}

func (s *analyticsService) GetInsights(ctx context.Context, userID uint, days int) (*models.InsightsResponse, error) {
	now := time.Now()
	startDate := now.AddDate(0, 0, -days)

	foodEntries, err := s.foodRepo.GetByUserIDAndDateRange(ctx, userID, startDate, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get food entries: %w", err)
	}
	moodEntries, err := s.moodRepo.GetByUserIDAndDateRange(ctx, userID, startDate, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entries: %w", err)
	}

	return &models.InsightsResponse{
		Period:   models.PeriodInfo{Days: days, StartDate: startDate},
		Insights: generateInsights(foodEntries, moodEntries),
	}, nil
}

func (s *analyticsService) ExportData(ctx context.Context, userID uint, startDate, endDate *time.Time) (*models.ExportPayload, error) {
	foodEntries, err := s.foodRepo.GetForExport(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get food entries for export: %w", err)
	}
	moodEntries, err := s.moodRepo.GetForExport(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entries for export: %w", err)
	}

	payload := &models.ExportPayload{
		ExportDate:  time.Now().UTC(),
		FoodEntries: make([]models.FoodEntryResponse, 0, len(foodEntries)),
		MoodEntries: make([]models.MoodEntryResponse, 0, len(moodEntries)),
	}
	if startDate != nil || endDate != nil {
		payload.DateRange = &models.DateRange{StartDate: startDate, EndDate: endDate}
	}
	for i := range foodEntries {
		payload.FoodEntries = append(payload.FoodEntries, foodEntries[i].ToResponse())
	}
	for i := range moodEntries {
		payload.MoodEntries = append(payload.MoodEntries, moodEntries[i].ToResponse())
	}
	return payload, nil
}

// dayBucket holds the records whose primary timestamp falls on one
// calendar date.
type dayBucket struct {
	food []models.FoodEntry
	mood []models.MoodEntry
}

// dayKey formats a timestamp as its UTC calendar date.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// groupByDay buckets both record streams by calendar day. The returned
// key slice preserves first-seen order (food entries first, then mood
// entries), which fixes the iteration order of everything computed on
// top of the buckets.
func groupByDay(foodEntries []models.FoodEntry, moodEntries []models.MoodEntry) (map[string]*dayBucket, []string) {
	buckets := make(map[string]*dayBucket)
	var order []string

	bucket := func(key string) *dayBucket {
		if b, ok := buckets[key]; ok {
			return b
		}
		b := &dayBucket{}
		buckets[key] = b
		order = append(order, key)
		return b
	}

	for i := range foodEntries {
		b := bucket(dayKey(foodEntries[i].ConsumedAt))
		b.food = append(b.food, foodEntries[i])
	}
	for i := range moodEntries {
		b := bucket(dayKey(moodEntries[i].StartedAt))
		b.mood = append(b.mood, moodEntries[i])
	}

	return buckets, order
}

// analyzeCorrelations derives per-food mood-correlation statistics from
// the day buckets. Each food record on a mood-bearing day contributes
// one observation of that day's average mood; foods with at least
// minCorrelationSamples observations get a Pearson coefficient against
// the leading prefix of the overall day-average sequence.
//
// Pairing against the global prefix (rather than the food's own days)
// mirrors the behavior this endpoint has always had; see DESIGN.md
// before changing it.
func analyzeCorrelations(foodEntries []models.FoodEntry, moodEntries []models.MoodEntry) []models.FoodMoodCorrelation {
	buckets, order := groupByDay(foodEntries, moodEntries)

	observations := make(map[string][]float64)
	var foodOrder []string
	var dayAverages []float64

	for _, key := range order {
		day := buckets[key]
		if len(day.mood) == 0 {
			continue
		}

		sum := 0
		for _, m := range day.mood {
			sum += m.MoodRating
		}
		avgMood := float64(sum) / float64(len(day.mood))
		dayAverages = append(dayAverages, avgMood)

		for _, f := range day.food {
			if _, seen := observations[f.FoodName]; !seen {
				foodOrder = append(foodOrder, f.FoodName)
			}
			observations[f.FoodName] = append(observations[f.FoodName], avgMood)
		}
	}

	correlations := []models.FoodMoodCorrelation{}
	for _, name := range foodOrder {
		obs := observations[name]
		if len(obs) < minCorrelationSamples {
			continue
		}
		correlations = append(correlations, models.FoodMoodCorrelation{
			FoodName:    name,
			Correlation: round2(pearson(obs, dayAverages)),
			DataPoints:  len(obs),
		})
	}

	sort.SliceStable(correlations, func(i, j int) bool {
		return math.Abs(correlations[i].Correlation) > math.Abs(correlations[j].Correlation)
	})
	return correlations
}

// pearson computes the Pearson correlation coefficient over the first
// min(len(x), len(y)) pairs. Returns 0 for empty input or a
// zero-variance denominator.
func pearson(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n == 0 {
		return 0
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	fn := float64(n)
	numerator := fn*sumXY - sumX*sumY
	denominator := math.Sqrt((fn*sumX2 - sumX*sumX) * (fn*sumY2 - sumY*sumY))
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// analyzeTrends computes rating averages, the mood type distribution,
// and the top-foods ranking over the supplied window.
func analyzeTrends(moodEntries []models.MoodEntry, foodEntries []models.FoodEntry) models.TrendData {
	mood := models.MoodTrend{
		// No trend-direction algorithm exists yet; the label is a fixed
		// placeholder the clients already render.
		Trend:                "stable",
		MoodTypeDistribution: make(map[models.MoodType]int),
	}
	if len(moodEntries) > 0 {
		sum := 0
		for _, e := range moodEntries {
			sum += e.MoodRating
			mood.MoodTypeDistribution[e.MoodType]++
		}
		mood.AverageRating = round2(float64(sum) / float64(len(moodEntries)))
	}

	food := models.FoodTrend{
		TotalEntries: len(foodEntries),
		TopFoods:     topFoods(foodEntries),
	}
	if span := consumptionDaySpan(foodEntries); span > 0 {
		food.AverageEntriesPerDay = round2(float64(len(foodEntries)) / float64(span))
	}

	return models.TrendData{Mood: mood, Food: food}
}

// topFoods ranks food names by occurrence count, descending, capped at
// topFoodsLimit. Ties keep first-encountered order.
func topFoods(foodEntries []models.FoodEntry) []models.TopFood {
	counts := make(map[string]int)
	var names []string
	for _, e := range foodEntries {
		if _, seen := counts[e.FoodName]; !seen {
			names = append(names, e.FoodName)
		}
		counts[e.FoodName]++
	}

	ranked := make([]models.TopFood, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, models.TopFood{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > topFoodsLimit {
		ranked = ranked[:topFoodsLimit]
	}
	return ranked
}

// consumptionDaySpan returns the number of days between the earliest
// and latest consumption dates. A single-day window (or fewer than two
// entries) yields 0, which callers must treat as "no average".
func consumptionDaySpan(foodEntries []models.FoodEntry) int {
	if len(foodEntries) < 2 {
		return 0
	}
	minDay := startOfDay(foodEntries[0].ConsumedAt.UTC())
	maxDay := minDay
	for _, e := range foodEntries[1:] {
		day := startOfDay(e.ConsumedAt.UTC())
		if day.Before(minDay) {
			minDay = day
		}
		if day.After(maxDay) {
			maxDay = day
		}
	}
	return int(maxDay.Sub(minDay) / (24 * time.Hour))
}

// generateInsights applies the rule set over the window's records and
// emits human-readable observations. The empty-stream rules
// short-circuit; the remaining rules accumulate.
func generateInsights(foodEntries []models.FoodEntry, moodEntries []models.MoodEntry) []string {
	insights := []string{}

	if len(moodEntries) == 0 {
		return append(insights, "Start tracking your mood to get personalized insights!")
	}
	if len(foodEntries) == 0 {
		return append(insights, "Start tracking your food intake to discover correlations with your mood!")
	}

	sum := 0
	for _, m := range moodEntries {
		sum += m.MoodRating
	}
	avgMood := float64(sum) / float64(len(moodEntries))

	if avgMood >= 7 {
		insights = append(insights, "Your mood has been consistently positive! Keep up the great work.")
	} else if avgMood <= 4 {
		insights = append(insights, "Consider tracking what foods you eat when you feel better to identify positive patterns.")
	}

	uniqueFoods := make(map[string]struct{})
	for _, f := range foodEntries {
		uniqueFoods[f.FoodName] = struct{}{}
	}
	if len(uniqueFoods) < 5 {
		insights = append(insights, "Try diversifying your diet - variety can positively impact your mood and health.")
	}

	return insights
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
