package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/moodmeal/backend/internal/models"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 12, 0, 0, 0, time.UTC)
}

func TestGroupByDayPartition(t *testing.T) {
	foods := []models.FoodEntry{
		foodAt(1, "Apple", day(1)),
		foodAt(1, "Toast", day(1)),
		foodAt(1, "Apple", day(3)),
	}
	moods := []models.MoodEntry{
		moodAt(1, 8, models.MoodHappy, day(1)),
		moodAt(1, 4, models.MoodTired, day(2)),
	}

	buckets, order := groupByDay(foods, moods)

	if len(order) != len(buckets) {
		t.Fatalf("order has %d keys, buckets has %d", len(order), len(buckets))
	}
	seen := make(map[string]bool)
	for _, key := range order {
		if seen[key] {
			t.Fatalf("duplicate key %q in order", key)
		}
		seen[key] = true
		if _, ok := buckets[key]; !ok {
			t.Fatalf("ordered key %q missing from buckets", key)
		}
	}

	totalFood, totalMood := 0, 0
	for _, b := range buckets {
		totalFood += len(b.food)
		totalMood += len(b.mood)
	}
	if totalFood != len(foods) || totalMood != len(moods) {
		t.Errorf("partition lost records: got %d food, %d mood", totalFood, totalMood)
	}

	if len(buckets["2024-01-01"].food) != 2 {
		t.Errorf("expected 2 food entries on 2024-01-01, got %d", len(buckets["2024-01-01"].food))
	}
	if len(buckets["2024-01-02"].mood) != 1 {
		t.Errorf("expected 1 mood entry on 2024-01-02, got %d", len(buckets["2024-01-02"].mood))
	}
}

func TestGroupByDayUsesUTCDate(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	// 23:00 EST on Jan 1 is 04:00 UTC on Jan 2.
	foods := []models.FoodEntry{foodAt(1, "Snack", time.Date(2024, 1, 1, 23, 0, 0, 0, est))}

	_, order := groupByDay(foods, nil)
	if len(order) != 1 || order[0] != "2024-01-02" {
		t.Errorf("expected bucket key 2024-01-02, got %v", order)
	}
}

func TestAnalyzeCorrelationsMinimumSamples(t *testing.T) {
	foods := []models.FoodEntry{
		foodAt(1, "Apple", day(1)),
		foodAt(1, "Apple", day(2)),
		foodAt(1, "Toast", day(1)),
	}
	moods := []models.MoodEntry{
		moodAt(1, 8, models.MoodHappy, day(1)),
		moodAt(1, 6, models.MoodCalm, day(2)),
		moodAt(1, 4, models.MoodTired, day(3)),
	}

	results := analyzeCorrelations(foods, moods)
	if len(results) != 0 {
		t.Errorf("foods with fewer than %d observations must be omitted, got %v", minCorrelationSamples, results)
	}
}

func TestAnalyzeCorrelationsZeroVariance(t *testing.T) {
	var foods []models.FoodEntry
	var moods []models.MoodEntry
	ratings := []int{8, 8, 8, 2, 2}
	for i, r := range ratings {
		moods = append(moods, moodAt(1, r, models.MoodHappy, day(i+1)))
	}
	for i := 0; i < 3; i++ {
		foods = append(foods, foodAt(1, "Apple", day(i+1)))
	}

	results := analyzeCorrelations(foods, moods)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].FoodName != "Apple" {
		t.Errorf("expected Apple, got %s", results[0].FoodName)
	}
	if results[0].Correlation != 0 {
		t.Errorf("zero-variance observations must yield correlation 0, got %v", results[0].Correlation)
	}
	if results[0].DataPoints != 3 {
		t.Errorf("expected 3 data points, got %d", results[0].DataPoints)
	}
}

func TestAnalyzeCorrelationsBoundsAndOrdering(t *testing.T) {
	var foods []models.FoodEntry
	var moods []models.MoodEntry
	ratings := []int{2, 4, 6, 8, 3}
	for i, r := range ratings {
		moods = append(moods, moodAt(1, r, models.MoodCalm, day(i+1)))
	}
	// Tracks the rating curve on all five days.
	for i := 1; i <= 5; i++ {
		foods = append(foods, foodAt(1, "Oatmeal", day(i)))
	}
	// Present on three days only; a weaker signal.
	for _, d := range []int{1, 2, 5} {
		foods = append(foods, foodAt(1, "Coffee", day(d)))
	}

	results := analyzeCorrelations(foods, moods)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Correlation < -1 || r.Correlation > 1 {
			t.Errorf("correlation %v for %s out of [-1, 1]", r.Correlation, r.FoodName)
		}
	}
	for i := 1; i < len(results); i++ {
		if math.Abs(results[i-1].Correlation) < math.Abs(results[i].Correlation) {
			t.Errorf("results not sorted by descending |r|: %v", results)
		}
	}
	if results[0].FoodName != "Oatmeal" {
		t.Errorf("expected Oatmeal to rank first, got %s", results[0].FoodName)
	}
}

func TestAnalyzeCorrelationsTiePreservesInputOrder(t *testing.T) {
	var foods []models.FoodEntry
	var moods []models.MoodEntry
	ratings := []int{2, 4, 6, 8}
	for i, r := range ratings {
		moods = append(moods, moodAt(1, r, models.MoodCalm, day(i+1)))
	}
	// Both foods track the full rating curve, so both score r = 1.
	for i := 1; i <= 4; i++ {
		foods = append(foods, foodAt(1, "Rice", day(i)))
	}
	for i := 1; i <= 4; i++ {
		foods = append(foods, foodAt(1, "Beans", day(i)))
	}

	results := analyzeCorrelations(foods, moods)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Correlation != results[1].Correlation {
		t.Fatalf("expected a tie, got %v and %v", results[0].Correlation, results[1].Correlation)
	}
	if results[0].FoodName != "Rice" || results[1].FoodName != "Beans" {
		t.Errorf("tie must preserve first-seen order, got %s then %s", results[0].FoodName, results[1].FoodName)
	}
}

func TestAnalyzeCorrelationsIgnoresMoodlessDays(t *testing.T) {
	foods := []models.FoodEntry{
		foodAt(1, "Apple", day(1)),
		foodAt(1, "Apple", day(2)),
		foodAt(1, "Apple", day(3)),
		foodAt(1, "Apple", day(9)), // no mood recorded that day
	}
	moods := []models.MoodEntry{
		moodAt(1, 5, models.MoodCalm, day(1)),
		moodAt(1, 6, models.MoodCalm, day(2)),
		moodAt(1, 7, models.MoodCalm, day(3)),
	}

	results := analyzeCorrelations(foods, moods)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].DataPoints != 3 {
		t.Errorf("a food record on a moodless day must not count, got %d data points", results[0].DataPoints)
	}
}

func TestPearson(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want float64
	}{
		{"perfect positive", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"perfect negative", []float64{1, 2, 3}, []float64{6, 4, 2}, -1},
		{"zero variance", []float64{5, 5, 5}, []float64{1, 2, 3}, 0},
		{"empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pearson(tt.x, tt.y)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("pearson(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestAnalyzeTrendsAverages(t *testing.T) {
	moods := []models.MoodEntry{
		moodAt(1, 6, models.MoodHappy, day(1)),
		moodAt(1, 8, models.MoodCalm, day(2)),
		moodAt(1, 10, models.MoodEnergetic, day(3)),
	}

	trends := analyzeTrends(moods, nil)
	if trends.Mood.AverageRating != 8.00 {
		t.Errorf("expected average rating 8.00, got %v", trends.Mood.AverageRating)
	}
	if trends.Mood.Trend != "stable" {
		t.Errorf("expected trend label stable, got %q", trends.Mood.Trend)
	}
	for _, mt := range []models.MoodType{models.MoodHappy, models.MoodCalm, models.MoodEnergetic} {
		if trends.Mood.MoodTypeDistribution[mt] != 1 {
			t.Errorf("expected distribution[%s] = 1, got %d", mt, trends.Mood.MoodTypeDistribution[mt])
		}
	}
}

func TestAnalyzeTrendsEmptyInput(t *testing.T) {
	trends := analyzeTrends(nil, nil)
	if trends.Mood.AverageRating != 0 {
		t.Errorf("expected 0 average for empty input, got %v", trends.Mood.AverageRating)
	}
	if trends.Mood.Trend != "stable" {
		t.Errorf("expected trend label stable, got %q", trends.Mood.Trend)
	}
	if trends.Food.TotalEntries != 0 || trends.Food.AverageEntriesPerDay != 0 {
		t.Errorf("expected empty food trend, got %+v", trends.Food)
	}
	if len(trends.Food.TopFoods) != 0 {
		t.Errorf("expected no top foods, got %v", trends.Food.TopFoods)
	}
}

func TestAnalyzeTrendsSingleDaySpan(t *testing.T) {
	foods := []models.FoodEntry{
		foodAt(1, "Apple", day(1)),
		foodAt(1, "Toast", day(1)),
		foodAt(1, "Rice", day(1)),
	}

	trends := analyzeTrends(nil, foods)
	if trends.Food.TotalEntries != 3 {
		t.Errorf("expected 3 total entries, got %d", trends.Food.TotalEntries)
	}
	if trends.Food.AverageEntriesPerDay != 0 {
		t.Errorf("single-day span must yield 0 entries per day, got %v", trends.Food.AverageEntriesPerDay)
	}
}

func TestAnalyzeTrendsEntriesPerDay(t *testing.T) {
	foods := []models.FoodEntry{
		foodAt(1, "Apple", day(1)),
		foodAt(1, "Toast", day(2)),
		foodAt(1, "Rice", day(3)),
	}

	trends := analyzeTrends(nil, foods)
	// 3 entries across a 2-day span.
	if trends.Food.AverageEntriesPerDay != 1.5 {
		t.Errorf("expected 1.5 entries per day, got %v", trends.Food.AverageEntriesPerDay)
	}
}

func TestTopFoodsRanking(t *testing.T) {
	var foods []models.FoodEntry
	for i := 0; i < 3; i++ {
		foods = append(foods, foodAt(1, "Rice", day(1)))
	}
	for i := 0; i < 3; i++ {
		foods = append(foods, foodAt(1, "Beans", day(1)))
	}
	foods = append(foods, foodAt(1, "Apple", day(1)))

	ranked := topFoods(foods)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked foods, got %d", len(ranked))
	}
	if ranked[0].Name != "Rice" || ranked[1].Name != "Beans" {
		t.Errorf("equal counts must keep first-encountered order, got %s then %s", ranked[0].Name, ranked[1].Name)
	}
	if ranked[2].Name != "Apple" || ranked[2].Count != 1 {
		t.Errorf("expected Apple with count 1 last, got %+v", ranked[2])
	}
}

func TestTopFoodsCap(t *testing.T) {
	var foods []models.FoodEntry
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for _, n := range names {
		foods = append(foods, foodAt(1, n, day(1)))
	}

	ranked := topFoods(foods)
	if len(ranked) != topFoodsLimit {
		t.Errorf("expected ranking capped at %d, got %d", topFoodsLimit, len(ranked))
	}
}

func TestGenerateInsights(t *testing.T) {
	distinctFoods := func(n int) []models.FoodEntry {
		var foods []models.FoodEntry
		for i := 0; i < n; i++ {
			foods = append(foods, foodAt(1, string(rune('a'+i)), day(1)))
		}
		return foods
	}
	moodsWithAvg := func(ratings ...int) []models.MoodEntry {
		var moods []models.MoodEntry
		for i, r := range ratings {
			moods = append(moods, moodAt(1, r, models.MoodCalm, day(i+1)))
		}
		return moods
	}

	tests := []struct {
		name  string
		foods []models.FoodEntry
		moods []models.MoodEntry
		want  []string
	}{
		{
			name:  "no mood records",
			foods: distinctFoods(6),
			moods: nil,
			want:  []string{"Start tracking your mood to get personalized insights!"},
		},
		{
			name:  "no food records",
			foods: nil,
			moods: moodsWithAvg(8),
			want:  []string{"Start tracking your food intake to discover correlations with your mood!"},
		},
		{
			name:  "positive mood with diverse diet",
			foods: distinctFoods(6),
			moods: moodsWithAvg(7, 8),
			want:  []string{"Your mood has been consistently positive! Keep up the great work."},
		},
		{
			name:  "low mood with narrow diet",
			foods: distinctFoods(2),
			moods: moodsWithAvg(3, 4),
			want: []string{
				"Consider tracking what foods you eat when you feel better to identify positive patterns.",
				"Try diversifying your diet - variety can positively impact your mood and health.",
			},
		},
		{
			name:  "neutral mood with diverse diet",
			foods: distinctFoods(5),
			moods: moodsWithAvg(5, 6),
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateInsights(tt.foods, tt.moods)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d insights, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("insight %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGetCorrelationsService(t *testing.T) {
	foodRepo := newMockFoodEntryRepository()
	moodRepo := newMockMoodEntryRepository()
	svc := NewAnalyticsService(foodRepo, moodRepo)
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 1; i <= 5; i++ {
		foodRepo.Create(ctx, &models.FoodEntry{UserID: 1, FoodName: "Oatmeal", ConsumedAt: now.AddDate(0, 0, -i)})
		moodRepo.Create(ctx, &models.MoodEntry{UserID: 1, MoodRating: 5 + i%3, MoodType: models.MoodCalm, StartedAt: now.AddDate(0, 0, -i)})
	}
	// Another user's records must not leak in.
	foodRepo.Create(ctx, &models.FoodEntry{UserID: 2, FoodName: "Candy", ConsumedAt: now.AddDate(0, 0, -1)})

	resp, err := svc.GetCorrelations(ctx, 1, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Period.Days != 30 {
		t.Errorf("expected period days 30, got %d", resp.Period.Days)
	}
	if resp.TotalFoodEntries != 5 || resp.TotalMoodEntries != 5 {
		t.Errorf("expected 5 food and 5 mood entries, got %d and %d", resp.TotalFoodEntries, resp.TotalMoodEntries)
	}
	if len(resp.Correlations) != 1 || resp.Correlations[0].FoodName != "Oatmeal" {
		t.Errorf("expected a single Oatmeal correlation, got %v", resp.Correlations)
	}
}

func TestGetTrendsInvalidPeriod(t *testing.T) {
	svc := NewAnalyticsService(newMockFoodEntryRepository(), newMockMoodEntryRepository())

	_, err := svc.GetTrends(context.Background(), 1, "yearly", 6)
	if !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestGetTrendsService(t *testing.T) {
	foodRepo := newMockFoodEntryRepository()
	moodRepo := newMockMoodEntryRepository()
	svc := NewAnalyticsService(foodRepo, moodRepo)
	ctx := context.Background()

	now := time.Now().UTC()
	moodRepo.Create(ctx, &models.MoodEntry{UserID: 1, MoodRating: 6, MoodType: models.MoodHappy, StartedAt: now.AddDate(0, 0, -2)})
	moodRepo.Create(ctx, &models.MoodEntry{UserID: 1, MoodRating: 8, MoodType: models.MoodHappy, StartedAt: now.AddDate(0, 0, -1)})

	resp, err := svc.GetTrends(ctx, 1, "weekly", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Period.Months != 6 {
		t.Errorf("expected period months 6, got %d", resp.Period.Months)
	}
	if resp.Trends.Mood.AverageRating != 7 {
		t.Errorf("expected average rating 7, got %v", resp.Trends.Mood.AverageRating)
	}
	if resp.Trends.Mood.MoodTypeDistribution[models.MoodHappy] != 2 {
		t.Errorf("expected 2 happy entries, got %d", resp.Trends.Mood.MoodTypeDistribution[models.MoodHappy])
	}
}

func TestGetInsightsService(t *testing.T) {
	foodRepo := newMockFoodEntryRepository()
	moodRepo := newMockMoodEntryRepository()
	svc := NewAnalyticsService(foodRepo, moodRepo)

	resp, err := svc.GetInsights(context.Background(), 1, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Insights) != 1 || resp.Insights[0] != "Start tracking your mood to get personalized insights!" {
		t.Errorf("expected the empty-journal insight, got %v", resp.Insights)
	}
}

func TestExportDataDateRange(t *testing.T) {
	foodRepo := newMockFoodEntryRepository()
	moodRepo := newMockMoodEntryRepository()
	svc := NewAnalyticsService(foodRepo, moodRepo)
	ctx := context.Background()

	payload, err := svc.ExportData(ctx, 1, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.DateRange != nil {
		t.Errorf("unbounded export must omit the date range, got %+v", payload.DateRange)
	}

	start := day(1)
	payload, err = svc.ExportData(ctx, 1, &start, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.DateRange == nil || payload.DateRange.StartDate == nil || !payload.DateRange.StartDate.Equal(start) {
		t.Errorf("expected date range start %v, got %+v", start, payload.DateRange)
	}
	if payload.DateRange.EndDate != nil {
		t.Errorf("expected nil end date, got %v", payload.DateRange.EndDate)
	}
}

func TestExportDataFiltersByCreatedAt(t *testing.T) {
	foodRepo := newMockFoodEntryRepository()
	moodRepo := newMockMoodEntryRepository()
	svc := NewAnalyticsService(foodRepo, moodRepo)
	ctx := context.Background()

	foodRepo.Create(ctx, &models.FoodEntry{UserID: 1, FoodName: "Old", ConsumedAt: day(1), CreatedAt: day(1)})
	foodRepo.Create(ctx, &models.FoodEntry{UserID: 1, FoodName: "New", ConsumedAt: day(1), CreatedAt: day(20)})

	start := day(10)
	payload, err := svc.ExportData(ctx, 1, &start, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload.FoodEntries) != 1 || payload.FoodEntries[0].FoodName != "New" {
		t.Errorf("export must filter on creation time, got %+v", payload.FoodEntries)
	}
}
