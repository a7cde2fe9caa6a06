package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/moodmeal/backend/internal/models"
)

// ConvertToCSV renders an export payload as delimited text: a header
// row, then one row per food entry followed by one row per mood entry,
// each stream in its input order. Free-text columns are wrapped in
// quotes without escaping embedded quote characters, matching the
// format existing consumers of this export already parse.
func ConvertToCSV(payload *models.ExportPayload) string {
	rows := make([]string, 0, 1+len(payload.FoodEntries)+len(payload.MoodEntries))
	rows = append(rows, "Date,Type,Name,Value,Notes")

	for _, e := range payload.FoodEntries {
		quantity := 0.0
		if e.Quantity != nil {
			quantity = *e.Quantity
		}
		rows = append(rows, fmt.Sprintf(`"%s","Food","%s",%s,"%s"`,
			e.ConsumedAt.UTC().Format("2006-01-02"),
			e.FoodName,
			strconv.FormatFloat(quantity, 'f', -1, 64),
			stringOrEmpty(e.Notes),
		))
	}

	for _, e := range payload.MoodEntries {
		rows = append(rows, fmt.Sprintf(`"%s","Mood","%s",%d,"%s"`,
			e.StartedAt.UTC().Format("2006-01-02"),
			e.MoodType,
			e.MoodRating,
			stringOrEmpty(e.Notes),
		))
	}

	return strings.Join(rows, "\n")
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
