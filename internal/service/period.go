package service

import "time"

// validTrendPeriod reports whether a summary/trend period label is one
// of the recognized bucket widths.
func validTrendPeriod(period string) bool {
	switch period {
	case "daily", "weekly", "monthly":
		return true
	}
	return false
}

// periodWindow resolves a period label and anchor date into an
// inclusive [start, end] window. Weeks start on Sunday.
func periodWindow(period string, date time.Time) (time.Time, time.Time, error) {
	if !validTrendPeriod(period) {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}

	day := startOfDay(date)
	switch period {
	case "daily":
		return day, endOfDay(day), nil
	case "weekly":
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return start, endOfDay(start.AddDate(0, 0, 6)), nil
	default: // monthly
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond), nil
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
