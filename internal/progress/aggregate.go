package progress

import (
	"time"

	"github.com/conorfennell/learntrack/internal/domain"
)

// DaysPerWeek is used to scale a daily list to a weekly target.
const DaysPerWeek = 7

// Fraction returns done/total, or 0 when total is not positive.
func Fraction(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(done) / float64(total)
}

// Daily builds the progress view for one day's list of items.
func Daily(date time.Time, items []domain.LearningItem) domain.DailyProgress {
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	return domain.DailyProgress{
		Date:           date,
		TotalItems:     len(items),
		CompletedItems: completed,
		Items:          append([]domain.LearningItem(nil), items...),
	}
}

// Weekly groups day views under the start of their week.
func Weekly(weekStart time.Time, days []domain.DailyProgress) domain.WeeklyProgress {
	return domain.WeeklyProgress{
		WeekStart: weekStart,
		Days:      append([]domain.DailyProgress(nil), days...),
	}
}

// WeekFromLog builds the week starting at weekStart from a completion log.
// Each day is scheduled with every item; a day's completed count is the
// number of log entries that fall on it in weekStart's location.
func WeekFromLog(weekStart time.Time, items []domain.LearningItem, entries []domain.CompletionLog) domain.WeeklyProgress {
	days := make([]domain.DailyProgress, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		from := weekStart.AddDate(0, 0, i)
		to := weekStart.AddDate(0, 0, i+1)
		done := 0
		for _, e := range entries {
			if !e.CompletedAt.Before(from) && e.CompletedAt.Before(to) {
				done++
			}
		}
		days = append(days, domain.DailyProgress{
			Date:           from,
			TotalItems:     len(items),
			CompletedItems: done,
		})
	}
	return Weekly(weekStart, days)
}

// WeekStart returns midnight on the Monday of t's week, in t's location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfDay returns midnight of t's day, in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
