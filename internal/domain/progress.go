package domain

import "time"

// PerformanceRating summarizes how much of a set of items was completed.
// Percentage is kept unrounded, in [0,1].
type PerformanceRating struct {
	Stars      int
	Message    string
	Percentage float64
}

// Percent returns the percentage as a truncated whole number for display.
func (r PerformanceRating) Percent() int {
	return int(r.Percentage * 100)
}

// DailyProgress is a read-only view of one day's items.
type DailyProgress struct {
	Date           time.Time
	TotalItems     int
	CompletedItems int
	Items          []LearningItem
}

// WeeklyProgress is a read-only view of the days of one week.
type WeeklyProgress struct {
	WeekStart time.Time
	Days      []DailyProgress
}

// Completed sums the completed items across all days.
func (w WeeklyProgress) Completed() int {
	n := 0
	for _, d := range w.Days {
		n += d.CompletedItems
	}
	return n
}

// Total sums the item counts across all days.
func (w WeeklyProgress) Total() int {
	n := 0
	for _, d := range w.Days {
		n += d.TotalItems
	}
	return n
}

// CompletionLog records a single completion event during a session.
type CompletionLog struct {
	ID          string
	ItemID      string
	Category    Category
	TimeSlot    TimeSlot
	CompletedAt time.Time
}
