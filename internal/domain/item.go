package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is the kind of learning activity an item belongs to.
type Category string

const (
	CategoryEnglishWords Category = "english_words"
	CategorySurahs       Category = "surahs"
	CategoryArabicWords  Category = "arabic_words"
	CategoryPoems        Category = "poems"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryEnglishWords,
	CategorySurahs,
	CategoryArabicWords,
	CategoryPoems,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryEnglishWords, CategorySurahs, CategoryArabicWords, CategoryPoems:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }

// Label returns the human readable name, e.g. "English Words".
func (c Category) Label() string { return label(string(c)) }

// ParseCategory accepts the stable key in any case, with either '_' or '-'
// as the word separator.
func ParseCategory(s string) (Category, bool) {
	c := Category(normalizeKey(s))
	return c, c.Valid()
}

// TimeSlot is one of the fixed daily periods an item is scheduled into.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
	SlotNight     TimeSlot = "night"
	SlotEndOfDay  TimeSlot = "end_of_day"
)

// TimeSlots lists every slot in the order they occur during a day.
var TimeSlots = []TimeSlot{
	SlotMorning,
	SlotAfternoon,
	SlotEvening,
	SlotNight,
	SlotEndOfDay,
}

// Valid reports whether s is one of the known time slots.
func (s TimeSlot) Valid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening, SlotNight, SlotEndOfDay:
		return true
	}
	return false
}

func (s TimeSlot) String() string { return string(s) }

// Label returns the human readable name, e.g. "End Of Day".
func (s TimeSlot) Label() string { return label(string(s)) }

// ParseTimeSlot accepts the stable key in any case, with either '_' or '-'
// as the word separator.
func ParseTimeSlot(s string) (TimeSlot, bool) {
	t := TimeSlot(normalizeKey(s))
	return t, t.Valid()
}

// LearningItem is a single activity scheduled for the day.
// CompletedAt is non-nil exactly when Completed is true.
type LearningItem struct {
	ID          string
	Title       string
	Category    Category
	TimeSlot    TimeSlot
	Notes       string
	Completed   bool
	CompletedAt *time.Time
}

// MarkedCompleted returns a copy of the item flagged as completed at the given
// instant. The receiver is left untouched.
func (i LearningItem) MarkedCompleted(at time.Time) LearningItem {
	i.Completed = true
	i.CompletedAt = &at
	return i
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

func label(key string) string {
	// Casers carry state, so one is built per call.
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
