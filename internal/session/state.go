// Package session holds the state of a tracking session and the pure
// functions that move it forward. A State is never modified in place; every
// update returns a new one and leaves the old value usable.
package session

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/conorfennell/learntrack/internal/domain"
	"github.com/conorfennell/learntrack/internal/progress"
)

// ErrItemNotFound is returned when an update names an item that does not exist.
var ErrItemNotFound = errors.New("item not found")

// State is a snapshot of everything the views need.
type State struct {
	Items    []domain.LearningItem
	Profile  domain.ChildProfile
	Schedule domain.Schedule
	Screen   Screen
}

// NewState starts a session on the home screen with the given items, the
// default profile and the default schedule.
func NewState(items []domain.LearningItem) State {
	return State{
		Items:    append([]domain.LearningItem(nil), items...),
		Profile:  domain.DefaultProfile(),
		Schedule: domain.DefaultSchedule(),
		Screen:   HomeScreen{},
	}
}

// Item looks up an item by ID.
func (s State) Item(id string) (domain.LearningItem, bool) {
	for _, item := range s.Items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.LearningItem{}, false
}

// Performance rates the current items.
func (s State) Performance() domain.PerformanceRating {
	return progress.CalculatePerformance(s.Items)
}

// MarkCompleted returns a state in which the item with the given ID is
// completed at now. Completing an already completed item keeps its original
// timestamp. An open detail screen for the item is refreshed.
func (s State) MarkCompleted(id string, now time.Time) (State, error) {
	idx := -1
	for i, item := range s.Items {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, ErrItemNotFound
	}
	if s.Items[idx].Completed {
		return s, nil
	}

	updated := s.Items[idx].MarkedCompleted(now)
	items := make([]domain.LearningItem, len(s.Items))
	copy(items, s.Items)
	items[idx] = updated

	next := s
	next.Items = items
	if detail, ok := s.Screen.(ItemDetailScreen); ok && detail.Item.ID == id {
		next.Screen = ItemDetailScreen{Item: updated}
	}
	return next, nil
}

// Navigate returns a state showing the given screen.
func (s State) Navigate(screen Screen) State {
	s.Screen = screen
	return s
}

// ProfileForm carries the raw text of the profile editor.
type ProfileForm struct {
	Name       string
	DailyGoal  string
	WeeklyGoal string
	// Schedule holds edited slot labels. Missing or blank entries keep the
	// current label.
	Schedule map[domain.TimeSlot]string
}

// SaveProfile replaces the profile with the form's values and returns to the
// home screen. Goals that are not whole numbers fall back to the defaults.
func (s State) SaveProfile(form ProfileForm) State {
	s.Profile = domain.ChildProfile{
		Name:       form.Name,
		DailyGoal:  parseGoal(form.DailyGoal, domain.DefaultDailyGoal),
		WeeklyGoal: parseGoal(form.WeeklyGoal, domain.DefaultWeeklyGoal),
	}

	schedule := s.Schedule.Clone()
	for slot, label := range form.Schedule {
		if !slot.Valid() {
			continue
		}
		if label = strings.TrimSpace(label); label != "" {
			schedule[slot] = label
		}
	}
	s.Schedule = schedule
	s.Screen = HomeScreen{}
	return s
}

func parseGoal(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
