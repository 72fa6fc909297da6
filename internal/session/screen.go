package session

import "github.com/conorfennell/learntrack/internal/domain"

// Screen is the view currently shown. It is one of HomeScreen, ProfileScreen,
// ItemDetailScreen or PerformanceScreen.
type Screen interface {
	// Name identifies the screen in logs.
	Name() string
	isScreen()
}

// HomeScreen lists the day's items and progress.
type HomeScreen struct{}

// ProfileScreen edits the child's profile and slot labels.
type ProfileScreen struct{}

// ItemDetailScreen shows one item. Item is a copy taken when navigating.
type ItemDetailScreen struct {
	Item domain.LearningItem
}

// PerformanceScreen shows the star rating for the day.
type PerformanceScreen struct{}

func (HomeScreen) Name() string        { return "home" }
func (ProfileScreen) Name() string     { return "profile" }
func (ItemDetailScreen) Name() string  { return "item_detail" }
func (PerformanceScreen) Name() string { return "performance" }

func (HomeScreen) isScreen()        {}
func (ProfileScreen) isScreen()     {}
func (ItemDetailScreen) isScreen()  {}
func (PerformanceScreen) isScreen() {}
