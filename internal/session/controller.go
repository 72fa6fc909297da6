package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/conorfennell/learntrack/internal/domain"
)

// CompletionRecorder receives an event for every item that becomes completed.
type CompletionRecorder interface {
	RecordCompletion(ctx context.Context, entry domain.CompletionLog) (domain.CompletionLog, error)
}

// Controller owns the current State and serializes updates to it.
type Controller struct {
	mu       sync.Mutex
	state    State
	recorder CompletionRecorder
	now      func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces time.Now as the source of completion timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithRecorder sends completion events to r.
func WithRecorder(r CompletionRecorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// NewController creates a controller starting from initial.
func NewController(initial State, opts ...Option) *Controller {
	c := &Controller{
		state: initial,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current state without changing it. The returned value
// must be treated as read-only; it shares backing arrays with the controller.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// MarkCompleted completes the item with the given ID. The state advances even
// when recording the event fails; the recorder error is returned.
func (c *Controller) MarkCompleted(ctx context.Context, id string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	before, ok := c.state.Item(id)
	if !ok {
		return c.state, fmt.Errorf("failed to complete %q: %w", id, ErrItemNotFound)
	}

	next, err := c.state.MarkCompleted(id, c.now())
	if err != nil {
		return c.state, fmt.Errorf("failed to complete %q: %w", id, err)
	}
	c.state = next

	if before.Completed {
		return next, nil
	}

	after, _ := next.Item(id)
	slog.Info("Item completed", "id", id, "title", after.Title, "slot", after.TimeSlot)

	if c.recorder != nil {
		_, err := c.recorder.RecordCompletion(ctx, domain.CompletionLog{
			ItemID:      after.ID,
			Category:    after.Category,
			TimeSlot:    after.TimeSlot,
			CompletedAt: *after.CompletedAt,
		})
		if err != nil {
			return next, err
		}
	}
	return next, nil
}

// Navigate switches to the given screen.
func (c *Controller) Navigate(screen Screen) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.Navigate(screen)
	slog.Debug("Navigated", "screen", screen.Name())
	return c.state
}

// OpenItem navigates to the detail screen of the item with the given ID.
func (c *Controller) OpenItem(id string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.state.Item(id)
	if !ok {
		return c.state, fmt.Errorf("failed to open %q: %w", id, ErrItemNotFound)
	}
	c.state = c.state.Navigate(ItemDetailScreen{Item: item})
	slog.Debug("Navigated", "screen", c.state.Screen.Name(), "id", id)
	return c.state, nil
}

// SaveProfile commits the profile form.
func (c *Controller) SaveProfile(form ProfileForm) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.SaveProfile(form)
	slog.Info("Profile saved", "name", c.state.Profile.Name,
		"daily_goal", c.state.Profile.DailyGoal, "weekly_goal", c.state.Profile.WeeklyGoal)
	return c.state
}
