// Package progress derives item statuses and performance ratings from a
// day's learning items. Every function here is pure.
package progress

import (
	"fmt"

	"github.com/conorfennell/learntrack/internal/domain"
)

// DeriveStatus maps an item to its display status.
// Completion wins over everything else. Otherwise the slot is looked up in a
// fixed table; the current time is not consulted.
func DeriveStatus(item domain.LearningItem) domain.Status {
	if item.Completed {
		return domain.StatusCompleted
	}

	// Intended semantics are time relative (within 15 minutes of the slot
	// start is due, past the slot end is overdue). The static table is kept.
	switch item.TimeSlot {
	case domain.SlotMorning:
		return domain.StatusUpcoming
	case domain.SlotAfternoon:
		return domain.StatusDue
	case domain.SlotEvening, domain.SlotNight, domain.SlotEndOfDay:
		return domain.StatusOverdue
	}
	panic(fmt.Sprintf("progress: unknown time slot %q", item.TimeSlot))
}

// StatusColor returns the card color for a status.
func StatusColor(s domain.Status) domain.Color {
	switch s {
	case domain.StatusUpcoming:
		return domain.ColorBlue
	case domain.StatusDue:
		return domain.ColorOrange
	case domain.StatusOverdue:
		return domain.ColorRed
	case domain.StatusCompleted:
		return domain.ColorGreen
	}
	return domain.ColorGray
}
