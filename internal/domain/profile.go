package domain

const (
	DefaultDailyGoal  = 4
	DefaultWeeklyGoal = 28
)

// ChildProfile describes the child being tracked. Goals are not validated;
// any integer is accepted.
type ChildProfile struct {
	Name       string
	DailyGoal  int
	WeeklyGoal int
}

// DefaultProfile returns a profile with an empty name and the default goals.
func DefaultProfile() ChildProfile {
	return ChildProfile{
		DailyGoal:  DefaultDailyGoal,
		WeeklyGoal: DefaultWeeklyGoal,
	}
}

// Schedule holds the display label for each time slot, e.g. "8:00 AM - 10:00 AM".
type Schedule map[TimeSlot]string

// DefaultSchedule returns a fresh copy of the built-in slot labels.
func DefaultSchedule() Schedule {
	return Schedule{
		SlotMorning:   "8:00 AM - 10:00 AM",
		SlotAfternoon: "2:00 PM - 4:00 PM",
		SlotEvening:   "6:00 PM - 8:00 PM",
		SlotNight:     "8:00 PM - 10:00 PM",
		SlotEndOfDay:  "10:00 PM",
	}
}

// Clone returns an independent copy of the schedule.
func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
