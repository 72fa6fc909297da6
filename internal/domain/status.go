package domain

// Status is the display state of an item, used for color coding.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusDue       Status = "due"
	StatusOverdue   Status = "overdue"
	StatusCompleted Status = "completed"
)

func (s Status) String() string { return string(s) }

// Label returns the human readable name, e.g. "Overdue".
func (s Status) Label() string { return label(string(s)) }

// Color is a display color category. Rendering decides the actual shade.
type Color string

const (
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
	ColorPurple Color = "purple"
	ColorGray   Color = "gray"
)

func (c Color) String() string { return string(c) }
