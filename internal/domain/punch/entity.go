package punch

import "time"

// Punch kinds, one per clock action.
const (
	KindStartDay   = "start_day"
	KindStartBreak = "start_break"
	KindEndBreak   = "end_break"
	KindEndDay     = "end_day"
)

// Punch sources. Device punches come from the kiosk; justification punches
// are written when an admin approves a correction.
const (
	SourceDevice        = "device"
	SourceJustification = "justification"
)

var Kinds = []string{KindStartDay, KindStartBreak, KindEndBreak, KindEndDay}

type Punch struct {
	ID         string
	EmployeeID string
	Kind       string
	Timestamp  time.Time
	Workday    string // YYYY-MM-DD, assigned at capture time
	Source     string

	// Capture metadata (device punches only)
	Latitude  *float64
	Longitude *float64
	AccuracyM *float64
	DeviceID  *string
	IP        *string
	UserAgent *string

	CreatedBy string
	CreatedAt time.Time
}

// IsValidKind reports whether k is one of the four punch kinds.
func IsValidKind(k string) bool {
	for _, kind := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
