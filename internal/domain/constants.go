package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default working-hours policy, matching the published booking form.
const (
	DefaultWorkStart           = "09:00"
	DefaultWorkEnd             = "17:00"
	DefaultSlotDurationMinutes = 30
	DefaultTimezone            = "America/New_York"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxMessageLength       = 2000
	MaxNameLength          = 200
)
