package domain

// GuestSchemaVersion is the version of the stay record layout written by this service
const GuestSchemaVersion = 1

// MaxSearchTerm is the longest accepted search string, in runes
const MaxSearchTerm = 100

// Dashboard windows in days
const (
	WeeklyRevenueWindowDays = 7
	UpcomingWindowDays      = 7
)

// DateFormat is the calendar date layout used for check-in and check-out
const DateFormat = "2006-01-02"
