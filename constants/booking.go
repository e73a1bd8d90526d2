package constants

import "time"

// Date layout for check-in/check-out values (ISO calendar date)
const DateLayout = "2006-01-02"

// Roster cache
const (
	RosterCacheTTL = 10 * time.Minute

	RoomRosterKeyFmt  = "roster:room:%d"
	GuestRosterKeyFmt = "roster:guest:%d"
	RosterKeyPattern  = "roster:*"
)
