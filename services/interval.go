package services

import (
	"time"

	"github.com/GivenCloud/Hotel-Manager/constants"
)

// ParseDate parses an ISO calendar date (YYYY-MM-DD). Bookings carry no
// time-of-day component.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateLayout, dateStr)
}

// IntervalsIntersect reports whether the stay intervals [aIn, aOut] and
// [bIn, bOut] share at least one day. Bounds are inclusive: [a,b] and [c,d]
// intersect when a <= d && c <= b. ISO dates order lexicographically, so the
// comparison runs on the raw strings.
func IntervalsIntersect(aIn, aOut, bIn, bOut string) bool {
	return aIn <= bOut && bIn <= aOut
}
