package calcom

import "time"

const (
	// DefaultBaseURL is the cal.com API v2 endpoint.
	DefaultBaseURL = "https://api.cal.com/v2"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Each endpoint family requires a specific cal-api-version header.
const (
	versionEventTypes = "2024-06-14"
	versionSlots      = "2024-09-04"
	versionBookings   = "2024-08-13"
)

// Time layouts used on the wire.
const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04"
	UTCFormat   = "2006-01-02T15:04:05Z"
)

// Booking status filters accepted by the list endpoint.
const (
	StatusUpcoming  = "upcoming"
	StatusPast      = "past"
	StatusCancelled = "cancelled"
)
