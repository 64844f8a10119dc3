// Package datemath performs exact, DST-aware date and timezone
// conversions so the LLM never has to calculate offsets itself.
package datemath

import (
	"fmt"
	"time"
)

const (
	// DateFormat is the canonical YYYY-MM-DD layout.
	DateFormat = "2006-01-02"

	// ClockFormat is the 24-hour HH:MM layout.
	ClockFormat = "15:04"

	// UTCFormat is the ISO 8601 UTC layout passed to the booking API.
	UTCFormat = "2006-01-02T15:04:05Z"

	displayFormat = "2006-01-02 15:04 MST"
)

// Resolution is the result of resolving a relative day offset.
type Resolution struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Display string `json:"display"`
}

// Conversion is the result of converting a local time to UTC.
type Conversion struct {
	UTCISO       string `json:"utc_iso"`
	UTCDate      string `json:"utc_date"`
	UTCTime      string `json:"utc_time"`
	LocalDisplay string `json:"local_display"`
}

// LocalTime is the result of converting a UTC instant to a local timezone.
type LocalTime struct {
	LocalDisplay string `json:"local_display"`
	LocalDate    string `json:"local_date"`
	LocalTime    string `json:"local_time"`
}

// ResolveOffset returns the calendar date offsetDays from today in the
// given IANA timezone. 0 = today, 1 = tomorrow, -1 = yesterday.
func ResolveOffset(offsetDays int, timezone string) (Resolution, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Resolution{}, fmt.Errorf("unknown timezone %q: use an IANA name like America/Los_Angeles", timezone)
	}

	target := time.Now().In(loc).AddDate(0, 0, offsetDays)

	return Resolution{
		Date:    target.Format(DateFormat),
		Weekday: target.Weekday().String(),
		Display: target.Format("Monday, January 2, 2006"),
	}, nil
}

// LocalToUTC converts a local date + clock time to a UTC ISO 8601 string
// suitable for passing directly to the booking API.
func LocalToUTC(date, clock, timezone string) (Conversion, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Conversion{}, fmt.Errorf("unknown timezone %q: use an IANA name like America/Los_Angeles", timezone)
	}

	local, err := time.ParseInLocation(DateFormat+" "+ClockFormat, date+" "+clock, loc)
	if err != nil {
		return Conversion{}, fmt.Errorf("invalid local time %q %q: %w", date, clock, err)
	}

	utc := local.UTC()

	return Conversion{
		UTCISO:       utc.Format(UTCFormat),
		UTCDate:      utc.Format(DateFormat),
		UTCTime:      utc.Format(ClockFormat),
		LocalDisplay: local.Format(displayFormat),
	}, nil
}

// UTCToLocal converts a UTC ISO 8601 datetime, as returned by the
// cal.com API, to the given timezone for display.
func UTCToLocal(utcISO, timezone string) (LocalTime, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return LocalTime{}, fmt.Errorf("unknown timezone %q: use an IANA name like America/Los_Angeles", timezone)
	}

	utc, err := time.Parse(time.RFC3339, utcISO)
	if err != nil {
		return LocalTime{}, fmt.Errorf("invalid UTC datetime %q: %w", utcISO, err)
	}

	local := utc.In(loc)

	return LocalTime{
		LocalDisplay: local.Format(displayFormat),
		LocalDate:    local.Format(DateFormat),
		LocalTime:    local.Format(ClockFormat),
	}, nil
}
