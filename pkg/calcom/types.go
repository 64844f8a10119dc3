package calcom

import (
	"fmt"
	"net/http"
)

// Config holds cal.com client configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("calcom: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// APIError is a non-2xx response from the cal.com API. The remote error
// payload is carried verbatim so callers can surface it to the model.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("calcom: API error %d: %s", e.StatusCode, e.Body)
}

// EventType is one bookable event type. Only the fields the assistant
// needs are kept; everything else in the remote payload is dropped.
type EventType struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	LengthInMinutes int    `json:"lengthInMinutes"`
	Description     string `json:"description,omitempty"`
}

// EventTypesResponse is the parsed list of event types.
type EventTypesResponse struct {
	Status string      `json:"status"`
	Data   []EventType `json:"data"`
}

// GetSlotsRequest selects the availability window for one event type.
// Dates are YYYY-MM-DD; EndDate is an exclusive upper bound.
type GetSlotsRequest struct {
	EventTypeID int
	StartDate   string
	EndDate     string
	TimeZone    string
}

// Slot is one available start time. T is the local wall clock for
// display; U is the UTC ISO instant to pass to CreateBooking as start.
type Slot struct {
	LocalTime string `json:"t"`
	UTC       string `json:"u"`
}

// SlotsResponse groups available slots by local date.
type SlotsResponse struct {
	Status   string            `json:"status"`
	Timezone string            `json:"timezone"`
	Note     string            `json:"note"`
	Data     map[string][]Slot `json:"data"`
}

// Attendee identifies the person a booking is for.
type Attendee struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	TimeZone string `json:"timeZone"`
}

// CreateBookingRequest carries everything needed to create a booking.
type CreateBookingRequest struct {
	EventTypeID      int
	Start            string
	AttendeeName     string
	AttendeeEmail    string
	AttendeeTimezone string
	Notes            string
}

// ListBookingsRequest filters the bookings list. Both fields optional.
type ListBookingsRequest struct {
	AttendeeEmail string
	Status        string
}

// Booking is one booking as echoed back by the API. Typing only the
// fields we care about doubles as the verbose-field strip the assistant
// relies on to keep tool results compact.
type Booking struct {
	ID                 int64      `json:"id,omitempty"`
	UID                string     `json:"uid"`
	Title              string     `json:"title,omitempty"`
	Status             string     `json:"status,omitempty"`
	Start              string     `json:"start,omitempty"`
	End                string     `json:"end,omitempty"`
	Duration           int        `json:"duration,omitempty"`
	EventTypeID        int        `json:"eventTypeId,omitempty"`
	Attendees          []Attendee `json:"attendees,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
	CreatedAt          string     `json:"createdAt,omitempty"`
	UpdatedAt          string     `json:"updatedAt,omitempty"`
}

// BookingResponse wraps a single booking.
type BookingResponse struct {
	Status string  `json:"status"`
	Data   Booking `json:"data"`
}

// BookingsResponse wraps a booking list.
type BookingsResponse struct {
	Status string    `json:"status"`
	Data   []Booking `json:"data"`
}
