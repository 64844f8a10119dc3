package calcom

import "context"

// ICalcom defines the interface for the cal.com API client.
// Implementations are safe for concurrent use.
type ICalcom interface {
	// ListEventTypes returns all event types for the authenticated user.
	ListEventTypes(ctx context.Context) (*EventTypesResponse, error)

	// GetAvailableSlots returns available start times for an event type
	// within a date range, compacted and keyed by local date.
	GetAvailableSlots(ctx context.Context, req GetSlotsRequest) (*SlotsResponse, error)

	// CreateBooking creates a new booking.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error)

	// ListBookings returns bookings, optionally filtered by attendee
	// email and/or status.
	ListBookings(ctx context.Context, req ListBookingsRequest) (*BookingsResponse, error)

	// CancelBooking cancels a booking identified by its UID.
	CancelBooking(ctx context.Context, uid, reason string) (*BookingResponse, error)

	// RescheduleBooking moves an existing booking to a new start time.
	RescheduleBooking(ctx context.Context, uid, newStart, rescheduledBy string) (*BookingResponse, error)
}

// New creates a new cal.com client with the given configuration.
func New(cfg Config) (ICalcom, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newCalcomImpl(cfg), nil
}
