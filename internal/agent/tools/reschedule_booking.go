package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"calcom-assistant/internal/agent"
	"calcom-assistant/pkg/calcom"
	pkgLog "calcom-assistant/pkg/log"
)

type RescheduleBookingTool struct {
	client calcom.ICalcom
	l      pkgLog.Logger
}

func NewRescheduleBookingTool(client calcom.ICalcom, l pkgLog.Logger) *RescheduleBookingTool {
	return &RescheduleBookingTool{
		client: client,
		l:      l,
	}
}

func (t *RescheduleBookingTool) Name() string {
	return "reschedule_booking"
}

func (t *RescheduleBookingTool) Description() string {
	return "Reschedule an existing cal.com booking to a new start time. " +
		"First list bookings to find the correct UID, then call " +
		"get_available_slots and use the 'u' field of the chosen slot " +
		"directly as new_start — do NOT call local_to_utc or construct " +
		"the time manually."
}

func (t *RescheduleBookingTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"booking_uid": map[string]interface{}{
				"type":        "string",
				"description": "Unique identifier of the booking to reschedule.",
			},
			"new_start": map[string]interface{}{
				"type": "string",
				"description": "New start time as a UTC ISO 8601 string. " +
					"Must be the 'u' field taken directly from a slot returned " +
					"by get_available_slots — e.g. '2026-03-05T23:00:00Z'.",
			},
		},
		"required": []string{"booking_uid", "new_start"},
	}
}

type RescheduleBookingInput struct {
	BookingUID string `json:"booking_uid"`
	NewStart   string `json:"new_start"`
}

func (t *RescheduleBookingTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	// Parse input
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params RescheduleBookingInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	t.l.Infof(ctx, "reschedule_booking: uid=%s new_start=%s", params.BookingUID, params.NewStart)

	resp, err := t.client.RescheduleBooking(ctx, params.BookingUID, params.NewStart, "")
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Verify interface compliance
var _ agent.Tool = (*RescheduleBookingTool)(nil)
