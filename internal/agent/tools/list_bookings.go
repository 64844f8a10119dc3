package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"calcom-assistant/internal/agent"
	"calcom-assistant/pkg/calcom"
	pkgLog "calcom-assistant/pkg/log"
)

type ListBookingsTool struct {
	client calcom.ICalcom
	l      pkgLog.Logger
}

func NewListBookingsTool(client calcom.ICalcom, l pkgLog.Logger) *ListBookingsTool {
	return &ListBookingsTool{
		client: client,
		l:      l,
	}
}

func (t *ListBookingsTool) Name() string {
	return "list_bookings"
}

func (t *ListBookingsTool) Description() string {
	return "Retrieve the calendar owner's bookings. Always pass status='upcoming' by default " +
		"unless the user explicitly asks for past or cancelled bookings. " +
		"Only pass attendee_email to find bookings for a specific external " +
		"attendee — do NOT pass the owner's own email as a filter."
}

func (t *ListBookingsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"attendee_email": map[string]interface{}{
				"type": "string",
				"description": "Only set this to filter bookings by a specific external attendee's email. " +
					"Leave unset when listing the owner's own bookings.",
			},
			"status": map[string]interface{}{
				"type": "string",
				"enum": []string{calcom.StatusUpcoming, calcom.StatusPast, calcom.StatusCancelled},
				"description": "Filter by booking status. Default to 'upcoming' unless the user " +
					"specifically asks for past or cancelled bookings.",
			},
		},
		"required": []string{},
	}
}

type ListBookingsInput struct {
	AttendeeEmail string `json:"attendee_email"`
	Status        string `json:"status"`
}

func (t *ListBookingsTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	// Parse input
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params ListBookingsInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	t.l.Infof(ctx, "list_bookings: status=%q attendee=%q", params.Status, params.AttendeeEmail)

	resp, err := t.client.ListBookings(ctx, calcom.ListBookingsRequest{
		AttendeeEmail: params.AttendeeEmail,
		Status:        params.Status,
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Verify interface compliance
var _ agent.Tool = (*ListBookingsTool)(nil)
