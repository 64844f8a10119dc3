package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"calcom-assistant/internal/agent"
	"calcom-assistant/pkg/calcom"
	pkgLog "calcom-assistant/pkg/log"
)

type CreateBookingTool struct {
	client calcom.ICalcom
	l      pkgLog.Logger
}

func NewCreateBookingTool(client calcom.ICalcom, l pkgLog.Logger) *CreateBookingTool {
	return &CreateBookingTool{
		client: client,
		l:      l,
	}
}

func (t *CreateBookingTool) Name() string {
	return "create_booking"
}

func (t *CreateBookingTool) Description() string {
	return "Create a new cal.com booking. Only call this once all required " +
		"details have been gathered from the user."
}

func (t *CreateBookingTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"event_type_id": map[string]interface{}{
				"type":        "integer",
				"description": "ID of the event type to book.",
			},
			"start": map[string]interface{}{
				"type":        "string",
				"description": "Meeting start time in ISO 8601 format.",
			},
			"attendee_name": map[string]interface{}{
				"type":        "string",
				"description": "Full name of the attendee.",
			},
			"attendee_email": map[string]interface{}{
				"type":        "string",
				"description": "Email address of the attendee.",
			},
			"attendee_timezone": map[string]interface{}{
				"type":        "string",
				"description": "IANA timezone of the attendee, e.g. America/New_York or UTC.",
			},
			"notes": map[string]interface{}{
				"type":        "string",
				"description": "Optional meeting notes or agenda.",
			},
		},
		"required": []string{"event_type_id", "start", "attendee_name", "attendee_email", "attendee_timezone"},
	}
}

type CreateBookingInput struct {
	EventTypeID      int    `json:"event_type_id"`
	Start            string `json:"start"`
	AttendeeName     string `json:"attendee_name"`
	AttendeeEmail    string `json:"attendee_email"`
	AttendeeTimezone string `json:"attendee_timezone"`
	Notes            string `json:"notes"`
}

func (t *CreateBookingTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	// Parse input
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params CreateBookingInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	t.l.Infof(ctx, "create_booking: event_type=%d start=%s attendee=%s",
		params.EventTypeID, params.Start, params.AttendeeEmail)

	resp, err := t.client.CreateBooking(ctx, calcom.CreateBookingRequest{
		EventTypeID:      params.EventTypeID,
		Start:            params.Start,
		AttendeeName:     params.AttendeeName,
		AttendeeEmail:    params.AttendeeEmail,
		AttendeeTimezone: params.AttendeeTimezone,
		Notes:            params.Notes,
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Verify interface compliance
var _ agent.Tool = (*CreateBookingTool)(nil)
