package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"calcom-assistant/internal/agent"
	"calcom-assistant/pkg/calcom"
	pkgLog "calcom-assistant/pkg/log"
)

type CancelBookingTool struct {
	client calcom.ICalcom
	l      pkgLog.Logger
}

func NewCancelBookingTool(client calcom.ICalcom, l pkgLog.Logger) *CancelBookingTool {
	return &CancelBookingTool{
		client: client,
		l:      l,
	}
}

func (t *CancelBookingTool) Name() string {
	return "cancel_booking"
}

func (t *CancelBookingTool) Description() string {
	return "Cancel an existing cal.com booking by its UID. " +
		"First list bookings to find the correct UID."
}

func (t *CancelBookingTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"booking_uid": map[string]interface{}{
				"type":        "string",
				"description": "Unique identifier of the booking to cancel.",
			},
			"cancellation_reason": map[string]interface{}{
				"type": "string",
				"description": "Optional reason for cancellation. " +
					"Do NOT ask the user for this — if they have not already " +
					"provided a reason, omit this field and proceed with " +
					"cancellation immediately.",
			},
		},
		"required": []string{"booking_uid"},
	}
}

type CancelBookingInput struct {
	BookingUID         string `json:"booking_uid"`
	CancellationReason string `json:"cancellation_reason"`
}

func (t *CancelBookingTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	// Parse input
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params CancelBookingInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	t.l.Infof(ctx, "cancel_booking: uid=%s", params.BookingUID)

	resp, err := t.client.CancelBooking(ctx, params.BookingUID, params.CancellationReason)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Verify interface compliance
var _ agent.Tool = (*CancelBookingTool)(nil)
