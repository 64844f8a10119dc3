package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"calcom-assistant/internal/agent"
	"calcom-assistant/pkg/calcom"
	pkgLog "calcom-assistant/pkg/log"
)

type GetAvailableSlotsTool struct {
	client calcom.ICalcom
	l      pkgLog.Logger
}

func NewGetAvailableSlotsTool(client calcom.ICalcom, l pkgLog.Logger) *GetAvailableSlotsTool {
	return &GetAvailableSlotsTool{
		client: client,
		l:      l,
	}
}

func (t *GetAvailableSlotsTool) Name() string {
	return "get_available_slots"
}

func (t *GetAvailableSlotsTool) Description() string {
	return "Retrieve available time slots for a specific cal.com event type " +
		"within a date/time range. Use this after the user has chosen an " +
		"event type and specified when they want to meet."
}

func (t *GetAvailableSlotsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"event_type_id": map[string]interface{}{
				"type":        "integer",
				"description": "The numeric ID of the event type.",
			},
			"start_time": map[string]interface{}{
				"type":        "string",
				"description": "Start of the search window as a date string in YYYY-MM-DD format, e.g. 2024-01-15",
			},
			"end_time": map[string]interface{}{
				"type":        "string",
				"description": "End of the search window as a date string in YYYY-MM-DD format (exclusive upper bound), e.g. 2024-01-21",
			},
			"time_zone": map[string]interface{}{
				"type": "string",
				"description": "IANA timezone of the attendee, e.g. America/New_York or America/Los_Angeles. " +
					"Slots are returned in this timezone so the times match the attendee's local clock. " +
					"Always pass this so the attendee's requested time (e.g. '2pm') can be matched directly.",
			},
		},
		"required": []string{"event_type_id", "start_time", "end_time"},
	}
}

type GetAvailableSlotsInput struct {
	EventTypeID int    `json:"event_type_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	TimeZone    string `json:"time_zone"`
}

func (t *GetAvailableSlotsTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	// Parse input
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params GetAvailableSlotsInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	t.l.Infof(ctx, "get_available_slots: event_type=%d window=%s..%s tz=%s",
		params.EventTypeID, params.StartTime, params.EndTime, params.TimeZone)

	resp, err := t.client.GetAvailableSlots(ctx, calcom.GetSlotsRequest{
		EventTypeID: params.EventTypeID,
		StartDate:   params.StartTime,
		EndDate:     params.EndTime,
		TimeZone:    params.TimeZone,
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Verify interface compliance
var _ agent.Tool = (*GetAvailableSlotsTool)(nil)
