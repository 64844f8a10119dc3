// The three timezone helpers the model is told to use instead of doing
// date arithmetic itself. They are pure computations over pkg/datemath,
// no API access, so they share a file.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"calcom-assistant/internal/agent"
	"calcom-assistant/pkg/datemath"
)

// ResolveDateTool turns relative day references into exact dates.
type ResolveDateTool struct{}

func NewResolveDateTool() *ResolveDateTool {
	return &ResolveDateTool{}
}

func (t *ResolveDateTool) Name() string {
	return "resolve_date"
}

func (t *ResolveDateTool) Description() string {
	return "Resolve a relative day reference (today, tomorrow, day after tomorrow, " +
		"yesterday, N days from now, etc.) to an exact YYYY-MM-DD date in the " +
		"user's local timezone. ALWAYS call this instead of calculating dates " +
		"yourself whenever the user uses a relative expression like 'tomorrow', " +
		"'next week', 'in 3 days', etc."
}

func (t *ResolveDateTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"offset_days": map[string]interface{}{
				"type": "integer",
				"description": "Number of days from today: 0 = today, 1 = tomorrow, " +
					"2 = day after tomorrow, -1 = yesterday, 7 = one week from today, etc.",
			},
			"timezone": map[string]interface{}{
				"type":        "string",
				"description": "IANA timezone of the user, e.g. America/Los_Angeles.",
			},
		},
		"required": []string{"offset_days", "timezone"},
	}
}

type ResolveDateInput struct {
	OffsetDays int    `json:"offset_days"`
	Timezone   string `json:"timezone"`
}

func (t *ResolveDateTool) Execute(_ context.Context, input map[string]interface{}) (interface{}, error) {
	var params ResolveDateInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	return datemath.ResolveOffset(params.OffsetDays, params.Timezone)
}

// LocalToUTCTool converts a local wall-clock time to UTC for booking.
type LocalToUTCTool struct{}

func NewLocalToUTCTool() *LocalToUTCTool {
	return &LocalToUTCTool{}
}

func (t *LocalToUTCTool) Name() string {
	return "local_to_utc"
}

func (t *LocalToUTCTool) Description() string {
	return "Convert a user's local date and time to a UTC ISO 8601 string. " +
		"ALWAYS call this before create_booking or reschedule_booking to get " +
		"the correct UTC start time. Never compute UTC offsets manually."
}

func (t *LocalToUTCTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"date": map[string]interface{}{
				"type":        "string",
				"description": "Local date in YYYY-MM-DD format, e.g. 2026-03-04.",
			},
			"time": map[string]interface{}{
				"type":        "string",
				"description": "Local time in HH:MM 24-hour format, e.g. 16:00 for 4 PM.",
			},
			"timezone": map[string]interface{}{
				"type":        "string",
				"description": "IANA timezone of the user, e.g. America/Los_Angeles.",
			},
		},
		"required": []string{"date", "time", "timezone"},
	}
}

type LocalToUTCInput struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}

func (t *LocalToUTCTool) Execute(_ context.Context, input map[string]interface{}) (interface{}, error) {
	var params LocalToUTCInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	return datemath.LocalToUTC(params.Date, params.Time, params.Timezone)
}

// UTCToLocalTool converts API UTC timestamps into the user's timezone.
type UTCToLocalTool struct{}

func NewUTCToLocalTool() *UTCToLocalTool {
	return &UTCToLocalTool{}
}

func (t *UTCToLocalTool) Name() string {
	return "utc_to_local"
}

func (t *UTCToLocalTool) Description() string {
	return "Convert a UTC ISO 8601 datetime (as returned by the Cal.com API) " +
		"to the user's local timezone for display. Always call this when " +
		"showing booking times back to the user."
}

func (t *UTCToLocalTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"utc_iso": map[string]interface{}{
				"type":        "string",
				"description": "UTC datetime string from the API, e.g. 2026-03-05T00:00:00.000Z.",
			},
			"timezone": map[string]interface{}{
				"type":        "string",
				"description": "IANA timezone to convert into, e.g. America/Los_Angeles.",
			},
		},
		"required": []string{"utc_iso", "timezone"},
	}
}

type UTCToLocalInput struct {
	UTCISO   string `json:"utc_iso"`
	Timezone string `json:"timezone"`
}

func (t *UTCToLocalTool) Execute(_ context.Context, input map[string]interface{}) (interface{}, error) {
	var params UTCToLocalInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	return datemath.UTCToLocal(params.UTCISO, params.Timezone)
}

func decodeInput(input map[string]interface{}, out interface{}) error {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}
	if err := json.Unmarshal(inputBytes, out); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	return nil
}

// Verify interface compliance
var (
	_ agent.Tool = (*ResolveDateTool)(nil)
	_ agent.Tool = (*LocalToUTCTool)(nil)
	_ agent.Tool = (*UTCToLocalTool)(nil)
)
