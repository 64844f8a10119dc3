package calcom

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

const slotsNote = "Each slot has 't' (local display time) and 'u' (UTC ISO for booking). " +
	"Pass 'u' directly as the 'start' parameter to create_booking — " +
	"do NOT call local_to_utc for slot times."

// rawSlotsResponse is the wire shape of GET /slots before compaction.
type rawSlotsResponse struct {
	Status string `json:"status"`
	Data   map[string][]struct {
		Start string `json:"start"`
	} `json:"data"`
}

// GetAvailableSlots returns available start times for an event type
// within [StartDate, EndDate), compacted to {t, u} pairs per local date.
func (c *calcomImpl) GetAvailableSlots(ctx context.Context, req GetSlotsRequest) (*SlotsResponse, error) {
	start, err := time.Parse(DateFormat, req.StartDate)
	if err != nil {
		return nil, &APIError{StatusCode: 400, Body: "invalid start date " + strconv.Quote(req.StartDate)}
	}
	end, err := time.Parse(DateFormat, req.EndDate)
	if err != nil {
		return nil, &APIError{StatusCode: 400, Body: "invalid end date " + strconv.Quote(req.EndDate)}
	}

	// Zero-width windows return nothing; advance end by one day.
	if !end.After(start) {
		end = start.AddDate(0, 0, 1)
	}

	query := url.Values{}
	query.Set("eventTypeId", strconv.Itoa(req.EventTypeID))
	query.Set("start", start.Format(DateFormat))
	query.Set("end", end.Format(DateFormat))
	if req.TimeZone != "" {
		query.Set("timeZone", req.TimeZone)
	}

	var raw rawSlotsResponse
	if err := c.do(ctx, "GET", "/slots", versionSlots, query, nil, &raw); err != nil {
		return nil, err
	}

	loc, locErr := time.LoadLocation(req.TimeZone)
	if req.TimeZone == "" || locErr != nil {
		// Fall back to raw UTC extraction.
		loc = time.UTC
	}

	timezone := req.TimeZone
	if timezone == "" {
		timezone = "UTC"
	}

	compacted := make(map[string][]Slot)
	for dateKey, slots := range raw.Data {
		// cal.com interprets start/end as UTC but keys the response by
		// local date, which bleeds keys outside the requested local
		// range. Filter them out.
		keyDate, err := time.Parse(DateFormat, dateKey)
		if err != nil {
			continue
		}
		if keyDate.Before(start) || !keyDate.Before(end) {
			continue
		}

		entries := make([]Slot, 0, len(slots))
		for _, s := range slots {
			// Starts carry local offsets, e.g. 2026-03-01T14:00:00.000-08:00.
			// Convert explicitly so 'u' is true UTC, not local wall time
			// labelled Z.
			instant, err := time.Parse(time.RFC3339, s.Start)
			if err != nil {
				continue
			}
			entries = append(entries, Slot{
				LocalTime: instant.In(loc).Format(ClockFormat),
				UTC:       instant.UTC().Format(UTCFormat),
			})
		}
		compacted[dateKey] = entries
	}

	return &SlotsResponse{
		Status:   raw.Status,
		Timezone: timezone,
		Note:     slotsNote,
		Data:     compacted,
	}, nil
}
