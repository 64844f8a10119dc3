package calcom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// calcomImpl is the internal implementation of ICalcom.
type calcomImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newCalcomImpl(cfg Config) *calcomImpl {
	return &calcomImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// ListEventTypes returns all event types for the authenticated user.
func (c *calcomImpl) ListEventTypes(ctx context.Context) (*EventTypesResponse, error) {
	var out EventTypesResponse
	if err := c.do(ctx, http.MethodGet, "/event-types", versionEventTypes, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBooking creates a new booking.
func (c *calcomImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	payload := map[string]interface{}{
		"eventTypeId": req.EventTypeID,
		"start":       req.Start,
		"attendee": Attendee{
			Name:     req.AttendeeName,
			Email:    req.AttendeeEmail,
			TimeZone: req.AttendeeTimezone,
		},
	}
	if req.Notes != "" {
		payload["bookingFieldsResponses"] = map[string]string{"notes": req.Notes}
	}

	var out BookingResponse
	if err := c.do(ctx, http.MethodPost, "/bookings", versionBookings, nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBookings returns bookings, optionally filtered.
func (c *calcomImpl) ListBookings(ctx context.Context, req ListBookingsRequest) (*BookingsResponse, error) {
	query := url.Values{}
	if req.AttendeeEmail != "" {
		query.Set("attendeeEmail", req.AttendeeEmail)
	}
	if req.Status != "" {
		query.Set("status", req.Status)
	}

	var out BookingsResponse
	if err := c.do(ctx, http.MethodGet, "/bookings", versionBookings, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelBooking cancels a booking identified by its UID.
func (c *calcomImpl) CancelBooking(ctx context.Context, uid, reason string) (*BookingResponse, error) {
	payload := map[string]interface{}{}
	if reason != "" {
		payload["cancellationReason"] = reason
	}

	var out BookingResponse
	path := fmt.Sprintf("/bookings/%s/cancel", uid)
	if err := c.do(ctx, http.MethodPost, path, versionBookings, nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RescheduleBooking moves an existing booking to a new start time.
func (c *calcomImpl) RescheduleBooking(ctx context.Context, uid, newStart, rescheduledBy string) (*BookingResponse, error) {
	payload := map[string]interface{}{"start": newStart}
	if rescheduledBy != "" {
		payload["rescheduledBy"] = rescheduledBy
	}

	var out BookingResponse
	path := fmt.Sprintf("/bookings/%s/reschedule", uid)
	if err := c.do(ctx, http.MethodPost, path, versionBookings, nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do issues one request against the cal.com API and decodes the 2xx
// body into out. Non-2xx responses become *APIError with the remote
// payload attached; transport failures are wrapped and returned as is.
func (c *calcomImpl) do(ctx context.Context, method, path, apiVersion string, query url.Values, payload, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("calcom: failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("calcom: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("cal-api-version", apiVersion)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("calcom: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("calcom: failed to decode response: %w", err)
	}
	return nil
}
