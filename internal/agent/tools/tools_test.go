package tools_test

import (
	"context"
	"errors"
	"testing"

	"calcom-assistant/internal/agent/tools"
	"calcom-assistant/pkg/calcom"
	"calcom-assistant/pkg/datemath"
)

// mockLogger
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockCalcomClient records the last request per operation.
type mockCalcomClient struct {
	eventTypes *calcom.EventTypesResponse
	slots      *calcom.SlotsResponse
	booking    *calcom.BookingResponse
	bookings   *calcom.BookingsResponse
	err        error

	lastSlotsReq    calcom.GetSlotsRequest
	lastCreateReq   calcom.CreateBookingRequest
	lastListReq     calcom.ListBookingsRequest
	lastCancelUID   string
	lastReason      string
	lastRescheduled struct {
		uid      string
		newStart string
		by       string
	}
}

func (m *mockCalcomClient) ListEventTypes(ctx context.Context) (*calcom.EventTypesResponse, error) {
	return m.eventTypes, m.err
}

func (m *mockCalcomClient) GetAvailableSlots(ctx context.Context, req calcom.GetSlotsRequest) (*calcom.SlotsResponse, error) {
	m.lastSlotsReq = req
	return m.slots, m.err
}

func (m *mockCalcomClient) CreateBooking(ctx context.Context, req calcom.CreateBookingRequest) (*calcom.BookingResponse, error) {
	m.lastCreateReq = req
	return m.booking, m.err
}

func (m *mockCalcomClient) ListBookings(ctx context.Context, req calcom.ListBookingsRequest) (*calcom.BookingsResponse, error) {
	m.lastListReq = req
	return m.bookings, m.err
}

func (m *mockCalcomClient) CancelBooking(ctx context.Context, uid, reason string) (*calcom.BookingResponse, error) {
	m.lastCancelUID = uid
	m.lastReason = reason
	return m.booking, m.err
}

func (m *mockCalcomClient) RescheduleBooking(ctx context.Context, uid, newStart, rescheduledBy string) (*calcom.BookingResponse, error) {
	m.lastRescheduled.uid = uid
	m.lastRescheduled.newStart = newStart
	m.lastRescheduled.by = rescheduledBy
	return m.booking, m.err
}

func TestListEventTypesTool(t *testing.T) {
	client := &mockCalcomClient{
		eventTypes: &calcom.EventTypesResponse{
			Status: "success",
			Data:   []calcom.EventType{{ID: 101, Title: "30 Min Meeting", LengthInMinutes: 30}},
		},
	}
	tool := tools.NewListEventTypesTool(client, &mockLogger{})

	if tool.Name() != "list_event_types" {
		t.Errorf("unexpected name %q", tool.Name())
	}

	out, err := tool.Execute(context.Background(), map[string]interface{}{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, ok := out.(*calcom.EventTypesResponse)
	if !ok {
		t.Fatalf("unexpected output type %T", out)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != 101 {
		t.Errorf("unexpected response data: %+v", resp.Data)
	}
}

func TestGetAvailableSlotsTool_MapsInput(t *testing.T) {
	client := &mockCalcomClient{slots: &calcom.SlotsResponse{Status: "success"}}
	tool := tools.NewGetAvailableSlotsTool(client, &mockLogger{})

	// JSON numbers arrive as float64, same as provider output.
	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"event_type_id": float64(101),
		"start_time":    "2026-03-02",
		"end_time":      "2026-03-06",
		"time_zone":     "America/Los_Angeles",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := client.lastSlotsReq
	if got.EventTypeID != 101 || got.StartDate != "2026-03-02" || got.EndDate != "2026-03-06" || got.TimeZone != "America/Los_Angeles" {
		t.Errorf("request not mapped: %+v", got)
	}
}

func TestCreateBookingTool_MapsInput(t *testing.T) {
	client := &mockCalcomClient{booking: &calcom.BookingResponse{Status: "success"}}
	tool := tools.NewCreateBookingTool(client, &mockLogger{})

	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"event_type_id":     float64(101),
		"start":             "2026-03-05T23:00:00Z",
		"attendee_name":     "Jordan Lee",
		"attendee_email":    "jordan@example.com",
		"attendee_timezone": "America/New_York",
		"notes":             "Quarterly sync",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := client.lastCreateReq
	if got.EventTypeID != 101 || got.Start != "2026-03-05T23:00:00Z" {
		t.Errorf("booking target not mapped: %+v", got)
	}
	if got.AttendeeName != "Jordan Lee" || got.AttendeeEmail != "jordan@example.com" || got.AttendeeTimezone != "America/New_York" {
		t.Errorf("attendee not mapped: %+v", got)
	}
	if got.Notes != "Quarterly sync" {
		t.Errorf("notes not mapped: %q", got.Notes)
	}
}

func TestListBookingsTool_Filters(t *testing.T) {
	client := &mockCalcomClient{bookings: &calcom.BookingsResponse{Status: "success"}}
	tool := tools.NewListBookingsTool(client, &mockLogger{})

	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"status": "upcoming",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastListReq.Status != "upcoming" || client.lastListReq.AttendeeEmail != "" {
		t.Errorf("filters not mapped: %+v", client.lastListReq)
	}
}

func TestCancelBookingTool(t *testing.T) {
	client := &mockCalcomClient{booking: &calcom.BookingResponse{Status: "success"}}
	tool := tools.NewCancelBookingTool(client, &mockLogger{})

	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"booking_uid":         "abc123",
		"cancellation_reason": "conflict",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastCancelUID != "abc123" || client.lastReason != "conflict" {
		t.Errorf("cancel args not mapped: uid=%q reason=%q", client.lastCancelUID, client.lastReason)
	}
}

func TestRescheduleBookingTool(t *testing.T) {
	client := &mockCalcomClient{booking: &calcom.BookingResponse{Status: "success"}}
	tool := tools.NewRescheduleBookingTool(client, &mockLogger{})

	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"booking_uid": "abc123",
		"new_start":   "2026-03-05T23:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastRescheduled.uid != "abc123" || client.lastRescheduled.newStart != "2026-03-05T23:00:00Z" {
		t.Errorf("reschedule args not mapped: %+v", client.lastRescheduled)
	}
}

func TestCalcomToolError_Propagates(t *testing.T) {
	wantErr := &calcom.APIError{StatusCode: 404, Body: `{"error":"booking not found"}`}
	client := &mockCalcomClient{err: wantErr}
	tool := tools.NewCancelBookingTool(client, &mockLogger{})

	_, err := tool.Execute(context.Background(), map[string]interface{}{"booking_uid": "nope"})
	var apiErr *calcom.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("unexpected status: %d", apiErr.StatusCode)
	}
}

func TestLocalToUTCTool(t *testing.T) {
	tool := tools.NewLocalToUTCTool()

	out, err := tool.Execute(context.Background(), map[string]interface{}{
		"date":     "2026-01-15",
		"time":     "14:00",
		"timezone": "America/Los_Angeles",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conv, ok := out.(datemath.Conversion)
	if !ok {
		t.Fatalf("unexpected output type %T", out)
	}
	// January is PST (UTC-8).
	if conv.UTCISO != "2026-01-15T22:00:00Z" {
		t.Errorf("got %q", conv.UTCISO)
	}
}

func TestUTCToLocalTool(t *testing.T) {
	tool := tools.NewUTCToLocalTool()

	out, err := tool.Execute(context.Background(), map[string]interface{}{
		"utc_iso":  "2026-01-15T22:00:00Z",
		"timezone": "America/Los_Angeles",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	local, ok := out.(datemath.LocalTime)
	if !ok {
		t.Fatalf("unexpected output type %T", out)
	}
	if local.LocalDate != "2026-01-15" || local.LocalTime != "14:00" {
		t.Errorf("got %+v", local)
	}
}

func TestResolveDateTool_InvalidTimezone(t *testing.T) {
	tool := tools.NewResolveDateTool()

	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"offset_days": float64(1),
		"timezone":    "Mars/Olympus_Mons",
	})
	if err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}
