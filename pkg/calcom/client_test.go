package calcom_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcom-assistant/pkg/calcom"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) calcom.ICalcom {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := calcom.New(calcom.Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})
	require.NoError(t, err)
	return client
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := calcom.New(calcom.Config{})
	require.Error(t, err)
}

func TestListEventTypes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/event-types", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "2024-06-14", r.Header.Get("cal-api-version"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","data":[
			{"id":101,"title":"Intro Call","lengthInMinutes":30,"description":"Quick chat","slug":"intro","hidden":false}
		]}`))
	})

	resp, err := client.ListEventTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 101, resp.Data[0].ID)
	assert.Equal(t, "Intro Call", resp.Data[0].Title)
	assert.Equal(t, 30, resp.Data[0].LengthInMinutes)
}

func TestGetAvailableSlots(t *testing.T) {
	t.Run("compacts and converts to UTC", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/slots", r.URL.Path)
			assert.Equal(t, "2024-09-04", r.Header.Get("cal-api-version"))
			assert.Equal(t, "101", r.URL.Query().Get("eventTypeId"))
			assert.Equal(t, "America/Los_Angeles", r.URL.Query().Get("timeZone"))

			// Starts carry a local offset; 14:00 -08:00 is 22:00 UTC.
			w.Write([]byte(`{"status":"success","data":{
				"2026-03-01":[{"start":"2026-03-01T14:00:00.000-08:00"}]
			}}`))
		})

		resp, err := client.GetAvailableSlots(context.Background(), calcom.GetSlotsRequest{
			EventTypeID: 101,
			StartDate:   "2026-03-01",
			EndDate:     "2026-03-02",
			TimeZone:    "America/Los_Angeles",
		})
		require.NoError(t, err)

		slots := resp.Data["2026-03-01"]
		require.Len(t, slots, 1)
		assert.Equal(t, "14:00", slots[0].LocalTime)
		assert.Equal(t, "2026-03-01T22:00:00Z", slots[0].UTC)
		assert.Equal(t, "America/Los_Angeles", resp.Timezone)
	})

	t.Run("filters UTC-bleed date keys", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success","data":{
				"2026-02-28":[{"start":"2026-02-28T23:00:00.000-08:00"}],
				"2026-03-01":[{"start":"2026-03-01T09:00:00.000-08:00"}],
				"2026-03-02":[{"start":"2026-03-02T09:00:00.000-08:00"}]
			}}`))
		})

		resp, err := client.GetAvailableSlots(context.Background(), calcom.GetSlotsRequest{
			EventTypeID: 101,
			StartDate:   "2026-03-01",
			EndDate:     "2026-03-02",
			TimeZone:    "America/Los_Angeles",
		})
		require.NoError(t, err)

		assert.Contains(t, resp.Data, "2026-03-01")
		assert.NotContains(t, resp.Data, "2026-02-28")
		assert.NotContains(t, resp.Data, "2026-03-02")
	})

	t.Run("zero-width window advances end by one day", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2026-03-01", r.URL.Query().Get("start"))
			assert.Equal(t, "2026-03-02", r.URL.Query().Get("end"))
			w.Write([]byte(`{"status":"success","data":{}}`))
		})

		_, err := client.GetAvailableSlots(context.Background(), calcom.GetSlotsRequest{
			EventTypeID: 101,
			StartDate:   "2026-03-01",
			EndDate:     "2026-03-01",
		})
		require.NoError(t, err)
	})
}

func TestCreateBooking(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)
		assert.Equal(t, "2024-08-13", r.Header.Get("cal-api-version"))

		w.Write([]byte(`{"status":"success","data":{"uid":"bk_123","title":"Intro Call","status":"accepted"}}`))
	})

	resp, err := client.CreateBooking(context.Background(), calcom.CreateBookingRequest{
		EventTypeID:      101,
		Start:            "2026-03-01T22:00:00Z",
		AttendeeName:     "Ada Lovelace",
		AttendeeEmail:    "ada@example.com",
		AttendeeTimezone: "America/Los_Angeles",
	})
	require.NoError(t, err)
	assert.Equal(t, "bk_123", resp.Data.UID)
}

func TestListBookings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "upcoming", r.URL.Query().Get("status"))
		assert.Empty(t, r.URL.Query().Get("attendeeEmail"))

		// Verbose fields the wrapper must not surface.
		w.Write([]byte(`{"status":"success","data":[
			{"uid":"bk_123","title":"Intro Call","status":"accepted",
			 "meetingUrl":"https://example.com/join","icsUid":"x","rating":5}
		]}`))
	})

	resp, err := client.ListBookings(context.Background(), calcom.ListBookingsRequest{
		Status: calcom.StatusUpcoming,
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "bk_123", resp.Data[0].UID)
}

func TestCancelAndReschedule(t *testing.T) {
	t.Run("cancel", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bookings/bk_123/cancel", r.URL.Path)
			w.Write([]byte(`{"status":"success","data":{"uid":"bk_123","status":"cancelled"}}`))
		})

		resp, err := client.CancelBooking(context.Background(), "bk_123", "conflict came up")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Data.Status)
	})

	t.Run("reschedule", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bookings/bk_123/reschedule", r.URL.Path)
			w.Write([]byte(`{"status":"success","data":{"uid":"bk_124","start":"2026-03-05T23:00:00Z"}}`))
		})

		resp, err := client.RescheduleBooking(context.Background(), "bk_123", "2026-03-05T23:00:00Z", "")
		require.NoError(t, err)
		assert.Equal(t, "bk_124", resp.Data.UID)
	})
}

func TestAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"status":"error","error":{"message":"User either already has booking at this time or is not available"}}`))
	})

	_, err := client.CreateBooking(context.Background(), calcom.CreateBookingRequest{
		EventTypeID: 101,
		Start:       "2026-03-01T22:00:00Z",
	})
	require.Error(t, err)

	var apiErr *calcom.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "already has booking")
}
