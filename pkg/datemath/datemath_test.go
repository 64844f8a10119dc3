package datemath_test

import (
	"strings"
	"testing"
	"time"

	"calcom-assistant/pkg/datemath"
)

func TestResolveOffset(t *testing.T) {
	t.Run("today", func(t *testing.T) {
		res, err := datemath.ResolveOffset(0, "UTC")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := time.Now().UTC().Format(datemath.DateFormat)
		if res.Date != want {
			t.Errorf("expected %s, got %s", want, res.Date)
		}
		if res.Weekday == "" || res.Display == "" {
			t.Errorf("expected weekday and display to be set: %+v", res)
		}
	})

	t.Run("tomorrow", func(t *testing.T) {
		res, err := datemath.ResolveOffset(1, "UTC")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := time.Now().UTC().AddDate(0, 0, 1).Format(datemath.DateFormat)
		if res.Date != want {
			t.Errorf("expected %s, got %s", want, res.Date)
		}
	})

	t.Run("unknown timezone", func(t *testing.T) {
		_, err := datemath.ResolveOffset(0, "Mars/Olympus_Mons")
		if err == nil {
			t.Fatal("expected error for unknown timezone")
		}
		if !strings.Contains(err.Error(), "IANA") {
			t.Errorf("error should point at IANA naming: %v", err)
		}
	})
}

func TestLocalToUTC(t *testing.T) {
	t.Run("winter offset", func(t *testing.T) {
		// PST is UTC-8 in January.
		conv, err := datemath.LocalToUTC("2026-01-15", "14:00", "America/Los_Angeles")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if conv.UTCISO != "2026-01-15T22:00:00Z" {
			t.Errorf("expected 2026-01-15T22:00:00Z, got %s", conv.UTCISO)
		}
	})

	t.Run("summer offset crosses DST", func(t *testing.T) {
		// PDT is UTC-7 in July.
		conv, err := datemath.LocalToUTC("2026-07-15", "14:00", "America/Los_Angeles")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if conv.UTCISO != "2026-07-15T21:00:00Z" {
			t.Errorf("expected 2026-07-15T21:00:00Z, got %s", conv.UTCISO)
		}
	})

	t.Run("date rolls over near midnight", func(t *testing.T) {
		conv, err := datemath.LocalToUTC("2026-03-04", "23:00", "America/Los_Angeles")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if conv.UTCDate != "2026-03-05" {
			t.Errorf("expected UTC date 2026-03-05, got %s", conv.UTCDate)
		}
	})

	t.Run("invalid clock", func(t *testing.T) {
		if _, err := datemath.LocalToUTC("2026-03-04", "25:99", "UTC"); err == nil {
			t.Fatal("expected error for invalid clock time")
		}
	})
}

func TestUTCToLocal(t *testing.T) {
	t.Run("converts with milliseconds suffix", func(t *testing.T) {
		lt, err := datemath.UTCToLocal("2026-03-05T00:00:00.000Z", "America/Los_Angeles")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if lt.LocalDate != "2026-03-04" {
			t.Errorf("expected 2026-03-04, got %s", lt.LocalDate)
		}
		if lt.LocalTime != "16:00" {
			t.Errorf("expected 16:00, got %s", lt.LocalTime)
		}
	})

	t.Run("invalid datetime", func(t *testing.T) {
		if _, err := datemath.UTCToLocal("not-a-time", "UTC"); err == nil {
			t.Fatal("expected error for malformed datetime")
		}
	})
}
