package schedule

import (
	"reflect"
	"testing"

	"roomboard/models"
)

func TestBookingsForHour(t *testing.T) {
	t.Run("booking outside the hour never appears", func(t *testing.T) {
		cases := []struct {
			name  string
			start string
			end   string
		}{
			{"ends before hour", "07:00", "08:00"},
			{"ends exactly at hour start", "08:00", "09:00"},
			{"starts exactly at hour end", "10:00", "11:00"},
			{"starts after hour", "11:30", "12:00"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := BookingsForHour("Alan Turing", "09:00", []models.Booking{
					{Room: "Alan Turing", Start: tc.start, End: tc.end},
				})
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(got) != 0 {
					t.Fatalf("expected no intervals, got %v", got)
				}
			})
		}
	})

	t.Run("overlapping booking is clamped into the hour", func(t *testing.T) {
		got, err := BookingsForHour("Alan Turing", "09:00", []models.Booking{
			{Room: "Alan Turing", Start: "08:30", End: "10:30"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 interval, got %d", len(got))
		}
		if got[0].StartMinute != 540 || got[0].EndMinute != 600 {
			t.Fatalf("expected clamp to [540, 600], got [%d, %d]", got[0].StartMinute, got[0].EndMinute)
		}
	})

	t.Run("exact hour booking fills the hour and only that hour", func(t *testing.T) {
		b := []models.Booking{{Room: "Ada Lovelace", Start: "09:00", End: "10:00"}}

		in9, err := BookingsForHour("Ada Lovelace", "09:00", b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(in9) != 1 {
			t.Fatalf("expected booking in 09:00 slot, got %d intervals", len(in9))
		}
		left, width := layoutPercents(in9[0], 540)
		if left != 0 || width != 100 {
			t.Fatalf("expected left=0 width=100, got left=%v width=%v", left, width)
		}

		in10, err := BookingsForHour("Ada Lovelace", "10:00", b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(in10) != 0 {
			t.Fatalf("expected no booking in 10:00 slot, got %v", in10)
		}
	})

	t.Run("other rooms are filtered out", func(t *testing.T) {
		got, err := BookingsForHour("Ada Lovelace", "09:00", []models.Booking{
			{Room: "Alan Turing", Start: "09:00", End: "10:00"},
			{Room: "Ada Lovelace", Start: "09:15", End: "09:45"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Booking.Room != "Ada Lovelace" {
			t.Fatalf("expected only Ada Lovelace's booking, got %v", got)
		}
	})

	t.Run("result order follows input order", func(t *testing.T) {
		bookings := []models.Booking{
			{Room: "Ada Lovelace", Start: "09:30", End: "09:45"},
			{Room: "Ada Lovelace", Start: "09:00", End: "09:15"},
			{Room: "Ada Lovelace", Start: "09:10", End: "09:40"},
		}
		got, err := BookingsForHour("Ada Lovelace", "09:00", bookings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 intervals, got %d", len(got))
		}
		for i := range bookings {
			if got[i].Booking != bookings[i] {
				t.Fatalf("interval %d out of order: got %v, want %v", i, got[i].Booking, bookings[i])
			}
		}
	})

	t.Run("pure function, identical inputs give identical outputs", func(t *testing.T) {
		bookings := []models.Booking{
			{Room: "Ada Lovelace", Start: "08:30", End: "09:30"},
			{Room: "Ada Lovelace", Start: "09:15", End: "09:45"},
		}
		first, err := BookingsForHour("Ada Lovelace", "09:00", bookings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := BookingsForHour("Ada Lovelace", "09:00", bookings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("repeated calls disagree: %v vs %v", first, second)
		}
	})

	t.Run("malformed booking time propagates an error", func(t *testing.T) {
		_, err := BookingsForHour("Ada Lovelace", "09:00", []models.Booking{
			{Room: "Ada Lovelace", Start: "nine", End: "10:00"},
		})
		if err == nil {
			t.Fatal("expected parse error, got none")
		}
	})
}

func TestLayoutPercents(t *testing.T) {
	t.Run("short booking gets the minimum width floor", func(t *testing.T) {
		ci := models.ClampedInterval{StartMinute: 540, EndMinute: 545}
		left, width := layoutPercents(ci, 540)
		if left != 0 {
			t.Fatalf("expected left=0, got %v", left)
		}
		if width != 25 {
			t.Fatalf("expected floored width 25, got %v", width)
		}
	})

	t.Run("floor does not alter the clamped interval", func(t *testing.T) {
		got, err := BookingsForHour("Ada Lovelace", "09:00", []models.Booking{
			{Room: "Ada Lovelace", Start: "09:00", End: "09:05"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].EndMinute-got[0].StartMinute != 5 {
			t.Fatalf("expected 5 minute interval, got %d", got[0].EndMinute-got[0].StartMinute)
		}
	})

	t.Run("half hour in the middle of the cell", func(t *testing.T) {
		ci := models.ClampedInterval{StartMinute: 555, EndMinute: 585}
		left, width := layoutPercents(ci, 540)
		if left != 25 || width != 50 {
			t.Fatalf("expected left=25 width=50, got left=%v width=%v", left, width)
		}
	})
}
