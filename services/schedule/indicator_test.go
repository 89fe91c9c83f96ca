package schedule

import (
	"math"
	"testing"
	"time"
)

func boardAt(t *testing.T, hour, minute int, zone *time.Location) *DefaultBoardService {
	t.Helper()
	instant := time.Date(2025, 6, 2, hour, minute, 0, 0, zone)
	return &DefaultBoardService{
		Window: DefaultWindow(),
		Clock:  FixedClock(instant),
		Zone:   zone,
	}
}

func TestNowIndicatorVisibility(t *testing.T) {
	cases := []struct {
		name    string
		hour    int
		minute  int
		visible bool
	}{
		{"minute before window", 5, 59, false},
		{"window start", 6, 0, true},
		{"mid morning", 9, 30, true},
		{"nominal end is inclusive", 18, 0, true},
		{"minute after nominal end", 18, 1, false},
		{"late evening", 22, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := boardAt(t, tc.hour, tc.minute, time.UTC)
			ind := svc.Now(nil)
			if ind.Visible != tc.visible {
				t.Fatalf("at %02d:%02d expected visible=%v, got %v", tc.hour, tc.minute, tc.visible, ind.Visible)
			}
		})
	}
}

func TestNowIndicatorPosition(t *testing.T) {
	t.Run("interpolates within nominal bounds", func(t *testing.T) {
		// 09:30 is 3.5 hours into a 13 column board.
		svc := boardAt(t, 9, 30, time.UTC)
		ind := svc.Now(nil)
		want := (3.0 + 0.5) / 13 * 100
		if math.Abs(ind.Percent-want) > 1e-9 {
			t.Fatalf("expected percent %v, got %v", want, ind.Percent)
		}
	})

	t.Run("at the nominal end the marker sits on the last column edge", func(t *testing.T) {
		svc := boardAt(t, 18, 0, time.UTC)
		ind := svc.Now(nil)
		want := 12.0 / 13 * 100
		if math.Abs(ind.Percent-want) > 1e-9 {
			t.Fatalf("expected percent %v, got %v", want, ind.Percent)
		}
	})

	t.Run("uses measured bounds when supplied", func(t *testing.T) {
		svc := boardAt(t, 6, 30, time.UTC)
		bounds := make([]float64, 14)
		// First column twice as wide as nominal.
		bounds[1] = 20
		for i := 2; i < 14; i++ {
			bounds[i] = 20 + float64(i-1)*(80.0/12)
		}
		ind := svc.Now(bounds)
		if math.Abs(ind.Percent-10) > 1e-9 {
			t.Fatalf("expected percent 10 halfway through a 20%% column, got %v", ind.Percent)
		}
	})

	t.Run("malformed measured bounds fall back to nominal", func(t *testing.T) {
		svc := boardAt(t, 6, 0, time.UTC)
		ind := svc.Now([]float64{0, 50, 25})
		if ind.Percent != 0 {
			t.Fatalf("expected nominal percent 0, got %v", ind.Percent)
		}
	})
}

func TestNowIndicatorZonePinning(t *testing.T) {
	// 20:30 UTC is 17:30 in the fixed UTC-3 reference zone: visible there,
	// hidden for a board pinned to UTC.
	instant := time.Date(2025, 6, 2, 20, 30, 0, 0, time.UTC)
	saoPaulo := time.FixedZone("-03", -3*60*60)

	pinned := &DefaultBoardService{Window: DefaultWindow(), Clock: FixedClock(instant), Zone: saoPaulo}
	if ind := pinned.Now(nil); !ind.Visible {
		t.Fatalf("expected indicator visible at 17:30 reference time, got hidden (nowMinutes=%d)", ind.NowMinutes)
	}

	utcBoard := &DefaultBoardService{Window: DefaultWindow(), Clock: FixedClock(instant), Zone: time.UTC}
	if ind := utcBoard.Now(nil); ind.Visible {
		t.Fatalf("expected indicator hidden at 20:30 UTC, got visible")
	}
}

func TestNowMinutes(t *testing.T) {
	instant := time.Date(2025, 6, 2, 12, 45, 59, 0, time.UTC)
	if got := NowMinutes(FixedClock(instant), time.UTC); got != 12*60+45 {
		t.Fatalf("NowMinutes = %d, want %d", got, 12*60+45)
	}
}
