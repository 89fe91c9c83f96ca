package animator

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestAnimator(blocks func() []string) *Animator {
	return New(blocks, 1800*time.Millisecond, 1200*time.Millisecond, zap.NewNop())
}

func TestAnimator(t *testing.T) {
	t.Run("no visible blocks means no animation", func(t *testing.T) {
		a := newTestAnimator(func() []string { return nil })
		now := time.Now()
		a.Tick(now)
		if got := a.Active(now); len(got) != 0 {
			t.Fatalf("expected no active animations, got %v", got)
		}
	})

	t.Run("animates only keys from the visible set", func(t *testing.T) {
		keys := []string{"a_09:00_10:00_09:00_0", "b_10:00_11:00_10:00_0"}
		a := newTestAnimator(func() []string { return keys })
		now := time.Now()

		for i := 0; i < 20; i++ {
			a.Tick(now)
		}

		valid := map[string]bool{keys[0]: true, keys[1]: true}
		for key, animation := range a.Active(now) {
			if !valid[key] {
				t.Fatalf("animated unknown key %q", key)
			}
			found := false
			for _, known := range Animations {
				if animation == known {
					found = true
				}
			}
			if !found {
				t.Fatalf("unknown animation %q", animation)
			}
		}
	})

	t.Run("animation expires after the decay period", func(t *testing.T) {
		a := newTestAnimator(func() []string { return []string{"only"} })
		now := time.Now()
		a.Tick(now)

		if got := a.Active(now); len(got) != 1 {
			t.Fatalf("expected 1 active animation, got %d", len(got))
		}
		if got := a.Active(now.Add(1100 * time.Millisecond)); len(got) != 1 {
			t.Fatalf("expected animation still active inside decay window, got %d", len(got))
		}
		if got := a.Active(now.Add(1300 * time.Millisecond)); len(got) != 0 {
			t.Fatalf("expected animation expired after decay, got %v", got)
		}
	})
}
