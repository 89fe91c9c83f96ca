package animator

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Animation names match the display stylesheet's keyframe classes.
var Animations = []string{"inflate-pop", "shake", "pulse", "color-flash"}

// Animator is the decorative subsystem: every cycle it picks one visible
// booking block at random and tags it with a random animation that decays
// after a fixed period. It is fully separable from the layout engine and
// never influences what the grid computes.
type Animator struct {
	mu     sync.Mutex
	active map[string]entry

	// Blocks enumerates the keys of currently visible blocks.
	Blocks func() []string
	Cycle  time.Duration
	Decay  time.Duration
	Logger *zap.Logger

	rng *rand.Rand
}

type entry struct {
	animation string
	expiresAt time.Time
}

// New builds an animator over the given visible-block source.
func New(blocks func() []string, cycle, decay time.Duration, logger *zap.Logger) *Animator {
	return &Animator{
		active: make(map[string]entry),
		Blocks: blocks,
		Cycle:  cycle,
		Decay:  decay,
		Logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run ticks the animator until ctx is cancelled.
func (a *Animator) Run(ctx context.Context) {
	ticker := time.NewTicker(a.Cycle)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.Logger.Info("Animator shutdown signal received")
			return
		case <-ticker.C:
			a.Tick(time.Now())
		}
	}
}

// Tick runs one animation cycle at the given instant.
func (a *Animator) Tick(now time.Time) {
	keys := a.Blocks()
	if len(keys) == 0 {
		return
	}
	key := keys[a.rng.Intn(len(keys))]
	animation := Animations[a.rng.Intn(len(Animations))]

	a.mu.Lock()
	defer a.mu.Unlock()
	a.active[key] = entry{animation: animation, expiresAt: now.Add(a.Decay)}
}

// Active returns the animations still in their decay period, keyed by
// block key. Expired entries are pruned on the way out.
func (a *Animator) Active(now time.Time) map[string]string {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make(map[string]string, len(a.active))
	for key, e := range a.active {
		if now.After(e.expiresAt) {
			delete(a.active, key)
			continue
		}
		out[key] = e.animation
	}
	return out
}
