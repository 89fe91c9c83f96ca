package feed

import (
	"context"
	"encoding/json"
	"time"

	"roomboard/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const snapshotCacheKey = "roomboard:snapshot"

// Poller drives the upstream fetch loop: once at startup, then on a fixed
// interval. Failures are logged and otherwise ignored; the previous
// snapshot keeps serving until a poll succeeds.
type Poller struct {
	Client   *Client
	Store    *Store
	Cache    *redis.Client
	Interval time.Duration
	Timeout  time.Duration
	Logger   *zap.Logger
}

// Run blocks until ctx is cancelled. An in-flight fetch that completes
// after cancellation is discarded rather than published.
func (p *Poller) Run(ctx context.Context) {
	p.pollOnce(ctx)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.Logger.Info("Feed poller shutdown signal received")
			return
		case <-ticker.C:
			p.pollOnce(ctx)
		}
	}
}

func (p *Poller) pollOnce(ctx context.Context) {
	pollID := uuid.New().String()
	fetchCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	rooms, bookings, err := p.Client.FetchAll(fetchCtx)
	if ctx.Err() != nil {
		// Shutdown raced the fetch; never publish after teardown.
		return
	}
	now := time.Now()
	if err != nil {
		p.Store.RecordFailure(err, now)
		p.Logger.Warn("Feed poll failed, keeping previous snapshot",
			zap.String("pollId", pollID), zap.Error(err))
		return
	}

	p.Store.Replace(rooms, bookings, now)
	p.Logger.Info("Feed poll succeeded",
		zap.String("pollId", pollID),
		zap.Int("rooms", len(rooms)),
		zap.Int("bookings", len(bookings)))

	p.persist(ctx)
}

// persist writes the current snapshot to Redis so a restart can show the
// last-known-good board before its first poll. Best effort only.
func (p *Poller) persist(ctx context.Context) {
	if p.Cache == nil {
		return
	}
	snap := p.Store.Current()
	data, err := json.Marshal(snap)
	if err != nil {
		p.Logger.Warn("Failed to marshal snapshot for cache", zap.Error(err))
		return
	}
	if err := p.Cache.Set(ctx, snapshotCacheKey, data, 0).Err(); err != nil {
		p.Logger.Warn("Failed to cache snapshot", zap.Error(err))
	}
}

// SeedFromCache loads a previously persisted snapshot into an empty store.
// Missing key, unreachable Redis, or an undecodable payload all leave the
// store empty.
func (p *Poller) SeedFromCache(ctx context.Context) {
	if p.Cache == nil {
		return
	}
	data, err := p.Cache.Get(ctx, snapshotCacheKey).Result()
	if err == redis.Nil {
		return
	}
	if err != nil {
		p.Logger.Warn("Failed to read cached snapshot", zap.Error(err))
		return
	}
	var snap models.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		p.Logger.Warn("Cached snapshot is corrupt, ignoring", zap.Error(err))
		return
	}
	if p.Store.Seed(snap) {
		p.Logger.Info("Seeded snapshot from cache",
			zap.Int("rooms", len(snap.Rooms)),
			zap.Int("bookings", len(snap.Bookings)),
			zap.Time("fetchedAt", snap.FetchedAt))
	}
}
