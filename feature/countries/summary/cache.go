package summary

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ArtifactCache keeps the last opened artifact in memory for a TTL and
// collapses concurrent loads into one sink read. It wraps a Sink and is one.
type ArtifactCache struct {
	sink Sink
	ttl  time.Duration

	mu         sync.RWMutex
	artifact   *Artifact
	expiresAt  time.Time
	generation uint64

	group singleflight.Group
}

var _ Sink = (*ArtifactCache)(nil)

// NewArtifactCache wraps sink. A ttl <= 0 keeps the artifact until the next Store.
func NewArtifactCache(sink Sink, ttl time.Duration) *ArtifactCache {
	return &ArtifactCache{sink: sink, ttl: ttl}
}

// Store writes through to the sink and drops the cached copy.
func (c *ArtifactCache) Store(ctx context.Context, rec Record) error {
	err := c.sink.Store(ctx, rec)
	c.Invalidate()
	return err
}

// Exists answers from the cache when possible.
func (c *ArtifactCache) Exists(ctx context.Context) (bool, error) {
	if _, ok := c.get(); ok {
		return true, nil
	}
	return c.sink.Exists(ctx)
}

// Open returns the cached artifact or loads it from the sink.
func (c *ArtifactCache) Open(ctx context.Context) (*Artifact, error) {
	if artifact, ok := c.get(); ok {
		return artifact, nil
	}

	// Loads started before an Invalidate neither share a flight with later loads nor fill the cache.
	gen := c.currentGeneration()
	v, err, _ := c.group.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		artifact, err := c.sink.Open(ctx)
		if err != nil {
			return nil, err
		}
		c.set(gen, artifact)
		return artifact, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Artifact), nil
}

// Invalidate drops the cached artifact and discards loads already in flight.
func (c *ArtifactCache) Invalidate() {
	c.mu.Lock()
	c.generation++
	c.artifact = nil
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}

func (c *ArtifactCache) get() (*Artifact, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.artifact == nil {
		return nil, false
	}
	if !c.expiresAt.IsZero() && time.Now().After(c.expiresAt) {
		return nil, false
	}
	return c.artifact, true
}

func (c *ArtifactCache) currentGeneration() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

func (c *ArtifactCache) set(gen uint64, artifact *Artifact) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.artifact = artifact
	c.expiresAt = time.Time{}
	if c.ttl > 0 {
		c.expiresAt = time.Now().Add(c.ttl)
	}
}
