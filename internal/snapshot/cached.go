package snapshot

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const cacheKey = "snapshot"

// CachedProvider memoizes another provider's snapshot for a TTL. Concurrent
// misses share a single load.
type CachedProvider struct {
	next Provider
	ttl  time.Duration
	data *gocache.Cache
	fill sync.Mutex
}

// NewCachedProvider wraps next. A non-positive ttl disables caching.
func NewCachedProvider(next Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		next: next,
		ttl:  ttl,
		data: gocache.New(ttl, 2*ttl),
	}
}

func (p *CachedProvider) Current(ctx context.Context) (*Snapshot, error) {
	if p.ttl <= 0 {
		return p.next.Current(ctx)
	}
	if snap, ok := p.lookup(); ok {
		return snap, nil
	}

	p.fill.Lock()
	defer p.fill.Unlock()
	if snap, ok := p.lookup(); ok {
		return snap, nil
	}
	snap, err := p.next.Current(ctx)
	if err != nil {
		return nil, err
	}
	p.data.Set(cacheKey, snap, p.ttl)
	return snap, nil
}

// Invalidate drops the memoized snapshot.
func (p *CachedProvider) Invalidate() {
	p.data.Delete(cacheKey)
}

func (p *CachedProvider) lookup() (*Snapshot, bool) {
	v, ok := p.data.Get(cacheKey)
	if !ok {
		return nil, false
	}
	snap, ok := v.(*Snapshot)
	return snap, ok
}
