package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	c, err := New(DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(c.Stop)
	return c
}

// TestNew_RejectsNonPositiveTTL verifies misconfiguration is a construction
// error, not a runtime condition.
func TestNew_RejectsNonPositiveTTL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StockLevelsTTL = 0
	_, err := New(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.SweepInterval = -time.Second
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGet_MissOnUntouchedKey(t *testing.T) {
	c := newTestCache(t)

	_, ok := c.Get(Key(NSStockLevels, map[string]string{"page": "1"}))
	assert.False(t, ok)
}

func TestSetThenGet_ReturnsValue(t *testing.T) {
	c := newTestCache(t)

	key := Key(NSSummaryMetrics, nil)
	c.Set(key, "metrics", time.Minute)

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "metrics", got)
}

func TestSet_OverwritesExistingEntry(t *testing.T) {
	c := newTestCache(t)

	c.Set("k", "first", time.Minute)
	c.Set("k", "second", time.Minute)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", got)
	assert.Equal(t, 1, c.Len())
}

// TestGet_ExpiredEntryIsMissAndEvicted drives the clock forward past the TTL
// and checks the entry is both missed and removed.
func TestGet_ExpiredEntryIsMissAndEvicted(t *testing.T) {
	c := newTestCache(t)

	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("k", 42, 30*time.Second)

	now = now.Add(30 * time.Second) // exactly the TTL: already stale
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestSweep_RemovesExpiredEntries(t *testing.T) {
	c := newTestCache(t)

	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("stale", 1, 10*time.Second)
	c.Set("live", 2, 10*time.Minute)

	now = now.Add(time.Minute)
	c.sweep()

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("live")
	assert.True(t, ok)
}

// TestConcurrentGetSet hammers the cache from many goroutines; run with -race.
func TestConcurrentGetSet(t *testing.T) {
	c := newTestCache(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("key-%d", j%10)
				c.Set(key, n, time.Minute)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, c.Len())
}

// TestKey_CanonicalOrdering verifies equal filter sets map to the same key
// regardless of insertion order, and different namespaces never collide.
func TestKey_CanonicalOrdering(t *testing.T) {
	a := Key(NSStockLevels, map[string]string{"warehouse_id": "3", "page": "1", "limit": "20"})
	b := Key(NSStockLevels, map[string]string{"limit": "20", "warehouse_id": "3", "page": "1"})
	assert.Equal(t, a, b)
	assert.Equal(t, "stock_levels_limit:20|page:1|warehouse_id:3", a)

	assert.NotEqual(t,
		Key(NSStockLevels, map[string]string{"limit": "5"}),
		Key(NSSupplierRankings, map[string]string{"limit": "5"}),
	)
}

func TestKey_EmptyFields(t *testing.T) {
	assert.Equal(t, "summary_metrics_all", Key(NSSummaryMetrics, nil))
	assert.Equal(t, "summary_metrics_all", Key(NSSummaryMetrics, map[string]string{}))
}
