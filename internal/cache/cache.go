package cache

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Cache key namespaces, one per cached operation.
const (
	NSStockLevels           = "stock_levels_"
	NSSummaryMetrics        = "summary_metrics_"
	NSSupplierDetail        = "supplier_detail_"
	NSSupplierRankings      = "supplier_rankings_"
	NSRecentPurchases       = "recent_purchases_"
	NSWarehouseDistribution = "warehouse_distribution_"
)

// ErrInvalidConfig is returned by New when a TTL or the sweep interval is not
// strictly positive. A non-positive TTL is a programmer error, not a runtime
// condition.
var ErrInvalidConfig = errors.New("invalid cache configuration")

// Config holds the per-operation TTLs and the background sweep interval.
type Config struct {
	StockLevelsTTL           time.Duration
	SummaryMetricsTTL        time.Duration
	SupplierDetailTTL        time.Duration
	SupplierRankingsTTL      time.Duration
	RecentPurchasesTTL       time.Duration
	WarehouseDistributionTTL time.Duration
	SweepInterval            time.Duration
}

// DefaultConfig returns the deployment-guidance TTLs.
func DefaultConfig() Config {
	return Config{
		StockLevelsTTL:           60 * time.Second,
		SummaryMetricsTTL:        120 * time.Second,
		SupplierDetailTTL:        600 * time.Second,
		SupplierRankingsTTL:      900 * time.Second,
		RecentPurchasesTTL:       30 * time.Second,
		WarehouseDistributionTTL: 120 * time.Second,
		SweepInterval:            60 * time.Second,
	}
}

func (c Config) validate() error {
	ttls := map[string]time.Duration{
		"stock_levels":           c.StockLevelsTTL,
		"summary_metrics":        c.SummaryMetricsTTL,
		"supplier_detail":        c.SupplierDetailTTL,
		"supplier_rankings":      c.SupplierRankingsTTL,
		"recent_purchases":       c.RecentPurchasesTTL,
		"warehouse_distribution": c.WarehouseDistributionTTL,
		"sweep_interval":         c.SweepInterval,
	}
	for name, ttl := range ttls {
		if ttl <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidConfig, name, ttl)
		}
	}
	return nil
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache is a TTL-keyed result store shared by concurrent requests. It is an
// explicitly constructed instance with a defined lifecycle: New starts the
// background sweeper, Stop shuts it down. Concurrent Get/Set are safe; two
// requests racing on the same cold key may both recompute and both write,
// which is accepted — the last writer's TTL wins.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	cfg     Config

	stop     chan struct{}
	stopOnce sync.Once

	now func() time.Time // overridable in tests
}

// New validates cfg, builds the cache and starts the sweep goroutine.
func New(cfg Config) (*Cache, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	c := &Cache{
		entries: make(map[string]entry),
		cfg:     cfg,
		stop:    make(chan struct{}),
		now:     time.Now,
	}
	go c.sweepLoop()
	return c, nil
}

// Config returns the TTL configuration the cache was built with.
func (c *Cache) Config() Config {
	return c.cfg
}

// Get returns the live value for key. An expired entry is treated as a miss
// and evicted.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have refreshed
		// the entry between the two lock acquisitions.
		if cur, still := c.entries[key]; still && !c.now().Before(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for ttl, overwriting any existing entry.
// Non-positive ttl values fall back to the namespace-default summary TTL so
// an entry never carries an expiry at or before its creation time.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.cfg.SummaryMetricsTTL
	}
	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Len returns the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stop terminates the background sweeper. Safe to call more than once.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) sweepLoop() {
	ticker := time.NewTicker(c.cfg.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stop:
			return
		}
	}
}

// sweep removes all expired entries regardless of access pattern. It bounds
// memory growth; correctness does not depend on it since Get evicts lazily.
func (c *Cache) sweep() {
	now := c.now()
	c.mu.Lock()
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// Key builds the canonical cache key for an operation: the namespace followed
// by the filter fields sorted by name and joined as field:value pairs. Equal
// filter sets always map to the same key regardless of input field order.
func Key(namespace string, fields map[string]string) string {
	if len(fields) == 0 {
		return namespace + "all"
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(namespace)
	for i, name := range names {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(fields[name])
	}
	return b.String()
}
