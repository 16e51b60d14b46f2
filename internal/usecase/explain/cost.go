package explain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hireloop/matchd/internal/domain"
)

// CostTracker enforces a monthly spend cap for explanation calls.
// Amounts are micro-USD (1_000_000 = $1). Hot path (Check) is in-memory;
// Record updates memory first, then write-behind to the store.
type CostTracker struct {
	mu        sync.Mutex
	used      int64
	limit     int64
	lastReset time.Time
	store     CostStore
	logger    *zap.Logger
}

// NewCostTracker creates a spend tracker. limit 0 means unlimited.
func NewCostTracker(limitMicroUSD int64, logger *zap.Logger) *CostTracker {
	return &CostTracker{
		limit:     limitMicroUSD,
		lastReset: truncateToMonth(time.Now().UTC()),
		logger:    logger,
	}
}

// WithStore attaches a persistence store and loads the current counter.
func (c *CostTracker) WithStore(ctx context.Context, store CostStore) *CostTracker {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = store
	if val, err := store.Get(ctx, c.monthlyKey(c.lastReset)); err == nil {
		c.used = val
	} else {
		c.logger.Warn("Failed to load explain spend from store", zap.Error(err))
	}

	c.logger.Info("Explain spend loaded from store",
		zap.Int64("used_microusd", c.used),
		zap.Int64("limit_microusd", c.limit),
	)
	return c
}

func (c *CostTracker) monthlyKey(t time.Time) string {
	return fmt.Sprintf("%sbudget:explain:monthly:%s", domain.KeyPrefix, t.Format("2006-01"))
}

// Check reports whether the budget allows another call.
func (c *CostTracker) Check(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetIfNeeded()
	if c.limit > 0 && c.used >= c.limit {
		return domain.ErrExplainBudgetExhausted
	}
	return nil
}

// Record registers spend after a call, then write-behind to the store.
func (c *CostTracker) Record(microUSD int64) {
	c.mu.Lock()
	c.resetIfNeeded()
	c.used += microUSD
	store := c.store
	key := c.monthlyKey(c.lastReset)
	c.mu.Unlock()

	if store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := store.IncrBy(ctx, key, microUSD); err != nil {
		c.logger.Warn("Failed to persist explain spend", zap.String("key", key), zap.Error(err))
	}
}

// Used returns micro-USD spent this month.
func (c *CostTracker) Used() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetIfNeeded()
	return c.used
}

// Limit returns the monthly spend cap (0 = unlimited).
func (c *CostTracker) Limit() int64 { return c.limit }

// Remaining returns micro-USD left this month (-1 if unlimited).
func (c *CostTracker) Remaining() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetIfNeeded()
	if c.limit == 0 {
		return -1
	}
	remaining := c.limit - c.used
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c *CostTracker) resetIfNeeded() {
	thisMonth := truncateToMonth(time.Now().UTC())
	if thisMonth.After(c.lastReset) {
		c.used = 0
		c.lastReset = thisMonth
	}
}

func truncateToMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
