package engine

import (
	"sync/atomic"
	"time"
)

// SearchContext tracks the time budget and stop signal for one search. A
// single context is shared by all Lazy-SMP workers of a search so that any
// worker hitting the deadline, or an external Stop() call, halts them all.
type SearchContext struct {
	startTime time.Time
	timeLimit time.Duration
	nodes     atomic.Int64
	stopped   atomic.Bool
}

// NewSearchContext starts a context with the given time budget.
func NewSearchContext(timeLimit time.Duration) *SearchContext {
	return &SearchContext{
		startTime: time.Now(),
		timeLimit: timeLimit,
	}
}

// CheckDeadline reports whether the time budget has been exceeded, latching
// the stopped flag the first time it observes this.
func (ctx *SearchContext) CheckDeadline() bool {
	if ctx.stopped.Load() {
		return true
	}
	if time.Since(ctx.startTime) >= ctx.timeLimit {
		ctx.stopped.Store(true)
		return true
	}
	return false
}

// Stop latches the stop flag, signalling every worker sharing this context
// to unwind as soon as it next checks.
func (ctx *SearchContext) Stop() {
	ctx.stopped.Store(true)
}

// Stopped reports the current stop flag without a deadline check.
func (ctx *SearchContext) Stopped() bool {
	return ctx.stopped.Load()
}

// Elapsed returns the time since the context started.
func (ctx *SearchContext) Elapsed() time.Duration {
	return time.Since(ctx.startTime)
}

// Nodes returns the total node count recorded against this context.
func (ctx *SearchContext) Nodes() int64 {
	return ctx.nodes.Load()
}

// AddNode increments the node counter and checks the deadline every 2048
// nodes, cheap enough not to show up in profiles but frequent enough to
// keep the search responsive to its time budget.
func (ctx *SearchContext) AddNode() bool {
	n := ctx.nodes.Add(1)
	if n&2047 == 0 {
		return ctx.CheckDeadline()
	}
	return ctx.stopped.Load()
}
