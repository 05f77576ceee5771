package core

import "sync/atomic"

// Generation hands out monotonically increasing request numbers. A caller
// starts each search with Next and drops any result whose generation is no
// longer current, so a slow response never overwrites a newer one.
//
// The zero value is ready to use and safe for concurrent use.
type Generation struct {
	n atomic.Uint64
}

// Next starts a new generation and returns its number.
func (g *Generation) Next() uint64 {
	return g.n.Add(1)
}

// Current returns the most recently started generation.
func (g *Generation) Current() uint64 {
	return g.n.Load()
}

// IsCurrent reports whether gen is still the latest generation.
func (g *Generation) IsCurrent(gen uint64) bool {
	return gen == g.n.Load()
}
