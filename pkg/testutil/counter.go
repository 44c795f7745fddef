package testutil

import "sync/atomic"

// Counter is a Rebooter that records how often a restart was requested
type Counter struct {
	n atomic.Int32
}

func (c *Counter) Reboot() { c.n.Add(1) }

// Count returns the number of Reboot calls so far
func (c *Counter) Count() int { return int(c.n.Load()) }
