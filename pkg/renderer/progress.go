package renderer

import (
	"sync/atomic"
	"time"
)

// Progress tracks completed pixels across all workers. The counter is the
// only shared mutable state in the render; workers increment it atomically
// and external status displays may poll it concurrently.
type Progress struct {
	total     int64
	completed atomic.Int64
	start     atomic.Int64 // render start, unix nanoseconds; 0 until begin
}

// NewProgress creates a progress tracker for the given pixel total
func NewProgress(total int) *Progress {
	return &Progress{total: int64(total)}
}

// Completed returns the number of pixels finished so far. Monotonically
// non-decreasing; equals Total exactly once the render finishes.
func (p *Progress) Completed() int {
	return int(p.completed.Load())
}

// Total returns the number of pixels in the render
func (p *Progress) Total() int {
	return int(p.total)
}

// Elapsed returns the wall time since the render started, or zero if it
// has not started
func (p *Progress) Elapsed() time.Duration {
	start := p.start.Load()
	if start == 0 {
		return 0
	}
	return time.Duration(time.Now().UnixNano() - start)
}

// begin marks the render start for Elapsed
func (p *Progress) begin() {
	p.start.Store(time.Now().UnixNano())
}

// increment records one finished pixel
func (p *Progress) increment() {
	p.completed.Add(1)
}
