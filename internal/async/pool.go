// Package async runs blocking repository queries on a bounded worker pool
// and hands their results back to the render loop through handles that never
// block. Views poll the handles once per tick; workers never touch view
// state directly.
package async

import "runtime"

// Pool bounds how many background queries may run at once. Work submitted
// beyond the limit waits as a parked goroutine, so submission itself never
// blocks the caller.
type Pool struct {
	semaphore chan struct{}
}

// NewPool creates a pool running at most limit queries concurrently.
// A limit of zero or less selects a default derived from GOMAXPROCS.
func NewPool(limit int) *Pool {
	if limit <= 0 {
		limit = runtime.NumCPU() * 2
		if limit < 4 {
			limit = 4
		}
		if limit > 32 {
			limit = 32
		}
	}

	// Counting semaphore: the channel starts full with 'limit' tokens.
	// Workers take a token before running and return it when done.
	semaphore := make(chan struct{}, limit)
	for i := 0; i < limit; i++ {
		semaphore <- struct{}{}
	}

	return &Pool{semaphore: semaphore}
}

// Go schedules fn on the pool and returns immediately. The token is acquired
// inside the spawned goroutine, so a saturated pool queues work instead of
// stalling the submitter.
func (p *Pool) Go(fn func()) {
	go func() {
		<-p.semaphore
		defer func() { p.semaphore <- struct{}{} }()
		fn()
	}()
}

// Limit reports the pool's concurrency bound.
func (p *Pool) Limit() int { return cap(p.semaphore) }
