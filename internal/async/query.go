package async

import "fmt"

// Result pairs a query's value with the error that produced it. Exactly one
// of Value and Err is meaningful.
type Result[T any] struct {
	Value T
	Err   error
}

// Query is the handle to one single-shot background operation. The owner
// polls TryTake until it reports true; after that the handle is spent and
// every later call reports false. A Query that is dropped without being
// polled simply lets its worker finish and its result be garbage collected,
// which is how superseded queries are discarded.
//
// TryTake is meant to be called from a single goroutine. The worker side is
// synchronised by the channel.
type Query[T any] struct {
	ch    chan Result[T]
	taken bool
}

// Run schedules fn on the pool and returns a handle to its eventual result.
// A panicking fn is reported as a failed result rather than crashing the
// process.
func Run[T any](pool *Pool, fn func() (T, error)) *Query[T] {
	q := &Query[T]{ch: make(chan Result[T], 1)}
	pool.Go(func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				q.ch <- Result[T]{Value: zero, Err: fmt.Errorf("background query panicked: %v", r)}
			}
		}()
		value, err := fn()
		q.ch <- Result[T]{Value: value, Err: err}
	})
	return q
}

// TryTake returns the result if it has arrived. It never blocks, and it
// reports true at most once per query; a nil query reports false, so owners
// can poll an absent handle without guarding.
func (q *Query[T]) TryTake() (Result[T], bool) {
	if q == nil || q.taken {
		return Result[T]{}, false
	}
	select {
	case r := <-q.ch:
		q.taken = true
		return r, true
	default:
		return Result[T]{}, false
	}
}
