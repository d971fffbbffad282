package async

import (
	"fmt"
	"sync"
)

// Chunk is one ordered batch from a chunked load. A chunk with Done set is
// the final data-carrying batch; a chunk with Err set reports that the
// producer failed partway. Nothing follows a terminal chunk.
type Chunk[T any] struct {
	Items []T
	Done  bool
	Err   error
}

// Terminal reports whether this chunk ends the stream.
func (c Chunk[T]) Terminal() bool { return c.Done || c.Err != nil }

// Stream is the handle to one chunked background load. Chunks arrive in the
// order the producer emitted their items; the queue between producer and
// consumer is unbounded so a slow consumer never stalls the worker.
//
// Like Query, a Stream that its owner stops polling is simply abandoned:
// the producer runs to completion and the queued chunks are collected with
// the handle.
type Stream[T any] struct {
	mu    sync.Mutex
	queue []Chunk[T]
}

// RunChunked schedules producer on the pool and batches the items it emits
// into chunks of chunkSize. A full batch is enqueued only when the item
// after it arrives, so the batch in hand when the producer returns is always
// the one that carries Done. A producer error discards the partial batch and
// enqueues a terminal error chunk instead; a panic is reported the same way.
func RunChunked[T any](pool *Pool, chunkSize int, producer func(emit func(T)) error) *Stream[T] {
	if chunkSize < 1 {
		chunkSize = 1
	}
	s := &Stream[T]{}
	pool.Go(func() {
		batch := make([]T, 0, chunkSize)
		err := runProducer(producer, func(item T) {
			if len(batch) == chunkSize {
				s.push(Chunk[T]{Items: batch})
				batch = make([]T, 0, chunkSize)
			}
			batch = append(batch, item)
		})
		if err != nil {
			s.push(Chunk[T]{Err: err})
			return
		}
		s.push(Chunk[T]{Items: batch, Done: true})
	})
	return s
}

// runProducer shields the worker goroutine from producer panics.
func runProducer[T any](producer func(emit func(T)) error, emit func(T)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("chunk producer panicked: %v", r)
		}
	}()
	return producer(emit)
}

func (s *Stream[T]) push(c Chunk[T]) {
	s.mu.Lock()
	s.queue = append(s.queue, c)
	s.mu.Unlock()
}

// TryRecv pops the oldest undelivered chunk without blocking. A nil stream
// reports false.
func (s *Stream[T]) TryRecv() (Chunk[T], bool) {
	if s == nil {
		return Chunk[T]{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return Chunk[T]{}, false
	}
	c := s.queue[0]
	s.queue = s.queue[1:]
	return c, true
}
