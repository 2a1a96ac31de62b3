package input

import (
	"context"

	"github.com/dasdy/keylayout/model"
)

const DefaultQueueSize = 256

// Queue carries key transitions from input goroutines to the render loop.
// Any number of goroutines may push; only the render loop drains.
type Queue struct {
	ch chan model.KeyTransition
}

func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}

	return &Queue{ch: make(chan model.KeyTransition, size)}
}

// Push blocks while the queue is full, so releases are never dropped.
func (q *Queue) Push(ctx context.Context, t model.KeyTransition) error {
	select {
	case q.ch <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryPush enqueues without blocking and reports whether there was room.
func (q *Queue) TryPush(t model.KeyTransition) bool {
	select {
	case q.ch <- t:
		return true
	default:
		return false
	}
}

// Drain hands the transitions queued at the time of the call to fn, in
// arrival order, and returns how many were handled. Later arrivals wait for
// the next call. It never blocks.
func (q *Queue) Drain(fn func(model.KeyTransition)) int {
	n := len(q.ch)

	for range n {
		fn(<-q.ch)
	}

	return n
}

// DrainInto applies every queued transition to s.
func (q *Queue) DrainInto(s *State) int {
	return q.Drain(s.Apply)
}
