// Package queue defers zero-argument tasks from input and tick handlers to
// the main loop.
//
// The ring is bounded and lock free: any number of producers may Push
// concurrently, one consumer drains. Overflow is rejected, never blocking
// the producer and never discarding work that was already accepted.
package queue

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/atomicstack/panel-control/internal/logging"
	"github.com/atomicstack/panel-control/internal/logging/events"
)

// ErrFull is returned by Push when the ring has no free slot.
var ErrFull = errors.New("queue: full")

// DefaultCapacity is used when New is given a non-positive size.
const DefaultCapacity = 8

// Task is a deferred action.
type Task func()

type slot struct {
	seq  atomic.Uint64
	task Task
	name string
}

// Queue is a bounded multi-producer, single-consumer FIFO.
type Queue struct {
	mask  uint64
	slots []slot

	enq atomic.Uint64
	deq atomic.Uint64

	rejected atomic.Uint64
	executed atomic.Uint64
}

// New returns a queue holding at least size tasks; the capacity is rounded up
// to a power of two.
func New(size int) *Queue {
	if size <= 0 {
		size = DefaultCapacity
	}
	capacity := 1
	for capacity < size {
		capacity <<= 1
	}
	q := &Queue{mask: uint64(capacity - 1), slots: make([]slot, capacity)}
	for i := range q.slots {
		q.slots[i].seq.Store(uint64(i))
	}
	return q
}

// Cap returns the ring capacity.
func (q *Queue) Cap() int {
	return len(q.slots)
}

// Len returns the number of accepted, not yet executed tasks. Under
// concurrent use it is a snapshot in [0, Cap].
func (q *Queue) Len() int {
	deq := q.deq.Load()
	enq := q.enq.Load()
	if enq <= deq {
		return 0
	}
	return min(int(enq-deq), len(q.slots))
}

// Rejected returns how many pushes failed with ErrFull.
func (q *Queue) Rejected() uint64 {
	return q.rejected.Load()
}

// Executed returns how many tasks the consumer has run.
func (q *Queue) Executed() uint64 {
	return q.executed.Load()
}

// Push appends a task. The name only labels trace output.
func (q *Queue) Push(name string, t Task) error {
	if t == nil {
		return nil
	}
	pos := q.enq.Load()
	for {
		s := &q.slots[pos&q.mask]
		seq := s.seq.Load()
		switch diff := int64(seq) - int64(pos); {
		case diff == 0:
			if q.enq.CompareAndSwap(pos, pos+1) {
				s.task = t
				s.name = name
				s.seq.Store(pos + 1)
				events.Queue.Push(name, q.Len())
				return nil
			}
			pos = q.enq.Load()
		case diff < 0:
			q.rejected.Add(1)
			events.Queue.Reject(name, q.Cap())
			return fmt.Errorf("push %s: %w", name, ErrFull)
		default:
			pos = q.enq.Load()
		}
	}
}

// pop removes the oldest task. Only the consumer may call it.
func (q *Queue) pop() (Task, string, bool) {
	pos := q.deq.Load()
	s := &q.slots[pos&q.mask]
	if int64(s.seq.Load())-int64(pos+1) < 0 {
		return nil, "", false
	}
	t, name := s.task, s.name
	s.task, s.name = nil, ""
	s.seq.Store(pos + q.mask + 1)
	q.deq.Store(pos + 1)
	return t, name, true
}

// Drain runs tasks in FIFO order until the queue is empty, including tasks
// pushed by tasks it runs. It returns how many ran. A panicking task is
// logged and skipped.
func (q *Queue) Drain() int {
	n := 0
	for {
		t, name, ok := q.pop()
		if !ok {
			return n
		}
		q.run(name, t)
		n++
	}
}

func (q *Queue) run(name string, t Task) {
	defer func() {
		if r := recover(); r != nil {
			events.Queue.Panic(name, r)
			logging.Error(fmt.Errorf("queued task %s panicked: %v", name, r))
		}
	}()
	events.Queue.Run(name)
	t()
	q.executed.Add(1)
}
