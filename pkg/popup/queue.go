// ABOUTME: FIFO presentation queue admitting at most one dialog at a time
// ABOUTME: Process-wide default instance; swappable for test isolation

package popup

import (
	"sync"
	"sync/atomic"
)

// queueEntry pairs a waiting dialog with its admission signal.
type queueEntry struct {
	d        *Dialog
	admitted chan struct{}
}

// Queue serializes dialog presentation. Dialogs are admitted in strict Add
// order, and the admitted head is the only dialog rendered; every other
// entry waits until the head is removed. All operations are total: removing
// an absent dialog is a no-op.
type Queue struct {
	mu      sync.Mutex
	pending []*queueEntry
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Add appends d and returns a channel that closes when d is admitted. If the
// queue was empty the admission happens before Add returns. If d is removed
// while still waiting, the channel never closes; observe the dialog's
// EventClosed notification instead.
func (q *Queue) Add(d *Dialog) <-chan struct{} {
	e := &queueEntry{d: d, admitted: make(chan struct{})}

	q.mu.Lock()
	q.pending = append(q.pending, e)
	first := len(q.pending) == 1
	q.mu.Unlock()

	if first {
		q.admit(e)
	}
	return e.admitted
}

// Remove takes d out of the queue wherever it sits. Removing the admitted
// head advances admission to the new head, if any. Unknown dialogs are
// ignored.
func (q *Queue) Remove(d *Dialog) {
	q.mu.Lock()
	idx := -1
	for i, e := range q.pending {
		if e.d == d {
			idx = i
			break
		}
	}
	if idx < 0 {
		q.mu.Unlock()
		return
	}
	q.pending = append(q.pending[:idx], q.pending[idx+1:]...)

	// Only removal of the head frees the presentation slot.
	var next *queueEntry
	if idx == 0 && len(q.pending) > 0 {
		next = q.pending[0]
	}
	q.mu.Unlock()

	if next != nil {
		q.admit(next)
	}
}

// admit signals admission and activates the dialog. Called without the lock
// held: activation emits EventOpened, and a handler may dismiss the dialog
// re-entrantly, which calls back into Remove.
func (q *Queue) admit(e *queueEntry) {
	close(e.admitted)
	e.d.activate()
}

// Active returns the admitted dialog, or nil when the queue is empty.
func (q *Queue) Active() *Dialog {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	return q.pending[0].d
}

// Len returns the number of dialogs waiting or holding the slot.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// defaultQueue is the process-wide modal serialization point. Every dialog
// not bound to an explicit queue contends for this single slot.
var defaultQueue atomic.Pointer[Queue]

func init() {
	defaultQueue.Store(NewQueue())
}

// DefaultQueue returns the process-wide queue.
func DefaultQueue() *Queue {
	return defaultQueue.Load()
}

// SetDefaultQueue replaces the process-wide queue and returns the previous
// one. Tests use it to start from a fresh, empty queue.
func SetDefaultQueue(q *Queue) *Queue {
	if q == nil {
		q = NewQueue()
	}
	return defaultQueue.Swap(q)
}
