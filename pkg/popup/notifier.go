// ABOUTME: Typed synchronous pub/sub for dialog lifecycle events
// ABOUTME: Handlers fire in registration order; Once removes itself after first emission

package popup

import "sync"

// Event identifies a lifecycle notification emitted by a Dialog.
type Event int

const (
	// EventOpened fires when the dialog is admitted and rendered.
	EventOpened Event = iota
	// EventCancelled fires on dismissal when the dialog was cancelled.
	EventCancelled
	// EventComplete fires on dismissal when the dialog resolved with a value.
	EventComplete
	// EventClosed always fires last on dismissal, cancelled or not.
	EventClosed
)

// String returns the event name for logs and tests.
func (e Event) String() string {
	switch e {
	case EventOpened:
		return "opened"
	case EventCancelled:
		return "cancelled"
	case EventComplete:
		return "complete"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Handler receives the Result payload of an emission.
type Handler func(Result)

// subscription is one registered handler. Subscriptions keep their insertion
// order so emission order matches registration order.
type subscription struct {
	id   int
	fn   Handler
	once bool
}

// Notifier dispatches lifecycle events to registered handlers. Emission is
// synchronous: Emit returns after every handler has run. Each Dialog owns
// one Notifier.
type Notifier struct {
	mu     sync.Mutex
	subs   map[Event][]subscription
	nextID int
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[Event][]subscription)}
}

// On registers fn for every emission of ev and returns an unsubscribe
// function. Handlers for the same event run in registration order.
func (n *Notifier) On(ev Event, fn Handler) func() {
	return n.register(ev, fn, false)
}

// Once registers fn for the first emission of ev only. The returned
// unsubscribe function is a no-op after that emission.
func (n *Notifier) Once(ev Event, fn Handler) func() {
	return n.register(ev, fn, true)
}

func (n *Notifier) register(ev Event, fn Handler, once bool) func() {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[ev] = append(n.subs[ev], subscription{id: id, fn: fn, once: once})
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		list := n.subs[ev]
		for i, s := range list {
			if s.id == id {
				n.subs[ev] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
}

// When returns a channel that receives the payload of the next emission of
// ev, then closes. It is the future-style counterpart of Once.
func (n *Notifier) When(ev Event) <-chan Result {
	ch := make(chan Result, 1)
	n.Once(ev, func(r Result) {
		ch <- r
		close(ch)
	})
	return ch
}

// Emit synchronously invokes all handlers registered for ev with payload, in
// registration order. Emitting with no handlers registered is a no-op.
// One-shot handlers are unregistered before their callback runs, so a
// re-entrant Emit from inside a handler cannot fire them twice.
func (n *Notifier) Emit(ev Event, payload Result) {
	n.mu.Lock()
	list := n.subs[ev]
	snapshot := make([]subscription, len(list))
	copy(snapshot, list)
	// Drop one-shot subscriptions before invoking anything.
	kept := list[:0]
	for _, s := range list {
		if !s.once {
			kept = append(kept, s)
		}
	}
	n.subs[ev] = kept
	n.mu.Unlock()

	for _, s := range snapshot {
		s.fn(payload)
	}
}

// Count returns the number of handlers currently registered for ev.
func (n *Notifier) Count(ev Event) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs[ev])
}
