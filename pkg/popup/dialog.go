// ABOUTME: Dialog lifecycle state machine: configure, queue, render, resolve
// ABOUTME: Input triggers map to button roles; dismissal is idempotent and ordered

package popup

import (
	"errors"
	"sync"
	"time"

	"github.com/mauromedda/popup-go/internal/log"
)

// State is a dialog's position in its lifecycle.
type State int

const (
	// StateConfiguring accepts AddButton, AddTextField, and SetIcon calls.
	StateConfiguring State = iota
	// StateQueued means Show ran and the dialog waits for admission.
	StateQueued
	// StateActive means the dialog holds the presentation slot and is rendered.
	StateActive
	// StateDismissed is terminal.
	StateDismissed
)

// String returns the state name for logs and tests.
func (s State) String() string {
	switch s {
	case StateConfiguring:
		return "configuring"
	case StateQueued:
		return "queued"
	case StateActive:
		return "active"
	case StateDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

var (
	// ErrShown rejects configuration calls made after Show.
	ErrShown = errors.New("popup: dialog already shown")
	// ErrNoSuchField rejects field access with an out-of-range index.
	ErrNoSuchField = errors.New("popup: no such field")
)

// Dialog is one alert/confirm/prompt/select/loader instance. Configure it
// with AddButton, AddTextField, and SetIcon, then call Show. The dialog
// renders once the presentation queue admits it and resolves when the user
// answers it or code dismisses it.
type Dialog struct {
	mu         sync.Mutex
	text       string
	title      string
	icon       string
	kind       string
	buttons    []Button
	fields     []Field
	cancelable bool

	state      State
	result     Result
	cancelled  bool
	finalized  bool
	activating bool
	deferred   bool

	queue    *Queue
	renderer Renderer
	handle   RenderHandle
	notifier *Notifier
	timer    *time.Timer
}

// New creates a dialog in StateConfiguring. Dialogs are cancelable unless
// WithCancelable(false) is given.
func New(text string, opts ...Option) *Dialog {
	return newFromOptions(text, applyOptions(opts))
}

// AddButton appends b to the dialog's action row. A nil Value defaults to
// the label; RoleUnset becomes RoleDefault for the first button and
// RoleNormal for every later one. Fails with ErrShown after Show.
func (d *Dialog) AddButton(b Button) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StateConfiguring {
		return ErrShown
	}
	if b.Value == nil {
		b.Value = b.Label
	}
	if b.Role == RoleUnset {
		if len(d.buttons) == 0 {
			b.Role = RoleDefault
		} else {
			b.Role = RoleNormal
		}
	}
	d.buttons = append(d.buttons, b)
	return nil
}

// AddTextField appends a text input with an initial value and placeholder.
// Fails with ErrShown after Show.
func (d *Dialog) AddTextField(value, placeholder string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StateConfiguring {
		return ErrShown
	}
	d.fields = append(d.fields, Field{Value: value, Kind: "text", Placeholder: placeholder})
	return nil
}

// SetIcon sets the dialog's icon reference (a glyph or an image path,
// interpreted by the renderer). Fails with ErrShown after Show.
func (d *Dialog) SetIcon(ref string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StateConfiguring {
		return ErrShown
	}
	d.icon = ref
	return nil
}

// Text returns the body text.
func (d *Dialog) Text() string { d.mu.Lock(); defer d.mu.Unlock(); return d.text }

// Title returns the title, possibly empty.
func (d *Dialog) Title() string { d.mu.Lock(); defer d.mu.Unlock(); return d.title }

// Icon returns the icon reference, or "" when unset.
func (d *Dialog) Icon() string { d.mu.Lock(); defer d.mu.Unlock(); return d.icon }

// Kind reports which convenience constructor built the dialog ("alert",
// "confirm", "prompt", "select", "loader"), or "" for plain New.
func (d *Dialog) Kind() string { d.mu.Lock(); defer d.mu.Unlock(); return d.kind }

// Cancelable reports whether Esc and backdrop presses may dismiss the dialog.
func (d *Dialog) Cancelable() bool { d.mu.Lock(); defer d.mu.Unlock(); return d.cancelable }

// State returns the dialog's current lifecycle state.
func (d *Dialog) State() State { d.mu.Lock(); defer d.mu.Unlock(); return d.state }

// Result returns the resolved outcome; NoResult until dismissal.
func (d *Dialog) Result() Result { d.mu.Lock(); defer d.mu.Unlock(); return d.result }

// Cancelled reports whether the dialog was dismissed without an outcome.
func (d *Dialog) Cancelled() bool { d.mu.Lock(); defer d.mu.Unlock(); return d.cancelled }

// Finalized reports whether teardown has run.
func (d *Dialog) Finalized() bool { d.mu.Lock(); defer d.mu.Unlock(); return d.finalized }

// Buttons returns a copy of the configured buttons in insertion order.
func (d *Dialog) Buttons() []Button {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Button, len(d.buttons))
	copy(out, d.buttons)
	return out
}

// Fields returns a copy of the configured fields in insertion order.
func (d *Dialog) Fields() []Field {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Field, len(d.fields))
	copy(out, d.fields)
	return out
}

// FieldValue returns the current value of field i.
func (d *Dialog) FieldValue(i int) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.fields) {
		return "", ErrNoSuchField
	}
	return d.fields[i].Value, nil
}

// SetFieldValue updates field i. The render collaborator calls this as the
// user types.
func (d *Dialog) SetFieldValue(i int, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.fields) {
		return ErrNoSuchField
	}
	d.fields[i].Value = value
	return nil
}

// On registers fn for every emission of ev; see Notifier.On.
func (d *Dialog) On(ev Event, fn Handler) func() { return d.notifier.On(ev, fn) }

// When returns a channel receiving the next emission of ev; see Notifier.When.
func (d *Dialog) When(ev Event) <-chan Result { return d.notifier.When(ev) }

// Done returns a channel that yields the dialog's outcome once it closes.
// If the dialog is already dismissed the channel is immediately readable, so
// waiting on Done never hangs on a resolved dialog. The finalized check and
// the subscription happen under the dialog lock: Dismiss marks finalized
// under the same lock before it emits, so a concurrent dismissal either is
// visible here or emits after the subscription is registered.
func (d *Dialog) Done() <-chan Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.finalized {
		ch := make(chan Result, 1)
		ch <- d.result
		close(ch)
		return ch
	}
	return d.notifier.When(EventClosed)
}

// Show enqueues the dialog for presentation and returns it immediately.
// Rendering is deferred until the queue admits it. Calling Show twice is a
// no-op.
func (d *Dialog) Show() *Dialog {
	d.mu.Lock()
	if d.state != StateConfiguring {
		d.mu.Unlock()
		return d
	}
	d.state = StateQueued
	if d.queue == nil {
		d.queue = DefaultQueue()
	}
	if d.renderer == nil {
		d.renderer = DefaultRenderer()
	}
	q := d.queue
	d.mu.Unlock()

	q.Add(d)
	return d
}

// activate is called by the queue on admission: render, then notify. While
// activating is set, Dismiss defers its side effects to this goroutine so a
// dismissal landing mid-activation cannot emit EventClosed before EventOpened.
func (d *Dialog) activate() {
	d.mu.Lock()
	if d.state != StateQueued || d.finalized {
		d.mu.Unlock()
		return
	}
	d.state = StateActive
	d.activating = true
	r := d.renderer
	d.mu.Unlock()

	h, err := r.Render(d)
	if err != nil {
		log.Warn("popup: render failed: %v", err)
		h = nil
	}

	d.mu.Lock()
	d.handle = h
	if d.finalized {
		// Dismissed from inside or during Render: skip EventOpened and run
		// the deferred dismissal with the real handle.
		d.finishLocked(r)
		return
	}
	d.mu.Unlock()

	d.notifier.Emit(EventOpened, NoResult)

	// Renderers without a user-input path resolve the dialog themselves
	// once observers have seen EventOpened.
	if po, ok := r.(postOpener); ok && !d.Finalized() {
		po.Opened(d)
	}

	d.mu.Lock()
	if d.deferred {
		d.finishLocked(r)
		return
	}
	d.activating = false
	d.mu.Unlock()
}

// Dismiss resolves the dialog with res and tears it down. Dismissing with
// NoResult (or any ResultNone outcome) marks the dialog cancelled. Redundant
// calls are no-ops: finalized is set before any notification fires, so a
// handler re-entering Dismiss cannot double-emit. Side effects run in a
// fixed order: queue removal, renderer teardown, EventCancelled or
// EventComplete, then EventClosed.
func (d *Dialog) Dismiss(res Result) {
	d.mu.Lock()
	if d.finalized {
		d.mu.Unlock()
		return
	}
	d.finalized = true
	d.state = StateDismissed
	if res.Kind == ResultNone {
		res.Value = nil
		res.Cancelled = true
	}
	if res.Cancelled {
		d.cancelled = true
	}
	d.result = res
	if d.activating {
		// activate is mid-flight; it runs the side effects once its own
		// notifications are settled, keeping EventOpened ahead of EventClosed.
		d.deferred = true
		d.mu.Unlock()
		return
	}
	r := d.renderer
	d.finishLocked(r)
}

// finishLocked runs the dismissal side effects in their fixed order: stop the
// timer, free the presentation slot, tear down the rendering, then emit
// EventCancelled or EventComplete followed by EventClosed. Called with d.mu
// held; releases it before any callback runs.
func (d *Dialog) finishLocked(r Renderer) {
	d.activating = false
	d.deferred = false
	res := d.result
	t := d.timer
	q := d.queue
	h := d.handle
	d.mu.Unlock()

	if t != nil {
		t.Stop()
	}
	if q != nil {
		q.Remove(d)
	}
	if r != nil {
		if err := r.Teardown(h); err != nil {
			log.Warn("popup: teardown failed: %v", err)
		}
	}
	if res.Cancelled {
		d.notifier.Emit(EventCancelled, res)
	} else {
		d.notifier.Emit(EventComplete, res)
	}
	d.notifier.Emit(EventClosed, res)
}

// Cancel dismisses the dialog with no outcome.
func (d *Dialog) Cancel() { d.Dismiss(NoResult) }

// DismissIn schedules a single Dismiss(res) after delay. Dismissal by any
// other path first stops the timer.
func (d *Dialog) DismissIn(delay time.Duration, res Result) {
	d.mu.Lock()
	if d.finalized {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(delay, func() { d.Dismiss(res) })
	d.mu.Unlock()
}

// active reports whether input triggers should be honored.
func (d *Dialog) active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == StateActive && !d.finalized
}

// ConfirmTriggered handles the confirm trigger (Enter outside a field): the
// first RoleDefault button wins; with no default button it degrades to the
// cancel trigger. Ignored unless the dialog is active.
func (d *Dialog) ConfirmTriggered() {
	if !d.active() {
		return
	}
	for _, b := range d.Buttons() {
		if b.Role == RoleDefault {
			d.press(b, false)
			return
		}
	}
	d.CancelTriggered()
}

// CancelTriggered handles the cancel trigger (Esc): ignored when the dialog
// is not cancelable; otherwise the first RoleCancel button wins, and with no
// cancel button the dialog is dismissed with no outcome.
func (d *Dialog) CancelTriggered() {
	if !d.active() || !d.Cancelable() {
		return
	}
	for _, b := range d.Buttons() {
		if b.Role == RoleCancel {
			d.press(b, true)
			return
		}
	}
	d.Dismiss(NoResult)
}

// ButtonPressed resolves the dialog with button i's value. A RoleCancel
// button also marks the dialog cancelled. Out-of-range presses are ignored.
func (d *Dialog) ButtonPressed(i int) {
	if !d.active() {
		return
	}
	btns := d.Buttons()
	if i < 0 || i >= len(btns) {
		return
	}
	b := btns[i]
	d.press(b, b.Role == RoleCancel)
}

// FieldSubmitted handles Enter inside field i. Enter in the last field
// dismisses with a ResultFieldSubmit outcome carrying that field's value;
// in any earlier field it returns true so the renderer advances focus.
func (d *Dialog) FieldSubmitted(i int) (advance bool) {
	if !d.active() {
		return false
	}
	d.mu.Lock()
	if i < 0 || i >= len(d.fields) {
		d.mu.Unlock()
		return false
	}
	last := i == len(d.fields)-1
	value := d.fields[i].Value
	d.mu.Unlock()

	if !last {
		return true
	}
	d.Dismiss(Result{Kind: ResultFieldSubmit, Value: value})
	return false
}

// BackdropPressed handles activation of the area outside the dialog frame:
// an implicit cancel when the dialog is cancelable, otherwise ignored.
func (d *Dialog) BackdropPressed() {
	if !d.active() || !d.Cancelable() {
		return
	}
	d.Dismiss(NoResult)
}

// press resolves with a button's value, invoking its callback with the
// outcome before dismissal runs.
func (d *Dialog) press(b Button, cancelled bool) {
	res := Result{Kind: ResultButton, Value: b.Value, Cancelled: cancelled}
	if b.OnActivate != nil {
		b.OnActivate(res)
	}
	d.Dismiss(res)
}

// Answer blocks until the dialog closes and returns its first field's value.
// ok is false when the dialog was cancelled or has no text field. This is
// the prompt round-trip helper.
func (d *Dialog) Answer() (answer string, ok bool) {
	res := <-d.Done()
	if res.Cancelled {
		return "", false
	}
	v, err := d.FieldValue(0)
	if err != nil {
		return "", false
	}
	return v, true
}
