// ABOUTME: Functional options shared by New and the convenience constructors
// ABOUTME: Cover title, icon, cancelability, queue/renderer binding, and labels

package popup

// Option configures a dialog at construction time.
type Option func(*dialogOptions)

// dialogOptions collects constructor settings before the Dialog exists.
// Label and placeholder fields are consumed by the convenience constructors
// and ignored by New.
type dialogOptions struct {
	title       string
	icon        string
	cancelable  bool
	queue       *Queue
	renderer    Renderer
	acceptLabel string
	rejectLabel string
	placeholder string
}

func applyOptions(opts []Option) dialogOptions {
	o := dialogOptions{
		cancelable:  true,
		acceptLabel: "OK",
		rejectLabel: "Cancel",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTitle sets the dialog title.
func WithTitle(title string) Option {
	return func(o *dialogOptions) { o.title = title }
}

// WithIcon sets the icon reference shown next to the title. The Bubble Tea
// renderer treats a path ending in a known image extension as an image and
// anything else as a literal glyph.
func WithIcon(ref string) Option {
	return func(o *dialogOptions) { o.icon = ref }
}

// WithCancelable controls whether Esc and backdrop presses dismiss the
// dialog. Dialogs are cancelable by default.
func WithCancelable(cancelable bool) Option {
	return func(o *dialogOptions) { o.cancelable = cancelable }
}

// WithQueue binds the dialog to an explicit presentation queue instead of
// the process-wide default.
func WithQueue(q *Queue) Option {
	return func(o *dialogOptions) { o.queue = q }
}

// WithRenderer binds the dialog to an explicit renderer instead of the
// package default.
func WithRenderer(r Renderer) Option {
	return func(o *dialogOptions) { o.renderer = r }
}

// WithAcceptLabel overrides the label of the accepting button ("OK").
func WithAcceptLabel(label string) Option {
	return func(o *dialogOptions) { o.acceptLabel = label }
}

// WithRejectLabel overrides the label of the rejecting button ("Cancel").
func WithRejectLabel(label string) Option {
	return func(o *dialogOptions) { o.rejectLabel = label }
}

// WithPlaceholder sets the placeholder of the field added by Prompt.
func WithPlaceholder(placeholder string) Option {
	return func(o *dialogOptions) { o.placeholder = placeholder }
}
