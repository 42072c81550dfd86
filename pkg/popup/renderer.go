// ABOUTME: Renderer contract between the dialog core and its display collaborator
// ABOUTME: Package default renderer is swappable; ships headless unless one is installed

package popup

import "sync"

// RenderHandle is an opaque token a Renderer returns from Render and accepts
// in Teardown.
type RenderHandle any

// Renderer builds and removes the visible representation of a dialog. Render
// is called exactly once per dialog, on admission; it must wire the user's
// input back to the dialog's trigger methods (ConfirmTriggered,
// CancelTriggered, ButtonPressed, FieldSubmitted, BackdropPressed,
// SetFieldValue). Teardown must complete without error even when the
// representation was never fully constructed (nil handle).
type Renderer interface {
	Render(d *Dialog) (RenderHandle, error)
	Teardown(h RenderHandle) error
}

// postOpener lets a renderer act after EventOpened was emitted. The headless
// renderer uses it to auto-resolve dialogs that would otherwise wait for
// input that can never arrive.
type postOpener interface {
	Opened(d *Dialog)
}

var (
	rendererMu      sync.Mutex
	defaultRenderer Renderer = NewHeadless()
)

// DefaultRenderer returns the renderer used by dialogs not bound via
// WithRenderer. Unless an application installs one, it is the headless
// fallback.
func DefaultRenderer() Renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	return defaultRenderer
}

// SetDefaultRenderer installs r as the package default and returns the
// previous one. Passing nil restores the headless fallback.
func SetDefaultRenderer(r Renderer) Renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	prev := defaultRenderer
	if r == nil {
		r = NewHeadless()
	}
	defaultRenderer = r
	return prev
}
