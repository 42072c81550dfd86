// ABOUTME: Bubble Tea render collaborator: one program per admitted dialog
// ABOUTME: Install wires it as the package default when stdout is a terminal

package btea

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mauromedda/popup-go/internal/log"
	"github.com/mauromedda/popup-go/internal/theme"
	"github.com/mauromedda/popup-go/pkg/popup"
)

// Renderer displays dialogs as full-screen Bubble Tea programs. The
// presentation queue guarantees at most one dialog is rendered at a time, so
// only one program runs at once.
type Renderer struct {
	styles Styles
}

// New creates a Renderer styled by th; a nil theme uses the default palette.
func New(th *theme.Theme) *Renderer {
	if th == nil {
		th = theme.Builtin("default")
	}
	return &Renderer{styles: buildStyles(th.Palette)}
}

// Install makes a Renderer the popup package default when stdout is a
// terminal, and reports whether it did. In non-terminal environments the
// headless fallback stays in place.
func Install(th *theme.Theme) bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	popup.SetDefaultRenderer(New(th))
	return true
}

// handle ties a rendered dialog to its running program.
type handle struct {
	prog *tea.Program
	done chan struct{}
}

// Render starts a program for d and returns without waiting for it. Input
// events are translated into the dialog's trigger methods by the model, and
// dismissal (which calls Teardown) stops the program.
func (r *Renderer) Render(d *popup.Dialog) (popup.RenderHandle, error) {
	p := tea.NewProgram(
		newDialogModel(d, r.styles),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	h := &handle{prog: p, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		if _, err := p.Run(); err != nil {
			log.Warn("btea: program exited with error: %v", err)
		}
	}()
	return h, nil
}

// Teardown stops the dialog's program. It must not block: dismissal is often
// triggered from inside the program's own update loop, so the shutdown wait
// runs on its own goroutine. Unknown or nil handles are ignored so teardown
// succeeds even when rendering never completed.
func (r *Renderer) Teardown(rh popup.RenderHandle) error {
	h, ok := rh.(*handle)
	if !ok || h == nil {
		return nil
	}
	h.prog.Quit()
	go func() {
		select {
		case <-h.done:
		case <-time.After(2 * time.Second):
			h.prog.Kill()
		}
	}()
	return nil
}
