// ABOUTME: Headless renderer: logs the dialog and auto-resolves it
// ABOUTME: Keeps non-interactive environments from hanging on Done

package popup

import (
	"strings"

	"github.com/mauromedda/popup-go/internal/log"
	"github.com/mauromedda/popup-go/internal/sanitize"
)

// Headless is the no-display renderer. It logs each dialog to the leveled
// logger and, once observers have been told the dialog opened, resolves it
// the way the confirm trigger would: the default button if one exists,
// otherwise an implicit cancel. Dialogs without buttons (loaders) are left
// open for programmatic dismissal.
type Headless struct{}

// NewHeadless creates the headless renderer.
func NewHeadless() *Headless {
	return &Headless{}
}

// Render logs the dialog's content. There is no visual representation, so
// the handle is the dialog itself.
func (h *Headless) Render(d *Dialog) (RenderHandle, error) {
	title := sanitize.Clean(d.Title())
	text := sanitize.Clean(d.Text())
	if title != "" {
		log.Info("popup[%s]: %s: %s", kindOrDialog(d), title, text)
	} else {
		log.Info("popup[%s]: %s", kindOrDialog(d), text)
	}
	if labels := buttonLabels(d); labels != "" {
		log.Debug("popup[%s]: buttons: %s", kindOrDialog(d), labels)
	}
	return d, nil
}

// Teardown is a no-op; nothing was displayed.
func (h *Headless) Teardown(RenderHandle) error {
	return nil
}

// Opened auto-resolves the dialog after EventOpened. Loaders keep running
// until code dismisses them.
func (h *Headless) Opened(d *Dialog) {
	if len(d.Buttons()) == 0 {
		return
	}
	d.ConfirmTriggered()
}

func kindOrDialog(d *Dialog) string {
	if k := d.Kind(); k != "" {
		return k
	}
	return "dialog"
}

func buttonLabels(d *Dialog) string {
	btns := d.Buttons()
	labels := make([]string, len(btns))
	for i, b := range btns {
		labels[i] = b.Label
	}
	return strings.Join(labels, ", ")
}
