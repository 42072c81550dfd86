// ABOUTME: Package popup serializes modal dialog presentation for terminal apps
// ABOUTME: FIFO queue admits one dialog at a time; per-dialog lifecycle state machine

// Package popup presents modal alerts, confirmations, prompts, selects, and
// loaders, one at a time.
//
// A Dialog is configured, shown, and eventually dismissed. Show enqueues the
// dialog into a presentation Queue; the queue admits dialogs in strict FIFO
// order and guarantees at most one is rendered at any moment. Dismissal
// removes the dialog from the queue (letting the next one render), tears down
// its visual representation, and notifies observers.
//
// Rendering is pluggable. The library ships a headless renderer that logs the
// dialog and auto-resolves it, so code running outside a terminal never
// hangs; interactive programs install a real renderer such as the Bubble Tea
// one in internal/btea.
//
// Typical use:
//
//	d := popup.Confirm("Delete 3 files?", popup.WithTitle("Confirm"))
//	res := <-d.Done()
//	if !res.Cancelled && res.Value == true {
//		// proceed
//	}
package popup
