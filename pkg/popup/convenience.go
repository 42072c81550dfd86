// ABOUTME: Convenience constructors: Alert, Confirm, Prompt, Select, Loader
// ABOUTME: Thin facades over the Dialog state machine; each returns the dialog already shown

package popup

// Alert shows a dialog with a single accepting button. The dialog resolves
// with that button's value whichever trigger fires.
func Alert(text string, opts ...Option) *Dialog {
	o := applyOptions(opts)
	d := newFromOptions(text, o)
	d.kind = "alert"
	_ = d.AddButton(Button{Label: o.acceptLabel, Role: RoleDefault})
	return d.Show()
}

// Confirm shows a dialog with accept and reject buttons resolving to true
// and false. The reject button is a plain button, not a cancel surface: Esc
// on a cancelable confirm dismisses with no outcome rather than false.
func Confirm(text string, opts ...Option) *Dialog {
	o := applyOptions(opts)
	d := newFromOptions(text, o)
	d.kind = "confirm"
	_ = d.AddButton(Button{Label: o.acceptLabel, Value: true, Role: RoleDefault})
	_ = d.AddButton(Button{Label: o.rejectLabel, Value: false, Role: RoleNormal})
	return d.Show()
}

// Prompt shows a dialog with one text field plus accept and reject buttons.
// Use Answer to read the field back: it yields the field's value on accept
// (button or Enter in the field) and reports no answer when cancelled. The
// reject button carries RoleCancel so both it and Esc mean "no answer".
func Prompt(text, defaultValue string, opts ...Option) *Dialog {
	o := applyOptions(opts)
	d := newFromOptions(text, o)
	d.kind = "prompt"
	_ = d.AddTextField(defaultValue, o.placeholder)
	_ = d.AddButton(Button{Label: o.acceptLabel, Value: true, Role: RoleDefault})
	_ = d.AddButton(Button{Label: o.rejectLabel, Value: nil, Role: RoleCancel})
	return d.Show()
}

// Select shows a single-choice dialog with one button per option, resolving
// with the chosen option string. The first option is the confirm-trigger
// default. The Bubble Tea renderer presents the options as a fuzzy-filterable
// list rather than a button row.
func Select(text string, options []string, opts ...Option) *Dialog {
	o := applyOptions(opts)
	d := newFromOptions(text, o)
	d.kind = "select"
	for i, opt := range options {
		role := RoleNormal
		if i == 0 {
			role = RoleDefault
		}
		_ = d.AddButton(Button{Label: opt, Value: opt, Role: role})
	}
	return d.Show()
}

// Loader shows a buttonless dialog that only programmatic Dismiss or
// DismissIn can resolve. cancelable controls whether Esc and the backdrop
// may close it early.
func Loader(text string, cancelable bool, opts ...Option) *Dialog {
	o := applyOptions(opts)
	o.cancelable = cancelable
	d := newFromOptions(text, o)
	d.kind = "loader"
	return d.Show()
}

// newFromOptions builds a Dialog from already-applied options.
func newFromOptions(text string, o dialogOptions) *Dialog {
	return &Dialog{
		text:       text,
		title:      o.title,
		icon:       o.icon,
		cancelable: o.cancelable,
		queue:      o.queue,
		renderer:   o.renderer,
		notifier:   NewNotifier(),
	}
}
