// ABOUTME: Result types carried by dialog lifecycle notifications
// ABOUTME: Kind distinguishes cancel, button press, and text-field submit

package popup

// ResultKind classifies how a dialog was resolved.
type ResultKind int

const (
	// ResultNone means the dialog was dismissed without an outcome value.
	ResultNone ResultKind = iota
	// ResultButton means a button supplied the outcome value.
	ResultButton
	// ResultFieldSubmit means Enter in the last text field resolved the
	// dialog; Value holds that field's content at submit time.
	ResultFieldSubmit
)

// String returns the kind name for logs and tests.
func (k ResultKind) String() string {
	switch k {
	case ResultNone:
		return "none"
	case ResultButton:
		return "button"
	case ResultFieldSubmit:
		return "field-submit"
	default:
		return "unknown"
	}
}

// Result is the resolved outcome of a dialog. It is the payload of every
// lifecycle notification.
type Result struct {
	Kind      ResultKind
	Value     any
	Cancelled bool
}

// NoResult is the sentinel outcome for a dismissal that supplied no value.
// Dismissing with it marks the dialog cancelled.
var NoResult = Result{Kind: ResultNone}
