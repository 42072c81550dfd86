// ABOUTME: Text input field attached to a dialog
// ABOUTME: The renderer mutates Value as the user types; callers read it back by index

package popup

// Field is a text input belonging to a dialog. Kind tags the input type
// ("text" for fields added with AddTextField). The render collaborator
// updates Value through Dialog.SetFieldValue as the user edits.
type Field struct {
	Value       string
	Kind        string
	Placeholder string
}
