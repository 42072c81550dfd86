// ABOUTME: Button and Role types for dialog action rows
// ABOUTME: Role drives confirm-trigger (Enter) and cancel-trigger (Esc) selection

package popup

// Role tags a button for keyboard resolution. The confirm trigger activates
// the first RoleDefault button; the cancel trigger activates the first
// RoleCancel button.
type Role int

const (
	// RoleUnset lets AddButton pick: the first button added becomes
	// RoleDefault, every later one RoleNormal.
	RoleUnset Role = iota
	// RoleDefault is activated by the confirm trigger (Enter).
	RoleDefault
	// RoleCancel is activated by the cancel trigger (Esc) and marks the
	// dialog cancelled when pressed.
	RoleCancel
	// RoleNormal is only activated by pressing the button itself.
	RoleNormal
)

// String returns the role name for logs and tests.
func (r Role) String() string {
	switch r {
	case RoleDefault:
		return "default"
	case RoleCancel:
		return "cancel"
	case RoleNormal:
		return "normal"
	default:
		return "unset"
	}
}

// Button is one action in a dialog. Value is the payload the dialog resolves
// with when the button is activated; it defaults to Label when nil.
// OnActivate, when set, is invoked with the outcome just before dismissal.
type Button struct {
	Label      string
	Value      any
	Role       Role
	OnActivate func(Result)
}
