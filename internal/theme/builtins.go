// ABOUTME: Built-in themes: default, dark, light
// ABOUTME: Builtin(name) lookup plus BuiltinNames enumeration

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Title:       "231",
			Body:        "250",
			Border:      "238",
			Backdrop:    "234",
			Placeholder: "241",

			ButtonDefault: "78",
			ButtonCancel:  "167",
			ButtonNormal:  "250",
			ButtonFocus:   "222",

			FieldText:   "231",
			FieldCursor: "208",

			SelectMatch:  "208",
			SelectChoice: "111",
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Title:       "16",
			Body:        "235",
			Border:      "250",
			Backdrop:    "254",
			Placeholder: "246",

			ButtonDefault: "28",
			ButtonCancel:  "124",
			ButtonNormal:  "235",
			ButtonFocus:   "94",

			FieldText:   "16",
			FieldCursor: "166",

			SelectMatch:  "166",
			SelectChoice: "25",
		},
	},
}

// Builtin returns a copy of the named built-in theme, or nil if unknown.
func Builtin(name string) *Theme {
	t, ok := builtins[name]
	if !ok {
		return nil
	}
	cp := *t
	return &cp
}

// BuiltinNames returns the available built-in theme names.
func BuiltinNames() []string {
	return []string{"default", "dark", "light"}
}
