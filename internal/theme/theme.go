// ABOUTME: Semantic color roles for dialog rendering
// ABOUTME: Colors are lipgloss specs ("62", "#ff0000"); empty means terminal default

package theme

// Theme is a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// Palette maps dialog surfaces to colors. Values are lipgloss color
// specifications: ANSI 256 indexes ("62") or hex ("#7D56F4"). An empty value
// leaves the surface unstyled.
type Palette struct {
	Title       string
	Body        string
	Border      string
	Backdrop    string
	Placeholder string

	ButtonDefault string
	ButtonCancel  string
	ButtonNormal  string
	ButtonFocus   string

	FieldText   string
	FieldCursor string

	SelectMatch  string
	SelectChoice string
}

// merged returns p with every empty field inherited from base.
func (p Palette) merged(base Palette) Palette {
	if p.Title == "" {
		p.Title = base.Title
	}
	if p.Body == "" {
		p.Body = base.Body
	}
	if p.Border == "" {
		p.Border = base.Border
	}
	if p.Backdrop == "" {
		p.Backdrop = base.Backdrop
	}
	if p.Placeholder == "" {
		p.Placeholder = base.Placeholder
	}
	if p.ButtonDefault == "" {
		p.ButtonDefault = base.ButtonDefault
	}
	if p.ButtonCancel == "" {
		p.ButtonCancel = base.ButtonCancel
	}
	if p.ButtonNormal == "" {
		p.ButtonNormal = base.ButtonNormal
	}
	if p.ButtonFocus == "" {
		p.ButtonFocus = base.ButtonFocus
	}
	if p.FieldText == "" {
		p.FieldText = base.FieldText
	}
	if p.FieldCursor == "" {
		p.FieldCursor = base.FieldCursor
	}
	if p.SelectMatch == "" {
		p.SelectMatch = base.SelectMatch
	}
	if p.SelectChoice == "" {
		p.SelectChoice = base.SelectChoice
	}
	return p
}

// DefaultPalette is the palette used when no theme file is loaded.
func DefaultPalette() Palette {
	return Palette{
		Title:       "255",
		Body:        "252",
		Border:      "240",
		Backdrop:    "236",
		Placeholder: "243",

		ButtonDefault: "114",
		ButtonCancel:  "203",
		ButtonNormal:  "252",
		ButtonFocus:   "229",

		FieldText:   "255",
		FieldCursor: "214",

		SelectMatch:  "214",
		SelectChoice: "117",
	}
}
