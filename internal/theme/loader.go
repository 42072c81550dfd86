// ABOUTME: YAML theme file loading with default-palette inheritance
// ABOUTME: Unset fields fall back to DefaultPalette so every surface stays styled

package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// yamlTheme is the file representation. Fields use snake_case keys.
type yamlTheme struct {
	Name    string      `yaml:"name"`
	Base    string      `yaml:"base"`
	Palette yamlPalette `yaml:"palette"`
}

type yamlPalette struct {
	Title       string `yaml:"title"`
	Body        string `yaml:"body"`
	Border      string `yaml:"border"`
	Backdrop    string `yaml:"backdrop"`
	Placeholder string `yaml:"placeholder"`

	ButtonDefault string `yaml:"button_default"`
	ButtonCancel  string `yaml:"button_cancel"`
	ButtonNormal  string `yaml:"button_normal"`
	ButtonFocus   string `yaml:"button_focus"`

	FieldText   string `yaml:"field_text"`
	FieldCursor string `yaml:"field_cursor"`

	SelectMatch  string `yaml:"select_match"`
	SelectChoice string `yaml:"select_choice"`
}

// DefaultPath returns the conventional theme file location,
// ~/.popup-go/theme.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".popup-go", "theme.yaml")
}

// Load reads a theme file. Unset palette fields inherit from the base theme
// named in the file (a built-in; "default" when omitted). A missing file is
// an error; callers that treat the theme as optional should stat first or
// fall back to Builtin("default").
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	baseName := yt.Base
	if baseName == "" {
		baseName = "default"
	}
	base := Builtin(baseName)
	if base == nil {
		return nil, fmt.Errorf("unknown base theme %q", baseName)
	}

	name := yt.Name
	if name == "" {
		name = filepath.Base(path)
	}

	return &Theme{
		Name:    name,
		Palette: yt.Palette.toPalette().merged(base.Palette),
	}, nil
}

func (p yamlPalette) toPalette() Palette {
	return Palette{
		Title:       p.Title,
		Body:        p.Body,
		Border:      p.Border,
		Backdrop:    p.Backdrop,
		Placeholder: p.Placeholder,

		ButtonDefault: p.ButtonDefault,
		ButtonCancel:  p.ButtonCancel,
		ButtonNormal:  p.ButtonNormal,
		ButtonFocus:   p.ButtonFocus,

		FieldText:   p.FieldText,
		FieldCursor: p.FieldCursor,

		SelectMatch:  p.SelectMatch,
		SelectChoice: p.SelectChoice,
	}
}
