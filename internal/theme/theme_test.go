// ABOUTME: Tests for built-in themes and YAML loading with inheritance
// ABOUTME: Covers unknown names, missing files, and palette merging

package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltin(t *testing.T) {
	t.Parallel()

	for _, name := range BuiltinNames() {
		th := Builtin(name)
		if th == nil {
			t.Fatalf("Builtin(%q) = nil", name)
		}
		if th.Name != name {
			t.Errorf("theme name = %q, want %q", th.Name, name)
		}
		if th.Palette.Border == "" {
			t.Errorf("builtin %q has an unset border color", name)
		}
	}

	if Builtin("nope") != nil {
		t.Error("Builtin of unknown name should be nil")
	}
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	t.Parallel()

	a := Builtin("default")
	a.Palette.Border = "999"
	b := Builtin("default")
	if b.Palette.Border == "999" {
		t.Error("mutating a Builtin result leaked into the registry")
	}
}

func TestLoad_InheritsUnsetFields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	content := `name: custom
palette:
  border: "99"
  button_default: "100"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Name != "custom" {
		t.Errorf("name = %q, want custom", th.Name)
	}
	if th.Palette.Border != "99" {
		t.Errorf("border = %q, want 99", th.Palette.Border)
	}
	if th.Palette.ButtonDefault != "100" {
		t.Errorf("button_default = %q, want 100", th.Palette.ButtonDefault)
	}
	def := DefaultPalette()
	if th.Palette.Title != def.Title {
		t.Errorf("title = %q, want inherited %q", th.Palette.Title, def.Title)
	}
	if th.Palette.FieldCursor != def.FieldCursor {
		t.Errorf("field_cursor = %q, want inherited %q", th.Palette.FieldCursor, def.FieldCursor)
	}
}

func TestLoad_ExplicitBase(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	content := `base: dark
palette:
  title: "11"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	dark := Builtin("dark")
	if th.Palette.Title != "11" {
		t.Errorf("title = %q, want override 11", th.Palette.Title)
	}
	if th.Palette.Border != dark.Palette.Border {
		t.Errorf("border = %q, want dark base %q", th.Palette.Border, dark.Palette.Border)
	}
}

func TestLoad_UnknownBase(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("base: nonexistent\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with unknown base should fail")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("palette: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of invalid YAML should fail")
	}
}
