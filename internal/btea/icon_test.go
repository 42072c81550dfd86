// ABOUTME: Tests for icon rendering: glyph passthrough and half-block art
// ABOUTME: Encodes a small PNG on the fly to exercise the image path

package btea

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 128, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "icon.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestRenderIcon_EmptyRef(t *testing.T) {
	t.Parallel()

	if got := renderIcon("", 16); got != nil {
		t.Errorf("renderIcon(\"\") = %v, want nil", got)
	}
}

func TestRenderIcon_GlyphPassthrough(t *testing.T) {
	t.Parallel()

	for _, ref := range []string{"⚠", "ℹ️", "?"} {
		got := renderIcon(ref, 16)
		if len(got) != 1 || got[0] != ref {
			t.Errorf("renderIcon(%q) = %v, want single passthrough line", ref, got)
		}
	}
}

func TestRenderIcon_MissingFile(t *testing.T) {
	t.Parallel()

	got := renderIcon(filepath.Join(t.TempDir(), "nope.png"), 16)
	if len(got) != 1 || got[0] != "⚠" {
		t.Errorf("renderIcon(missing) = %v, want warning glyph", got)
	}
}

func TestRenderIcon_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := renderIcon(path, 16)
	if len(got) != 1 || got[0] != "⚠" {
		t.Errorf("renderIcon(corrupt) = %v, want warning glyph", got)
	}
}

func TestRenderIcon_ImageBecomesHalfBlocks(t *testing.T) {
	t.Parallel()

	path := writeTestPNG(t, 8, 8)
	lines := renderIcon(path, 16)

	// 8 rows pack into 4 half-block lines.
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}
	for i, l := range lines {
		if !strings.Contains(l, "▄") {
			t.Errorf("line %d missing half-block character", i)
		}
		if !strings.HasSuffix(l, "\x1b[0m") {
			t.Errorf("line %d missing trailing reset", i)
		}
	}
}

func TestHalfBlockLines_ScalesWideImages(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 64, 16))
	lines := halfBlockLines(img, 16)

	// 64x16 scales to 16x4, packing into 2 lines of 16 cells.
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if got := strings.Count(lines[0], "▄"); got != 16 {
		t.Errorf("cells per line = %d, want 16", got)
	}
}

func TestHalfBlockLines_EmptyImage(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if got := halfBlockLines(img, 16); got != nil {
		t.Errorf("halfBlockLines(empty) = %v, want nil", got)
	}
}
