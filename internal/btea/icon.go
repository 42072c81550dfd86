// ABOUTME: Dialog icon rendering: image files become ANSI half-block art
// ABOUTME: Non-path references are treated as literal glyphs

package btea

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Register decoders for common icon formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// imageExts are the icon file extensions rendered as half-block art.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// renderIcon turns an icon reference into display lines. References ending
// in a known image extension are decoded and scaled into half-block cells;
// anything else (emoji, a glyph, a short label) is returned as-is.
func renderIcon(ref string, maxCols int) []string {
	if ref == "" {
		return nil
	}
	if !imageExts[strings.ToLower(filepath.Ext(ref))] {
		return []string{ref}
	}
	f, err := os.Open(ref)
	if err != nil {
		return []string{"⚠"}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return []string{"⚠"}
	}
	return halfBlockLines(img, maxCols)
}

// halfBlockLines converts an image to ANSI art using the lower-half block
// character (▄). For every two pixel rows: background = top pixel,
// foreground = bottom pixel. The image is scaled to maxCols preserving
// aspect ratio.
func halfBlockLines(img image.Image, maxCols int) []string {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW == 0 || srcH == 0 || maxCols <= 0 {
		return nil
	}

	targetW := srcW
	targetH := srcH
	if targetW > maxCols {
		targetH = targetH * maxCols / targetW
		targetW = maxCols
	}
	if targetW < 1 {
		targetW = 1
	}
	if targetH < 1 {
		targetH = 1
	}

	var scaled image.Image
	if targetW != srcW || targetH != srcH {
		dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		scaled = dst
	} else {
		scaled = img
	}

	var lines []string
	for y := 0; y < targetH; y += 2 {
		var b strings.Builder
		for x := range targetW {
			topR, topG, topB := rgbAt(scaled, x, y)

			var botR, botG, botB uint8
			if y+1 < targetH {
				botR, botG, botB = rgbAt(scaled, x, y+1)
			}

			fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm▄",
				topR, topG, topB, botR, botG, botB)
		}
		b.WriteString("\x1b[0m")
		lines = append(lines, b.String())
	}
	return lines
}

// rgbAt extracts the 8-bit RGB components of the pixel at (x, y).
func rgbAt(img image.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}
