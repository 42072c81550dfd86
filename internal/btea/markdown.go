// ABOUTME: Markdown body rendering via glamour with width-keyed caching
// ABOUTME: Falls back to the raw text when glamour cannot render

package btea

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer wraps glamour and caches rendered bodies. Dialog bodies
// re-render on every View call, so caching by content hash and width keeps
// the update loop cheap.
type markdownRenderer struct {
	cache map[string]string // "hash:width" -> rendered
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{cache: make(map[string]string)}
}

// render returns the terminal-styled rendering of md wrapped to width.
func (r *markdownRenderer) render(md string, width int) string {
	if md == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	key := cacheKey(md, width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	out = strings.Trim(out, "\n")

	r.cache[key] = out
	return out
}

func cacheKey(md string, width int) string {
	sum := sha256.Sum256([]byte(md))
	return fmt.Sprintf("%x:%d", sum[:8], width)
}
