// ABOUTME: Display-width measurement and fitting for dialog layout
// ABOUTME: Grapheme-aware via uniseg/runewidth with an LRU cache for non-ASCII strings

package textwidth

import (
	"container/list"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 512

// lruEntry holds a cached width measurement.
type lruEntry struct {
	key   string
	value int
}

// cache is an O(1) LRU for non-ASCII string widths.
type cache struct {
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List
	size  int
}

func newCache(size int) *cache {
	return &cache{
		items: make(map[string]*list.Element, size),
		order: list.New(),
		size:  size,
	}
}

func (c *cache) get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if !ok {
		return 0, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(lruEntry).value, true
}

func (c *cache) put(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.size {
		back := c.order.Back()
		if back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry{key: key, value: value})
}

var widthCache = newCache(cacheSize)

// Width returns the display width of s in terminal cells. Grapheme clusters
// may be wider than one cell for East Asian characters and emoji. The input
// is expected to be sanitized already; escape sequences are not handled.
func Width(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.get(s); ok {
		return w
	}
	w := computeWidth(s)
	widthCache.put(s, w)
	return w
}

// isPlainASCII reports whether s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// computeWidth measures the visible width by iterating grapheme clusters.
func computeWidth(s string) int {
	w := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		w += graphemeWidth(cluster)
		s = rest
		state = newState
	}
	return w
}

// graphemeWidth returns the display width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// Truncate fits s into max cells, appending "…" when it had to cut. max
// below 1 yields the empty string.
func Truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	if Width(s) <= max {
		return s
	}

	var b strings.Builder
	w := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		cluster, r, _, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		cw := graphemeWidth(cluster)
		if w+cw > max-1 {
			break
		}
		b.WriteString(cluster)
		w += cw
		rest = r
		state = newState
	}
	b.WriteString("…")
	return b.String()
}

// Center pads s with spaces on both sides to total cells. Strings already
// at or past the target width are returned unchanged.
func Center(s string, total int) string {
	w := Width(s)
	if w >= total {
		return s
	}
	left := (total - w) / 2
	right := total - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// PadRight pads s with spaces to total cells.
func PadRight(s string, total int) string {
	w := Width(s)
	if w >= total {
		return s
	}
	return s + strings.Repeat(" ", total-w)
}
