// ABOUTME: Tests for the cached glamour markdown renderer
// ABOUTME: Covers cache hits, width keying, and empty input

package btea

import (
	"strings"
	"testing"
)

func TestMarkdownRender_EmptyInput(t *testing.T) {
	t.Parallel()

	r := newMarkdownRenderer()
	if got := r.render("", 40); got != "" {
		t.Errorf("render(\"\") = %q, want empty", got)
	}
	if len(r.cache) != 0 {
		t.Errorf("empty input cached %d entries, want 0", len(r.cache))
	}
}

func TestMarkdownRender_ContainsText(t *testing.T) {
	t.Parallel()

	r := newMarkdownRenderer()
	out := r.render("plain body text", 40)
	if !strings.Contains(out, "plain body text") {
		t.Errorf("render output %q missing source text", out)
	}
	if strings.HasPrefix(out, "\n") || strings.HasSuffix(out, "\n") {
		t.Error("render output not trimmed of surrounding newlines")
	}
}

func TestMarkdownRender_CacheHitIsStable(t *testing.T) {
	t.Parallel()

	r := newMarkdownRenderer()
	first := r.render("**bold** statement", 40)
	second := r.render("**bold** statement", 40)

	if first != second {
		t.Errorf("cache hit differs: %q vs %q", first, second)
	}
	if len(r.cache) != 1 {
		t.Errorf("cache holds %d entries, want 1", len(r.cache))
	}
}

func TestMarkdownRender_WidthKeysCacheSeparately(t *testing.T) {
	t.Parallel()

	r := newMarkdownRenderer()
	r.render("the same body", 20)
	r.render("the same body", 60)

	if len(r.cache) != 2 {
		t.Errorf("cache holds %d entries, want 2 (one per width)", len(r.cache))
	}
}

func TestCacheKey_DistinguishesContentAndWidth(t *testing.T) {
	t.Parallel()

	a := cacheKey("one", 40)
	b := cacheKey("two", 40)
	c := cacheKey("one", 41)

	if a == b {
		t.Error("different content produced the same key")
	}
	if a == c {
		t.Error("different width produced the same key")
	}
}
