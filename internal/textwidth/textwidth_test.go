// ABOUTME: Tests for display-width measurement, truncation, and padding
// ABOUTME: Exercises ASCII fast path, wide runes, combining marks, and the cache

package textwidth

import "testing"

func TestWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"wide cjk", "你好", 4},
		{"emoji", "✅", 2},
		{"mixed", "ab你", 4},
		{"combining", "é", 1}, // é as base + combining acute
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Width(tt.in); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestWidth_CacheStable(t *testing.T) {
	t.Parallel()

	s := "日本語テキスト"
	first := Width(s)
	second := Width(s) // cached path
	if first != second {
		t.Errorf("cached width %d differs from computed %d", second, first)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdef", 5, "abcd…"},
		{"zero", "abc", 0, ""},
		{"one", "abc", 1, "…"},
		{"wide no split", "你好吗", 4, "你…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	t.Parallel()

	if got := Center("ab", 6); got != "  ab  " {
		t.Errorf("Center = %q", got)
	}
	if got := Center("ab", 5); got != " ab  " {
		t.Errorf("Center odd = %q", got)
	}
	if got := Center("abcdef", 4); got != "abcdef" {
		t.Errorf("Center overflow = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcd", 2); got != "abcd" {
		t.Errorf("PadRight overflow = %q", got)
	}
}
