// ABOUTME: Tests for escape-sequence and control-byte neutralization
// ABOUTME: Covers CSI, OSC, DCS, bare ESC, and control characters

package sanitize

import "testing"

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"empty", "", ""},
		{"sgr color", "\x1b[31mdanger\x1b[0m", "danger"},
		{"csi cursor", "a\x1b[2Jb", "ab"},
		{"osc title bel", "\x1b]0;evil\x07text", "text"},
		{"osc title st", "\x1b]0;evil\x1b\\text", "text"},
		{"dcs", "\x1bPq payload\x1b\\ok", "ok"},
		{"charset", "\x1b(Bascii", "ascii"},
		{"bare esc at end", "abc\x1b", "abc"},
		{"control bytes", "a\x00b\x08c", "a b c"},
		{"keeps newline and tab", "line1\n\tline2", "line1\n\tline2"},
		{"unicode untouched", "héllo ✓", "héllo ✓"},
		{"unterminated csi", "x\x1b[12", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
