// ABOUTME: Neutralizes terminal escape sequences and control bytes in dialog text
// ABOUTME: Handles CSI, OSC, DCS/APC/PM, and simple ESC sequences before display

package sanitize

import "strings"

// Clean strips ANSI escape sequences from s and replaces remaining control
// bytes (except newline and tab) with spaces. Dialog titles and body text
// come from callers and may embed escape sequences that would corrupt the
// terminal if rendered verbatim.
func Clean(s string) string {
	if !needsClean(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '\x1b' {
			i = skipEscape(s, i)
			continue
		}
		if c < 0x20 && c != '\n' && c != '\t' {
			b.WriteByte(' ')
			i++
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

// needsClean is a fast scan for ESC or disallowed control bytes.
func needsClean(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 && c != '\n' && c != '\t' {
			return true
		}
	}
	return false
}

// skipEscape advances past the ANSI escape sequence starting at s[i] and
// returns the index of the first byte after it.
func skipEscape(s string, i int) int {
	i++ // ESC
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[':
		// CSI: ESC [ ... <final byte 0x40-0x7E>
		i++
		for i < len(s) {
			if b := s[i]; b >= 0x40 && b <= 0x7E {
				return i + 1
			}
			i++
		}
		return i
	case ']':
		// OSC: ESC ] ... (BEL or ST)
		i++
		for i < len(s) {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	case '_', 'P', '^':
		// APC, DCS, PM: terminated by ST
		i++
		for i < len(s) {
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	case '(':
		// Designate character set: ESC ( <char>
		if i+1 < len(s) {
			return i + 2
		}
		return i + 1
	default:
		return i + 1
	}
}
