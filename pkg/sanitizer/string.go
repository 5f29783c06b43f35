package sanitizer

import "strings"

// IsSpace reports whether r is whitespace as browsers define it for String.prototype.trim
// and the regexp \s class: ASCII space and \t\n\v\f\r, the Unicode Zs category and the
// line/paragraph separators, plus U+FEFF. U+0085 is not whitespace here.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00A0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// Trim removes leading and trailing whitespace as defined by IsSpace.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// Identity returns s unchanged. Useful as an explicit "no sanitizing" step in field tables.
func Identity(s string) string {
	return s
}
