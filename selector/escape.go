package selector

import (
	"fmt"
	"strings"
)

// EscapeIdent escapes s for use as a CSS identifier after '#' or '.', with
// the semantics of CSS.escape. Code point escapes always carry six hex
// digits so they need no terminating space and the result stays a single
// whitespace-free component.
func EscapeIdent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		switch {
		case r == 0:
			b.WriteRune('\uFFFD')
		case r <= 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\%06x`, r)
		case isDigit(r) && (i == 0 || i == 1 && s[0] == '-'):
			fmt.Fprintf(&b, `\%06x`, r)
		case r == '-' && i == 0 && len(s) == 1:
			b.WriteString(`\-`)
		case r >= 0x80 || r == '-' || r == '_' || isDigit(r) || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
