package typeset

import "strings"

// Escape prepares free text for insertion into a LaTeX document. The text is
// treated as alternating plain and math spans: every unescaped $ toggles the
// mode, while \$ is kept verbatim and does not toggle. Plain spans have the
// reserved metacharacters escaped and square brackets rewritten into the
// pronunciation-guide wrapper; math spans pass through untouched so embedded
// formulas survive.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inMath := false
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) && runes[i+1] == '$' {
			b.WriteString(`\$`)
			i++
			continue
		}
		if r == '$' {
			inMath = !inMath
			b.WriteRune('$')
			continue
		}
		if inMath {
			b.WriteRune(r)
			continue
		}
		switch r {
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '{':
			b.WriteString(`\{`)
		case '}':
			b.WriteString(`\}`)
		case '^':
			b.WriteString(`\^{}`)
		case '_':
			b.WriteString(`\_`)
		case '~':
			b.WriteString(`\~{}`)
		case '#':
			b.WriteString(`\#`)
		case '&':
			b.WriteString(`\&`)
		case '%':
			b.WriteString(`\%`)
		case '[':
			b.WriteString(`\pg{`)
		case ']':
			b.WriteString(`}`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
