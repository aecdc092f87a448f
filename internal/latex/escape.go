// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex serializes a classified document into LaTeX source: a fixed
// preamble, one template per block kind, and a closing \end{document}.
package latex

import "strings"

// escapes maps each LaTeX special character to its escaped form. The
// replacement happens in a single pass keyed by the original rune, so
// replacement text (which itself contains backslashes and braces) is never
// re-escaped.
var escapes = map[rune]string{
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
	'\\': `\textbackslash{}`,
}

// Escape returns text with all LaTeX special characters replaced by their
// escaped forms.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if esc, ok := escapes[r]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
