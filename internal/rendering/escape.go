// Package rendering provides the dynamic LaTeX template engine used to turn
// resume data into a compilable document.
package rendering

import (
	"fmt"
	"strings"
)

// EscapeLaTeX escapes special LaTeX characters in text.
// Special characters: \ { } $ & % # ^ _ ~
//
// Escaping is not idempotent: escaping already-escaped text double-escapes
// the backslashes introduced by the first pass. Apply exactly once, at the
// point where user-sourced text enters the template data.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '$':
			result.WriteString(`\$`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '_':
			result.WriteString(`\_`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// EscapeValue stringifies a value and escapes it for LaTeX output.
// Non-string inputs are rendered with their default string form first.
func EscapeValue(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return EscapeLaTeX(s)
	}
	return EscapeLaTeX(fmt.Sprint(value))
}
