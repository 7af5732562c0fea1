package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeLaTeX(""))
}

func TestEscapeLaTeX_NoSpecialCharacters(t *testing.T) {
	text := "This is normal text with no special characters"
	assert.Equal(t, text, EscapeLaTeX(text))
}

func TestEscapeLaTeX_Backslash(t *testing.T) {
	assert.Equal(t, "test\\textbackslash{}backslash", EscapeLaTeX("test\\backslash"))
}

func TestEscapeLaTeX_CurlyBraces(t *testing.T) {
	assert.Equal(t, "text\\{with\\}braces", EscapeLaTeX("text{with}braces"))
}

func TestEscapeLaTeX_DollarSign(t *testing.T) {
	assert.Equal(t, "cost \\$100", EscapeLaTeX("cost $100"))
}

func TestEscapeLaTeX_Ampersand(t *testing.T) {
	assert.Equal(t, "A \\& B", EscapeLaTeX("A & B"))
}

func TestEscapeLaTeX_Percent(t *testing.T) {
	assert.Equal(t, "100\\% complete", EscapeLaTeX("100% complete"))
}

func TestEscapeLaTeX_Hash(t *testing.T) {
	assert.Equal(t, "issue \\#123", EscapeLaTeX("issue #123"))
}

func TestEscapeLaTeX_Caret(t *testing.T) {
	assert.Equal(t, "x\\textasciicircum{}2", EscapeLaTeX("x^2"))
}

func TestEscapeLaTeX_Underscore(t *testing.T) {
	assert.Equal(t, "variable\\_name", EscapeLaTeX("variable_name"))
}

func TestEscapeLaTeX_Tilde(t *testing.T) {
	assert.Equal(t, "\\textasciitilde{}approx", EscapeLaTeX("~approx"))
}

func TestEscapeLaTeX_AllNineReservedCharacters(t *testing.T) {
	result := EscapeLaTeX("test${}~&%#^_\\")
	expected := "test\\$\\{\\}\\textasciitilde{}\\&\\%\\#\\textasciicircum{}\\_\\textbackslash{}"
	assert.Equal(t, expected, result)
}

func TestEscapeLaTeX_UnicodePassesThrough(t *testing.T) {
	text := "résumé with unicode: α β γ"
	assert.Equal(t, text, EscapeLaTeX(text))
}

// Escaping is intentionally not idempotent: a second pass re-escapes the
// backslashes produced by the first.
func TestEscapeLaTeX_DoubleEscapingIsNotIdempotent(t *testing.T) {
	once := EscapeLaTeX("a\\b")
	twice := EscapeLaTeX(once)
	assert.NotEqual(t, once, twice)
	assert.Contains(t, twice, "\\textbackslash{}textbackslash")
}

func TestEscapeLaTeX_DoubleEscapeWithoutBackslashStillChanges(t *testing.T) {
	once := EscapeLaTeX("50% done")
	twice := EscapeLaTeX(once)
	assert.NotEqual(t, once, twice)
}

func TestEscapeLaTeX_MixedContent(t *testing.T) {
	result := EscapeLaTeX("Built system handling $1M+ requests/day with 99.9% uptime")
	assert.Contains(t, result, "\\$1M")
	assert.Contains(t, result, "99.9\\%")
	assert.Contains(t, result, "requests/day")
}

func TestEscapeValue_NonStringInput(t *testing.T) {
	assert.Equal(t, "42", EscapeValue(42))
	assert.Equal(t, "3.8", EscapeValue(3.8))
	assert.Equal(t, "", EscapeValue(nil))
}

func TestEscapeValue_StringInput(t *testing.T) {
	assert.Equal(t, "C\\&C", EscapeValue("C&C"))
}

// Once escaped, no bare reserved character survives except as part of
// an escape sequence's command text.
func TestEscapeLaTeX_NoUnescapedReservedCharacters(t *testing.T) {
	input := "a&b%c$d#e^f_g{h}i~j\\k"
	result := EscapeLaTeX(input)

	stripped := result
	for _, seq := range []string{
		`\textbackslash{}`, `\textasciicircum{}`, `\textasciitilde{}`,
		`\{`, `\}`, `\$`, `\&`, `\%`, `\#`, `\_`,
	} {
		stripped = strings.ReplaceAll(stripped, seq, "")
	}
	for _, reserved := range []string{"\\", "&", "%", "$", "#", "^", "_", "{", "}", "~"} {
		assert.NotContains(t, stripped, reserved)
	}
}
