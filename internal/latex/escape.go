// Package latex provides escaping of text for inclusion in LaTeX documents.
package latex

import "strings"

// escaper replaces each special character exactly once. No replacement
// contains a character escaped by a later pair, so the single pass equals
// applying the pairs one after another in this order.
var escaper = strings.NewReplacer(
	"{", `\{`,
	"}", `\}`,
	"&", `\&`,
	"%", `\%`,
	"_", `\_`,
	"$", `\$`,
	"#", `\#`,
	"^", `\^{}`,
	"~", `\~{}`,
)

// Escape escapes the LaTeX metacharacters { } & % _ $ # ^ ~ in s.
// Backslashes are left alone, so escaping already-escaped text is not
// idempotent.
func Escape(s string) string {
	return escaper.Replace(s)
}
