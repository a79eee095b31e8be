package reformat

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeName converts a dash- or colon-delimited markup attribute name
// into its camelCase JSX form: "stroke-width" → "strokeWidth",
// "xlink:href" → "xlinkHref". Dashes take precedence over colons.
func NormalizeName(name string) string {
	sep := ":"
	if strings.Contains(name, "-") {
		sep = "-"
	}
	parts := strings.Split(name, sep)
	if len(parts) == 1 {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		b.WriteString(upperFirst(part))
	}
	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
