package contract

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics is the Combining Diacritical Marks block, U+0300..U+036F
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

var (
	leadingInvalid = regexp.MustCompile(`^[^a-zA-Z$_]+`)
	separatorRun   = regexp.MustCompile(`[^\w$]+(.?)`)
)

// SanitizeName turns free-form text into a capitalized identifier:
// accents are removed, leading characters that cannot start an identifier
// are dropped and separator runs are collapsed in camel case.
//
//	" 4trash[Name]" -> "TrashName"
func SanitizeName(name string) string {
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)))
	result, _, err := transform.String(stripAccents, name)
	if err != nil {
		result = name
	}

	result = leadingInvalid.ReplaceAllString(result, "")
	if result != "" {
		result = strings.ToUpper(result[:1]) + result[1:]
	}

	return separatorRun.ReplaceAllStringFunc(result, func(match string) string {
		next := separatorRun.FindStringSubmatch(match)[1]
		return strings.ToUpper(next)
	})
}
