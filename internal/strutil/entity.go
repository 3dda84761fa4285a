package strutil

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

var namedEntities = map[string]string{
	"apos": "'",
	"quot": `"`,
	"gt":   ">",
	"lt":   "<",
	"amp":  "&",
}

// ResolveEntity resolves a single HTML/XML entity given without the leading
// '&' and trailing ';'.
//
// Numeric references ("#65", "#x41") and the five XML entities (apos, quot,
// gt, lt, amp) are resolved. Anything else, including a malformed or
// out-of-range numeric reference, is returned unchanged. Use UnescapeHTML
// for the full HTML5 entity table.
func ResolveEntity(entity string) string {
	if len(entity) > 1 && entity[0] == '#' {
		var n uint64
		var err error
		if entity[1] == 'x' || entity[1] == 'X' {
			n, err = strconv.ParseUint(entity[2:], 16, 32)
		} else {
			n, err = strconv.ParseUint(entity[1:], 10, 32)
		}
		if err != nil || !utf8.ValidRune(rune(n)) {
			return entity
		}
		return string(rune(n))
	}
	if s, ok := namedEntities[entity]; ok {
		return s
	}
	return entity
}

// UnescapeHTML replaces every entity in s, named or numeric, using the HTML5
// rules.
func UnescapeHTML(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return html.UnescapeString(s)
}
