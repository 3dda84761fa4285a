package strutil

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	lineBreaks      = regexp.MustCompile(`[\n\r]+`)
	lineTerminators = regexp.MustCompile(`\r?\n`)
)

// FastSplit splits s on a single character.
//
// Consecutive delimiters produce empty elements and a leading delimiter
// produces a leading empty element, but a trailing delimiter does not produce
// a trailing empty element. An empty s yields an empty slice.
func FastSplit(s string, delim rune) []string {
	parts := strings.Split(s, string(delim))
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Ellipsize shortens s to at most maxLen characters, replacing the tail with
// "..." when it has to cut. When maxLen is too small to hold the ellipsis
// the text is simply cut.
func Ellipsize(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// SplitLines splits text into lines on "\n" or "\r\n". With skipEmpty set,
// any run of '\r' and '\n' counts as a single break, so blank lines vanish.
//
// Trailing empty lines are dropped in both modes.
func SplitLines(text string, skipEmpty bool) []string {
	var lines []string
	if skipEmpty {
		lines = lineBreaks.Split(text, -1)
	} else {
		lines = lineTerminators.Split(text, -1)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if skipEmpty && len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	return lines
}

// FindLinesContaining returns the non-empty lines of text that contain sub.
func FindLinesContaining(text, sub string) []string {
	var matching []string
	for _, line := range SplitLines(text, true) {
		if strings.Contains(line, sub) {
			matching = append(matching, line)
		}
	}
	return matching
}

// ConcatLines joins lines with '\n'. The last line has no trailing newline.
func ConcatLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// JoinOnComma formats each item with fmt's %v verb and joins them with ','.
// A nil or empty slice yields "".
func JoinOnComma[T any](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, ",")
}
