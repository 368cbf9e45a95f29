package md2html

import "strings"

// LineKind identifies how a single input line is treated.
type LineKind uint8

const (
	// LineText is paragraph text, the fallback kind.
	LineText LineKind = iota
	// LineHeading is an ATX heading of level 1 through 6.
	LineHeading
	// LineListItem is an unordered (`- `) or ordered (`* `) list item.
	LineListItem
	// LineBlank is an empty or whitespace-only line.
	LineBlank
)

func (k LineKind) String() string {
	switch k {
	case LineHeading:
		return "heading"
	case LineListItem:
		return "list-item"
	case LineBlank:
		return "blank"
	default:
		return "text"
	}
}

// ListKind is the flavor of a list item or of the currently open list.
type ListKind uint8

const (
	ListNone ListKind = iota
	ListUnordered
	ListOrdered
)

const maxHeadingLevel = 6

// Line is a classified input line.
type Line struct {
	Kind  LineKind
	Level int
	List  ListKind
	Text  string
}

// Classify decides the kind of a single line. Checks run in precedence
// order: heading, unordered item, ordered item, blank, text.
func Classify(line string) Line {
	line = trimCR(line)
	if level, text, ok := parseHeading(line); ok {
		return Line{Kind: LineHeading, Level: level, Text: text}
	}
	if list, text, ok := parseListMarker(line); ok {
		return Line{Kind: LineListItem, List: list, Text: strings.TrimSpace(text)}
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Line{Kind: LineBlank}
	}
	return Line{Kind: LineText, Text: trimmed}
}

// parseHeading matches 1-6 '#' followed by a space and at least one more
// character. A longer run of '#' is not a heading.
func parseHeading(text string) (int, string, bool) {
	level := 0
	for level < len(text) && text[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return 0, "", false
	}
	if level+1 >= len(text) || text[level] != ' ' {
		return 0, "", false
	}
	return level, text[level+1:], true
}

// parseListMarker matches "- " (unordered) or "* " (ordered) followed by at
// least one character.
func parseListMarker(text string) (ListKind, string, bool) {
	if len(text) < 3 || text[1] != ' ' {
		return ListNone, "", false
	}
	switch text[0] {
	case '-':
		return ListUnordered, text[2:], true
	case '*':
		return ListOrdered, text[2:], true
	}
	return ListNone, "", false
}

func trimCR(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\r' {
		return s[:len(s)-1]
	}
	return s
}

// splitLines splits src on '\n'. A final newline does not produce an extra
// empty line.
func splitLines(src string) []string {
	if src == "" {
		return nil
	}
	src = strings.TrimSuffix(src, "\n")
	return strings.Split(src, "\n")
}
