package docblock

import (
	"regexp"
	"strings"
)

var (
	openingMarker = regexp.MustCompile(`^/+\*{2,} ?`) // /**
	closingMarker = regexp.MustCompile(` ?\*+/$`)     // */
	leadingMarker = regexp.MustCompile(`^\s*\* ?`)    // * on inner lines

	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// blanks is the set trimmed from comment text and descriptions. Other Unicode
// spaces such as U+00A0 are content.
const blanks = " \t\n\r\x00\x0b"

func trimBlanks(s string) string {
	return strings.Trim(s, blanks)
}

// normalizeLines strips the comment markers from raw and returns the content
// lines. Blank lines left at the very start or end by marker removal are dropped.
func normalizeLines(raw string) []string {
	text := lineEndings.Replace(trimBlanks(raw))

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = openingMarker.ReplaceAllString(line, "")
		line = closingMarker.ReplaceAllString(line, "")
		line = leadingMarker.ReplaceAllString(line, "")
		lines[i] = line
	}

	return strings.Split(trimBlanks(strings.Join(lines, "\n")), "\n")
}
