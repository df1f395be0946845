// Package formatter renders and re-indents doc comments
package formatter

import (
	"strings"

	"docscan/pkg/docblock"
)

// Formatter handles doc comment rendering
type Formatter struct {
	indentSize int
	useSpaces  bool
}

// New creates a new formatter
func New() *Formatter {
	return &Formatter{
		indentSize: 4,
		useSpaces:  true,
	}
}

// NewWithTabs creates a formatter that indents with one tab per level
func NewWithTabs() *Formatter {
	return &Formatter{indentSize: 1, useSpaces: false}
}

// FormatComment renders a parse result as a doc comment at the given nesting
// depth. Description and tag sections are separated by a blank marker line.
func (f *Formatter) FormatComment(result docblock.Result, depth int) string {
	indent := f.getIndent(depth)

	var sections [][]string
	if result.ShortDescription != "" {
		sections = append(sections, []string{result.ShortDescription})
	}
	if result.LongDescription != "" {
		sections = append(sections, strings.Split(result.LongDescription, "\n"))
	}
	if len(result.Tags) > 0 {
		var lines []string
		for _, tag := range result.Tags {
			lines = append(lines, formatTag(tag)...)
		}
		sections = append(sections, lines)
	}

	var b strings.Builder
	b.WriteString(indent + "/**\n")
	for i, section := range sections {
		if i > 0 {
			b.WriteString(indent + " *\n")
		}
		for _, line := range section {
			writeLine(&b, indent, line)
		}
	}
	b.WriteString(indent + " */")

	return b.String()
}

// formatTag returns the content lines of a tag, name first
func formatTag(tag docblock.Tag) []string {
	lines := strings.Split(tag.Value, "\n")
	if lines[0] == "" {
		lines[0] = tag.Name
	} else {
		lines[0] = tag.Name + " " + lines[0]
	}
	return lines
}

func writeLine(b *strings.Builder, indent, line string) {
	if strings.TrimSpace(line) == "" {
		b.WriteString(indent + " *\n")
		return
	}
	b.WriteString(indent + " * " + line + "\n")
}

// Reindent rewrites the indentation of every marker line of raw: the opening
// /** starts at prefix, and each leading * or closing */ at prefix plus one
// space. All other bytes are kept as written.
func (f *Formatter) Reindent(raw, prefix string) string {
	cursor := docblock.NewTokenCursor(raw)

	var b strings.Builder
	atLineStart := true

	for !cursor.IsAtEnd() {
		if atLineStart {
			atLineStart = false
			start := cursor.Position()
			cursor.Match(docblock.TokenWhitespaceIndent)

			next, ok := cursor.Peek()
			switch {
			case !ok:
				cursor.SetPosition(start)
			case next.Type == docblock.TokenCommentStart, isCRLFOpening(next):
				b.WriteString(prefix)
			case next.Type == docblock.TokenAsterisk, next.Type == docblock.TokenCommentEnd:
				b.WriteString(prefix + " ")
			default:
				// Not a marker line; leave it alone.
				cursor.SetPosition(start)
			}
		}

		token, _ := cursor.Advance()
		b.WriteString(token.Value)
		if token.Type == docblock.TokenNewline {
			atLineStart = true
		}
	}

	return b.String()
}

// isCRLFOpening reports an opening marker followed by "\r\n". The tokenizer
// keeps the carriage return in the word, so it lexes as text.
func isCRLFOpening(token docblock.Token) bool {
	return token.Type == docblock.TokenText && strings.TrimSuffix(token.Value, "\r") == "/**"
}

// ReindentDepth re-indents raw to the formatter's indentation for depth
func (f *Formatter) ReindentDepth(raw string, depth int) string {
	return f.Reindent(raw, f.getIndent(depth))
}

// getIndent returns indentation string for given depth
func (f *Formatter) getIndent(depth int) string {
	if f.useSpaces {
		return strings.Repeat(" ", depth*f.indentSize)
	}
	return strings.Repeat("\t", depth)
}
