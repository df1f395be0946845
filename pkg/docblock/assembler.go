package docblock

import (
	"regexp"
	"strings"
)

var tagLine = regexp.MustCompile(`(?i)^\s*(@[a-z]+)\s*(.*)`)

// assembler turns normalized lines into descriptions and tags
type assembler struct {
	tagName  string
	tagOpen  bool
	tagLines []string

	tags             []Tag
	shortDescription string
	longDescription  string
}

func (a *assembler) line(line string) {
	if m := tagLine.FindStringSubmatch(line); m != nil {
		a.flush()
		a.tagName = m[1]
		a.tagOpen = true
		a.tagLines = []string{m[2]}
		return
	}

	switch {
	case a.tagOpen:
		a.tagLines = append(a.tagLines, line)
	case a.shortDescription == "":
		// Blank lines ahead of the first real line are dropped.
		if line != "" {
			a.shortDescription = line
		}
	case a.longDescription != "":
		a.longDescription += "\n" + line
	default:
		a.longDescription = line
	}
}

// flush closes the open tag, if any
func (a *assembler) flush() {
	if !a.tagOpen {
		return
	}
	a.tags = append(a.tags, Tag{
		Name:  a.tagName,
		Value: strings.Join(a.tagLines, "\n"),
	})
	a.tagName = ""
	a.tagOpen = false
	a.tagLines = nil
}

func (a *assembler) result() Result {
	a.flush()

	tags := a.tags
	if tags == nil {
		tags = []Tag{}
	}

	return Result{
		ShortDescription: trimBlanks(a.shortDescription),
		LongDescription:  trimBlanks(a.longDescription),
		Tags:             tags,
	}
}
