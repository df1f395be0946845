package docblock

import (
	"strings"
	"unicode/utf8"
)

const (
	commentStart = "/**"
	commentEnd   = "*/"
)

// lexState is everything the tokenizer carries from one step to the next.
type lexState struct {
	pos       int // current position in input
	line      int // current line number
	lineStart int // offset of the first byte of the current line

	insideComment       bool // between /** and */
	insideLeadingMarker bool // the line's structural marker has been consumed
}

// Tokenizer splits a raw doc comment into a lossless token stream
type Tokenizer struct {
	input string
}

// NewTokenizer creates a new tokenizer
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokenize processes the input and returns all tokens. Joining the token
// values gives back the input unchanged.
func (t *Tokenizer) Tokenize() []Token {
	tokens := make([]Token, 0, strings.Count(t.input, "\n")*4+4)
	state := lexState{line: 1}

	for state.pos < len(t.input) {
		var token Token
		state, token = step(t.input, state)
		tokens = append(tokens, token)
	}

	return tokens
}

// Tokenize is shorthand for NewTokenizer(input).Tokenize().
func Tokenize(input string) []Token {
	return NewTokenizer(input).Tokenize()
}

// Join concatenates token values.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, token := range tokens {
		b.WriteString(token.Value)
	}
	return b.String()
}

// step classifies the input at s.pos and returns the emitted token together
// with the state positioned after it. Every step consumes at least one byte.
func step(input string, s lexState) (lexState, Token) {
	ch := input[s.pos]
	line := currentLine(input, s.pos)
	word := currentWord(line)

	token := Token{
		Line:   s.line,
		Column: utf8.RuneCountInString(input[s.lineStart:s.pos]) + 1,
		Offset: s.pos,
	}

	switch {
	case !s.insideComment && word == commentStart:
		token.Type = TokenCommentStart
		token.Value = word
		s.insideComment = true
		s.insideLeadingMarker = true

	case s.insideComment && word == commentEnd:
		token.Type = TokenCommentEnd
		token.Value = word
		s.insideComment = false

	case isBlank(ch):
		if s.insideLeadingMarker {
			token.Type = TokenWhitespace
		} else {
			token.Type = TokenWhitespaceIndent
		}
		token.Value = word

	case ch == '*':
		// A second asterisk on a line is content, not a marker.
		if s.insideComment && s.insideLeadingMarker {
			token.Type = TokenText
		} else {
			token.Type = TokenAsterisk
			s.insideLeadingMarker = true
		}
		token.Value = "*"

	case ch == '@':
		token.Type = TokenTag
		token.Value = word

	case ch == '\n':
		token.Type = TokenNewline
		token.Value = "\n"
		s.insideLeadingMarker = false

	default:
		token.Type = TokenText
		token.Value = line
	}

	s.pos += len(token.Value)
	if token.Type == TokenNewline {
		s.line++
		s.lineStart = s.pos
	}

	return s, token
}

// currentLine returns the input from pos up to, not including, the next newline.
func currentLine(input string, pos int) string {
	rest := input[pos:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i]
	}
	return rest
}

// currentWord returns the run of blanks, or of non-blanks, at the start of line.
func currentWord(line string) string {
	if line == "" {
		return ""
	}

	blank := isBlank(line[0])
	for i := 1; i < len(line); i++ {
		if isBlank(line[i]) != blank {
			return line[:i]
		}
	}
	return line
}

func isBlank(ch byte) bool {
	return ch == ' ' || ch == '\t'
}
