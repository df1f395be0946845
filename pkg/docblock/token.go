package docblock

import "fmt"

// TokenType represents the type of a doc comment token
type TokenType int

const (
	TokenCommentStart     TokenType = iota // /**
	TokenCommentEnd                        // */
	TokenWhitespace                        // blanks after the line marker
	TokenWhitespaceIndent                  // blanks before the line marker
	TokenAsterisk                          // leading * of a line
	TokenTag                               // @name
	TokenNewline
	TokenText
)

// tokenTypeNames maps token types to their names for debugging
var tokenTypeNames = map[TokenType]string{
	TokenCommentStart:     "COMMENT_START",
	TokenCommentEnd:       "COMMENT_END",
	TokenWhitespace:       "WHITESPACE",
	TokenWhitespaceIndent: "WHITESPACE_INDENT",
	TokenAsterisk:         "ASTERISK",
	TokenTag:              "TAG",
	TokenNewline:          "NEWLINE",
	TokenText:             "TEXT",
}

func (tt TokenType) String() string {
	if name, ok := tokenTypeNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a single token
type Token struct {
	Type   TokenType
	Value  string
	Line   int // 1-based
	Column int // 1-based, in runes
	Offset int // byte offset into the input
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenNewline:
		return "NEWLINE"
	case TokenWhitespace, TokenWhitespaceIndent:
		return fmt.Sprintf("%s:%q", t.Type, t.Value)
	default:
		return fmt.Sprintf("%s:%s", t.Type, t.Value)
	}
}
