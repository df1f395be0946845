package docblock

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenizerBasics(t *testing.T) {
	input := "/**\n * Short.\n *\n * @param string $x\n */"

	tokens := NewTokenizer(input).Tokenize()

	want := []Token{
		{Type: TokenCommentStart, Value: "/**", Line: 1, Column: 1, Offset: 0},
		{Type: TokenNewline, Value: "\n", Line: 1, Column: 4, Offset: 3},
		{Type: TokenWhitespaceIndent, Value: " ", Line: 2, Column: 1, Offset: 4},
		{Type: TokenAsterisk, Value: "*", Line: 2, Column: 2, Offset: 5},
		{Type: TokenWhitespace, Value: " ", Line: 2, Column: 3, Offset: 6},
		{Type: TokenText, Value: "Short.", Line: 2, Column: 4, Offset: 7},
		{Type: TokenNewline, Value: "\n", Line: 2, Column: 10, Offset: 13},
		{Type: TokenWhitespaceIndent, Value: " ", Line: 3, Column: 1, Offset: 14},
		{Type: TokenAsterisk, Value: "*", Line: 3, Column: 2, Offset: 15},
		{Type: TokenNewline, Value: "\n", Line: 3, Column: 3, Offset: 16},
		{Type: TokenWhitespaceIndent, Value: " ", Line: 4, Column: 1, Offset: 17},
		{Type: TokenAsterisk, Value: "*", Line: 4, Column: 2, Offset: 18},
		{Type: TokenWhitespace, Value: " ", Line: 4, Column: 3, Offset: 19},
		{Type: TokenTag, Value: "@param", Line: 4, Column: 4, Offset: 20},
		{Type: TokenWhitespace, Value: " ", Line: 4, Column: 10, Offset: 26},
		{Type: TokenText, Value: "string $x", Line: 4, Column: 11, Offset: 27},
		{Type: TokenNewline, Value: "\n", Line: 4, Column: 20, Offset: 36},
		{Type: TokenWhitespaceIndent, Value: " ", Line: 5, Column: 1, Offset: 37},
		{Type: TokenCommentEnd, Value: "*/", Line: 5, Column: 2, Offset: 38},
	}

	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
	}
}

// tokenShape drops positions so tests can focus on classification
type tokenShape struct {
	Type  TokenType
	Value string
}

func shapes(tokens []Token) []tokenShape {
	out := make([]tokenShape, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, tokenShape{Type: token.Type, Value: token.Value})
	}
	return out
}

func TestTokenizerClassification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []tokenShape
	}{
		{
			name:  "ExtraAsteriskIsText",
			input: "/**\n ** bold",
			want: []tokenShape{
				{TokenCommentStart, "/**"},
				{TokenNewline, "\n"},
				{TokenWhitespaceIndent, " "},
				{TokenAsterisk, "*"},
				{TokenText, "*"},
				{TokenWhitespace, " "},
				{TokenText, "bold"},
			},
		},
		{
			name:  "InlineComment",
			input: "/** Short */",
			want: []tokenShape{
				{TokenCommentStart, "/**"},
				{TokenWhitespace, " "},
				{TokenText, "Short */"},
			},
		},
		{
			name:  "TabSeparatedTag",
			input: "\t * @see\tFoo",
			want: []tokenShape{
				{TokenWhitespaceIndent, "\t "},
				{TokenAsterisk, "*"},
				{TokenWhitespace, " "},
				{TokenTag, "@see"},
				{TokenWhitespace, "\t"},
				{TokenText, "Foo"},
			},
		},
		{
			name:  "AsteriskOutsideComment",
			input: "* x",
			want: []tokenShape{
				{TokenAsterisk, "*"},
				{TokenWhitespace, " "},
				{TokenText, "x"},
			},
		},
		{
			name:  "CommentEndOnOwnLine",
			input: "/**\n*/\n",
			want: []tokenShape{
				{TokenCommentStart, "/**"},
				{TokenNewline, "\n"},
				{TokenCommentEnd, "*/"},
				{TokenNewline, "\n"},
			},
		},
		{
			name:  "CommentStartMustBeWholeWord",
			input: "/**Short",
			want: []tokenShape{
				{TokenText, "/**Short"},
			},
		},
		{
			name:  "PlainText",
			input: "no markers here\n",
			want: []tokenShape{
				{TokenText, "no markers here"},
				{TokenNewline, "\n"},
			},
		},
		{
			// The word under the cursor runs up to a blank, so "/**\r" is
			// not an opening marker.
			name:  "CarriageReturnBeforeNewline",
			input: "/**\r\n * a\r\n */",
			want: []tokenShape{
				{TokenText, "/**\r"},
				{TokenNewline, "\n"},
				{TokenWhitespaceIndent, " "},
				{TokenAsterisk, "*"},
				{TokenWhitespace, " "},
				{TokenText, "a\r"},
				{TokenNewline, "\n"},
				{TokenWhitespaceIndent, " "},
				{TokenAsterisk, "*"},
				{TokenText, "/"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shapes(Tokenize(tt.input))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

var roundTripInputs = []string{
	"",
	"/**",
	"*/",
	"/**\n */",
	exampleComment,
	"/** Short */",
	"/**\r\n * Windows\r\n */",
	"/**\r * Mac\r */",
	"    /**\n     * Indented\n     *\n     * @return void\n     */",
	"/**\n\t *\t@param\tint\t$a\n\t */",
	"/**\n * Ünïcødé ✓ text\n * @see Ω\n */",
	"/**\n ***** stars\n * @\n * @@double\n */ trailing",
	"no comment at all",
	"\n\n\n",
	"   ",
	"/** a */ /** b */",
	strings.Repeat("/**\n * line\n", 50) + " */",
}

func TestTokenizerRoundTrip(t *testing.T) {
	for _, input := range roundTripInputs {
		if got := Join(Tokenize(input)); got != input {
			t.Errorf("Join(Tokenize(%q)) = %q", input, got)
		}
	}
}

func TestTokenizerTokenShapes(t *testing.T) {
	for _, input := range roundTripInputs {
		offset := 0
		for i, token := range Tokenize(input) {
			if token.Value == "" {
				t.Errorf("%q: token %d is empty", input, i)
			}
			if token.Offset != offset {
				t.Errorf("%q: token %d offset = %d, want %d", input, i, token.Offset, offset)
			}
			offset += len(token.Value)

			switch token.Type {
			case TokenTag:
				if !strings.HasPrefix(token.Value, "@") {
					t.Errorf("%q: tag token %q does not start with @", input, token.Value)
				}
			case TokenCommentStart:
				if token.Value != "/**" {
					t.Errorf("%q: comment start token is %q", input, token.Value)
				}
			case TokenCommentEnd:
				if token.Value != "*/" {
					t.Errorf("%q: comment end token is %q", input, token.Value)
				}
			case TokenNewline:
				if token.Value != "\n" {
					t.Errorf("%q: newline token is %q", input, token.Value)
				}
			}
		}
	}
}

func TestTokenizerEmptyInput(t *testing.T) {
	if tokens := Tokenize(""); len(tokens) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want no tokens", tokens)
	}
}

func TestTokenizerUnicodeColumns(t *testing.T) {
	tokens := Tokenize("/** ✓\n *")
	// "/**", " ", "✓", "\n", " ", "*"
	if len(tokens) != 6 {
		t.Fatalf("got %d tokens: %v", len(tokens), tokens)
	}
	if tokens[2].Column != 5 || tokens[2].Value != "✓" {
		t.Errorf("text token = %+v, want column 5", tokens[2])
	}
	if tokens[3].Column != 6 {
		t.Errorf("newline column = %d, want 6 (runes, not bytes)", tokens[3].Column)
	}
	if tokens[5].Line != 2 || tokens[5].Column != 2 {
		t.Errorf("asterisk at %d:%d, want 2:2", tokens[5].Line, tokens[5].Column)
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		token Token
		want  string
	}{
		{Token{Type: TokenNewline, Value: "\n"}, "NEWLINE"},
		{Token{Type: TokenTag, Value: "@param"}, "TAG:@param"},
		{Token{Type: TokenWhitespaceIndent, Value: "\t"}, `WHITESPACE_INDENT:"\t"`},
		{Token{Type: TokenType(99), Value: "x"}, "UNKNOWN:x"},
	}

	for _, tt := range tests {
		if got := tt.token.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
