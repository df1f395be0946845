package docblock

// TokenCursor provides peek/advance navigation over a token slice
type TokenCursor struct {
	tokens  []Token
	current int
}

// NewTokenCursor tokenizes content and returns a cursor at its first token
func NewTokenCursor(content string) *TokenCursor {
	return NewTokenCursorFromTokens(Tokenize(content))
}

// NewTokenCursorFromTokens returns a cursor over an existing token slice
func NewTokenCursorFromTokens(tokens []Token) *TokenCursor {
	return &TokenCursor{tokens: tokens}
}

// Advance returns the current token and moves to the next
func (tc *TokenCursor) Advance() (Token, bool) {
	if tc.IsAtEnd() {
		return Token{}, false
	}
	tc.current++
	return tc.tokens[tc.current-1], true
}

// IsAtEnd checks if every token has been consumed
func (tc *TokenCursor) IsAtEnd() bool {
	return tc.current >= len(tc.tokens)
}

// Peek returns the current token without advancing
func (tc *TokenCursor) Peek() (Token, bool) {
	return tc.PeekAhead(0)
}

// PeekAhead looks ahead by offset tokens
func (tc *TokenCursor) PeekAhead(offset int) (Token, bool) {
	target := tc.current + offset
	if target < 0 || target >= len(tc.tokens) {
		return Token{}, false
	}
	return tc.tokens[target], true
}

// Check returns true if the current token is of the given type
func (tc *TokenCursor) Check(tokenType TokenType) bool {
	token, ok := tc.Peek()
	return ok && token.Type == tokenType
}

// Match advances past the current token if it matches any of the given types
func (tc *TokenCursor) Match(types ...TokenType) (Token, bool) {
	for _, tokenType := range types {
		if tc.Check(tokenType) {
			return tc.Advance()
		}
	}
	return Token{}, false
}

// Position returns the index of the current token
func (tc *TokenCursor) Position() int {
	return tc.current
}

// SetPosition moves the cursor, clamping to the token range
func (tc *TokenCursor) SetPosition(position int) {
	switch {
	case position < 0:
		tc.current = 0
	case position > len(tc.tokens):
		tc.current = len(tc.tokens)
	default:
		tc.current = position
	}
}
