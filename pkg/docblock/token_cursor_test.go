package docblock

import "testing"

func TestTokenCursorNavigation(t *testing.T) {
	cursor := NewTokenCursor("/**\n * @see X\n */")

	if !cursor.Check(TokenCommentStart) {
		t.Fatalf("expected cursor to start at comment start")
	}

	if token, ok := cursor.Match(TokenAsterisk, TokenCommentStart); !ok || token.Value != "/**" {
		t.Fatalf("Match() = %v, %v", token, ok)
	}
	if _, ok := cursor.Match(TokenTag); ok {
		t.Fatalf("Match(TokenTag) should not match a newline")
	}

	cursor.Advance() // newline
	if _, ok := cursor.Match(TokenWhitespaceIndent); !ok {
		t.Fatalf("expected indentation after the newline")
	}
	if !cursor.Check(TokenAsterisk) {
		t.Fatalf("expected asterisk after the indentation")
	}

	if next, ok := cursor.PeekAhead(2); !ok || next.Type != TokenTag {
		t.Errorf("PeekAhead(2) = %v, %v, want tag", next, ok)
	}

	saved := cursor.Position()
	for !cursor.IsAtEnd() {
		cursor.Advance()
	}
	if _, ok := cursor.Advance(); ok {
		t.Error("Advance() at end should report false")
	}
	if _, ok := cursor.Peek(); ok {
		t.Error("Peek() at end should report false")
	}

	cursor.SetPosition(saved)
	if !cursor.Check(TokenAsterisk) {
		t.Error("SetPosition did not restore the saved position")
	}

	cursor.SetPosition(-5)
	if cursor.Position() != 0 {
		t.Errorf("Position() = %d after negative SetPosition, want 0", cursor.Position())
	}
	cursor.SetPosition(1000)
	if !cursor.IsAtEnd() {
		t.Error("SetPosition past the end should leave the cursor at end")
	}
}

func TestTokenCursorEmpty(t *testing.T) {
	cursor := NewTokenCursorFromTokens(nil)
	if !cursor.IsAtEnd() {
		t.Error("empty cursor should be at end")
	}
	if cursor.Check(TokenText) {
		t.Error("Check() on empty cursor should be false")
	}
	if _, ok := cursor.PeekAhead(-1); ok {
		t.Error("PeekAhead(-1) should report false")
	}
}
