package token

import (
	"strconv"

	"pasc/internal/source"
)

// Token represents a single source token with its location and decoded payload.
type Token struct {
	Kind Kind
	Span source.Span
	Text string // исходный текст; для идентификаторов в нижнем регистре

	Int  int64   // IntLit
	Real float64 // RealLit
	Char rune    // CharLit
}

// IsLiteral reports whether the token is a numeric, character or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, RealLit, CharLit, KwTrue, KwFalse:
		return true
	}
	return false
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Value renders the decoded payload for dumps.
func (t Token) Value() string {
	switch t.Kind {
	case IntLit:
		return strconv.FormatInt(t.Int, 10)
	case RealLit:
		return strconv.FormatFloat(t.Real, 'g', -1, 64)
	case CharLit:
		return strconv.QuoteRune(t.Char)
	case KwTrue:
		return "true"
	case KwFalse:
		return "false"
	}
	return t.Text
}

// Describe names the token for error messages: the text for words and
// punctuation, the class for EOF.
func (t Token) Describe() string {
	if t.Kind == EOF || t.Text == "" {
		return t.Kind.String()
	}
	return t.Text
}
