package ast

// FirstSet reports whether a character may begin a production.
// The parser dispatches between alternatives by testing the next unconsumed character against these.
type FirstSet func(ch rune) bool

func IsASCIIAlphabetic(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func IsASCIIDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func IsASCIIAlphanumeric(ch rune) bool {
	return IsASCIIAlphabetic(ch) || IsASCIIDigit(ch)
}

// Ident and Bool share a first set: keywords are recognized after the whole word was read.
var IdentFirst FirstSet = func(ch rune) bool { return ch == '_' || IsASCIIAlphabetic(ch) }

// IdentRest describes the characters which may continue an identifier.
var IdentRest FirstSet = func(ch rune) bool { return ch == '_' || IsASCIIAlphanumeric(ch) }

var NumberFirst FirstSet = func(ch rune) bool { return ch == '-' || IsASCIIDigit(ch) }

var StringFirst FirstSet = func(ch rune) bool { return ch == '"' }

var ValueFirst FirstSet = func(ch rune) bool {
	return NumberFirst(ch) || IdentFirst(ch) || StringFirst(ch)
}

var ArgTailFirst FirstSet = func(ch rune) bool { return ch == '=' }

var ArgsSeparatorFirst FirstSet = func(ch rune) bool { return ch == ',' }

var CallTailFirst FirstSet = func(ch rune) bool { return ch == '(' }

var StatementSeparatorFirst FirstSet = func(ch rune) bool { return ch == ';' }

var CommentFirst FirstSet = func(ch rune) bool { return ch == '#' }
