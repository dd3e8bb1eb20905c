// Package formula tokenizes plain text chemical formulas and renders them as
// a flat markup tree of text runs, subscripts and superscripts.
package formula

// Class is the lexical category assigned to a token by the first matching rule.
type Class int

const (
	// None is never produced by the tokenizer. The renderer uses it as the
	// previous class before the first token.
	None Class = iota
	Number
	Name
	Superscript
	Brace
	Char
)

func (c Class) String() string {
	switch c {
	case None:
		return "NONE"
	case Number:
		return "NUMBER"
	case Name:
		return "NAME"
	case Superscript:
		return "SUPERSCRIPT"
	case Brace:
		return "BRACE"
	case Char:
		return "CHAR"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token of a formula.
//
// Text is the value the renderer works with. For superscripts it is the
// captured inner text, for every other class it equals Raw. Raw is the exact
// slice of the input the token was scanned from.
type Token struct {
	Text  string
	Raw   string
	Class Class
}
