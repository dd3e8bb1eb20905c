package dto

import "github.com/DjordjeVuckovic/simplechem/internal/formula"

type FormulaRequest struct {
	Formula *string `json:"formula" example:"2K^+ + O^(2-)"`
	// Class overrides the configured class attribute; an empty string omits it.
	Class *string `json:"class,omitempty" example:"simplechem"`
}

type Token struct {
	Text  string `json:"text"`
	Raw   string `json:"raw"`
	Class string `json:"class" example:"NAME"`
}

type TokensResponse struct {
	Tokens []Token `json:"tokens"`
}

type Leaf struct {
	Kind string `json:"kind" example:"sub"`
	Text string `json:"text"`
	Tail string `json:"tail,omitempty"`
}

type Tree struct {
	Tag      string `json:"tag"`
	Class    string `json:"class,omitempty"`
	Text     string `json:"text,omitempty"`
	Children []Leaf `json:"children"`
}

type RenderResponse struct {
	HTML string `json:"html"`
	Tree Tree   `json:"tree"`
}

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

type DocumentRequest struct {
	Content string `json:"content" example:"This is sugar: {C6H12O6}"`
	// Format is "text" (default) or "markdown".
	Format string `json:"format,omitempty" example:"markdown"`
}

type DocumentResponse struct {
	HTML string `json:"html"`
}

func NewTokens(tokens []formula.Token) TokensResponse {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, Token{Text: t.Text, Raw: t.Raw, Class: t.Class.String()})
	}
	return TokensResponse{Tokens: out}
}

func NewTree(span *formula.Span) Tree {
	children := make([]Leaf, 0, len(span.Children))
	for _, c := range span.Children {
		children = append(children, Leaf{Kind: c.Kind.Tag(), Text: c.Text, Tail: c.Tail})
	}
	return Tree{Tag: span.Tag, Class: span.Class, Text: span.Text, Children: children}
}
