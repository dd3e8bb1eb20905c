package formula

import (
	"fmt"
	"strings"
)

const (
	DefaultTag   = "span"
	DefaultClass = "simplechem"
)

// ElementKind is the kind of a leaf element.
type ElementKind int

const (
	Sub ElementKind = iota + 1
	Sup
)

// Tag returns the HTML tag name of the element kind.
func (k ElementKind) Tag() string {
	switch k {
	case Sub:
		return "sub"
	case Sup:
		return "sup"
	default:
		return ""
	}
}

func (k ElementKind) String() string {
	return k.Tag()
}

// Leaf is a subscript or superscript element. Tail is the plain text that
// follows it up to the next leaf.
type Leaf struct {
	Kind ElementKind
	Text string
	Tail string
}

// Span is the rendered formula: a container with leading text and a flat
// list of leaves. An empty Class means the container has no class attribute.
type Span struct {
	Tag      string
	Class    string
	Text     string
	Children []*Leaf
}

// setPlain attaches text after the last child, or as the container text when
// there are no children yet.
func (s *Span) setPlain(text string) {
	if len(s.Children) == 0 {
		s.Text = text
		return
	}
	s.Children[len(s.Children)-1].Tail = text
}

func (s *Span) appendLeaf(kind ElementKind, text string) {
	s.Children = append(s.Children, &Leaf{Kind: kind, Text: text})
}

// PlainText returns the text content of the span with markup removed.
func (s *Span) PlainText() string {
	var sb strings.Builder
	sb.WriteString(s.Text)
	for _, c := range s.Children {
		sb.WriteString(c.Text)
		sb.WriteString(c.Tail)
	}
	return sb.String()
}

func (s *Span) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(%q", s.Tag, s.Text)
	for _, c := range s.Children {
		fmt.Fprintf(&sb, " %s(%q)", c.Kind, c.Text)
		if c.Tail != "" {
			fmt.Fprintf(&sb, " %q", c.Tail)
		}
	}
	sb.WriteString(")")
	return sb.String()
}
