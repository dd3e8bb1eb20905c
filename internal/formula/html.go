package formula

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLNode converts the span into an HTML node tree. Text content is held
// in already escaped raw nodes.
func (s *Span) HTMLNode() *html.Node {
	root := element(s.Tag)
	if s.Class != "" {
		root.Attr = []html.Attribute{{Key: "class", Val: s.Class}}
	}
	appendText(root, s.Text)
	for _, c := range s.Children {
		leaf := element(c.Kind.Tag())
		appendText(leaf, c.Text)
		root.AppendChild(leaf)
		appendText(root, c.Tail)
	}
	return root
}

// WriteHTML serializes the span to w.
func (s *Span) WriteHTML(w io.Writer) error {
	if err := html.Render(w, s.HTMLNode()); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// HTML returns the serialized span.
func (s *Span) HTML() string {
	var sb strings.Builder
	// strings.Builder never fails to write
	_ = s.WriteHTML(&sb)
	return sb.String()
}

func element(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}

// Text is escaped here and added as a raw node, so quotes stay literal and
// only &, < and > become entities.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func appendText(n *html.Node, text string) {
	if text == "" {
		return
	}
	n.AppendChild(&html.Node{Type: html.RawNode, Data: textEscaper.Replace(text)})
}
