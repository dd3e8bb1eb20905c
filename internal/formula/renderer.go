package formula

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

type options struct {
	tag   string
	class string
}

// Option configures the container produced by a Renderer.
type Option func(*options)

// WithTag sets the container tag. An empty tag keeps the default.
func WithTag(tag string) Option {
	return func(o *options) {
		if tag != "" {
			o.tag = tag
		}
	}
}

// WithClass sets the container class attribute. An empty class omits it.
func WithClass(class string) Option {
	return func(o *options) {
		o.class = class
	}
}

func defaultOptions() options {
	return options{tag: DefaultTag, class: DefaultClass}
}

// Renderer turns a token stream into a Span.
//
// A Renderer holds the tree under construction and the pending plain text,
// so it must not be used by several goroutines at once. It may be reused
// sequentially; every Render starts from an empty tree.
type Renderer struct {
	opts    options
	tree    *Span
	pending strings.Builder
}

func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Render consumes src exactly once.
//
// A Number following a Name, Brace or Superscript becomes a subscript, every
// Superscript becomes a superscript, and everything else is plain text.
// Consecutive plain text is merged into one run.
func (r *Renderer) Render(src TokenSource) (*Span, error) {
	r.tree = &Span{Tag: r.opts.tag, Class: r.opts.class}
	r.pending.Reset()

	prev := None
	for {
		tok, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("render formula: %w", err)
		}

		text := Substitute(tok.Text)
		switch {
		case tok.Class == Number && (prev == Name || prev == Brace || prev == Superscript):
			r.appendElement(Sub, text)
		case tok.Class == Superscript:
			r.appendElement(Sup, text)
		default:
			r.appendText(text)
		}
		prev = tok.Class
	}
	r.flush()

	tree := r.tree
	r.tree = nil
	return tree, nil
}

func (r *Renderer) appendText(text string) {
	r.pending.WriteString(text)
}

func (r *Renderer) appendElement(kind ElementKind, text string) {
	r.flush()
	r.tree.appendLeaf(kind, text)
}

func (r *Renderer) flush() {
	if r.pending.Len() == 0 {
		return
	}
	r.tree.setPlain(r.pending.String())
	r.pending.Reset()
}

// Parse tokenizes and renders one formula with the default grammar.
func Parse(text string, opts ...Option) (*Span, error) {
	return NewRenderer(opts...).Render(NewTokenizer(text))
}
