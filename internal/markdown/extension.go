// Package markdown plugs formula spans into the gomarkdown pipeline.
package markdown

import (
	"bytes"
	"log/slog"

	"github.com/DjordjeVuckovic/simplechem/internal/inline"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

type Extension struct {
	scanner     *inline.Scanner
	transformer *inline.Transformer
	extensions  parser.Extensions
	flags       mdhtml.Flags
}

type Option func(*Extension)

// WithParserExtensions replaces parser.CommonExtensions.
func WithParserExtensions(ext parser.Extensions) Option {
	return func(e *Extension) {
		e.extensions = ext
	}
}

// WithRendererFlags replaces html.CommonFlags.
func WithRendererFlags(flags mdhtml.Flags) Option {
	return func(e *Extension) {
		e.flags = flags
	}
}

func NewExtension(scanner *inline.Scanner, transformer *inline.Transformer, opts ...Option) *Extension {
	e := &Extension{
		scanner:     scanner,
		transformer: transformer,
		extensions:  parser.CommonExtensions,
		flags:       mdhtml.CommonFlags,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register installs the formula inline parser on p. The handler sits on the
// first byte of the trigger, or on "{" without one, and falls back to the
// handler previously registered for that byte.
func (e *Extension) Register(p *parser.Parser) {
	lead := byte('{')
	if t := e.scanner.Trigger(); t != "" {
		lead = t[0]
	}
	opening := []byte(e.scanner.Trigger() + "{")

	h := &inlineHandler{ext: e, opening: opening}
	h.prev = p.RegisterInline(lead, h.parse)
}

type inlineHandler struct {
	ext     *Extension
	opening []byte
	prev    func(p *parser.Parser, data []byte, offset int) (int, ast.Node)
}

func (h *inlineHandler) parse(p *parser.Parser, data []byte, offset int) (int, ast.Node) {
	if bytes.HasPrefix(data[offset:], h.opening) {
		if n, node := h.ext.inlineFormula(data[offset:]); n > 0 {
			return n, node
		}
	}
	if h.prev != nil {
		return h.prev(p, data, offset)
	}
	return 0, nil
}

func (e *Extension) inlineFormula(data []byte) (int, ast.Node) {
	m, ok := e.scanner.MatchAt(string(data), 0)
	if !ok {
		return 0, nil
	}
	out, err := e.transformer.Render(m.Formula)
	if err != nil {
		slog.Warn("Leaving formula as text", "formula", m.Formula, "error", err)
		return 0, nil
	}
	return m.End, &ast.HTMLSpan{Leaf: ast.Leaf{Literal: []byte(out)}}
}

// NewParser returns a parser with the formula handler registered. Parsers
// are single use.
func (e *Extension) NewParser() *parser.Parser {
	p := parser.NewWithExtensions(e.extensions)
	e.Register(p)
	return p
}

func (e *Extension) NewRenderer() markdown.Renderer {
	return mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: e.flags})
}

// ToHTML converts a Markdown document to HTML.
func (e *Extension) ToHTML(md []byte) []byte {
	return markdown.ToHTML(md, e.NewParser(), e.NewRenderer())
}
