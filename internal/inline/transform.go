package inline

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/simplechem/internal/formula"
)

// Transformer replaces formula spans in a text with their HTML rendering.
// Text outside of spans is copied unchanged.
type Transformer struct {
	scanner *Scanner
	opts    []formula.Option
}

func NewTransformer(scanner *Scanner, opts ...formula.Option) *Transformer {
	return &Transformer{scanner: scanner, opts: opts}
}

// Render renders a single formula to HTML.
func (t *Transformer) Render(text string) (string, error) {
	span, err := formula.Parse(text, t.opts...)
	if err != nil {
		return "", err
	}
	return span.HTML(), nil
}

func (t *Transformer) Transform(doc string) (string, error) {
	matches := t.scanner.Find(doc)
	if len(matches) == 0 {
		return doc, nil
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		out, err := t.Render(m.Formula)
		if err != nil {
			return "", fmt.Errorf("formula at offset %d: %w", m.Start, err)
		}
		sb.WriteString(doc[last:m.Start])
		sb.WriteString(out)
		last = m.End
	}
	sb.WriteString(doc[last:])
	return sb.String(), nil
}
