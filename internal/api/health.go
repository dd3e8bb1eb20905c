package api

import (
	"context"

	"github.com/DjordjeVuckovic/simplechem/internal/formula"
)

// healthFormula exercises the tokenizer, the subscript rule and a substitution.
const healthFormula = "H2O -> H^+"

// RendererHealthChecker reports healthy when a known formula renders to the
// expected tree.
type RendererHealthChecker struct {
	opts []formula.Option
}

func NewRendererHealthChecker(opts ...formula.Option) *RendererHealthChecker {
	return &RendererHealthChecker{opts: opts}
}

func (hc *RendererHealthChecker) Healthy(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	span, err := formula.Parse(healthFormula, hc.opts...)
	if err != nil {
		return false
	}
	return span.PlainText() == "H2O → H+" && len(span.Children) == 2
}
