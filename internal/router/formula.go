package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/simplechem/internal/apperr"
	"github.com/DjordjeVuckovic/simplechem/internal/config"
	"github.com/DjordjeVuckovic/simplechem/internal/dto"
	"github.com/DjordjeVuckovic/simplechem/internal/formula"
	"github.com/DjordjeVuckovic/simplechem/internal/inline"
	"github.com/DjordjeVuckovic/simplechem/internal/markdown"
	"github.com/labstack/echo/v4"
)

type FormulaRouter struct {
	e           *echo.Echo
	cfg         *config.Render
	transformer *inline.Transformer
	markdown    *markdown.Extension
}

func NewFormulaRouter(e *echo.Echo, cfg *config.Render) *FormulaRouter {
	return &FormulaRouter{
		e:           e,
		cfg:         cfg,
		transformer: cfg.Transformer(),
		markdown:    cfg.Markdown(),
	}
}

func (r *FormulaRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.POST("/formula/tokens", r.tokensHandler)
	g.POST("/formula/render", r.renderHandler)
	g.POST("/documents/render", r.documentHandler)
}

func bindFormula(c echo.Context) (string, *dto.FormulaRequest, error) {
	var req dto.FormulaRequest
	if err := c.Bind(&req); err != nil {
		return "", nil, apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Formula == nil {
		return "", nil, apperr.NewFieldValidation("formula", "is required")
	}
	return *req.Formula, &req, nil
}

// tokensHandler godoc
// @Summary Tokenize a formula
// @Description Splits a formula into classified tokens
// @Tags formula
// @Accept json
// @Produce json
// @Param request body dto.FormulaRequest true "Formula"
// @Success 200 {object} dto.TokensResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /api/v1/formula/tokens [post]
func (r *FormulaRouter) tokensHandler(c echo.Context) error {
	text, _, err := bindFormula(c)
	if err != nil {
		return err
	}

	tokens, err := formula.Tokenize(text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTokens(tokens))
}

// renderHandler godoc
// @Summary Render a formula
// @Description Renders a formula to HTML and returns the markup tree
// @Tags formula
// @Accept json
// @Produce json
// @Param request body dto.FormulaRequest true "Formula"
// @Success 200 {object} dto.RenderResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /api/v1/formula/render [post]
func (r *FormulaRouter) renderHandler(c echo.Context) error {
	text, req, err := bindFormula(c)
	if err != nil {
		return err
	}

	opts := r.cfg.FormulaOptions()
	if req.Class != nil {
		opts = append(opts, formula.WithClass(*req.Class))
	}

	span, err := formula.Parse(text, opts...)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.RenderResponse{HTML: span.HTML(), Tree: dto.NewTree(span)})
}

// documentHandler godoc
// @Summary Render a document
// @Description Replaces every {formula} span of a plain text or Markdown document with HTML
// @Tags documents
// @Accept json
// @Produce json
// @Param request body dto.DocumentRequest true "Document"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /api/v1/documents/render [post]
func (r *FormulaRouter) documentHandler(c echo.Context) error {
	var req dto.DocumentRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	switch req.Format {
	case "", dto.FormatText:
		out, err := r.transformer.Transform(req.Content)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dto.DocumentResponse{HTML: out})
	case dto.FormatMarkdown:
		out := r.markdown.ToHTML([]byte(req.Content))
		return c.JSON(http.StatusOK, dto.DocumentResponse{HTML: string(out)})
	default:
		return apperr.NewFieldValidation("format", "must be text or markdown")
	}
}
