package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/simplechem/internal/apperr"
	"github.com/DjordjeVuckovic/simplechem/internal/config"
	"github.com/DjordjeVuckovic/simplechem/internal/dto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, cfg *config.Render) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewFormulaRouter(e, cfg).Bind()
	return e
}

func post(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFormulaRouter_Tokens(t *testing.T) {
	e := newTestEcho(t, config.DefaultRender())

	rec := post(e, "/api/v1/formula/tokens", `{"formula":"O^(2-)"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TokensResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []dto.Token{
		{Text: "O", Raw: "O", Class: "NAME"},
		{Text: "2-", Raw: "^(2-)", Class: "SUPERSCRIPT"},
	}, resp.Tokens)
}

func TestFormulaRouter_TokensOfEmptyFormula(t *testing.T) {
	e := newTestEcho(t, config.DefaultRender())

	rec := post(e, "/api/v1/formula/tokens", `{"formula":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tokens":[]}`, rec.Body.String())
}

func TestFormulaRouter_Render(t *testing.T) {
	e := newTestEcho(t, config.DefaultRender())

	rec := post(e, "/api/v1/formula/render", `{"formula":"C6H12O6"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.RenderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, `<span class="simplechem">C<sub>6</sub>H<sub>12</sub>O<sub>6</sub></span>`, resp.HTML)
	assert.Equal(t, dto.Tree{
		Tag:   "span",
		Class: "simplechem",
		Text:  "C",
		Children: []dto.Leaf{
			{Kind: "sub", Text: "6", Tail: "H"},
			{Kind: "sub", Text: "12", Tail: "O"},
			{Kind: "sub", Text: "6"},
		},
	}, resp.Tree)
}

func TestFormulaRouter_RenderClassOverride(t *testing.T) {
	e := newTestEcho(t, config.DefaultRender())

	rec := post(e, "/api/v1/formula/render", `{"formula":"O2","class":""}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.RenderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, `<span>O<sub>2</sub></span>`, resp.HTML)
}

func TestFormulaRouter_Validation(t *testing.T) {
	e := newTestEcho(t, config.DefaultRender())

	tests := []struct {
		name string
		path string
		body string
	}{
		{"missing formula", "/api/v1/formula/render", `{}`},
		{"missing body", "/api/v1/formula/tokens", ``},
		{"malformed body", "/api/v1/formula/render", `{"formula":`},
		{"unknown format", "/api/v1/documents/render", `{"content":"{H2}","format":"rst"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(e, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "validation error")
		})
	}
}

func TestFormulaRouter_Documents(t *testing.T) {
	trigger := "ce"
	cfg := config.DefaultRender()
	cfg.Trigger = trigger
	e := newTestEcho(t, cfg)

	t.Run("text", func(t *testing.T) {
		rec := post(e, "/api/v1/documents/render", `{"content":"Water: ce{H2O}, set {1}"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.DocumentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, `Water: <span class="simplechem">H<sub>2</sub>O</span>, set {1}`, resp.HTML)
	})

	t.Run("markdown", func(t *testing.T) {
		rec := post(e, "/api/v1/documents/render", `{"content":"# Water\n\nIt is ce{H2O}.","format":"markdown"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.DocumentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.HTML, `<p>It is <span class="simplechem">H<sub>2</sub>O</span>.</p>`)
		assert.Contains(t, resp.HTML, "Water</h1>")
	})
}
