package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/simplechem/internal/apperr"
	"github.com/DjordjeVuckovic/simplechem/internal/formula"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("formula is required")

	assert.Equal(t, "formula is required", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("unexpected EOF")
	err := apperr.NewValidationWrap("invalid request body", inner)

	assert.Equal(t, "invalid request body: unexpected EOF", err.Error())
	assert.True(t, errors.Is(err, inner))
}

func TestNewFieldValidation(t *testing.T) {
	err := apperr.NewFieldValidation("format", "must be text or markdown")
	assert.Equal(t, "format: must be text or markdown", err.Error())
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("formula is required")

	wrapped := fmt.Errorf("render: %w", original)
	doubleWrapped := fmt.Errorf("handler: %w", wrapped)

	var ve *apperr.ValidationError
	require.True(t, errors.As(doubleWrapped, &ve))
	assert.Equal(t, "formula is required", ve.Message)
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "validation",
			err:    fmt.Errorf("wrapped: %w", apperr.NewFieldValidation("formula", "is required")),
			status: http.StatusBadRequest,
			body:   `{"error":"is required","title":"validation error","field":"formula"}`,
		},
		{
			name:   "no matching token",
			err:    &formula.NoMatchingTokenError{Pos: 1, Preview: "!"},
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "http error",
			err:    echo.NewHTTPError(http.StatusNotFound, "not found"),
			status: http.StatusNotFound,
			body:   `{"error":"not found"}`,
		},
		{
			name:   "unknown",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   `{"error":"internal server error"}`,
		},
	}

	handler := apperr.GlobalErrorHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			handler(tt.err, e.NewContext(req, rec))

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, rec.Body.String())
			}
		})
	}
}
