package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "farmkitchen/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func runErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppErrorUsesDetails(t *testing.T) {
	rec := runErrorHandler(t, domainerrors.ErrInsufficientStock.WithDetails("Only 2 left in stock"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Only 2 left in stock"}`, rec.Body.String())
}

func TestErrorMiddleware_AppErrorFallsBackToMessage(t *testing.T) {
	rec := runErrorHandler(t, domainerrors.ErrUserNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "user not found"}`, rec.Body.String())
}

func TestErrorMiddleware_WrappedAppErrorKeepsStatus(t *testing.T) {
	rec := runErrorHandler(t, errors.Wrap(domainerrors.ErrForbidden.WithDetails("Access denied"), "failed to update product"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error": "Access denied"}`, rec.Body.String())
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec := runErrorHandler(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Not Found"}`, rec.Body.String())
}

func TestErrorMiddleware_UnknownErrorIsHidden(t *testing.T) {
	rec := runErrorHandler(t, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
}
