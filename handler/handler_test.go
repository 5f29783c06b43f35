package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/medsignup/handler"
	"github.com/dmitrymomot/medsignup/pkg/binder"
)

type request struct {
	Email string `form:"email" json:"email"`
}

type responseFunc func(w http.ResponseWriter, r *http.Request) error

func (f responseFunc) Render(w http.ResponseWriter, r *http.Request) error { return f(w, r) }

var echo handler.HandlerFunc[handler.Context, request] = func(ctx handler.Context, req request) handler.Response {
	return handler.JSON(req)
}

func TestWrap_Binders(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(echo,
		handler.WithBinders[handler.Context, request](binder.JSON(), binder.Form()),
	)

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"email":"a@b.co"}}`, rec.Body.String())
	})

	t.Run("form", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("email=x%40y.z"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"email":"x@y.z"}}`, rec.Body.String())
	})

	t.Run("no binder applies", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hello"))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("bind failure is a bad request", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWrap_NoBinders(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(echo)
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"email":""}}`, rec.Body.String())
}

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) handler.Decorator[handler.Context, request] {
		return func(next handler.HandlerFunc[handler.Context, request]) handler.HandlerFunc[handler.Context, request] {
			return func(ctx handler.Context, req request) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(echo, handler.WithDecorators(trace("outer"), trace("inner")))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestWrap_Errors(t *testing.T) {
	t.Parallel()

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, request](func(handler.Context, request) handler.Response { return nil }),
			handler.WithErrorHandler[handler.Context, request](func(_ handler.Context, err error) { got = err }),
		)
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("render error uses default handler", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(handler.HandlerFunc[handler.Context, request](func(handler.Context, request) handler.Response {
			return responseFunc(func(http.ResponseWriter, *http.Request) error {
				return handler.ErrNotFound
			})
		}))
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "not_found")
	})

	t.Run("unknown error is 500", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(handler.HandlerFunc[handler.Context, request](func(handler.Context, request) handler.Response {
			return responseFunc(func(http.ResponseWriter, *http.Request) error {
				return errors.New("boom")
			})
		}))
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

type appContext struct {
	handler.Context
	tenant string
}

func TestWrap_ContextFactory(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(
		handler.HandlerFunc[appContext, request](func(ctx appContext, _ request) handler.Response { return handler.JSON(ctx.tenant) }),
		handler.WithContextFactory[appContext, request](func(w http.ResponseWriter, r *http.Request) appContext {
			return appContext{Context: handler.NewContext(w, r), tenant: "clinic"}
		}),
	)
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.JSONEq(t, `{"data":"clinic"}`, rec.Body.String())

	require.Panics(t, func() {
		handler.Wrap(handler.HandlerFunc[appContext, request](func(appContext, request) handler.Response { return nil }))(
			httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil),
		)
	})
}

func TestError(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(handler.HandlerFunc[handler.Context, request](func(handler.Context, request) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}))
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
