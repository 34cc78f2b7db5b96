package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/eatelite/internal/pkg/config"
	"github.com/shandysiswandi/eatelite/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type created struct {
	Token string `json:"token"`
}

func (created) StatusCode() int { return http.StatusCreated }
func (created) Message() string { return "Created" }
func (created) Code() string    { return "CREATED" }

type empty struct{}

func (empty) Message() string { return "Done" }
func (empty) Empty() bool     { return true }

func newTestRouter(t *testing.T, yaml string) *Router {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)

	return NewRouter(Config{Config: cfg})
}

func serve(ro *Router, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, req)

	var out map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func TestRouter_Health(t *testing.T) {
	ro := newTestRouter(t, "app: {}")

	rec, out := serve(ro, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", out["message"])
}

func TestRouter_SuccessEnvelope(t *testing.T) {
	ro := newTestRouter(t, "app: {}")
	ro.POST("/created", func(*Request) (any, error) { return created{Token: "t"}, nil })
	ro.PATCH("/empty", func(*Request) (any, error) { return empty{}, nil })

	rec, out := serve(ro, http.MethodPost, "/created", "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Created", out["message"])
	assert.Equal(t, "CREATED", out["code"])
	assert.Equal(t, map[string]any{"token": "t"}, out["data"])

	rec, out = serve(ro, http.MethodPatch, "/empty", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Done", out["message"])
	assert.NotContains(t, out, "data")
}

func TestRouter_ErrorEnvelope(t *testing.T) {
	ro := newTestRouter(t, "app: {}")
	ro.POST("/business", func(*Request) (any, error) {
		return nil, goerror.NewBusiness("WRONG_EMAIL", "Wrong email", goerror.CodeBadRequest)
	})
	ro.POST("/server", func(*Request) (any, error) {
		return nil, goerror.NewServer(errors.New("db down"))
	})
	ro.POST("/plain", func(*Request) (any, error) {
		return nil, errors.New("boom")
	})
	ro.POST("/decode", func(r *Request) (any, error) {
		var v struct{ Email string }
		return nil, r.DecodeBody(&v)
	})

	rec, out := serve(ro, http.MethodPost, "/business", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "WRONG_EMAIL", out["code"])
	assert.Equal(t, "Wrong email", out["message"])

	for _, path := range []string{"/server", "/plain"} {
		rec, out = serve(ro, http.MethodPost, path, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, map[string]any{"message": "Internal server error"}, out)
	}

	rec, out = serve(ro, http.MethodPost, "/decode", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, goerror.CodeInvalidFormat.String(), out["code"])
}

func TestRouter_RecoversPanic(t *testing.T) {
	ro := newTestRouter(t, "app: {}")
	ro.GET("/panic", func(*Request) (any, error) { panic("kaboom") })

	rec, out := serve(ro, http.MethodGet, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", out["message"])
}

func TestRouter_Maintenance(t *testing.T) {
	ro := newTestRouter(t, `
app:
  maintenance:
    endpoints: "/closed"
`)
	ro.GET("/closed", func(*Request) (any, error) { return empty{}, nil })

	rec, _ := serve(ro, http.MethodGet, "/closed", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_NotFound(t *testing.T) {
	ro := newTestRouter(t, "app: {}")

	rec, out := serve(ro, http.MethodGet, "/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "endpoint not found", out["message"])
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "h") }), mw("a"), mw("b"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"a", "b", "h"}, order)
}

func TestRealIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	assert.Equal(t, "10.0.0.1", realIP(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", realIP(req))
}

func TestRouter_CorrelationID(t *testing.T) {
	ro := newTestRouter(t, "app: {}")
	ro.GET("/ping", func(*Request) (any, error) { return empty{}, nil })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, " req-42 ")
	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(HeaderCorrelationID))
}
