package common

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJsonHandler(t *testing.T) {
	handler := JsonHandler(func(r *http.Request) (any, error) {
		return map[string]int{"count": 2}, nil
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"count":2}`, rec.Body.String())
}

func TestJsonHandlerErrors(t *testing.T) {
	bad := errors.New("bad input")
	rec := httptest.NewRecorder()
	JsonHandler(func(r *http.Request) (any, error) {
		return nil, WithStatus(http.StatusBadRequest, bad)
	})(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	JsonHandler(func(r *http.Request) (any, error) {
		return nil, bad
	})(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	assert.True(t, errors.Is(WithStatus(http.StatusBadRequest, bad), bad))
	assert.Nil(t, WithStatus(http.StatusBadRequest, nil))
}

func TestRespondToOptions(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	RespondToOptions(rec, req)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}
