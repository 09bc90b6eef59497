package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/angelmondragon/arbuz-storefront/internal/catalog"
	"github.com/angelmondragon/arbuz-storefront/internal/storefront"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2023, 5, 23, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T, products ...catalog.Product) (*storefront.Session, []catalog.Product) {
	t.Helper()
	if len(products) == 0 {
		products = []catalog.Product{
			catalog.NewProduct("A", "300г", catalog.QuantityOf(1)),
			catalog.NewProduct("B", "125г", catalog.QuantityOf(1)),
		}
	}
	cat, err := catalog.New(products)
	require.NoError(t, err)
	s, err := storefront.NewSession(storefront.Params{
		Catalog: cat,
		Clock:   func() time.Time { return testNow },
	})
	require.NoError(t, err)
	return s, products
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func jsonRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

type envelope[T any] struct {
	Data         T `json:"data"`
	Notification *struct {
		Kind    string `json:"kind"`
		Count   int    `json:"count"`
		Message string `json:"message"`
	} `json:"notification"`
	Error *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decodeEnvelope[T any](t *testing.T, resp *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}
