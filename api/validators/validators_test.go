package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/angelmondragon/arbuz-storefront/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Quantity int     `json:"quantity" validate:"required,min=1,max=10"`
	Day      *string `json:"day" validate:"omitempty,weekday"`
	Period   *string `json:"period" validate:"omitempty,delivery_period"`
}

func decode(t *testing.T, body string) (sample, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var s sample
	err := DecodeJSONBody(req, &s)
	return s, err
}

func TestDecodeJSONBodyAccepts(t *testing.T) {
	s, err := decode(t, `{"quantity":10,"day":"friday","period":"evening"}`)
	require.NoError(t, err)
	assert.Equal(t, 10, s.Quantity)
}

func TestDecodeJSONBodyRangeAndEnums(t *testing.T) {
	_, err := decode(t, `{"quantity":11,"day":"funday","period":"night"}`)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	details := typed.Details().(map[string]string)
	assert.Equal(t, "must be at most 10", details["quantity"])
	assert.Equal(t, "must be a day of the week", details["day"])
	assert.Equal(t, "must be one of morning, day, evening", details["period"])
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	_, err := decode(t, `{"quantity":1,"colour":"red"}`)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestParseUUIDParam(t *testing.T) {
	id := uuid.New()
	withParam := func(v string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("productId", v)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	got, err := ParseUUIDParam(withParam(id.String()), "productId")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseUUIDParam(withParam("nope"), "productId")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = ParseUUIDParam(withParam(""), "productId")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}
