package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFormFetchClosed(t *testing.T) {
	svc, _ := newTestSession(t)
	resp := serve(OrderFormFetch(svc), jsonRequest(http.MethodGet, "/api/v1/order-form", ""))
	require.Equal(t, http.StatusOK, resp.Code)

	env := decodeEnvelope[orderFormResponse](t, resp)
	assert.False(t, env.Data.Open)
	assert.Nil(t, env.Data.Draft)
	assert.Len(t, env.Data.Days, 7)
	assert.Len(t, env.Data.DeliveryPeriods, 3)
}

func TestOrderFormOpenUpdateConfirm(t *testing.T) {
	svc, _ := newTestSession(t)

	resp := serve(OrderFormOpen(svc), jsonRequest(http.MethodPost, "/api/v1/order-form/open", ""))
	require.Equal(t, http.StatusOK, resp.Code)
	opened := decodeEnvelope[orderFormResponse](t, resp)
	require.NotNil(t, opened.Data.Draft)
	assert.Equal(t, 1, opened.Data.Draft.SubscriptionTermMonths)
	assert.Equal(t, "2023-05-23", opened.Data.Draft.SubscriptionStart)

	body := `{"phone_number":"abc","address":"","day":"saturday","delivery_period":"day","subscription_term_months":12,"subscription_start":"2023-06-01"}`
	resp = serve(OrderFormUpdate(svc, nil), jsonRequest(http.MethodPatch, "/api/v1/order-form", body))
	require.Equal(t, http.StatusOK, resp.Code)
	updated := decodeEnvelope[orderFormResponse](t, resp)
	assert.Equal(t, "abc", updated.Data.Draft.PhoneNumber, "phone numbers are not validated")
	assert.Equal(t, "saturday", updated.Data.Draft.Day)
	assert.Equal(t, "day", updated.Data.Draft.DeliveryPeriod)
	assert.Equal(t, 12, updated.Data.Draft.SubscriptionTermMonths)
	assert.Equal(t, "2023-06-01", updated.Data.Draft.SubscriptionStart)

	resp = serve(OrderFormConfirm(svc, nil), jsonRequest(http.MethodPost, "/api/v1/order-form/confirm", ""))
	require.Equal(t, http.StatusOK, resp.Code)

	_, open := svc.OrderForm()
	assert.False(t, open)
}

func TestOrderFormUpdatePartial(t *testing.T) {
	svc, _ := newTestSession(t)
	svc.OpenOrderForm(context.Background())

	serve(OrderFormUpdate(svc, nil), jsonRequest(http.MethodPatch, "/", `{"address":"ул. Абая 1"}`))
	resp := serve(OrderFormUpdate(svc, nil), jsonRequest(http.MethodPatch, "/", `{"subscription_term_months":3}`))

	env := decodeEnvelope[orderFormResponse](t, resp)
	assert.Equal(t, "ул. Абая 1", env.Data.Draft.Address)
	assert.Equal(t, 3, env.Data.Draft.SubscriptionTermMonths)
}

func TestOrderFormUpdateValidation(t *testing.T) {
	svc, _ := newTestSession(t)
	svc.OpenOrderForm(context.Background())

	for _, body := range []string{
		`{"subscription_term_months":13}`,
		`{"subscription_term_months":0}`,
		`{"day":"someday"}`,
		`{"delivery_period":"night"}`,
		`{"subscription_start":"23.05.2023"}`,
	} {
		resp := serve(OrderFormUpdate(svc, nil), jsonRequest(http.MethodPatch, "/", body))
		assert.Equal(t, http.StatusBadRequest, resp.Code, body)
	}
}

func TestOrderFormRequiresOpenForm(t *testing.T) {
	svc, _ := newTestSession(t)

	resp := serve(OrderFormUpdate(svc, nil), jsonRequest(http.MethodPatch, "/", `{"address":"x"}`))
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = serve(OrderFormConfirm(svc, nil), jsonRequest(http.MethodPost, "/", ""))
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestOrderFormCloseDiscards(t *testing.T) {
	svc, _ := newTestSession(t)
	svc.OpenOrderForm(context.Background())
	serve(OrderFormUpdate(svc, nil), jsonRequest(http.MethodPatch, "/", `{"phone_number":"1"}`))

	resp := serve(OrderFormClose(svc), jsonRequest(http.MethodPost, "/", ""))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.False(t, decodeEnvelope[orderFormResponse](t, resp).Data.Open)

	resp = serve(OrderFormOpen(svc), jsonRequest(http.MethodPost, "/", ""))
	assert.Empty(t, decodeEnvelope[orderFormResponse](t, resp).Data.Draft.PhoneNumber)
}
