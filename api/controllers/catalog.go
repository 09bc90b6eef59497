package controllers

import (
	"net/http"

	"github.com/angelmondragon/arbuz-storefront/api/responses"
	"github.com/angelmondragon/arbuz-storefront/api/validators"
	"github.com/angelmondragon/arbuz-storefront/pkg/logger"
)

const productIDParam = "productId"

// CatalogList renders every product with its selection state.
func CatalogList(svc Storefront) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, newProductList(svc.Catalog()))
	}
}

// CatalogToggle flips selection of one product and returns the refreshed catalog.
// Unknown ids are accepted and change nothing.
func CatalogToggle(svc Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, productIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.ToggleSelection(r.Context(), id)
		responses.WriteSuccess(w, newProductList(svc.Catalog()))
	}
}

type setQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=10"`
}

// CatalogSetQuantity applies the stepper value. The 1..10 range is enforced here
// because the catalog itself trusts its caller.
func CatalogSetQuantity(svc Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, productIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload setQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.SetQuantity(r.Context(), id, payload.Quantity)
		responses.WriteSuccess(w, newProductList(svc.Catalog()))
	}
}
