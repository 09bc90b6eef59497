package controllers

import (
	"net/http"

	"github.com/angelmondragon/arbuz-storefront/api/responses"
)

func CartList(svc Storefront) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, newCartResponse(svc.Cart()))
	}
}

// CartAddSelected moves the current selection into the cart and returns the
// cart alongside the "items added" notification.
func CartAddSelected(svc Storefront) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := svc.AddSelectedToCart(r.Context())
		responses.WriteSuccessWithNotification(w, newCartResponse(svc.Cart()), newNotification(n))
	}
}
