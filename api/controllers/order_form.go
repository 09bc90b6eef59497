package controllers

import (
	"net/http"
	"time"

	"github.com/angelmondragon/arbuz-storefront/api/responses"
	"github.com/angelmondragon/arbuz-storefront/api/validators"
	"github.com/angelmondragon/arbuz-storefront/internal/orderform"
	"github.com/angelmondragon/arbuz-storefront/pkg/enums"
	"github.com/angelmondragon/arbuz-storefront/pkg/logger"
)

func OrderFormFetch(svc Storefront) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, open := svc.OrderForm()
		responses.WriteSuccess(w, newOrderFormResponse(d, open))
	}
}

func OrderFormOpen(svc Storefront) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := svc.OpenOrderForm(r.Context())
		responses.WriteSuccess(w, newOrderFormResponse(d, true))
	}
}

func OrderFormClose(svc Storefront) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.CloseOrderForm(r.Context())
		responses.WriteSuccess(w, newOrderFormResponse(orderform.Draft{}, false))
	}
}

// updateDraftRequest carries only the fields being changed. Phone and address
// are stored as typed.
type updateDraftRequest struct {
	PhoneNumber            *string `json:"phone_number"`
	Address                *string `json:"address"`
	Day                    *string `json:"day" validate:"omitempty,weekday"`
	DeliveryPeriod         *string `json:"delivery_period" validate:"omitempty,delivery_period"`
	SubscriptionTermMonths *int    `json:"subscription_term_months" validate:"omitempty,min=1,max=12"`
	SubscriptionStart      *string `json:"subscription_start" validate:"omitempty,datetime=2006-01-02"`
}

func (req updateDraftRequest) apply(d *orderform.Draft) {
	if req.PhoneNumber != nil {
		d.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		d.Address = *req.Address
	}
	if req.Day != nil {
		d.Day = enums.Weekday(*req.Day)
	}
	if req.DeliveryPeriod != nil {
		d.DeliveryPeriod = enums.DeliveryPeriod(*req.DeliveryPeriod)
	}
	if req.SubscriptionTermMonths != nil {
		d.SubscriptionTermMonths = *req.SubscriptionTermMonths
	}
	if req.SubscriptionStart != nil {
		// Layout already checked by the validator.
		if start, err := time.Parse(dateLayout, *req.SubscriptionStart); err == nil {
			d.SubscriptionStart = start
		}
	}
}

func OrderFormUpdate(svc Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateDraftRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		d, err := svc.UpdateOrderDraft(r.Context(), payload.apply)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newOrderFormResponse(d, true))
	}
}

// OrderFormConfirm closes the form after handing the draft off. The response
// echoes the confirmed draft.
func OrderFormConfirm(svc Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.ConfirmOrder(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"confirmed": newDraftResponse(d)})
	}
}
