package controllers

import (
	"time"

	"github.com/angelmondragon/arbuz-storefront/internal/cart"
	"github.com/angelmondragon/arbuz-storefront/internal/catalog"
	"github.com/angelmondragon/arbuz-storefront/internal/orderform"
	"github.com/angelmondragon/arbuz-storefront/pkg/enums"
	"github.com/angelmondragon/arbuz-storefront/pkg/types"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type productResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Unit            string    `json:"unit"`
	Quantity        *int      `json:"quantity,omitempty"`
	Volume          *string   `json:"volume,omitempty"`
	Weight          *string   `json:"weight,omitempty"`
	DisplayQuantity string    `json:"display_quantity"`
	Image           string    `json:"image,omitempty"`
	Selected        bool      `json:"selected"`
	Selectable      bool      `json:"selectable"`
}

func newProductResponse(p catalog.Product) productResponse {
	resp := productResponse{
		ID:              p.ID,
		Name:            p.Name,
		Unit:            p.Measure.Unit().String(),
		DisplayQuantity: p.DisplayQuantity,
		Image:           p.Image,
		Selected:        p.Selected,
		Selectable:      p.Selectable,
	}
	if n, ok := p.Measure.Count(); ok {
		resp.Quantity = &n
		return resp
	}
	amount := p.Measure.String()
	if p.Measure.Unit() == enums.ProductUnitVolume {
		resp.Volume = &amount
	} else {
		resp.Weight = &amount
	}
	return resp
}

func newProductList(products []catalog.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResponse(p))
	}
	return out
}

type cartEntryResponse struct {
	Product productResponse `json:"product"`
	AddedAt time.Time       `json:"added_at"`
}

func newCartResponse(entries []cart.Entry) []cartEntryResponse {
	out := make([]cartEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, cartEntryResponse{Product: newProductResponse(e.Product), AddedAt: e.AddedAt})
	}
	return out
}

func newNotification(n cart.Notification) types.Notification {
	return types.Notification{Kind: n.Kind.String(), Count: n.Count, Message: n.Message}
}

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type draftResponse struct {
	PhoneNumber            string `json:"phone_number"`
	Address                string `json:"address"`
	Day                    string `json:"day"`
	DeliveryPeriod         string `json:"delivery_period"`
	SubscriptionTermMonths int    `json:"subscription_term_months"`
	SubscriptionStart      string `json:"subscription_start"`
}

type orderFormResponse struct {
	Open            bool           `json:"open"`
	Draft           *draftResponse `json:"draft,omitempty"`
	Days            []option       `json:"days"`
	DeliveryPeriods []option       `json:"delivery_periods"`
}

func newDraftResponse(d orderform.Draft) *draftResponse {
	return &draftResponse{
		PhoneNumber:            d.PhoneNumber,
		Address:                d.Address,
		Day:                    d.Day.String(),
		DeliveryPeriod:         d.DeliveryPeriod.String(),
		SubscriptionTermMonths: d.SubscriptionTermMonths,
		SubscriptionStart:      d.SubscriptionStart.Format(dateLayout),
	}
}

func newOrderFormResponse(d orderform.Draft, open bool) orderFormResponse {
	resp := orderFormResponse{Open: open}
	if open {
		resp.Draft = newDraftResponse(d)
	}
	for _, day := range enums.Weekdays() {
		resp.Days = append(resp.Days, option{Value: day.String(), Label: day.Label()})
	}
	for _, p := range enums.DeliveryPeriods() {
		resp.DeliveryPeriods = append(resp.DeliveryPeriods, option{Value: p.String(), Label: p.Label()})
	}
	return resp
}
