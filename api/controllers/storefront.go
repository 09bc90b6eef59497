package controllers

import (
	"context"

	"github.com/angelmondragon/arbuz-storefront/internal/cart"
	"github.com/angelmondragon/arbuz-storefront/internal/catalog"
	"github.com/angelmondragon/arbuz-storefront/internal/orderform"
	"github.com/google/uuid"
)

// Storefront is the session surface the HTTP adapter drives.
type Storefront interface {
	ToggleSelection(ctx context.Context, id uuid.UUID) (catalog.Product, bool)
	SetQuantity(ctx context.Context, id uuid.UUID, value int) (catalog.Product, bool)
	AddSelectedToCart(ctx context.Context) cart.Notification
	OpenOrderForm(ctx context.Context) orderform.Draft
	UpdateOrderDraft(ctx context.Context, fn func(*orderform.Draft)) (orderform.Draft, error)
	CloseOrderForm(ctx context.Context)
	ConfirmOrder(ctx context.Context) (orderform.Draft, error)
	Catalog() []catalog.Product
	Cart() []cart.Entry
	OrderForm() (orderform.Draft, bool)
}
