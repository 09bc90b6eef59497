package storefront

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/angelmondragon/arbuz-storefront/internal/cart"
	"github.com/angelmondragon/arbuz-storefront/internal/catalog"
	"github.com/angelmondragon/arbuz-storefront/internal/orderform"
	"github.com/angelmondragon/arbuz-storefront/pkg/logger"
	"github.com/angelmondragon/arbuz-storefront/pkg/metrics"
	"github.com/google/uuid"
)

const (
	IntentToggleSelection = "toggle_selection"
	IntentSetQuantity     = "set_quantity"
	IntentAddToCart       = "add_selected_to_cart"
	IntentOpenOrderForm   = "open_order_form"
	IntentUpdateDraft     = "update_order_draft"
	IntentCloseOrderForm  = "close_order_form"
	IntentConfirmOrder    = "confirm_order"
)

// Params wires a Session. Catalog is required; the rest have defaults.
type Params struct {
	Catalog   *catalog.Catalog
	Logger    *logger.Logger
	Metrics   *metrics.StorefrontMetrics
	Clock     func() time.Time
	Submitter orderform.Submitter
}

// Session is the state container the presentation layer owns: one catalog, one
// cart and one order form. Every intent enters through it. Calls are
// serialized so an HTTP adapter can share a single session.
type Session struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	cart    *cart.Cart
	form    *orderform.Form
	logg    *logger.Logger
	metrics *metrics.StorefrontMetrics

	lastNotification *cart.Notification
}

func NewSession(p Params) (*Session, error) {
	if p.Catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if p.Logger == nil {
		p.Logger = logger.Nop()
	}
	if p.Clock == nil {
		p.Clock = time.Now
	}
	if p.Submitter == nil {
		p.Submitter = orderform.DiscardSubmitter{}
	}

	s := &Session{
		catalog: p.Catalog,
		logg:    p.Logger,
		metrics: p.Metrics,
	}
	s.cart = cart.New(cart.WithClock(p.Clock), cart.WithNotifier(cart.NotifierFunc(s.itemsAdded)))
	s.form = orderform.NewForm(orderform.WithClock(p.Clock), orderform.WithSubmitter(p.Submitter))
	return s, nil
}

// itemsAdded runs inside AddSelectedToCart with the lock already held.
func (s *Session) itemsAdded(n cart.Notification) {
	s.lastNotification = &n
}

// ToggleSelection flips selection of the product and returns its new state.
// ok is false for unknown ids.
func (s *Session) ToggleSelection(ctx context.Context, id uuid.UUID) (catalog.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog.ToggleSelection(id)
	p, ok := s.catalog.Get(id)

	ctx = s.logg.WithProductID(s.logg.WithIntent(ctx, IntentToggleSelection), id.String())
	switch {
	case !ok:
		s.logg.Debug(ctx, "catalog.toggle.unknown_product")
	case !p.Selectable:
		s.logg.Debug(ctx, "catalog.toggle.not_selectable")
	default:
		s.logg.Info(s.logg.WithField(ctx, "selected", p.Selected), "catalog.toggle")
	}
	s.metrics.IncIntent(IntentToggleSelection)
	s.metrics.SetSelected(len(s.catalog.SelectedProducts()))
	return p, ok
}

// SetQuantity stores value as the product count. Range checks belong to the caller.
func (s *Session) SetQuantity(ctx context.Context, id uuid.UUID, value int) (catalog.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog.SetQuantity(id, value)
	p, ok := s.catalog.Get(id)

	ctx = s.logg.WithProductID(s.logg.WithIntent(ctx, IntentSetQuantity), id.String())
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{"quantity": value, "found": ok}), "catalog.set_quantity")
	s.metrics.IncIntent(IntentSetQuantity)
	return p, ok
}

// AddSelectedToCart snapshots the current selection into the cart. Selection
// flags in the catalog are kept.
func (s *Session) AddSelectedToCart(ctx context.Context) cart.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.cart.AddSelected(s.catalog)

	ctx = s.logg.WithIntent(ctx, IntentAddToCart)
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{"added": n.Count, "cart_len": s.cart.Len()}), "cart.items_added")
	s.metrics.IncIntent(IntentAddToCart)
	s.metrics.ObserveCartAdd(n.Count, s.cart.Len())
	return n
}

func (s *Session) OpenOrderForm(ctx context.Context) orderform.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.form.Open()
	s.logg.Info(s.logg.WithIntent(ctx, IntentOpenOrderForm), "order_form.open")
	s.metrics.IncIntent(IntentOpenOrderForm)
	return d
}

func (s *Session) UpdateOrderDraft(ctx context.Context, fn func(*orderform.Draft)) (orderform.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.IncIntent(IntentUpdateDraft)
	d, err := s.form.Update(fn)
	if err != nil {
		s.logg.Warn(s.logg.WithIntent(ctx, IntentUpdateDraft), "order_form.update.rejected")
		return orderform.Draft{}, err
	}
	return d, nil
}

// CloseOrderForm dismisses the form; the draft is dropped.
func (s *Session) CloseOrderForm(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form.Close()
	s.logg.Info(s.logg.WithIntent(ctx, IntentCloseOrderForm), "order_form.close")
	s.metrics.IncIntent(IntentCloseOrderForm)
}

// ConfirmOrder passes the draft to the configured submitter and closes the form.
func (s *Session) ConfirmOrder(ctx context.Context) (orderform.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx = s.logg.WithIntent(ctx, IntentConfirmOrder)
	s.metrics.IncIntent(IntentConfirmOrder)
	d, err := s.form.Confirm(ctx)
	if err != nil {
		s.logg.Error(ctx, "order_form.confirm.failed", err)
		return orderform.Draft{}, err
	}
	s.logg.Info(ctx, "order_form.confirmed")
	return d, nil
}

func (s *Session) Catalog() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Products()
}

func (s *Session) Cart() []cart.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Contents()
}

// OrderForm returns the current draft; ok is false while the form is closed.
func (s *Session) OrderForm() (orderform.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.form.Draft()
	return d, err == nil
}

// LastNotification returns the most recent add-to-cart signal, if any.
func (s *Session) LastNotification() (cart.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastNotification == nil {
		return cart.Notification{}, false
	}
	return *s.lastNotification, true
}
