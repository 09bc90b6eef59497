package cart

import (
	"time"

	"github.com/angelmondragon/arbuz-storefront/internal/catalog"
	"github.com/angelmondragon/arbuz-storefront/pkg/enums"
)

// ItemsAddedMessage is the alert text shown after an add-to-cart.
const ItemsAddedMessage = "Selected items added to cart"

// SelectionSource yields the products currently chosen by the user.
type SelectionSource interface {
	SelectedProducts() []catalog.Product
}

// Entry is an independent snapshot of a product taken when it was added.
type Entry struct {
	Product catalog.Product
	AddedAt time.Time
}

// Notification is the informational signal raised after every add.
type Notification struct {
	Kind    enums.NotificationKind
	Count   int
	Message string
}

// Notifier receives add-to-cart notifications for the presentation layer.
type Notifier interface {
	ItemsAdded(Notification)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) ItemsAdded(n Notification) { f(n) }

type Option func(*Cart)

func WithClock(now func() time.Time) Option {
	return func(c *Cart) { c.now = now }
}

func WithNotifier(n Notifier) Option {
	return func(c *Cart) { c.notifier = n }
}

// Cart is the append-only list of entries collected during a session. Repeated
// adds of the same product accumulate; nothing is merged or removed.
type Cart struct {
	entries  []Entry
	now      func() time.Time
	notifier Notifier
}

func New(opts ...Option) *Cart {
	c := &Cart{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddSelected appends a snapshot of every selected product in src and notifies.
// Selection flags on the source are left untouched. The notification is raised
// even when nothing was selected.
func (c *Cart) AddSelected(src SelectionSource) Notification {
	selected := src.SelectedProducts()
	at := c.now()
	for _, p := range selected {
		c.entries = append(c.entries, Entry{Product: p, AddedAt: at})
	}

	n := Notification{
		Kind:    enums.NotificationKindItemsAdded,
		Count:   len(selected),
		Message: ItemsAddedMessage,
	}
	if c.notifier != nil {
		c.notifier.ItemsAdded(n)
	}
	return n
}

// Contents returns the entries in insertion order.
func (c *Cart) Contents() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Cart) Len() int {
	return len(c.entries)
}
