package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records the intents the presentation layer forwards into the session.
type StorefrontMetrics struct {
	intents    *prometheus.CounterVec
	itemsAdded prometheus.Counter
	cartSize   prometheus.Gauge
	selected   prometheus.Gauge
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
// A nil registerer yields a recorder whose methods are no-ops.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	intents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_intents_total",
		Help: "Intents handled by the storefront session.",
	}, []string{"intent"})
	itemsAdded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_cart_items_added_total",
		Help: "Cart entries appended from catalog selections.",
	})
	cartSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_cart_entries",
		Help: "Current number of entries in the cart.",
	})
	selected := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_catalog_selected_products",
		Help: "Catalog products currently marked as selected.",
	})
	reg.MustRegister(intents, itemsAdded, cartSize, selected)
	return &StorefrontMetrics{
		intents:    intents,
		itemsAdded: itemsAdded,
		cartSize:   cartSize,
		selected:   selected,
	}
}

// IncIntent counts one handled intent.
func (m *StorefrontMetrics) IncIntent(intent string) {
	if m == nil || m.intents == nil {
		return
	}
	m.intents.WithLabelValues(normalizeLabel(intent)).Inc()
}

// ObserveCartAdd records an add-to-cart and the resulting cart size.
func (m *StorefrontMetrics) ObserveCartAdd(added, cartLen int) {
	if m == nil || m.itemsAdded == nil {
		return
	}
	m.itemsAdded.Add(float64(added))
	m.cartSize.Set(float64(cartLen))
}

// SetSelected records the number of selected catalog products.
func (m *StorefrontMetrics) SetSelected(n int) {
	if m == nil || m.selected == nil {
		return
	}
	m.selected.Set(float64(n))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
