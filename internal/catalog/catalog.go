package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// Catalog holds the fixed, ordered product list. Membership never changes after
// New; selection and quantity mutate in place. Catalog is not safe for
// concurrent use.
type Catalog struct {
	products []Product
	index    map[uuid.UUID]int
}

// New copies products into a catalog. Every nil or duplicate id is reported.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, len(products)),
		index:    make(map[uuid.UUID]int, len(products)),
	}
	var errs error
	for i, p := range products {
		if p.ID == uuid.Nil {
			errs = multierr.Append(errs, fmt.Errorf("product %d (%s): id is required", i, p.Name))
			continue
		}
		if prev, dup := c.index[p.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("product %d (%s): id %s already used by product %d", i, p.Name, p.ID, prev))
			continue
		}
		p.Measure = p.Measure.normalized()
		c.products[i] = p
		c.index[p.ID] = i
	}
	if errs != nil {
		return nil, errs
	}
	return c, nil
}

// ToggleSelection flips the selected flag of a selectable product. Unknown ids
// and non-selectable products are ignored.
func (c *Catalog) ToggleSelection(id uuid.UUID) {
	p := c.lookup(id)
	if p == nil || !p.Selectable {
		return
	}
	p.Selected = !p.Selected
}

// SetQuantity replaces the count of a quantity product. The caller keeps value
// within the range the UI allows; volume and weight products are left as is.
func (c *Catalog) SetQuantity(id uuid.UUID, value int) {
	p := c.lookup(id)
	if p == nil {
		return
	}
	if _, ok := p.Measure.Count(); !ok {
		return
	}
	p.Measure = QuantityOf(value)
}

// SelectedProducts returns copies of the selected products in catalog order.
func (c *Catalog) SelectedProducts() []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if p.Selected {
			out = append(out, p)
		}
	}
	return out
}

// Products returns a copy of the whole catalog in order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id uuid.UUID) (Product, bool) {
	p := c.lookup(id)
	if p == nil {
		return Product{}, false
	}
	return *p, true
}

func (c *Catalog) Len() int {
	return len(c.products)
}

func (c *Catalog) lookup(id uuid.UUID) *Product {
	i, ok := c.index[id]
	if !ok {
		return nil
	}
	return &c.products[i]
}
