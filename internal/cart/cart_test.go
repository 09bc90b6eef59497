package cart

import (
	"testing"
	"time"

	"github.com/angelmondragon/arbuz-storefront/internal/catalog"
	"github.com/angelmondragon/arbuz-storefront/pkg/enums"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryIDs(entries []Entry) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Product.ID)
	}
	return out
}

func setup(t *testing.T) (*catalog.Catalog, catalog.Product, catalog.Product) {
	t.Helper()
	a := catalog.NewProduct("A", "300г", catalog.QuantityOf(1))
	b := catalog.NewProduct("B", "125г", catalog.QuantityOf(1))
	cat, err := catalog.New([]catalog.Product{a, b})
	require.NoError(t, err)
	return cat, a, b
}

func TestAddSelectedAccumulatesDuplicates(t *testing.T) {
	cat, a, b := setup(t)
	c := New()

	cat.ToggleSelection(a.ID)
	cat.ToggleSelection(b.ID)
	c.AddSelected(cat)
	assert.Equal(t, []uuid.UUID{a.ID, b.ID}, entryIDs(c.Contents()))

	cat.ToggleSelection(b.ID)
	c.AddSelected(cat)
	assert.Equal(t, []uuid.UUID{a.ID, b.ID, a.ID}, entryIDs(c.Contents()))
}

func TestAddSelectedLeavesSelectionFlags(t *testing.T) {
	cat, a, b := setup(t)
	c := New()
	cat.ToggleSelection(a.ID)

	before := len(cat.SelectedProducts())
	c.AddSelected(cat)

	assert.Equal(t, before, c.Len())
	got, _ := cat.Get(a.ID)
	assert.True(t, got.Selected)
	got, _ = cat.Get(b.ID)
	assert.False(t, got.Selected)
}

func TestAddSelectedTwiceDoublesCart(t *testing.T) {
	cat, a, b := setup(t)
	c := New()
	cat.ToggleSelection(a.ID)
	cat.ToggleSelection(b.ID)

	c.AddSelected(cat)
	first := c.Len()
	c.AddSelected(cat)
	assert.Equal(t, 2*first, c.Len())
}

func TestEntriesAreSnapshots(t *testing.T) {
	cat, a, _ := setup(t)
	c := New()
	cat.ToggleSelection(a.ID)
	c.AddSelected(cat)

	cat.SetQuantity(a.ID, 9)
	cat.ToggleSelection(a.ID)

	entry := c.Contents()[0]
	n, _ := entry.Product.Measure.Count()
	assert.Equal(t, 1, n)
	assert.True(t, entry.Product.Selected)

	contents := c.Contents()
	contents[0].Product.Name = "mutated"
	assert.Equal(t, "A", c.Contents()[0].Product.Name)
}

func TestAddSelectedNotifies(t *testing.T) {
	cat, a, _ := setup(t)
	fixed := time.Date(2023, 5, 23, 10, 0, 0, 0, time.UTC)

	var got []Notification
	c := New(WithClock(func() time.Time { return fixed }), WithNotifier(NotifierFunc(func(n Notification) {
		got = append(got, n)
	})))

	empty := c.AddSelected(cat)
	assert.Equal(t, 0, empty.Count)
	assert.Equal(t, 0, c.Len())

	cat.ToggleSelection(a.ID)
	n := c.AddSelected(cat)

	require.Len(t, got, 2)
	assert.Equal(t, enums.NotificationKindItemsAdded, n.Kind)
	assert.Equal(t, 1, n.Count)
	assert.Equal(t, ItemsAddedMessage, n.Message)
	assert.Equal(t, n, got[1])
	assert.Equal(t, fixed, c.Contents()[0].AddedAt)
}
