package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spicetable/pos/internal/domain"
	"github.com/spicetable/pos/internal/notify"
	"github.com/spicetable/pos/pkg/errors"
)

type recordingNotifier struct {
	kinds    []notify.Kind
	messages []string
}

func (n *recordingNotifier) Notify(kind notify.Kind, message string) {
	n.kinds = append(n.kinds, kind)
	n.messages = append(n.messages, message)
}

func dosa() domain.Product {
	return domain.Product{ID: uuid.New(), Name: "Masala Dosa", Price: 80, Category: "South Indian"}
}

func TestAdd_MergesRepeatedProductIntoOneLine(t *testing.T) {
	c := New(nil)
	p := dosa()

	c.Add(p)
	c.Add(p)
	c.Add(p)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 3, c.Lines()[0].Quantity)
	assert.Equal(t, p.ID, c.Lines()[0].ProductID)
}

func TestAdd_NotifiesOnlyOnFirstAdd(t *testing.T) {
	n := &recordingNotifier{}
	c := New(n)
	p := dosa()

	c.Add(p)
	c.Add(p)

	require.Len(t, n.kinds, 1)
	assert.Equal(t, notify.KindSuccess, n.kinds[0])
}

func TestAdd_KeepsInsertionOrder(t *testing.T) {
	c := New(nil)
	first := dosa()
	second := domain.Product{ID: uuid.New(), Name: "Masala Chai", Price: 20, Category: "Beverages"}

	c.Add(first)
	c.Add(second)
	c.Add(first)

	require.Equal(t, 2, c.Len())
	assert.Equal(t, first.ID, c.Lines()[0].ProductID)
	assert.Equal(t, second.ID, c.Lines()[1].ProductID)
}

func TestAddManual_BlankNameRejected(t *testing.T) {
	n := &recordingNotifier{}
	c := New(n)

	err := c.AddManual("  ", 50)

	var validation *errors.ErrValidation
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, 0, c.Len())
	require.Len(t, n.kinds, 1)
	assert.Equal(t, notify.KindError, n.kinds[0])
}

func TestAddManual_NonPositivePriceRejected(t *testing.T) {
	c := New(nil)

	for _, price := range []float64{0, -10} {
		err := c.AddManual("Extra Chutney", price)

		var validation *errors.ErrValidation
		require.ErrorAs(t, err, &validation)
	}
	assert.Equal(t, 0, c.Len())
}

func TestAddManual_ValidItemGetsCustomCategory(t *testing.T) {
	c := New(nil)

	err := c.AddManual("Extra Chutney", 15)

	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	line := c.Lines()[0]
	assert.Equal(t, "Extra Chutney", line.Name)
	assert.Equal(t, 15.0, line.UnitPrice)
	assert.Equal(t, 1, line.Quantity)
	assert.NotEqual(t, uuid.Nil, line.ProductID)
}

func TestChangeQuantity_FloorsAtOne(t *testing.T) {
	c := New(nil)
	p := dosa()
	c.Add(p)
	c.Add(p)

	for _, delta := range []int{-1, -5, -100} {
		require.NoError(t, c.ChangeQuantity(p.ID, delta))
		assert.GreaterOrEqual(t, c.Lines()[0].Quantity, 1)
	}
	assert.Equal(t, 1, c.Len())
}

func TestChangeQuantity_PositiveDelta(t *testing.T) {
	c := New(nil)
	p := dosa()
	c.Add(p)

	require.NoError(t, c.ChangeQuantity(p.ID, 4))

	assert.Equal(t, 5, c.Lines()[0].Quantity)
}

func TestChangeQuantity_UnknownLine(t *testing.T) {
	c := New(nil)

	err := c.ChangeQuantity(uuid.New(), 1)

	var notFound *errors.ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestRemove_DeletesLineUnconditionally(t *testing.T) {
	c := New(nil)
	p := dosa()
	c.Add(p)
	c.Add(p)

	require.NoError(t, c.Remove(p.ID))

	assert.True(t, c.IsEmpty())
}

func TestClear_EmptiesCart(t *testing.T) {
	c := New(nil)
	c.Add(dosa())
	c.Add(dosa())

	c.Clear()

	assert.True(t, c.IsEmpty())
}

func TestSnapshot_UnaffectedByLaterMutations(t *testing.T) {
	c := New(nil)
	p := dosa()
	c.Add(p)
	c.Add(p)

	snap := c.Snapshot()
	require.NoError(t, c.ChangeQuantity(p.ID, 10))
	require.NoError(t, c.Remove(p.ID))

	require.Len(t, snap, 1)
	assert.Equal(t, 2, snap[0].Quantity)
}
