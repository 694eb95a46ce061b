// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/lepetitmarche/storefront-api/internal/domain/product"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	products map[string]product.Product
}

func (s *stubCatalog) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return &p, nil
}

func newTestService(t *testing.T) (*Service, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	catalog := &stubCatalog{products: map[string]product.Product{
		"baguette-tradition": {ID: "baguette-tradition", Name: "Baguette tradition", Price: 1.20, ImageURL: "/images/baguette.jpg"},
		"fromage-chevre":     {ID: "fromage-chevre", Name: "Fromage de chèvre", Price: 4.50},
	}}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(store, catalog, logger), store
}

func TestAddItemMergesQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", &AddItemRequest{ProductID: "baguette-tradition", Quantity: 2})
	require.NoError(t, err)

	resp, err := svc.AddItem(ctx, "s1", &AddItemRequest{ProductID: "baguette-tradition", Quantity: 3})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.Equal(t, 1.20, resp.Items[0].Price)
}

func TestAddItemKeepsSnapshotOnMerge(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", &AddItemRequest{ProductID: "baguette-tradition", Quantity: 1})
	require.NoError(t, err)

	// Rewrite the stored snapshot price, then add the same product
	// again. The merge must only bump the quantity.
	payload, found, err := store.Get(ctx, "cart:v1:session:s1")
	require.NoError(t, err)
	require.True(t, found)

	var record Record
	require.NoError(t, json.Unmarshal([]byte(payload), &record))
	record.Items[0].Price = 0.99
	raw, err := json.Marshal(&record)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "cart:v1:session:s1", string(raw), cartTTL))

	resp, err := svc.AddItem(ctx, "s1", &AddItemRequest{ProductID: "baguette-tradition", Quantity: 1})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 0.99, resp.Items[0].Price)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.AddItem(context.Background(), "s1", &AddItemRequest{ProductID: "fromage-chevre", Quantity: 0})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddItem(context.Background(), "s1", &AddItemRequest{ProductID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", &AddItemRequest{ProductID: "baguette-tradition", Quantity: 2})
	require.NoError(t, err)

	resp, err := svc.UpdateQuantity(ctx, "s1", "baguette-tradition", 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)

	// Removing again is a no-op, not an error.
	resp, err = svc.RemoveItem(ctx, "s1", "baguette-tradition")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestUpdateQuantityAbsentProductIsNoop(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", &AddItemRequest{ProductID: "baguette-tradition", Quantity: 1})
	require.NoError(t, err)

	resp, err := svc.UpdateQuantity(ctx, "s1", "fromage-chevre", 4)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "baguette-tradition", resp.Items[0].ProductID)
}

func TestTotals(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", &AddItemRequest{ProductID: "baguette-tradition", Quantity: 2})
	require.NoError(t, err)
	resp, err := svc.AddItem(ctx, "s1", &AddItemRequest{ProductID: "fromage-chevre", Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Totals.ItemCount)
	assert.Equal(t, 3, resp.Totals.TotalQuantity)
	assert.InDelta(t, 6.90, resp.Totals.TotalPrice, 0.0001)

	count, err := svc.ItemCount(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMalformedPayloadFallsBackToEmptyCart(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cart:v1:session:s1", "{not json", cartTTL))

	resp, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestVersionMismatchFallsBackToEmptyCart(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	stale := `{"version":99,"session_id":"s1","items":[{"productId":"x","quantity":1}]}`
	require.NoError(t, store.Set(ctx, "cart:v1:session:s1", stale, cartTTL))

	resp, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestReconcile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", &AddItemRequest{ProductID: "baguette-tradition", Quantity: 1})
	require.NoError(t, err)

	notice, err := svc.Reconcile(ctx, "s1", RedirectStatusCanceled)
	require.NoError(t, err)
	assert.Equal(t, NoticePaymentCanceled, notice)

	resp, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1, "canceled payment must leave the cart untouched")

	notice, err = svc.Reconcile(ctx, "s1", RedirectStatusSucceeded)
	require.NoError(t, err)
	assert.Equal(t, NoticePaymentSucceeded, notice)

	resp, err = svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items, "succeeded payment must clear the cart")

	notice, err = svc.Reconcile(ctx, "s1", "processing")
	require.NoError(t, err)
	assert.Empty(t, notice)
}

func TestGetCartRequiresSession(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetCart(context.Background(), "")
	assert.Error(t, err)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", &AddItemRequest{ProductID: "baguette-tradition", Quantity: 1})
	require.NoError(t, err)

	resp, err := svc.GetCart(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
