package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarmstore/storefront-backend/internal/modules/catalog"
)

type memStore struct {
	carts map[string][]Line
}

func newMemStore() *memStore {
	return &memStore{carts: map[string][]Line{}}
}

func (m *memStore) Load(_ context.Context, sessionID string) ([]Line, error) {
	return append([]Line(nil), m.carts[sessionID]...), nil
}

func (m *memStore) Save(_ context.Context, sessionID string, lines []Line) error {
	m.carts[sessionID] = append([]Line(nil), lines...)
	return nil
}

func (m *memStore) Clear(_ context.Context, sessionID string) error {
	delete(m.carts, sessionID)
	return nil
}

type fakeProducts struct {
	byID map[uuid.UUID]catalog.Product
}

func (f *fakeProducts) Get(id uuid.UUID) (catalog.Product, bool) {
	p, ok := f.byID[id]
	return p, ok
}

type staticFee float64

func (f *staticFee) DeliveryFee(context.Context) float64 { return float64(*f) }

func newCartService(products ...catalog.Product) (Service, *memStore) {
	src := &fakeProducts{byID: map[uuid.UUID]catalog.Product{}}
	for _, p := range products {
		src.byID[p.ID] = p
	}
	store := newMemStore()
	fee := staticFee(50)
	return NewService(store, src, &fee, "assets/products/default-notebook.jpg"), store
}

func TestServiceAddPersistsLine(t *testing.T) {
	p := testProduct(3)
	svc, store := newCartService(p)
	ctx := context.Background()

	lines, err := svc.Add(ctx, "sess-1", p.ID.String())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, "assets/products/default-notebook.jpg", lines[0].Image)

	persisted, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, lines, persisted)
}

func TestServiceAddLastUnitThenReject(t *testing.T) {
	p := testProduct(1)
	svc, _ := newCartService(p)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-1", p.ID.String())
	require.NoError(t, err)

	_, err = svc.Add(ctx, "sess-1", p.ID.String())
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestServiceAddUnknownProduct(t *testing.T) {
	svc, _ := newCartService()

	_, err := svc.Add(context.Background(), "sess-1", uuid.NewString())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestServiceChangeQuantityDeletedProduct(t *testing.T) {
	p := testProduct(3)
	svc, store := newCartService(p)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-1", p.ID.String())
	require.NoError(t, err)

	// Simulate the product being removed from the catalog after add.
	deleted := uuid.New()
	lines, _ := store.Load(ctx, "sess-1")
	lines = append(lines, Line{ProductID: deleted, Quantity: 1})
	require.NoError(t, store.Save(ctx, "sess-1", lines))

	_, err = svc.ChangeQuantity(ctx, "sess-1", deleted.String(), 1)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestServiceRemoveAndClear(t *testing.T) {
	p := testProduct(3)
	svc, _ := newCartService(p)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-1", p.ID.String())
	require.NoError(t, err)

	lines, err := svc.Remove(ctx, "sess-1", p.ID.String())
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = svc.Add(ctx, "sess-1", p.ID.String())
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "sess-1"))

	lines, totals, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Equal(t, 0.0, totals.Total)
}

func TestTotalsFollowFeeSource(t *testing.T) {
	p := testProduct(3)
	src := &fakeProducts{byID: map[uuid.UUID]catalog.Product{p.ID: p}}
	fee := staticFee(50)
	svc := NewService(newMemStore(), src, &fee, "")
	ctx := context.Background()

	lines, err := svc.Add(ctx, "sess-1", p.ID.String())
	require.NoError(t, err)

	assert.Equal(t, 50.0, svc.TotalsFor(ctx, lines).Delivery)

	// An updated stored fee applies to the next priced cart immediately.
	fee = 80
	assert.Equal(t, 80.0, svc.TotalsFor(ctx, lines).Delivery)

	_, totals, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 80.0, totals.Delivery)
}

func TestDecodeLinesFailsSoft(t *testing.T) {
	assert.Nil(t, decodeLines(nil))
	assert.Nil(t, decodeLines([]byte("{not json")))

	lines := decodeLines([]byte(`[{"product_id":"` + uuid.NewString() + `","quantity":2}]`))
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}
