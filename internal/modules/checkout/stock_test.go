package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarmstore/storefront-backend/internal/modules/cart"
	"github.com/sarmstore/storefront-backend/internal/modules/catalog"
	"github.com/sarmstore/storefront-backend/internal/notify"
)

type stockRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func (r *stockRepo) Create(_ context.Context, p *catalog.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stockRepo) GetByID(_ context.Context, id string) (*catalog.Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	p, ok := r.products[uid]
	if !ok {
		return nil, errors.New("product not found")
	}
	return p, nil
}

func (r *stockRepo) List(context.Context, string) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stockRepo) Update(_ context.Context, p *catalog.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stockRepo) Delete(_ context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(r.products, uid)
	return nil
}

func (r *stockRepo) DecrementStock(_ context.Context, id uuid.UUID, qty int) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("product not found")
	}
	p.Stock -= qty
	return nil
}

// refreshPub stands in for the bus: each publish re-reads the catalog into
// the cache, like the cache's bus subscription does in production.
type refreshPub struct {
	cache *catalog.Cache
}

func (p *refreshPub) Publish(string, []byte) error {
	return p.cache.Refresh(context.Background())
}

type stockCartStore struct {
	carts map[string][]cart.Line
}

func (s *stockCartStore) Load(_ context.Context, sessionID string) ([]cart.Line, error) {
	return append([]cart.Line(nil), s.carts[sessionID]...), nil
}

func (s *stockCartStore) Save(_ context.Context, sessionID string, lines []cart.Line) error {
	s.carts[sessionID] = append([]cart.Line(nil), lines...)
	return nil
}

func (s *stockCartStore) Clear(_ context.Context, sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}

type flatFee float64

func (f flatFee) DeliveryFee(context.Context) float64 { return float64(f) }

// The storefront is wired cache-first: cart reconciliation reads the cache,
// checkout decrements through the catalog service, and the resulting change
// event refreshes the cache. A sold-out product must be rejected on the very
// next add, in the same session, with no admin write in between.
func TestCheckoutSoldOutProductRejectedOnNextAdd(t *testing.T) {
	ctx := context.Background()

	repo := &stockRepo{products: map[uuid.UUID]*catalog.Product{}}
	cache := catalog.NewCache(repo)
	catalogSvc := catalog.NewService(repo, &refreshPub{cache: cache})

	p, err := catalogSvc.CreateProduct(ctx, catalog.ProductRequest{
		Name: "Classic Notebook", Price: 120, Stock: 1, Category: "stationery",
	})
	require.NoError(t, err)

	cartSvc := cart.NewService(&stockCartStore{carts: map[string][]cart.Line{}}, cache, flatFee(50), "")
	orders := &fakeOrders{}
	links := notify.NewLinkBuilder("wa.me", "917006927825")
	checkoutSvc := NewService(cartSvc, orders, catalogSvc, links, fakeSettings{}, false)

	_, err = cartSvc.Add(ctx, "sess-1", p.ID.String())
	require.NoError(t, err)

	res, err := checkoutSvc.Submit(ctx, "sess-1", nil, submitReq())
	require.NoError(t, err)
	require.NotNil(t, res.Order)
	assert.Equal(t, 0, repo.products[p.ID].Stock)

	// The last unit is gone. The cache has already seen the decrement, so
	// the same session cannot add the product again.
	_, err = cartSvc.Add(ctx, "sess-1", p.ID.String())
	assert.ErrorIs(t, err, cart.ErrOutOfStock)

	// And a repeat checkout cannot drive stock negative: the cart is empty.
	_, err = checkoutSvc.Submit(ctx, "sess-1", nil, submitReq())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindEmptyCart, verr.Kind)
	assert.Equal(t, 0, repo.products[p.ID].Stock)
}

func TestCheckoutDecrementRefreshesOtherSessions(t *testing.T) {
	ctx := context.Background()

	repo := &stockRepo{products: map[uuid.UUID]*catalog.Product{}}
	cache := catalog.NewCache(repo)
	catalogSvc := catalog.NewService(repo, &refreshPub{cache: cache})

	p, err := catalogSvc.CreateProduct(ctx, catalog.ProductRequest{
		Name: "Gel Pen", Price: 20, Stock: 3,
	})
	require.NoError(t, err)

	cartSvc := cart.NewService(&stockCartStore{carts: map[string][]cart.Line{}}, cache, flatFee(50), "")
	checkoutSvc := NewService(cartSvc, &fakeOrders{}, catalogSvc, newLinks(), fakeSettings{}, false)

	_, err = cartSvc.Add(ctx, "sess-a", p.ID.String())
	require.NoError(t, err)
	lines, err := cartSvc.ChangeQuantity(ctx, "sess-a", p.ID.String(), 1)
	require.NoError(t, err)
	require.Equal(t, 2, lines[0].Quantity)

	_, err = checkoutSvc.Submit(ctx, "sess-a", nil, submitReq())
	require.NoError(t, err)

	// Another session sees one unit left, not three.
	_, err = cartSvc.Add(ctx, "sess-b", p.ID.String())
	require.NoError(t, err)
	_, err = cartSvc.Add(ctx, "sess-b", p.ID.String())
	assert.ErrorIs(t, err, cart.ErrOutOfStock)
}

func newLinks() *notify.LinkBuilder {
	return notify.NewLinkBuilder("wa.me", "917006927825")
}
