package favorites

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/clearwell/clearwell-backend/internal/catalog"
	"github.com/clearwell/clearwell-backend/pkg/db/models"
	"github.com/clearwell/clearwell-backend/pkg/enums"
	pkgerrors "github.com/clearwell/clearwell-backend/pkg/errors"
	"github.com/clearwell/clearwell-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProduct struct {
	summary catalog.ProductSummary
	err     error
}

type fakeCatalog struct {
	mu       sync.Mutex
	products map[uuid.UUID]fakeProduct
	calls    int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{products: make(map[uuid.UUID]fakeProduct)}
}

func (f *fakeCatalog) add(productType enums.ProductType, withImage bool) uuid.UUID {
	id := uuid.New()
	summary := catalog.ProductSummary{
		ID:               id,
		Type:             productType,
		Name:             "Product " + id.String()[:8],
		ContaminantCount: 2,
	}
	if withImage {
		image := "https://cdn.example.com/" + id.String()
		summary.Image = &image
	}
	f.products[id] = fakeProduct{summary: summary}
	return id
}

func (f *fakeCatalog) fail(id uuid.UUID, err error) {
	f.products[id] = fakeProduct{err: err}
}

func (f *fakeCatalog) GetSummary(ctx context.Context, productType enums.ProductType, id uuid.UUID) (*catalog.ProductSummary, error) {
	f.mu.Lock()
	f.calls++
	product, ok := f.products[id]
	f.mu.Unlock()

	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if product.err != nil {
		return nil, product.err
	}
	summary := product.summary
	return &summary, nil
}

type fakeCounter struct {
	mu      sync.Mutex
	items   map[uuid.UUID]int
	filters map[uuid.UUID]int
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{items: map[uuid.UUID]int{}, filters: map[uuid.UUID]int{}}
}

func (f *fakeCounter) AdjustItemFavoriteCount(ctx context.Context, id uuid.UUID, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[id] += delta
	return nil
}

func (f *fakeCounter) AdjustFilterFavoriteCount(ctx context.Context, id uuid.UUID, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters[id] += delta
	return nil
}

func newFavoritesService(t *testing.T, cat *fakeCatalog, counter *fakeCounter) (Service, *Repository) {
	t.Helper()
	repo := NewRepository(setupFavoritesTestDB(t))
	svc, err := NewService(ServiceParams{
		Repo:     repo,
		Catalog:  cat,
		Counters: counter,
		Logger:   logger.New(logger.Options{ServiceName: "favorites-test", Output: io.Discard}),
	})
	require.NoError(t, err)
	return svc, repo
}

func TestResolveEnrichesAllFavorites(t *testing.T) {
	cat := newFakeCatalog()
	svc, _ := newFavoritesService(t, cat, newFakeCounter())
	ctx := context.Background()
	userID := uuid.New()

	bottled := cat.add(enums.ProductTypeBottledWater, true)
	filter := cat.add(enums.ProductTypeFilter, true)
	tap := cat.add(enums.ProductTypeTapWater, true)

	require.NoError(t, svc.AddFavorite(ctx, userID, enums.ProductTypeBottledWater, bottled))
	require.NoError(t, svc.AddFavorite(ctx, userID, enums.ProductTypeFilter, filter))
	require.NoError(t, svc.AddFavorite(ctx, userID, enums.ProductTypeTapWater, tap))

	resolved, err := svc.Resolve(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, resolved, 3)

	byID := map[uuid.UUID]ResolvedFavorite{}
	for _, fav := range resolved {
		byID[fav.Product.ID] = fav
	}
	assert.Contains(t, byID, bottled)
	assert.Contains(t, byID, filter)
	assert.Contains(t, byID, tap)
}

func TestResolveSkipsFailedAndIncompleteLookups(t *testing.T) {
	cat := newFakeCatalog()
	svc, _ := newFavoritesService(t, cat, newFakeCounter())
	ctx := context.Background()
	userID := uuid.New()

	healthy := cat.add(enums.ProductTypeBottledWater, true)
	noImage := cat.add(enums.ProductTypeBottledWater, false)
	broken := cat.add(enums.ProductTypeFilter, true)

	require.NoError(t, svc.AddFavorite(ctx, userID, enums.ProductTypeBottledWater, healthy))
	require.NoError(t, svc.AddFavorite(ctx, userID, enums.ProductTypeBottledWater, noImage))
	require.NoError(t, svc.AddFavorite(ctx, userID, enums.ProductTypeFilter, broken))

	// simulate the product disappearing after the favorite was saved
	cat.fail(broken, pkgerrors.New(pkgerrors.CodeDependency, "store timeout"))

	resolved, err := svc.Resolve(ctx, userID)
	require.Error(t, err, "aggregate error should report the dropped entries")
	require.Len(t, resolved, 1)
	assert.Equal(t, healthy, resolved[0].Product.ID)

	// the public read path hides the aggregate error
	listed, err := svc.GetFavorites(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestResolveUnknownUserReturnsEmpty(t *testing.T) {
	svc, _ := newFavoritesService(t, newFakeCatalog(), newFakeCounter())

	resolved, err := svc.Resolve(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, resolved)
	assert.Empty(t, resolved)
}

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	first := models.Favorite{ID: uuid.New(), UserID: uuid.New(), ProductType: enums.ProductTypeBottledWater, ItemID: uuid.New()}
	second := models.Favorite{ID: uuid.New(), UserID: first.UserID, ProductType: enums.ProductTypeFilter, ItemID: uuid.New()}
	repeat := models.Favorite{ID: uuid.New(), UserID: first.UserID, ProductType: first.ProductType, ItemID: first.ItemID}

	deduped := dedupe([]models.Favorite{first, second, repeat, second})

	require.Len(t, deduped, 2)
	assert.Equal(t, first.ID, deduped[0].ID, "earliest link per item wins")
	assert.Equal(t, second.ID, deduped[1].ID)
}

func TestAddFavoriteValidatesProductExists(t *testing.T) {
	cat := newFakeCatalog()
	svc, _ := newFavoritesService(t, cat, newFakeCounter())

	err := svc.AddFavorite(context.Background(), uuid.New(), enums.ProductTypeBottledWater, uuid.New())
	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeNotFound, coded.Code())
}

func TestAddFavoriteMaintainsCounterOnce(t *testing.T) {
	cat := newFakeCatalog()
	counter := newFakeCounter()
	svc, _ := newFavoritesService(t, cat, counter)
	ctx := context.Background()
	userID := uuid.New()

	bottled := cat.add(enums.ProductTypeBottledWater, true)
	require.NoError(t, svc.AddFavorite(ctx, userID, enums.ProductTypeBottledWater, bottled))
	require.NoError(t, svc.AddFavorite(ctx, userID, enums.ProductTypeBottledWater, bottled))

	assert.Equal(t, 1, counter.items[bottled], "duplicate add must not double count")

	require.NoError(t, svc.RemoveFavorite(ctx, userID, bottled))
	assert.Equal(t, 0, counter.items[bottled])

	// removing again is a no-op
	require.NoError(t, svc.RemoveFavorite(ctx, userID, bottled))
	assert.Equal(t, 0, counter.items[bottled])
}
