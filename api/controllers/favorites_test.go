package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/clearwell/clearwell-backend/api/middleware"
	"github.com/clearwell/clearwell-backend/internal/favorites"
	"github.com/clearwell/clearwell-backend/pkg/enums"
	pkgerrors "github.com/clearwell/clearwell-backend/pkg/errors"
	"github.com/clearwell/clearwell-backend/pkg/types"
)

type stubFavoritesService struct {
	resolved []favorites.ResolvedFavorite
	added    []uuid.UUID
	removed  []uuid.UUID
	err      error
}

func (s *stubFavoritesService) GetFavorites(ctx context.Context, userID uuid.UUID) ([]favorites.ResolvedFavorite, error) {
	return s.resolved, s.err
}

func (s *stubFavoritesService) GetFavoriteIDs(ctx context.Context, userID uuid.UUID, cursor string, limit int) (favorites.FavoriteIDsDTO, error) {
	ids := make([]uuid.UUID, 0, len(s.resolved))
	for _, fav := range s.resolved {
		ids = append(ids, fav.Product.ID)
	}
	return favorites.FavoriteIDsDTO{ItemIDs: ids, Pagination: favorites.PageInfo{Total: len(ids)}}, s.err
}

func (s *stubFavoritesService) AddFavorite(ctx context.Context, userID uuid.UUID, productType enums.ProductType, itemID uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.added = append(s.added, itemID)
	return nil
}

func (s *stubFavoritesService) RemoveFavorite(ctx context.Context, userID, itemID uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.removed = append(s.removed, itemID)
	return nil
}

func (s *stubFavoritesService) Resolve(ctx context.Context, userID uuid.UUID) ([]favorites.ResolvedFavorite, error) {
	return s.resolved, s.err
}

func authedRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := middleware.WithUserID(req.Context(), uuid.NewString())
	return req.WithContext(ctx)
}

func TestFavoritesListReturnsResolved(t *testing.T) {
	svc := &stubFavoritesService{resolved: []favorites.ResolvedFavorite{
		{FavoriteID: uuid.New(), ProductType: enums.ProductTypeBottledWater},
	}}
	rec := httptest.NewRecorder()

	FavoritesList(svc, nil)(rec, authedRequest(http.MethodGet, "/api/v1/favorites", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var body types.SuccessEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if items, ok := body.Data.([]any); !ok || len(items) != 1 {
		t.Fatalf("unexpected payload %v", body.Data)
	}
}

func TestFavoritesListRequiresUserContext(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/favorites", nil)

	FavoritesList(&stubFavoritesService{}, nil)(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestFavoriteAddValidatesPayload(t *testing.T) {
	svc := &stubFavoritesService{}
	rec := httptest.NewRecorder()

	FavoriteAdd(svc, nil)(rec, authedRequest(http.MethodPost, "/api/v1/favorites", `{"product_type":"bottled_water"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if len(svc.added) != 0 {
		t.Fatal("expected no favorite saved")
	}
}

func TestFavoriteAddSavesItem(t *testing.T) {
	svc := &stubFavoritesService{}
	itemID := uuid.New()
	rec := httptest.NewRecorder()

	payload := `{"product_type":"bottled_water","item_id":"` + itemID.String() + `"}`
	FavoriteAdd(svc, nil)(rec, authedRequest(http.MethodPost, "/api/v1/favorites", payload))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if len(svc.added) != 1 || svc.added[0] != itemID {
		t.Fatalf("expected %s saved, got %v", itemID, svc.added)
	}
}

func TestFavoriteRemoveByPathParam(t *testing.T) {
	svc := &stubFavoritesService{}
	itemID := uuid.New()

	router := chi.NewRouter()
	router.Delete("/api/v1/favorites/{itemId}", FavoriteRemove(svc, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/v1/favorites/"+itemID.String(), ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if len(svc.removed) != 1 || svc.removed[0] != itemID {
		t.Fatalf("expected %s removed, got %v", itemID, svc.removed)
	}
}

func TestFavoriteAddSurfacesServiceError(t *testing.T) {
	svc := &stubFavoritesService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	rec := httptest.NewRecorder()

	payload := `{"product_type":"bottled_water","item_id":"` + uuid.NewString() + `"}`
	FavoriteAdd(svc, nil)(rec, authedRequest(http.MethodPost, "/api/v1/favorites", payload))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
