package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/clearwell/clearwell-backend/internal/catalog"
	"github.com/clearwell/clearwell-backend/pkg/enums"
	pkgerrors "github.com/clearwell/clearwell-backend/pkg/errors"
)

type stubCatalogService struct {
	detail      *catalog.ProductDetailDTO
	location    *catalog.LocationDTO
	random      []catalog.ProductSummary
	impressions []uuid.UUID
	err         error
}

func (s *stubCatalogService) GetProduct(ctx context.Context, productType enums.ProductType, id uuid.UUID) (*catalog.ProductDetailDTO, error) {
	return s.detail, s.err
}

func (s *stubCatalogService) GetLocation(ctx context.Context, id uuid.UUID) (*catalog.LocationDTO, error) {
	return s.location, s.err
}

func (s *stubCatalogService) GetSummary(ctx context.Context, productType enums.ProductType, id uuid.UUID) (*catalog.ProductSummary, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "not used")
}

func (s *stubCatalogService) RandomProducts(ctx context.Context) ([]catalog.ProductSummary, error) {
	return s.random, s.err
}

func (s *stubCatalogService) RandomLocations(ctx context.Context) ([]catalog.ProductSummary, error) {
	return s.random, s.err
}

func (s *stubCatalogService) RecordImpression(ctx context.Context, productType enums.ProductType, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.impressions = append(s.impressions, id)
	return nil
}

func catalogRouter(svc catalog.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/v1/products/{type}/{id}", ProductDetail(svc, nil))
	r.Post("/api/v1/products/{type}/{id}/impressions", ProductImpression(svc, nil))
	r.Get("/api/v1/locations/{id}", LocationDetail(svc, nil))
	return r
}

func TestProductDetailRejectsUnknownType(t *testing.T) {
	router := catalogRouter(&stubCatalogService{})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/soda/"+uuid.NewString(), nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestProductDetailReturnsPayload(t *testing.T) {
	id := uuid.New()
	svc := &stubCatalogService{detail: &catalog.ProductDetailDTO{ID: id, Type: enums.ProductTypeBottledWater, Name: "Spring"}}
	router := catalogRouter(svc)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/bottled_water/"+id.String(), nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestProductImpressionAccepted(t *testing.T) {
	id := uuid.New()
	svc := &stubCatalogService{}
	router := catalogRouter(svc)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/products/filter/"+id.String()+"/impressions", nil))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202 got %d", rec.Code)
	}
	if len(svc.impressions) != 1 || svc.impressions[0] != id {
		t.Fatalf("expected impression for %s, got %v", id, svc.impressions)
	}
}

func TestLocationDetailInvalidID(t *testing.T) {
	router := catalogRouter(&stubCatalogService{})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/locations/not-a-uuid", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
