package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/clearwell/clearwell-backend/api/responses"
	"github.com/clearwell/clearwell-backend/internal/catalog"
	"github.com/clearwell/clearwell-backend/pkg/enums"
	pkgerrors "github.com/clearwell/clearwell-backend/pkg/errors"
	"github.com/clearwell/clearwell-backend/pkg/logger"
)

// ProductDetail returns the full product view with normalized contaminants.
func ProductDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productType, id, err := productParams(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		detail, err := svc.GetProduct(ctx, productType, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}

// ProductsRandom returns a random sample of scored products for discovery
// surfaces.
func ProductsRandom(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		products, err := svc.RandomProducts(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// ProductImpression records one view of the product.
func ProductImpression(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productType, id, err := productParams(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.RecordImpression(ctx, productType, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "recorded"})
	}
}

func productParams(r *http.Request) (enums.ProductType, uuid.UUID, error) {
	productType := enums.ProductType(chi.URLParam(r, "type"))
	if !productType.IsValid() {
		return "", uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid product type %q", string(productType)))
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return "", uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	}
	return productType, id, nil
}
