package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/clearwell/clearwell-backend/api/responses"
	"github.com/clearwell/clearwell-backend/internal/ingredients"
	pkgerrors "github.com/clearwell/clearwell-backend/pkg/errors"
	"github.com/clearwell/clearwell-backend/pkg/logger"
)

// IngredientDetail returns the reference data for a single contaminant.
func IngredientDetail(svc ingredients.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ingredients service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid ingredient id"))
			return
		}

		ingredient, err := svc.GetIngredient(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, ingredient)
	}
}
