package ingredients

import (
	"math"
	"sort"

	"github.com/clearwell/clearwell-backend/pkg/db/models"
	"github.com/clearwell/clearwell-backend/pkg/types"
	"github.com/google/uuid"
)

// Normalize joins raw product measurements against the reference ingredient
// table and computes how far each reading sits above its limit.
//
// The health guideline wins over the legal limit whenever it is set, even when
// it is the larger of the two. Readings whose ingredient is missing from the
// reference map are dropped. Output is ordered worst-first; readings without
// limit data sort last.
func Normalize(measurements types.Measurements, refs map[uuid.UUID]models.Ingredient) []ContaminantDTO {
	result := make([]ContaminantDTO, 0, len(measurements))
	for _, m := range measurements {
		ref, ok := refs[m.IngredientID]
		if !ok {
			continue
		}

		dto := ContaminantDTO{
			IngredientID:    ref.ID,
			Name:            ref.Name,
			Risks:           append([]string(nil), ref.Risks...),
			Benefits:        append([]string(nil), ref.Benefits...),
			Amount:          m.Amount,
			LegalLimit:      ref.LegalLimit,
			HealthGuideline: ref.HealthGuideline,
			ExceedingLimit:  exceedance(m.Amount, ref),
		}
		result = append(result, dto)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].ExceedingLimit, result[j].ExceedingLimit
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
	return result
}

func exceedance(amount *float64, ref models.Ingredient) *int {
	limit := effectiveLimit(ref)
	if limit == nil || *limit <= 0 || amount == nil {
		return nil
	}
	times := int(math.Round(*amount / *limit))
	return &times
}

func effectiveLimit(ref models.Ingredient) *float64 {
	if ref.HealthGuideline != nil && *ref.HealthGuideline > 0 {
		return ref.HealthGuideline
	}
	return ref.LegalLimit
}
