package scores

import (
	"math"

	"github.com/clearwell/clearwell-backend/internal/favorites"
	"github.com/clearwell/clearwell-backend/pkg/enums"
)

// Summary is the per-user score breakdown.
type Summary struct {
	ShowersScore      int  `json:"showers_score"`
	WaterFilterScore  int  `json:"water_filter_score"`
	BottledWaterScore int  `json:"bottled_water_score"`
	OverallScore      int  `json:"overall_score"`
	TotalContaminants int  `json:"total_contaminants"`
	HasFavorites      bool `json:"has_favorites"`
}

// Aggregate folds resolved favorites into the user summary. tapScore is the
// score of the user's assigned tap location and backfills the shower and
// filter categories when the user saved nothing in them.
//
// Shower and filter categories take the best (max) saved score; bottled water
// averages across saved bottles and gallons. The overall score averages every
// favorite with a score, regardless of category. Favorites without a score
// still count toward TotalContaminants but never drag an average down.
// Rounding happens once, at the end.
func Aggregate(favs []favorites.ResolvedFavorite, tapScore *int) Summary {
	summary := Summary{HasFavorites: len(favs) > 0}

	var (
		showerMax  *int
		filterMax  *int
		bottledSum float64
		bottledN   int
		overallSum float64
		overallN   int
	)

	for _, fav := range favs {
		summary.TotalContaminants += fav.Product.ContaminantCount

		score := fav.Product.Score
		if score != nil {
			overallSum += float64(*score)
			overallN++
		}

		switch fav.ProductType {
		case enums.ProductTypeShowerFilter:
			showerMax = maxScore(showerMax, score)
		case enums.ProductTypeFilter:
			filterMax = maxScore(filterMax, score)
		case enums.ProductTypeBottledWater, enums.ProductTypeGallon:
			if score != nil {
				bottledSum += float64(*score)
				bottledN++
			}
		}
	}

	summary.ShowersScore = categoryOrFallback(showerMax, tapScore)
	summary.WaterFilterScore = categoryOrFallback(filterMax, tapScore)
	if bottledN > 0 {
		summary.BottledWaterScore = roundScore(bottledSum / float64(bottledN))
	}
	if overallN > 0 {
		summary.OverallScore = roundScore(overallSum / float64(overallN))
	}
	return summary
}

func maxScore(current, candidate *int) *int {
	if candidate == nil {
		return current
	}
	if current == nil || *candidate > *current {
		return candidate
	}
	return current
}

func categoryOrFallback(best, tapScore *int) int {
	if best != nil {
		return *best
	}
	if tapScore != nil {
		return *tapScore
	}
	return 0
}

func roundScore(v float64) int {
	return int(math.Round(v))
}
