package scores

import (
	"testing"

	"github.com/clearwell/clearwell-backend/internal/catalog"
	"github.com/clearwell/clearwell-backend/internal/favorites"
	"github.com/clearwell/clearwell-backend/pkg/enums"
	"github.com/google/uuid"
)

func intPtr(v int) *int { return &v }

func fav(productType enums.ProductType, score *int, contaminants int) favorites.ResolvedFavorite {
	return favorites.ResolvedFavorite{
		FavoriteID:  uuid.New(),
		ProductType: productType,
		Product: catalog.ProductSummary{
			ID:               uuid.New(),
			Type:             productType,
			Name:             "fixture",
			Score:            score,
			ContaminantCount: contaminants,
		},
	}
}

func TestAggregateMixedFavorites(t *testing.T) {
	favs := []favorites.ResolvedFavorite{
		fav(enums.ProductTypeShowerFilter, intPtr(60), 1),
		fav(enums.ProductTypeShowerFilter, intPtr(90), 2),
		fav(enums.ProductTypeFilter, intPtr(80), 3),
		fav(enums.ProductTypeBottledWater, intPtr(70), 4),
		fav(enums.ProductTypeGallon, intPtr(50), 5),
	}

	summary := Aggregate(favs, intPtr(40))

	if !summary.HasFavorites {
		t.Fatal("expected HasFavorites")
	}
	if summary.ShowersScore != 90 {
		t.Fatalf("expected showers max 90, got %d", summary.ShowersScore)
	}
	if summary.WaterFilterScore != 80 {
		t.Fatalf("expected filter max 80, got %d", summary.WaterFilterScore)
	}
	if summary.BottledWaterScore != 60 {
		t.Fatalf("expected bottled mean (70+50)/2=60, got %d", summary.BottledWaterScore)
	}
	if summary.OverallScore != 70 {
		t.Fatalf("expected overall mean (60+90+80+70+50)/5=70, got %d", summary.OverallScore)
	}
	if summary.TotalContaminants != 15 {
		t.Fatalf("expected raw contaminant sum 15, got %d", summary.TotalContaminants)
	}
}

func TestAggregateTapFallbackForEmptyCategories(t *testing.T) {
	favs := []favorites.ResolvedFavorite{
		fav(enums.ProductTypeBottledWater, intPtr(85), 2),
	}

	summary := Aggregate(favs, intPtr(42))

	if summary.ShowersScore != 42 {
		t.Fatalf("expected tap fallback 42 for showers, got %d", summary.ShowersScore)
	}
	if summary.WaterFilterScore != 42 {
		t.Fatalf("expected tap fallback 42 for filter, got %d", summary.WaterFilterScore)
	}
	if summary.BottledWaterScore != 85 {
		t.Fatalf("expected bottled 85, got %d", summary.BottledWaterScore)
	}
}

func TestAggregateNoFavoritesNoTap(t *testing.T) {
	summary := Aggregate(nil, nil)

	if summary.HasFavorites {
		t.Fatal("expected HasFavorites=false")
	}
	if summary.ShowersScore != 0 || summary.WaterFilterScore != 0 || summary.BottledWaterScore != 0 || summary.OverallScore != 0 {
		t.Fatalf("expected zeroed summary, got %+v", summary)
	}
	if summary.TotalContaminants != 0 {
		t.Fatalf("expected no contaminants, got %d", summary.TotalContaminants)
	}
}

func TestAggregateNilScoresDoNotDragAverages(t *testing.T) {
	favs := []favorites.ResolvedFavorite{
		fav(enums.ProductTypeBottledWater, intPtr(90), 1),
		fav(enums.ProductTypeBottledWater, nil, 7),
	}

	summary := Aggregate(favs, nil)

	if summary.BottledWaterScore != 90 {
		t.Fatalf("expected unscored bottle ignored, got %d", summary.BottledWaterScore)
	}
	if summary.OverallScore != 90 {
		t.Fatalf("expected overall 90, got %d", summary.OverallScore)
	}
	if summary.TotalContaminants != 8 {
		t.Fatalf("expected contaminants still counted, got %d", summary.TotalContaminants)
	}
}

func TestAggregateUnrecognizedTypeCountsTowardOverallOnly(t *testing.T) {
	favs := []favorites.ResolvedFavorite{
		fav(enums.ProductTypeFilter, intPtr(80), 1),
		fav(enums.ProductType("mystery"), intPtr(20), 9),
	}

	summary := Aggregate(favs, nil)

	if summary.WaterFilterScore != 80 {
		t.Fatalf("expected filter 80, got %d", summary.WaterFilterScore)
	}
	if summary.OverallScore != 50 {
		t.Fatalf("expected overall (80+20)/2=50, got %d", summary.OverallScore)
	}
	if summary.TotalContaminants != 10 {
		t.Fatalf("expected contaminants 10, got %d", summary.TotalContaminants)
	}
}

func TestAggregateRoundsOnceAtEnd(t *testing.T) {
	favs := []favorites.ResolvedFavorite{
		fav(enums.ProductTypeBottledWater, intPtr(70), 0),
		fav(enums.ProductTypeBottledWater, intPtr(71), 0),
		fav(enums.ProductTypeBottledWater, intPtr(72), 0),
	}

	summary := Aggregate(favs, nil)

	// (70+71+72)/3 = 71 exactly; (70+71)/2 = 70.5 rounds to 71
	if summary.BottledWaterScore != 71 {
		t.Fatalf("expected 71, got %d", summary.BottledWaterScore)
	}

	half := Aggregate(favs[:2], nil)
	if half.BottledWaterScore != 71 {
		t.Fatalf("expected 70.5 to round to 71, got %d", half.BottledWaterScore)
	}
}

func TestAggregateScoresStayInBounds(t *testing.T) {
	favs := []favorites.ResolvedFavorite{
		fav(enums.ProductTypeShowerFilter, intPtr(100), 0),
		fav(enums.ProductTypeFilter, intPtr(0), 0),
		fav(enums.ProductTypeBottledWater, intPtr(100), 0),
		fav(enums.ProductTypeGallon, intPtr(0), 0),
	}

	summary := Aggregate(favs, intPtr(100))

	for name, score := range map[string]int{
		"showers": summary.ShowersScore,
		"filter":  summary.WaterFilterScore,
		"bottled": summary.BottledWaterScore,
		"overall": summary.OverallScore,
	} {
		if score < 0 || score > 100 {
			t.Fatalf("%s score out of bounds: %d", name, score)
		}
	}
}
