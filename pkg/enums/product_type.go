package enums

import "fmt"

// ProductType discriminates the catalog table a product row lives in.
type ProductType string

const (
	ProductTypeBottledWater ProductType = "bottled_water"
	ProductTypeGallon       ProductType = "gallon"
	ProductTypeFilter       ProductType = "filter"
	ProductTypeShowerFilter ProductType = "shower_filter"
	ProductTypeTapWater     ProductType = "tap_water"
)

var validProductTypes = []ProductType{
	ProductTypeBottledWater,
	ProductTypeGallon,
	ProductTypeFilter,
	ProductTypeShowerFilter,
	ProductTypeTapWater,
}

// String implements fmt.Stringer.
func (p ProductType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductType.
func (p ProductType) IsValid() bool {
	for _, candidate := range validProductTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// IsWater reports whether the type is backed by the bottled water catalog.
func (p ProductType) IsWater() bool {
	return p == ProductTypeBottledWater || p == ProductTypeGallon
}

// IsFilter reports whether the type is backed by the water filter catalog.
func (p ProductType) IsFilter() bool {
	return p == ProductTypeFilter || p == ProductTypeShowerFilter
}

// ParseProductType converts raw input into a ProductType.
func ParseProductType(value string) (ProductType, error) {
	for _, candidate := range validProductTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product type %q", value)
}
