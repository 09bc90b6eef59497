package enums

import "fmt"

// ProductUnit names the magnitude a catalog product is measured in.
type ProductUnit string

const (
	ProductUnitQuantity ProductUnit = "quantity"
	ProductUnitVolume   ProductUnit = "volume"
	ProductUnitWeight   ProductUnit = "weight"
)

var validProductUnits = []ProductUnit{
	ProductUnitQuantity,
	ProductUnitVolume,
	ProductUnitWeight,
}

// String implements fmt.Stringer.
func (u ProductUnit) String() string {
	return string(u)
}

// IsValid reports whether the value matches a known ProductUnit.
func (u ProductUnit) IsValid() bool {
	for _, candidate := range validProductUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseProductUnit converts raw input into a ProductUnit.
func ParseProductUnit(value string) (ProductUnit, error) {
	for _, candidate := range validProductUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product unit %q", value)
}
