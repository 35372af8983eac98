package domain

// Category is a coarse temperature band.
type Category string

const (
	CategoryHot  Category = "Hot"
	CategoryWarm Category = "Warm"
	CategoryCold Category = "Cold"
)

// Band thresholds in °C. Each band includes its lower bound.
const (
	hotThreshold  = 35.0
	warmThreshold = 25.0
)

// WeatherCategory classifies a temperature in °C:
//   - >= 35 Hot
//   - >= 25 Warm
//   - otherwise Cold
//
// NaN compares false against both thresholds and is classified Cold.
func WeatherCategory(temperature float64) Category {
	switch {
	case temperature >= hotThreshold:
		return CategoryHot
	case temperature >= warmThreshold:
		return CategoryWarm
	default:
		return CategoryCold
	}
}

// Categories tallies records per temperature band. Bands with no records are
// absent from the map.
func (d Dataset) Categories() map[Category]int {
	counts := make(map[Category]int, 3)
	for _, r := range d {
		counts[WeatherCategory(r.Temperature)]++
	}
	return counts
}
