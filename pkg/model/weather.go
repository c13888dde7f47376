package model

// weather-driven derating applied uniformly to cornering grip
var gripModifiers = map[string]float64{
	"dry":  1.0,
	"hot":  0.95,
	"rain": 0.7,
}

// GripModifier returns the grip derating for the given weather.
// Unrecognized values fall back to 1.0 (dry), mirroring the lenient
// compound lookup of the tire catalog.
func GripModifier(weather string) float64 {
	if mod, ok := gripModifiers[weather]; ok {
		return mod
	}
	return 1.0
}
