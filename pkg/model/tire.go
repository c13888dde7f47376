package model

// TireCompound holds the grip, wear and thermal parameters of a compound.
//
//nolint:tagliatelle // wire format of the original API
type TireCompound struct {
	Name        string  `json:"name"`
	Grip        float64 `json:"grip"`         // base friction coefficient
	WearRate    float64 `json:"wear_rate"`    // life pct lost per km
	OptimalTemp float64 `json:"optimal_temp"` // °C
	// CliffLife is carried in the catalog data but not consulted by the
	// wear/grip formulas. Kept for compatibility with the published data.
	CliffLife float64 `json:"cliff_life"`
}
