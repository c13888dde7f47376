// Package catalog provides the static tire and track data consumed by the
// simulation engine. Lookups are lenient: unknown names fall back to a
// documented default instead of failing.
package catalog

import (
	"sort"

	"github.com/samber/lo"

	"github.com/startrack/startrack-sim-go/pkg/model"
)

// DefaultCompound is substituted for unknown compound names.
const DefaultCompound = "medium"

var compounds = map[string]model.TireCompound{
	"soft":         {Name: "soft", Grip: 1.25, WearRate: 0.06, OptimalTemp: 100, CliffLife: 30},
	"medium":       {Name: "medium", Grip: 1.15, WearRate: 0.035, OptimalTemp: 95, CliffLife: 20},
	"hard":         {Name: "hard", Grip: 1.0, WearRate: 0.018, OptimalTemp: 90, CliffLife: 15},
	"intermediate": {Name: "intermediate", Grip: 0.9, WearRate: 0.025, OptimalTemp: 70, CliffLife: 25},
	"wet":          {Name: "wet", Grip: 0.75, WearRate: 0.02, OptimalTemp: 60, CliffLife: 30},
}

// Tire returns the parameters for the given compound name. Unknown names
// return the default compound; this is a documented leniency, not an error.
func Tire(name string) model.TireCompound {
	if c, ok := compounds[name]; ok {
		return c
	}
	return compounds[DefaultCompound]
}

// TireNames returns the known compound names in stable order.
func TireNames() []string {
	names := lo.Keys(compounds)
	sort.Strings(names)
	return names
}

// Tires returns all known compounds in stable order.
func Tires() []model.TireCompound {
	return lo.Map(TireNames(), func(name string, _ int) model.TireCompound {
		return compounds[name]
	})
}
