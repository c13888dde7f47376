//nolint:funlen // ok for tests
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTire_KnownCompound(t *testing.T) {
	soft := Tire("soft")
	assert.Equal(t, "soft", soft.Name)
	assert.Equal(t, 1.25, soft.Grip)
	assert.Equal(t, 0.06, soft.WearRate)
	assert.Equal(t, 100.0, soft.OptimalTemp)
}

func TestTire_UnknownFallsBackToDefault(t *testing.T) {
	got := Tire("super-ultra-soft")
	assert.Equal(t, DefaultCompound, got.Name)
	assert.Equal(t, Tire("medium"), got)
}

func TestTireNames_StableOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"hard", "intermediate", "medium", "soft", "wet"},
		TireNames())
}

func TestTires_MatchesNames(t *testing.T) {
	tires := Tires()
	names := TireNames()
	assert.Len(t, tires, len(names))
	for i, tire := range tires {
		assert.Equal(t, names[i], tire.Name)
	}
}
