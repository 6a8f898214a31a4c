package components

import (
	"slices"

	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Damage    float64
	Knockback float64
	SpawnedAt float64
	// Terminal is set by the first confirmed hit. A terminal projectile never
	// hits again.
	Terminal bool
}

// ExclusionData lists actors a projectile ignores until they stop touching
// it. The component is removed once the list is empty.
type ExclusionData struct {
	Actors []donburi.Entity
}

// Contains reports whether e is excluded.
func (x *ExclusionData) Contains(e donburi.Entity) bool {
	return slices.Contains(x.Actors, e)
}

// Retain drops every excluded actor for which keep returns false.
func (x *ExclusionData) Retain(keep func(donburi.Entity) bool) {
	x.Actors = slices.DeleteFunc(x.Actors, func(e donburi.Entity) bool {
		return !keep(e)
	})
}

var Projectile = donburi.NewComponentType[ProjectileData]()
var Exclusion = donburi.NewComponentType[ExclusionData]()
