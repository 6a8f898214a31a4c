package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/yohamta/donburi"
)

// setComponent writes value to entry, adding the component first if the
// entry lacks it.
func setComponent[T any](entry *donburi.Entry, c *donburi.ComponentType[T], value T) {
	if !entry.HasComponent(c) {
		entry.AddComponent(c)
	}
	c.SetValue(entry, value)
}

// setGravityScale updates both the actor's gravity fact and its body.
func setGravityScale(w donburi.World, entry *donburi.Entry, scale float64) {
	setComponent(entry, components.GravityScale, components.GravityScaleData{Scale: scale})
	components.Adapter(w).SetGravityScale(entry.Entity(), scale)
}

// actor returns the live entry for e.
func actor(w donburi.World, e donburi.Entity) (*donburi.Entry, bool) {
	if !w.Valid(e) {
		return nil, false
	}
	return w.Entry(e), true
}
