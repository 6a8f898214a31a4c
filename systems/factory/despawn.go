package factory

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/yohamta/donburi"
)

// Despawn removes an actor's body and entity. Calling it for an actor that is
// already gone does nothing.
func Despawn(w donburi.World, e donburi.Entity) {
	components.Adapter(w).Remove(e)
	if w.Valid(e) {
		w.Remove(e)
	}
}
