package components

import (
	"github.com/automoto/doomerang-abilities/physics"
	"github.com/yohamta/donburi"
)

// PhysicsWorldData holds the physics adapter every controller talks to.
type PhysicsWorldData struct {
	Adapter physics.Adapter
}

// GravityScaleData multiplies world gravity for one actor. Actors without
// it fall at scale 1.
type GravityScaleData struct {
	Scale float64
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()
var GravityScale = donburi.NewComponentType[GravityScaleData]()

// Adapter returns the physics adapter registered in w.
func Adapter(w donburi.World) physics.Adapter {
	return PhysicsWorld.Get(PhysicsWorld.MustFirst(w)).Adapter
}
