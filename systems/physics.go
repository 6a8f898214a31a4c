package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/yohamta/donburi/ecs"
)

// StepPhysics advances the physics adapter by one fixed step.
func StepPhysics(ecs *ecs.ECS) {
	clock := components.Clock.Get(components.Clock.MustFirst(ecs.World))
	components.Adapter(ecs.World).Step(clock.Delta)
}

// AdvanceClock moves simulation time to the next tick.
func AdvanceClock(ecs *ecs.ECS) {
	clock := components.Clock.Get(components.Clock.MustFirst(ecs.World))
	clock.Tick++
	clock.Now = float64(clock.Tick) * clock.Delta
}
