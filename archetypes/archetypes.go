package archetypes

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		tags.CanDash,
		tags.CanGrapple,
		tags.CanBeHit,
		components.Health,
		components.Defense,
	)
	Enemy = newArchetype(
		tags.Enemy,
		tags.CanBeHit,
		components.Health,
		components.Defense,
	)
	Wall = newArchetype(
		tags.Wall,
	)
	Hook = newArchetype(
		tags.Hook,
		components.Hook,
		components.GravityScale,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Exclusion,
		components.GravityScale,
	)
	Simulation = newArchetype(
		components.Clock,
		components.PhysicsWorld,
		components.Tuning,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType{}, a.components...), cs...)
	return w.Entry(w.Create(all...))
}
