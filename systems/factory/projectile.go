package factory

import (
	"fmt"
	"slices"

	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/gamemath"
	"github.com/automoto/doomerang-abilities/physics"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// ProjectileSpec describes a projectile to spawn.
type ProjectileSpec struct {
	Position  math2.Vec2
	Direction math2.Vec2 // unit vector
	Speed     float64
	Damage    float64
	Knockback float64
	// Exclude lists actors the projectile ignores until they separate from it.
	Exclude []donburi.Entity
}

// CreateProjectile spawns a projectile that ignores gravity and flies along
// spec.Direction.
func CreateProjectile(w donburi.World, spec ProjectileSpec) (*donburi.Entry, error) {
	size := components.TuningOf(w).Projectile.Size
	p := archetypes.Projectile.Spawn(w)

	components.Projectile.SetValue(p, components.ProjectileData{
		Damage:    spec.Damage,
		Knockback: spec.Knockback,
		SpawnedAt: components.Now(w),
	})
	components.GravityScale.SetValue(p, components.GravityScaleData{Scale: 0})
	if len(spec.Exclude) > 0 {
		components.Exclusion.SetValue(p, components.ExclusionData{
			Actors: slices.Clone(spec.Exclude),
		})
	} else {
		p.RemoveComponent(components.Exclusion)
	}

	err := components.Adapter(w).AddBody(p.Entity(), physics.BodyDef{
		Kind:     physics.Dynamic,
		Position: spec.Position,
		Velocity: gamemath.Scale(spec.Direction, spec.Speed),
		Width:    size,
		Height:   size,
		Mass:     1,
		Sensor:   true,
	})
	if err != nil {
		w.Remove(p.Entity())
		return nil, fmt.Errorf("add projectile body: %w", err)
	}
	return p, nil
}
