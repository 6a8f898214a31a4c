package systems

import (
	"log"
	"slices"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/gamemath"
	"github.com/automoto/doomerang-abilities/messages"
	"github.com/automoto/doomerang-abilities/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnFireProjectile spawns a projectile from the spawner's position using the
// named weapon's stats. The spawner is excluded until it separates from the
// projectile.
func OnFireProjectile(w donburi.World, intent messages.FireProjectileIntent) {
	pos, ok := components.Adapter(w).Position(intent.Spawner)
	if !ok {
		log.Printf("[combat] Warning: spawner %v has no body, not firing", intent.Spawner)
		return
	}
	dir, ok := gamemath.Normalize(intent.Direction)
	if !ok {
		log.Printf("[combat] Warning: spawner %v fired with no direction", intent.Spawner)
		return
	}
	weapon, known := components.TuningOf(w).Weapon(intent.Weapon)
	if !known {
		log.Printf("[combat] Warning: unknown weapon %q, using projectile defaults", intent.Weapon)
	}

	spawnProjectile(w, factory.ProjectileSpec{
		Position:  pos,
		Direction: dir,
		Speed:     weapon.Speed,
		Damage:    weapon.Damage,
		Knockback: weapon.Knockback,
		Exclude:   []donburi.Entity{intent.Spawner},
	})
}

func OnSpawnProjectile(w donburi.World, intent messages.SpawnProjectileIntent) {
	spawnProjectile(w, factory.ProjectileSpec{
		Position:  intent.Position,
		Direction: intent.Direction,
		Speed:     intent.Speed,
		Damage:    intent.Damage,
		Knockback: intent.Knockback,
		Exclude:   intent.Exclude,
	})
}

func spawnProjectile(w donburi.World, spec factory.ProjectileSpec) {
	if _, err := factory.CreateProjectile(w, spec); err != nil {
		log.Printf("[combat] Warning: Could not spawn projectile: %v", err)
	}
}

// UpdateExclusionDecay drops excluded actors that no longer touch their
// projectile. Once nobody is excluded the record goes away.
func UpdateExclusionDecay(ecs *ecs.ECS) {
	adapter := components.Adapter(ecs.World)
	var emptied []*donburi.Entry

	components.Exclusion.Each(ecs.World, func(e *donburi.Entry) {
		exclusion := components.Exclusion.Get(e)
		touching := adapter.Touching(e.Entity())
		exclusion.Retain(func(a donburi.Entity) bool {
			return slices.Contains(touching, a)
		})
		if len(exclusion.Actors) == 0 {
			emptied = append(emptied, e)
		}
	})

	for _, e := range emptied {
		e.RemoveComponent(components.Exclusion)
	}
}

// UpdateProjectileLifetime despawns projectiles that flew too long without
// hitting anything.
func UpdateProjectileLifetime(ecs *ecs.ECS) {
	now := components.Now(ecs.World)
	lifetime := components.TuningOf(ecs.World).Projectile.Lifetime
	var expired []donburi.Entity

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if !p.Terminal && now-p.SpawnedAt >= lifetime {
			expired = append(expired, e.Entity())
		}
	})

	for _, e := range expired {
		factory.Despawn(ecs.World, e)
	}
}
