package systems

import (
	"testing"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/gamemath"
	"github.com/automoto/doomerang-abilities/messages"
	"github.com/automoto/doomerang-abilities/systems/factory"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func (tw *testWorld) projectile(t *testing.T, damage float64, exclude ...donburi.Entity) donburi.Entity {
	t.Helper()
	p, err := factory.CreateProjectile(tw.w, factory.ProjectileSpec{
		Position:  gamemath.Vec(0, 0),
		Direction: gamemath.Vec(1, 0),
		Speed:     1000,
		Damage:    damage,
		Knockback: 100000,
		Exclude:   exclude,
	})
	require.NoError(t, err)
	return p.Entity()
}

// touchTick delivers queued touches and the hits they raise.
func touchTick(tw *testWorld) {
	DrainTouches(tw.ecs)
	ProcessNotifications(tw.ecs)
}

func countHits(tw *testWorld) *[]messages.ProjectileHitEvent {
	hits := new([]messages.ProjectileHitEvent)
	messages.ProjectileHit.Subscribe(tw.w, func(_ donburi.World, hit messages.ProjectileHitEvent) {
		*hits = append(*hits, hit)
	})
	return hits
}

func health(tw *testWorld, e donburi.Entity) float64 {
	return components.Health.Get(tw.entry(e)).Current
}

func TestProjectileHitAppliesDamageAndKnockback(t *testing.T) {
	tw := newTestWorld(t)
	hits := countHits(tw)
	enemy := tw.enemy(t, 20, 0)
	p := tw.projectile(t, 20)

	tw.fake.Touch(p, enemy)
	touchTick(tw)

	require.Len(t, *hits, 1)
	assert.Equal(t, enemy, (*hits)[0].Target)
	assert.Equal(t, 20.0, (*hits)[0].Damage)

	impulses := tw.fake.ImpulsesOn(enemy)
	require.Len(t, impulses, 1)
	assert.InDelta(t, 100000, impulses[0].X, 1e-6)
	assert.InDelta(t, 0, impulses[0].Y, 1e-6)

	assert.Equal(t, config.Default().Enemy.Health-20, health(tw, enemy))
	assert.False(t, tw.w.Valid(p))
	assert.False(t, tw.fake.Has(p))
}

func TestProjectileHitsAtMostOnce(t *testing.T) {
	tw := newTestWorld(t)
	hits := countHits(tw)
	first := tw.enemy(t, 20, 0)
	second := tw.enemy(t, 20, 10)
	third := tw.player(t, 20, -10)
	p := tw.projectile(t, 20)

	tw.fake.Touch(p, first)
	tw.fake.Touch(p, second)
	tw.fake.Touch(p, third)
	touchTick(tw)
	touchTick(tw)

	require.Len(t, *hits, 1)
	assert.Equal(t, first, (*hits)[0].Target)
	assert.Equal(t, config.Default().Enemy.Health, health(tw, second))
	assert.Equal(t, config.Default().Player.Health, health(tw, third))
}

func TestProjectileIgnoresActorsThatCannotBeHit(t *testing.T) {
	tw := newTestWorld(t)
	hits := countHits(tw)
	player := tw.player(t, 0, 0)
	other := tw.projectile(t, 5)
	p := tw.projectile(t, 5)

	tw.fake.Touch(p, other)
	touchTick(tw)
	assert.Empty(t, *hits)

	// A grapple hook is no target either.
	startGrapple(t, tw, player, gamemath.Vec(0, 0))
	hook := components.Grapple.Get(tw.entry(player)).Hook
	tw.fake.Touch(p, hook)
	touchTick(tw)
	assert.Empty(t, *hits)
	assert.True(t, tw.w.Valid(p))
}

func TestExcludedSpawnerIsNotHitUntilSeparated(t *testing.T) {
	tw := newTestWorld(t)
	hits := countHits(tw)
	shooter := tw.player(t, 0, 0)
	p := tw.projectile(t, 10, shooter)

	tw.fake.Touch(p, shooter)
	touchTick(tw)
	UpdateExclusionDecay(tw.ecs)
	assert.Empty(t, *hits)
	require.True(t, tw.entry(p).HasComponent(components.Exclusion))

	// Separation consumes the exclusion; the next touch is a hit.
	tw.fake.Separate(p, shooter)
	touchTick(tw)
	assert.False(t, tw.entry(p).HasComponent(components.Exclusion))

	tw.fake.Touch(p, shooter)
	touchTick(tw)
	require.Len(t, *hits, 1)
	assert.Equal(t, shooter, (*hits)[0].Target)
}

func TestExclusionDecaysWithoutContact(t *testing.T) {
	tw := newTestWorld(t)
	shooter := tw.player(t, 0, 0)
	enemy := tw.enemy(t, 50, 0)
	p := tw.projectile(t, 10, shooter, enemy)

	tw.fake.Touch(p, enemy)
	UpdateExclusionDecay(tw.ecs)

	exclusion := components.Exclusion.Get(tw.entry(p))
	assert.Equal(t, []donburi.Entity{enemy}, exclusion.Actors)

	tw.fake.Separate(p, enemy)
	UpdateExclusionDecay(tw.ecs)
	assert.False(t, tw.entry(p).HasComponent(components.Exclusion))
}

func TestProjectileWithoutExclusions(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.projectile(t, 10)
	assert.False(t, tw.entry(p).HasComponent(components.Exclusion))
	assert.True(t, tw.entry(p).HasComponent(tags.Projectile))
}

func TestHealthNeverDropsBelowZero(t *testing.T) {
	tw := newTestWorld(t)
	enemy := tw.enemy(t, 20, 0)

	for i := 0; i < 5; i++ {
		p := tw.projectile(t, 25)
		tw.fake.Touch(p, enemy)
		touchTick(tw)
		assert.GreaterOrEqual(t, health(tw, enemy), 0.0)
	}
	assert.Equal(t, 0.0, health(tw, enemy))
}

func TestHitOnTargetWithoutHealthStillDespawns(t *testing.T) {
	tw := newTestWorld(t)
	target := tw.enemy(t, 20, 0)
	tw.entry(target).RemoveComponent(components.Health)
	p := tw.projectile(t, 25)

	tw.fake.Touch(p, target)
	touchTick(tw)

	assert.Len(t, tw.fake.ImpulsesOn(target), 1)
	assert.False(t, tw.w.Valid(p))
}

func TestHitDespawnIsIdempotent(t *testing.T) {
	tw := newTestWorld(t)
	enemy := tw.enemy(t, 20, 0)
	p := tw.projectile(t, 25)

	tw.fake.Touch(p, enemy)
	DrainTouches(tw.ecs)
	// Gone before the hit is delivered.
	factory.Despawn(tw.w, p)
	ProcessNotifications(tw.ecs)

	assert.Equal(t, config.Default().Enemy.Health-25, health(tw, enemy))
}

func TestWallStopsProjectile(t *testing.T) {
	tw := newTestWorld(t)
	hits := countHits(tw)
	wall := tw.wall(t, 30, 0)
	enemy := tw.enemy(t, 30, 0)
	p := tw.projectile(t, 25)

	tw.fake.Touch(p, wall)
	tw.fake.Touch(p, enemy)
	touchTick(tw)

	assert.False(t, tw.w.Valid(p))
	assert.Empty(t, *hits)
	assert.Equal(t, config.Default().Enemy.Health, health(tw, enemy))
}

func TestProjectileLifetime(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.projectile(t, 25)
	lifetime := config.Default().Projectile.Lifetime

	tw.setNow(lifetime - dt)
	UpdateProjectileLifetime(tw.ecs)
	require.True(t, tw.w.Valid(p))

	tw.setNow(lifetime)
	UpdateProjectileLifetime(tw.ecs)
	assert.False(t, tw.w.Valid(p))
	assert.False(t, tw.fake.Has(p))
}

func TestFireProjectileUsesWeaponStats(t *testing.T) {
	tw := newTestWorld(t)
	shooter := tw.player(t, 100, 100)

	messages.FireProjectile.Publish(tw.w, messages.FireProjectileIntent{
		Spawner:   shooter,
		Direction: gamemath.Vec(0, 2),
		Weapon:    config.PlayerBlaster,
	})
	ProcessIntents(tw.ecs)

	var fired []*donburi.Entry
	components.Projectile.Each(tw.w, func(e *donburi.Entry) { fired = append(fired, e) })
	require.Len(t, fired, 1)

	data := components.Projectile.Get(fired[0])
	assert.Equal(t, 20.0, data.Damage)
	assert.Equal(t, config.Default().Projectile.Knockback, data.Knockback)
	assert.Equal(t, []donburi.Entity{shooter}, components.Exclusion.Get(fired[0]).Actors)

	pos, _ := tw.fake.Position(fired[0].Entity())
	assert.Equal(t, gamemath.Vec(100, 100), pos)
	v, _ := tw.fake.Velocity(fired[0].Entity())
	assert.InDelta(t, config.Default().Projectile.Speed, v.Y, 1e-9)
	assert.Equal(t, 0.0, tw.fake.GravityScale(fired[0].Entity()))
}

func TestFireProjectileFromMissingSpawner(t *testing.T) {
	tw := newTestWorld(t)
	shooter := tw.player(t, 0, 0)
	factory.Despawn(tw.w, shooter)

	messages.FireProjectile.Publish(tw.w, messages.FireProjectileIntent{
		Spawner:   shooter,
		Direction: gamemath.Vec(1, 0),
		Weapon:    config.PlayerBlaster,
	})
	ProcessIntents(tw.ecs)

	assert.Zero(t, countOf(tw, tags.Projectile))
}
