package core

import (
	"errors"

	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/messages"
	"github.com/automoto/doomerang-abilities/physics"
	"github.com/automoto/doomerang-abilities/systems"
	"github.com/automoto/doomerang-abilities/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

var ErrNoAdapter = errors.New("core: physics adapter is required")

// Simulation advances the dash, grapple and projectile controllers in fixed
// steps over a physics adapter. It is not safe for concurrent use; wrap it in
// a Loop to drive it from another goroutine.
type Simulation struct {
	world   donburi.World
	ecs     *ecs.ECS
	adapter physics.Adapter
	tuning  config.Tuning
}

// NewSimulation builds a simulation with a private copy of tuning.
func NewSimulation(tuning config.Tuning, adapter physics.Adapter) (*Simulation, error) {
	if adapter == nil {
		return nil, ErrNoAdapter
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	tuning = tuning.Clone()

	world := donburi.NewWorld()
	sim := archetypes.Simulation.Spawn(world)
	components.Clock.SetValue(sim, components.ClockData{Delta: tuning.Delta()})
	components.PhysicsWorld.SetValue(sim, components.PhysicsWorldData{Adapter: adapter})
	components.Tuning.SetValue(sim, components.TuningData{Tuning: tuning})

	systems.Subscribe(world)

	s := &Simulation{
		world:   world,
		ecs:     ecs.NewECS(world),
		adapter: adapter,
		tuning:  tuning,
	}
	s.configure()
	return s, nil
}

// configure registers the per-tick pipeline. Touch transitions from the last
// step are handled before the continuous controllers; intents run last so
// their effects meet the physics step first.
func (s *Simulation) configure() {
	// Touch transitions from the previous step
	s.ecs.AddSystem(systems.DrainTouches)
	s.ecs.AddSystem(systems.UpdateDashCollisions)
	s.ecs.AddSystem(systems.UpdateHookAttachment)
	s.ecs.AddSystem(systems.ProcessNotifications)

	// Continuous forces and bookkeeping
	s.ecs.AddSystem(systems.UpdateSwing)
	s.ecs.AddSystem(systems.UpdateDashTimeouts)
	s.ecs.AddSystem(systems.UpdateExclusionDecay)
	s.ecs.AddSystem(systems.UpdateHookFollow)
	s.ecs.AddSystem(systems.UpdateProjectileLifetime)

	s.ecs.AddSystem(systems.ProcessIntents)
	s.ecs.AddSystem(systems.StepPhysics)
	s.ecs.AddSystem(systems.AdvanceClock)
}

// Update runs one tick.
func (s *Simulation) Update() {
	s.ecs.Update()
}

// Run runs n ticks.
func (s *Simulation) Run(n int) {
	for i := 0; i < n; i++ {
		s.Update()
	}
}

// RunUntil runs ticks until simulation time reaches t.
func (s *Simulation) RunUntil(t float64) {
	for s.Now() < t {
		s.Update()
	}
}

func (s *Simulation) World() donburi.World     { return s.world }
func (s *Simulation) Adapter() physics.Adapter { return s.adapter }
func (s *Simulation) Tuning() config.Tuning    { return s.tuning }

func (s *Simulation) clock() *components.ClockData {
	return components.Clock.Get(components.Clock.MustFirst(s.world))
}

// Now returns the simulation time in seconds.
func (s *Simulation) Now() float64 { return s.clock().Now }

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() int64 { return s.clock().Tick }

// Spawning. Actors spawned here exist immediately.

func (s *Simulation) SpawnPlayer(pos math2.Vec2) (donburi.Entity, error) {
	e, err := factory.CreatePlayer(s.world, pos)
	if err != nil {
		return 0, err
	}
	return e.Entity(), nil
}

func (s *Simulation) SpawnEnemy(pos math2.Vec2) (donburi.Entity, error) {
	e, err := factory.CreateEnemy(s.world, pos)
	if err != nil {
		return 0, err
	}
	return e.Entity(), nil
}

func (s *Simulation) SpawnWall(pos math2.Vec2, width, height float64) (donburi.Entity, error) {
	e, err := factory.CreateWall(s.world, pos, width, height)
	if err != nil {
		return 0, err
	}
	return e.Entity(), nil
}

// Despawn removes an actor. It is safe to call for actors already gone.
func (s *Simulation) Despawn(e donburi.Entity) {
	factory.Despawn(s.world, e)
}

// Notifications. Handlers run during the tick, after the controllers have
// applied the notification's effects.

func (s *Simulation) OnGrappleAttached(fn func(messages.GrappleAttachedEvent)) {
	messages.GrappleAttached.Subscribe(s.world, func(_ donburi.World, evt messages.GrappleAttachedEvent) {
		fn(evt)
	})
}

func (s *Simulation) OnProjectileHit(fn func(messages.ProjectileHitEvent)) {
	messages.ProjectileHit.Subscribe(s.world, func(_ donburi.World, evt messages.ProjectileHitEvent) {
		fn(evt)
	})
}
