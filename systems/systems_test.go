package systems

import (
	"testing"

	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/gamemath"
	"github.com/automoto/doomerang-abilities/physics/physicstest"
	"github.com/automoto/doomerang-abilities/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const dt = 1.0 / 60

type testWorld struct {
	w    donburi.World
	ecs  *ecs.ECS
	fake *physicstest.Fake
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	return newTestWorldWith(t, config.Default())
}

func newTestWorldWith(t *testing.T, tuning config.Tuning) *testWorld {
	t.Helper()
	require.NoError(t, tuning.Validate())

	w := donburi.NewWorld()
	fake := physicstest.New()
	sim := archetypes.Simulation.Spawn(w)
	components.Clock.SetValue(sim, components.ClockData{Delta: dt})
	components.PhysicsWorld.SetValue(sim, components.PhysicsWorldData{Adapter: fake})
	components.Tuning.SetValue(sim, components.TuningData{Tuning: tuning})
	Subscribe(w)

	return &testWorld{w: w, ecs: ecs.NewECS(w), fake: fake}
}

func (tw *testWorld) setNow(now float64) {
	components.Clock.Get(components.Clock.MustFirst(tw.w)).Now = now
}

func (tw *testWorld) player(t *testing.T, x, y float64) donburi.Entity {
	t.Helper()
	e, err := factory.CreatePlayer(tw.w, gamemath.Vec(x, y))
	require.NoError(t, err)
	return e.Entity()
}

func (tw *testWorld) enemy(t *testing.T, x, y float64) donburi.Entity {
	t.Helper()
	e, err := factory.CreateEnemy(tw.w, gamemath.Vec(x, y))
	require.NoError(t, err)
	return e.Entity()
}

func (tw *testWorld) wall(t *testing.T, x, y float64) donburi.Entity {
	t.Helper()
	e, err := factory.CreateWall(tw.w, gamemath.Vec(x, y), 50, 50)
	require.NoError(t, err)
	return e.Entity()
}

func (tw *testWorld) entry(e donburi.Entity) *donburi.Entry {
	return tw.w.Entry(e)
}

func countOf(tw *testWorld, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(tw.w)
}
