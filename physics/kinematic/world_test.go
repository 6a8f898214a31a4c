package kinematic

import (
	"testing"

	"github.com/automoto/doomerang-abilities/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

const dt = 1.0 / 60

var (
	bodyA = donburi.Entity(1)
	bodyB = donburi.Entity(2)
	floor = donburi.Entity(3)
)

func newWorld(gravity float64, sleepAfter int) *World {
	return New(Options{
		Width:      1024,
		Height:     1024,
		CellSize:   16,
		Gravity:    math2.Vec2{Y: gravity},
		SleepAfter: sleepAfter,
	})
}

func box(x, y, size float64) physics.BodyDef {
	return physics.BodyDef{
		Kind:         physics.Dynamic,
		Position:     math2.Vec2{X: x, Y: y},
		Width:        size,
		Height:       size,
		Mass:         2,
		GravityScale: 1,
	}
}

func ground(x, y, w, h float64) physics.BodyDef {
	return physics.BodyDef{
		Kind:     physics.Static,
		Position: math2.Vec2{X: x, Y: y},
		Width:    w,
		Height:   h,
	}
}

func TestAddBodyRejectsDuplicatesAndInvalid(t *testing.T) {
	w := newWorld(0, 0)
	require.NoError(t, w.AddBody(bodyA, box(50, 50, 10)))
	assert.ErrorIs(t, w.AddBody(bodyA, box(50, 50, 10)), physics.ErrDuplicateBody)

	bad := box(0, 0, 10)
	bad.Mass = 0
	assert.ErrorIs(t, w.AddBody(bodyB, bad), physics.ErrInvalidBody)
	assert.False(t, w.Has(bodyB))
}

func TestUnknownBodyReportsFalse(t *testing.T) {
	w := newWorld(0, 0)
	_, ok := w.Position(bodyA)
	assert.False(t, ok)
	assert.False(t, w.ApplyImpulse(bodyA, math2.Vec2{X: 1}))
	assert.False(t, w.SetVelocity(bodyA, math2.Vec2{X: 1}))
	assert.Empty(t, w.Touching(bodyA))
	w.Remove(bodyA)
}

func TestImpulseChangesVelocityByMass(t *testing.T) {
	w := newWorld(0, 0)
	require.NoError(t, w.AddBody(bodyA, box(50, 50, 10)))

	assert.True(t, w.ApplyImpulse(bodyA, math2.Vec2{X: 10, Y: -4}))
	v, _ := w.Velocity(bodyA)
	assert.Equal(t, math2.Vec2{X: 5, Y: -2}, v)

	w.Step(0.5)
	p, _ := w.Position(bodyA)
	assert.InDelta(t, 52.5, p.X, 1e-9)
	assert.InDelta(t, 49, p.Y, 1e-9)
}

func TestStaticBodiesIgnoreVelocityWrites(t *testing.T) {
	w := newWorld(0, 0)
	require.NoError(t, w.AddBody(floor, ground(50, 100, 100, 10)))
	assert.False(t, w.SetVelocity(floor, math2.Vec2{X: 3}))
	assert.False(t, w.ApplyImpulse(floor, math2.Vec2{X: 3}))
}

func TestBodyLandsOnFloorAndTouches(t *testing.T) {
	w := newWorld(1000, 0)
	require.NoError(t, w.AddBody(bodyA, box(50, 50, 10)))
	require.NoError(t, w.AddBody(floor, ground(50, 105, 100, 10)))

	var started []physics.TouchEvent
	for i := 0; i < 120; i++ {
		w.Step(dt)
		for _, e := range w.DrainTouchEvents() {
			if e.Kind == physics.TouchStarted {
				started = append(started, e)
			}
		}
	}

	p, _ := w.Position(bodyA)
	assert.InDelta(t, 95, p.Y, 1e-6)
	v, _ := w.Velocity(bodyA)
	assert.Zero(t, v.Y)

	require.Len(t, started, 1)
	assert.Equal(t, physics.TouchEvent{Kind: physics.TouchStarted, A: bodyA, B: floor}, started[0])
	assert.Equal(t, []donburi.Entity{floor}, w.Touching(bodyA))
	assert.Equal(t, []donburi.Entity{bodyA}, w.Touching(floor))
}

func TestWallStopsHorizontalMovement(t *testing.T) {
	w := newWorld(0, 0)
	require.NoError(t, w.AddBody(bodyA, box(50, 50, 10)))
	require.NoError(t, w.AddBody(floor, ground(80, 50, 10, 100)))
	w.SetVelocity(bodyA, math2.Vec2{X: 600})

	for i := 0; i < 10; i++ {
		w.Step(dt)
	}

	p, _ := w.Position(bodyA)
	assert.InDelta(t, 70, p.X, 1e-6)
	v, _ := w.Velocity(bodyA)
	assert.Zero(t, v.X)
}

func TestSensorPassesThroughSolids(t *testing.T) {
	w := newWorld(0, 0)
	s := box(50, 50, 10)
	s.Sensor = true
	require.NoError(t, w.AddBody(bodyA, s))
	require.NoError(t, w.AddBody(floor, ground(80, 50, 10, 100)))
	w.SetVelocity(bodyA, math2.Vec2{X: 600})

	for i := 0; i < 10; i++ {
		w.Step(dt)
	}

	p, _ := w.Position(bodyA)
	assert.InDelta(t, 150, p.X, 1e-6)

	evts := w.DrainTouchEvents()
	require.Len(t, evts, 2)
	assert.Equal(t, physics.TouchStarted, evts[0].Kind)
	assert.Equal(t, physics.TouchEnded, evts[1].Kind)
}

func TestOverlappingBodiesTouchOnFirstStep(t *testing.T) {
	w := newWorld(0, 0)
	require.NoError(t, w.AddBody(bodyB, box(50, 50, 10)))
	require.NoError(t, w.AddBody(bodyA, box(55, 50, 10)))

	assert.Empty(t, w.Touching(bodyA))
	w.Step(dt)
	assert.Equal(t, []physics.TouchEvent{{Kind: physics.TouchStarted, A: bodyA, B: bodyB}}, w.DrainTouchEvents())
	assert.Equal(t, []donburi.Entity{bodyA}, w.Touching(bodyB))
}

func TestRemoveEndsTouches(t *testing.T) {
	w := newWorld(0, 0)
	require.NoError(t, w.AddBody(bodyA, box(50, 50, 10)))
	require.NoError(t, w.AddBody(bodyB, box(55, 50, 10)))
	w.Step(dt)
	w.DrainTouchEvents()

	w.Remove(bodyB)
	w.Remove(bodyB)

	assert.Equal(t, []physics.TouchEvent{{Kind: physics.TouchEnded, A: bodyA, B: bodyB}}, w.DrainTouchEvents())
	assert.Empty(t, w.Touching(bodyA))
	assert.False(t, w.Has(bodyB))
}

func TestGravityScale(t *testing.T) {
	w := newWorld(1000, 0)
	require.NoError(t, w.AddBody(bodyA, box(50, 50, 10)))
	w.SetGravityScale(bodyA, 0)

	w.Step(dt)
	v, _ := w.Velocity(bodyA)
	assert.Zero(t, v.Y)

	w.SetGravityScale(bodyA, 1)
	w.Step(dt)
	v, _ = w.Velocity(bodyA)
	assert.InDelta(t, 1000*dt, v.Y, 1e-9)
}

func TestRestingBodySleepsAndImpulseWakesIt(t *testing.T) {
	w := newWorld(1000, 5)
	require.NoError(t, w.AddBody(bodyA, box(50, 95, 10)))
	require.NoError(t, w.AddBody(floor, ground(50, 105, 100, 10)))

	for i := 0; i < 10; i++ {
		w.Step(dt)
	}
	require.True(t, w.Sleeping(bodyA))

	w.ApplyImpulse(bodyA, math2.Vec2{X: 20})
	assert.False(t, w.Sleeping(bodyA))
	w.Step(dt)
	p, _ := w.Position(bodyA)
	assert.Greater(t, p.X, 50.0)
}

func TestEdgeContactOnCellBoundaryTouches(t *testing.T) {
	w := newWorld(0, 0)
	// The shared edge at y=96 is exactly a cell boundary.
	require.NoError(t, w.AddBody(bodyA, box(50, 91, 10)))
	require.NoError(t, w.AddBody(floor, ground(50, 101, 100, 10)))

	w.Step(dt)

	assert.Equal(t, []physics.TouchEvent{{Kind: physics.TouchStarted, A: bodyA, B: floor}}, w.DrainTouchEvents())
	assert.Equal(t, []donburi.Entity{floor}, w.Touching(bodyA))
}

func TestSeparatedBodiesDoNotTouch(t *testing.T) {
	w := newWorld(0, 0)
	require.NoError(t, w.AddBody(bodyA, box(50, 50, 10)))
	require.NoError(t, w.AddBody(bodyB, box(61, 50, 10)))

	w.Step(dt)

	assert.Empty(t, w.DrainTouchEvents())
	assert.Empty(t, w.Touching(bodyA))
}
