// Package kinematic is a Physics Adapter built on a resolv spatial space.
// Dynamic bodies integrate their own velocity and are stopped by static
// solids the way the platformer's collision pass resolves movement; every
// other pairing only reports touches. Bodies outside the space bounds are
// not indexed and report no touches.
package kinematic

import (
	"math"

	"github.com/automoto/doomerang-abilities/physics"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// blockSlop is the penetration a move may reach before a solid blocks it,
// so a body resting against a solid can still slide along it.
const blockSlop = 1e-6

// restSpeed is the speed below which a grounded body counts as resting.
const restSpeed = 1e-3

type Options struct {
	Width, Height int
	CellSize      int
	Gravity       math2.Vec2
	// SleepAfter is the number of resting steps before a grounded body
	// sleeps. Zero disables sleeping.
	SleepAfter int
}

type body struct {
	entity       donburi.Entity
	obj          *resolv.Object
	kind         physics.BodyKind
	sensor       bool
	vel          math2.Vec2
	invMass      float64
	gravityScale float64
	grounded     bool
	resting      int
	sleeping     bool
}

type World struct {
	space      *resolv.Space
	gravity    math2.Vec2
	sleepAfter int

	bodies   map[donburi.Entity]*body
	order    []donburi.Entity
	contacts map[physics.Pair]struct{}
	events   []physics.TouchEvent
}

var _ physics.Adapter = (*World)(nil)

func New(opts Options) *World {
	cell := opts.CellSize
	if cell <= 0 {
		cell = 32
	}
	return &World{
		space:      resolv.NewSpace(opts.Width, opts.Height, cell, cell),
		gravity:    opts.Gravity,
		sleepAfter: opts.SleepAfter,
		bodies:     make(map[donburi.Entity]*body),
		contacts:   make(map[physics.Pair]struct{}),
	}
}

func (w *World) AddBody(actor donburi.Entity, def physics.BodyDef) error {
	if _, exists := w.bodies[actor]; exists {
		return physics.ErrDuplicateBody
	}
	if err := def.Validate(); err != nil {
		return err
	}

	tag := tags.ResolvBody
	switch {
	case def.Sensor:
		tag = tags.ResolvSensor
	case def.Kind == physics.Static:
		tag = tags.ResolvSolid
	}

	obj := resolv.NewObject(0, 0, def.Width, def.Height, tag)
	obj.SetCenter(def.Position.X, def.Position.Y)
	obj.Data = actor
	w.space.Add(obj)

	b := &body{
		entity:       actor,
		obj:          obj,
		kind:         def.Kind,
		sensor:       def.Sensor,
		vel:          def.Velocity,
		gravityScale: def.GravityScale,
	}
	if def.Kind == physics.Dynamic {
		b.invMass = 1 / def.Mass
	} else {
		b.vel = math2.Vec2{}
	}
	w.bodies[actor] = b
	w.order = append(w.order, actor)
	physics.SortEntities(w.order)
	return nil
}

func (w *World) Remove(actor donburi.Entity) {
	b, ok := w.bodies[actor]
	if !ok {
		return
	}
	w.space.Remove(b.obj)
	delete(w.bodies, actor)
	for i, e := range w.order {
		if e == actor {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}

	var ended []physics.Pair
	for p := range w.contacts {
		if p.Has(actor) {
			ended = append(ended, p)
		}
	}
	physics.SortPairs(ended)
	for _, p := range ended {
		delete(w.contacts, p)
		w.events = append(w.events, physics.TouchEvent{Kind: physics.TouchEnded, A: p.A, B: p.B})
	}
}

func (w *World) Has(actor donburi.Entity) bool {
	_, ok := w.bodies[actor]
	return ok
}

func (w *World) Position(actor donburi.Entity) (math2.Vec2, bool) {
	b, ok := w.bodies[actor]
	if !ok {
		return math2.Vec2{}, false
	}
	x, y := b.obj.Center()
	return math2.Vec2{X: x, Y: y}, true
}

func (w *World) SetPosition(actor donburi.Entity, pos math2.Vec2) bool {
	b, ok := w.bodies[actor]
	if !ok {
		return false
	}
	b.obj.SetCenter(pos.X, pos.Y)
	b.obj.Update()
	b.wake()
	return true
}

func (w *World) Velocity(actor donburi.Entity) (math2.Vec2, bool) {
	b, ok := w.bodies[actor]
	if !ok {
		return math2.Vec2{}, false
	}
	return b.vel, true
}

func (w *World) SetVelocity(actor donburi.Entity, vel math2.Vec2) bool {
	b, ok := w.bodies[actor]
	if !ok || b.kind == physics.Static {
		return false
	}
	b.vel = vel
	b.wake()
	return true
}

func (w *World) ApplyImpulse(actor donburi.Entity, impulse math2.Vec2) bool {
	b, ok := w.bodies[actor]
	if !ok || b.kind == physics.Static {
		return false
	}
	b.vel.X += impulse.X * b.invMass
	b.vel.Y += impulse.Y * b.invMass
	b.wake()
	return true
}

func (w *World) SetGravityScale(actor donburi.Entity, scale float64) bool {
	b, ok := w.bodies[actor]
	if !ok {
		return false
	}
	b.gravityScale = scale
	b.wake()
	return true
}

// Sleeping reports whether the actor's body is currently asleep.
func (w *World) Sleeping(actor donburi.Entity) bool {
	b, ok := w.bodies[actor]
	return ok && b.sleeping
}

func (w *World) Touching(actor donburi.Entity) []donburi.Entity {
	var out []donburi.Entity
	for p := range w.contacts {
		if p.Has(actor) {
			out = append(out, p.Other(actor))
		}
	}
	physics.SortEntities(out)
	return out
}

func (w *World) DrainTouchEvents() []physics.TouchEvent {
	evts := w.events
	w.events = nil
	return evts
}

func (w *World) Step(dt float64) {
	for _, e := range w.order {
		b := w.bodies[e]
		if b.kind == physics.Static || b.sleeping {
			continue
		}
		b.vel.X += w.gravity.X * b.gravityScale * dt
		b.vel.Y += w.gravity.Y * b.gravityScale * dt
		w.move(b, dt)
		w.updateSleep(b)
	}
	w.refreshContacts()
}

// move advances b by its velocity, resolving each axis against solids. A
// blocked body is snapped flush to the solid so the contact keeps reporting.
func (w *World) move(b *body, dt float64) {
	b.grounded = false

	if dx := b.vel.X * dt; dx != 0 {
		if solid := w.blocking(b, dx, 0); solid != nil {
			if dx > 0 {
				b.obj.SetRight(solid.X)
			} else {
				b.obj.X = solid.Right()
			}
			b.vel.X = 0
		} else {
			b.obj.X += dx
		}
	}

	if dy := b.vel.Y * dt; dy != 0 {
		if solid := w.blocking(b, 0, dy); solid != nil {
			if dy > 0 {
				b.obj.SetBottom(solid.Y)
			} else {
				b.obj.Y = solid.Bottom()
			}
			if math.Signbit(b.vel.Y) == math.Signbit(w.gravity.Y) {
				b.grounded = true
			}
			b.vel.Y = 0
		} else {
			b.obj.Y += dy
		}
	}

	b.obj.Update()
}

// blocking returns the nearest solid the body would sink into after moving
// by (dx, dy). Check orders its candidates by distance.
func (w *World) blocking(b *body, dx, dy float64) *resolv.Object {
	if b.sensor {
		return nil
	}
	check := b.obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	for _, solid := range check.Objects {
		if penetrates(b.obj.X+dx, b.obj.Y+dy, b.obj.W, b.obj.H, solid) {
			return solid
		}
	}
	return nil
}

// penetrates reports whether the rectangle (x, y, w, h) sinks deeper than
// blockSlop into other. Object.Overlaps counts shared edges, which would
// pin a resting body in place.
func penetrates(x, y, w, h float64, other *resolv.Object) bool {
	return x < other.Right()-blockSlop && other.X < x+w-blockSlop &&
		y < other.Bottom()-blockSlop && other.Y < y+h-blockSlop
}

func (w *World) updateSleep(b *body) {
	if w.sleepAfter <= 0 || b.sensor {
		return
	}
	if b.grounded && math.Abs(b.vel.X) < restSpeed && math.Abs(b.vel.Y) < restSpeed {
		b.resting++
		if b.resting >= w.sleepAfter {
			b.sleeping = true
			b.vel = math2.Vec2{}
		}
		return
	}
	b.resting = 0
}

// refreshContacts recomputes every touching pair from the space and records
// transitions. Static bodies never touch each other, so only the moving
// side of a pair looks for contacts.
func (w *World) refreshContacts() {
	current := make(map[physics.Pair]struct{}, len(w.contacts))
	for _, e := range w.order {
		b := w.bodies[e]
		if b.kind == physics.Static {
			continue
		}
		for _, other := range nearby(b.obj) {
			oe, ok := other.Data.(donburi.Entity)
			if !ok || !b.obj.Overlaps(other) {
				continue
			}
			current[physics.NewPair(e, oe)] = struct{}{}
		}
	}

	var started, ended []physics.Pair
	for p := range current {
		if _, had := w.contacts[p]; !had {
			started = append(started, p)
		}
	}
	for p := range w.contacts {
		if _, still := current[p]; !still {
			ended = append(ended, p)
		}
	}
	physics.SortPairs(started)
	physics.SortPairs(ended)
	for _, p := range started {
		w.events = append(w.events, physics.TouchEvent{Kind: physics.TouchStarted, A: p.A, B: p.B})
	}
	for _, p := range ended {
		w.events = append(w.events, physics.TouchEvent{Kind: physics.TouchEnded, A: p.A, B: p.B})
	}
	w.contacts = current
}

// nearby returns the objects in the cells around obj, including those only
// sharing an edge with it. Check leaves out the cell past the far edge, so
// one check shifted each way covers both sides.
func nearby(obj *resolv.Object) []*resolv.Object {
	var out []*resolv.Object
	for _, d := range [...]float64{-1, 1} {
		if check := obj.Check(d, d); check != nil {
			out = append(out, check.Objects...)
		}
	}
	return out
}

func (b *body) wake() {
	b.sleeping = false
	b.resting = 0
}
