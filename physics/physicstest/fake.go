// Package physicstest provides a scripted Physics Adapter for controller
// tests. Bodies move by their velocity on Step; contacts only change when a
// test calls Touch or Separate.
package physicstest

import (
	"github.com/automoto/doomerang-abilities/physics"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// Impulse is one recorded ApplyImpulse call.
type Impulse struct {
	Actor   donburi.Entity
	Impulse math2.Vec2
}

type fakeBody struct {
	def physics.BodyDef
	pos math2.Vec2
	vel math2.Vec2
}

type Fake struct {
	bodies   map[donburi.Entity]*fakeBody
	touching map[donburi.Entity]map[donburi.Entity]struct{}
	events   []physics.TouchEvent

	Impulses []Impulse
	Steps    int
}

var _ physics.Adapter = (*Fake)(nil)

func New() *Fake {
	return &Fake{
		bodies:   make(map[donburi.Entity]*fakeBody),
		touching: make(map[donburi.Entity]map[donburi.Entity]struct{}),
	}
}

// Touch puts a and b in contact and queues a touch-start.
func (f *Fake) Touch(a, b donburi.Entity) {
	if f.isTouching(a, b) {
		return
	}
	f.link(a, b)
	f.link(b, a)
	p := physics.NewPair(a, b)
	f.events = append(f.events, physics.TouchEvent{Kind: physics.TouchStarted, A: p.A, B: p.B})
}

// Separate ends the contact between a and b and queues a touch-end.
func (f *Fake) Separate(a, b donburi.Entity) {
	if !f.isTouching(a, b) {
		return
	}
	delete(f.touching[a], b)
	delete(f.touching[b], a)
	p := physics.NewPair(a, b)
	f.events = append(f.events, physics.TouchEvent{Kind: physics.TouchEnded, A: p.A, B: p.B})
}

// ImpulsesOn returns the impulses applied to actor, in order.
func (f *Fake) ImpulsesOn(actor donburi.Entity) []math2.Vec2 {
	var out []math2.Vec2
	for _, i := range f.Impulses {
		if i.Actor == actor {
			out = append(out, i.Impulse)
		}
	}
	return out
}

// GravityScale returns the scale last set for actor.
func (f *Fake) GravityScale(actor donburi.Entity) float64 {
	if b, ok := f.bodies[actor]; ok {
		return b.def.GravityScale
	}
	return 0
}

func (f *Fake) isTouching(a, b donburi.Entity) bool {
	_, ok := f.touching[a][b]
	return ok
}

func (f *Fake) link(a, b donburi.Entity) {
	if f.touching[a] == nil {
		f.touching[a] = make(map[donburi.Entity]struct{})
	}
	f.touching[a][b] = struct{}{}
}

func (f *Fake) AddBody(actor donburi.Entity, def physics.BodyDef) error {
	if _, ok := f.bodies[actor]; ok {
		return physics.ErrDuplicateBody
	}
	if err := def.Validate(); err != nil {
		return err
	}
	f.bodies[actor] = &fakeBody{def: def, pos: def.Position, vel: def.Velocity}
	return nil
}

func (f *Fake) Remove(actor donburi.Entity) {
	if _, ok := f.bodies[actor]; !ok {
		return
	}
	for _, other := range f.Touching(actor) {
		f.Separate(actor, other)
	}
	delete(f.bodies, actor)
	delete(f.touching, actor)
}

func (f *Fake) Has(actor donburi.Entity) bool {
	_, ok := f.bodies[actor]
	return ok
}

func (f *Fake) Position(actor donburi.Entity) (math2.Vec2, bool) {
	b, ok := f.bodies[actor]
	if !ok {
		return math2.Vec2{}, false
	}
	return b.pos, true
}

func (f *Fake) SetPosition(actor donburi.Entity, pos math2.Vec2) bool {
	b, ok := f.bodies[actor]
	if !ok {
		return false
	}
	b.pos = pos
	return true
}

func (f *Fake) Velocity(actor donburi.Entity) (math2.Vec2, bool) {
	b, ok := f.bodies[actor]
	if !ok {
		return math2.Vec2{}, false
	}
	return b.vel, true
}

func (f *Fake) SetVelocity(actor donburi.Entity, vel math2.Vec2) bool {
	b, ok := f.bodies[actor]
	if !ok || b.def.Kind == physics.Static {
		return false
	}
	b.vel = vel
	return true
}

func (f *Fake) ApplyImpulse(actor donburi.Entity, impulse math2.Vec2) bool {
	b, ok := f.bodies[actor]
	if !ok || b.def.Kind == physics.Static {
		return false
	}
	b.vel.X += impulse.X / b.def.Mass
	b.vel.Y += impulse.Y / b.def.Mass
	f.Impulses = append(f.Impulses, Impulse{Actor: actor, Impulse: impulse})
	return true
}

func (f *Fake) SetGravityScale(actor donburi.Entity, scale float64) bool {
	b, ok := f.bodies[actor]
	if !ok {
		return false
	}
	b.def.GravityScale = scale
	return true
}

func (f *Fake) Touching(actor donburi.Entity) []donburi.Entity {
	var out []donburi.Entity
	for e := range f.touching[actor] {
		out = append(out, e)
	}
	physics.SortEntities(out)
	return out
}

func (f *Fake) DrainTouchEvents() []physics.TouchEvent {
	evts := f.events
	f.events = nil
	return evts
}

func (f *Fake) Step(dt float64) {
	f.Steps++
	for _, b := range f.bodies {
		if b.def.Kind == physics.Static {
			continue
		}
		b.pos.X += b.vel.X * dt
		b.pos.Y += b.vel.Y * dt
	}
}
