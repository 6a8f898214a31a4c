// Package chipmunk is a Physics Adapter backed by a Chipmunk2D space.
package chipmunk

import (
	"math"

	"github.com/automoto/doomerang-abilities/physics"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// actorCollision is the collision type every actor shape carries so one
// handler sees every contact.
const actorCollision cp.CollisionType = 1

type Options struct {
	Gravity math2.Vec2
	// SleepTime is the idle time in seconds before a resting body sleeps.
	// Zero disables sleeping.
	SleepTime float64
}

type body struct {
	entity       donburi.Entity
	body         *cp.Body
	shape        *cp.Shape
	kind         physics.BodyKind
	gravityScale float64
}

type Space struct {
	space    *cp.Space
	bodies   map[donburi.Entity]*body
	contacts map[physics.Pair]int
	events   []physics.TouchEvent
}

var _ physics.Adapter = (*Space)(nil)

func New(opts Options) *Space {
	s := &Space{
		space:    cp.NewSpace(),
		bodies:   make(map[donburi.Entity]*body),
		contacts: make(map[physics.Pair]int),
	}
	s.space.SetGravity(vec(opts.Gravity))
	if opts.SleepTime > 0 {
		s.space.SleepTimeThreshold = opts.SleepTime
	}

	handler := s.space.NewCollisionHandler(actorCollision, actorCollision)
	handler.BeginFunc = s.begin
	handler.SeparateFunc = s.separate
	return s
}

func (s *Space) AddBody(actor donburi.Entity, def physics.BodyDef) error {
	if _, exists := s.bodies[actor]; exists {
		return physics.ErrDuplicateBody
	}
	if err := def.Validate(); err != nil {
		return err
	}

	b := &body{entity: actor, kind: def.Kind, gravityScale: def.GravityScale}
	if def.Kind == physics.Static {
		b.body = cp.NewStaticBody()
	} else {
		// Infinite moment keeps actors upright.
		b.body = cp.NewBody(def.Mass, math.Inf(1))
		b.body.SetVelocityUpdateFunc(func(cb *cp.Body, gravity cp.Vector, damping, dt float64) {
			cp.BodyUpdateVelocity(cb, gravity.Mult(b.gravityScale), damping, dt)
		})
		b.body.SetVelocityVector(vec(def.Velocity))
	}
	b.body.SetPosition(vec(def.Position))
	b.body.UserData = actor

	b.shape = cp.NewBox(b.body, def.Width, def.Height, 0)
	b.shape.SetSensor(def.Sensor)
	b.shape.SetCollisionType(actorCollision)
	b.shape.SetFriction(0)

	s.space.AddBody(b.body)
	s.space.AddShape(b.shape)
	s.bodies[actor] = b
	return nil
}

func (s *Space) Remove(actor donburi.Entity) {
	b, ok := s.bodies[actor]
	if !ok {
		return
	}
	// Removing the shape runs separate callbacks for its live contacts.
	s.space.RemoveShape(b.shape)
	s.space.RemoveBody(b.body)
	delete(s.bodies, actor)

	var ended []physics.Pair
	for p := range s.contacts {
		if p.Has(actor) {
			ended = append(ended, p)
		}
	}
	physics.SortPairs(ended)
	for _, p := range ended {
		s.end(p)
	}
}

func (s *Space) Has(actor donburi.Entity) bool {
	_, ok := s.bodies[actor]
	return ok
}

func (s *Space) Position(actor donburi.Entity) (math2.Vec2, bool) {
	b, ok := s.bodies[actor]
	if !ok {
		return math2.Vec2{}, false
	}
	return fromVec(b.body.Position()), true
}

func (s *Space) SetPosition(actor donburi.Entity, pos math2.Vec2) bool {
	b, ok := s.bodies[actor]
	if !ok {
		return false
	}
	if b.kind == physics.Static {
		// Static shapes are only rehashed when added, so move the body with
		// its shape out of the space.
		s.space.RemoveShape(b.shape)
		b.body.SetPosition(vec(pos))
		s.space.AddShape(b.shape)
		return true
	}
	b.body.SetPosition(vec(pos))
	return true
}

func (s *Space) Velocity(actor donburi.Entity) (math2.Vec2, bool) {
	b, ok := s.bodies[actor]
	if !ok {
		return math2.Vec2{}, false
	}
	return fromVec(b.body.Velocity()), true
}

func (s *Space) SetVelocity(actor donburi.Entity, v math2.Vec2) bool {
	b, ok := s.bodies[actor]
	if !ok || b.kind == physics.Static {
		return false
	}
	b.body.SetVelocityVector(vec(v))
	b.body.Activate()
	return true
}

func (s *Space) ApplyImpulse(actor donburi.Entity, impulse math2.Vec2) bool {
	b, ok := s.bodies[actor]
	if !ok || b.kind == physics.Static {
		return false
	}
	b.body.ApplyImpulseAtWorldPoint(vec(impulse), b.body.Position())
	b.body.Activate()
	return true
}

func (s *Space) SetGravityScale(actor donburi.Entity, scale float64) bool {
	b, ok := s.bodies[actor]
	if !ok {
		return false
	}
	b.gravityScale = scale
	if b.kind != physics.Static {
		b.body.Activate()
	}
	return true
}

// Sleeping reports whether the actor's body is currently asleep.
func (s *Space) Sleeping(actor donburi.Entity) bool {
	b, ok := s.bodies[actor]
	return ok && b.kind != physics.Static && b.body.IsSleeping()
}

func (s *Space) Touching(actor donburi.Entity) []donburi.Entity {
	var out []donburi.Entity
	for p := range s.contacts {
		if p.Has(actor) {
			out = append(out, p.Other(actor))
		}
	}
	physics.SortEntities(out)
	return out
}

func (s *Space) DrainTouchEvents() []physics.TouchEvent {
	evts := s.events
	s.events = nil
	return evts
}

func (s *Space) Step(dt float64) {
	s.space.Step(dt)
}

func (s *Space) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	p, ok := arbiterPair(arb)
	if !ok {
		return true
	}
	// Two shapes of one pair can overlap more than once; count them.
	s.contacts[p]++
	if s.contacts[p] == 1 {
		s.events = append(s.events, physics.TouchEvent{Kind: physics.TouchStarted, A: p.A, B: p.B})
	}
	return true
}

func (s *Space) separate(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	p, ok := arbiterPair(arb)
	if !ok {
		return
	}
	n, tracked := s.contacts[p]
	if !tracked {
		return
	}
	if n > 1 {
		s.contacts[p] = n - 1
		return
	}
	s.end(p)
}

func (s *Space) end(p physics.Pair) {
	if _, tracked := s.contacts[p]; !tracked {
		return
	}
	delete(s.contacts, p)
	s.events = append(s.events, physics.TouchEvent{Kind: physics.TouchEnded, A: p.A, B: p.B})
}

func arbiterPair(arb *cp.Arbiter) (physics.Pair, bool) {
	ba, bb := arb.Bodies()
	ea, okA := ba.UserData.(donburi.Entity)
	eb, okB := bb.UserData.(donburi.Entity)
	if !okA || !okB || ea == eb {
		return physics.Pair{}, false
	}
	return physics.NewPair(ea, eb), true
}

func vec(v math2.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromVec(v cp.Vector) math2.Vec2 {
	return math2.Vec2{X: v.X, Y: v.Y}
}
