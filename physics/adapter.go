package physics

import (
	"cmp"
	"errors"
	"slices"

	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

var (
	ErrDuplicateBody = errors.New("physics: body already registered")
	ErrInvalidBody   = errors.New("physics: invalid body definition")
)

type BodyKind int

const (
	Dynamic BodyKind = iota
	Static
)

// BodyDef describes a body to register for an actor. Position is the body
// center in world space.
type BodyDef struct {
	Kind          BodyKind
	Position      math2.Vec2
	Velocity      math2.Vec2
	Width, Height float64
	Mass          float64
	GravityScale  float64
	// Sensor bodies report touches but neither block nor get blocked.
	Sensor bool
}

// Validate reports whether the definition can be registered.
func (d BodyDef) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return ErrInvalidBody
	}
	if d.Kind == Dynamic && d.Mass <= 0 {
		return ErrInvalidBody
	}
	return nil
}

type TouchKind int

const (
	TouchStarted TouchKind = iota
	TouchEnded
)

func (k TouchKind) String() string {
	if k == TouchEnded {
		return "touch_end"
	}
	return "touch_start"
}

// TouchEvent is a contact transition between two actors reported by Step.
type TouchEvent struct {
	Kind TouchKind
	A, B donburi.Entity
}

// Adapter is the physics engine as seen by the ability controllers. Bodies
// are keyed by the actor entity that owns them. Operations on an actor with
// no body report false and change nothing.
type Adapter interface {
	AddBody(actor donburi.Entity, def BodyDef) error
	// Remove is idempotent. Partners of a removed body receive touch-end
	// events.
	Remove(actor donburi.Entity)
	Has(actor donburi.Entity) bool

	Position(actor donburi.Entity) (math2.Vec2, bool)
	SetPosition(actor donburi.Entity, pos math2.Vec2) bool
	Velocity(actor donburi.Entity) (math2.Vec2, bool)
	SetVelocity(actor donburi.Entity, vel math2.Vec2) bool
	// ApplyImpulse changes velocity by impulse/mass and wakes a sleeping body.
	ApplyImpulse(actor donburi.Entity, impulse math2.Vec2) bool
	SetGravityScale(actor donburi.Entity, scale float64) bool

	// Touching returns the actors currently in contact, sorted by entity.
	Touching(actor donburi.Entity) []donburi.Entity
	// DrainTouchEvents returns and clears the transitions recorded since the
	// previous drain.
	DrainTouchEvents() []TouchEvent

	Step(dt float64)
}

// SortEntities orders entities ascending; adapters use it to keep touch sets
// deterministic.
func SortEntities(es []donburi.Entity) {
	slices.Sort(es)
}

// Pair is an unordered contact between two actors, stored lower entity
// first.
type Pair struct {
	A, B donburi.Entity
}

// NewPair returns the pair of a and b with the lower entity first.
func NewPair(a, b donburi.Entity) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Has reports whether e is one side of the pair.
func (p Pair) Has(e donburi.Entity) bool {
	return p.A == e || p.B == e
}

// Other returns the side of the pair that is not e.
func (p Pair) Other(e donburi.Entity) donburi.Entity {
	if p.A == e {
		return p.B
	}
	return p.A
}

// ComparePairs orders pairs by their first then second entity.
func ComparePairs(x, y Pair) int {
	return cmp.Or(cmp.Compare(x.A, y.A), cmp.Compare(x.B, y.B))
}

// SortPairs orders pairs with ComparePairs.
func SortPairs(ps []Pair) {
	slices.SortFunc(ps, ComparePairs)
}
