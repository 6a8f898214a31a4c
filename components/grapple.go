package components

import (
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

type AttachmentKind int

const (
	Unattached AttachmentKind = iota
	AttachedWorld
	AttachedEnemy
)

func (k AttachmentKind) String() string {
	switch k {
	case AttachedWorld:
		return "world"
	case AttachedEnemy:
		return "enemy"
	default:
		return "unattached"
	}
}

// HookData lives on the hook actor. Attachment moves out of Unattached
// exactly once.
type HookData struct {
	Shooter    donburi.Entity
	Attachment AttachmentKind
	// Target is the actor the hook struck. For world attachments it is the
	// contact that anchored the hook.
	Target donburi.Entity
	// TargetLost is set once a followed enemy has vanished.
	TargetLost bool
}

// Attach resolves the hook. It reports false if the hook was already
// attached, leaving it unchanged.
func (h *HookData) Attach(kind AttachmentKind, target donburi.Entity) bool {
	if h.Attachment != Unattached || kind == Unattached {
		return false
	}
	h.Attachment = kind
	h.Target = target
	return true
}

// Rope is the resolved grapple regime: *SwingRope or *PullRope.
type Rope interface {
	rope()
}

// SwingRope holds a shooter to a fixed world anchor with a damped spring.
type SwingRope struct {
	Anchor       math2.Vec2
	RestLength   float64
	PrevDistance float64
	HasPrev      bool
}

// PullRope ties the shooter to a struck enemy until release.
type PullRope struct {
	Target donburi.Entity
	Length float64
}

func (*SwingRope) rope() {}
func (*PullRope) rope()  {}

// GrappleData lives on the shooter for the whole grapple flow. Rope is nil
// until the hook attaches.
type GrappleData struct {
	Hook donburi.Entity
	Rope Rope
}

// Swing returns the swing rope, or nil if the grapple is not swinging.
func (g *GrappleData) Swing() *SwingRope {
	s, _ := g.Rope.(*SwingRope)
	return s
}

// Pull returns the pull rope, or nil if the grapple is not pulling.
func (g *GrappleData) Pull() *PullRope {
	p, _ := g.Rope.(*PullRope)
	return p
}

var Hook = donburi.NewComponentType[HookData]()
var Grapple = donburi.NewComponentType[GrappleData]()
