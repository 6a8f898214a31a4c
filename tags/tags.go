package tags

import "github.com/yohamta/donburi"

// Actor kinds
var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Wall       = donburi.NewTag().SetName("Wall")
	Hook       = donburi.NewTag().SetName("Hook")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Capabilities. Any actor may carry any combination.
var (
	CanDash    = donburi.NewTag().SetName("CanDash")
	CanGrapple = donburi.NewTag().SetName("CanGrapple")
	CanBeHit   = donburi.NewTag().SetName("CanBeHit")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvBody   = "body"
	ResolvSensor = "sensor"
)

// Grappling marks an actor that is in a grapple flow, from StartGrapple until
// EndGrapple.
var Grappling = donburi.NewTag().SetName("Grappling")
