package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// DefenseData is reserved; damage does not consult it yet.
type DefenseData struct {
	Multiplier float64
}

var Health = donburi.NewComponentType[HealthData]()
var Defense = donburi.NewComponentType[DefenseData]()
